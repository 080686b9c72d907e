package shop

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/storecli/eventlog"
	"github.com/MarcGrol/storecli/lib/mycontext"
	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/myhttp"
	"github.com/MarcGrol/storecli/lib/mylog"
	"github.com/MarcGrol/storecli/order"
)

type OrderReader interface {
	Orders(c context.Context) ([]order.Order, error)
}

type EntryReader interface {
	Entries(c context.Context) ([]eventlog.Entry, error)
}

// WebService exposes the persisted orders and payment log read-only over http.
type WebService struct {
	orders OrderReader
	events EntryReader
	logger mylog.Logger
}

func NewWebService(orders OrderReader, events EntryReader, logger mylog.Logger) *WebService {
	return &WebService{
		orders: orders,
		events: events,
		logger: logger,
	}
}

func (s WebService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/orders", s.listOrders()).Methods("GET")
	router.HandleFunc("/api/orders/{orderID}", s.getOrder()).Methods("GET")
	router.HandleFunc("/api/logs", s.listLogEntries()).Methods("GET")
}

func (s WebService) listOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		orders, err := s.orders.Orders(c)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		writer.Write(c, w, http.StatusOK, orders)
	}
}

func (s WebService) getOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		orderID, err := strconv.Atoi(mux.Vars(r)["orderID"])
		if err != nil {
			writer.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("invalid order id %q", mux.Vars(r)["orderID"]))
			return
		}

		orders, err := s.orders.Orders(c)
		if err != nil {
			writer.WriteError(c, w, 2, err)
			return
		}

		for _, o := range orders {
			if o.OrderID == orderID {
				writer.Write(c, w, http.StatusOK, o)
				return
			}
		}

		writer.WriteError(c, w, 3, myerrors.NewNotFoundError(fmt.Errorf("order %d not found", orderID)))
	}
}

func (s WebService) listLogEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		entries, err := s.events.Entries(c)
		if err != nil {
			writer.WriteError(c, w, 1, err)
			return
		}

		writer.Write(c, w, http.StatusOK, entries)
	}
}
