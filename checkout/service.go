package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MarcGrol/storecli/cart"
	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/mylog"
	"github.com/MarcGrol/storecli/lib/mymetrics"
	"github.com/MarcGrol/storecli/lib/mystore"
	"github.com/MarcGrol/storecli/lib/mytime"
	"github.com/MarcGrol/storecli/order"
)

const (
	storeOrders   = "orders"
	storeEventLog = "eventlog"
)

type Service struct {
	cart        *cart.Cart
	orderStore  OrderStorer
	eventLog    EventLogger
	nower       mytime.Nower
	metrics     *mymetrics.Metrics
	logger      mylog.Logger
	mode        Mode
	nextOrderID int
	state       State
}

// NewService seeds the order id counter from the highest id already on file.
func NewService(c context.Context, cart *cart.Cart, orderStore OrderStorer, eventLog EventLogger, nower mytime.Nower, metrics *mymetrics.Metrics, logger mylog.Logger, mode Mode) (*Service, error) {
	lastOrderID, err := orderStore.LastOrderID(c)
	if err != nil {
		return nil, fmt.Errorf("error determining last order id: %w", err)
	}

	logger.Log(c, "", mylog.SeverityInfo, "Next order id is %d (mode %s)", lastOrderID+1, mode)

	return &Service{
		cart:        cart,
		orderStore:  orderStore,
		eventLog:    eventLog,
		nower:       nower,
		metrics:     metrics,
		logger:      logger,
		mode:        mode,
		nextOrderID: lastOrderID + 1,
		state:       StateIdle,
	}, nil
}

func (s *Service) NextOrderID() int {
	return s.nextOrderID
}

// State returns the state the most recent checkout ended in.
func (s *Service) State() State {
	return s.state
}

func (s *Service) Checkout(c context.Context, payer Payer) (Confirmation, error) {
	startedAt := s.nower.Now()
	orderID := s.nextOrderID
	traceLabel := strconv.Itoa(orderID)

	s.transition(c, traceLabel, StateIdle)

	if s.cart.IsEmpty() {
		return s.reject(c, traceLabel, myerrors.NewEmptyCartError(fmt.Errorf("cart is empty")))
	}
	s.transition(c, traceLabel, StateValidated)

	total := s.cart.Total()
	s.transition(c, traceLabel, StatePriced)

	label, err := payer.Pay(c, total)
	if err != nil {
		return s.reject(c, traceLabel, fmt.Errorf("payment of %d failed: %w", total, err))
	}
	s.transition(c, traceLabel, StatePaid)

	o := s.snapshot(orderID, total, label)

	warnings := []error{}
	if s.mode == ModeStrict {
		err = s.persistAtomically(c, traceLabel, o)
		if err != nil {
			if errors.Is(err, mystore.ErrRollbackFailed) {
				// The order block may still be on file, so its id is used up
				s.nextOrderID++
				s.logger.Log(c, traceLabel, mylog.SeverityError, "Order %d could not be rolled back, next order id is %d", orderID, s.nextOrderID)
			}
			return s.reject(c, traceLabel, err)
		}
	} else {
		warnings = s.persistLeniently(c, traceLabel, o)
	}

	// Commit
	s.nextOrderID++
	s.cart.Clear()
	s.transition(c, traceLabel, StateLoggedAndCleared)

	s.metrics.Checkouts.WithLabelValues(label).Inc()
	s.metrics.LatencyMS.Observe(float64(s.nower.Now().Sub(startedAt).Milliseconds()))
	s.logger.Log(c, traceLabel, mylog.SeverityInfo, "Order %d checked out: %d using %s", orderID, total, label)
	s.transition(c, traceLabel, StateDone)

	return Confirmation{
		OrderID:       orderID,
		Total:         total,
		PaymentMethod: label,
		CheckedOutAt:  startedAt,
		Warnings:      warnings,
	}, nil
}

func (s *Service) persistLeniently(c context.Context, traceLabel string, o order.Order) []error {
	warnings := []error{}

	err := s.orderStore.Append(c, o)
	if err != nil {
		s.persistenceFailed(c, traceLabel, storeOrders, err)
		warnings = append(warnings, err)
	}
	s.transition(c, traceLabel, StatePersisted)

	err = s.eventLog.Append(c, o.OrderID, o.PaymentMethod)
	if err != nil {
		s.persistenceFailed(c, traceLabel, storeEventLog, err)
		warnings = append(warnings, err)
	}

	return warnings
}

func (s *Service) persistAtomically(c context.Context, traceLabel string, o order.Order) error {
	return s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Append(c, o)
		if err != nil {
			s.persistenceFailed(c, traceLabel, storeOrders, err)
			return err
		}
		s.transition(c, traceLabel, StatePersisted)

		err = s.eventLog.Append(c, o.OrderID, o.PaymentMethod)
		if err != nil {
			s.persistenceFailed(c, traceLabel, storeEventLog, err)
			return err
		}

		return nil
	})
}

func (s *Service) snapshot(orderID int, total int, label string) order.Order {
	lines := []order.Line{}
	for _, l := range s.cart.Lines() {
		lines = append(lines, order.Line{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Price:       l.Product.Price,
			Quantity:    l.Quantity,
		})
	}

	return order.Order{
		OrderID:       orderID,
		TotalAmount:   total,
		PaymentMethod: label,
		Lines:         lines,
	}
}

func (s *Service) reject(c context.Context, traceLabel string, err error) (Confirmation, error) {
	s.metrics.Rejections.WithLabelValues(myerrors.GetKind(err).String()).Inc()
	s.logger.Log(c, traceLabel, mylog.SeverityWarn, "Checkout rejected: %s", err)
	s.transition(c, traceLabel, StateRejected)

	return Confirmation{}, err
}

func (s *Service) persistenceFailed(c context.Context, traceLabel string, store string, err error) {
	s.metrics.PersistenceFailures.WithLabelValues(store).Inc()
	s.logger.Log(c, traceLabel, mylog.SeverityError, "Error writing to %s: %s", store, err)
}

func (s *Service) transition(c context.Context, traceLabel string, next State) {
	s.logger.Log(c, traceLabel, mylog.SeverityDebug, "Checkout %s -> %s", s.state, next)
	s.state = next
}
