package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/storecli/cart"
	"github.com/MarcGrol/storecli/catalog"
	"github.com/MarcGrol/storecli/checkout"
	"github.com/MarcGrol/storecli/eventlog"
	"github.com/MarcGrol/storecli/lib/mycontext"
	"github.com/MarcGrol/storecli/lib/mylog"
	"github.com/MarcGrol/storecli/lib/mymetrics"
	"github.com/MarcGrol/storecli/lib/mystore"
	"github.com/MarcGrol/storecli/lib/mytime"
	"github.com/MarcGrol/storecli/lib/myuuid"
	"github.com/MarcGrol/storecli/order"
	"github.com/MarcGrol/storecli/shop"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	c := mycontext.NewSessionContext(context.Background(), myuuid.RealUUIDer{})

	err = run(c, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Error running store: %s", err)
	}
}

func run(c context.Context, cfg config, in io.Reader, out io.Writer) error {
	newLogger := func(name string) mylog.Logger {
		return mylog.WithMinimumSeverity(mylog.New(name), cfg.logLevel)
	}

	ordersBackend, ordersCleanup, err := mystore.New(c, cfg.ordersFile)
	if err != nil {
		return fmt.Errorf("error creating order store: %s", err)
	}
	defer ordersCleanup()

	logBackend, logCleanup, err := mystore.New(c, cfg.logFile)
	if err != nil {
		return fmt.Errorf("error creating event log: %s", err)
	}
	defer logCleanup()

	metrics := mymetrics.New("checkout")
	orderStore := order.NewStore(ordersBackend)
	events := eventlog.New(logBackend)

	if cfg.adminAddr != "" {
		router := mux.NewRouter()
		metrics.RegisterEndpoints(c, router)
		shop.NewWebService(orderStore, events, newLogger("web")).RegisterEndpoints(c, router)
		go startAdminServer(cfg.adminAddr, router)
	}

	// One cart and one checkout service for the whole process
	shoppingCart := cart.New()
	checkoutService, err := checkout.NewService(c, shoppingCart, orderStore, events, mytime.RealNower{}, metrics, newLogger("checkout"), cfg.mode)
	if err != nil {
		return fmt.Errorf("error creating checkout service: %w", err)
	}

	shopService := shop.NewService(catalog.Default(), shoppingCart, checkoutService, orderStore, newLogger("shop"))

	return shop.NewTerminal(shopService, in, out, newLogger("terminal")).Run(c)
}

func startAdminServer(addr string, router *mux.Router) {
	log.Printf("Serving admin endpoints on %s", addr)
	err := http.ListenAndServe(addr, router)
	if err != nil {
		log.Printf("Error serving admin endpoints on %s: %s", addr, err)
	}
}
