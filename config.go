package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MarcGrol/storecli/checkout"
	"github.com/MarcGrol/storecli/lib/mylog"
)

type config struct {
	ordersFile string
	logFile    string
	mode       checkout.Mode
	adminAddr  string
	logLevel   mylog.Severity
}

// loadConfig reads the environment first; command-line flags override it.
func loadConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("storecli", flag.ContinueOnError)
	ordersFile := fs.String("orders", getenv("STORE_ORDERS_FILE", "orders.txt"), "file completed orders are appended to")
	logFile := fs.String("log", getenv("STORE_LOG_FILE", "logs.txt"), "file payment events are appended to")
	modeName := fs.String("mode", getenv("STORE_CHECKOUT_MODE", string(checkout.ModeLenient)), "checkout mode: lenient or strict")
	adminAddr := fs.String("admin-addr", getenv("STORE_ADMIN_ADDR", ""), "address to serve /metrics and the read-only order api on, empty disables it")
	logLevel := fs.String("log-level", getenv("STORE_LOG_LEVEL", string(mylog.SeverityWarn)), "minimum severity of diagnostic logging")

	err := fs.Parse(args)
	if err != nil {
		return config{}, err
	}

	mode, ok := checkout.ParseMode(*modeName)
	if !ok {
		return config{}, fmt.Errorf("unknown checkout mode %q", *modeName)
	}

	severity, ok := mylog.ParseSeverity(*logLevel)
	if !ok {
		return config{}, fmt.Errorf("unknown log level %q", *logLevel)
	}

	if *ordersFile == "" || *logFile == "" {
		return config{}, fmt.Errorf("orders and log file must be set")
	}

	return config{
		ordersFile: *ordersFile,
		logFile:    *logFile,
		mode:       mode,
		adminAddr:  *adminAddr,
		logLevel:   severity,
	}, nil
}

func getenv(name string, fallback string) string {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	return value
}
