package eventlog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/mystore"
)

const (
	linePrefix = "[LOG] Order ID: "
	lineInfix  = " successfully checked out using "
)

type Entry struct {
	OrderID       int
	PaymentMethod string
}

type EventLog struct {
	store mystore.Store
}

func New(store mystore.Store) *EventLog {
	return &EventLog{
		store: store,
	}
}

func Format(orderID int, paymentMethod string) string {
	return fmt.Sprintf("%s%d%s%s.\n", linePrefix, orderID, lineInfix, paymentMethod)
}

// Append records that an order was checked out. Callers decide whether a failure matters.
func (l *EventLog) Append(c context.Context, orderID int, paymentMethod string) error {
	err := l.store.Append(c, Format(orderID, paymentMethod))
	if err != nil {
		return myerrors.NewPersistenceError(fmt.Errorf("error logging order %d: %w", orderID, err))
	}
	return nil
}

func (l *EventLog) Entries(c context.Context) ([]Entry, error) {
	lines, err := l.store.ReadLines(c)
	if err != nil {
		return nil, myerrors.NewPersistenceError(err)
	}

	entries := make([]Entry, 0, len(lines))
	for idx, line := range lines {
		entry, err := parse(line)
		if err != nil {
			return nil, myerrors.NewPersistenceError(fmt.Errorf("corrupt event log at line %d: %w", idx+1, err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parse(line string) (Entry, error) {
	if !strings.HasPrefix(line, linePrefix) || !strings.HasSuffix(line, ".") {
		return Entry{}, fmt.Errorf("unexpected log line %q", line)
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(line, linePrefix), ".")
	idPart, method, found := strings.Cut(rest, lineInfix)
	if !found {
		return Entry{}, fmt.Errorf("unexpected log line %q", line)
	}
	orderID, err := strconv.Atoi(idPart)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid order id in %q: %w", line, err)
	}
	return Entry{OrderID: orderID, PaymentMethod: method}, nil
}
