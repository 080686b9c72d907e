package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/storecli/lib/myerrors"
)

type Method int

const (
	MethodCash Method = iota + 1
	MethodCard
	MethodWallet
)

var labels = map[Method]string{
	MethodCash:   "Cash",
	MethodCard:   "Credit/Debit Card",
	MethodWallet: "GCash",
}

// All returns the methods in the order they are offered to the shopper.
func All() []Method {
	return []Method{MethodCash, MethodCard, MethodWallet}
}

// ParseChoice maps a menu choice ("1", "2" or "3") onto a payment method.
func ParseChoice(choice string) (Method, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		return MethodCash, nil
	case "2":
		return MethodCard, nil
	case "3":
		return MethodWallet, nil
	default:
		return 0, myerrors.NewInvalidInputErrorf("invalid payment method selected: %q", choice)
	}
}

func (m Method) Label() string {
	label, found := labels[m]
	if !found {
		return "Unknown"
	}
	return label
}

func (m Method) String() string {
	return m.Label()
}

// Pay only labels the payment: no money is moved, so it never fails.
func (m Method) Pay(c context.Context, amount int) (string, error) {
	return m.Label(), nil
}

func (m Method) Receipt(amount int) string {
	return fmt.Sprintf("Paid %d using %s.", amount, m.Label())
}
