package checkout

import (
	"context"

	"github.com/MarcGrol/storecli/order"
)

type OrderStorer interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	LastOrderID(c context.Context) (int, error)
	Append(c context.Context, o order.Order) error
}

type EventLogger interface {
	Append(c context.Context, orderID int, paymentMethod string) error
}
