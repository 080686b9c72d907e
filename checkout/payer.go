package checkout

import "context"

// Payer settles an amount and returns the label of the payment method used.
//
//go:generate mockgen -source=payer.go -package checkout -destination payer_mock.go Payer
type Payer interface {
	Pay(c context.Context, amount int) (string, error)
}
