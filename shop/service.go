package shop

import (
	"context"
	"fmt"

	"github.com/MarcGrol/storecli/cart"
	"github.com/MarcGrol/storecli/catalog"
	"github.com/MarcGrol/storecli/checkout"
	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/mylog"
	"github.com/MarcGrol/storecli/payment"
)

type OrderLister interface {
	All(c context.Context) ([]string, error)
}

type Checkouter interface {
	Checkout(c context.Context, payer checkout.Payer) (checkout.Confirmation, error)
}

type Service struct {
	catalog  *catalog.Catalog
	cart     *cart.Cart
	checkout Checkouter
	orders   OrderLister
	logger   mylog.Logger
}

// Use dependency injection: the one cart and checkout service of the process are created by main
func NewService(catalog *catalog.Catalog, cart *cart.Cart, checkout Checkouter, orders OrderLister, logger mylog.Logger) *Service {
	return &Service{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		logger:   logger,
	}
}

func (s *Service) ListProducts() []catalog.Product {
	return s.catalog.List()
}

func (s *Service) FindProduct(productID string) (catalog.Product, bool) {
	return s.catalog.Get(productID)
}

func (s *Service) AddToCart(c context.Context, productID string, quantity int) (catalog.Product, error) {
	product, found := s.catalog.Get(productID)
	if !found {
		return catalog.Product{}, myerrors.NewInvalidInputErrorf("invalid product id %q", productID)
	}

	err := s.cart.Add(product, quantity)
	if err != nil {
		return catalog.Product{}, err
	}

	s.logger.Log(c, productID, mylog.SeverityInfo, "Added %d x %s to cart", quantity, productID)

	return product, nil
}

func (s *Service) ViewCart() []cart.Line {
	return s.cart.Lines()
}

func (s *Service) CartTotal() int {
	return s.cart.Total()
}

func (s *Service) Checkout(c context.Context, method payment.Method) (checkout.Confirmation, error) {
	confirmation, err := s.checkout.Checkout(c, method)
	if err != nil {
		return checkout.Confirmation{}, err
	}

	for _, w := range confirmation.Warnings {
		s.logger.Log(c, fmt.Sprintf("%d", confirmation.OrderID), mylog.SeverityWarn, "Order %d committed with warning: %s", confirmation.OrderID, w)
	}

	return confirmation, nil
}

// ViewOrders returns the raw order blocks. An absent order file results in no orders, not an error.
func (s *Service) ViewOrders(c context.Context) ([]string, error) {
	return s.orders.All(c)
}
