package catalog

import (
	"fmt"

	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/order"
)

// Catalog is a read-only view on a fixed list of products.
type Catalog struct {
	products []Product
}

// New validates and copies the given products. Ids must be unique and prices non-negative,
// and every product must survive being written to and read back from the orders file.
func New(products []Product) (*Catalog, error) {
	seen := map[string]bool{}
	copied := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, myerrors.NewInvalidInputErrorf("product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, myerrors.NewInvalidInputErrorf("duplicate product id %s", p.ID)
		}
		err := order.CheckDetail(p.ID, p.Name)
		if err != nil {
			return nil, myerrors.NewInvalidInputError(err)
		}
		if p.Price < 0 {
			return nil, myerrors.NewInvalidInputErrorf("product %s has negative price %d", p.ID, p.Price)
		}
		seen[p.ID] = true
		copied = append(copied, p)
	}
	return &Catalog{
		products: copied,
	}, nil
}

// Default returns the products the store ships with.
func Default() *Catalog {
	c, err := New([]Product{
		{ID: "ABC", Name: "Paper", Price: 20},
		{ID: "CDE", Name: "Pencil", Price: 10},
		{ID: "QWE", Name: "Notebook", Price: 50},
		{ID: "TRE", Name: "Eraser", Price: 5},
		{ID: "POI", Name: "Pen", Price: 15},
	})
	if err != nil {
		panic(fmt.Sprintf("invalid default catalog: %s", err))
	}
	return c
}

func (c *Catalog) List() []Product {
	result := make([]Product, len(c.products))
	copy(result, c.products)
	return result
}

func (c *Catalog) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
