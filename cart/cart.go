package cart

import (
	"github.com/MarcGrol/storecli/catalog"
	"github.com/MarcGrol/storecli/lib/myerrors"
)

// Cart holds the selected products, most recently added first.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{
		lines: []Line{},
	}
}

// Add prepends a new line. Adding the same product twice results in two lines.
func (c *Cart) Add(product catalog.Product, quantity int) error {
	if quantity <= 0 {
		return myerrors.NewInvalidInputErrorf("quantity must be positive, got %d", quantity)
	}
	c.lines = append([]Line{{Product: product, Quantity: quantity}}, c.lines...)
	return nil
}

func (c *Cart) Lines() []Line {
	result := make([]Line, len(c.lines))
	copy(result, c.lines)
	return result
}

func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.TotalPrice()
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = []Line{}
}
