package cart

import "github.com/MarcGrol/storecli/catalog"

type Line struct {
	Product  catalog.Product
	Quantity int
}

func (l Line) TotalPrice() int {
	return l.Product.Price * l.Quantity
}
