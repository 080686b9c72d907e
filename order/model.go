package order

type Order struct {
	OrderID       int
	TotalAmount   int
	PaymentMethod string
	Lines         []Line
}

type Line struct {
	ProductID   string
	ProductName string
	Price       int
	Quantity    int
}
