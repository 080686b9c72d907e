package catalog

type Product struct {
	ID    string
	Name  string
	Price int
}
