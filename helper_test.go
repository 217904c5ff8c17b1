package warung

// test helpers shared across the package tests.

// newTestStore returns a store with the persistence hook disabled and sale
// logging on, as in the default configuration.
func newTestStore() *Store {
	return NewStore()
}

// mustAddProduct creates a product or fails the test via panic; for
// arrange-phases where the creation itself is not under test.
func mustAddProduct(s *Store, name string, stock int, price, cost Money) *Product {
	p, err := s.AddProduct(Product{Name: name, Stock: stock, Price: price, Cost: cost})
	if err != nil {
		panic(err)
	}
	return p
}

// item builds an income transaction line for a stored product.
func item(p *Product, qty int) TransactionItem {
	return TransactionItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   p.Price,
		UnitCost:    p.Cost,
	}
}
