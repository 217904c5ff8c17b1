package warung

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Reference texts recorded on stock log entries.
const (
	RefNewProduct     = "New product"
	RefManualEdit     = "Manual stock edit"
	RefManualIncrease = "Manual stock increment"
	RefManualDecrease = "Manual stock decrement"
	RefSale           = "Penjualan"
)

// AddProduct validates and stores a new product. An initial stock greater
// than zero is recorded in the stock log.
func (s *Store) AddProduct(p Product) (*Product, error) {
	if p.Name == "" {
		return nil, errors.New("product name is required")
	}
	if p.Stock < 0 {
		return nil, fmt.Errorf("initial stock must not be negative, got %d", p.Stock)
	}
	if p.Price < 0 || p.Cost < 0 {
		return nil, errors.New("price and cost must not be negative")
	}
	if p.MinStock <= 0 {
		p.MinStock = DefaultMinStock
	}

	s.mu.Lock()
	now := time.Now()
	p.ID = NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.resolveCategory(&p)
	s.products[p.ID] = &p
	if p.Stock > 0 {
		s.appendStockLog(&p, StockIn, p.Stock, RefNewProduct, Today())
	}
	cp := p
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// ProductUpdate carries the new field values for an edited product.
type ProductUpdate struct {
	Name       string
	CategoryID ID
	Stock      int
	Price      Money
	Cost       Money
	MinStock   int
	Barcode    string
}

// UpdateProduct replaces the product's fields. A stock change is recorded in
// the stock log with the signed difference; an unchanged stock logs nothing.
func (s *Store) UpdateProduct(id ID, upd ProductUpdate) (*Product, error) {
	if upd.Name == "" {
		return nil, errors.New("product name is required")
	}
	if upd.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative, got %d", upd.Stock)
	}
	if upd.Price < 0 || upd.Cost < 0 {
		return nil, errors.New("price and cost must not be negative")
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrProductNotFound
	}

	delta := upd.Stock - p.Stock
	p.Name = upd.Name
	p.CategoryID = upd.CategoryID
	p.Stock = upd.Stock
	p.Price = upd.Price
	p.Cost = upd.Cost
	if upd.MinStock > 0 {
		p.MinStock = upd.MinStock
	}
	p.Barcode = upd.Barcode
	p.UpdatedAt = time.Now()
	s.resolveCategory(p)

	if delta > 0 {
		s.appendStockLog(p, StockIn, delta, RefManualEdit, Today())
	} else if delta < 0 {
		s.appendStockLog(p, StockOut, -delta, RefManualEdit, Today())
	}
	cp := *p
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// AdjustStock applies the +/- button: a positive delta adds stock, a negative
// delta removes it. Removal is clamped so stock never goes below zero, and
// the logged quantity is the delta actually applied, not the one requested.
//
// A stale product id is a no-op: the attempt is logged for debugging but no
// error reaches the caller.
func (s *Store) AdjustStock(id ID, delta int) *Product {
	if delta == 0 {
		return s.Product(id)
	}

	s.mu.Lock()
	p, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		log.Printf("stock adjust ignored: product %s no longer exists", id)
		return nil
	}

	applied := delta
	if applied < 0 && p.Stock+applied < 0 {
		applied = -p.Stock
	}
	p.Stock += applied
	p.UpdatedAt = time.Now()
	if applied > 0 {
		s.appendStockLog(p, StockIn, applied, RefManualIncrease, Today())
	} else if applied < 0 {
		s.appendStockLog(p, StockOut, -applied, RefManualDecrease, Today())
	}
	cp := *p
	s.mu.Unlock()
	s.markDirty()
	return &cp
}

// DeleteProduct removes the product outright. No stock log entry is written,
// even when stock remains; the movement trail keeps only the entries recorded
// while the product lived.
func (s *Store) DeleteProduct(id ID) error {
	s.mu.Lock()
	if _, ok := s.products[id]; !ok {
		s.mu.Unlock()
		return ErrProductNotFound
	}
	delete(s.products, id)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// appendStockLog records one stock movement. Callers hold the store lock and
// guarantee qty > 0.
func (s *Store) appendStockLog(p *Product, dir StockDirection, qty int, reference string, tanggal Date) {
	s.stockLogs = append(s.stockLogs, StockLog{
		ID:          NewID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        dir,
		Jumlah:      qty,
		Reference:   reference,
		Tanggal:     tanggal,
		CreatedAt:   time.Now(),
	})
}

// consumeStock decrements a product's stock for a sold item, clamped at
// zero. A product that no longer exists is a logged no-op. Callers hold the
// store lock.
func (s *Store) consumeStock(productID ID, qty int, tanggal Date) {
	p, ok := s.products[productID]
	if !ok {
		log.Printf("stock consumption ignored: product %s no longer exists", productID)
		return
	}
	applied := qty
	if applied > p.Stock {
		applied = p.Stock
	}
	if applied == 0 {
		return
	}
	p.Stock -= applied
	p.UpdatedAt = time.Now()
	if s.LogSales {
		s.appendStockLog(p, StockOut, applied, RefSale, tanggal)
	}
}

// resolveCategory refreshes the product's category-name snapshot from its
// weak reference. Callers hold the store lock.
func (s *Store) resolveCategory(p *Product) {
	if p.CategoryID == "" {
		p.Category = ""
		return
	}
	if c, ok := s.categories[p.CategoryID]; ok {
		p.Category = c.Name
	} else {
		p.CategoryID = ""
		p.Category = ""
	}
}
