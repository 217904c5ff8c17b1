package warung

import "sort"

// DailySummary aggregates one day of transactions.
type DailySummary struct {
	Date    Date
	Income  Money
	Expense Money
	COGS    Money
	Profit  Money
	Count   int
}

// Daily sums the transactions recorded on the given day.
func (s *Store) Daily(on Date) DailySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := DailySummary{Date: on}
	for _, t := range s.transactions {
		if t.Tanggal != on {
			continue
		}
		sum.Count++
		switch t.Type {
		case Income:
			sum.Income += t.Nominal
			sum.COGS += t.TotalCost
			sum.Profit += t.Profit
		case Expense:
			sum.Expense += t.Nominal
		}
	}
	return sum
}

// RangeSummary aggregates transactions over an inclusive date range.
type RangeSummary struct {
	From    Date
	To      Date
	Income  Money
	Expense Money
	COGS    Money
	Profit  Money
	Margin  Percent // profit as a share of income
	Count   int
}

// Summarize sums the transactions between from and to, inclusive.
func (s *Store) Summarize(from, to Date) RangeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := RangeSummary{From: from, To: to}
	for _, t := range s.transactions {
		if t.Tanggal.Before(from) || t.Tanggal.After(to) {
			continue
		}
		sum.Count++
		switch t.Type {
		case Income:
			sum.Income += t.Nominal
			sum.COGS += t.TotalCost
			sum.Profit += t.Profit
		case Expense:
			sum.Expense += t.Nominal
		}
	}
	sum.Margin = MarginOf(sum.Profit, sum.Income)
	return sum
}

// LowStock returns the products at or below their reorder threshold, lowest
// stock first.
func (s *Store) LowStock() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProductSales is the sold quantity and revenue of one product over a range.
type ProductSales struct {
	ProductName string
	Quantity    int
	Revenue     Money
}

// TopProducts ranks products by quantity sold between from and to,
// inclusive, returning at most n entries.
func (s *Store) TopProducts(from, to Date, n int) []ProductSales {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byName := make(map[string]*ProductSales)
	for _, t := range s.transactions {
		if t.Type != Income || t.Tanggal.Before(from) || t.Tanggal.After(to) {
			continue
		}
		for _, it := range t.Items {
			ps, ok := byName[it.ProductName]
			if !ok {
				ps = &ProductSales{ProductName: it.ProductName}
				byName[it.ProductName] = ps
			}
			ps.Quantity += it.Quantity
			ps.Revenue += it.TotalPrice
		}
	}
	out := make([]ProductSales, 0, len(byName))
	for _, ps := range byName {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].ProductName < out[j].ProductName
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DebtTotals is the two sides of the debt ledger: what customers owe the
// store (receivable) and what the store owes customers (payable).
type DebtTotals struct {
	Receivable Money
	Payable    Money
	Debtors    int
}

// TotalDebts sums the signed balances over all debts.
func (s *Store) TotalDebts() DebtTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out DebtTotals
	for _, d := range s.debts {
		out.Debtors++
		if d.TotalDebt > 0 {
			out.Receivable += d.TotalDebt
		} else {
			out.Payable += -d.TotalDebt
		}
	}
	return out
}
