package warung

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// computeItemTotals derives the per-item and transaction totals from the item
// list: totalPrice = quantity*unitPrice - discount, totalCost =
// quantity*unitCost, nominal and totalCost are the item sums.
func computeItemTotals(items []TransactionItem) (nominal, totalCost Money) {
	for i := range items {
		it := &items[i]
		it.TotalPrice = Money(int64(it.Quantity))*it.UnitPrice - it.Discount
		it.TotalCost = Money(int64(it.Quantity)) * it.UnitCost
		nominal += it.TotalPrice
		totalCost += it.TotalCost
	}
	return nominal, totalCost
}

// validateTransaction checks t before it is stored. prev is the stored
// transaction being replaced on the edit path, or nil when t is new. The
// quantities prev already consumed count as available again, because editing
// never re-consumes stock.
func (s *Store) validateTransaction(t, prev *Transaction) error {
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if _, err := ParsePaymentStatus(string(t.PaymentStatus)); err != nil {
		return err
	}
	carried := make(map[ID]int)
	if prev != nil && prev.Type == Income {
		for _, it := range prev.Items {
			carried[it.ProductID] += it.Quantity
		}
	}
	for _, it := range t.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("item %q quantity must be positive, got %d", it.ProductName, it.Quantity)
		}
		if it.UnitPrice < 0 || it.UnitCost < 0 || it.Discount < 0 {
			return fmt.Errorf("item %q prices must not be negative", it.ProductName)
		}
		if it.ProductID != "" {
			p, ok := s.products[it.ProductID]
			if !ok {
				return fmt.Errorf("item %q: %w", it.ProductName, ErrProductNotFound)
			}
			if available := p.Stock + carried[it.ProductID]; t.Type == Income && it.Quantity > available {
				return fmt.Errorf("insufficient stock for %q: have %d, need %d", p.Name, available, it.Quantity)
			}
		}
	}
	if len(t.Items) == 0 && t.Nominal < 0 {
		return errors.New("nominal must not be negative")
	}
	if t.PaymentStatus == Partial {
		if t.PaidAmount <= 0 {
			return errors.New("partial payment requires a paid amount")
		}
		if t.PaidAmount >= t.Nominal {
			return errors.New("paid amount must be less than the total for a partial payment")
		}
	}
	return nil
}

// RecordTransaction validates and stores a new transaction, then applies
// every derived update in the same logical unit: product stock is consumed
// for income items, the customer's debt grows by the outstanding amount, and
// the draft slot is cleared. Nothing is applied when validation fails.
func (s *Store) RecordTransaction(t Transaction) (*Transaction, error) {
	s.mu.Lock()

	if t.Type == Income && len(t.Items) > 0 {
		t.Nominal, t.TotalCost = computeItemTotals(t.Items)
	}
	t.Profit = t.Nominal - t.TotalCost
	if t.Tanggal.IsZero() {
		t.Tanggal = Today()
	}

	if err := s.validateTransaction(&t, nil); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := time.Now()
	t.ID = NewID()
	t.CreatedAt = now
	t.TransactionNumber = s.nextTransactionNumber(t.Tanggal)
	for i := range t.Items {
		if t.Items[i].ID == "" {
			t.Items[i].ID = NewID()
		}
	}
	s.transactions[t.ID] = &t

	if t.Type == Income {
		for _, it := range t.Items {
			if it.ProductID != "" {
				s.consumeStock(it.ProductID, it.Quantity, t.Tanggal)
			}
		}
	}
	s.applyTransactionDebt(&t)
	s.draft = nil

	cp := *t.clone()
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// UpdateTransaction replaces the transaction's editable fields and recomputes
// the derived totals from the new item list. Stock and debts are not
// re-reconciled: the movement and ledger entries recorded at creation stand.
func (s *Store) UpdateTransaction(id ID, upd Transaction) (*Transaction, error) {
	s.mu.Lock()
	t, ok := s.transactions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrTransactionNotFound
	}

	if upd.Type == Income && len(upd.Items) > 0 {
		upd.Nominal, upd.TotalCost = computeItemTotals(upd.Items)
	}
	upd.Profit = upd.Nominal - upd.TotalCost
	if upd.Tanggal.IsZero() {
		upd.Tanggal = t.Tanggal
	}
	if err := s.validateTransaction(&upd, t); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := time.Now()
	t.Type = upd.Type
	t.Items = upd.Items
	t.Nominal = upd.Nominal
	t.TotalCost = upd.TotalCost
	t.Profit = upd.Profit
	t.Catatan = upd.Catatan
	t.Kategori = upd.Kategori
	t.Tanggal = upd.Tanggal
	t.CustomerName = upd.CustomerName
	t.CustomerPhone = upd.CustomerPhone
	t.PaymentStatus = upd.PaymentStatus
	t.PaidAmount = upd.PaidAmount
	t.UpdatedAt = now
	for i := range t.Items {
		if t.Items[i].ID == "" {
			t.Items[i].ID = NewID()
		}
	}

	cp := *t.clone()
	s.mu.Unlock()
	s.markDirty()
	return &cp, nil
}

// DeleteTransaction removes the transaction outright. Stock and debt entries
// derived from it are kept; only the financial record disappears.
func (s *Store) DeleteTransaction(id ID) error {
	s.mu.Lock()
	if _, ok := s.transactions[id]; !ok {
		s.mu.Unlock()
		return ErrTransactionNotFound
	}
	delete(s.transactions, id)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// nextTransactionNumber builds the human-readable sequence for the given
// day, e.g. TRX-20260901-0003. The next number is one past the highest
// suffix issued that day, so a number is never reissued after a deletion.
// Callers hold the store lock.
func (s *Store) nextTransactionNumber(on Date) string {
	prefix := fmt.Sprintf("TRX-%s-", on.Format("20060102"))
	high := 0
	for _, t := range s.transactions {
		if !strings.HasPrefix(t.TransactionNumber, prefix) {
			continue
		}
		if n, err := strconv.Atoi(t.TransactionNumber[len(prefix):]); err == nil && n > high {
			high = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, high+1)
}

func (t *Transaction) clone() *Transaction {
	cp := *t
	cp.Items = make([]TransactionItem, len(t.Items))
	copy(cp.Items, t.Items)
	return &cp
}
