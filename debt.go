package warung

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// debtKey is the matching key for a customer. Matching is an exact,
// case-sensitive comparison on the customer name: two spellings of the same
// person are two debtors. Kept in one place so the simplification is visible
// and swappable.
func debtKey(customerName string) string { return customerName }

// FindDebtByCustomer returns the debt whose customer name matches exactly,
// or nil.
func (s *Store) FindDebtByCustomer(name string) *Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDebt(name); d != nil {
		return copyDebt(d)
	}
	return nil
}

func (s *Store) findDebt(name string) *Debt {
	key := debtKey(name)
	for _, d := range s.debts {
		if debtKey(d.CustomerName) == key {
			return d
		}
	}
	return nil
}

// appendDebtEntry appends one ledger entry and moves the running balance in
// the same step, so the ledger and TotalDebt can never drift apart. Callers
// hold the store lock and guarantee amount > 0.
func (s *Store) appendDebtEntry(d *Debt, dir DebtDirection, amount Money, catatan string, tanggal Date) DebtTransaction {
	entry := DebtTransaction{
		ID:        NewID(),
		DebtID:    d.ID,
		Type:      dir,
		Amount:    amount,
		Catatan:   catatan,
		Tanggal:   tanggal,
		CreatedAt: time.Now(),
	}
	d.Transactions = append(d.Transactions, entry)
	if dir == DebtGive {
		d.TotalDebt += amount
	} else {
		d.TotalDebt -= amount
	}
	d.UpdatedAt = entry.CreatedAt
	return entry
}

// applyTransactionDebt grows the customer's debt by a transaction's
// outstanding amount. Fully paid transactions never touch the debt ledger,
// even for customers with prior debt. Callers hold the store lock.
func (s *Store) applyTransactionDebt(t *Transaction) {
	if t.PaymentStatus == Paid || t.CustomerName == "" {
		return
	}
	outstanding := t.Outstanding()
	if outstanding <= 0 {
		return
	}

	d := s.findDebt(t.CustomerName)
	if d == nil {
		now := time.Now()
		d = &Debt{
			ID:            NewID(),
			CustomerName:  t.CustomerName,
			CustomerPhone: t.CustomerPhone,
			Transactions:  make([]DebtTransaction, 0, 1),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		s.debts[d.ID] = d
	}
	s.appendDebtEntry(d, DebtGive, outstanding, t.Catatan, t.Tanggal)
}

// AddDebtor creates a debt by hand with an initial signed amount: positive
// means the customer already owes the store, negative means the store owes
// the customer. The seed ledger entry is chosen so it reconciles exactly to
// the initial balance. A zero amount seeds an empty ledger.
func (s *Store) AddDebtor(name, phone string, amount Money, dueDate Date, catatan string) (*Debt, error) {
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	s.mu.Lock()
	if s.findDebt(name) != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("debtor %q already exists", name)
	}
	now := time.Now()
	d := &Debt{
		ID:            NewID(),
		CustomerName:  name,
		CustomerPhone: phone,
		DueDate:       dueDate,
		Transactions:  make([]DebtTransaction, 0, 1),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.debts[d.ID] = d
	if amount > 0 {
		s.appendDebtEntry(d, DebtGive, amount, catatan, Today())
	} else if amount < 0 {
		s.appendDebtEntry(d, DebtReceive, -amount, catatan, Today())
	}
	cp := copyDebt(d)
	s.mu.Unlock()
	s.markDirty()
	return cp, nil
}

// GiveCredit extends the customer's debt ("memberi") by the given amount.
func (s *Store) GiveCredit(id ID, amount Money, catatan string, tanggal Date) (*Debt, error) {
	return s.appendDebt(id, DebtGive, amount, catatan, tanggal)
}

// ReceivePayment records a payment from the customer ("menerima"),
// reducing the balance.
func (s *Store) ReceivePayment(id ID, amount Money, catatan string, tanggal Date) (*Debt, error) {
	return s.appendDebt(id, DebtReceive, amount, catatan, tanggal)
}

func (s *Store) appendDebt(id ID, dir DebtDirection, amount Money, catatan string, tanggal Date) (*Debt, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if tanggal.IsZero() {
		tanggal = Today()
	}
	s.mu.Lock()
	d, ok := s.debts[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrDebtNotFound
	}
	s.appendDebtEntry(d, dir, amount, catatan, tanggal)
	cp := copyDebt(d)
	s.mu.Unlock()
	s.markDirty()
	return cp, nil
}

// PayOff settles a positive balance in one step ("Lunaskan Sekarang"): it
// records a single receiving entry for the full outstanding amount and
// returns that amount. A balance at or below zero is a no-op: no entry is
// appended and zero is returned.
func (s *Store) PayOff(id ID, catatan string, tanggal Date) (Money, error) {
	if tanggal.IsZero() {
		tanggal = Today()
	}
	s.mu.Lock()
	d, ok := s.debts[id]
	if !ok {
		s.mu.Unlock()
		return 0, ErrDebtNotFound
	}
	if d.TotalDebt <= 0 {
		s.mu.Unlock()
		return 0, nil
	}
	amount := d.TotalDebt
	s.appendDebtEntry(d, DebtReceive, amount, catatan, tanggal)
	s.mu.Unlock()
	s.markDirty()
	return amount, nil
}

// Refund pays store credit back to the customer: a negative balance moves
// toward zero with one giving entry. A request larger than the available
// credit is clamped, never rejected; the applied amount is returned. A
// balance at or above zero is a no-op.
func (s *Store) Refund(id ID, amount Money, catatan string, tanggal Date) (Money, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("refund amount must be positive, got %s", amount)
	}
	if tanggal.IsZero() {
		tanggal = Today()
	}
	s.mu.Lock()
	d, ok := s.debts[id]
	if !ok {
		s.mu.Unlock()
		return 0, ErrDebtNotFound
	}
	if d.TotalDebt >= 0 {
		s.mu.Unlock()
		return 0, nil
	}
	applied := amount
	if credit := -d.TotalDebt; applied > credit {
		applied = credit
	}
	s.appendDebtEntry(d, DebtGive, applied, catatan, tanggal)
	s.mu.Unlock()
	s.markDirty()
	return applied, nil
}

// DeleteDebt removes the debt and its whole ledger permanently.
func (s *Store) DeleteDebt(id ID) error {
	s.mu.Lock()
	if _, ok := s.debts[id]; !ok {
		s.mu.Unlock()
		return ErrDebtNotFound
	}
	delete(s.debts, id)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// CheckDebtBalances verifies that every debt's running balance equals the
// signed sum of its ledger. It returns the ids that drifted; a non-empty
// result indicates a bug in a mutation path and is worth logging loudly.
func (s *Store) CheckDebtBalances() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var drifted []ID
	for id, d := range s.debts {
		if d.Balance() != d.TotalDebt {
			log.Printf("debt %s: balance %s does not match ledger sum %s", id, d.TotalDebt, d.Balance())
			drifted = append(drifted, id)
		}
	}
	return drifted
}
