package warung

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors returned by store operations.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDebtNotFound        = errors.New("debt not found")
)

// Store owns every collection. It is the single source of truth: views and
// commands receive entities by value and route all mutations back through the
// typed operations, never through a private divergent copy.
//
// The store is written by one logical actor at a time; the mutex only guards
// the snapshot taken by the persistence mirror's flush.
type Store struct {
	mu sync.RWMutex

	products     map[ID]*Product
	categories   map[ID]*Category
	transactions map[ID]*Transaction
	debts        map[ID]*Debt
	stockLogs    []StockLog
	receipts     []Receipt
	settings     Settings
	draft        *Draft

	// LogSales controls whether sale-driven stock consumption emits a
	// StockLog entry. On by default so the audit trail stays complete.
	LogSales bool

	onChange func()
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products:     make(map[ID]*Product),
		categories:   make(map[ID]*Category),
		transactions: make(map[ID]*Transaction),
		debts:        make(map[ID]*Debt),
		stockLogs:    make([]StockLog, 0),
		receipts:     make([]Receipt, 0),
		LogSales:     true,
	}
}

// OnChange registers a hook invoked after every completed mutation. The
// persistence mirror uses it to mark the snapshot dirty. The hook runs
// outside the store lock.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) markDirty() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Product returns the product with the given id, or nil.
func (s *Store) Product(id ID) *Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

// Products returns all products, newest first.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Category returns the category with the given id, or nil.
func (s *Store) Category(id ID) *Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.categories[id]; ok {
		cp := *c
		return &cp
	}
	return nil
}

// Categories returns all categories, newest first.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Transaction returns the transaction with the given id, or nil.
func (s *Store) Transaction(id ID) *Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.transactions[id]; ok {
		cp := *t
		return &cp
	}
	return nil
}

// Transactions returns all transactions, newest first.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Debt returns the debt with the given id, or nil.
func (s *Store) Debt(id ID) *Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.debts[id]; ok {
		return copyDebt(d)
	}
	return nil
}

// Debts returns all debts, newest first.
func (s *Store) Debts() []Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Debt, 0, len(s.debts))
	for _, d := range s.debts {
		out = append(out, *copyDebt(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func copyDebt(d *Debt) *Debt {
	cp := *d
	cp.Transactions = make([]DebtTransaction, len(d.Transactions))
	copy(cp.Transactions, d.Transactions)
	return &cp
}

// StockLogs returns the stock movement trail, newest first.
func (s *Store) StockLogs() []StockLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StockLog, len(s.stockLogs))
	copy(out, s.stockLogs)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Receipts returns the legacy point-of-sale records, newest first.
func (s *Store) Receipts() []Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// AddReceipt appends a legacy point-of-sale record.
func (s *Store) AddReceipt(r Receipt) Receipt {
	s.mu.Lock()
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.Tanggal.IsZero() {
		r.Tanggal = Today()
	}
	s.receipts = append(s.receipts, r)
	s.mu.Unlock()
	s.markDirty()
	return r
}

// Settings returns the store profile.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the store profile.
func (s *Store) SetSettings(st Settings) {
	s.mu.Lock()
	s.settings = st
	s.mu.Unlock()
	s.markDirty()
}

// Draft returns the pending draft transaction, or nil.
func (s *Store) Draft() *Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		return nil
	}
	cp := *s.draft
	return &cp
}

// SetDraft stores the pending draft transaction. A nil draft clears the slot.
func (s *Store) SetDraft(d *Draft) {
	s.mu.Lock()
	if d == nil {
		s.draft = nil
	} else {
		cp := *d
		s.draft = &cp
	}
	s.mu.Unlock()
	s.markDirty()
}
