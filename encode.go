package warung

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// The store is persisted as one JSON document per collection under the data
// directory. Each document is the plain serialization of the in-memory
// collection, with dates as ISO-8601 strings. The documents are independent
// so a corrupt one only costs its own collection.

const (
	productsFile     = "products.json"
	categoriesFile   = "categories.json"
	stockLogsFile    = "stocklogs.json"
	receiptsFile     = "receipts.json"
	transactionsFile = "transactions.json"
	debtsFile        = "debts.json"
	settingsFile     = "settings.json"
	draftFile        = "draft.json"
)

// DecodeStore rehydrates a store from the data directory. Missing files are
// empty collections. Corrupt documents are skipped: the returned store is
// always usable, and the joined error describes what could not be read so
// the caller can surface a non-fatal notice.
func DecodeStore(dir string) (*Store, error) {
	s := NewStore()
	var errs error

	var products []Product
	if err := decodeFile(dir, productsFile, &products); err != nil {
		errs = errors.Join(errs, err)
	}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}

	var categories []Category
	if err := decodeFile(dir, categoriesFile, &categories); err != nil {
		errs = errors.Join(errs, err)
	}
	for i := range categories {
		c := categories[i]
		s.categories[c.ID] = &c
	}

	if err := decodeFile(dir, stockLogsFile, &s.stockLogs); err != nil {
		errs = errors.Join(errs, err)
	}
	if err := decodeFile(dir, receiptsFile, &s.receipts); err != nil {
		errs = errors.Join(errs, err)
	}

	var transactions []Transaction
	if err := decodeFile(dir, transactionsFile, &transactions); err != nil {
		errs = errors.Join(errs, err)
	}
	for i := range transactions {
		t := transactions[i]
		s.transactions[t.ID] = &t
	}

	var debts []Debt
	if err := decodeFile(dir, debtsFile, &debts); err != nil {
		errs = errors.Join(errs, err)
	}
	for i := range debts {
		d := debts[i]
		if d.Transactions == nil {
			d.Transactions = make([]DebtTransaction, 0)
		}
		s.debts[d.ID] = &d
	}

	if err := decodeFile(dir, settingsFile, &s.settings); err != nil {
		errs = errors.Join(errs, err)
	}
	if _, err := os.Stat(filepath.Join(dir, draftFile)); err == nil {
		var draft Draft
		if err := decodeFile(dir, draftFile, &draft); err != nil {
			errs = errors.Join(errs, err)
		} else {
			s.draft = &draft
		}
	}

	return s, errs
}

// decodeFile reads one collection document. A missing file is not an error;
// the target is left untouched.
func decodeFile(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse %s: %w", name, err)
	}
	return nil
}

// EncodeStore writes the full snapshot, one document per collection.
func EncodeStore(dir string, s *Store) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := encodeFile(dir, productsFile, sortedValues(s.products)); err != nil {
		return err
	}
	if err := encodeFile(dir, categoriesFile, sortedValues(s.categories)); err != nil {
		return err
	}
	if err := encodeFile(dir, stockLogsFile, s.stockLogs); err != nil {
		return err
	}
	if err := encodeFile(dir, receiptsFile, s.receipts); err != nil {
		return err
	}
	if err := encodeFile(dir, transactionsFile, sortedValues(s.transactions)); err != nil {
		return err
	}
	if err := encodeFile(dir, debtsFile, sortedValues(s.debts)); err != nil {
		return err
	}
	if err := encodeFile(dir, settingsFile, s.settings); err != nil {
		return err
	}
	if s.draft != nil {
		if err := encodeFile(dir, draftFile, s.draft); err != nil {
			return err
		}
	} else if err := os.Remove(filepath.Join(dir, draftFile)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot clear draft: %w", err)
	}
	return nil
}

func encodeFile(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	return nil
}

// entity is the constraint for persisted map collections.
type entity interface {
	Product | Category | Transaction | Debt
}

// sortedValues flattens an id-keyed map into a slice in chronological id
// order, so the persisted documents are deterministic.
func sortedValues[E entity](m map[ID]*E) []E {
	out := make([]E, 0, len(m))
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out = append(out, *m[id])
	}
	return out
}
