package warung

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// ExportVersion tags the consolidated backup bundle. Import rejects any
// bundle whose version is absent or different; there is no migration logic.
const ExportVersion = "1.0"

// Export writes the whole data set as a single consolidated JSON document:
// every collection, the settings blob and a version tag. The field order is
// fixed so exports of the same store are byte-identical.
func Export(w io.Writer, s *Store) error {
	s.mu.RLock()
	var b jsonObjectWriter
	b.Append("version", ExportVersion)
	b.Append("exportedAt", time.Now().Format(time.RFC3339))
	b.Append("settings", s.settings)
	b.Append("products", sortedValues(s.products))
	b.Append("categories", sortedValues(s.categories))
	b.Append("stockLogs", s.stockLogs)
	b.Append("receipts", s.receipts)
	b.Append("transactions", sortedValues(s.transactions))
	b.Append("debts", sortedValues(s.debts))
	b.Optional("draft", s.draft)
	s.mu.RUnlock()

	data, err := json.Marshal(&b)
	if err != nil {
		return fmt.Errorf("cannot build export bundle: %w", err)
	}
	var indented json.RawMessage = data
	out, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format export bundle: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("cannot write export bundle: %w", err)
	}
	return nil
}

type bundle struct {
	Version      string        `json:"version"`
	Settings     Settings      `json:"settings"`
	Products     []Product     `json:"products"`
	Categories   []Category    `json:"categories"`
	StockLogs    []StockLog    `json:"stockLogs"`
	Receipts     []Receipt     `json:"receipts"`
	Transactions []Transaction `json:"transactions"`
	Debts        []Debt        `json:"debts"`
	Draft        *Draft        `json:"draft,omitempty"`
}

// Import reads a consolidated bundle and replaces every collection in the
// store wholesale. The bundle's version is probed first on the raw document;
// an absent or mismatched version rejects the whole import, nothing is
// partially merged.
func Import(r io.Reader, s *Store) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read import bundle: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("import bundle is not valid JSON: %w", err)
	}
	version, err := jsonpath.Get("$.version", raw)
	if err != nil {
		return fmt.Errorf("import bundle has no version tag: %w", err)
	}
	if v, ok := version.(string); !ok || v != ExportVersion {
		return fmt.Errorf("unsupported bundle version %v, want %s", version, ExportVersion)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("cannot decode import bundle: %w", err)
	}

	s.mu.Lock()
	s.products = make(map[ID]*Product, len(b.Products))
	for i := range b.Products {
		p := b.Products[i]
		s.products[p.ID] = &p
	}
	s.categories = make(map[ID]*Category, len(b.Categories))
	for i := range b.Categories {
		c := b.Categories[i]
		s.categories[c.ID] = &c
	}
	s.transactions = make(map[ID]*Transaction, len(b.Transactions))
	for i := range b.Transactions {
		t := b.Transactions[i]
		s.transactions[t.ID] = &t
	}
	s.debts = make(map[ID]*Debt, len(b.Debts))
	for i := range b.Debts {
		d := b.Debts[i]
		if d.Transactions == nil {
			d.Transactions = make([]DebtTransaction, 0)
		}
		s.debts[d.ID] = &d
	}
	s.stockLogs = b.StockLogs
	if s.stockLogs == nil {
		s.stockLogs = make([]StockLog, 0)
	}
	s.receipts = b.Receipts
	if s.receipts == nil {
		s.receipts = make([]Receipt, 0)
	}
	s.settings = b.Settings
	s.draft = b.Draft
	s.mu.Unlock()
	s.markDirty()
	return nil
}
