package warung

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	s := newTestStore()
	p := mustAddProduct(s, "Kopi Sachet", 24, Rp(2600), Rp(1800))
	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 4)},
		PaymentStatus: Unpaid,
		CustomerName:  "Ani",
	}); err != nil {
		t.Fatal(err)
	}
	s.SetSettings(Settings{StoreName: "Warung Bu Sri"})

	var buf bytes.Buffer
	if err := Export(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"version": "`+ExportVersion+`"`) {
		t.Fatalf("bundle misses the version tag:\n%s", buf.String())
	}

	// Importing into a store with unrelated data replaces it wholesale.
	other := newTestStore()
	mustAddProduct(other, "Lama", 99, Rp(100), Rp(50))
	if err := Import(&buf, other); err != nil {
		t.Fatal(err)
	}

	products := other.Products()
	if len(products) != 1 || products[0].Name != "Kopi Sachet" || products[0].Stock != 20 {
		t.Errorf("products not replaced by the bundle: %+v", products)
	}
	if len(other.Transactions()) != 1 {
		t.Errorf("transactions not imported")
	}
	d := other.FindDebtByCustomer("Ani")
	if d == nil || d.TotalDebt != Rp(4*2600) {
		t.Errorf("debts not imported: %+v", d)
	}
	if other.Settings().StoreName != "Warung Bu Sri" {
		t.Errorf("settings not imported")
	}
	if drifted := other.CheckDebtBalances(); len(drifted) > 0 {
		t.Errorf("imported debts drifted: %v", drifted)
	}
}

func TestImport_RejectsBadBundles(t *testing.T) {
	testCases := []struct {
		name    string
		bundle  string
		wantErr string
	}{
		{"not json", "{broken", "not valid JSON"},
		{"missing version", `{"products": []}`, "no version tag"},
		{"wrong version", `{"version": "0.9", "products": []}`, "unsupported bundle version"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			mustAddProduct(s, "Tetap", 5, Rp(1000), Rp(600))

			err := Import(strings.NewReader(tc.bundle), s)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
			}
			// A rejected bundle must not touch the store.
			if got := s.Products(); len(got) != 1 || got[0].Name != "Tetap" {
				t.Errorf("rejected import changed the store: %+v", got)
			}
		})
	}
}

func TestExport_Deterministic(t *testing.T) {
	s := newTestStore()
	mustAddProduct(s, "A", 1, Rp(100), Rp(50))
	mustAddProduct(s, "B", 2, Rp(200), Rp(150))

	var a, b bytes.Buffer
	if err := Export(&a, s); err != nil {
		t.Fatal(err)
	}
	if err := Export(&b, s); err != nil {
		t.Fatal(err)
	}
	// Only the exportedAt stamp may differ between two exports of the same
	// store.
	strip := func(out string) string {
		var kept []string
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, `"exportedAt"`) {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}
	if strip(a.String()) != strip(b.String()) {
		t.Errorf("exports of the same store differ:\n%s\n---\n%s", a.String(), b.String())
	}
}
