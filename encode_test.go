package warung

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := newTestStore()
	p := mustAddProduct(s, "Kopi Sachet", 24, Rp(2600), Rp(1800))
	if _, err := s.AddCategory(Category{Name: "Minuman"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 4)},
		PaymentStatus: Unpaid,
		CustomerName:  "Ani",
	}); err != nil {
		t.Fatal(err)
	}
	s.SetSettings(Settings{StoreName: "Warung Bu Sri"})
	s.SetDraft(&Draft{Type: Income, Catatan: "belum selesai"})

	if err := EncodeStore(dir, s); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeStore(dir)
	if err != nil {
		t.Fatalf("decode of a fresh snapshot failed: %v", err)
	}
	if len(got.Products()) != 1 || got.Products()[0].Stock != 20 {
		t.Errorf("products did not round-trip: %+v", got.Products())
	}
	if len(got.Categories()) != 1 {
		t.Errorf("categories did not round-trip")
	}
	if len(got.Transactions()) != 1 {
		t.Errorf("transactions did not round-trip")
	}
	if d := got.FindDebtByCustomer("Ani"); d == nil || d.TotalDebt != Rp(4*2600) {
		t.Errorf("debts did not round-trip: %+v", d)
	}
	if got.Settings().StoreName != "Warung Bu Sri" {
		t.Errorf("settings did not round-trip")
	}
	if got.Draft() == nil || got.Draft().Catatan != "belum selesai" {
		t.Errorf("draft did not round-trip: %+v", got.Draft())
	}
}

func TestDecodeStore_MissingDirectory(t *testing.T) {
	s, err := DecodeStore(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory returned error: %v", err)
	}
	if len(s.Products()) != 0 || len(s.Transactions()) != 0 || len(s.Debts()) != 0 {
		t.Errorf("missing directory did not yield an empty store")
	}
}

func TestDecodeStore_CorruptFileKeepsRest(t *testing.T) {
	dir := t.TempDir()

	s := newTestStore()
	mustAddProduct(s, "Gula 1kg", 12, Rp(17400), Rp(15000))
	if _, err := s.AddDebtor("Budi", "", Rp(3000), Date{}, ""); err != nil {
		t.Fatal(err)
	}
	if err := EncodeStore(dir, s); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, debtsFile), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeStore(dir)
	if err == nil {
		t.Fatal("corrupt document went unreported")
	}
	if !strings.Contains(err.Error(), debtsFile) {
		t.Errorf("error does not name the corrupt document: %v", err)
	}
	// The rest of the data must still be there.
	if len(got.Products()) != 1 {
		t.Errorf("corrupt debts document cost the products: %+v", got.Products())
	}
	if len(got.Debts()) != 0 {
		t.Errorf("corrupt debts document still produced debts")
	}
}

func TestEncodeStore_RemovesClearedDraft(t *testing.T) {
	dir := t.TempDir()

	s := newTestStore()
	s.SetDraft(&Draft{Catatan: "x"})
	if err := EncodeStore(dir, s); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, draftFile)); err != nil {
		t.Fatalf("draft document not written: %v", err)
	}

	s.SetDraft(nil)
	if err := EncodeStore(dir, s); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, draftFile)); !os.IsNotExist(err) {
		t.Errorf("cleared draft still on disk: %v", err)
	}
}
