package warung

import (
	"strings"
	"testing"
)

func TestRecordTransaction_DerivedTotals(t *testing.T) {
	s := newTestStore()
	a := mustAddProduct(s, "Kopi Sachet", 50, Rp(2600), Rp(1800))
	b := mustAddProduct(s, "Gula 1kg", 20, Rp(17400), Rp(15000))

	items := []TransactionItem{item(a, 10), item(b, 2)}
	items[1].Discount = Rp(400)

	tx, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         items,
		PaymentStatus: Paid,
	})
	if err != nil {
		t.Fatal(err)
	}

	wantNominal := Rp(10*2600 + 2*17400 - 400)
	wantCost := Rp(10*1800 + 2*15000)
	if tx.Nominal != wantNominal {
		t.Errorf("nominal = %d, want %d", tx.Nominal, wantNominal)
	}
	if tx.TotalCost != wantCost {
		t.Errorf("totalCost = %d, want %d", tx.TotalCost, wantCost)
	}
	if tx.Profit != wantNominal-wantCost {
		t.Errorf("profit = %d, want %d", tx.Profit, wantNominal-wantCost)
	}

	// The item sums must match the transaction totals.
	var sumPrice, sumCost Money
	for _, it := range tx.Items {
		sumPrice += it.TotalPrice
		sumCost += it.TotalCost
	}
	if sumPrice != tx.Nominal || sumCost != tx.TotalCost {
		t.Errorf("item sums %d/%d do not match totals %d/%d", sumPrice, sumCost, tx.Nominal, tx.TotalCost)
	}
}

func TestRecordTransaction_ConsumesStock(t *testing.T) {
	s := newTestStore()
	p := mustAddProduct(s, "Roti Tawar", 8, Rp(17800), Rp(12000))

	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 3)},
		PaymentStatus: Paid,
	}); err != nil {
		t.Fatal(err)
	}

	got := s.Product(p.ID)
	if got.Stock != 5 {
		t.Errorf("stock = %d, want 5", got.Stock)
	}
	logs := s.StockLogs()
	if len(logs) != 2 { // initial stock + sale
		t.Fatalf("got %d stock logs, want 2", len(logs))
	}
	if l := logs[0]; l.Type != StockOut || l.Jumlah != 3 || l.Reference != RefSale {
		t.Errorf("unexpected sale log %+v", l)
	}
}

func TestRecordTransaction_SaleLoggingConfigurable(t *testing.T) {
	s := newTestStore()
	s.LogSales = false
	p := mustAddProduct(s, "Roti Tawar", 8, Rp(17800), Rp(12000))

	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 3)},
		PaymentStatus: Paid,
	}); err != nil {
		t.Fatal(err)
	}
	if got := s.Product(p.ID).Stock; got != 5 {
		t.Errorf("stock = %d, want 5", got)
	}
	if got := len(s.StockLogs()); got != 1 { // only the initial stock entry
		t.Errorf("got %d stock logs, want 1", got)
	}
}

func TestRecordTransaction_Validation(t *testing.T) {
	s := newTestStore()
	p := mustAddProduct(s, "Susu UHT 1L", 2, Rp(18900), Rp(15500))

	testCases := []struct {
		name    string
		tx      Transaction
		wantErr string
	}{
		{
			name: "insufficient stock",
			tx: Transaction{
				Type:          Income,
				Items:         []TransactionItem{item(p, 5)},
				PaymentStatus: Paid,
			},
			wantErr: "insufficient stock",
		},
		{
			name: "non-positive quantity",
			tx: Transaction{
				Type:          Income,
				Items:         []TransactionItem{{ProductName: "x", Quantity: 0, UnitPrice: Rp(100)}},
				PaymentStatus: Paid,
			},
			wantErr: "quantity must be positive",
		},
		{
			name: "unknown payment status",
			tx: Transaction{
				Type:          Income,
				Nominal:       Rp(1000),
				PaymentStatus: PaymentStatus("cicilan"),
			},
			wantErr: "unknown payment status",
		},
		{
			name: "unknown type",
			tx: Transaction{
				Type:          TransactionType("transfer"),
				Nominal:       Rp(1000),
				PaymentStatus: Paid,
			},
			wantErr: "unknown transaction type",
		},
		{
			name: "partial without paid amount",
			tx: Transaction{
				Type:          Income,
				Nominal:       Rp(5000),
				PaymentStatus: Partial,
			},
			wantErr: "requires a paid amount",
		},
		{
			name: "partial paid in full",
			tx: Transaction{
				Type:          Income,
				Nominal:       Rp(5000),
				PaidAmount:    Rp(5000),
				PaymentStatus: Partial,
			},
			wantErr: "must be less than the total",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(s.Transactions())
			stockBefore := s.Product(p.ID).Stock

			_, err := s.RecordTransaction(tc.tx)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
			}
			// A rejected transaction must leave the store untouched.
			if got := len(s.Transactions()); got != before {
				t.Errorf("rejected transaction was stored")
			}
			if got := s.Product(p.ID).Stock; got != stockBefore {
				t.Errorf("rejected transaction changed stock: %d -> %d", stockBefore, got)
			}
		})
	}
}

func TestRecordTransaction_NumberSequence(t *testing.T) {
	s := newTestStore()
	day := MustParseDate("2026-08-30")

	first, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(5000), PaymentStatus: Paid, Tanggal: day})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(7000), PaymentStatus: Paid, Tanggal: day})
	if err != nil {
		t.Fatal(err)
	}
	if first.TransactionNumber != "TRX-20260830-0001" {
		t.Errorf("first number = %q", first.TransactionNumber)
	}
	if second.TransactionNumber != "TRX-20260830-0002" {
		t.Errorf("second number = %q", second.TransactionNumber)
	}
}

func TestRecordTransaction_ClearsDraft(t *testing.T) {
	s := newTestStore()
	s.SetDraft(&Draft{Type: Income, Catatan: "belum selesai"})
	if s.Draft() == nil {
		t.Fatal("draft was not stored")
	}
	if _, err := s.RecordTransaction(Transaction{Type: Income, Nominal: Rp(1000), PaymentStatus: Paid}); err != nil {
		t.Fatal(err)
	}
	if s.Draft() != nil {
		t.Error("draft survived the recording")
	}
}

func TestUpdateTransaction_RecomputesTotals(t *testing.T) {
	s := newTestStore()
	p := mustAddProduct(s, "Keripik", 30, Rp(12800), Rp(8000))

	tx, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 2)},
		PaymentStatus: Paid,
	})
	if err != nil {
		t.Fatal(err)
	}

	upd := *tx
	upd.Items = []TransactionItem{item(s.Product(p.ID), 4)}
	got, err := s.UpdateTransaction(tx.ID, upd)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nominal != Rp(4*12800) {
		t.Errorf("nominal = %d, want %d", got.Nominal, 4*12800)
	}
	if got.Profit != got.Nominal-got.TotalCost {
		t.Errorf("profit = %d, want %d", got.Profit, got.Nominal-got.TotalCost)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("updatedAt not set")
	}
}

func TestUpdateTransaction_StockHeadroom(t *testing.T) {
	s := newTestStore()
	p := mustAddProduct(s, "Beras 5kg", 5, Rp(72000), Rp(65000))

	// The sale drains the shelf completely.
	tx, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Items:         []TransactionItem{item(p, 5)},
		PaymentStatus: Paid,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Product(p.ID).Stock; got != 0 {
		t.Fatalf("stock = %d, want 0", got)
	}

	// Lowering the quantity must pass: the recorded quantity counts as
	// available again, since editing never re-consumes stock.
	upd := *tx
	upd.Items = []TransactionItem{item(p, 4)}
	got, err := s.UpdateTransaction(tx.ID, upd)
	if err != nil {
		t.Fatalf("lowering the quantity of a recorded sale was rejected: %v", err)
	}
	if got.Nominal != Rp(4*72000) {
		t.Errorf("nominal = %d, want %d", got.Nominal, 4*72000)
	}
	// The edit itself moves no stock.
	if got := s.Product(p.ID).Stock; got != 0 {
		t.Errorf("edit changed stock to %d", got)
	}

	// Raising the quantity past stock plus the recorded quantity still fails.
	upd.Items = []TransactionItem{item(p, 6)}
	if _, err := s.UpdateTransaction(tx.ID, upd); err == nil || !strings.Contains(err.Error(), "insufficient stock") {
		t.Errorf("raising past the available headroom returned %v", err)
	}
}

func TestRecordTransaction_NumberNotReissuedAfterDelete(t *testing.T) {
	s := newTestStore()
	day := MustParseDate("2026-08-30")

	first, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(1000), PaymentStatus: Paid, Tanggal: day})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(2000), PaymentStatus: Paid, Tanggal: day})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTransaction(first.ID); err != nil {
		t.Fatal(err)
	}

	third, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(3000), PaymentStatus: Paid, Tanggal: day})
	if err != nil {
		t.Fatal(err)
	}
	if third.TransactionNumber == second.TransactionNumber {
		t.Fatalf("number %q was reissued", third.TransactionNumber)
	}
	if third.TransactionNumber != "TRX-20260830-0003" {
		t.Errorf("third number = %q, want TRX-20260830-0003", third.TransactionNumber)
	}
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore()
	tx, err := s.RecordTransaction(Transaction{Type: Expense, Nominal: Rp(2000), PaymentStatus: Paid})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTransaction(tx.ID); err != ErrTransactionNotFound {
		t.Errorf("second delete returned %v, want ErrTransactionNotFound", err)
	}
}
