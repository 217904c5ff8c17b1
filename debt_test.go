package warung

import "testing"

// checkBalances fails the test when any debt's running balance drifted from
// the signed sum of its ledger.
func checkBalances(t *testing.T, s *Store) {
	t.Helper()
	if drifted := s.CheckDebtBalances(); len(drifted) > 0 {
		t.Fatalf("debt balances drifted: %v", drifted)
	}
}

func TestRecordTransaction_CreatesDebt(t *testing.T) {
	s := newTestStore()

	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Nominal:       Rp(5000),
		PaymentStatus: Unpaid,
		CustomerName:  "Ani",
		Catatan:       "beras dan gula",
	}); err != nil {
		t.Fatal(err)
	}

	d := s.FindDebtByCustomer("Ani")
	if d == nil {
		t.Fatal("no debt created for Ani")
	}
	if d.TotalDebt != Rp(5000) {
		t.Errorf("totalDebt = %d, want 5000", d.TotalDebt)
	}
	if len(d.Transactions) != 1 {
		t.Fatalf("got %d ledger entries, want 1", len(d.Transactions))
	}
	e := d.Transactions[0]
	if e.Type != DebtGive || e.Amount != Rp(5000) || e.Catatan != "beras dan gula" {
		t.Errorf("unexpected seed entry %+v", e)
	}
	checkBalances(t, s)
}

func TestRecordTransaction_GrowsExistingDebt(t *testing.T) {
	s := newTestStore()

	for _, nominal := range []Money{Rp(5000), Rp(3000)} {
		if _, err := s.RecordTransaction(Transaction{
			Type:          Income,
			Nominal:       nominal,
			PaymentStatus: Unpaid,
			CustomerName:  "Budi",
		}); err != nil {
			t.Fatal(err)
		}
	}

	debts := s.Debts()
	if len(debts) != 1 {
		t.Fatalf("got %d debts, want 1", len(debts))
	}
	if debts[0].TotalDebt != Rp(8000) {
		t.Errorf("totalDebt = %d, want 8000", debts[0].TotalDebt)
	}
	if len(debts[0].Transactions) != 2 {
		t.Errorf("got %d ledger entries, want 2", len(debts[0].Transactions))
	}
	checkBalances(t, s)
}

func TestRecordTransaction_PartialDebt(t *testing.T) {
	s := newTestStore()

	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Nominal:       Rp(10000),
		PaidAmount:    Rp(4000),
		PaymentStatus: Partial,
		CustomerName:  "Citra",
	}); err != nil {
		t.Fatal(err)
	}

	d := s.FindDebtByCustomer("Citra")
	if d == nil || d.TotalDebt != Rp(6000) {
		t.Fatalf("debt = %+v, want totalDebt 6000", d)
	}
	checkBalances(t, s)
}

func TestRecordTransaction_PaidNeverTouchesDebt(t *testing.T) {
	s := newTestStore()
	if _, err := s.AddDebtor("Dewi", "", Rp(2000), Date{}, ""); err != nil {
		t.Fatal(err)
	}

	// A fully paid sale for a customer with prior debt leaves the debt alone.
	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Nominal:       Rp(9000),
		PaymentStatus: Paid,
		CustomerName:  "Dewi",
	}); err != nil {
		t.Fatal(err)
	}

	d := s.FindDebtByCustomer("Dewi")
	if d.TotalDebt != Rp(2000) || len(d.Transactions) != 1 {
		t.Errorf("debt changed by a paid transaction: %+v", d)
	}
}

func TestDebtMatching_IsExact(t *testing.T) {
	s := newTestStore()
	for _, name := range []string{"Ani", "ani"} {
		if _, err := s.RecordTransaction(Transaction{
			Type:          Income,
			Nominal:       Rp(1000),
			PaymentStatus: Unpaid,
			CustomerName:  name,
		}); err != nil {
			t.Fatal(err)
		}
	}
	// Case differences are different customers.
	if got := len(s.Debts()); got != 2 {
		t.Errorf("got %d debts, want 2", got)
	}
}

func TestDebtLifecycle(t *testing.T) {
	s := newTestStore()

	// A 5000 sale on credit, then a 2000 payment, then a full payoff.
	if _, err := s.RecordTransaction(Transaction{
		Type:          Income,
		Nominal:       Rp(5000),
		PaymentStatus: Unpaid,
		CustomerName:  "Ani",
	}); err != nil {
		t.Fatal(err)
	}
	d := s.FindDebtByCustomer("Ani")

	if _, err := s.ReceivePayment(d.ID, Rp(2000), "terima bayar", Date{}); err != nil {
		t.Fatal(err)
	}
	d = s.Debt(d.ID)
	if d.TotalDebt != Rp(3000) {
		t.Fatalf("totalDebt after payment = %d, want 3000", d.TotalDebt)
	}
	if e := d.Transactions[len(d.Transactions)-1]; e.Type != DebtReceive || e.Amount != Rp(2000) {
		t.Errorf("unexpected payment entry %+v", e)
	}

	amount, err := s.PayOff(d.ID, "lunaskan", Date{})
	if err != nil {
		t.Fatal(err)
	}
	if amount != Rp(3000) {
		t.Errorf("payoff amount = %d, want 3000", amount)
	}
	d = s.Debt(d.ID)
	if d.TotalDebt != 0 {
		t.Errorf("totalDebt after payoff = %d, want 0", d.TotalDebt)
	}
	if got := len(d.Transactions); got != 3 {
		t.Errorf("got %d ledger entries, want 3", got)
	}
	checkBalances(t, s)
}

func TestPayOff_IdempotentAtZeroOrBelow(t *testing.T) {
	testCases := []struct {
		name string
		seed Money
	}{
		{"settled", 0},
		{"store owes customer", -4000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			d, err := s.AddDebtor("Eko", "", tc.seed, Date{}, "")
			if err != nil {
				t.Fatal(err)
			}
			entries := len(d.Transactions)

			amount, err := s.PayOff(d.ID, "", Date{})
			if err != nil {
				t.Fatal(err)
			}
			if amount != 0 {
				t.Errorf("payoff amount = %d, want 0", amount)
			}
			got := s.Debt(d.ID)
			if len(got.Transactions) != entries {
				t.Errorf("payoff appended an entry on a non-positive balance")
			}
			if got.TotalDebt != tc.seed {
				t.Errorf("totalDebt = %d, want %d", got.TotalDebt, tc.seed)
			}
			checkBalances(t, s)
		})
	}
}

func TestRefund_Clamps(t *testing.T) {
	testCases := []struct {
		name        string
		balance     Money
		request     Money
		wantApplied Money
		wantBalance Money
	}{
		{"partial refund", -5000, Rp(2000), Rp(2000), -3000},
		{"exact refund", -5000, Rp(5000), Rp(5000), 0},
		{"over-refund is clamped", -5000, Rp(8000), Rp(5000), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			d, err := s.AddDebtor("Fajar", "", tc.balance, Date{}, "kelebihan bayar")
			if err != nil {
				t.Fatal(err)
			}
			applied, err := s.Refund(d.ID, tc.request, "", Date{})
			if err != nil {
				t.Fatal(err)
			}
			if applied != tc.wantApplied {
				t.Errorf("applied = %d, want %d", applied, tc.wantApplied)
			}
			got := s.Debt(d.ID)
			if got.TotalDebt != tc.wantBalance {
				t.Errorf("totalDebt = %d, want %d", got.TotalDebt, tc.wantBalance)
			}
			if e := got.Transactions[len(got.Transactions)-1]; e.Type != DebtGive || e.Amount != tc.wantApplied {
				t.Errorf("unexpected refund entry %+v", e)
			}
			checkBalances(t, s)
		})
	}
}

func TestRefund_NoopOnNonNegativeBalance(t *testing.T) {
	s := newTestStore()
	d, err := s.AddDebtor("Gita", "", Rp(3000), Date{}, "")
	if err != nil {
		t.Fatal(err)
	}
	applied, err := s.Refund(d.ID, Rp(1000), "", Date{})
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
	if got := s.Debt(d.ID); got.TotalDebt != Rp(3000) || len(got.Transactions) != 1 {
		t.Errorf("refund on a positive balance changed the debt: %+v", got)
	}
}

func TestAddDebtor_SeedReconciles(t *testing.T) {
	testCases := []struct {
		name     string
		amount   Money
		wantType DebtDirection
		wantLen  int
	}{
		{"customer owes store", Rp(7000), DebtGive, 1},
		{"store owes customer", Rp(-2500), DebtReceive, 1},
		{"settled", 0, "", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			d, err := s.AddDebtor("Hana", "0812", tc.amount, Date{}, "saldo awal")
			if err != nil {
				t.Fatal(err)
			}
			if d.TotalDebt != tc.amount {
				t.Errorf("totalDebt = %d, want %d", d.TotalDebt, tc.amount)
			}
			if len(d.Transactions) != tc.wantLen {
				t.Fatalf("got %d seed entries, want %d", len(d.Transactions), tc.wantLen)
			}
			if tc.wantLen > 0 && d.Transactions[0].Type != tc.wantType {
				t.Errorf("seed type = %s, want %s", d.Transactions[0].Type, tc.wantType)
			}
			checkBalances(t, s)
		})
	}

	t.Run("duplicate name rejected", func(t *testing.T) {
		s := newTestStore()
		if _, err := s.AddDebtor("Hana", "", Rp(100), Date{}, ""); err != nil {
			t.Fatal(err)
		}
		if _, err := s.AddDebtor("Hana", "", Rp(200), Date{}, ""); err == nil {
			t.Error("second debtor with the same name was accepted")
		}
	})
}

func TestDeleteDebt(t *testing.T) {
	s := newTestStore()
	d, err := s.AddDebtor("Indra", "", Rp(100), Date{}, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteDebt(d.ID); err != nil {
		t.Fatal(err)
	}
	if s.Debt(d.ID) != nil {
		t.Error("debt still present after delete")
	}
	if err := s.DeleteDebt(d.ID); err != ErrDebtNotFound {
		t.Errorf("second delete returned %v, want ErrDebtNotFound", err)
	}
}
