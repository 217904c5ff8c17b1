package renderer

import (
	"github.com/warungpos/warung"
)

// DebtsMarkdown renders the debt register. Positive balances are amounts the
// customer owes the store, negative balances the other way around.
func DebtsMarkdown(debts []warung.Debt) string {
	w := newMDWriter()
	w.Printf("## Hutang Pelanggan\n\n")
	if len(debts) == 0 {
		w.Printf("Tidak ada hutang tercatat.\n")
		return w.String()
	}
	w.Printf("| Pelanggan | Telepon | Saldo | Entri | Terakhir |\n")
	w.Printf("|:---|:---|---:|---:|:---|\n")
	for _, d := range debts {
		w.Printf("| %s | %s | %s | %d | %s |\n",
			d.CustomerName, d.CustomerPhone, d.TotalDebt.SignedString(),
			len(d.Transactions), d.UpdatedAt.Format("2006-01-02"))
	}
	return w.String()
}

// DebtMarkdown renders one customer's ledger in full, oldest entry first.
func DebtMarkdown(d *warung.Debt) string {
	w := newMDWriter()
	w.Printf("## Hutang %s\n\n", d.CustomerName)
	if d.CustomerPhone != "" {
		w.Printf("- Telepon: %s\n", d.CustomerPhone)
	}
	if !d.DueDate.IsZero() {
		w.Printf("- Jatuh tempo: %s\n", d.DueDate)
	}
	w.Printf("- Saldo: %s\n\n", d.TotalDebt.SignedString())

	if len(d.Transactions) == 0 {
		w.Printf("Belum ada entri.\n")
		return w.String()
	}
	w.Printf("| Tanggal | Arah | Jumlah | Catatan |\n")
	w.Printf("|:---|:---|---:|:---|\n")
	for _, e := range d.Transactions {
		w.Printf("| %s | %s | %s | %s |\n", e.Tanggal, e.Type, e.Amount, e.Catatan)
	}
	return w.String()
}
