package renderer

import (
	"github.com/warungpos/warung"
)

// TransactionsMarkdown renders a transaction listing, newest first.
func TransactionsMarkdown(transactions []warung.Transaction) string {
	w := newMDWriter()
	w.Printf("## Transaksi\n\n")
	if len(transactions) == 0 {
		w.Printf("Belum ada transaksi.\n")
		return w.String()
	}
	w.Printf("| Nomor | Tanggal | Jenis | Nominal | Status | Pelanggan |\n")
	w.Printf("|:---|:---|:---|---:|:---|:---|\n")
	for _, t := range transactions {
		w.Printf("| %s | %s | %s | %s | %s | %s |\n",
			t.TransactionNumber, t.Tanggal, t.Type, t.Nominal, t.PaymentStatus, t.CustomerName)
	}
	w.Printf("\n%d transaksi.\n", len(transactions))
	return w.String()
}

// TransactionMarkdown renders one transaction in full, including its item
// lines and the outstanding amount when it carries debt.
func TransactionMarkdown(t *warung.Transaction) string {
	w := newMDWriter()
	w.Printf("## Transaksi %s\n\n", t.TransactionNumber)
	w.Printf("- Tanggal: %s\n", t.Tanggal)
	w.Printf("- Jenis: %s\n", t.Type)
	w.Printf("- Status: %s\n", t.PaymentStatus)
	if t.CustomerName != "" {
		w.Printf("- Pelanggan: %s\n", t.CustomerName)
	}
	if t.Catatan != "" {
		w.Printf("- Catatan: %s\n", t.Catatan)
	}
	w.Printf("\n")

	if len(t.Items) > 0 {
		w.Printf("| Produk | Jumlah | Harga | Diskon | Total |\n")
		w.Printf("|:---|---:|---:|---:|---:|\n")
		for _, it := range t.Items {
			w.Printf("| %s | %d | %s | %s | %s |\n",
				it.ProductName, it.Quantity, it.UnitPrice, it.Discount, it.TotalPrice)
		}
		w.Printf("\n")
	}

	w.Printf("Nominal: %s\n", t.Nominal)
	if t.Type == warung.Income {
		w.Printf("Laba: %s\n", t.Profit)
	}
	if outstanding := t.Outstanding(); outstanding > 0 {
		w.Printf("Sisa hutang: %s\n", outstanding)
	}
	return w.String()
}
