package renderer

import (
	"fmt"

	"github.com/warungpos/warung"
)

// ProductsMarkdown renders the product catalog as a markdown table. Products
// at or below their reorder threshold are marked in the stock column.
func ProductsMarkdown(products []warung.Product) string {
	w := newMDWriter()
	w.Printf("## Produk\n\n")
	if len(products) == 0 {
		w.Printf("Belum ada produk.\n")
		return w.String()
	}
	w.Printf("| Nama | Kategori | Stok | Harga | Modal |\n")
	w.Printf("|:---|:---|---:|---:|---:|\n")
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		if p.Stock <= p.MinStock {
			stock += " ⚠"
		}
		w.Printf("| %s | %s | %s | %s | %s |\n",
			p.Name, p.Category, stock, p.Price, p.Cost)
	}
	w.Printf("\n%d produk.\n", len(products))
	return w.String()
}

// CategoriesMarkdown renders the category list as a markdown table.
func CategoriesMarkdown(categories []warung.Category) string {
	w := newMDWriter()
	w.Printf("## Kategori\n\n")
	if len(categories) == 0 {
		w.Printf("Belum ada kategori.\n")
		return w.String()
	}
	w.Printf("| Nama | Deskripsi |\n")
	w.Printf("|:---|:---|\n")
	for _, c := range categories {
		w.Printf("| %s | %s |\n", c.Name, c.Description)
	}
	return w.String()
}

// StockLogsMarkdown renders the stock movement trail, newest first.
func StockLogsMarkdown(logs []warung.StockLog) string {
	w := newMDWriter()
	w.Printf("## Riwayat Stok\n\n")
	if len(logs) == 0 {
		w.Printf("Belum ada pergerakan stok.\n")
		return w.String()
	}
	w.Printf("| Tanggal | Produk | Arah | Jumlah | Referensi |\n")
	w.Printf("|:---|:---|:---|---:|:---|\n")
	for _, l := range logs {
		w.Printf("| %s | %s | %s | %d | %s |\n",
			l.Tanggal, l.ProductName, l.Type, l.Jumlah, l.Reference)
	}
	return w.String()
}
