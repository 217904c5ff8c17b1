package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/warungpos/warung"
)

// DailyMarkdown renders a one-day summary.
func DailyMarkdown(s warung.DailySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ringkasan %s", s.Date))
	doc.PlainText(fmt.Sprintf("%d transaksi tercatat.", s.Count))

	doc.Table(md.TableSet{
		Header: []string{"Pos", "Jumlah"},
		Rows: [][]string{
			{"Pemasukan", s.Income.String()},
			{"Pengeluaran", s.Expense.String()},
			{"Modal terjual", s.COGS.String()},
			{"Laba kotor", s.Profit.String()},
		},
	})

	return doc.String()
}

// SummaryMarkdown renders a range summary with the best-selling products and
// the products running low.
func SummaryMarkdown(s warung.RangeSummary, top []warung.ProductSales, low []warung.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ringkasan %s s.d. %s", s.From, s.To))
	doc.PlainText(fmt.Sprintf("%d transaksi tercatat.", s.Count))

	doc.Table(md.TableSet{
		Header: []string{"Pos", "Jumlah"},
		Rows: [][]string{
			{"Pemasukan", s.Income.String()},
			{"Pengeluaran", s.Expense.String()},
			{"Modal terjual", s.COGS.String()},
			{"Laba kotor", s.Profit.String()},
			{"Margin", s.Margin.String()},
		},
	})

	if len(top) > 0 {
		doc.H2("Produk Terlaris")
		rows := make([][]string, 0, len(top))
		for _, p := range top {
			rows = append(rows, []string{
				p.ProductName,
				fmt.Sprintf("%d", p.Quantity),
				p.Revenue.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Produk", "Terjual", "Omzet"},
			Rows:   rows,
		})
	}

	if len(low) > 0 {
		doc.H2("Stok Menipis")
		rows := make([][]string, 0, len(low))
		for _, p := range low {
			rows = append(rows, []string{
				p.Name,
				fmt.Sprintf("%d", p.Stock),
				fmt.Sprintf("%d", p.MinStock),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Produk", "Stok", "Minimum"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// DebtTotalsMarkdown renders the two sides of the debt register.
func DebtTotalsMarkdown(t warung.DebtTotals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Posisi Hutang")
	doc.Table(md.TableSet{
		Header: []string{"Pos", "Jumlah"},
		Rows: [][]string{
			{"Piutang warung", t.Receivable.String()},
			{"Hutang warung", t.Payable.String()},
			{"Pelanggan", fmt.Sprintf("%d", t.Debtors)},
		},
	})

	return doc.String()
}
