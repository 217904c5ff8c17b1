package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/warungpos/warung"
	"github.com/warungpos/warung/renderer"
)

// itemSpec is one parsed -item flag value.
type itemSpec struct {
	product  string
	qty      int
	discount int64
}

// itemsFlag collects repeated -item values of the form
// "product:qty[:discount]". The product part is a name or id.
type itemsFlag []itemSpec

func (i *itemsFlag) String() string {
	parts := make([]string, 0, len(*i))
	for _, it := range *i {
		parts = append(parts, fmt.Sprintf("%s:%d", it.product, it.qty))
	}
	return strings.Join(parts, ",")
}

func (i *itemsFlag) Set(v string) error {
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("item must be product:qty[:discount], got %q", v)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("item quantity %q is not a number", parts[1])
	}
	spec := itemSpec{product: parts[0], qty: qty}
	if len(parts) == 3 {
		spec.discount, err = strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return fmt.Errorf("item discount %q is not a number", parts[2])
		}
	}
	*i = append(*i, spec)
	return nil
}

type txCmd struct {
	expense  bool
	items    itemsFlag
	nominal  int64
	status   string
	paid     int64
	customer string
	phone    string
	note     string
	kategori string
	date     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a sale or an expense" }
func (*txCmd) Usage() string {
	return `wpos tx [-expense] [-item product:qty[:discount]]... [-nominal <rupiah>] [-status lunas|hutang|sebagian] [-customer <name>]

  Records a transaction. A sale built from -item flags derives its totals
  from the catalog prices; sold stock is decremented and logged. An unpaid
  or partially paid sale grows the customer's debt by the outstanding
  amount.

Usage Examples:
# A paid sale of 3 sachets of coffee.
$ wpos tx -item "Kopi Sachet:3"

# A sale on credit.
$ wpos tx -item "Gula 1kg:2" -status hutang -customer Ani

# An expense.
$ wpos tx -expense -nominal 20000 -note "listrik"
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.expense, "expense", false, "Record an expense instead of a sale")
	f.Var(&c.items, "item", "Sold item as product:qty[:discount], repeatable")
	f.Int64Var(&c.nominal, "nominal", 0, "Amount in rupiah (derived from items when present)")
	f.StringVar(&c.status, "status", "lunas", "Payment status: lunas, hutang or sebagian")
	f.Int64Var(&c.paid, "paid", 0, "Paid amount in rupiah, required with -status sebagian")
	f.StringVar(&c.customer, "customer", "", "Customer name")
	f.StringVar(&c.phone, "phone", "", "Customer phone")
	f.StringVar(&c.note, "note", "", "Free-form note")
	f.StringVar(&c.kategori, "category", "", "Expense category")
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, m := OpenStore()
	defer m.Close()

	tanggal, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := warung.Transaction{
		Type:          warung.Income,
		Nominal:       warung.Rp(c.nominal),
		Catatan:       c.note,
		Kategori:      c.kategori,
		Tanggal:       tanggal,
		CustomerName:  c.customer,
		CustomerPhone: c.phone,
		PaymentStatus: warung.PaymentStatus(c.status),
		PaidAmount:    warung.Rp(c.paid),
	}
	if c.expense {
		tx.Type = warung.Expense
	}

	for _, spec := range c.items {
		p, err := findProduct(s, spec.product)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Items = append(tx.Items, warung.TransactionItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    spec.qty,
			UnitPrice:   p.Price,
			UnitCost:    p.Cost,
			Discount:    warung.Rp(spec.discount),
		})
	}

	recorded, err := s.RecordTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionMarkdown(recorded))
	return subcommands.ExitSuccess
}
