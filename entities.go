package warung

import "time"

// Product is a sellable item with its current stock level. Stock is
// maintained redundantly with the StockLog audit trail; the reconciliation
// rules in stock.go keep the two consistent.
type Product struct {
	ID         ID        `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category,omitempty"` // display-name snapshot of the category
	CategoryID ID        `json:"categoryId,omitempty"`
	Stock      int       `json:"stock"`
	Price      Money     `json:"price"`
	Cost       Money     `json:"cost,omitempty"` // unit cost, optional
	MinStock   int       `json:"minStock"`
	Barcode    string    `json:"barcode,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DefaultMinStock is the reorder threshold applied when none is given.
const DefaultMinStock = 10

// Category groups products. Products reference it weakly: deleting a
// category orphans its products, it never deletes them.
type Category struct {
	ID          ID        `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StockLog is one entry of the append-only stock movement trail. Entries are
// never mutated or deleted once created; treat the trail as authoritative
// history even though Product.Stock is maintained redundantly.
type StockLog struct {
	ID          ID             `json:"id"`
	ProductID   ID             `json:"productId"`
	ProductName string         `json:"productName"` // denormalized snapshot
	Type        StockDirection `json:"type"`
	Jumlah      int            `json:"jumlah"` // quantity moved, always > 0
	Reference   string         `json:"reference"`
	Tanggal     Date           `json:"tanggal"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// TransactionItem is one line of an income transaction.
type TransactionItem struct {
	ID          ID     `json:"id"`
	ProductID   ID     `json:"productId,omitempty"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	UnitCost    Money  `json:"unitCost"`
	Discount    Money  `json:"discount,omitempty"`
	TotalPrice  Money  `json:"totalPrice"` // quantity*unitPrice - discount
	TotalCost   Money  `json:"totalCost"`  // quantity*unitCost
}

// Transaction is a recorded income or expense. For income transactions with
// items, Nominal, TotalCost and Profit are derived from the item list.
type Transaction struct {
	ID                ID                `json:"id"`
	TransactionNumber string            `json:"transactionNumber"`
	Type              TransactionType   `json:"type"`
	Items             []TransactionItem `json:"items,omitempty"`
	Nominal           Money             `json:"nominal"`
	TotalCost         Money             `json:"totalCost"`
	Profit            Money             `json:"profit"` // Nominal - TotalCost, may be negative
	Catatan           string            `json:"catatan,omitempty"`
	Kategori          string            `json:"kategori,omitempty"`
	Tanggal           Date              `json:"tanggal"`
	CustomerName      string            `json:"customerName,omitempty"`
	CustomerPhone     string            `json:"customerPhone,omitempty"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
	PaidAmount        Money             `json:"paidAmount,omitempty"` // required when status is "sebagian"
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt,omitempty"`
}

// Outstanding returns the amount still owed on the transaction: the full
// nominal for "hutang", the unpaid remainder for "sebagian", zero otherwise.
func (t *Transaction) Outstanding() Money {
	switch t.PaymentStatus {
	case Unpaid:
		return t.Nominal
	case Partial:
		return t.Nominal - t.PaidAmount
	default:
		return 0
	}
}

// DebtTransaction is one entry of a Debt's append-only ledger.
type DebtTransaction struct {
	ID        ID            `json:"id"`
	DebtID    ID            `json:"debtId"`
	Type      DebtDirection `json:"type"`
	Amount    Money         `json:"amount"` // always > 0, direction carries the sign
	Catatan   string        `json:"catatan,omitempty"`
	Tanggal   Date          `json:"tanggal"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Debt is the running balance of one customer. TotalDebt is the signed sum
// of its transactions: positive means the customer owes the store, negative
// means the store owes the customer. The customer name is the matching key;
// there is no stable customer identity in this domain.
type Debt struct {
	ID            ID                `json:"id"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	TotalDebt     Money             `json:"totalDebt"`
	DueDate       Date              `json:"dueDate,omitzero"`
	Transactions  []DebtTransaction `json:"transactions"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Balance recomputes the signed sum of the debt's ledger entries. It must
// always equal TotalDebt; the append path maintains both together.
func (d *Debt) Balance() Money {
	var sum Money
	for _, t := range d.Transactions {
		if t.Type == DebtGive {
			sum += t.Amount
		} else {
			sum -= t.Amount
		}
	}
	return sum
}

// Receipt is a legacy point-of-sale record. The collection is additive-only
// and read by reports.
type Receipt struct {
	ID          ID     `json:"id"`
	ProductID   ID     `json:"productId"`
	ProductName string `json:"productName"`
	Jumlah      int    `json:"jumlah"`
	Harga       Money  `json:"harga"` // unit price
	Total       Money  `json:"total"`
	Tanggal     Date   `json:"tanggal"`
}

// Settings is the store profile blob included in the export bundle.
type Settings struct {
	StoreName    string `json:"storeName,omitempty"`
	StoreAddress string `json:"storeAddress,omitempty"`
	StorePhone   string `json:"storePhone,omitempty"`
}

// Draft is the scratch slot holding a transaction being entered. It is
// persisted independently and cleared when the transaction is recorded.
type Draft struct {
	Type          TransactionType   `json:"type,omitempty"`
	Items         []TransactionItem `json:"items,omitempty"`
	Nominal       Money             `json:"nominal,omitempty"`
	Catatan       string            `json:"catatan,omitempty"`
	Kategori      string            `json:"kategori,omitempty"`
	Tanggal       Date              `json:"tanggal,omitzero"`
	CustomerName  string            `json:"customerName,omitempty"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	PaymentStatus PaymentStatus     `json:"paymentStatus,omitempty"`
	PaidAmount    Money             `json:"paidAmount,omitempty"`
}
