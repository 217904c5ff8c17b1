package warung

import "fmt"

// StockDirection is the direction of a stock movement.
type StockDirection string

const (
	// StockIn records goods entering the store ("masuk").
	StockIn StockDirection = "masuk"
	// StockOut records goods leaving the store ("keluar").
	StockOut StockDirection = "keluar"
)

// ParseStockDirection parses a string into a StockDirection.
func ParseStockDirection(s string) (StockDirection, error) {
	switch StockDirection(s) {
	case StockIn, StockOut:
		return StockDirection(s), nil
	default:
		return "", fmt.Errorf("unknown stock direction: %q", s)
	}
}

// DebtDirection is the direction of a debt ledger entry.
type DebtDirection string

const (
	// DebtGive extends credit to the customer ("memberi"): the balance grows.
	DebtGive DebtDirection = "memberi"
	// DebtReceive collects a payment from the customer ("menerima"): the
	// balance shrinks.
	DebtReceive DebtDirection = "menerima"
)

// ParseDebtDirection parses a string into a DebtDirection.
func ParseDebtDirection(s string) (DebtDirection, error) {
	switch DebtDirection(s) {
	case DebtGive, DebtReceive:
		return DebtDirection(s), nil
	default:
		return "", fmt.Errorf("unknown debt direction: %q", s)
	}
}

// TransactionType distinguishes income from expense transactions.
type TransactionType string

const (
	// Income is a "pemasukan" transaction, typically a sale.
	Income TransactionType = "pemasukan"
	// Expense is a "pengeluaran" transaction.
	Expense TransactionType = "pengeluaran"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	// Paid means the transaction is fully settled ("lunas").
	Paid PaymentStatus = "lunas"
	// Unpaid means the full amount is owed ("hutang").
	Unpaid PaymentStatus = "hutang"
	// Partial means part of the amount was paid up front ("sebagian").
	Partial PaymentStatus = "sebagian"
)

// ParsePaymentStatus parses a string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case Paid, Unpaid, Partial:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status: %q", s)
	}
}
