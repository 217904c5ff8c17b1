package warung

import (
	money "github.com/Rhymond/go-money"
)

// Money is a monetary amount in whole rupiah, the smallest unit handled by
// the application. Arithmetic is plain integer arithmetic; go-money is used
// only for display so formatting follows the currency definition.
type Money int64

// Rp is a convenient factory for rupiah amounts.
func Rp(v int64) Money { return Money(v) }

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsPositive() bool { return m > 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) Neg() Money       { return -m }

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// Int64 returns the raw rupiah amount.
func (m Money) Int64() int64 { return int64(m) }

// String formats the amount using the IDR currency definition.
func (m Money) String() string {
	cur := money.GetCurrency(money.IDR)
	shifted := int64(m)
	for i := 0; i < cur.Fraction; i++ {
		shifted *= 10
	}
	return money.New(shifted, money.IDR).Display()
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m == 0:
		return "-"
	case m > 0:
		return "+" + m.String()
	default:
		return "-" + m.Abs().String()
	}
}
