package warung

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value for report display.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarginOf computes part/whole as a percentage using exact decimal division,
// so large rupiah amounts do not lose precision on the way to a ratio.
// A zero whole yields a zero margin.
func MarginOf(part, whole Money) Percent {
	if whole == 0 {
		return 0
	}
	ratio := decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(whole))).
		Mul(decimal.NewFromInt(100))
	return Percent(ratio.InexactFloat64())
}
