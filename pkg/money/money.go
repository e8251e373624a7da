package money

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Yen is an amount in whole yen. Yen has no minor unit.
type Yen int64

var half = decimal.New(5, -1)

// String renders the amount without grouping or currency sign
func (y Yen) String() string {
	return strconv.FormatInt(int64(y), 10)
}

// Decimal returns the amount as an exact decimal
func (y Yen) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(y))
}

// Percent converts a percentage value (12 means 12%) to an exact decimal.
// The shortest decimal representation of the float is used, so 3.6 stays 3.6.
// NaN and infinities have no decimal form and count as zero.
func Percent(p float64) decimal.Decimal {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(p)
}

// ApplyPercent returns amount * pct / 100 without rounding
func ApplyPercent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Shift(-2)
}

// RoundHalfUp rounds to whole yen. Halves go toward positive infinity,
// so 2.5 becomes 3 and -2.5 becomes -2.
func RoundHalfUp(d decimal.Decimal) Yen {
	return Yen(d.Add(half).Floor().IntPart())
}

// PercentOf is a convenience for RoundHalfUp(ApplyPercent(amount, Percent(pct))).
func PercentOf(amount Yen, pct float64) Yen {
	return RoundHalfUp(ApplyPercent(amount.Decimal(), Percent(pct)))
}
