package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents represents a monetary amount in minor currency units.
// All persisted and compared money in the system is integer cents;
// decimals only appear transiently inside computations.
type Cents int64

// Round converts a decimal amount of cents to integer cents using
// round-half-away-from-zero semantics. Rounding is applied at the point
// each derived quantity is produced, never deferred to the end.
func Round(d decimal.Decimal) Cents {
	return Cents(d.Round(0).IntPart())
}

// Decimal returns the amount as a decimal number of cents for further math.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// Format renders the amount as a display currency string with two decimal
// places and comma grouping, e.g. 129600 -> "$1,296.00".
func (c Cents) Format() string {
	d := decimal.New(int64(c), -2)
	s := d.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	if c < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// Breakdown is the result of a cost estimation: every field is integer cents.
type Breakdown struct {
	Base       Cents
	ServiceFee Cents
	Tax        Cents
	Total      Cents
}

// Summary renders the breakdown as a one-line display equation,
// e.g. "$1,296.00 = $1,000.00 + $296.00 Tax/Tip".
func (b Breakdown) Summary() string {
	feePlusTax := b.ServiceFee + b.Tax
	return fmt.Sprintf("%s = %s + %s Tax/Tip", b.Total.Format(), b.Base.Format(), feePlusTax.Format())
}
