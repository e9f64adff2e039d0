package store

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is only used to format prices, amounts are never converted.
const displayCurrency = money.USD

type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price is a unit price or an amount of money.
//
// The zero value is a zero price.
type Price struct {
	value decimal.Decimal
}

// P creates a Price from any numeric value.
func P[T number](value T) Price { return Price{value: newDecimal(value)} }

// ParsePrice parses a decimal string like "12.5" into a Price.
func ParsePrice(s string) (Price, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: v}, nil
}

func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) IsNegative() bool         { return p.value.IsNegative() }
func (p Price) Neg() Price               { return Price{value: p.value.Neg()} }
func (p Price) Abs() Price               { return Price{value: p.value.Abs()} }
func (p Price) Add(q Price) Price        { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price        { return Price{value: p.value.Sub(q.value)} }

// Mul returns the amount for quantity units at price p.
func (p Price) Mul(quantity int) Price {
	return Price{value: p.value.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Float64 returns the nearest float64 value, for display and interop only.
func (p Price) Float64() float64 { return p.value.InexactFloat64() }

// String returns the price formatted with a currency symbol and two
// fraction digits, for instance "$1,234.50" or "-$3.00". Amounts too large
// for go-money are printed without thousand separators.
func (p Price) String() string {
	// to get a never nil currency the Money constructor is needed
	cur := *money.New(0, displayCurrency).Currency()
	minor := p.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if !minor.BigInt().IsInt64() {
		sign := ""
		if p.IsNegative() {
			sign = "-"
		}
		return sign + cur.Grapheme + p.value.Abs().StringFixed(int32(cur.Fraction))
	}
	return cur.Formatter().Format(minor.IntPart())
}

func (p Price) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

func (p *Price) UnmarshalJSON(data []byte) error { return p.value.UnmarshalJSON(data) }
