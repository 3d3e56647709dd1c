package sdkcore

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// PriceMeta is the payload of a [Price]: the pair of currencies and the
// decimal scalar 10^base.decimals / 10^quote.decimals.
type PriceMeta struct {
	base   Currency // currency being priced
	quote  Currency // currency the price is expressed in
	scalar Fraction // converts raw ratios into whole-unit ratios
}

func newPriceMeta(base, quote Currency) PriceMeta {
	return PriceMeta{
		base:   base,
		quote:  quote,
		scalar: newFractionUnsafe(pow10(base.Decimals()), pow10(quote.Decimals())),
	}
}

// Base returns the currency being priced.
func (m PriceMeta) Base() Currency {
	return m.base
}

// Quote returns the currency the price is expressed in.
func (m PriceMeta) Quote() Currency {
	return m.quote
}

// Scalar returns 10^base.decimals / 10^quote.decimals.
func (m PriceMeta) Scalar() Fraction {
	return m.scalar
}

// String returns the currency pair as "BASE/QUOTE".
func (m PriceMeta) String() string {
	return m.base.String() + "/" + m.quote.String()
}

// Price represents a unidirectional exchange rate between two currencies:
// how many units of the quote currency are obtained for one unit of the base
// currency.
//
// The underlying fraction is the ratio of raw on-chain amounts, independent of
// decimals. Only rendering ([Price.ToSignificant], [Price.ToFixed]) converts it
// into a whole-unit ratio, see [Price.AdjustedForDecimals].
//
// Price is immutable and safe for concurrent use by multiple goroutines.
type Price struct {
	MetaFraction[PriceMeta]
}

func newPriceUnsafe(base, quote Currency, f Fraction) Price {
	return Price{WithMeta(f, newPriceMeta(base, quote))}
}

// NewPrice returns a price of num raw quote units per den raw base units.
// Note the order of the arguments: the denominator comes first, matching
// the order of the currencies.
//
// NewPrice returns an error if the denominator is zero.
func NewPrice(base, quote Currency, den, num *big.Int) (Price, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return Price{}, fmt.Errorf("pricing %v/%v: %w", base, quote, err)
	}
	return newPriceUnsafe(base, quote, f), nil
}

// NewPriceFromInt64 is like [NewPrice] but takes int64 terms.
func NewPriceFromInt64(base, quote Currency, den, num int64) (Price, error) {
	return NewPrice(base, quote, big.NewInt(den), big.NewInt(num))
}

// MustNewPrice is like [NewPriceFromInt64] but panics if the price cannot be
// constructed.
// It simplifies safe initialization of global variables holding prices.
func MustNewPrice(base, quote Currency, den, num int64) Price {
	p, err := NewPriceFromInt64(base, quote, den, num)
	if err != nil {
		panic(fmt.Sprintf("NewPriceFromInt64(%v, %v, %v, %v) failed: %v", base, quote, den, num, err))
	}
	return p
}

// NewPriceFromAmounts returns the price at which the base amount trades for
// the quote amount, that is quote / base over raw amounts.
//
// NewPriceFromAmounts returns an error if the base amount is zero.
func NewPriceFromAmounts(base, quote CurrencyAmount) (Price, error) {
	f, err := quote.Fraction().Quo(base.Fraction())
	if err != nil {
		return Price{}, fmt.Errorf("pricing [%v] for [%v]: %w", quote, base, err)
	}
	return newPriceUnsafe(base.Currency(), quote.Currency(), f), nil
}

// NewPriceFromDecimal returns a price from a rate in whole units, such as
// 1800.25 USDC per ETH.
//
// NewPriceFromDecimal returns an error if the rate is not positive.
func NewPriceFromDecimal(base, quote Currency, rate decimal.Decimal) (Price, error) {
	if !rate.IsPos() {
		return Price{}, fmt.Errorf("pricing %v/%v: rate must be positive", base, quote)
	}
	scalar := newPriceMeta(base, quote).scalar
	f, err := NewFractionFromDecimal(rate).Quo(scalar)
	if err != nil {
		return Price{}, fmt.Errorf("pricing %v/%v: %w", base, quote, err)
	}
	return newPriceUnsafe(base, quote, f), nil
}

// ParsePrice converts a decimal string in whole units to a price.
// See also constructors [NewPriceFromDecimal] and [decimal.Parse].
func ParsePrice(base, quote Currency, rate string) (Price, error) {
	d, err := decimal.Parse(rate)
	if err != nil {
		return Price{}, fmt.Errorf("rate parsing: %w", err)
	}
	p, err := NewPriceFromDecimal(base, quote, d)
	if err != nil {
		return Price{}, fmt.Errorf("rate construction: %w", err)
	}
	return p, nil
}

// MustParsePrice is like [ParsePrice] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding prices.
func MustParsePrice(base, quote Currency, rate string) Price {
	p, err := ParsePrice(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParsePrice(%v, %v, %q) failed: %v", base, quote, rate, err))
	}
	return p
}

// BaseCurrency returns the currency being priced.
func (p Price) BaseCurrency() Currency {
	return p.Meta().Base()
}

// QuoteCurrency returns the currency the price is expressed in.
func (p Price) QuoteCurrency() Currency {
	return p.Meta().Quote()
}

// Scalar returns 10^base.decimals / 10^quote.decimals.
func (p Price) Scalar() Fraction {
	return p.Meta().Scalar()
}

// SameCurr returns true if prices have equal base and equal quote currencies.
func (p Price) SameCurr(q Price) bool {
	return p.BaseCurrency().Equal(q.BaseCurrency()) && p.QuoteCurrency().Equal(q.QuoteCurrency())
}

// Equal returns true if prices have the same currencies and are numerically equal.
func (p Price) Equal(q Price) bool {
	return p.SameCurr(q) && p.Fraction().Equal(q.Fraction())
}

// Inv returns the price with base and quote currencies swapped.
// The numerator and denominator are swapped as well, so inverting twice
// returns the original terms.
//
// Inv returns an error if the price is zero.
func (p Price) Inv() (Price, error) {
	f := p.Fraction()
	q, err := NewPrice(p.QuoteCurrency(), p.BaseCurrency(), f.numerator(), f.denominator())
	if err != nil {
		return Price{}, fmt.Errorf("inverting [%v]: %w", p, err)
	}
	return q, nil
}

// Mul chains two prices: the price of A in B times the price of B in C is
// the price of A in C.
//
// Mul returns an error if the quote currency of p is not equal to the base
// currency of q.
func (p Price) Mul(q Price) (Price, error) {
	if !p.QuoteCurrency().Equal(q.BaseCurrency()) {
		return Price{}, fmt.Errorf("computing [%v * %v]: %w", p, q, ErrCurrencyMismatch)
	}
	f := p.Fraction().Mul(q.Fraction())
	return newPriceUnsafe(p.BaseCurrency(), q.QuoteCurrency(), f), nil
}

// CanQuote returns true if [Price.Quote] can be used to convert the given amount.
func (p Price) CanQuote(a CurrencyAmount) bool {
	return a.Currency().Equal(p.BaseCurrency())
}

// Quote returns the amount of quote currency obtained for the given amount
// of base currency.
//
// Quote returns an error if:
//   - the amount is not denominated in the base currency;
//   - the result exceeds [MaxUint256].
func (p Price) Quote(a CurrencyAmount) (CurrencyAmount, error) {
	if !p.CanQuote(a) {
		return CurrencyAmount{}, fmt.Errorf("quoting [%v] at [%v]: %w", a, p, ErrCurrencyMismatch)
	}
	b, err := newAmountSafe(p.QuoteCurrency(), p.Fraction().Mul(a.Fraction()))
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("quoting [%v] at [%v]: %w", a, p, err)
	}
	return b, nil
}

// AdjustedForDecimals returns the price as a ratio of whole units.
func (p Price) AdjustedForDecimals() Fraction {
	return p.Fraction().Mul(p.Scalar())
}

// ToSignificant renders the whole-unit price.
// See also method [Fraction.ToSignificant].
func (p Price) ToSignificant(digits int, rounding Rounding) string {
	return p.AdjustedForDecimals().ToSignificant(digits, rounding)
}

// ToFixed renders the whole-unit price.
// See also method [Fraction.ToFixed].
func (p Price) ToFixed(places int, rounding Rounding) string {
	return p.AdjustedForDecimals().ToFixed(places, rounding)
}

// Decimal returns the whole-unit price rounded half-up to the given scale.
// See also constructor [NewPriceFromDecimal].
//
// Decimal returns an error if the scale is out of range or the rounded price
// does not fit into [decimal.MaxPrec] digits, see [Fraction.Decimal].
func (p Price) Decimal(scale int) (decimal.Decimal, error) {
	return p.AdjustedForDecimals().Decimal(scale)
}

// String implements the [fmt.Stringer] interface and returns the currency
// pair and the whole-unit price with 6 significant digits, for example
// "WETH/USDC 1800.25".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Price) String() string {
	return p.Meta().String() + " " + p.ToSignificant(6, RoundHalfUp)
}
