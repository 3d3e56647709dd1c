package sdkcore

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

var (
	ErrAmountOverflow   = errors.New("amount overflow")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// AmountMeta is the payload of a [CurrencyAmount]: the currency and the
// number of smallest units in one whole unit of it.
type AmountMeta struct {
	currency     Currency
	decimalScale *big.Int
}

func newAmountMeta(c Currency) AmountMeta {
	return AmountMeta{currency: c, decimalScale: pow10(c.Decimals())}
}

// Currency returns the currency of the amount.
func (m AmountMeta) Currency() Currency {
	return m.currency
}

// DecimalScale returns 10^decimals of the currency.
func (m AmountMeta) DecimalScale() *big.Int {
	return new(big.Int).Set(m.scale())
}

func (m AmountMeta) scale() *big.Int {
	if m.decimalScale == nil {
		return bigOne
	}
	return m.decimalScale
}

// String returns the currency of the amount.
func (m AmountMeta) String() string {
	return m.currency.String()
}

// CurrencyAmount represents a quantity of a single currency.
// The underlying fraction is expressed in the smallest on-chain units of the
// currency (raw amount), so "1.5 USDC" with 6 decimals is stored as 1500000/1.
// A raw amount may itself be fractional, for example after a division.
//
// CurrencyAmount is immutable and safe for concurrent use by multiple goroutines.
type CurrencyAmount struct {
	MetaFraction[AmountMeta]
}

// newAmountSafe creates a new amount and checks that its integer part fits
// into 256 bits.
func newAmountSafe(c Currency, f Fraction) (CurrencyAmount, error) {
	if f.Quotient().CmpAbs(MaxUint256) > 0 {
		return CurrencyAmount{}, fmt.Errorf("%v of %v: %w", f, c, ErrAmountOverflow)
	}
	return CurrencyAmount{WithMeta(f, newAmountMeta(c))}, nil
}

// NewAmountFromRaw returns an amount of raw smallest units of a currency,
// such as wei for ether.
//
// NewAmountFromRaw returns an error if the absolute raw amount exceeds [MaxUint256].
func NewAmountFromRaw(curr Currency, raw *big.Int) (CurrencyAmount, error) {
	return newAmountSafe(curr, NewFractionFromInt(raw))
}

// NewAmountFromInt64 is like [NewAmountFromRaw] but takes an int64.
func NewAmountFromInt64(curr Currency, raw int64) (CurrencyAmount, error) {
	return NewAmountFromRaw(curr, big.NewInt(raw))
}

// MustNewAmount is like [NewAmountFromInt64] but panics if the amount cannot
// be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr Currency, raw int64) CurrencyAmount {
	a, err := NewAmountFromInt64(curr, raw)
	if err != nil {
		panic(fmt.Sprintf("NewAmountFromInt64(%v, %v) failed: %v", curr, raw, err))
	}
	return a
}

// NewAmountFromFraction returns an amount of num / den raw units.
//
// NewAmountFromFraction returns an error if:
//   - the denominator is zero;
//   - the integer part of the raw amount exceeds [MaxUint256].
func NewAmountFromFraction(curr Currency, num, den *big.Int) (CurrencyAmount, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("converting fraction: %w", err)
	}
	return newAmountSafe(curr, f)
}

// ParseAmount converts a decimal string in whole units, such as "1.5",
// to an amount.
// See also method [CurrencyAmount.ToExact].
//
// ParseAmount returns an error if:
//   - the string is not a valid decimal number;
//   - it has more digits after the decimal point than the currency has decimals;
//   - the raw amount exceeds [MaxUint256].
func ParseAmount(curr Currency, amount string) (CurrencyAmount, error) {
	d, err := shopspring.NewFromString(amount)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("parsing amount: %w", err)
	}
	raw := d.Shift(int32(curr.Decimals()))
	if !raw.IsInteger() {
		return CurrencyAmount{}, fmt.Errorf("parsing amount %q: %v supports at most %v decimals", amount, curr, curr.Decimals())
	}
	return NewAmountFromRaw(curr, raw.BigInt())
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr Currency, amount string) CurrencyAmount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%v, %q) failed: %v", curr, amount, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount equal to d whole units of a currency.
// If d has more digits after the decimal point than the currency has
// decimals, the raw amount is fractional.
// See also method [CurrencyAmount.Decimal].
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (CurrencyAmount, error) {
	f := NewFractionFromDecimal(d).Mul(NewFractionFromInt(pow10(curr.Decimals())))
	return newAmountSafe(curr, f)
}

// Currency returns the currency of the amount.
func (a CurrencyAmount) Currency() Currency {
	return a.Meta().Currency()
}

// DecimalScale returns 10^decimals of the currency of the amount.
func (a CurrencyAmount) DecimalScale() *big.Int {
	return a.Meta().DecimalScale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a CurrencyAmount) Sign() int {
	return a.Fraction().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a CurrencyAmount) IsZero() bool {
	return a.Fraction().IsZero()
}

// SameCurr returns true if amounts are denominated in equal currencies.
// See also method [Currency.Equal].
func (a CurrencyAmount) SameCurr(b CurrencyAmount) bool {
	return a.Currency().Equal(b.Currency())
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result exceeds [MaxUint256].
func (a CurrencyAmount) Add(b CurrencyAmount) (CurrencyAmount, error) {
	c, err := a.add(b)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a CurrencyAmount) add(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, ErrCurrencyMismatch
	}
	return newAmountSafe(a.Currency(), a.Fraction().Add(b.Fraction()))
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result exceeds [MaxUint256] in absolute value.
func (a CurrencyAmount) Sub(b CurrencyAmount) (CurrencyAmount, error) {
	c, err := a.sub(b)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a CurrencyAmount) sub(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, ErrCurrencyMismatch
	}
	return newAmountSafe(a.Currency(), a.Fraction().Sub(b.Fraction()))
}

// Mul returns the product of the raw amounts a and b, in the currency of a.
//
// Mul returns an error if:
//   - amounts are denominated in different currencies;
//   - the result exceeds [MaxUint256].
func (a CurrencyAmount) Mul(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, fmt.Errorf("computing [%v * %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.MulFraction(b.Fraction())
}

// MulFraction returns the amount scaled by the factor f.
//
// MulFraction returns an error if the result exceeds [MaxUint256].
func (a CurrencyAmount) MulFraction(f Fraction) (CurrencyAmount, error) {
	c, err := newAmountSafe(a.Currency(), a.Fraction().Mul(f))
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("computing [%v * %v]: %w", a, f, err)
	}
	return c, nil
}

// Quo returns the quotient of the raw amounts a and b, in the currency of a.
//
// Quo returns an error if:
//   - amounts are denominated in different currencies;
//   - the amount b is zero;
//   - the result exceeds [MaxUint256].
func (a CurrencyAmount) Quo(b CurrencyAmount) (CurrencyAmount, error) {
	if !a.SameCurr(b) {
		return CurrencyAmount{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.QuoFraction(b.Fraction())
}

// QuoFraction returns the amount divided by the divisor f.
//
// QuoFraction returns an error if f is zero or the result exceeds [MaxUint256].
func (a CurrencyAmount) QuoFraction(f Fraction) (CurrencyAmount, error) {
	g, err := a.Fraction().Quo(f)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("computing [%v / %v]: %w", a, f, err)
	}
	c, err := newAmountSafe(a.Currency(), g)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("computing [%v / %v]: %w", a, f, err)
	}
	return c, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a CurrencyAmount) Cmp(b CurrencyAmount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.Fraction().Cmp(b.Fraction()), nil
}

// Equal returns true if amounts are denominated in equal currencies and
// are numerically equal.
func (a CurrencyAmount) Equal(b CurrencyAmount) bool {
	c, err := a.Cmp(b)
	return err == nil && c == 0
}

// Wrapped returns the same raw amount in the wrapped form of the currency.
// See also method [Currency.Wrapped].
func (a CurrencyAmount) Wrapped() (CurrencyAmount, error) {
	w, err := a.Currency().Wrapped()
	if err != nil {
		return CurrencyAmount{}, err
	}
	return newAmountSafe(w, a.Fraction())
}

// human returns the amount in whole units of the currency.
func (a CurrencyAmount) human() Fraction {
	f := a.Fraction()
	return newFractionUnsafe(f.Num(), new(big.Int).Mul(f.denominator(), a.Meta().scale()))
}

// ToExact returns the integer part of the raw amount in whole units of the
// currency, without rounding and without trailing zeros:
//
//	1500000 raw units of a 6-decimal token -> 1.5
func (a CurrencyAmount) ToExact() string {
	return shopspring.NewFromBigInt(a.Quotient(), -int32(a.Currency().Decimals())).String()
}

// ToSignificant renders the amount in whole units of the currency.
// See also method [Fraction.ToSignificant].
func (a CurrencyAmount) ToSignificant(digits int, rounding Rounding) string {
	return a.human().ToSignificant(digits, rounding)
}

// ToFixed renders the amount in whole units of the currency.
// See also method [Fraction.ToFixed].
func (a CurrencyAmount) ToFixed(places int, rounding Rounding) string {
	return a.human().ToFixed(places, rounding)
}

// Decimal returns the amount in whole units of the currency as a decimal,
// rounded half-up once from the exact value.
// The scale is the number of decimals of the currency, reduced as far as
// needed for the integer part and the fraction to fit into
// [decimal.MaxPrec] digits. For example 1234.5 WETH has a scale of 15.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the integer part of the amount has more than
// [decimal.MaxPrec] digits.
func (a CurrencyAmount) Decimal() (decimal.Decimal, error) {
	h := a.human()
	scale := min(a.Currency().Decimals(), decimal.MaxScale, decimal.MaxPrec-h.intDigits())
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("converting [%v]: integer part exceeds precision %v", a, decimal.MaxPrec)
	}
	d, err := h.Decimal(scale)
	if err != nil && scale > 0 {
		// Rounding carried into a new integer digit, as in 9.99 -> 10.0.
		d, err = h.Decimal(scale - 1)
	}
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting [%v]: %w", a, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns the currency and
// the exact amount, for example "USDC 1.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a CurrencyAmount) String() string {
	return a.Currency().String() + " " + a.ToExact()
}
