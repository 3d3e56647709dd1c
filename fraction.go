package sdkcore

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

var ErrDivisionByZero = errors.New("division by zero")

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
	bigTwo = shopspring.NewFromInt(2)
)

// MaxUint256 is the largest integer amount representable on an EVM chain.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

// Rounding is a rule applied when an exact value is truncated to a finite
// number of decimal digits.
type Rounding int

const (
	// RoundDown truncates towards zero.
	RoundDown Rounding = iota
	// RoundHalfUp rounds to the nearest digit, ties away from zero.
	RoundHalfUp
	// RoundUp rounds away from zero.
	RoundUp
)

func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "RoundDown"
	case RoundHalfUp:
		return "RoundHalfUp"
	case RoundUp:
		return "RoundUp"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// Fraction represents an exact rational number num / den over arbitrary
// precision integers.
// The zero value corresponds to 0/1.
//
// Fractions are never reduced to lowest terms: the numerator and denominator
// passed to a constructor are the ones returned by [Fraction.Num] and
// [Fraction.Denom], and arithmetic results carry the plain cross-multiplied
// terms. Rounding happens only when the value is rendered.
//
// Fraction is immutable and safe for concurrent use by multiple goroutines.
type Fraction struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1, never zero otherwise
}

// newFractionUnsafe creates a fraction without checking the denominator and
// without copying the arguments.
// Use it only for freshly allocated integers with a non-zero denominator.
func newFractionUnsafe(num, den *big.Int) Fraction {
	return Fraction{num: num, den: den}
}

// NewFraction returns a fraction equal to num / den.
// The arguments are copied, later changes to them do not affect the fraction.
//
// NewFraction returns an error if the denominator is zero.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if num == nil {
		num = new(big.Int)
	}
	if den == nil || den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("computing [%v/%v]: %w", num, den, ErrDivisionByZero)
	}
	return newFractionUnsafe(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// NewFractionFromInt64 is like [NewFraction] but takes int64 terms.
func NewFractionFromInt64(num, den int64) (Fraction, error) {
	return NewFraction(big.NewInt(num), big.NewInt(den))
}

// MustNewFraction is like [NewFractionFromInt64] but panics if the denominator is zero.
// It simplifies safe initialization of global variables holding fractions.
func MustNewFraction(num, den int64) Fraction {
	f, err := NewFractionFromInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFractionFromInt64(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFractionFromInt returns the integer n as the fraction n/1.
func NewFractionFromInt(n *big.Int) Fraction {
	if n == nil {
		return Fraction{}
	}
	return newFractionUnsafe(new(big.Int).Set(n), big.NewInt(1))
}

// ParseFraction converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	123/456
//	-123/456
//	789
//
// ParseFraction returns an error if the string is malformed or the
// denominator is zero.
func ParseFraction(s string) (Fraction, error) {
	numStr, denStr, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		denStr = "1"
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Fraction{}, fmt.Errorf("parsing numerator %q: invalid integer", numStr)
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Fraction{}, fmt.Errorf("parsing denominator %q: invalid integer", denStr)
	}
	if den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("parsing %q: %w", s, ErrDivisionByZero)
	}
	return newFractionUnsafe(num, den), nil
}

// NewFractionFromDecimal returns the exact value of a decimal as the
// fraction coef / 10^scale.
// See also method [Fraction.Decimal].
func NewFractionFromDecimal(d decimal.Decimal) Fraction {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return newFractionUnsafe(num, pow10(d.Scale()))
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func (f Fraction) numerator() *big.Int {
	if f.num == nil {
		return new(big.Int)
	}
	return f.num
}

func (f Fraction) denominator() *big.Int {
	if f.den == nil {
		return bigOne
	}
	return f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.numerator())
}

// Denom returns a copy of the denominator.
func (f Fraction) Denom() *big.Int {
	return new(big.Int).Set(f.denominator())
}

// Quotient returns the integer part of the fraction, truncated towards zero.
func (f Fraction) Quotient() *big.Int {
	return new(big.Int).Quo(f.numerator(), f.denominator())
}

// Remainder returns the fraction (num rem den) / den, that is the part of the
// value that is lost by [Fraction.Quotient].
func (f Fraction) Remainder() Fraction {
	r := new(big.Int).Rem(f.numerator(), f.denominator())
	return newFractionUnsafe(r, f.Denom())
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.numerator().Sign() * f.denominator().Sign()
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.numerator().Sign() == 0
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	return newFractionUnsafe(new(big.Int).Neg(f.numerator()), f.Denom())
}

// Abs returns the absolute value of the fraction.
func (f Fraction) Abs() Fraction {
	return newFractionUnsafe(new(big.Int).Abs(f.numerator()), new(big.Int).Abs(f.denominator()))
}

// Inv returns the fraction den / num.
//
// Inv returns an error if the fraction is zero.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("inverting [%v]: %w", f, ErrDivisionByZero)
	}
	return newFractionUnsafe(f.Denom(), f.Num()), nil
}

// Add returns the sum f + g.
// When both denominators are equal the denominator is kept as is,
// otherwise the terms are cross-multiplied.
func (f Fraction) Add(g Fraction) Fraction {
	a, b := f.numerator(), f.denominator()
	c, d := g.numerator(), g.denominator()
	if b.Cmp(d) == 0 {
		return newFractionUnsafe(new(big.Int).Add(a, c), new(big.Int).Set(b))
	}
	num := new(big.Int).Mul(a, d)
	num.Add(num, new(big.Int).Mul(c, b))
	return newFractionUnsafe(num, new(big.Int).Mul(b, d))
}

// Sub returns the difference f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns the product f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	num := new(big.Int).Mul(f.numerator(), g.numerator())
	den := new(big.Int).Mul(f.denominator(), g.denominator())
	return newFractionUnsafe(num, den)
}

// Quo returns the quotient f / g.
//
// Quo returns an error if g is zero.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	num := new(big.Int).Mul(f.numerator(), g.denominator())
	den := new(big.Int).Mul(f.denominator(), g.numerator())
	return newFractionUnsafe(num, den), nil
}

// Cmp compares fractions and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// Fractions are compared by cross-multiplication, so 1/2 and 2/4 are equal.
func (f Fraction) Cmp(g Fraction) int {
	l := new(big.Int).Mul(f.numerator(), g.denominator())
	r := new(big.Int).Mul(g.numerator(), f.denominator())
	// Cross-multiplication flips the order once per negative denominator.
	c := l.Cmp(r)
	if f.denominator().Sign()*g.denominator().Sign() < 0 {
		c = -c
	}
	return c
}

// Equal returns true if fractions are numerically equal.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// Less returns true if f < g.
func (f Fraction) Less(g Fraction) bool {
	return f.Cmp(g) < 0
}

// Greater returns true if f > g.
func (f Fraction) Greater(g Fraction) bool {
	return f.Cmp(g) > 0
}

// quantize returns the value rounded to a multiple of 10^-places.
// A negative number of places rounds to a multiple of 10^|places|.
// The division is performed on the exact terms, only the last digit is rounded.
func (f Fraction) quantize(places int32, rounding Rounding) shopspring.Decimal {
	n := shopspring.NewFromBigInt(f.numerator(), 0)
	d := shopspring.NewFromBigInt(f.denominator(), 0)
	q, r := n.QuoRem(d, places)
	if r.IsZero() {
		return q
	}
	ulp := shopspring.New(1, -places)
	bump := false
	switch rounding {
	case RoundUp:
		bump = true
	case RoundHalfUp:
		bump = r.Abs().Mul(bigTwo).Cmp(d.Abs().Mul(ulp)) >= 0
	}
	if !bump {
		return q
	}
	if f.Sign() < 0 {
		return q.Sub(ulp)
	}
	return q.Add(ulp)
}

// exponent returns e such that 10^e <= |f| < 10^(e+1).
// The fraction must not be zero.
func (f Fraction) exponent() int32 {
	n := shopspring.NewFromBigInt(new(big.Int).Abs(f.numerator()), 0)
	d := shopspring.NewFromBigInt(new(big.Int).Abs(f.denominator()), 0)
	e := int32(n.NumDigits() - d.NumDigits())
	if n.Cmp(d.Shift(e)) < 0 {
		e--
	}
	return e
}

// ToSignificant returns a decimal string with the given number of significant
// digits, counted from the first non-zero digit.
// Leading zeros of values below 1 and the trailing zeros of the integer part
// are kept, trailing zeros after the decimal point are removed:
//
//	3707/1000,  4 digits -> 3.707
//	456/123,    4 digits -> 3.707
//	1/2,        4 digits -> 0.5
//	123456/1,   2 digits -> 120000
//
// ToSignificant panics if digits is less than 1.
func (f Fraction) ToSignificant(digits int, rounding Rounding) string {
	if digits < 1 {
		panic(fmt.Sprintf("%v.ToSignificant(%v) failed: number of digits must be positive", f, digits))
	}
	if f.IsZero() {
		return "0"
	}
	places := int32(digits) - 1 - f.exponent()
	return f.quantize(places, rounding).String()
}

// ToFixed returns a decimal string with exactly the given number of digits
// after the decimal point.
// The result is zero-padded if the value terminates early.
// If places is zero, the result has no decimal point.
//
// ToFixed panics if places is negative.
func (f Fraction) ToFixed(places int, rounding Rounding) string {
	if places < 0 {
		panic(fmt.Sprintf("%v.ToFixed(%v) failed: number of places must not be negative", f, places))
	}
	return f.quantize(int32(places), rounding).StringFixed(int32(places))
}

// Decimal returns the value rounded half-up to the given scale as a decimal.
// The value is rounded once, from the exact fraction, and the result keeps
// exactly the requested scale.
// See also constructor [NewFractionFromDecimal].
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the rounded value has more than [decimal.MaxPrec] digits, counting
//     the integer part and the requested digits after the decimal point.
func (f Fraction) Decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting [%v]: scale %v out of range", f, scale)
	}
	s := f.ToFixed(scale, RoundHalfUp)
	if prec := coefDigits(s); prec > decimal.MaxPrec {
		return decimal.Decimal{}, fmt.Errorf("converting [%v]: %v digits at scale %v exceed precision %v", f, prec, scale, decimal.MaxPrec)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting [%v]: %w", f, err)
	}
	return d, nil
}

// coefDigits returns the number of digits in the coefficient of a decimal
// string produced by [Fraction.ToFixed], ignoring the sign, the decimal
// point and leading zeros.
func coefDigits(s string) int {
	s = strings.TrimPrefix(s, "-")
	s = strings.Replace(s, ".", "", 1)
	return len(strings.TrimLeft(s, "0"))
}

// intDigits returns the number of digits in the integer part of |f|,
// zero for values below one.
func (f Fraction) intDigits() int {
	q := f.Quotient()
	if q.Sign() == 0 {
		return 0
	}
	return len(q.Abs(q).String())
}

// String implements the [fmt.Stringer] interface and returns the fraction
// as "num/den".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return f.numerator().String() + "/" + f.denominator().String()
}
