package sdkcore

import (
	"fmt"
	"math/big"
)

// MetaFraction is a [Fraction] with an immutable payload of type M attached.
// The payload is carried unchanged through every arithmetic result; types
// built on MetaFraction, such as [CurrencyAmount] and [Price], decide which
// operands are compatible and how payloads combine.
type MetaFraction[M any] struct {
	frac Fraction
	meta M
}

// NewMetaFraction returns num / den with the payload meta attached.
//
// NewMetaFraction returns an error if the denominator is zero.
func NewMetaFraction[M any](num, den *big.Int, meta M) (MetaFraction[M], error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return MetaFraction[M]{}, err
	}
	return MetaFraction[M]{frac: f, meta: meta}, nil
}

// WithMeta attaches the payload meta to the fraction f.
func WithMeta[M any](f Fraction, meta M) MetaFraction[M] {
	return MetaFraction[M]{frac: f, meta: meta}
}

// Fraction returns the value without its payload.
func (f MetaFraction[M]) Fraction() Fraction {
	return f.frac
}

// Meta returns the payload.
func (f MetaFraction[M]) Meta() M {
	return f.meta
}

// Num returns a copy of the numerator.
func (f MetaFraction[M]) Num() *big.Int {
	return f.frac.Num()
}

// Denom returns a copy of the denominator.
func (f MetaFraction[M]) Denom() *big.Int {
	return f.frac.Denom()
}

// Quotient returns the integer part of the value, truncated towards zero.
func (f MetaFraction[M]) Quotient() *big.Int {
	return f.frac.Quotient()
}

// WithFraction returns the fraction g with the payload of f.
func (f MetaFraction[M]) WithFraction(g Fraction) MetaFraction[M] {
	return MetaFraction[M]{frac: g, meta: f.meta}
}

// Add returns f + g, keeping the payload of f.
func (f MetaFraction[M]) Add(g Fraction) MetaFraction[M] {
	return f.WithFraction(f.frac.Add(g))
}

// Sub returns f - g, keeping the payload of f.
func (f MetaFraction[M]) Sub(g Fraction) MetaFraction[M] {
	return f.WithFraction(f.frac.Sub(g))
}

// Mul returns f * g, keeping the payload of f.
func (f MetaFraction[M]) Mul(g Fraction) MetaFraction[M] {
	return f.WithFraction(f.frac.Mul(g))
}

// Quo returns f / g, keeping the payload of f.
// Quo returns an error if g is zero.
func (f MetaFraction[M]) Quo(g Fraction) (MetaFraction[M], error) {
	h, err := f.frac.Quo(g)
	if err != nil {
		return MetaFraction[M]{}, err
	}
	return f.WithFraction(h), nil
}

// Cmp compares the values, ignoring payloads.
// See also method [Fraction.Cmp].
func (f MetaFraction[M]) Cmp(g Fraction) int {
	return f.frac.Cmp(g)
}

// Equal returns true if the values are numerically equal, ignoring payloads.
func (f MetaFraction[M]) Equal(g Fraction) bool {
	return f.frac.Equal(g)
}

// ToSignificant renders the raw value, see [Fraction.ToSignificant].
func (f MetaFraction[M]) ToSignificant(digits int, rounding Rounding) string {
	return f.frac.ToSignificant(digits, rounding)
}

// ToFixed renders the raw value, see [Fraction.ToFixed].
func (f MetaFraction[M]) ToFixed(places int, rounding Rounding) string {
	return f.frac.ToFixed(places, rounding)
}

// String returns the payload followed by the fraction, as "meta num/den".
func (f MetaFraction[M]) String() string {
	return fmt.Sprintf("%v %v", f.meta, f.frac)
}
