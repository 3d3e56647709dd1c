/*
Package sdkcore implements exact token amounts and prices for decentralized
exchange SDKs.
All values are rational numbers over arbitrary-precision integers, so chains
of arithmetic operations never lose precision and never pass through
floating-point numbers.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Native currencies and tokens on any EVM network
  - Currency amounts in raw on-chain units of up to 256 bits
  - Prices that chain across hops and convert amounts between currencies
  - Deterministic decimal rendering with a choice of rounding policies

# Representation

[Fraction] is a pair of numerator and denominator. Fractions are never
reduced, arithmetic results carry the cross-multiplied terms.

[MetaFraction] attaches an immutable payload to a fraction.
It is the common base of the two currency-aware types:

  - [CurrencyAmount] carries a [Currency] and its decimal scale.
    The fraction holds the raw amount in the smallest on-chain units.
  - [Price] carries a base currency, a quote currency and a decimal scalar.
    The fraction holds the ratio of raw amounts, the scalar is applied only
    when the price is rendered.

[Currency] is either the native currency of a network or a token contract.
Currencies are compared by network and address only.

# Rendering

Values are rendered with [Fraction.ToSignificant] and [Fraction.ToFixed]
(and the methods of the same names on amounts and prices).
The [Rounding] policy is chosen per call: [RoundDown], [RoundHalfUp] or
[RoundUp]. Rounding is applied once, at the last rendered digit, to the
exact value.

# Errors

Operations that depend on input values return errors that wrap one of
[ErrDivisionByZero], [ErrCurrencyMismatch], [ErrInvalidCurrency],
[ErrAmountOverflow] or [ErrNoWrappedToken].
Calls that can only fail because of a programming error, such as ordering a
token against itself with [Currency.SortsBefore], panic.
*/
package sdkcore
