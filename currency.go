package sdkcore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidCurrency   = errors.New("invalid currency")
	ErrInvalidComparison = errors.New("invalid comparison")
	ErrNoWrappedToken    = errors.New("no wrapped token")
)

// MaxDecimals is the largest number of decimals a currency can have.
const MaxDecimals = 254

type currencyKind uint8

const (
	kindUnknown currencyKind = iota
	kindNative
	kindToken
)

// Currency represents an asset on an EVM network: either the native currency
// of the network or a token identified by its contract address.
// The zero value is an unknown currency that is only equal to itself.
//
// Two currencies are equal when they are of the same kind, live on the same
// network and, for tokens, have the same address ignoring case.
// Symbol, name and transfer fees are descriptive only and never take part
// in comparisons.
//
// Currency is immutable and safe for concurrent use by multiple goroutines.
type Currency struct {
	kind       currencyKind
	chainID    ChainID
	decimals   uint8
	address    string // tokens only
	symbol     string
	name       string
	buyFeeBps  *big.Int  // tokens only, nil if unknown
	sellFeeBps *big.Int  // tokens only, nil if unknown
	wrapped    *Currency // natives only, nil if unknown
}

func validateCurrency(chainID ChainID, decimals int) error {
	if chainID == 0 {
		return fmt.Errorf("%w: chain id must be positive", ErrInvalidCurrency)
	}
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("%w: decimals must be in range [0, %v], got %v", ErrInvalidCurrency, MaxDecimals, decimals)
	}
	return nil
}

// NewToken returns a token deployed at the given address.
// Symbol and name are optional and can be empty.
//
// NewToken returns an error if:
//   - the chain ID is zero;
//   - the number of decimals is negative or greater than [MaxDecimals];
//   - the address is empty.
func NewToken(chainID ChainID, address string, decimals int, symbol, name string) (Currency, error) {
	if err := validateCurrency(chainID, decimals); err != nil {
		return Currency{}, err
	}
	if address == "" {
		return Currency{}, fmt.Errorf("%w: token address must not be empty", ErrInvalidCurrency)
	}
	return Currency{
		kind:     kindToken,
		chainID:  chainID,
		decimals: uint8(decimals),
		address:  address,
		symbol:   symbol,
		name:     name,
	}, nil
}

// MustNewToken is like [NewToken] but panics if the token cannot be constructed.
// It simplifies safe initialization of global variables holding tokens.
func MustNewToken(chainID ChainID, address string, decimals int, symbol, name string) Currency {
	c, err := NewToken(chainID, address, decimals, symbol, name)
	if err != nil {
		panic(fmt.Sprintf("NewToken(%v, %q, %v) failed: %v", chainID, address, decimals, err))
	}
	return c
}

// NewNative returns the native currency of a network.
//
// NewNative returns an error if the chain ID is zero or the number of
// decimals is out of range.
func NewNative(chainID ChainID, decimals int, symbol, name string) (Currency, error) {
	if err := validateCurrency(chainID, decimals); err != nil {
		return Currency{}, err
	}
	return Currency{
		kind:     kindNative,
		chainID:  chainID,
		decimals: uint8(decimals),
		symbol:   symbol,
		name:     name,
	}, nil
}

// NativeCurrency returns the 18-decimal native currency of a known network.
// See also method [ChainID.NativeSymbol].
func NativeCurrency(chainID ChainID) (Currency, error) {
	symbol := chainID.NativeSymbol()
	if symbol == "" {
		return Currency{}, fmt.Errorf("%w: unknown native currency on chain %v", ErrInvalidCurrency, chainID)
	}
	return NewNative(chainID, 18, symbol, symbol)
}

// WithTransferFees returns a copy of the token with fee-on-transfer metadata,
// in basis points. A nil fee means the fee is unknown.
//
// WithTransferFees returns an error if the currency is not a token or
// any fee is negative.
func (c Currency) WithTransferFees(buyFeeBps, sellFeeBps *big.Int) (Currency, error) {
	if !c.IsToken() {
		return Currency{}, fmt.Errorf("%w: transfer fees on non-token %v", ErrInvalidCurrency, c)
	}
	if (buyFeeBps != nil && buyFeeBps.Sign() < 0) || (sellFeeBps != nil && sellFeeBps.Sign() < 0) {
		return Currency{}, fmt.Errorf("%w: transfer fees must not be negative", ErrInvalidCurrency)
	}
	c.buyFeeBps = copyInt(buyFeeBps)
	c.sellFeeBps = copyInt(sellFeeBps)
	return c, nil
}

// WithWrapped returns a copy of the native currency that wraps into the
// given token, such as WETH for ether.
// See also method [Currency.Wrapped].
//
// WithWrapped returns an error if the currency is not native, or the wrapped
// currency is not a token on the same network.
func (c Currency) WithWrapped(token Currency) (Currency, error) {
	if !c.IsNative() {
		return Currency{}, fmt.Errorf("%w: wrapping non-native %v", ErrInvalidCurrency, c)
	}
	if !token.IsToken() || token.ChainID() != c.ChainID() {
		return Currency{}, fmt.Errorf("%w: %v cannot wrap %v", ErrInvalidCurrency, token, c)
	}
	c.wrapped = &token
	return c, nil
}

func copyInt(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

// IsNative returns true if the currency is the native currency of its network.
func (c Currency) IsNative() bool {
	return c.kind == kindNative
}

// IsToken returns true if the currency is a token contract.
func (c Currency) IsToken() bool {
	return c.kind == kindToken
}

// ChainID returns the network of the currency.
func (c Currency) ChainID() ChainID {
	return c.chainID
}

// Decimals returns the number of digits after the decimal point between the
// smallest on-chain unit and one whole unit of the currency.
func (c Currency) Decimals() int {
	return int(c.decimals)
}

// Address returns the token address as it was given to [NewToken].
// Native currencies have an empty address.
func (c Currency) Address() string {
	return c.address
}

// Symbol returns the ticker symbol of the currency, such as "USDC".
func (c Currency) Symbol() string {
	return c.symbol
}

// Name returns the full name of the currency, such as "USD Coin".
func (c Currency) Name() string {
	return c.name
}

// BuyFeeBps returns the fee charged when buying the token, in basis points,
// or nil if it is unknown.
func (c Currency) BuyFeeBps() *big.Int {
	return copyInt(c.buyFeeBps)
}

// SellFeeBps returns the fee charged when selling the token, in basis points,
// or nil if it is unknown.
func (c Currency) SellFeeBps() *big.Int {
	return copyInt(c.sellFeeBps)
}

// Equal returns true if both currencies are natives of the same network or
// tokens at the same address, ignoring case, on the same network.
func (c Currency) Equal(o Currency) bool {
	return c.kind == o.kind &&
		c.chainID == o.chainID &&
		strings.EqualFold(c.address, o.address)
}

// CanSort returns true if [Currency.SortsBefore] can be used to order
// the currencies.
func (c Currency) CanSort(o Currency) bool {
	return c.checkSortable(o) == nil
}

func (c Currency) checkSortable(o Currency) error {
	switch {
	case !c.IsToken() || !o.IsToken():
		return fmt.Errorf("%w: only tokens can be ordered", ErrInvalidComparison)
	case c.chainID != o.chainID:
		return fmt.Errorf("%w: chain ids %v and %v differ", ErrInvalidComparison, c.chainID, o.chainID)
	case strings.EqualFold(c.address, o.address):
		return fmt.Errorf("%w: same address %v", ErrInvalidComparison, c.address)
	}
	return nil
}

// SortsBefore returns true if the lower-cased address of token c sorts before
// the lower-cased address of token o.
// This is the order pools use for their token pair.
//
// SortsBefore panics if either currency is not a token, the tokens are on
// different networks or they have the same address.
// Such a call is a programming error: to avoid this panic, use the
// [Currency.CanSort] method before calling SortsBefore.
func (c Currency) SortsBefore(o Currency) bool {
	if err := c.checkSortable(o); err != nil {
		panic(fmt.Errorf("%v.SortsBefore(%v) failed: %w", c, o, err))
	}
	return strings.ToLower(c.address) < strings.ToLower(o.address)
}

// Wrapped returns the token form of the currency.
// A token is its own wrapped form, a native currency returns the token
// given to [Currency.WithWrapped].
//
// Wrapped returns an error if a native currency has no wrapped token.
func (c Currency) Wrapped() (Currency, error) {
	switch {
	case c.IsToken():
		return c, nil
	case c.IsNative() && c.wrapped != nil:
		return *c.wrapped, nil
	case c.IsNative():
		return Currency{}, fmt.Errorf("wrapping %v on chain %v: %w", c, c.chainID, ErrNoWrappedToken)
	default:
		return Currency{}, fmt.Errorf("wrapping %v: %w", c, ErrInvalidCurrency)
	}
}

// ChecksumAddress returns the token address in the mixed-case checksum
// encoding defined by [EIP-55].
//
// ChecksumAddress returns an error if the currency is not a token or its
// address is not a 20-byte hex string.
//
// [EIP-55]: https://eips.ethereum.org/EIPS/eip-55
func (c Currency) ChecksumAddress() (string, error) {
	if !c.IsToken() {
		return "", fmt.Errorf("%w: %v has no address", ErrInvalidCurrency, c)
	}
	if !common.IsHexAddress(c.address) {
		return "", fmt.Errorf("%w: %q is not a hex address", ErrInvalidCurrency, c.address)
	}
	return common.HexToAddress(c.address).Hex(), nil
}

// String method implements the [fmt.Stringer] interface and returns
// the symbol of the currency, or its address if the symbol is empty.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	switch {
	case c.symbol != "":
		return c.symbol
	case c.address != "":
		return c.address
	case c.IsNative():
		return "NATIVE"
	default:
		return "UNKNOWN"
	}
}

type currencyJSON struct {
	ChainID    ChainID  `json:"chainId"`
	Address    string   `json:"address,omitempty"`
	Decimals   int      `json:"decimals"`
	Symbol     string   `json:"symbol,omitempty"`
	Name       string   `json:"name,omitempty"`
	BuyFeeBps  *big.Int `json:"buyFeeBps,omitempty"`
	SellFeeBps *big.Int `json:"sellFeeBps,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The output follows the token list format; native currencies have no address.
// The wrapped token of a native currency is not marshaled.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	if c.kind == kindUnknown {
		return nil, fmt.Errorf("marshaling %T: %w", c, ErrInvalidCurrency)
	}
	return json.Marshal(currencyJSON{
		ChainID:    c.chainID,
		Address:    c.address,
		Decimals:   c.Decimals(),
		Symbol:     c.symbol,
		Name:       c.name,
		BuyFeeBps:  c.buyFeeBps,
		SellFeeBps: c.sellFeeBps,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// An object without an address is a native currency.
// See also constructors [NewToken] and [NewNative].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var v currencyJSON
	if err := json.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	var (
		curr Currency
		err  error
	)
	if v.Address == "" {
		curr, err = NewNative(v.ChainID, v.Decimals, v.Symbol, v.Name)
	} else {
		curr, err = NewToken(v.ChainID, v.Address, v.Decimals, v.Symbol, v.Name)
		if err == nil && (v.BuyFeeBps != nil || v.SellFeeBps != nil) {
			curr, err = curr.WithTransferFees(v.BuyFeeBps, v.SellFeeBps)
		}
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	*c = curr
	return nil
}
