package sdkcore

import (
	"slices"
	"strconv"
)

//go:generate go run scripts/chain/codegen.go

// ChainID identifies an EVM network.
// Any non-zero value is a valid chain ID; the named constants cover the
// networks the SDK ships defaults for.
type ChainID uint64

// String returns the network name, or the decimal chain ID for networks
// without a name.
func (c ChainID) String() string {
	if name, ok := chainNameLookup[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}

// IsSupported returns true if the SDK ships defaults for the network.
// See also function [SupportedChains].
func (c ChainID) IsSupported() bool {
	return slices.Contains(supportedChains, c)
}

// NativeSymbol returns the symbol of the native currency of the network.
// If the network is unknown, the method will return an empty string.
func (c ChainID) NativeSymbol() string {
	return nativeSymbolLookup[c]
}

// SupportedChains returns the networks the SDK ships defaults for,
// ordered by chain ID.
func SupportedChains() []ChainID {
	return slices.Clone(supportedChains)
}
