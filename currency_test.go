package sdkcore

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
)

const (
	addressZero = "0x0000000000000000000000000000000000000000"
	addressOne  = "0x0000000000000000000000000000000000000001"
	addressTwo  = "0x0000000000000000000000000000000000000002"
	daiMainnet  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

func TestNewToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			chainID  ChainID
			address  string
			decimals int
		}{
			{Mainnet, addressOne, 18},
			{2, addressTwo, 0},
			{Polygon, daiMainnet, MaxDecimals},
		}
		for _, tt := range tests {
			got, err := NewToken(tt.chainID, tt.address, tt.decimals, "TST", "Test")
			if err != nil {
				t.Errorf("NewToken(%v, %q, %v) failed: %v", tt.chainID, tt.address, tt.decimals, err)
				continue
			}
			if got.ChainID() != tt.chainID || got.Address() != tt.address || got.Decimals() != tt.decimals {
				t.Errorf("NewToken(%v, %q, %v) = %v/%v/%v", tt.chainID, tt.address, tt.decimals, got.ChainID(), got.Address(), got.Decimals())
			}
			if !got.IsToken() || got.IsNative() {
				t.Errorf("NewToken(%v, %q, %v) is not a token", tt.chainID, tt.address, tt.decimals)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			chainID  ChainID
			address  string
			decimals int
		}{
			"chain id":   {0, addressOne, 18},
			"decimals 1": {4, addressOne, 255},
			"decimals 2": {4, addressOne, 256},
			"decimals 3": {4, addressOne, -1},
			"address":    {4, "", 18},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewToken(tt.chainID, tt.address, tt.decimals, "", "")
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("NewToken(%v, %q, %v) = %v, want %v", tt.chainID, tt.address, tt.decimals, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestMustNewToken(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewToken(4, addressOne, 256) did not panic")
			}
		}()
		MustNewToken(4, addressOne, 256, "", "")
	})
}

func TestNewNative(t *testing.T) {
	got, err := NewNative(Mainnet, 18, "ETH", "Ether")
	if err != nil {
		t.Fatalf("NewNative(Mainnet, 18) failed: %v", err)
	}
	if !got.IsNative() || got.Address() != "" {
		t.Errorf("NewNative(Mainnet, 18) = %v, want native without address", got)
	}
	if _, err := NewNative(0, 18, "ETH", "Ether"); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("NewNative(0, 18) = %v, want %v", err, ErrInvalidCurrency)
	}

	t.Run("known chain", func(t *testing.T) {
		got, err := NativeCurrency(Polygon)
		if err != nil {
			t.Fatalf("NativeCurrency(Polygon) failed: %v", err)
		}
		if got.Symbol() != "MATIC" || got.Decimals() != 18 || got.ChainID() != Polygon {
			t.Errorf("NativeCurrency(Polygon) = %v %v %v, want MATIC 18 Polygon", got.Symbol(), got.Decimals(), got.ChainID())
		}
		if _, err := NativeCurrency(12345); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("NativeCurrency(12345) = %v, want %v", err, ErrInvalidCurrency)
		}
	})
}

func TestCurrency_Equal(t *testing.T) {
	token := MustNewToken(4, addressOne, 25, "Test", "Te")
	eth, _ := NewNative(4, 18, "ETH", "Ether")
	eth2, _ := NewNative(4, 18, "WHATEVER", "Other")

	tests := []struct {
		name string
		a, b Currency
		want bool
	}{
		{"same", token, token, true},
		{"different name", token, MustNewToken(4, addressOne, 25, "Test", "TeW"), true},
		{"different symbol", token, MustNewToken(4, addressOne, 25, "WETest", "Te"), true},
		{"different decimals", token, MustNewToken(4, addressOne, 9, "Test", "Te"), true},
		{"different case", MustNewToken(1, daiMainnet, 18, "", ""), MustNewToken(1, "0x6b175474e89094c44da98b954eedeac495271d0f", 18, "", ""), true},
		{"different chain", token, MustNewToken(3, addressOne, 25, "Test", "Te"), false},
		{"different address", token, MustNewToken(4, daiMainnet, 25, "Test", "Te"), false},
		{"natives", eth, eth2, true},
		{"native and token", eth, token, false},
		{"natives on different chains", eth, newNativeForTest(t, 5), false},
		{"unknown", Currency{}, Currency{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}

	t.Run("fees ignored", func(t *testing.T) {
		fee, err := token.WithTransferFees(big.NewInt(100), big.NewInt(200))
		if err != nil {
			t.Fatalf("WithTransferFees failed: %v", err)
		}
		if !fee.Equal(token) {
			t.Errorf("%v.Equal(%v) = false, want true", fee, token)
		}
	})
}

func newNativeForTest(t *testing.T, chainID ChainID) Currency {
	t.Helper()
	c, err := NewNative(chainID, 18, "ETH", "Ether")
	if err != nil {
		t.Fatalf("NewNative(%v, 18) failed: %v", chainID, err)
	}
	return c
}

func TestCurrency_SortsBefore(t *testing.T) {
	one := MustNewToken(1, addressOne, 18, "", "")
	two := MustNewToken(1, addressTwo, 18, "", "")
	dai := MustNewToken(1, daiMainnet, 18, "DAI", "Dai")

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b Currency
			want bool
		}{
			{one, two, true},
			{two, one, false},
			{two, dai, true},
			{dai, one, false},
		}
		for _, tt := range tests {
			if !tt.a.CanSort(tt.b) {
				t.Errorf("%v.CanSort(%v) = false, want true", tt.a, tt.b)
				continue
			}
			if got := tt.a.SortsBefore(tt.b); got != tt.want {
				t.Errorf("%v.SortsBefore(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		eth := newNativeForTest(t, 1)
		tests := map[string]struct {
			a, b Currency
		}{
			"same token":       {one, one},
			"same address":     {dai, MustNewToken(1, "0x6b175474e89094c44da98b954eedeac495271d0f", 18, "", "")},
			"different chains": {one, MustNewToken(4, addressTwo, 18, "", "")},
			"native":           {eth, one},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if tt.a.CanSort(tt.b) {
					t.Errorf("%v.CanSort(%v) = true, want false", tt.a, tt.b)
				}
				defer func() {
					r := recover()
					if r == nil {
						t.Errorf("%v.SortsBefore(%v) did not panic", tt.a, tt.b)
						return
					}
					err, ok := r.(error)
					if !ok || !errors.Is(err, ErrInvalidComparison) {
						t.Errorf("%v.SortsBefore(%v) panicked with %v, want %v", tt.a, tt.b, r, ErrInvalidComparison)
					}
				}()
				tt.a.SortsBefore(tt.b)
			})
		}
	})
}

func TestCurrency_Wrapped(t *testing.T) {
	weth := MustNewToken(1, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH", "Wrapped Ether")
	eth := newNativeForTest(t, 1)

	got, err := weth.Wrapped()
	if err != nil || !got.Equal(weth) {
		t.Errorf("%v.Wrapped() = %v, %v, want %v", weth, got, err, weth)
	}

	if _, err := eth.Wrapped(); !errors.Is(err, ErrNoWrappedToken) {
		t.Errorf("%v.Wrapped() = %v, want %v", eth, err, ErrNoWrappedToken)
	}

	wrapping, err := eth.WithWrapped(weth)
	if err != nil {
		t.Fatalf("%v.WithWrapped(%v) failed: %v", eth, weth, err)
	}
	got, err = wrapping.Wrapped()
	if err != nil || !got.Equal(weth) {
		t.Errorf("%v.Wrapped() = %v, %v, want %v", wrapping, got, err, weth)
	}
	if !wrapping.Equal(eth) {
		t.Errorf("%v.Equal(%v) = false, want true", wrapping, eth)
	}

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			native, token Currency
		}{
			"token wraps":      {weth, weth},
			"native wrapped":   {eth, eth},
			"different chains": {eth, MustNewToken(5, addressOne, 18, "", "")},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := tt.native.WithWrapped(tt.token); !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("%v.WithWrapped(%v) = %v, want %v", tt.native, tt.token, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestCurrency_WithTransferFees(t *testing.T) {
	token := MustNewToken(1, addressOne, 18, "", "")

	got, err := token.WithTransferFees(big.NewInt(100), nil)
	if err != nil {
		t.Fatalf("WithTransferFees(100, nil) failed: %v", err)
	}
	if got.BuyFeeBps().Int64() != 100 || got.SellFeeBps() != nil {
		t.Errorf("WithTransferFees(100, nil) = %v/%v, want 100/nil", got.BuyFeeBps(), got.SellFeeBps())
	}
	if token.BuyFeeBps() != nil {
		t.Errorf("WithTransferFees modified the receiver")
	}

	if _, err := token.WithTransferFees(big.NewInt(-1), nil); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("WithTransferFees(-1, nil) = %v, want %v", err, ErrInvalidCurrency)
	}
	eth := newNativeForTest(t, 1)
	if _, err := eth.WithTransferFees(big.NewInt(1), nil); !errors.Is(err, ErrInvalidCurrency) {
		t.Errorf("%v.WithTransferFees(1, nil) = %v, want %v", eth, err, ErrInvalidCurrency)
	}
}

func TestCurrency_ChecksumAddress(t *testing.T) {
	token := MustNewToken(1, "0x6b175474e89094c44da98b954eedeac495271d0f", 18, "DAI", "Dai")
	got, err := token.ChecksumAddress()
	if err != nil {
		t.Fatalf("%v.ChecksumAddress() failed: %v", token, err)
	}
	if got != daiMainnet {
		t.Errorf("%v.ChecksumAddress() = %q, want %q", token, got, daiMainnet)
	}

	tests := []Currency{
		MustNewToken(1, "0x1a9C8182C09F50C8318d769245beA5", 18, "", ""),
		MustNewToken(1, "not an address", 18, "", ""),
		newNativeForTest(t, 1),
	}
	for _, tt := range tests {
		if _, err := tt.ChecksumAddress(); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("%v.ChecksumAddress() = %v, want %v", tt, err, ErrInvalidCurrency)
		}
	}
}

func TestCurrency_String(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{MustNewToken(1, daiMainnet, 18, "DAI", "Dai"), "DAI"},
		{MustNewToken(1, addressOne, 18, "", ""), addressOne},
		{newNativeForTest(t, 1), "ETH"},
		{Currency{}, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.curr.String(); got != tt.want {
			t.Errorf("Currency.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		token, err := MustNewToken(1, daiMainnet, 18, "DAI", "Dai").WithTransferFees(big.NewInt(30), nil)
		if err != nil {
			t.Fatalf("WithTransferFees failed: %v", err)
		}
		got, err := json.Marshal(token)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", token, err)
		}
		want := `{"chainId":1,"address":"` + daiMainnet + `","decimals":18,"symbol":"DAI","name":"Dai","buyFeeBps":30}`
		if string(got) != want {
			t.Errorf("json.Marshal(%v) = %s, want %s", token, got, want)
		}

		var back Currency
		if err := json.Unmarshal(got, &back); err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", got, err)
		}
		if !back.Equal(token) || back.Symbol() != "DAI" || back.BuyFeeBps().Int64() != 30 {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", got, back, token)
		}
	})

	t.Run("native", func(t *testing.T) {
		var got Currency
		if err := json.Unmarshal([]byte(`{"chainId":137,"decimals":18,"symbol":"MATIC"}`), &got); err != nil {
			t.Fatalf("json.Unmarshal failed: %v", err)
		}
		if !got.IsNative() || got.ChainID() != Polygon {
			t.Errorf("json.Unmarshal = %v, want native on %v", got, Polygon)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"chainId":0,"decimals":18}`,
			`{"chainId":1,"address":"0x1","decimals":300}`,
			`{"chainId":1,"address":"0x1","decimals":18,"buyFeeBps":-5}`,
			`[]`,
		}
		for _, tt := range tests {
			var got Currency
			if err := json.Unmarshal([]byte(tt), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
		if _, err := json.Marshal(Currency{}); err == nil {
			t.Errorf("json.Marshal(Currency{}) did not fail")
		}
	})
}
