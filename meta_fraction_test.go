package sdkcore

import (
	"errors"
	"math/big"
	"testing"
)

type tag string

func TestNewMetaFraction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := NewMetaFraction(big.NewInt(6), big.NewInt(4), tag("x"))
		if err != nil {
			t.Fatalf("NewMetaFraction(6, 4) failed: %v", err)
		}
		if got.Num().Int64() != 6 || got.Denom().Int64() != 4 {
			t.Errorf("NewMetaFraction(6, 4) = %v/%v, want 6/4", got.Num(), got.Denom())
		}
		if got.Meta() != "x" {
			t.Errorf("NewMetaFraction(6, 4).Meta() = %q, want %q", got.Meta(), "x")
		}
		if got.Quotient().Int64() != 1 {
			t.Errorf("NewMetaFraction(6, 4).Quotient() = %v, want 1", got.Quotient())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewMetaFraction(big.NewInt(6), big.NewInt(0), tag("x"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("NewMetaFraction(6, 0) = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestMetaFraction_Arithmetic(t *testing.T) {
	f := WithMeta(MustNewFraction(1, 2), tag("left"))
	g := MustNewFraction(1, 3)

	tests := []struct {
		name string
		got  MetaFraction[tag]
		want string
	}{
		{"add", f.Add(g), "5/6"},
		{"sub", f.Sub(g), "1/6"},
		{"mul", f.Mul(g), "1/6"},
		{"with", f.WithFraction(g), "1/3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Fraction().String(); got != tt.want {
				t.Errorf("%v = %q, want %q", tt.name, got, tt.want)
			}
			if tt.got.Meta() != "left" {
				t.Errorf("%v meta = %q, want %q", tt.name, tt.got.Meta(), "left")
			}
		})
	}

	t.Run("quo", func(t *testing.T) {
		got, err := f.Quo(g)
		if err != nil {
			t.Fatalf("%v.Quo(%v) failed: %v", f, g, err)
		}
		if got.Fraction().String() != "3/2" || got.Meta() != "left" {
			t.Errorf("%v.Quo(%v) = %v", f, g, got)
		}
		if _, err := f.Quo(Fraction{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v.Quo(0) = %v, want %v", f, err, ErrDivisionByZero)
		}
	})

	t.Run("cmp", func(t *testing.T) {
		if c := f.Cmp(g); c != 1 {
			t.Errorf("%v.Cmp(%v) = %v, want 1", f, g, c)
		}
		if c := f.Cmp(MustNewFraction(2, 4)); c != 0 {
			t.Errorf("%v.Cmp(2/4) = %v, want 0", f, c)
		}
	})
}

func TestMetaFraction_Render(t *testing.T) {
	f := WithMeta(MustNewFraction(2, 3), tag("m"))
	if got := f.ToSignificant(3, RoundHalfUp); got != "0.667" {
		t.Errorf("%v.ToSignificant(3) = %q, want %q", f, got, "0.667")
	}
	if got := f.ToFixed(2, RoundDown); got != "0.66" {
		t.Errorf("%v.ToFixed(2) = %q, want %q", f, got, "0.66")
	}
	if got := f.String(); got != "m 2/3" {
		t.Errorf("MetaFraction.String() = %q, want %q", got, "m 2/3")
	}
}

func TestMetaFraction_Equal(t *testing.T) {
	f := WithMeta(MustNewFraction(1, 2), tag("a"))
	tests := []struct {
		g    Fraction
		want bool
	}{
		{MustNewFraction(1, 2), true},
		{MustNewFraction(2, 4), true},
		{MustNewFraction(-1, -2), true},
		{MustNewFraction(1, 3), false},
		{Fraction{}, false},
	}
	for _, tt := range tests {
		if got := f.Equal(tt.g); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", f, tt.g, got, tt.want)
		}
	}
}
