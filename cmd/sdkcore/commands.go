package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dexsdk/sdkcore"
	"github.com/go-kit/log"
	"github.com/urfave/cli/v2"
)

func newApp(logger log.Logger) *cli.App {
	svc := NewService()
	svc = NewLoggingService(log.With(logger, "component", "pricing"), svc)

	return &cli.App{
		Name:            "sdkcore",
		Usage:           "exact token prices and amounts",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			priceCommand(svc),
			quoteCommand(svc),
			chainsCommand(),
		},
	}
}

func pairFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    "chain",
			Aliases: []string{"c"},
			Usage:   "chain id of both currencies",
			Value:   uint64(sdkcore.Mainnet),
			EnvVars: []string{"SDKCORE_CHAIN"},
		},
		&cli.StringFlag{
			Name:     "base",
			Usage:    "base currency as address:decimals[:symbol], or native:decimals[:symbol]",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "quote",
			Usage:    "quote currency as address:decimals[:symbol], or native:decimals[:symbol]",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "rounding",
			Usage:   "rounding of the last rendered digit: down, half-up or up",
			Value:   "half-up",
			EnvVars: []string{"SDKCORE_ROUNDING"},
		},
	}
}

func priceCommand(svc Service) *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "price the base currency from a pair of amounts, such as pool reserves",
		Flags: append(pairFlags(),
			&cli.StringFlag{Name: "base-amount", Usage: "amount of base currency, in whole units", Required: true},
			&cli.StringFlag{Name: "quote-amount", Usage: "amount of quote currency, in whole units", Required: true},
			&cli.IntFlag{Name: "digits", Usage: "significant digits", Value: 6},
			&cli.BoolFlag{Name: "invert", Usage: "print the price of the quote currency instead"},
		),
		Action: func(c *cli.Context) error {
			base, quote, rounding, err := parsePair(c)
			if err != nil {
				return err
			}
			digits := c.Int("digits")
			if digits < 1 {
				return fmt.Errorf("digits must be positive, got %v", digits)
			}
			baseAmount, err := sdkcore.ParseAmount(base, c.String("base-amount"))
			if err != nil {
				return fmt.Errorf("base amount: %w", err)
			}
			quoteAmount, err := sdkcore.ParseAmount(quote, c.String("quote-amount"))
			if err != nil {
				return fmt.Errorf("quote amount: %w", err)
			}
			p, err := svc.Price(c.Context, baseAmount, quoteAmount)
			if err != nil {
				return err
			}
			if c.Bool("invert") {
				if p, err = p.Inv(); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(c.App.Writer, "%v %s\n", p.Meta(), p.ToSignificant(digits, rounding))
			return err
		},
	}
}

func quoteCommand(svc Service) *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "convert an amount of base currency at a rate",
		Flags: append(pairFlags(),
			&cli.StringFlag{Name: "rate", Usage: "quote units per base unit", Required: true},
			&cli.StringFlag{Name: "amount", Usage: "amount of base currency, in whole units", Required: true},
			&cli.IntFlag{Name: "places", Usage: "digits after the decimal point, exact if negative", Value: -1},
		),
		Action: func(c *cli.Context) error {
			base, quote, rounding, err := parsePair(c)
			if err != nil {
				return err
			}
			p, err := sdkcore.ParsePrice(base, quote, c.String("rate"))
			if err != nil {
				return err
			}
			amount, err := sdkcore.ParseAmount(base, c.String("amount"))
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			out, err := svc.Quote(c.Context, p, amount)
			if err != nil {
				return err
			}
			if places := c.Int("places"); places >= 0 {
				_, err = fmt.Fprintf(c.App.Writer, "%v %s\n", out.Currency(), out.ToFixed(places, rounding))
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, out)
			return err
		},
	}
}

func chainsCommand() *cli.Command {
	return &cli.Command{
		Name:  "chains",
		Usage: "list the supported networks",
		Action: func(c *cli.Context) error {
			for _, id := range sdkcore.SupportedChains() {
				if _, err := fmt.Fprintf(c.App.Writer, "%d\t%v\t%s\n", uint64(id), id, id.NativeSymbol()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parsePair(c *cli.Context) (base, quote sdkcore.Currency, rounding sdkcore.Rounding, err error) {
	chainID := sdkcore.ChainID(c.Uint64("chain"))
	if base, err = parseCurrency(chainID, c.String("base")); err != nil {
		return base, quote, rounding, fmt.Errorf("base: %w", err)
	}
	if quote, err = parseCurrency(chainID, c.String("quote")); err != nil {
		return base, quote, rounding, fmt.Errorf("quote: %w", err)
	}
	rounding, err = parseRounding(c.String("rounding"))
	return base, quote, rounding, err
}

// parseCurrency converts "address:decimals[:symbol]" to a currency.
// The address "native" stands for the native currency of the chain.
func parseCurrency(chainID sdkcore.ChainID, s string) (sdkcore.Currency, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return sdkcore.Currency{}, fmt.Errorf("%w: want address:decimals[:symbol], got %q", sdkcore.ErrInvalidCurrency, s)
	}
	decimals, err := strconv.Atoi(parts[1])
	if err != nil {
		return sdkcore.Currency{}, fmt.Errorf("%w: decimals %q: %v", sdkcore.ErrInvalidCurrency, parts[1], err)
	}
	var symbol string
	if len(parts) == 3 {
		symbol = parts[2]
	}
	if strings.EqualFold(parts[0], "native") {
		if symbol == "" {
			symbol = chainID.NativeSymbol()
		}
		return sdkcore.NewNative(chainID, decimals, symbol, symbol)
	}
	return sdkcore.NewToken(chainID, parts[0], decimals, symbol, "")
}

func parseRounding(s string) (sdkcore.Rounding, error) {
	switch strings.ToLower(s) {
	case "down":
		return sdkcore.RoundDown, nil
	case "half-up", "halfup":
		return sdkcore.RoundHalfUp, nil
	case "up":
		return sdkcore.RoundUp, nil
	default:
		return 0, fmt.Errorf("unknown rounding %q", s)
	}
}
