// Command sdkcore prices tokens and converts amounts between them with
// exact arithmetic.
//
//	sdkcore price --base 0xC02a...:18:WETH --quote 0xA0b8...:6:USDC --base-amount 2 --quote-amount 3600.5
//	sdkcore quote --base 0xC02a...:18:WETH --quote 0xA0b8...:6:USDC --rate 1800.25 --amount 2
//	sdkcore chains
package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	app := newApp(logger)
	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
