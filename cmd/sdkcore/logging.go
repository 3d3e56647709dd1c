package main

import (
	"context"
	"time"

	"github.com/dexsdk/sdkcore"
	"github.com/go-kit/log"
)

// loggingService decorates a Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		logger: logger,
		next:   s,
	}
}

func (s *loggingService) Price(ctx context.Context, base, quote sdkcore.CurrencyAmount) (p sdkcore.Price, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "price",
			"base", base,
			"quote", quote,
			"raw", p.Fraction(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Price(ctx, base, quote)
}

func (s *loggingService) Quote(ctx context.Context, p sdkcore.Price, amount sdkcore.CurrencyAmount) (out sdkcore.CurrencyAmount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "quote",
			"price", p,
			"amount", amount,
			"quoted", out,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Quote(ctx, p, amount)
}
