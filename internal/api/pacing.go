package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type limiterKey struct{}

// WithLimiter paces every authenticated Riot request, retries included, made under ctx.
func WithLimiter(ctx context.Context, l *rate.Limiter) context.Context {
	return context.WithValue(ctx, limiterKey{}, l)
}

func LimiterFrom(ctx context.Context) (*rate.Limiter, bool) {
	l, ok := ctx.Value(limiterKey{}).(*rate.Limiter)
	return l, ok && l != nil
}

func pace(ctx context.Context) error {
	l, ok := LimiterFrom(ctx)
	if !ok {
		return nil
	}
	if err := l.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}
