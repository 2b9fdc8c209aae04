package converter

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// breakerProvider wraps a remote provider with a circuit breaker. In file
// mode, once a few consecutive API calls fail the breaker opens and later
// phrases go straight to the dictionary fallback instead of waiting on a
// dead endpoint line by line.
type breakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

func withBreaker(inner Provider) Provider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &breakerProvider{inner: inner, cb: cb}
}

func (p *breakerProvider) Convert(ctx context.Context, text string) (string, error) {
	result, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.Convert(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (p *breakerProvider) Name() string {
	return p.inner.Name()
}

func (p *breakerProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
