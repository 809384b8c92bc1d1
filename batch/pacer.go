package batch

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum delay between successive external-service calls.
// It replaces ad hoc sleeps so the sequential rate-limit contract stays in
// one auditable place.
type Pacer struct {
	delay time.Duration
	mu    sync.Mutex
	last  time.Time
}

// NewPacer creates a pacer with the given minimum inter-call delay.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Mark records that a call just completed.
func (p *Pacer) Mark() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = time.Now()
}

// Wait blocks until the minimum delay since the last Mark has elapsed, or
// the context is cancelled. The first call returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	last := p.last
	p.mu.Unlock()

	if p.delay <= 0 || last.IsZero() {
		return nil
	}

	remaining := p.delay - time.Since(last)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
