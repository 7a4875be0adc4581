// Package transport stands in for the network: every "request" is a fixed
// delay followed by a local call. There is no retry.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTransport marks a failed simulated request.
var ErrTransport = errors.New("transport error")

// Simulator delays each call by Delay, or by Delays[op] when present. Fail,
// when set, is consulted after the delay; a non-nil result aborts the call
// with ErrTransport.
type Simulator struct {
	Delay  time.Duration
	Delays map[string]time.Duration
	Fail   func(op string) error
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

// Call waits for the delay, honouring ctx, then runs fn.
func (s *Simulator) Call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	delay := s.Delay
	if d, ok := s.Delays[op]; ok {
		delay = d
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %w", ErrTransport, op, ctx.Err())
		}
	}

	if s.Fail != nil {
		if err := s.Fail(op); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
		}
	}

	return fn(ctx)
}
