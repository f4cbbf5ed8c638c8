package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() Status
	Reset()
}

type Settings struct {
	// RecordLength is the size of the window of tracked outcomes.
	RecordLength int
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// Percentile of failures in the window that opens the breaker.
	Percentile float64
	// RecoveryRequests is the number of consecutive half-open successes needed to close.
	RecoveryRequests int
}

type circuitBreaker struct {
	mu       sync.Mutex
	settings Settings
	now      func() time.Time

	state        Status
	openedAt     time.Time
	window       []bool
	pos          int
	successCount int
}

func New(s Settings) CircuitBreaker {
	if s.RecordLength <= 0 {
		s.RecordLength = 10
	}
	return &circuitBreaker{
		settings: s,
		now:      time.Now,
		state:    Closed,
		window:   make([]bool, s.RecordLength),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.settings.Timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.settings.RecoveryRequests {
			cb.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.settings.Percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

// reset must be called with mu held.
func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
