package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type Settings struct {
	// RecordLength is the size of the window of recent call outcomes.
	RecordLength int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// Percentile is the failure ratio over the window that opens the breaker.
	Percentile float64
	// RecoveryRequests is the number of consecutive half-open successes needed to close.
	RecoveryRequests int
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type circuitBreaker struct {
	mu  sync.Mutex
	now func() time.Time
	Settings

	state         State
	lastFailureAt time.Time
	window        []bool
	pos           int
	successCount  int
}

func NewCircuitBreaker(s Settings) CircuitBreaker {
	return newCircuitBreaker(s, time.Now)
}

func newCircuitBreaker(s Settings, now func() time.Time) *circuitBreaker {
	if s.RecordLength <= 0 {
		s.RecordLength = 1
	}
	return &circuitBreaker{
		now:      now,
		Settings: s,
		state:    Closed,
		window:   make([]bool, s.RecordLength),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.lastFailureAt) <= cb.Timeout {
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
	cb.pos = (cb.pos + 1) % cb.RecordLength

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.RecoveryRequests {
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
	if float64(fails)/float64(cb.RecordLength) >= cb.Percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() State {
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
	cb.lastFailureAt = cb.now()
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
