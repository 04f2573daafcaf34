package engine

import (
	"sync"
	"time"
)

// TickSource delivers simulation ticks to the Scheduler
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// TickerSource ticks at a fixed wall-clock interval
type TickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource creates a running ticker; interval must be positive
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval)}
}

func (s *TickerSource) C() <-chan time.Time { return s.ticker.C }

func (s *TickerSource) Stop() { s.ticker.Stop() }

// ManualTickSource ticks only when Tick is called, for tests and frame-locked hosts
type ManualTickSource struct {
	ch       chan time.Time
	stopOnce sync.Once
	stop     chan struct{}
}

func NewManualTickSource() *ManualTickSource {
	return &ManualTickSource{
		ch:   make(chan time.Time),
		stop: make(chan struct{}),
	}
}

func (s *ManualTickSource) C() <-chan time.Time { return s.ch }

// Tick blocks until the consumer receives the tick; returns false once stopped
func (s *ManualTickSource) Tick() bool {
	select {
	case s.ch <- time.Now():
		return true
	case <-s.stop:
		return false
	}
}

func (s *ManualTickSource) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
