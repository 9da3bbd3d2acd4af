// Package loader runs a dataset load once per variant while an engagement
// animator rotates quotes and advances a progress value.
package loader

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAnimatorBusy is returned by Run when the animator is already ticking for
// another load.
var ErrAnimatorBusy = errors.New("animator already running")

const (
	DefaultQuoteInterval    = 5 * time.Second
	DefaultProgressInterval = 500 * time.Millisecond
	DefaultProgressStep     = 10
	MaxProgress             = 100
)

// DefaultQuotes are shown while a dataset loads.
var DefaultQuotes = []string{
	"Don't kill animals for money, if not for food.",
	"Your financial decisions can save million lives every second. Choose cruelty-free investments.",
	"As we categorize our food into veg and non-veg, let's categorize our investments into ethical and non-ethical, making conscious, wise choices",
	"Choosing green meals supports our health, choosing green investments supports a healthier planet.",
	"As we read labels to avoid animal products in our food, let's research to avoid unethical practices in our investments.",
	"Our conscious food choices reflect our values; let our conscious investment choices reflect our commitment to a cruelty-free world.",
}

type AnimatorConfig struct {
	Quotes           []string
	QuoteInterval    time.Duration
	ProgressInterval time.Duration
	ProgressStep     int
}

// Snapshot is the current animator output.
type Snapshot struct {
	Quote    string `json:"quote"`
	Progress int    `json:"progress"`
}

// Animator is driven by Run until its context is canceled. Snapshot is safe
// to call concurrently.
type Animator struct {
	cfg AnimatorConfig

	mu       sync.RWMutex
	quote    int
	progress int
	running  bool
}

func NewAnimator(cfg AnimatorConfig) *Animator {
	if len(cfg.Quotes) == 0 {
		cfg.Quotes = DefaultQuotes
	}
	if cfg.QuoteInterval <= 0 {
		cfg.QuoteInterval = DefaultQuoteInterval
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
	if cfg.ProgressStep <= 0 {
		cfg.ProgressStep = DefaultProgressStep
	}
	return &Animator{cfg: cfg}
}

// Run ticks until ctx is done. It returns nil once stopped and
// ErrAnimatorBusy if another Run is active.
func (a *Animator) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAnimatorBusy
	}
	a.running = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	quotes := time.NewTicker(a.cfg.QuoteInterval)
	defer quotes.Stop()
	progress := time.NewTicker(a.cfg.ProgressInterval)
	defer progress.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-quotes.C:
			a.mu.Lock()
			a.quote = (a.quote + 1) % len(a.cfg.Quotes)
			a.mu.Unlock()
		case <-progress.C:
			a.advance()
		}
	}
}

func (a *Animator) advance() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.progress += a.cfg.ProgressStep
	if a.progress > MaxProgress {
		a.progress = MaxProgress
	}
}

func (a *Animator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Snapshot{Quote: a.cfg.Quotes[a.quote], Progress: a.progress}
}

// Running reports whether Run is currently ticking.
func (a *Animator) Running() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.running
}
