package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// ErrAlreadyStarted is returned when Run is called a second time. A failed
// load is terminal and never retried.
var ErrAlreadyStarted = errors.New("load already started")

// Status is the observable state of a task.
type Status struct {
	Name     string `json:"name"`
	State    State  `json:"state"`
	LoadID   string `json:"loadId,omitempty"`
	Error    string `json:"error,omitempty"`
	Quote    string `json:"quote,omitempty"`
	Progress int    `json:"progress"`
}

// Task loads one value once. Handlers read it concurrently through Status and
// Value.
type Task[T any] struct {
	name     string
	animator *Animator
	logger   *zap.Logger

	mu     sync.RWMutex
	state  State
	loadID string
	err    error
	value  T
}

func NewTask[T any](name string, animator *Animator, logger *zap.Logger) *Task[T] {
	if animator == nil {
		animator = NewAnimator(AnimatorConfig{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Task[T]{name: name, animator: animator, logger: logger, state: StateIdle}
}

// Run executes load while the animator ticks. The animator is stopped on
// every path before the task becomes ready or failed.
func (t *Task[T]) Run(ctx context.Context, load func(context.Context) (T, error)) error {
	t.mu.Lock()
	if t.state != StateIdle {
		t.mu.Unlock()
		return fmt.Errorf("%s: %w", t.name, ErrAlreadyStarted)
	}
	t.state = StateLoading
	t.loadID = uuid.NewString()
	loadID := t.loadID
	t.mu.Unlock()

	logger := t.logger.With(zap.String("variant", t.name), zap.String("load_id", loadID))
	logger.Info("dataset load started")
	started := time.Now()

	animCtx, stopAnimator := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return t.animator.Run(animCtx)
	})

	var (
		value   T
		loadErr error
	)
	func() {
		defer stopAnimator()
		value, loadErr = load(groupCtx)
	}()
	// A busy animator cancels groupCtx and fails the load.
	if err := group.Wait(); err != nil {
		loadErr = fmt.Errorf("%s animator: %w", t.name, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if loadErr != nil {
		t.state = StateFailed
		t.err = loadErr
		logger.Error("dataset load failed", zap.Error(loadErr), zap.Duration("duration", time.Since(started)))
		return loadErr
	}
	t.state = StateReady
	t.value = value
	logger.Info("dataset load finished", zap.Duration("duration", time.Since(started)))
	return nil
}

// Start runs the task in the background.
func (t *Task[T]) Start(ctx context.Context, load func(context.Context) (T, error)) {
	go func() {
		_ = t.Run(ctx, load)
	}()
}

func (t *Task[T]) Status() Status {
	t.mu.RLock()
	status := Status{Name: t.name, State: t.state, LoadID: t.loadID}
	if t.err != nil {
		status.Error = t.err.Error()
	}
	state := t.state
	t.mu.RUnlock()

	if state == StateLoading {
		snapshot := t.animator.Snapshot()
		status.Quote = snapshot.Quote
		status.Progress = snapshot.Progress
	}
	if state == StateReady {
		status.Progress = MaxProgress
	}
	return status
}

// Value returns the loaded value only once the task is ready.
func (t *Task[T]) Value() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != StateReady {
		var zero T
		return zero, false
	}
	return t.value, true
}

func (t *Task[T]) Name() string { return t.name }
