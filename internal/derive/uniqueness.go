package derive

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Status is the outcome of an item-code uniqueness check. Duplicate and
// failed both block submission; they stay distinct so the caller can word the
// message accordingly.
type Status string

const (
	StatusValid     Status = "valid"
	StatusDuplicate Status = "duplicate"
	StatusFailed    Status = "failed"
)

// CheckResult reports the outcome for the code it was requested for.
type CheckResult struct {
	Code   string
	Status Status
}

// ExistsFunc answers whether a supplier item code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultCheckTimeout = 10 * time.Second
)

// CheckerOptions tunes the uniqueness checker. Zero values fall back to the
// defaults above.
type CheckerOptions struct {
	Debounce time.Duration
	Timeout  time.Duration
}

// Checker debounces item-code uniqueness lookups. Rapid input supersedes any
// pending check, and a superseded check's late result is discarded, so the
// reported result always belongs to the most recent input.
type Checker struct {
	exists   ExistsFunc
	report   func(CheckResult)
	debounce time.Duration
	timeout  time.Duration

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// NewChecker builds a checker that calls report with the outcome of each
// non-superseded check. report runs with the checker locked and must not call
// back into it.
func NewChecker(exists ExistsFunc, report func(CheckResult), opts CheckerOptions) *Checker {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCheckTimeout
	}
	return &Checker{
		exists:   exists,
		report:   report,
		debounce: opts.Debounce,
		timeout:  opts.Timeout,
	}
}

// Submit registers the current input value. An empty value resolves to valid
// immediately without a lookup; anything else waits out the debounce window
// first, and newer input restarts the window.
func (c *Checker) Submit(code string) {
	code = strings.TrimSpace(code)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	seq := c.seq
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if code == "" {
		c.report(CheckResult{Code: "", Status: StatusValid})
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.check(seq, code)
	})
}

// Stop cancels any pending check. Late results from checks already in flight
// are still discarded by the sequence guard.
func (c *Checker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checker) check(seq uint64, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	taken, err := c.exists(ctx, code)

	result := CheckResult{Code: code, Status: StatusValid}
	switch {
	case err != nil:
		result.Status = StatusFailed
	case taken:
		result.Status = StatusDuplicate
	}

	// The staleness decision and the report share one critical section, so a
	// superseding Submit can never slip between them and let an outdated
	// result land after the newer one.
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.report(result)
}
