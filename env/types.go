package env

import (
	"context"
	"errors"
)

// ErrDeadlineExceeded is returned by Checkpoint once the configured
// deadline has passed.
var ErrDeadlineExceeded = errors.New("env: deadline exceeded")

// Option configures an Environment via functional arguments, matching the
// teacher's bfs.Option / flow.FlowOption shape.
type Option func(*Environment)

// WithContext sets the context whose Done channel and deadline govern
// Checkpoint.
func WithContext(ctx context.Context) Option {
	return func(e *Environment) { e.ctx = ctx }
}

// WithCheckpointStride sets how many Tick calls elapse between actual
// context checks, so a caller isn't paying for a context check on every
// single O(n+m) operation. A stride of 1 checks on every tick; the
// default is 256.
func WithCheckpointStride(n int) Option {
	return func(e *Environment) {
		if n > 0 {
			e.stride = n
		}
	}
}

// WithMaxComplementBits overrides the default bound on how many
// row+column+global complement lines testComplementTU's 2^(m+n+1)
// enumeration is allowed to cover before it refuses to run.
func WithMaxComplementBits(n int) Option {
	return func(e *Environment) {
		if n > 0 {
			e.maxComplementBits = n
		}
	}
}

// Stats accumulates counters the driver and its collaborators update as
// they run, following a stats-by-return-value style rather than a logging
// library: the caller inspects Stats after the call instead of a side
// channel.
type Stats struct {
	NodesCreated   int
	TasksProcessed int
	PivotCount     int
	BFSRuns        int
}

// Environment is the per-call resource context threaded through a single
// driver invocation: deadline checking, a LIFO scratch arena, and Stats.
// Not safe for concurrent use; the driver is strictly single-threaded.
type Environment struct {
	ctx    context.Context
	stride int
	ticks  int

	maxComplementBits int

	arena [][]int
	stats Stats
}

// defaultMaxComplementBits bounds testComplementTU's 2^(m+n+1)
// enumeration to at most a million complemented copies by default.
const defaultMaxComplementBits = 20

// New builds an Environment with context.Background() and the default
// checkpoint stride, then applies opts.
func New(opts ...Option) *Environment {
	e := &Environment{ctx: context.Background(), stride: 256, maxComplementBits: defaultMaxComplementBits}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxComplementBits returns the configured bound on the number of
// row+column+global lines testComplementTU's enumeration may cover.
func (e *Environment) MaxComplementBits() int { return e.maxComplementBits }

// Tick advances the internal operation counter and, every stride calls,
// checks the context for cancellation or deadline expiry. Call this from
// inside O(n+m) loops.
func (e *Environment) Tick() error {
	e.ticks++
	if e.ticks%e.stride != 0 {
		return nil
	}
	return e.checkDone()
}

// Checkpoint forces an immediate context check regardless of stride,
// intended for call sites that need a guaranteed check (start of every
// task dequeue, before every BFS).
func (e *Environment) Checkpoint() error {
	return e.checkDone()
}

func (e *Environment) checkDone() error {
	select {
	case <-e.ctx.Done():
		if errors.Is(e.ctx.Err(), context.DeadlineExceeded) {
			return ErrDeadlineExceeded
		}
		return e.ctx.Err()
	default:
		return nil
	}
}

// Stats returns the accumulated statistics for this Environment.
func (e *Environment) Stats() Stats { return e.stats }

// AddNodesCreated, AddTasksProcessed, AddPivot and AddBFSRun let
// collaborators update Stats without exposing the struct's fields
// directly for mutation.
func (e *Environment) AddNodesCreated(n int)   { e.stats.NodesCreated += n }
func (e *Environment) AddTasksProcessed(n int) { e.stats.TasksProcessed += n }
func (e *Environment) AddPivot(n int)          { e.stats.PivotCount += n }
func (e *Environment) AddBFSRun(n int)         { e.stats.BFSRuns += n }

// GetScratch pops a reusable []int of at least length n off the LIFO
// arena, or allocates a fresh one if the arena is empty. PutScratch must
// be called, in strict LIFO order, before the scope that called
// GetScratch returns (this stack-allocator invariant); violating
// that order is a programming error, not a recoverable condition; neither
// GetScratch nor PutScratch checks it.
func (e *Environment) GetScratch(n int) []int {
	if len(e.arena) == 0 {
		return make([]int, n)
	}
	top := e.arena[len(e.arena)-1]
	e.arena = e.arena[:len(e.arena)-1]
	if cap(top) < n {
		return make([]int, n)
	}
	return top[:n]
}

// PutScratch returns a scratch slice obtained from GetScratch to the
// arena for reuse.
func (e *Environment) PutScratch(s []int) {
	e.arena = append(e.arena, s)
}
