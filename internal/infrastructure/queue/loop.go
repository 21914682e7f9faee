package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const defaultBuffer = 64

// ErrStopped is returned for actions submitted after the loop has shut down.
var ErrStopped = errors.New("action loop stopped")

// Action is one unit of work run on the loop goroutine.
type Action func(ctx context.Context) error

type job struct {
	ctx  context.Context
	run  Action
	done chan error
}

// Loop runs submitted actions one at a time on a single goroutine, in
// submission order. Everything an action touches is therefore owned by the
// loop and needs no further locking.
type Loop struct {
	jobs    chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewLoop creates a Loop whose queue holds up to buffer pending actions.
// If buffer <= 0, defaultBuffer is used.
func NewLoop(buffer int, log zerolog.Logger) *Loop {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Loop{
		jobs:    make(chan job, buffer),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start launches the loop goroutine. It stops when ctx is cancelled.
func (l *Loop) Start(ctx context.Context) {
	go l.run(ctx)
}

// Do submits fn and waits for its result. It gives up early when ctx is
// done; an action that was already dequeued still runs to completion.
func (l *Loop) Do(ctx context.Context, fn Action) error {
	j := job{ctx: ctx, run: fn, done: make(chan error, 1)}

	select {
	case l.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrStopped
	}
}

// Depth reports how many actions are waiting.
func (l *Loop) Depth() int {
	return len(l.jobs)
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Int("pending", len(l.jobs)).Msg("action loop stopped")
			return
		case j := <-l.jobs:
			if err := j.ctx.Err(); err != nil {
				j.done <- err
				continue
			}
			j.done <- l.exec(j)
		}
	}
}

func (l *Loop) exec(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Msg("action panicked")
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return j.run(j.ctx)
}
