/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"sync"
	"sync/atomic"
)

// EventStream turns the context descriptor into a pull-based sequence of
// events.
//
// The stream owns a clone of the Context, so the native context stays alive
// until both the stream and the caller's Context are closed. Events are
// returned in native order and each must be closed by the caller.
//
// The first call drains whatever is already queued without waiting. After
// that the stream waits for the descriptor, then dispatches and pops one
// event per call until the queue runs dry.
type EventStream struct {
	li    *Context
	ready *readiness

	mu    sync.Mutex // serializes Next
	first bool
	done  bool

	closed atomic.Bool
}

// EventStream creates a stream over the context.
func (c *Context) EventStream() (*EventStream, error) {
	clone, err := c.Clone()
	if err != nil {
		return nil, err
	}
	fd, err := clone.Fd()
	if err != nil {
		clone.Close()
		return nil, err
	}
	r, err := newReadiness(fd)
	if err != nil {
		clone.Close()
		return nil, fmt.Errorf("libinput: event stream: %w", err)
	}
	return &EventStream{li: clone, ready: r, first: true}, nil
}

// Next returns the next event, blocking until one is available.
//
// A dispatch failure is returned once; afterwards Next reports io.EOF. When
// ctx is done Next returns ctx.Err() and the stream stays usable. After
// Close, Next returns ErrStreamClosed.
func (s *EventStream) Next(ctx context.Context) (Event, error) {
	if s.closed.Load() {
		return nil, ErrStreamClosed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil, io.EOF
	}

	for {
		// Close may have run between the check above and taking mu.
		if s.closed.Load() {
			return nil, ErrStreamClosed
		}
		if !s.first {
			if err := s.ready.wait(ctx); err != nil {
				return nil, err
			}
		}

		ev, err := s.poll(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return nil, err
			}
			s.done = true
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}

		// Queue is empty: the next round has to wait for the descriptor.
		if s.first {
			s.first = false
		} else {
			s.ready.clear()
		}
	}
}

// poll dispatches once and pops at most one event.
func (s *EventStream) poll(ctx context.Context) (Event, error) {
	sh := s.li.sh
	if err := sh.acquireContext(ctx); err != nil {
		return nil, err
	}
	defer sh.release()
	if sh.destroyed {
		return nil, ErrClosed
	}
	if err := dispatchResult(sh.native.Dispatch(sh.raw)); err != nil {
		return nil, err
	}
	return sh.nextEvent(), nil
}

// All returns an iterator over the stream. It stops after Close or once
// the stream has ended; any other error is yielded before stopping.
func (s *EventStream) All(ctx context.Context) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := s.Next(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, ErrStreamClosed) {
					return
				}
				yield(nil, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// Close stops the stream and releases its Context clone. A blocked Next
// returns ErrStreamClosed.
func (s *EventStream) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.ready.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(err, s.li.Close())
}
