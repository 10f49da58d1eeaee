/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package helper

import (
	"sync"

	"github.com/eapache/queue"
)

// buffer is an unbounded FIFO between the libinput goroutine and the
// consumer. push never blocks; out is closed once the buffer is closed and
// drained, or right away after discard.
type buffer struct {
	mu     sync.Mutex
	q      *queue.Queue // of Event
	closed bool

	wake     chan struct{}
	out      chan Event
	quit     chan struct{}
	quitOnce sync.Once
	stopped  chan struct{}
}

func newBuffer() *buffer {
	b := &buffer{
		q:       queue.New(),
		wake:    make(chan struct{}, 1),
		out:     make(chan Event),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go b.pump()
	return b
}

func (b *buffer) push(ev Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.q.Add(ev)
	b.mu.Unlock()
	b.signal()
}

func (b *buffer) close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.signal()
}

// discard drops whatever the consumer has not received and stops pump even
// if nobody reads out any more.
func (b *buffer) discard() {
	b.mu.Lock()
	b.closed = true
	for b.q.Length() > 0 {
		b.q.Remove()
	}
	b.mu.Unlock()
	b.quitOnce.Do(func() { close(b.quit) })
}

func (b *buffer) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *buffer) pump() {
	defer close(b.stopped)
	defer close(b.out)
	for {
		b.mu.Lock()
		if b.q.Length() == 0 {
			closed := b.closed
			b.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-b.wake:
			case <-b.quit:
				return
			}
			continue
		}
		ev := b.q.Remove().(Event)
		b.mu.Unlock()
		select {
		case b.out <- ev:
		case <-b.quit:
			return
		}
	}
}
