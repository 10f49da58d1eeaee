/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package libinput provides a Go API over the libinput input handling
// library.
//
// This package wraps the low-level cinput bindings with:
//   - reference counted handles released exactly once by Close
//   - a closed set of typed events behind the [Event] interface
//   - a pull-based [EventStream] driven by the context descriptor
//   - Go error values instead of negative errno returns
//
// # Quick Start
//
//	li, err := libinput.NewUdev(libinput.DefaultInterface())
//	if err != nil {
//	    return err
//	}
//	defer li.Close()
//
//	if err := li.AssignSeat("seat0"); err != nil {
//	    return err
//	}
//
//	stream, err := li.EventStream()
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	for ev, err := range stream.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ev.Type())
//	    ev.Close()
//	}
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│  Your Application                   │
//	├─────────────────────────────────────┤
//	│  libinput (high-level Go API)       │  <- This package
//	├─────────────────────────────────────┤
//	│  Native (System or inputtest fake)  │
//	├─────────────────────────────────────┤
//	│  cinput (low-level FFI bindings)    │
//	├─────────────────────────────────────┤
//	│  libffi (C calling convention)      │
//	├─────────────────────────────────────┤
//	│  libinput.so / libudev.so           │
//	└─────────────────────────────────────┘
//
// # Concurrency
//
// A Context and every handle derived from it share one lock. Each native
// call runs with the lock held, so handles may be used from any goroutine.
// The Interface callbacks and the Logger run inside native calls and must
// not use the Context or its handles.
//
// Handles and events must not be used once every Context clone has been
// closed; they then report zero values and Close becomes a no-op.
package libinput

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/unix"
)

type backend int

const (
	backendUdev backend = iota
	backendPath
)

// shared is the state common to every clone of a Context.
type shared struct {
	native  Native
	raw     RawContext
	backend backend
	sem     *semaphore.Weighted
	token   uintptr
	logging bool

	// destroyed is set once the native context is gone; guarded by sem.
	destroyed bool
}

func (sh *shared) acquire() {
	_ = sh.sem.Acquire(context.Background(), 1)
}

func (sh *shared) acquireContext(ctx context.Context) error {
	return sh.sem.Acquire(ctx, 1)
}

func (sh *shared) release() {
	sh.sem.Release(1)
}

// Context owns one reference to a native libinput context.
type Context struct {
	sh     *shared
	closed atomic.Bool
}

// NewUdev creates a context that discovers devices through udev. Call
// [Context.AssignSeat] to start receiving events.
func NewUdev(iface Interface, opts ...Option) (*Context, error) {
	return newContext(iface, backendUdev, opts)
}

// NewPath creates a context whose devices are added manually with
// [Context.AddDevice].
func NewPath(iface Interface, opts ...Option) (*Context, error) {
	return newContext(iface, backendPath, opts)
}

func newContext(iface Interface, b backend, opts []Option) (*Context, error) {
	if err := iface.validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.native == nil {
		n, err := System()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContext, err)
		}
		o.native = n
	}

	var onPanic func(string, any)
	if o.logger != nil {
		logger := o.logger
		onPanic = func(op string, r any) {
			logger.Log(LogError, fmt.Sprintf("%s_restricted panicked: %v", op, r))
		}
	}
	open, closeFn := iface.guard(onPanic)

	sh := &shared{
		native:  o.native,
		backend: b,
		sem:     semaphore.NewWeighted(1),
	}
	sh.token = sh.native.RegisterInterface(open, closeFn)

	switch b {
	case backendPath:
		sh.raw = sh.native.PathCreateContext(sh.token)
	default:
		sh.raw = sh.native.UdevCreateContext(sh.token)
	}
	if sh.raw == 0 {
		sh.native.UnregisterInterface(sh.token)
		return nil, ErrContext
	}

	if o.logger != nil {
		logger := o.logger
		sh.native.SetLogHandler(sh.raw, func(priority int32, message string) {
			logger.Log(LogPriority(priority), message)
		})
		sh.logging = true
	}
	sh.native.LogSetPriority(sh.raw, int32(o.priority))

	return &Context{sh: sh}, nil
}

// Clone returns a new Context sharing the same native context. The clone
// holds its own reference and must be closed separately.
func (c *Context) Clone() (*Context, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	c.sh.acquire()
	defer c.sh.release()
	if c.sh.destroyed {
		return nil, ErrClosed
	}
	c.sh.native.Ref(c.sh.raw)
	return &Context{sh: c.sh}, nil
}

// Close drops this Context's reference. When it was the last one the native
// context is destroyed and its callbacks are released. Close is idempotent.
func (c *Context) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.sh.acquire()
	defer c.sh.release()
	if c.sh.destroyed {
		return nil
	}
	if c.sh.native.Unref(c.sh.raw) == 0 {
		c.sh.destroyed = true
		c.sh.native.UnregisterInterface(c.sh.token)
		if c.sh.logging {
			c.sh.native.ClearLogHandler(c.sh.raw)
		}
	}
	return nil
}

// call runs fn with the lock held, failing if the Context is closed.
func (c *Context) call(fn func(n Native, raw RawContext) error) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.sh.acquire()
	defer c.sh.release()
	if c.sh.destroyed {
		return ErrClosed
	}
	return fn(c.sh.native, c.sh.raw)
}

// Fd returns the descriptor that becomes readable when events are pending.
// It is owned by libinput.
func (c *Context) Fd() (int, error) {
	var fd int
	err := c.call(func(n Native, raw RawContext) error {
		fd = int(n.GetFd(raw))
		return nil
	})
	return fd, err
}

// Dispatch reads pending input and queues the resulting events. A
// would-block result is not an error.
func (c *Context) Dispatch() error {
	return c.call(func(n Native, raw RawContext) error {
		return dispatchResult(n.Dispatch(raw))
	})
}

func dispatchResult(ret int32) error {
	if ret == -int32(unix.EAGAIN) {
		return nil
	}
	return errnoResult("dispatch", ret)
}

// GetEvent pops the next queued event, or returns nil when the queue is
// empty. The caller must Close the event.
func (c *Context) GetEvent() Event {
	var ev Event
	_ = c.call(func(n Native, raw RawContext) error {
		ev = c.sh.nextEvent()
		return nil
	})
	return ev
}

// nextEvent pops one event; the lock must be held.
func (sh *shared) nextEvent() Event {
	raw := sh.native.GetEvent(sh.raw)
	if raw == 0 {
		return nil
	}
	return wrapEvent(sh, raw)
}

// NextEventType peeks at the type of the next queued event without
// removing it. It returns EventNone when the queue is empty.
func (c *Context) NextEventType() EventType {
	t := EventNone
	_ = c.call(func(n Native, raw RawContext) error {
		t = EventType(n.NextEventType(raw))
		return nil
	})
	return t
}

// AssignSeat binds a udev context to the named seat and enumerates its
// devices. For each device the Interface's Open is called.
func (c *Context) AssignSeat(seat string) error {
	return c.call(func(n Native, raw RawContext) error {
		if c.sh.backend != backendUdev {
			return fmt.Errorf("%w %q: not a udev context", ErrSeat, seat)
		}
		if n.UdevAssignSeat(raw, seat) != 0 {
			return fmt.Errorf("%w %q", ErrSeat, seat)
		}
		return nil
	})
}

// Suspend closes every device of the context until Resume.
func (c *Context) Suspend() {
	_ = c.call(func(n Native, raw RawContext) error {
		n.Suspend(raw)
		return nil
	})
}

// Resume re-opens the devices of a suspended context.
func (c *Context) Resume() error {
	return c.call(func(n Native, raw RawContext) error {
		if ret := n.Resume(raw); ret != 0 {
			return ErrResume
		}
		return nil
	})
}

// AddDevice adds the device node at path to a path context. The returned
// Device holds its own reference.
func (c *Context) AddDevice(path string) (*Device, error) {
	var d *Device
	err := c.call(func(n Native, raw RawContext) error {
		if c.sh.backend != backendPath {
			return fmt.Errorf("%w %s: not a path context", ErrAddDevice, path)
		}
		rd := n.PathAddDevice(raw, path)
		if rd == 0 {
			return fmt.Errorf("%w %s", ErrAddDevice, path)
		}
		d = newDevice(c.sh, rd)
		return nil
	})
	return d, err
}

// RemoveDevice removes a device added with AddDevice. The handle stays
// valid until closed.
func (c *Context) RemoveDevice(d *Device) error {
	if d == nil || d.sh != c.sh {
		return fmt.Errorf("%w: device does not belong to this context", ErrAddDevice)
	}
	if d.closed.Load() {
		return ErrClosed
	}
	return c.call(func(n Native, raw RawContext) error {
		if c.sh.backend != backendPath {
			return fmt.Errorf("%w: not a path context", ErrAddDevice)
		}
		n.PathRemoveDevice(d.raw)
		return nil
	})
}
