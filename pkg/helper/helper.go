/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package helper runs a libinput context on its own goroutine.
//
// The goroutine is locked to an OS thread and owns the Context and its
// EventStream. Device open and close requests are forwarded to a separate
// worker goroutine, so the callbacks may take as long as a session manager
// needs without touching the Context. Events are reduced to owned [Event]
// values and delivered through an unbounded buffer.
//
//	h, err := helper.Start(helper.Config{Open: open, Close: closeFn})
//	if err != nil {
//	    return err
//	}
//	defer h.Shutdown()
//	for ev := range h.Events() {
//	    fmt.Printf("%s from %s\n", ev.Name, ev.DeviceName)
//	}
//	return h.Err()
package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"syscall"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

// ErrShutdown is returned by operations on a handle that has stopped.
var ErrShutdown = errors.New("helper: handle is shut down")

// Config configures Start.
type Config struct {
	// Open and Close default to libinput.DefaultInterface.
	Open  libinput.OpenFunc
	Close libinput.CloseFunc
	// Seat defaults to seat0.
	Seat   string
	Logger libinput.Logger
	// Native defaults to libinput.System.
	Native libinput.Native
}

// Handle controls a running libinput goroutine.
type Handle struct {
	li     *libinput.Context
	events *buffer
	w      *worker

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	err    error // set before done is closed
}

// Start creates a udev context on cfg.Seat and starts delivering events.
// Setup errors are returned synchronously.
func Start(cfg Config) (*Handle, error) {
	if cfg.Open == nil || cfg.Close == nil {
		def := libinput.DefaultInterface()
		if cfg.Open == nil {
			cfg.Open = def.Open
		}
		if cfg.Close == nil {
			cfg.Close = def.Close
		}
	}
	if cfg.Seat == "" {
		cfg.Seat = "seat0"
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		events: newBuffer(),
		w:      startWorker(cfg.Open, cfg.Close),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	ready := make(chan error, 1)
	go h.run(cfg, ready)
	if err := <-ready; err != nil {
		cancel()
		<-h.done
		return nil, err
	}
	return h, nil
}

func (h *Handle) run(cfg Config, ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)
	defer h.events.close()
	defer h.w.stop()

	var opts []libinput.Option
	if cfg.Native != nil {
		opts = append(opts, libinput.WithNative(cfg.Native))
	}
	if cfg.Logger != nil {
		opts = append(opts, libinput.WithLogger(cfg.Logger), libinput.WithLogPriority(libinput.LogInfo))
	}

	li, err := libinput.NewUdev(h.w.iface(), opts...)
	if err != nil {
		ready <- err
		return
	}
	defer li.Close()

	if err := li.AssignSeat(cfg.Seat); err != nil {
		ready <- err
		return
	}
	stream, err := li.EventStream()
	if err != nil {
		ready <- err
		return
	}
	defer stream.Close()

	h.li = li
	ready <- nil

	for {
		ev, err := stream.Next(h.ctx)
		if err != nil {
			if h.ctx.Err() == nil && !errors.Is(err, io.EOF) {
				h.err = err
			}
			return
		}
		h.events.push(summarize(ev))
		ev.Close()
	}
}

// Events returns the event channel. After a stream failure it is closed
// once every buffered event has been received. Shutdown drops undelivered
// events and closes it, so callers need not drain it.
func (h *Handle) Events() <-chan Event {
	return h.events.out
}

// Suspend closes every device until Resume.
func (h *Handle) Suspend() {
	h.li.Suspend()
}

// Resume re-opens the suspended devices. A failure leaves the handle
// running.
func (h *Handle) Resume(ctx context.Context) error {
	select {
	case <-h.done:
		return ErrShutdown
	default:
	}
	errc := make(chan error, 1)
	go func() {
		errc <- h.li.Resume()
	}()
	select {
	case err := <-errc:
		if errors.Is(err, libinput.ErrClosed) {
			return ErrShutdown
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the goroutine and releases the context. It does not wait;
// use Done for that.
func (h *Handle) Shutdown() {
	h.cancel()
	h.events.discard()
}

// Done is closed once the goroutine has released the context.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the error that stopped the handle, or nil after Shutdown. It
// is valid once Done is closed.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

type openRequest struct {
	path  string
	flags int
	reply chan openReply
}

type openReply struct {
	fd  int
	err error
}

// worker runs the caller's open and close functions.
type worker struct {
	opens  chan openRequest
	closes chan int
	quit   chan struct{}
	exited chan struct{}
}

func startWorker(open libinput.OpenFunc, closeFn libinput.CloseFunc) *worker {
	w := &worker{
		opens:  make(chan openRequest),
		closes: make(chan int),
		quit:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go w.loop(open, closeFn)
	return w
}

func (w *worker) loop(open libinput.OpenFunc, closeFn libinput.CloseFunc) {
	defer close(w.exited)
	for {
		select {
		case r := <-w.opens:
			fd, err := callOpen(open, r.path, r.flags)
			r.reply <- openReply{fd, err}
		case fd := <-w.closes:
			callClose(closeFn, fd)
		case <-w.quit:
			return
		}
	}
}

func callOpen(open libinput.OpenFunc, path string, flags int) (fd int, err error) {
	defer func() {
		if r := recover(); r != nil {
			fd, err = -1, fmt.Errorf("open %s panicked: %v: %w", path, r, syscall.EIO)
		}
	}()
	return open(path, flags)
}

func callClose(closeFn libinput.CloseFunc, fd int) {
	defer func() { _ = recover() }()
	closeFn(fd)
}

// iface forwards the restricted interface to the worker goroutine.
func (w *worker) iface() libinput.Interface {
	return libinput.Interface{
		Open: func(path string, flags int) (int, error) {
			r := openRequest{path: path, flags: flags, reply: make(chan openReply, 1)}
			select {
			case w.opens <- r:
			case <-w.exited:
				return -1, syscall.ENODEV
			}
			rep := <-r.reply
			return rep.fd, rep.err
		},
		Close: func(fd int) {
			select {
			case w.closes <- fd:
			case <-w.exited:
			}
		},
	}
}

func (w *worker) stop() {
	close(w.quit)
	<-w.exited
}
