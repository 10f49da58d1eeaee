//go:build linux

/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// readiness waits for a descriptor to become readable.
//
// The last observed readiness is cached: wait returns at once while it is
// set and clear resets it. An eventfd registered next to the descriptor
// lets Close and context cancellation interrupt a blocked wait.
type readiness struct {
	mu    sync.Mutex // held by the waiter
	epfd  int
	fd    int // not owned
	ready atomic.Bool

	closed atomic.Bool
	wakeMu sync.Mutex
	wakefd int
}

func newReadiness(fd int) (*readiness, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}
	wakefd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("eventfd: %w", err)
	}

	for _, target := range []int{fd, wakefd} {
		ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(target)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, target, &ev); err != nil {
			unix.Close(wakefd)
			unix.Close(epfd)
			return nil, fmt.Errorf("epoll_ctl_add fd=%d: %w", target, err)
		}
	}

	return &readiness{epfd: epfd, fd: fd, wakefd: wakefd}, nil
}

// wait blocks until the descriptor is readable, ctx is done or the tracker
// is closed.
func (r *readiness) wait(ctx context.Context) error {
	if r.closed.Load() {
		return ErrStreamClosed
	}
	if r.ready.Load() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stop := context.AfterFunc(ctx, r.wake)
	defer stop()

	var events [2]unix.EpollEvent
	for {
		if r.closed.Load() {
			return ErrStreamClosed
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := unix.EpollWait(r.epfd, events[:], -1)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("epoll_wait: %w", err)
		}

		readable := false
		for _, ev := range events[:n] {
			switch int(ev.Fd) {
			case r.fd:
				readable = true
			default:
				r.drainWake()
			}
		}
		if readable && !r.closed.Load() {
			r.ready.Store(true)
			return nil
		}
	}
}

func (r *readiness) clear() {
	r.ready.Store(false)
}

func (r *readiness) wake() {
	r.wakeMu.Lock()
	defer r.wakeMu.Unlock()
	if r.wakefd < 0 {
		return
	}
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	_, _ = unix.Write(r.wakefd, buf[:])
}

func (r *readiness) drainWake() {
	r.wakeMu.Lock()
	defer r.wakeMu.Unlock()
	if r.wakefd < 0 {
		return
	}
	var buf [8]byte
	_, _ = unix.Read(r.wakefd, buf[:])
}

// Close deregisters the descriptor and wakes a blocked waiter.
func (r *readiness) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.wake()

	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, r.fd, nil); err != nil {
		errs = append(errs, fmt.Errorf("epoll_ctl_del fd=%d: %w", r.fd, err))
	}
	r.wakeMu.Lock()
	errs = append(errs, unix.Close(r.wakefd))
	r.wakefd = -1
	r.wakeMu.Unlock()
	errs = append(errs, unix.Close(r.epfd))
	return errors.Join(errs...)
}
