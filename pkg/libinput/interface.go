/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// OpenFunc opens the device node at path with the given open(2) flags.
//
// It runs on the goroutine that triggered the native call (Dispatch, Resume,
// AssignSeat, AddDevice) while the context lock is held, so it must not call
// back into the Context. Errors wrapping a syscall.Errno are reported to
// libinput as that errno; any other error becomes EIO.
type OpenFunc func(path string, flags int) (fd int, err error)

// CloseFunc closes a descriptor returned by the matching OpenFunc.
type CloseFunc func(fd int)

// Interface is the caller-provided capability to open and close devices.
// Callers running without privileges typically forward these to a session
// manager such as logind or seatd.
type Interface struct {
	Open  OpenFunc
	Close CloseFunc
}

func (i Interface) validate() error {
	if i.Open == nil || i.Close == nil {
		return ErrInterface
	}
	return nil
}

// DefaultInterface opens device nodes directly. It requires read access to
// /dev/input, usually granted by root or the input group.
func DefaultInterface() Interface {
	return Interface{
		Open: func(path string, flags int) (int, error) {
			return unix.Open(path, flags|unix.O_CLOEXEC, 0)
		},
		Close: func(fd int) {
			_ = unix.Close(fd)
		},
	}
}

// openResult maps the outcome of an OpenFunc onto libinput's convention of
// a descriptor or a negative errno.
func openResult(fd int, err error) int32 {
	if err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) && errno != 0 {
			return -int32(errno)
		}
		return -int32(unix.EIO)
	}
	if fd < 0 {
		return -int32(unix.EINVAL)
	}
	return int32(fd)
}

// guard adapts an Interface to the callbacks handed to the native engine.
// Panics are contained here so they never cross the native boundary.
func (i Interface) guard(onPanic func(string, any)) (func(string, int32) int32, func(int32)) {
	open := func(path string, flags int32) (ret int32) {
		defer func() {
			if r := recover(); r != nil {
				if onPanic != nil {
					onPanic("open", r)
				}
				ret = -int32(unix.EIO)
			}
		}()
		return openResult(i.Open(path, int(flags)))
	}
	closeFn := func(fd int32) {
		defer func() {
			if r := recover(); r != nil && onPanic != nil {
				onPanic("close", r)
			}
		}()
		i.Close(int(fd))
	}
	return open, closeFn
}
