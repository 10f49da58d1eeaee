/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrContext is returned when libinput fails to create a context.
	ErrContext = errors.New("libinput: failed to create context")
	// ErrSeat is returned when a seat cannot be assigned.
	ErrSeat = errors.New("libinput: failed to assign seat")
	// ErrResume is returned when a suspended context cannot be resumed.
	ErrResume = errors.New("libinput: failed to resume context")
	// ErrAddDevice is returned when the path backend rejects a device.
	ErrAddDevice = errors.New("libinput: failed to add device")
	// ErrInterface is returned for an Interface missing a callback.
	ErrInterface = errors.New("libinput: interface requires Open and Close")
	// ErrClosed is returned by operations on a closed handle.
	ErrClosed = errors.New("libinput: use of closed handle")
	// ErrStreamClosed is returned by EventStream.Next after Close.
	ErrStreamClosed = errors.New("libinput: event stream closed")
)

// IOError reports a negative errno returned by a native call.
type IOError struct {
	Op    string
	Errno syscall.Errno
}

func (e *IOError) Error() string {
	return fmt.Sprintf("libinput: %s: %v", e.Op, e.Errno)
}

func (e *IOError) Unwrap() error {
	return e.Errno
}

// errnoResult converts a libinput "0 or -errno" return into an error.
func errnoResult(op string, ret int32) error {
	if ret >= 0 {
		return nil
	}
	return &IOError{Op: op, Errno: syscall.Errno(-ret)}
}
