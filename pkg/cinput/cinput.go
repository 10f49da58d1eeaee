/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package cinput provides low-level libffi bindings to libinput.
//
// Every exported function is a thin wrapper around one C symbol. Pointers to
// native objects are carried as uintptr-based named types and are never
// dereferenced on the Go side. The high-level API lives in pkg/libinput.
//
// # Loading
//
// The shared objects are resolved once at package init:
//
//	libinput.so.10  (override with COLPETTO_LIBINPUT_PATH)
//	libudev.so.1    (override with COLPETTO_LIBUDEV_PATH)
//	libc.so.6       (vsnprintf, for the log handler)
//
// If loading fails every constructor reports [ErrNotLoaded] wrapped with the
// underlying cause; use [Loaded] to probe availability.
package cinput

import (
	"errors"
	"fmt"
	"os"

	"github.com/jupiterrider/ffi"
)

// Opaque native pointers.
type (
	Libinput    uintptr // struct libinput*
	Event       uintptr // struct libinput_event*
	Device      uintptr // struct libinput_device*
	Seat        uintptr // struct libinput_seat*
	DeviceGroup uintptr // struct libinput_device_group*
	Udev        uintptr // struct udev*
)

// Sub-event pointers, one per event category.
type (
	DeviceNotifyEvent uintptr
	KeyboardEvent     uintptr
	PointerEvent      uintptr
	TouchEvent        uintptr
	GestureEvent      uintptr
	SwitchEvent       uintptr
	TabletPadEvent    uintptr
	TabletToolEvent   uintptr
)

// ErrNotLoaded is returned when libinput could not be loaded.
var ErrNotLoaded = errors.New("libinput shared library not loaded")

const (
	defaultLibinputPath = "libinput.so.10"
	defaultUdevPath     = "libudev.so.1"
	defaultLibcPath     = "libc.so.6"
)

var (
	lib     ffi.Lib // libinput
	libUdev ffi.Lib
	libc    ffi.Lib
	loadErr error
)

func init() {
	loadErr = load()
}

func load() error {
	var err error

	lib, err = ffi.Load(envOr("COLPETTO_LIBINPUT_PATH", defaultLibinputPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}
	libUdev, err = ffi.Load(envOr("COLPETTO_LIBUDEV_PATH", defaultUdevPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}
	libc, err = ffi.Load(defaultLibcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}

	for _, register := range []func() error{
		registerContextFunctions,
		registerEventFunctions,
		registerAccessorFunctions,
		registerDeviceFunctions,
		registerUdevFunctions,
		registerLogFunctions,
	} {
		if err := register(); err != nil {
			return fmt.Errorf("%w: %v", ErrNotLoaded, err)
		}
	}
	registerOptionalFunctions()
	return nil
}

// Loaded reports whether the native libraries were loaded successfully.
func Loaded() bool {
	return loadErr == nil
}

// LoadError returns the error recorded while loading, or nil.
func LoadError() error {
	return loadErr
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
