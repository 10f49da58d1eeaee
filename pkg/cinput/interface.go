/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// This file implements struct libinput_interface, the pair of callbacks
// libinput uses to open and close device nodes.
//
// # Layout
//
//	struct libinput_interface {
//	        int  (*open_restricted)(const char *path, int flags, void *user_data);
//	        void (*close_restricted)(int fd, void *user_data);
//	};
//
// One closure is allocated per callback for the lifetime of the program. The
// struct itself lives in Go memory that is never moved (a package global), so
// its address can be handed to every context libinput creates.
//
// # Dispatch
//
// The user_data pointer given at context creation is an ID returned by
// RegisterInterface. The trampolines use it to look up the Go callbacks in
// interfaceRegistry. An ID that is not registered makes open fail with
// -ENODEV and close a no-op.

package cinput

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"golang.org/x/sys/unix"
)

// OpenCallback opens path with the given open(2) flags.
// It returns the file descriptor, or a negative errno on failure.
type OpenCallback func(path string, flags int32) int32

// CloseCallback closes a descriptor previously returned by an OpenCallback.
type CloseCallback func(fd int32)

type restrictedCallbacks struct {
	open  OpenCallback
	close CloseCallback
}

var (
	interfaceRegistry sync.Map // map[uintptr]restrictedCallbacks
	interfaceCounter  uint64
)

// restrictedInterface mirrors struct libinput_interface.
var restrictedInterface struct {
	openRestricted  uintptr
	closeRestricted uintptr
}

var (
	interfaceInit sync.Once

	openClosure     *ffi.Closure
	openClosureCode unsafe.Pointer
	openCif         ffi.Cif

	closeClosure     *ffi.Closure
	closeClosureCode unsafe.Pointer
	closeCif         ffi.Cif
)

func initInterfaceClosures() {
	interfaceInit.Do(func() {
		openClosure = ffi.ClosureAlloc(unsafe.Sizeof(ffi.Closure{}), &openClosureCode)
		// int open_restricted(const char* path, int flags, void* user_data)
		if status := ffi.PrepCif(&openCif, ffi.DefaultAbi, 3,
			&ffi.TypeSint32,
			&ffi.TypePointer,
			&ffi.TypeSint32,
			&ffi.TypePointer,
		); status != ffi.OK {
			panic("failed to prepare open_restricted CIF")
		}
		if status := ffi.PrepClosureLoc(openClosure, &openCif, ffi.NewCallback(openTrampoline), nil, openClosureCode); status != ffi.OK {
			panic("failed to prepare open_restricted closure")
		}

		closeClosure = ffi.ClosureAlloc(unsafe.Sizeof(ffi.Closure{}), &closeClosureCode)
		// void close_restricted(int fd, void* user_data)
		if status := ffi.PrepCif(&closeCif, ffi.DefaultAbi, 2,
			&ffi.TypeVoid,
			&ffi.TypeSint32,
			&ffi.TypePointer,
		); status != ffi.OK {
			panic("failed to prepare close_restricted CIF")
		}
		if status := ffi.PrepClosureLoc(closeClosure, &closeCif, ffi.NewCallback(closeTrampoline), nil, closeClosureCode); status != ffi.OK {
			panic("failed to prepare close_restricted closure")
		}

		restrictedInterface.openRestricted = uintptr(openClosureCode)
		restrictedInterface.closeRestricted = uintptr(closeClosureCode)
	})
}

func interfacePointer() uintptr {
	return uintptr(unsafe.Pointer(&restrictedInterface))
}

// openTrampoline runs on the thread that called into libinput, which always
// holds the owning context's lock. It must not block on that lock.
func openTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	arguments := unsafe.Slice(args, 3)

	path := *(**byte)(arguments[0])
	flags := *(*int32)(arguments[1])
	id := *(*uintptr)(arguments[2])

	result := -int32(unix.ENODEV)
	if cb, ok := interfaceRegistry.Load(id); ok && path != nil {
		result = invokeOpen(cb.(restrictedCallbacks).open, unix.BytePtrToString(path), flags)
	}

	// Integral returns narrower than a register are widened to ffi_arg.
	*(*ffi.Arg)(ret) = ffi.Arg(int64(result))
	return 0
}

func closeTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	arguments := unsafe.Slice(args, 2)

	fd := *(*int32)(arguments[0])
	id := *(*uintptr)(arguments[1])

	if cb, ok := interfaceRegistry.Load(id); ok {
		invokeClose(cb.(restrictedCallbacks).close, fd)
	}
	return 0
}

// A panic must never unwind through libffi frames.
func invokeOpen(open OpenCallback, path string, flags int32) (fd int32) {
	defer func() {
		if recover() != nil {
			fd = -int32(unix.EIO)
		}
	}()
	return open(path, flags)
}

func invokeClose(close CloseCallback, fd int32) {
	defer func() { _ = recover() }()
	close(fd)
}

// RegisterInterface registers a pair of restricted-interface callbacks and
// returns the ID to pass as user data to UdevCreateContext or
// PathCreateContext.
func RegisterInterface(open OpenCallback, close CloseCallback) uintptr {
	id := uintptr(atomic.AddUint64(&interfaceCounter, 1))
	interfaceRegistry.Store(id, restrictedCallbacks{open: open, close: close})
	return id
}

// UnregisterInterface removes the callbacks registered under id.
// Call it only after the context using id has been destroyed.
func UnregisterInterface(id uintptr) {
	interfaceRegistry.Delete(id)
}
