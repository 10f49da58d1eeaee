/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import (
	"fmt"
	"runtime"

	"github.com/jupiterrider/ffi"
	"golang.org/x/sys/unix"
)

// symbol describes one C function to prepare.
//
// lib.Prep(name, retType, argTypes...) looks the symbol up in the loaded
// library and builds the call interface once; fn is filled in place.
type symbol struct {
	fn   *ffi.Fun
	name string
	ret  *ffi.Type
	args []*ffi.Type
}

func prepare(l ffi.Lib, symbols []symbol) error {
	for _, s := range symbols {
		fn, err := l.Prep(s.name, s.ret, s.args...)
		if err != nil {
			return fmt.Errorf("prepare %s: %w", s.name, err)
		}
		*s.fn = fn
	}
	return nil
}

// prepareOptional prepares symbols that only newer libinput releases export.
// A missing symbol leaves its descriptor zero, which callers check via Addr.
func prepareOptional(l ffi.Lib, symbols []symbol) {
	for _, s := range symbols {
		if fn, err := l.Prep(s.name, s.ret, s.args...); err == nil {
			*s.fn = fn
		}
	}
}

// Argument type shorthands.
var (
	argPtr    = []*ffi.Type{&ffi.TypePointer}
	argPtrI32 = []*ffi.Type{&ffi.TypePointer, &ffi.TypeSint32}
	argPtrU32 = []*ffi.Type{&ffi.TypePointer, &ffi.TypeUint32}
	argPtrPtr = []*ffi.Type{&ffi.TypePointer, &ffi.TypePointer}
)

// The call helpers below cover the handful of C signatures libinput uses.
// Arguments are passed by address because libffi reads them from memory.

func callVoid(fn ffi.Fun, p uintptr) {
	fn.Call(nil, &p)
}

func callPtr(fn ffi.Fun, p uintptr) uintptr {
	var ret uintptr
	fn.Call(&ret, &p)
	return ret
}

func callI32(fn ffi.Fun, p uintptr) int32 {
	var ret ffi.Arg
	fn.Call(&ret, &p)
	return int32(ret)
}

func callU32(fn ffi.Fun, p uintptr) uint32 {
	var ret ffi.Arg
	fn.Call(&ret, &p)
	return uint32(ret)
}

func callU64(fn ffi.Fun, p uintptr) uint64 {
	var ret uint64
	fn.Call(&ret, &p)
	return ret
}

func callF64(fn ffi.Fun, p uintptr) float64 {
	var ret float64
	fn.Call(&ret, &p)
	return ret
}

func callI32Arg(fn ffi.Fun, p uintptr, arg int32) int32 {
	var ret ffi.Arg
	fn.Call(&ret, &p, &arg)
	return int32(ret)
}

func callF64Arg(fn ffi.Fun, p uintptr, arg int32) float64 {
	var ret float64
	fn.Call(&ret, &p, &arg)
	return ret
}

func callF64U32(fn ffi.Fun, p uintptr, arg uint32) float64 {
	var ret float64
	fn.Call(&ret, &p, &arg)
	return ret
}

// callString invokes fn with a NUL-terminated copy of s.
// The copy is kept alive until the call returns; C must not retain it.
func callString(fn ffi.Fun, p uintptr, s string) (uintptr, error) {
	cs, err := unix.BytePtrFromString(s)
	if err != nil {
		return 0, err
	}
	var ret uintptr
	fn.Call(&ret, &p, &cs)
	runtime.KeepAlive(cs)
	return ret, nil
}

// goString copies a C string owned by libinput.
func goString(fn ffi.Fun, p uintptr) string {
	var cs *byte
	fn.Call(&cs, &p)
	if cs == nil {
		return ""
	}
	return unix.BytePtrToString(cs)
}
