/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import (
	"bytes"
	"sync"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// Log priorities (enum libinput_log_priority).
const (
	LogPriorityDebug int32 = 10
	LogPriorityInfo  int32 = 20
	LogPriorityError int32 = 30
)

// logBufferSize bounds a single formatted message; longer ones are truncated.
const logBufferSize = 4096

// LogHandler receives one formatted libinput log message.
type LogHandler func(priority int32, message string)

var (
	fnLogSetPriority ffi.Fun
	fnLogGetPriority ffi.Fun
	fnLogSetHandler  ffi.Fun
	fnVsnprintf      ffi.Fun
)

func registerLogFunctions() error {
	if err := prepare(lib, []symbol{
		// void libinput_log_set_priority(struct libinput*, enum libinput_log_priority)
		{&fnLogSetPriority, "libinput_log_set_priority", &ffi.TypeVoid, argPtrI32},
		// enum libinput_log_priority libinput_log_get_priority(const struct libinput*)
		{&fnLogGetPriority, "libinput_log_get_priority", &ffi.TypeSint32, argPtr},
		// void libinput_log_set_handler(struct libinput*, libinput_log_handler)
		{&fnLogSetHandler, "libinput_log_set_handler", &ffi.TypeVoid, argPtrPtr},
	}); err != nil {
		return err
	}
	// int vsnprintf(char* str, size_t size, const char* format, va_list ap)
	// va_list is passed by reference on every ABI libinput supports.
	return prepare(libc, []symbol{
		{&fnVsnprintf, "vsnprintf", &ffi.TypeSint32,
			[]*ffi.Type{&ffi.TypePointer, &ffi.TypeUint64, &ffi.TypePointer, &ffi.TypePointer}},
	})
}

var (
	logRegistry sync.Map // map[Libinput]LogHandler

	logInit        sync.Once
	logClosure     *ffi.Closure
	logClosureCode unsafe.Pointer
	logCif         ffi.Cif
)

func initLogClosure() {
	logInit.Do(func() {
		logClosure = ffi.ClosureAlloc(unsafe.Sizeof(ffi.Closure{}), &logClosureCode)
		// void handler(struct libinput*, enum libinput_log_priority, const char* format, va_list args)
		if status := ffi.PrepCif(&logCif, ffi.DefaultAbi, 4,
			&ffi.TypeVoid,
			&ffi.TypePointer,
			&ffi.TypeSint32,
			&ffi.TypePointer,
			&ffi.TypePointer,
		); status != ffi.OK {
			panic("failed to prepare log handler CIF")
		}
		if status := ffi.PrepClosureLoc(logClosure, &logCif, ffi.NewCallback(logTrampoline), nil, logClosureCode); status != ffi.OK {
			panic("failed to prepare log handler closure")
		}
	})
}

func logTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	arguments := unsafe.Slice(args, 4)

	li := *(*Libinput)(arguments[0])
	priority := *(*int32)(arguments[1])
	format := *(*unsafe.Pointer)(arguments[2])
	vaList := *(*unsafe.Pointer)(arguments[3])

	cb, ok := logRegistry.Load(li)
	if !ok || format == nil {
		return 0
	}
	message := formatMessage(format, vaList)
	func() {
		defer func() { _ = recover() }()
		cb.(LogHandler)(priority, message)
	}()
	return 0
}

// formatMessage consumes vaList with a single vsnprintf call.
func formatMessage(format, vaList unsafe.Pointer) string {
	var buf [logBufferSize]byte
	ptr := unsafe.Pointer(&buf[0])
	size := uint64(len(buf))
	var n ffi.Arg
	fnVsnprintf.Call(&n, &ptr, &size, &format, &vaList)
	if int32(n) < 0 {
		return ""
	}
	msg := buf[:]
	if i := bytes.IndexByte(msg, 0); i >= 0 {
		msg = msg[:i]
	}
	return string(bytes.TrimRight(msg, "\n"))
}

// SetLogHandler routes log messages of li to handler. A nil handler
// silences the context.
func SetLogHandler(li Libinput, handler LogHandler) {
	if handler == nil {
		ClearLogHandler(li)
		var none uintptr
		p := uintptr(li)
		fnLogSetHandler.Call(nil, &p, &none)
		return
	}
	initLogClosure()
	logRegistry.Store(li, handler)
	p := uintptr(li)
	code := uintptr(logClosureCode)
	fnLogSetHandler.Call(nil, &p, &code)
}

// ClearLogHandler forgets the handler registered for li. It is safe to call
// once li has been destroyed.
func ClearLogHandler(li Libinput) {
	logRegistry.Delete(li)
}

// LogSetPriority sets the minimum priority of messages passed to the handler.
func LogSetPriority(li Libinput, priority int32) {
	p := uintptr(li)
	fnLogSetPriority.Call(nil, &p, &priority)
}

// LogGetPriority returns the current log priority of li.
func LogGetPriority(li Libinput) int32 {
	return callI32(fnLogGetPriority, uintptr(li))
}
