/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput_test

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/libinput/inputtest"
)

// recorder is an Interface that hands out fake descriptors.
type recorder struct {
	mu     sync.Mutex
	next   int
	opened []string
	closed []int
	fail   error
}

func (r *recorder) iface() libinput.Interface {
	return libinput.Interface{
		Open: func(path string, flags int) (int, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.fail != nil {
				return -1, r.fail
			}
			r.next++
			r.opened = append(r.opened, path)
			return 100 + r.next, nil
		},
		Close: func(fd int) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.closed = append(r.closed, fd)
		},
	}
}

func (r *recorder) closedFds() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.closed...)
}

func keyboard(sysname string) inputtest.DeviceSpec {
	return inputtest.DeviceSpec{
		Name:         "Test Keyboard " + sysname,
		Sysname:      sysname,
		Vendor:       0x046d,
		Product:      0xc31c,
		Capabilities: []libinput.Capability{libinput.CapabilityKeyboard},
	}
}

func newUdev(t *testing.T, eng *inputtest.Engine, iface libinput.Interface, opts ...libinput.Option) *libinput.Context {
	t.Helper()
	li, err := libinput.NewUdev(iface, append([]libinput.Option{libinput.WithNative(eng)}, opts...)...)
	require.NoError(t, err)
	return li
}

func assertClean(t *testing.T, eng *inputtest.Engine) {
	t.Helper()
	assert.Empty(t, eng.Violations())
}

func TestContextLastCloseDestroys(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li := newUdev(t, eng, rec.iface())

	clone, err := li.Clone()
	require.NoError(t, err)
	assert.Equal(t, 2, eng.ContextRefs())

	require.NoError(t, li.Close())
	assert.False(t, eng.ContextDestroyed())
	assert.Equal(t, 1, eng.Interfaces(), "interface must outlive the first close")

	require.NoError(t, clone.Close())
	assert.True(t, eng.ContextDestroyed())
	assert.Equal(t, 0, eng.Interfaces())

	// Idempotent.
	require.NoError(t, li.Close())
	require.NoError(t, clone.Close())
	assertClean(t, eng)
}

func TestContextCloneCloseIsNeutral(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()

	before := eng.ContextRefs()
	for range 3 {
		clone, err := li.Clone()
		require.NoError(t, err)
		require.NoError(t, clone.Close())
	}
	assert.Equal(t, before, eng.ContextRefs())
	assertClean(t, eng)
}

func TestContextUseAfterClose(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	require.NoError(t, li.Close())

	_, err := li.Clone()
	assert.ErrorIs(t, err, libinput.ErrClosed)
	assert.ErrorIs(t, li.Dispatch(), libinput.ErrClosed)
	assert.ErrorIs(t, li.AssignSeat("seat0"), libinput.ErrClosed)
	_, err = li.Fd()
	assert.ErrorIs(t, err, libinput.ErrClosed)
	_, err = li.EventStream()
	assert.ErrorIs(t, err, libinput.ErrClosed)
	assert.Nil(t, li.GetEvent())
	assert.Equal(t, libinput.EventNone, li.NextEventType())
	assertClean(t, eng)
}

func TestConstructionErrors(t *testing.T) {
	eng := inputtest.New()

	_, err := libinput.NewUdev(libinput.Interface{}, libinput.WithNative(eng))
	assert.ErrorIs(t, err, libinput.ErrInterface)
	_, err = libinput.NewPath(libinput.Interface{Open: func(string, int) (int, error) { return 0, nil }}, libinput.WithNative(eng))
	assert.ErrorIs(t, err, libinput.ErrInterface)
	assert.Equal(t, 0, eng.Interfaces())

	eng.FailCreate()
	var rec recorder
	_, err = libinput.NewUdev(rec.iface(), libinput.WithNative(eng))
	assert.ErrorIs(t, err, libinput.ErrContext)
	assert.Equal(t, 0, eng.Interfaces(), "failed creation must release the interface")
	assertClean(t, eng)
}

func TestAssignSeat(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))
	eng.AddDevice(keyboard("event1"))
	eng.AddDevice(inputtest.DeviceSpec{Name: "Elsewhere", Sysname: "event2", Seat: "seat1"})

	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()

	require.NoError(t, li.AssignSeat("seat0"))
	assert.Equal(t, []string{"/dev/input/event0", "/dev/input/event1"}, rec.opened)

	// A udev context is bound to one seat.
	assert.ErrorIs(t, li.AssignSeat("seat1"), libinput.ErrSeat)
	assertClean(t, eng)
}

func TestAssignSeatFailure(t *testing.T) {
	eng := inputtest.New()
	eng.FailSeat()
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()

	err := li.AssignSeat("seat0")
	require.ErrorIs(t, err, libinput.ErrSeat)
	assert.Contains(t, err.Error(), `"seat0"`)
}

func TestAssignSeatOnPathContext(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li, err := libinput.NewPath(rec.iface(), libinput.WithNative(eng))
	require.NoError(t, err)
	defer li.Close()

	assert.ErrorIs(t, li.AssignSeat("seat0"), libinput.ErrSeat)
}

func TestDispatchErrors(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()

	require.NoError(t, li.Dispatch())

	eng.FailNextDispatch(syscall.EAGAIN)
	assert.NoError(t, li.Dispatch(), "EAGAIN is not an error")

	eng.FailNextDispatch(syscall.ENODEV)
	err := li.Dispatch()
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ENODEV)
	var ioErr *libinput.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "dispatch", ioErr.Op)
	assert.Equal(t, syscall.ENODEV, ioErr.Errno)
}

func TestSuspendResume(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()
	require.NoError(t, li.AssignSeat("seat0"))

	li.Suspend()
	assert.Equal(t, []int{101}, rec.closedFds())

	require.NoError(t, li.Resume())
	assert.Equal(t, []string{"/dev/input/event0", "/dev/input/event0"}, rec.opened)

	eng.FailResume()
	li.Suspend()
	assert.ErrorIs(t, li.Resume(), libinput.ErrResume)
	assertClean(t, eng)
}

func TestPathBackend(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event4"))
	var rec recorder
	li, err := libinput.NewPath(rec.iface(), libinput.WithNative(eng))
	require.NoError(t, err)
	defer li.Close()

	_, err = li.AddDevice("/dev/input/event9")
	assert.ErrorIs(t, err, libinput.ErrAddDevice)

	d, err := li.AddDevice("/dev/input/event4")
	require.NoError(t, err)
	assert.Equal(t, "event4", d.Sysname())
	assert.Equal(t, 1, eng.DeviceRefs("event4"))

	ev := li.GetEvent()
	require.IsType(t, &libinput.DeviceAdded{}, ev)
	ev.Close()

	require.NoError(t, li.RemoveDevice(d))
	assert.Equal(t, []int{101}, rec.closedFds())

	ev = li.GetEvent()
	require.IsType(t, &libinput.DeviceRemoved{}, ev)
	dev := ev.Device()
	require.NotNil(t, dev)
	assert.True(t, dev.Equal(d))
	dev.Close()
	ev.Close()

	// The handle outlives the removal.
	assert.Equal(t, "Test Keyboard event4", d.Name())
	d.Close()
	assert.Equal(t, 0, eng.DeviceRefs("event4"))
	assertClean(t, eng)
}

func TestAddDeviceOnUdevContext(t *testing.T) {
	eng := inputtest.New()
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()

	_, err := li.AddDevice("/dev/input/event0")
	assert.ErrorIs(t, err, libinput.ErrAddDevice)
}

func TestOpenFailureIsReported(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))

	var (
		mu   sync.Mutex
		logs []string
	)
	logger := libinput.LoggerFunc(func(p libinput.LogPriority, msg string) {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, fmt.Sprintf("%s: %s", p, msg))
	})

	rec := recorder{fail: fmt.Errorf("seat revoked: %w", syscall.EACCES)}
	li := newUdev(t, eng, rec.iface(), libinput.WithLogger(logger))
	defer li.Close()

	require.NoError(t, li.AssignSeat("seat0"))
	assert.Nil(t, li.GetEvent(), "no device may be added when open fails")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "error: opening input device '/dev/input/event0' failed")
	assert.Contains(t, logs[0], syscall.EACCES.Error())
}

func TestOpenPanicIsContained(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))

	var logs []string
	logger := libinput.LoggerFunc(func(_ libinput.LogPriority, msg string) {
		logs = append(logs, msg)
	})
	iface := libinput.Interface{
		Open:  func(string, int) (int, error) { panic("boom") },
		Close: func(int) {},
	}
	li := newUdev(t, eng, iface, libinput.WithLogger(logger))
	defer li.Close()

	require.NotPanics(t, func() {
		require.NoError(t, li.AssignSeat("seat0"))
	})
	require.NotEmpty(t, logs)
	assert.Equal(t, "open_restricted panicked: boom", logs[0])
	assert.Contains(t, logs[1], "failed (input/output error)")
}

func TestLoggerForwarding(t *testing.T) {
	eng := inputtest.New()
	var got []string
	logger := libinput.LoggerFunc(func(p libinput.LogPriority, msg string) {
		got = append(got, p.String()+" "+msg)
	})

	var rec recorder
	li := newUdev(t, eng, rec.iface(), libinput.WithLogger(logger), libinput.WithLogPriority(libinput.LogInfo))
	assert.Equal(t, 1, eng.LogHandlers())

	eng.Log(libinput.LogDebug, "filtered")
	eng.Log(libinput.LogInfo, "hello")
	eng.Log(libinput.LogError, "oops")
	assert.Equal(t, []string{"info hello", "error oops"}, got)

	require.NoError(t, li.Close())
	assert.Equal(t, 0, eng.LogHandlers())
	eng.Log(libinput.LogError, "after close")
	assert.Len(t, got, 2)
	assertClean(t, eng)
}

func TestCloseReleasesDeviceDescriptors(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))
	eng.AddDevice(keyboard("event1"))
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	require.NoError(t, li.AssignSeat("seat0"))

	require.NoError(t, li.Close())
	assert.ElementsMatch(t, []int{101, 102}, rec.closedFds())
	assert.Equal(t, 0, eng.Interfaces())
	assertClean(t, eng)
}

func TestInterfacesReleasedAcrossContexts(t *testing.T) {
	eng := inputtest.New()
	var rec recorder

	var all []*libinput.Context
	for range 4 {
		li := newUdev(t, eng, rec.iface())
		clone, err := li.Clone()
		require.NoError(t, err)
		all = append(all, li, clone)
	}
	assert.Equal(t, 4, eng.Interfaces())

	for _, li := range all {
		require.NoError(t, li.Close())
	}
	assert.Equal(t, 0, eng.Interfaces())
	assertClean(t, eng)
}
