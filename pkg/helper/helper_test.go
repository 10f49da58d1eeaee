/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package helper

import (
	"context"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/libinput/inputtest"
)

type devices struct {
	mu     sync.Mutex
	next   int
	opened []string
	closed []int
}

func (d *devices) open(path string, flags int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.opened = append(d.opened, path)
	return 200 + d.next, nil
}

func (d *devices) close(fd int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = append(d.closed, fd)
}

func (d *devices) closedFds() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.closed...)
}

func start(t *testing.T, eng *inputtest.Engine, dev *devices) *Handle {
	t.Helper()
	h, err := Start(Config{Open: dev.open, Close: dev.close, Native: eng})
	require.NoError(t, err)
	t.Cleanup(func() {
		h.Shutdown()
		for range h.Events() {
		}
		<-h.Done()
	})
	return h
}

func next(t *testing.T, h *Handle) Event {
	t.Helper()
	select {
	case ev, ok := <-h.Events():
		require.True(t, ok, "events closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return Event{}
	}
}

func TestHelperDeliversEvents(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "AT Keyboard", Sysname: "event0"})
	var dev devices
	h := start(t, eng, &dev)

	added := next(t, h)
	assert.Equal(t, "device added", added.Name)
	assert.Equal(t, libinput.EventDeviceAdded, added.Kind)
	assert.Equal(t, "AT Keyboard", added.DeviceName)
	assert.Nil(t, added.Key)

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventKeyboardKey,
		Device: "event0",
		Values: inputtest.Values{Key: 30, State: 1, TimeUsec: 99},
	})
	key := next(t, h)
	require.NotNil(t, key.Key)
	assert.Equal(t, Key{Code: 30, State: libinput.KeyPressed, TimeUsec: 99}, *key.Key)
	assert.Equal(t, "AT Keyboard", key.DeviceName)

	assert.Equal(t, []string{"/dev/input/event0"}, dev.opened)
	assert.Eventually(t, func() bool { return eng.Outstanding() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHelperShutdownReleasesContext(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "AT Keyboard", Sysname: "event0"})
	var dev devices
	h, err := Start(Config{Open: dev.open, Close: dev.close, Native: eng})
	require.NoError(t, err)

	next(t, h)
	h.Shutdown()

	for range h.Events() {
	}
	<-h.Done()
	assert.NoError(t, h.Err())
	assert.True(t, eng.ContextDestroyed())
	assert.Equal(t, 0, eng.Interfaces())
	assert.Equal(t, []int{201}, dev.closedFds())
	assert.ErrorIs(t, h.Resume(context.Background()), ErrShutdown)
	assert.Empty(t, eng.Violations())
}

func TestHelperSuspendResume(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "AT Keyboard", Sysname: "event0"})
	var dev devices
	h := start(t, eng, &dev)
	next(t, h)

	h.Suspend()
	assert.Eventually(t, func() bool { return len(dev.closedFds()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, h.Resume(context.Background()))
	assert.Len(t, dev.opened, 2)

	eng.FailResume()
	h.Suspend()
	assert.ErrorIs(t, h.Resume(context.Background()), libinput.ErrResume)

	// The stream keeps running after a failed resume.
	eng.Inject(inputtest.EventSpec{Type: libinput.EventSwitchToggle, Device: "event0"})
	assert.Equal(t, libinput.EventSwitchToggle, next(t, h).Kind)
}

func TestHelperStreamFailure(t *testing.T) {
	eng := inputtest.New()
	var dev devices
	h, err := Start(Config{Open: dev.open, Close: dev.close, Native: eng})
	require.NoError(t, err)

	eng.FailNextDispatch(syscall.EIO)
	eng.Wake()

	for range h.Events() {
	}
	<-h.Done()
	require.Error(t, h.Err())
	assert.ErrorIs(t, h.Err(), syscall.EIO)
	assert.True(t, eng.ContextDestroyed())
}

func TestHelperSetupErrors(t *testing.T) {
	var dev devices

	eng := inputtest.New()
	eng.FailCreate()
	_, err := Start(Config{Open: dev.open, Close: dev.close, Native: eng})
	assert.ErrorIs(t, err, libinput.ErrContext)

	eng = inputtest.New()
	eng.FailSeat()
	_, err = Start(Config{Open: dev.open, Close: dev.close, Native: eng, Seat: "seat9"})
	assert.ErrorIs(t, err, libinput.ErrSeat)
	assert.True(t, eng.ContextDestroyed())
	assert.Equal(t, 0, eng.Interfaces())
}

func TestHelperOpenPanicBecomesError(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "AT Keyboard", Sysname: "event0"})

	var (
		mu   sync.Mutex
		logs []string
	)
	logger := libinput.LoggerFunc(func(_ libinput.LogPriority, msg string) {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, msg)
	})
	h, err := Start(Config{
		Open:   func(string, int) (int, error) { panic("no session") },
		Close:  func(int) {},
		Native: eng,
		Logger: logger,
	})
	require.NoError(t, err)
	h.Shutdown()
	for range h.Events() {
	}
	<-h.Done()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0], "failed (input/output error)")
}

func TestBufferPreservesOrder(t *testing.T) {
	b := newBuffer()
	for i := range 100 {
		b.push(Event{Kind: libinput.EventType(i)})
	}
	b.close()
	b.push(Event{Kind: -1})

	var got []libinput.EventType
	for ev := range b.out {
		got = append(got, ev.Kind)
	}
	require.Len(t, got, 100)
	for i, k := range got {
		assert.Equal(t, libinput.EventType(i), k)
	}
}

func TestBufferDiscardStopsPump(t *testing.T) {
	b := newBuffer()
	for i := range 3 {
		b.push(Event{Kind: libinput.EventType(i)})
	}
	b.discard()
	b.discard()

	select {
	case <-b.stopped:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked on an unread channel")
	}
	_, ok := <-b.out
	assert.False(t, ok)
}

func TestHelperShutdownWithoutDraining(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "AT Keyboard", Sysname: "event0"})
	var dev devices
	h, err := Start(Config{Open: dev.open, Close: dev.close, Native: eng})
	require.NoError(t, err)

	for range 5 {
		eng.Inject(inputtest.EventSpec{Type: libinput.EventKeyboardKey, Device: "event0"})
	}
	h.Shutdown()
	<-h.Done()

	select {
	case <-h.events.stopped:
	case <-time.After(time.Second):
		t.Fatal("undelivered events kept the buffer alive")
	}
	assert.True(t, eng.ContextDestroyed())
	assert.Empty(t, eng.Violations())
}

func TestSummarizeUnknown(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{Name: "Mystery", Sysname: "event7"})
	var dev devices
	h := start(t, eng, &dev)
	next(t, h)

	eng.Inject(inputtest.EventSpec{Type: 12345, Device: "event7"})
	ev := next(t, h)
	assert.Equal(t, "unknown event 12345", ev.Name)
	assert.Equal(t, "Mystery", ev.DeviceName)
	assert.Nil(t, ev.Key)
}
