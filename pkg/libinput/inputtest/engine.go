/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package inputtest provides a fake libinput engine for tests.
//
// [Engine] implements [libinput.Native] in memory. It hands out opaque
// pointers, keeps reference counts for every object, counts event
// destructions and records ownership mistakes (double destroy, use after
// destroy, over-release) as violations instead of crashing.
//
// Calls on one context must not overlap. The engine tracks the calls in
// flight per context and records an overlap as a violation, even though its
// own bookkeeping is locked.
//
// The context descriptor is the read end of a pipe. [Engine.Inject] queues
// an event as pending and makes the descriptor readable; the event becomes
// visible to GetEvent only after Dispatch, exactly like input read from the
// kernel. [Engine.Enqueue] places an event directly on the queue without
// touching the descriptor, like the device-added events libinput queues
// while assigning a seat.
//
//	eng := inputtest.New()
//	eng.AddDevice(inputtest.DeviceSpec{Sysname: "event0", Name: "Keyboard"})
//	li, _ := libinput.NewUdev(iface, libinput.WithNative(eng))
//	li.AssignSeat("seat0")
//	eng.Inject(inputtest.EventSpec{Type: libinput.EventKeyboardKey, Device: "event0"})
package inputtest

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"

	"github.com/eapache/queue"
	"golang.org/x/sys/unix"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

// DeviceSpec describes a fake device.
type DeviceSpec struct {
	Name    string
	Sysname string
	// Path is the node passed to the open callback. It defaults to
	// /dev/input/<Sysname>.
	Path         string
	Vendor       uint32
	Product      uint32
	Capabilities []libinput.Capability
	// Seat defaults to seat0.
	Seat string
	// Group shares a device group between devices with the same key. It
	// defaults to the sysname.
	Group string
}

// EventSpec describes an event to inject.
type EventSpec struct {
	Type libinput.EventType
	// Device is the sysname of the source device.
	Device string
	Values Values
}

// Values holds what the accessors of a fake event return.
type Values struct {
	TimeUsec uint64

	Key       uint32 // keyboard and tablet pad keys
	Button    uint32 // pointer and tool buttons, pad button number
	State     int32  // key, button, tip, proximity and switch state
	SeatCount uint32
	Switch    int32

	Dx, Dy                           float64
	DxUnaccelerated, DyUnaccelerated float64
	// X and Y are pointer absolute, touch and tool positions. Transformed
	// pointer coordinates treat the device as 100 units wide and high.
	X, Y float64

	Scroll     map[libinput.Axis]float64
	ScrollV120 map[libinput.Axis]float64

	Slot, SeatSlot int32

	FingerCount       int32
	Cancelled         bool
	Scale, AngleDelta float64

	Pressure          float64
	Ring, Strip, Dial float64
	Mode              uint32
}

type contextState struct {
	id        libinput.RawContext
	refs      int
	token     uintptr
	path      bool
	rfd, wfd  int
	pending   []*eventState
	queue     *queue.Queue // of *eventState
	seat      string
	devices   []*deviceState
	suspended bool
	logger    func(int32, string)
	priority  int32
	destroyed bool
}

type eventState struct {
	id        libinput.RawEvent
	typ       int32
	device    *deviceState
	values    Values
	popped    bool
	destroyed bool
}

type restricted struct {
	open  func(string, int32) int32
	close func(int32)
}

// Engine is a fake native libinput. The zero value is not usable; call New.
type Engine struct {
	mu sync.Mutex

	next       uintptr
	contexts   map[libinput.RawContext]*contextState
	latest     *contextState
	events     map[libinput.RawEvent]*eventState
	devices    map[libinput.RawDevice]*deviceState
	seats      map[libinput.RawSeat]*seatState
	groups     map[libinput.RawDeviceGroup]*groupState
	interfaces map[uintptr]restricted
	specs      []DeviceSpec

	destroyed   int
	violations  []string
	opened      []string
	closed      []int32
	dispatches  int
	failCreate  bool
	failSeat    bool
	failResume  bool
	dispatchErr []syscall.Errno

	flightMu sync.Mutex
	inflight map[libinput.RawContext]string
	overlaps []string
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{
		next:       0x1000,
		contexts:   make(map[libinput.RawContext]*contextState),
		events:     make(map[libinput.RawEvent]*eventState),
		devices:    make(map[libinput.RawDevice]*deviceState),
		seats:      make(map[libinput.RawSeat]*seatState),
		groups:     make(map[libinput.RawDeviceGroup]*groupState),
		interfaces: make(map[uintptr]restricted),
		inflight:   make(map[libinput.RawContext]string),
	}
}

var _ libinput.Native = (*Engine)(nil)

func (e *Engine) alloc() uintptr {
	e.next += 0x10
	return e.next
}

func (e *Engine) violate(format string, args ...any) {
	e.violations = append(e.violations, fmt.Sprintf(format, args...))
}

// enter marks op as running on li until the returned func is called.
func (e *Engine) enter(li libinput.RawContext, op string) func() {
	e.flightMu.Lock()
	if other, busy := e.inflight[li]; busy {
		e.overlaps = append(e.overlaps, fmt.Sprintf("%s on context %#x overlaps %s", op, li, other))
		e.flightMu.Unlock()
		return func() {}
	}
	e.inflight[li] = op
	e.flightMu.Unlock()

	// Give a concurrent caller the chance to collide.
	runtime.Gosched()

	return func() {
		e.flightMu.Lock()
		delete(e.inflight, li)
		e.flightMu.Unlock()
	}
}

// AddDevice registers a device that udev contexts discover on AssignSeat
// and path contexts accept by path. Call it before creating the context.
func (e *Engine) AddDevice(spec DeviceSpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.specs = append(e.specs, spec)
}

// FailCreate makes the next context creation return NULL.
func (e *Engine) FailCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failCreate = true
}

// FailSeat makes every seat assignment fail.
func (e *Engine) FailSeat() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failSeat = true
}

// FailResume makes every resume fail.
func (e *Engine) FailResume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failResume = true
}

// FailNextDispatch makes the next Dispatch return -errno.
func (e *Engine) FailNextDispatch(errno syscall.Errno) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatchErr = append(e.dispatchErr, errno)
}

// Inject queues ev as pending on the most recent context and makes its
// descriptor readable.
func (e *Engine) Inject(ev EventSpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.live()
	if c == nil {
		e.violate("inject %v without a live context", ev.Type)
		return
	}
	c.pending = append(c.pending, e.newEvent(c, ev))
	signal(c)
}

// Enqueue places ev directly on the queue of the most recent context.
func (e *Engine) Enqueue(ev EventSpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.live()
	if c == nil {
		e.violate("enqueue %v without a live context", ev.Type)
		return
	}
	c.queue.Add(e.newEvent(c, ev))
}

// Wake makes the descriptor readable without producing an event.
func (e *Engine) Wake() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.live(); c != nil {
		signal(c)
	}
}

// Log emits a message through the log handler of the most recent context,
// honouring its priority.
func (e *Engine) Log(priority libinput.LogPriority, message string) {
	e.mu.Lock()
	c := e.live()
	var handler func(int32, string)
	if c != nil && c.logger != nil && int32(priority) >= c.priority {
		handler = c.logger
	}
	e.mu.Unlock()
	if handler != nil {
		handler(int32(priority), message)
	}
}

func (e *Engine) live() *contextState {
	if e.latest == nil || e.latest.destroyed {
		return nil
	}
	return e.latest
}

func (e *Engine) newEvent(c *contextState, spec EventSpec) *eventState {
	ev := &eventState{
		id:     libinput.RawEvent(e.alloc()),
		typ:    int32(spec.Type),
		values: spec.Values,
	}
	for _, d := range c.devices {
		if d.spec.Sysname == spec.Device {
			ev.device = d
			d.eventRefs++
		}
	}
	e.events[ev.id] = ev
	return ev
}

func signal(c *contextState) {
	_, _ = unix.Write(c.wfd, []byte{1})
}

// Destroyed returns how many events were destroyed by the caller.
func (e *Engine) Destroyed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.destroyed
}

// Outstanding returns how many events were popped but not destroyed.
func (e *Engine) Outstanding() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, ev := range e.events {
		if ev.popped && !ev.destroyed {
			n++
		}
	}
	return n
}

// Violations returns the ownership mistakes observed so far.
func (e *Engine) Violations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flightMu.Lock()
	defer e.flightMu.Unlock()
	return append(append([]string(nil), e.violations...), e.overlaps...)
}

// ContextRefs returns the reference count of the most recent context, or 0
// once it is destroyed.
func (e *Engine) ContextRefs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.latest == nil || e.latest.destroyed {
		return 0
	}
	return e.latest.refs
}

// ContextDestroyed reports whether the most recent context is gone.
func (e *Engine) ContextDestroyed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest != nil && e.latest.destroyed
}

// Interfaces returns how many restricted interfaces are registered.
func (e *Engine) Interfaces() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.interfaces)
}

// LogHandlers returns how many live contexts have a log handler.
func (e *Engine) LogHandlers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.contexts {
		if c.logger != nil {
			n++
		}
	}
	return n
}

// Opened returns the paths passed to the open callback, in order.
func (e *Engine) Opened() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.opened...)
}

// Closed returns the descriptors passed to the close callback, in order.
func (e *Engine) Closed() []int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int32(nil), e.closed...)
}

// Dispatches returns how many times Dispatch was called.
func (e *Engine) Dispatches() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatches
}

// Native interface: context lifecycle.

func (e *Engine) RegisterInterface(open func(string, int32) int32, close func(int32)) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	token := e.alloc()
	e.interfaces[token] = restricted{open: open, close: close}
	return token
}

func (e *Engine) UnregisterInterface(token uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.interfaces[token]; !ok {
		e.violate("unregister of unknown interface %#x", token)
	}
	for _, c := range e.contexts {
		if c.token == token && !c.destroyed {
			e.violate("interface %#x unregistered while context %#x is alive", token, c.id)
		}
	}
	delete(e.interfaces, token)
}

func (e *Engine) UdevCreateContext(token uintptr) libinput.RawContext {
	return e.createContext(token, false)
}

func (e *Engine) PathCreateContext(token uintptr) libinput.RawContext {
	return e.createContext(token, true)
}

func (e *Engine) createContext(token uintptr, path bool) libinput.RawContext {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failCreate {
		e.failCreate = false
		return 0
	}
	if _, ok := e.interfaces[token]; !ok {
		e.violate("context created with unknown interface %#x", token)
	}
	p := make([]int, 2)
	if err := unix.Pipe2(p, unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		e.violate("pipe2: %v", err)
		return 0
	}
	c := &contextState{
		id:       libinput.RawContext(e.alloc()),
		refs:     1,
		token:    token,
		path:     path,
		rfd:      p[0],
		wfd:      p[1],
		queue:    queue.New(),
		priority: int32(libinput.LogError),
	}
	e.contexts[c.id] = c
	e.latest = c
	return c.id
}

func (e *Engine) context(li libinput.RawContext, op string) *contextState {
	c, ok := e.contexts[li]
	if !ok {
		e.violate("%s on unknown context %#x", op, li)
		return nil
	}
	if c.destroyed {
		e.violate("%s on destroyed context %#x", op, li)
		return nil
	}
	return c
}

func (e *Engine) Ref(li libinput.RawContext) libinput.RawContext {
	defer e.enter(li, "ref")()
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.context(li, "ref")
	if c == nil {
		return 0
	}
	c.refs++
	return li
}

func (e *Engine) Unref(li libinput.RawContext) libinput.RawContext {
	defer e.enter(li, "unref")()
	e.mu.Lock()
	c := e.context(li, "unref")
	if c == nil {
		e.mu.Unlock()
		return 0
	}
	c.refs--
	if c.refs > 0 {
		e.mu.Unlock()
		return li
	}

	closeFn := e.interfaces[c.token].close
	var fds []int32
	for _, d := range c.devices {
		if d.fd >= 0 {
			fds = append(fds, d.fd)
			d.fd = -1
		}
		d.gone = true
		d.refs--
	}
	// Queued events die with the context.
	for c.queue.Length() > 0 {
		ev := c.queue.Remove().(*eventState)
		ev.destroyed = true
	}
	for _, ev := range c.pending {
		ev.destroyed = true
	}
	c.pending = nil
	c.logger = nil
	c.destroyed = true
	unix.Close(c.rfd)
	unix.Close(c.wfd)
	e.closed = append(e.closed, fds...)
	e.mu.Unlock()

	for _, fd := range fds {
		if closeFn != nil {
			closeFn(fd)
		}
	}
	return 0
}

func (e *Engine) GetFd(li libinput.RawContext) int32 {
	defer e.enter(li, "get_fd")()
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.context(li, "get_fd")
	if c == nil {
		return -1
	}
	return int32(c.rfd)
}

func (e *Engine) Dispatch(li libinput.RawContext) int32 {
	defer e.enter(li, "dispatch")()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatches++
	c := e.context(li, "dispatch")
	if c == nil {
		return -int32(unix.EBADF)
	}
	if len(e.dispatchErr) > 0 {
		errno := e.dispatchErr[0]
		e.dispatchErr = e.dispatchErr[1:]
		return -int32(errno)
	}

	var buf [64]byte
	for {
		n, err := unix.Read(c.rfd, buf[:])
		if n <= 0 || err != nil {
			break
		}
	}
	for _, ev := range c.pending {
		c.queue.Add(ev)
	}
	c.pending = nil
	return 0
}

func (e *Engine) GetEvent(li libinput.RawContext) libinput.RawEvent {
	defer e.enter(li, "get_event")()
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.context(li, "get_event")
	if c == nil || c.queue.Length() == 0 {
		return 0
	}
	ev := c.queue.Remove().(*eventState)
	ev.popped = true
	return ev.id
}

func (e *Engine) NextEventType(li libinput.RawContext) int32 {
	defer e.enter(li, "next_event_type")()
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.context(li, "next_event_type")
	if c == nil || c.queue.Length() == 0 {
		return int32(libinput.EventNone)
	}
	return c.queue.Peek().(*eventState).typ
}

func (e *Engine) SetLogHandler(li libinput.RawContext, handler func(int32, string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.context(li, "log_set_handler"); c != nil {
		c.logger = handler
	}
}

func (e *Engine) ClearLogHandler(li libinput.RawContext) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.contexts[li]
	if !ok {
		e.violate("clear log handler of unknown context %#x", li)
		return
	}
	if !c.destroyed {
		e.violate("log handler of context %#x cleared while alive", li)
	}
	c.logger = nil
}

func (e *Engine) LogSetPriority(li libinput.RawContext, priority int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.context(li, "log_set_priority"); c != nil {
		c.priority = priority
	}
}

// Native interface: events.

func (e *Engine) event(raw libinput.RawEvent, op string) *eventState {
	ev, ok := e.events[raw]
	if !ok {
		e.violate("%s on unknown event %#x", op, raw)
		return nil
	}
	if ev.destroyed {
		e.violate("%s on destroyed event %#x", op, raw)
		return nil
	}
	if !ev.popped {
		e.violate("%s on queued event %#x", op, raw)
		return nil
	}
	return ev
}

func (e *Engine) EventGetType(raw libinput.RawEvent) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ev := e.event(raw, "get_type"); ev != nil {
		return ev.typ
	}
	return int32(libinput.EventNone)
}

func (e *Engine) EventDestroy(raw libinput.RawEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ev := e.event(raw, "destroy"); ev != nil {
		ev.destroyed = true
		if ev.device != nil {
			ev.device.eventRefs--
		}
		e.destroyed++
	}
}

func (e *Engine) EventGetDevice(raw libinput.RawEvent) libinput.RawDevice {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ev := e.event(raw, "get_device"); ev != nil && ev.device != nil {
		return ev.device.id
	}
	return 0
}
