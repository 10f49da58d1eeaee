/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package inputtest

import (
	"fmt"
	"slices"

	"golang.org/x/sys/unix"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

type deviceState struct {
	id   libinput.RawDevice
	spec DeviceSpec
	refs int // includes the engine's reference until removal
	// eventRefs counts undestroyed events that point at the device.
	eventRefs int
	fd        int32
	seat      *seatState
	group     *groupState
	ctx       *contextState
	gone      bool
}

type seatState struct {
	id       libinput.RawSeat
	physical string
	logical  string
	refs     int
}

type groupState struct {
	id   libinput.RawDeviceGroup
	key  string
	refs int
}

func (s DeviceSpec) path() string {
	if s.Path != "" {
		return s.Path
	}
	return "/dev/input/" + s.Sysname
}

// pendingLog is a message to deliver once the engine lock is released.
type pendingLog struct {
	handler  func(int32, string)
	priority int32
	message  string
}

func (c *contextState) logf(priority libinput.LogPriority, format string, args ...any) []pendingLog {
	if c.logger == nil || int32(priority) < c.priority {
		return nil
	}
	return []pendingLog{{c.logger, int32(priority), fmt.Sprintf(format, args...)}}
}

func deliver(logs []pendingLog) {
	for _, l := range logs {
		l.handler(l.priority, l.message)
	}
}

// openDevice runs the open callback without holding the engine lock and
// attaches the device on success. It returns nil when opening failed.
func (e *Engine) openDevice(c *contextState, spec DeviceSpec) *deviceState {
	e.mu.Lock()
	open := e.interfaces[c.token].open
	e.mu.Unlock()

	fd := -int32(unix.ENODEV)
	if open != nil {
		fd = open(spec.path(), unix.O_RDWR|unix.O_NONBLOCK)
	}

	e.mu.Lock()
	e.opened = append(e.opened, spec.path())
	if fd < 0 {
		logs := c.logf(libinput.LogError, "opening input device '%s' failed (%s)", spec.path(), unix.Errno(-fd))
		e.mu.Unlock()
		deliver(logs)
		return nil
	}
	d := e.attach(c, spec, fd)
	logs := c.logf(libinput.LogInfo, "%s: %s added", spec.Sysname, spec.Name)
	e.mu.Unlock()
	deliver(logs)
	return d
}

// attach creates the device and queues DEVICE_ADDED; the lock must be held.
func (e *Engine) attach(c *contextState, spec DeviceSpec, fd int32) *deviceState {
	d := &deviceState{
		id:    libinput.RawDevice(e.alloc()),
		spec:  spec,
		refs:  1,
		fd:    fd,
		seat:  e.seatFor(c, spec),
		group: e.groupFor(c, spec),
		ctx:   c,
	}
	e.devices[d.id] = d
	c.devices = append(c.devices, d)
	c.queue.Add(e.newEvent(c, EventSpec{Type: libinput.EventDeviceAdded, Device: spec.Sysname}))
	return d
}

func (e *Engine) seatFor(c *contextState, spec DeviceSpec) *seatState {
	name := spec.Seat
	if name == "" {
		name = "seat0"
	}
	for _, d := range c.devices {
		if d.seat.physical == name {
			return d.seat
		}
	}
	s := &seatState{id: libinput.RawSeat(e.alloc()), physical: name, logical: "default", refs: 1}
	e.seats[s.id] = s
	return s
}

func (e *Engine) groupFor(c *contextState, spec DeviceSpec) *groupState {
	key := spec.Group
	if key == "" {
		key = spec.Sysname
	}
	for _, d := range c.devices {
		if d.group.key == key {
			return d.group
		}
	}
	g := &groupState{id: libinput.RawDeviceGroup(e.alloc()), key: key, refs: 1}
	e.groups[g.id] = g
	return g
}

func (e *Engine) UdevAssignSeat(li libinput.RawContext, seat string) int32 {
	defer e.enter(li, "udev_assign_seat")()
	e.mu.Lock()
	c := e.context(li, "udev_assign_seat")
	if c == nil || c.path || c.seat != "" || e.failSeat {
		e.mu.Unlock()
		return -1
	}
	c.seat = seat
	var specs []DeviceSpec
	for _, s := range e.specs {
		name := s.Seat
		if name == "" {
			name = "seat0"
		}
		if name == seat {
			specs = append(specs, s)
		}
	}
	e.mu.Unlock()

	for _, s := range specs {
		e.openDevice(c, s)
	}
	return 0
}

func (e *Engine) PathAddDevice(li libinput.RawContext, path string) libinput.RawDevice {
	defer e.enter(li, "path_add_device")()
	e.mu.Lock()
	c := e.context(li, "path_add_device")
	if c == nil || !c.path {
		e.mu.Unlock()
		return 0
	}
	idx := slices.IndexFunc(e.specs, func(s DeviceSpec) bool { return s.path() == path })
	if idx < 0 {
		logs := c.logf(libinput.LogError, "client bug: Invalid path %s", path)
		e.mu.Unlock()
		deliver(logs)
		return 0
	}
	spec := e.specs[idx]
	e.mu.Unlock()

	if d := e.openDevice(c, spec); d != nil {
		return d.id
	}
	return 0
}

func (e *Engine) PathRemoveDevice(raw libinput.RawDevice) {
	e.mu.Lock()
	d := e.device(raw, "path_remove_device")
	if d == nil || !d.ctx.path {
		e.mu.Unlock()
		return
	}
	c := d.ctx
	closeFn := e.interfaces[c.token].close
	fd := d.fd
	e.detach(d)
	e.mu.Unlock()

	if fd >= 0 && closeFn != nil {
		closeFn(fd)
	}
}

// detach removes d from its context and queues DEVICE_REMOVED; the lock
// must be held.
func (e *Engine) detach(d *deviceState) {
	c := d.ctx
	c.queue.Add(e.newEvent(c, EventSpec{Type: libinput.EventDeviceRemoved, Device: d.spec.Sysname}))

	if d.fd >= 0 {
		e.closed = append(e.closed, d.fd)
	}
	d.fd = -1
	d.gone = true
	d.refs--
	c.devices = slices.DeleteFunc(c.devices, func(o *deviceState) bool { return o == d })
}

func (e *Engine) Suspend(li libinput.RawContext) {
	defer e.enter(li, "suspend")()
	e.mu.Lock()
	c := e.context(li, "suspend")
	if c == nil || c.suspended {
		e.mu.Unlock()
		return
	}
	c.suspended = true
	closeFn := e.interfaces[c.token].close
	var fds []int32
	for _, d := range c.devices {
		if d.fd >= 0 {
			fds = append(fds, d.fd)
			d.fd = -1
		}
	}
	e.closed = append(e.closed, fds...)
	e.mu.Unlock()

	for _, fd := range fds {
		if closeFn != nil {
			closeFn(fd)
		}
	}
}

func (e *Engine) Resume(li libinput.RawContext) int32 {
	defer e.enter(li, "resume")()
	e.mu.Lock()
	c := e.context(li, "resume")
	if c == nil {
		e.mu.Unlock()
		return -1
	}
	if e.failResume {
		e.mu.Unlock()
		return -1
	}
	if !c.suspended {
		e.mu.Unlock()
		return 0
	}
	c.suspended = false
	open := e.interfaces[c.token].open
	devices := slices.Clone(c.devices)
	e.mu.Unlock()

	for _, d := range devices {
		if open == nil {
			break
		}
		fd := open(d.spec.path(), unix.O_RDWR|unix.O_NONBLOCK)
		e.mu.Lock()
		e.opened = append(e.opened, d.spec.path())
		d.fd = fd
		e.mu.Unlock()
	}
	return 0
}

// Native interface: devices, seats and groups.

func (e *Engine) device(raw libinput.RawDevice, op string) *deviceState {
	d, ok := e.devices[raw]
	if !ok {
		e.violate("%s on unknown device %#x", op, raw)
		return nil
	}
	if d.refs+d.eventRefs <= 0 {
		e.violate("%s on released device %#x", op, raw)
		return nil
	}
	if d.ctx.destroyed {
		e.violate("%s on device %#x of a destroyed context", op, raw)
		return nil
	}
	return d
}

func (e *Engine) DeviceRef(raw libinput.RawDevice) libinput.RawDevice {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_ref"); d != nil {
		d.refs++
	}
	return raw
}

func (e *Engine) DeviceUnref(raw libinput.RawDevice) libinput.RawDevice {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.device(raw, "device_unref")
	if d == nil {
		return 0
	}
	d.refs--
	if d.refs == 0 {
		if !d.gone {
			e.violate("device %s over-released", d.spec.Sysname)
		}
		return 0
	}
	return raw
}

func (e *Engine) DeviceGetName(raw libinput.RawDevice) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_name"); d != nil {
		return d.spec.Name
	}
	return ""
}

func (e *Engine) DeviceGetSysname(raw libinput.RawDevice) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_sysname"); d != nil {
		return d.spec.Sysname
	}
	return ""
}

func (e *Engine) DeviceGetIDVendor(raw libinput.RawDevice) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_id_vendor"); d != nil {
		return d.spec.Vendor
	}
	return 0
}

func (e *Engine) DeviceGetIDProduct(raw libinput.RawDevice) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_id_product"); d != nil {
		return d.spec.Product
	}
	return 0
}

func (e *Engine) DeviceGetSeat(raw libinput.RawDevice) libinput.RawSeat {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_seat"); d != nil {
		return d.seat.id
	}
	return 0
}

func (e *Engine) DeviceGetDeviceGroup(raw libinput.RawDevice) libinput.RawDeviceGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_get_device_group"); d != nil {
		return d.group.id
	}
	return 0
}

func (e *Engine) DeviceHasCapability(raw libinput.RawDevice, capability int32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d := e.device(raw, "device_has_capability"); d != nil {
		return slices.Contains(d.spec.Capabilities, libinput.Capability(capability))
	}
	return false
}

func (e *Engine) seat(raw libinput.RawSeat, op string) *seatState {
	s, ok := e.seats[raw]
	if !ok || s.refs <= 0 {
		e.violate("%s on invalid seat %#x", op, raw)
		return nil
	}
	return s
}

func (e *Engine) SeatRef(raw libinput.RawSeat) libinput.RawSeat {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.seat(raw, "seat_ref"); s != nil {
		s.refs++
	}
	return raw
}

func (e *Engine) SeatUnref(raw libinput.RawSeat) libinput.RawSeat {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.seat(raw, "seat_unref")
	if s == nil {
		return 0
	}
	s.refs--
	if s.refs == 0 {
		e.violate("seat %s over-released", s.physical)
		return 0
	}
	return raw
}

func (e *Engine) SeatGetPhysicalName(raw libinput.RawSeat) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.seat(raw, "seat_get_physical_name"); s != nil {
		return s.physical
	}
	return ""
}

func (e *Engine) SeatGetLogicalName(raw libinput.RawSeat) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.seat(raw, "seat_get_logical_name"); s != nil {
		return s.logical
	}
	return ""
}

func (e *Engine) DeviceGroupRef(raw libinput.RawDeviceGroup) libinput.RawDeviceGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.groups[raw]
	if !ok || g.refs <= 0 {
		e.violate("device_group_ref on invalid group %#x", raw)
		return 0
	}
	g.refs++
	return raw
}

func (e *Engine) DeviceGroupUnref(raw libinput.RawDeviceGroup) libinput.RawDeviceGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.groups[raw]
	if !ok || g.refs <= 0 {
		e.violate("device_group_unref on invalid group %#x", raw)
		return 0
	}
	g.refs--
	if g.refs == 0 {
		e.violate("device group %s over-released", g.key)
		return 0
	}
	return raw
}

// DeviceRefs returns the references callers hold on the device with the
// given sysname, excluding the engine's own.
func (e *Engine) DeviceRefs(sysname string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range e.devices {
		if d.spec.Sysname != sysname {
			continue
		}
		if d.gone {
			return d.refs
		}
		return d.refs - 1
	}
	return 0
}

// SeatRefs returns the references callers hold on the named seat.
func (e *Engine) SeatRefs(physical string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.seats {
		if s.physical == physical {
			return s.refs - 1
		}
	}
	return 0
}

// GroupRefs returns the references callers hold on the group with the
// given key.
func (e *Engine) GroupRefs(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, g := range e.groups {
		if g.key == key {
			return g.refs - 1
		}
	}
	return 0
}
