/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import "sync/atomic"

// handle is one acquired reference to a ref-counted native object.
type handle[P ~uintptr] struct {
	sh     *shared
	raw    P
	closed atomic.Bool
}

// with runs get on the native object with the lock held. It returns the
// zero value once the handle or its context is gone.
func with[P ~uintptr, T any](h *handle[P], get func(Native, P) T) T {
	var zero T
	if h.closed.Load() {
		return zero
	}
	h.sh.acquire()
	defer h.sh.release()
	if h.sh.destroyed {
		return zero
	}
	return get(h.sh.native, h.raw)
}

// release drops the reference exactly once.
func (h *handle[P]) release(unref func(Native, P) P) {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	h.sh.acquire()
	defer h.sh.release()
	if !h.sh.destroyed {
		unref(h.sh.native, h.raw)
	}
}

// Device is a reference to an input device.
type Device struct {
	handle[RawDevice]
}

// newDevice references raw; the lock must be held.
func newDevice(sh *shared, raw RawDevice) *Device {
	d := &Device{}
	d.sh = sh
	d.raw = sh.native.DeviceRef(raw)
	return d
}

// Clone acquires another reference to the same device.
func (d *Device) Clone() *Device {
	return with(&d.handle, func(n Native, raw RawDevice) *Device {
		return newDevice(d.sh, raw)
	})
}

// Close releases the reference. It is safe to call more than once.
func (d *Device) Close() {
	d.release(Native.DeviceUnref)
}

// Equal reports whether d and o refer to the same native device.
func (d *Device) Equal(o *Device) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.raw == o.raw
}

// Name returns the human readable device name.
func (d *Device) Name() string { return with(&d.handle, Native.DeviceGetName) }

// Sysname returns the kernel name of the device node, such as "event3".
func (d *Device) Sysname() string { return with(&d.handle, Native.DeviceGetSysname) }

// IDVendor returns the USB vendor ID of the device.
func (d *Device) IDVendor() uint32 { return with(&d.handle, Native.DeviceGetIDVendor) }

// IDProduct returns the USB product ID of the device.
func (d *Device) IDProduct() uint32 { return with(&d.handle, Native.DeviceGetIDProduct) }

// HasCapability reports whether the device can generate events of the
// given capability.
func (d *Device) HasCapability(c Capability) bool {
	return with(&d.handle, func(n Native, raw RawDevice) bool {
		return n.DeviceHasCapability(raw, int32(c))
	})
}

// Seat returns a new reference to the device's seat.
func (d *Device) Seat() *Seat {
	return with(&d.handle, func(n Native, raw RawDevice) *Seat {
		s := n.DeviceGetSeat(raw)
		if s == 0 {
			return nil
		}
		return newSeat(d.sh, s)
	})
}

// Group returns a new reference to the device's group. Devices that are
// part of the same physical device share a group.
func (d *Device) Group() *DeviceGroup {
	return with(&d.handle, func(n Native, raw RawDevice) *DeviceGroup {
		g := n.DeviceGetDeviceGroup(raw)
		if g == 0 {
			return nil
		}
		return newDeviceGroup(d.sh, g)
	})
}

// Seat is a reference to a seat, a collection of devices used together.
type Seat struct {
	handle[RawSeat]
}

func newSeat(sh *shared, raw RawSeat) *Seat {
	s := &Seat{}
	s.sh = sh
	s.raw = sh.native.SeatRef(raw)
	return s
}

// Clone acquires another reference to the same seat.
func (s *Seat) Clone() *Seat {
	return with(&s.handle, func(n Native, raw RawSeat) *Seat {
		return newSeat(s.sh, raw)
	})
}

// Close releases the reference. It is safe to call more than once.
func (s *Seat) Close() {
	s.release(Native.SeatUnref)
}

// Equal reports whether s and o refer to the same native seat.
func (s *Seat) Equal(o *Seat) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.raw == o.raw
}

// PhysicalName returns the name of the physical seat, such as "seat0".
func (s *Seat) PhysicalName() string { return with(&s.handle, Native.SeatGetPhysicalName) }

// LogicalName returns the name of the logical seat, usually "default".
func (s *Seat) LogicalName() string { return with(&s.handle, Native.SeatGetLogicalName) }

// DeviceGroup is a reference to a group of devices sharing hardware.
type DeviceGroup struct {
	handle[RawDeviceGroup]
}

func newDeviceGroup(sh *shared, raw RawDeviceGroup) *DeviceGroup {
	g := &DeviceGroup{}
	g.sh = sh
	g.raw = sh.native.DeviceGroupRef(raw)
	return g
}

// Clone acquires another reference to the same group.
func (g *DeviceGroup) Clone() *DeviceGroup {
	return with(&g.handle, func(n Native, raw RawDeviceGroup) *DeviceGroup {
		return newDeviceGroup(g.sh, raw)
	})
}

// Close releases the reference.
func (g *DeviceGroup) Close() {
	g.release(Native.DeviceGroupUnref)
}

// Equal reports whether g and o refer to the same native group.
func (g *DeviceGroup) Equal(o *DeviceGroup) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.raw == o.raw
}
