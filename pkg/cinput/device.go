/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "github.com/jupiterrider/ffi"

// Device capabilities (enum libinput_device_capability).
const (
	CapKeyboard   int32 = 0
	CapPointer    int32 = 1
	CapTouch      int32 = 2
	CapTabletTool int32 = 3
	CapTabletPad  int32 = 4
	CapGesture    int32 = 5
	CapSwitch     int32 = 6
)

var (
	fnDeviceRef            ffi.Fun
	fnDeviceUnref          ffi.Fun
	fnDeviceGetName        ffi.Fun
	fnDeviceGetSysname     ffi.Fun
	fnDeviceGetIDVendor    ffi.Fun
	fnDeviceGetIDProduct   ffi.Fun
	fnDeviceGetSeat        ffi.Fun
	fnDeviceGetDeviceGroup ffi.Fun
	fnDeviceHasCapability  ffi.Fun

	fnSeatRef             ffi.Fun
	fnSeatUnref           ffi.Fun
	fnSeatGetPhysicalName ffi.Fun
	fnSeatGetLogicalName  ffi.Fun

	fnDeviceGroupRef   ffi.Fun
	fnDeviceGroupUnref ffi.Fun
)

func registerDeviceFunctions() error {
	return prepare(lib, []symbol{
		{&fnDeviceRef, "libinput_device_ref", &ffi.TypePointer, argPtr},
		{&fnDeviceUnref, "libinput_device_unref", &ffi.TypePointer, argPtr},
		{&fnDeviceGetName, "libinput_device_get_name", &ffi.TypePointer, argPtr},
		{&fnDeviceGetSysname, "libinput_device_get_sysname", &ffi.TypePointer, argPtr},
		{&fnDeviceGetIDVendor, "libinput_device_get_id_vendor", &ffi.TypeUint32, argPtr},
		{&fnDeviceGetIDProduct, "libinput_device_get_id_product", &ffi.TypeUint32, argPtr},
		{&fnDeviceGetSeat, "libinput_device_get_seat", &ffi.TypePointer, argPtr},
		{&fnDeviceGetDeviceGroup, "libinput_device_get_device_group", &ffi.TypePointer, argPtr},
		{&fnDeviceHasCapability, "libinput_device_has_capability", &ffi.TypeSint32, argPtrI32},

		{&fnSeatRef, "libinput_seat_ref", &ffi.TypePointer, argPtr},
		{&fnSeatUnref, "libinput_seat_unref", &ffi.TypePointer, argPtr},
		{&fnSeatGetPhysicalName, "libinput_seat_get_physical_name", &ffi.TypePointer, argPtr},
		{&fnSeatGetLogicalName, "libinput_seat_get_logical_name", &ffi.TypePointer, argPtr},

		{&fnDeviceGroupRef, "libinput_device_group_ref", &ffi.TypePointer, argPtr},
		{&fnDeviceGroupUnref, "libinput_device_group_unref", &ffi.TypePointer, argPtr},
	})
}

// DeviceRef increments the device reference count.
func DeviceRef(d Device) Device { return Device(callPtr(fnDeviceRef, uintptr(d))) }

// DeviceUnref decrements the device reference count; it returns 0 once the
// device has been released.
func DeviceUnref(d Device) Device { return Device(callPtr(fnDeviceUnref, uintptr(d))) }

func DeviceGetName(d Device) string    { return goString(fnDeviceGetName, uintptr(d)) }
func DeviceGetSysname(d Device) string { return goString(fnDeviceGetSysname, uintptr(d)) }
func DeviceGetIDVendor(d Device) uint32 {
	return callU32(fnDeviceGetIDVendor, uintptr(d))
}
func DeviceGetIDProduct(d Device) uint32 {
	return callU32(fnDeviceGetIDProduct, uintptr(d))
}

// DeviceGetSeat returns the seat of d without taking a reference.
func DeviceGetSeat(d Device) Seat { return Seat(callPtr(fnDeviceGetSeat, uintptr(d))) }

// DeviceGetDeviceGroup returns the group of d without taking a reference.
func DeviceGetDeviceGroup(d Device) DeviceGroup {
	return DeviceGroup(callPtr(fnDeviceGetDeviceGroup, uintptr(d)))
}

func DeviceHasCapability(d Device, capability int32) bool {
	return callI32Arg(fnDeviceHasCapability, uintptr(d), capability) != 0
}

func SeatRef(s Seat) Seat   { return Seat(callPtr(fnSeatRef, uintptr(s))) }
func SeatUnref(s Seat) Seat { return Seat(callPtr(fnSeatUnref, uintptr(s))) }

func SeatGetPhysicalName(s Seat) string { return goString(fnSeatGetPhysicalName, uintptr(s)) }
func SeatGetLogicalName(s Seat) string  { return goString(fnSeatGetLogicalName, uintptr(s)) }

func DeviceGroupRef(g DeviceGroup) DeviceGroup {
	return DeviceGroup(callPtr(fnDeviceGroupRef, uintptr(g)))
}
func DeviceGroupUnref(g DeviceGroup) DeviceGroup {
	return DeviceGroup(callPtr(fnDeviceGroupUnref, uintptr(g)))
}
