/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "github.com/jupiterrider/ffi"

// FFI function descriptors for context operations.
var (
	fnUdevCreateContext ffi.Fun
	fnPathCreateContext ffi.Fun
	fnPathAddDevice     ffi.Fun
	fnPathRemoveDevice  ffi.Fun
	fnUdevAssignSeat    ffi.Fun
	fnRef               ffi.Fun
	fnUnref             ffi.Fun
	fnGetFd             ffi.Fun
	fnDispatch          ffi.Fun
	fnGetEvent          ffi.Fun
	fnNextEventType     ffi.Fun
	fnSuspend           ffi.Fun
	fnResume            ffi.Fun
	fnGetUserData       ffi.Fun
)

func registerContextFunctions() error {
	return prepare(lib, []symbol{
		// struct libinput* libinput_udev_create_context(const struct libinput_interface*, void* user_data, struct udev*)
		{&fnUdevCreateContext, "libinput_udev_create_context", &ffi.TypePointer,
			[]*ffi.Type{&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer}},
		// struct libinput* libinput_path_create_context(const struct libinput_interface*, void* user_data)
		{&fnPathCreateContext, "libinput_path_create_context", &ffi.TypePointer, argPtrPtr},
		// struct libinput_device* libinput_path_add_device(struct libinput*, const char* path)
		{&fnPathAddDevice, "libinput_path_add_device", &ffi.TypePointer, argPtrPtr},
		// void libinput_path_remove_device(struct libinput_device*)
		{&fnPathRemoveDevice, "libinput_path_remove_device", &ffi.TypeVoid, argPtr},
		// int libinput_udev_assign_seat(struct libinput*, const char* seat_id)
		{&fnUdevAssignSeat, "libinput_udev_assign_seat", &ffi.TypeSint32, argPtrPtr},
		// struct libinput* libinput_ref(struct libinput*)
		{&fnRef, "libinput_ref", &ffi.TypePointer, argPtr},
		// struct libinput* libinput_unref(struct libinput*), NULL once destroyed
		{&fnUnref, "libinput_unref", &ffi.TypePointer, argPtr},
		// int libinput_get_fd(struct libinput*)
		{&fnGetFd, "libinput_get_fd", &ffi.TypeSint32, argPtr},
		// int libinput_dispatch(struct libinput*), 0 or -errno
		{&fnDispatch, "libinput_dispatch", &ffi.TypeSint32, argPtr},
		// struct libinput_event* libinput_get_event(struct libinput*)
		{&fnGetEvent, "libinput_get_event", &ffi.TypePointer, argPtr},
		// enum libinput_event_type libinput_next_event_type(struct libinput*)
		{&fnNextEventType, "libinput_next_event_type", &ffi.TypeSint32, argPtr},
		// void libinput_suspend(struct libinput*)
		{&fnSuspend, "libinput_suspend", &ffi.TypeVoid, argPtr},
		// int libinput_resume(struct libinput*)
		{&fnResume, "libinput_resume", &ffi.TypeSint32, argPtr},
		// void* libinput_get_user_data(struct libinput*)
		{&fnGetUserData, "libinput_get_user_data", &ffi.TypePointer, argPtr},
	})
}

// UdevCreateContext creates a udev-backed context bound to the restricted
// interface registered under userdata (see RegisterInterface).
// libinput takes its own reference on udev. Returns 0 on failure.
func UdevCreateContext(userdata uintptr, udev Udev) Libinput {
	if loadErr != nil {
		return 0
	}
	initInterfaceClosures()
	iface := interfacePointer()
	var ret uintptr
	fnUdevCreateContext.Call(&ret, &iface, &userdata, &udev)
	return Libinput(ret)
}

// PathCreateContext creates a context for manually added devices.
// Returns 0 on failure.
func PathCreateContext(userdata uintptr) Libinput {
	if loadErr != nil {
		return 0
	}
	initInterfaceClosures()
	iface := interfacePointer()
	var ret uintptr
	fnPathCreateContext.Call(&ret, &iface, &userdata)
	return Libinput(ret)
}

// PathAddDevice adds the device node at path. Returns 0 on failure.
// The returned device is not referenced on behalf of the caller.
func PathAddDevice(li Libinput, path string) Device {
	ret, err := callString(fnPathAddDevice, uintptr(li), path)
	if err != nil {
		return 0
	}
	return Device(ret)
}

// PathRemoveDevice removes a device previously added with PathAddDevice.
func PathRemoveDevice(d Device) {
	callVoid(fnPathRemoveDevice, uintptr(d))
}

// UdevAssignSeat assigns the context to a seat. Returns 0 on success.
func UdevAssignSeat(li Libinput, seat string) int32 {
	ret, err := callString(fnUdevAssignSeat, uintptr(li), seat)
	if err != nil {
		return -1
	}
	return int32(ret)
}

// Ref increments the context reference count.
func Ref(li Libinput) Libinput {
	return Libinput(callPtr(fnRef, uintptr(li)))
}

// Unref decrements the context reference count. It returns 0 once the
// context has been destroyed.
func Unref(li Libinput) Libinput {
	return Libinput(callPtr(fnUnref, uintptr(li)))
}

// GetFd returns the pollable descriptor of the context.
func GetFd(li Libinput) int32 {
	return callI32(fnGetFd, uintptr(li))
}

// Dispatch reads pending input into the event queue. Returns 0 or -errno.
func Dispatch(li Libinput) int32 {
	return callI32(fnDispatch, uintptr(li))
}

// GetEvent pops the next queued event, or 0 when the queue is empty.
func GetEvent(li Libinput) Event {
	return Event(callPtr(fnGetEvent, uintptr(li)))
}

// NextEventType peeks at the type of the next queued event.
func NextEventType(li Libinput) int32 {
	return callI32(fnNextEventType, uintptr(li))
}

// Suspend closes all devices of the context.
func Suspend(li Libinput) {
	callVoid(fnSuspend, uintptr(li))
}

// Resume re-opens the devices of a suspended context. Returns 0 on success.
func Resume(li Libinput) int32 {
	return callI32(fnResume, uintptr(li))
}

// GetUserData returns the user data the context was created with.
func GetUserData(li Libinput) uintptr {
	return callPtr(fnGetUserData, uintptr(li))
}
