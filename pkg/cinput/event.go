/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "github.com/jupiterrider/ffi"

// Event types (enum libinput_event_type).
const (
	EventNone          int32 = 0
	EventDeviceAdded   int32 = 1
	EventDeviceRemoved int32 = 2

	EventKeyboardKey int32 = 300

	EventPointerMotion           int32 = 400
	EventPointerMotionAbsolute   int32 = 401
	EventPointerButton           int32 = 402
	EventPointerAxis             int32 = 403
	EventPointerScrollWheel      int32 = 404
	EventPointerScrollFinger     int32 = 405
	EventPointerScrollContinuous int32 = 406

	EventTouchDown   int32 = 500
	EventTouchUp     int32 = 501
	EventTouchMotion int32 = 502
	EventTouchCancel int32 = 503
	EventTouchFrame  int32 = 504

	EventTabletToolAxis      int32 = 600
	EventTabletToolProximity int32 = 601
	EventTabletToolTip       int32 = 602
	EventTabletToolButton    int32 = 603

	EventTabletPadButton int32 = 700
	EventTabletPadRing   int32 = 701
	EventTabletPadStrip  int32 = 702
	EventTabletPadKey    int32 = 703
	EventTabletPadDial   int32 = 704

	EventGestureSwipeBegin  int32 = 800
	EventGestureSwipeUpdate int32 = 801
	EventGestureSwipeEnd    int32 = 802
	EventGesturePinchBegin  int32 = 803
	EventGesturePinchUpdate int32 = 804
	EventGesturePinchEnd    int32 = 805
	EventGestureHoldBegin   int32 = 806
	EventGestureHoldEnd     int32 = 807

	EventSwitchToggle int32 = 900
)

var (
	fnEventGetType   ffi.Fun
	fnEventDestroy   ffi.Fun
	fnEventGetDevice ffi.Fun

	fnEventGetDeviceNotifyEvent ffi.Fun
	fnEventGetKeyboardEvent     ffi.Fun
	fnEventGetPointerEvent      ffi.Fun
	fnEventGetTouchEvent        ffi.Fun
	fnEventGetGestureEvent      ffi.Fun
	fnEventGetSwitchEvent       ffi.Fun
	fnEventGetTabletPadEvent    ffi.Fun
	fnEventGetTabletToolEvent   ffi.Fun

	fnDeviceNotifyGetBaseEvent ffi.Fun
	fnKeyboardGetBaseEvent     ffi.Fun
	fnPointerGetBaseEvent      ffi.Fun
	fnTouchGetBaseEvent        ffi.Fun
	fnGestureGetBaseEvent      ffi.Fun
	fnSwitchGetBaseEvent       ffi.Fun
	fnTabletPadGetBaseEvent    ffi.Fun
	fnTabletToolGetBaseEvent   ffi.Fun
)

func registerEventFunctions() error {
	return prepare(lib, []symbol{
		{&fnEventGetType, "libinput_event_get_type", &ffi.TypeSint32, argPtr},
		{&fnEventDestroy, "libinput_event_destroy", &ffi.TypeVoid, argPtr},
		{&fnEventGetDevice, "libinput_event_get_device", &ffi.TypePointer, argPtr},

		// base -> sub-event, NULL when the type does not match
		{&fnEventGetDeviceNotifyEvent, "libinput_event_get_device_notify_event", &ffi.TypePointer, argPtr},
		{&fnEventGetKeyboardEvent, "libinput_event_get_keyboard_event", &ffi.TypePointer, argPtr},
		{&fnEventGetPointerEvent, "libinput_event_get_pointer_event", &ffi.TypePointer, argPtr},
		{&fnEventGetTouchEvent, "libinput_event_get_touch_event", &ffi.TypePointer, argPtr},
		{&fnEventGetGestureEvent, "libinput_event_get_gesture_event", &ffi.TypePointer, argPtr},
		{&fnEventGetSwitchEvent, "libinput_event_get_switch_event", &ffi.TypePointer, argPtr},
		{&fnEventGetTabletPadEvent, "libinput_event_get_tablet_pad_event", &ffi.TypePointer, argPtr},
		{&fnEventGetTabletToolEvent, "libinput_event_get_tablet_tool_event", &ffi.TypePointer, argPtr},

		// sub-event -> base
		{&fnDeviceNotifyGetBaseEvent, "libinput_event_device_notify_get_base_event", &ffi.TypePointer, argPtr},
		{&fnKeyboardGetBaseEvent, "libinput_event_keyboard_get_base_event", &ffi.TypePointer, argPtr},
		{&fnPointerGetBaseEvent, "libinput_event_pointer_get_base_event", &ffi.TypePointer, argPtr},
		{&fnTouchGetBaseEvent, "libinput_event_touch_get_base_event", &ffi.TypePointer, argPtr},
		{&fnGestureGetBaseEvent, "libinput_event_gesture_get_base_event", &ffi.TypePointer, argPtr},
		{&fnSwitchGetBaseEvent, "libinput_event_switch_get_base_event", &ffi.TypePointer, argPtr},
		{&fnTabletPadGetBaseEvent, "libinput_event_tablet_pad_get_base_event", &ffi.TypePointer, argPtr},
		{&fnTabletToolGetBaseEvent, "libinput_event_tablet_tool_get_base_event", &ffi.TypePointer, argPtr},
	})
}

// EventGetType returns the discriminant of e.
func EventGetType(e Event) int32 { return callI32(fnEventGetType, uintptr(e)) }

// EventDestroy releases e. It must be called exactly once per event.
func EventDestroy(e Event) { callVoid(fnEventDestroy, uintptr(e)) }

// EventGetDevice returns the device that generated e. The device is not
// referenced on behalf of the caller.
func EventGetDevice(e Event) Device { return Device(callPtr(fnEventGetDevice, uintptr(e))) }

func EventGetDeviceNotifyEvent(e Event) DeviceNotifyEvent {
	return DeviceNotifyEvent(callPtr(fnEventGetDeviceNotifyEvent, uintptr(e)))
}

func EventGetKeyboardEvent(e Event) KeyboardEvent {
	return KeyboardEvent(callPtr(fnEventGetKeyboardEvent, uintptr(e)))
}

func EventGetPointerEvent(e Event) PointerEvent {
	return PointerEvent(callPtr(fnEventGetPointerEvent, uintptr(e)))
}

func EventGetTouchEvent(e Event) TouchEvent {
	return TouchEvent(callPtr(fnEventGetTouchEvent, uintptr(e)))
}

func EventGetGestureEvent(e Event) GestureEvent {
	return GestureEvent(callPtr(fnEventGetGestureEvent, uintptr(e)))
}

func EventGetSwitchEvent(e Event) SwitchEvent {
	return SwitchEvent(callPtr(fnEventGetSwitchEvent, uintptr(e)))
}

func EventGetTabletPadEvent(e Event) TabletPadEvent {
	return TabletPadEvent(callPtr(fnEventGetTabletPadEvent, uintptr(e)))
}

func EventGetTabletToolEvent(e Event) TabletToolEvent {
	return TabletToolEvent(callPtr(fnEventGetTabletToolEvent, uintptr(e)))
}

func DeviceNotifyGetBaseEvent(e DeviceNotifyEvent) Event {
	return Event(callPtr(fnDeviceNotifyGetBaseEvent, uintptr(e)))
}

func KeyboardGetBaseEvent(e KeyboardEvent) Event {
	return Event(callPtr(fnKeyboardGetBaseEvent, uintptr(e)))
}

func PointerGetBaseEvent(e PointerEvent) Event {
	return Event(callPtr(fnPointerGetBaseEvent, uintptr(e)))
}

func TouchGetBaseEvent(e TouchEvent) Event {
	return Event(callPtr(fnTouchGetBaseEvent, uintptr(e)))
}

func GestureGetBaseEvent(e GestureEvent) Event {
	return Event(callPtr(fnGestureGetBaseEvent, uintptr(e)))
}

func SwitchGetBaseEvent(e SwitchEvent) Event {
	return Event(callPtr(fnSwitchGetBaseEvent, uintptr(e)))
}

func TabletPadGetBaseEvent(e TabletPadEvent) Event {
	return Event(callPtr(fnTabletPadGetBaseEvent, uintptr(e)))
}

func TabletToolGetBaseEvent(e TabletToolEvent) Event {
	return Event(callPtr(fnTabletToolGetBaseEvent, uintptr(e)))
}
