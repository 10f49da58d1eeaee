/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "github.com/jupiterrider/ffi"

// Key, button and tablet tool states.
const (
	StateReleased int32 = 0
	StatePressed  int32 = 1

	TipUp   int32 = 0
	TipDown int32 = 1

	ProximityOut int32 = 0
	ProximityIn  int32 = 1
)

// Pointer axes.
const (
	AxisScrollVertical   int32 = 0
	AxisScrollHorizontal int32 = 1
)

// Switches and their states.
const (
	SwitchLid        int32 = 1
	SwitchTabletMode int32 = 2

	SwitchStateOff int32 = 0
	SwitchStateOn  int32 = 1
)

var (
	fnKeyboardGetTime         ffi.Fun
	fnKeyboardGetTimeUsec     ffi.Fun
	fnKeyboardGetKey          ffi.Fun
	fnKeyboardGetKeyState     ffi.Fun
	fnKeyboardGetSeatKeyCount ffi.Fun

	fnPointerGetTime                 ffi.Fun
	fnPointerGetTimeUsec             ffi.Fun
	fnPointerGetDx                   ffi.Fun
	fnPointerGetDy                   ffi.Fun
	fnPointerGetDxUnaccelerated      ffi.Fun
	fnPointerGetDyUnaccelerated      ffi.Fun
	fnPointerGetAbsoluteX            ffi.Fun
	fnPointerGetAbsoluteY            ffi.Fun
	fnPointerGetAbsoluteXTransformed ffi.Fun
	fnPointerGetAbsoluteYTransformed ffi.Fun
	fnPointerGetButton               ffi.Fun
	fnPointerGetButtonState          ffi.Fun
	fnPointerGetSeatButtonCount      ffi.Fun
	fnPointerHasAxis                 ffi.Fun
	fnPointerGetScrollValue          ffi.Fun // optional, libinput >= 1.19
	fnPointerGetScrollValueV120      ffi.Fun // optional, libinput >= 1.19

	fnTouchGetTime     ffi.Fun
	fnTouchGetTimeUsec ffi.Fun
	fnTouchGetSlot     ffi.Fun
	fnTouchGetSeatSlot ffi.Fun
	fnTouchGetX        ffi.Fun
	fnTouchGetY        ffi.Fun

	fnGestureGetTime        ffi.Fun
	fnGestureGetTimeUsec    ffi.Fun
	fnGestureGetFingerCount ffi.Fun
	fnGestureGetCancelled   ffi.Fun
	fnGestureGetDx          ffi.Fun
	fnGestureGetDy          ffi.Fun
	fnGestureGetScale       ffi.Fun
	fnGestureGetAngleDelta  ffi.Fun

	fnSwitchGetSwitch      ffi.Fun
	fnSwitchGetSwitchState ffi.Fun
	fnSwitchGetTime        ffi.Fun
	fnSwitchGetTimeUsec    ffi.Fun

	fnTabletPadGetTime          ffi.Fun
	fnTabletPadGetTimeUsec      ffi.Fun
	fnTabletPadGetButtonNumber  ffi.Fun
	fnTabletPadGetButtonState   ffi.Fun
	fnTabletPadGetRingPosition  ffi.Fun
	fnTabletPadGetStripPosition ffi.Fun
	fnTabletPadGetKey           ffi.Fun
	fnTabletPadGetKeyState      ffi.Fun
	fnTabletPadGetMode          ffi.Fun
	fnTabletPadGetDialDelta     ffi.Fun // optional, libinput >= 1.26

	fnTabletToolGetTime           ffi.Fun
	fnTabletToolGetTimeUsec       ffi.Fun
	fnTabletToolGetX              ffi.Fun
	fnTabletToolGetY              ffi.Fun
	fnTabletToolGetPressure       ffi.Fun
	fnTabletToolGetTipState       ffi.Fun
	fnTabletToolGetButton         ffi.Fun
	fnTabletToolGetButtonState    ffi.Fun
	fnTabletToolGetProximityState ffi.Fun
)

func registerAccessorFunctions() error {
	u32, u64, i32, f64 := &ffi.TypeUint32, &ffi.TypeUint64, &ffi.TypeSint32, &ffi.TypeDouble
	return prepare(lib, []symbol{
		{&fnKeyboardGetTime, "libinput_event_keyboard_get_time", u32, argPtr},
		{&fnKeyboardGetTimeUsec, "libinput_event_keyboard_get_time_usec", u64, argPtr},
		{&fnKeyboardGetKey, "libinput_event_keyboard_get_key", u32, argPtr},
		{&fnKeyboardGetKeyState, "libinput_event_keyboard_get_key_state", i32, argPtr},
		{&fnKeyboardGetSeatKeyCount, "libinput_event_keyboard_get_seat_key_count", u32, argPtr},

		{&fnPointerGetTime, "libinput_event_pointer_get_time", u32, argPtr},
		{&fnPointerGetTimeUsec, "libinput_event_pointer_get_time_usec", u64, argPtr},
		{&fnPointerGetDx, "libinput_event_pointer_get_dx", f64, argPtr},
		{&fnPointerGetDy, "libinput_event_pointer_get_dy", f64, argPtr},
		{&fnPointerGetDxUnaccelerated, "libinput_event_pointer_get_dx_unaccelerated", f64, argPtr},
		{&fnPointerGetDyUnaccelerated, "libinput_event_pointer_get_dy_unaccelerated", f64, argPtr},
		{&fnPointerGetAbsoluteX, "libinput_event_pointer_get_absolute_x", f64, argPtr},
		{&fnPointerGetAbsoluteY, "libinput_event_pointer_get_absolute_y", f64, argPtr},
		{&fnPointerGetAbsoluteXTransformed, "libinput_event_pointer_get_absolute_x_transformed", f64, argPtrU32},
		{&fnPointerGetAbsoluteYTransformed, "libinput_event_pointer_get_absolute_y_transformed", f64, argPtrU32},
		{&fnPointerGetButton, "libinput_event_pointer_get_button", u32, argPtr},
		{&fnPointerGetButtonState, "libinput_event_pointer_get_button_state", i32, argPtr},
		{&fnPointerGetSeatButtonCount, "libinput_event_pointer_get_seat_button_count", u32, argPtr},
		{&fnPointerHasAxis, "libinput_event_pointer_has_axis", i32, argPtrI32},

		{&fnTouchGetTime, "libinput_event_touch_get_time", u32, argPtr},
		{&fnTouchGetTimeUsec, "libinput_event_touch_get_time_usec", u64, argPtr},
		{&fnTouchGetSlot, "libinput_event_touch_get_slot", i32, argPtr},
		{&fnTouchGetSeatSlot, "libinput_event_touch_get_seat_slot", i32, argPtr},
		{&fnTouchGetX, "libinput_event_touch_get_x", f64, argPtr},
		{&fnTouchGetY, "libinput_event_touch_get_y", f64, argPtr},

		{&fnGestureGetTime, "libinput_event_gesture_get_time", u32, argPtr},
		{&fnGestureGetTimeUsec, "libinput_event_gesture_get_time_usec", u64, argPtr},
		{&fnGestureGetFingerCount, "libinput_event_gesture_get_finger_count", i32, argPtr},
		{&fnGestureGetCancelled, "libinput_event_gesture_get_cancelled", i32, argPtr},
		{&fnGestureGetDx, "libinput_event_gesture_get_dx", f64, argPtr},
		{&fnGestureGetDy, "libinput_event_gesture_get_dy", f64, argPtr},
		{&fnGestureGetScale, "libinput_event_gesture_get_scale", f64, argPtr},
		{&fnGestureGetAngleDelta, "libinput_event_gesture_get_angle_delta", f64, argPtr},

		{&fnSwitchGetSwitch, "libinput_event_switch_get_switch", i32, argPtr},
		{&fnSwitchGetSwitchState, "libinput_event_switch_get_switch_state", i32, argPtr},
		{&fnSwitchGetTime, "libinput_event_switch_get_time", u32, argPtr},
		{&fnSwitchGetTimeUsec, "libinput_event_switch_get_time_usec", u64, argPtr},

		{&fnTabletPadGetTime, "libinput_event_tablet_pad_get_time", u32, argPtr},
		{&fnTabletPadGetTimeUsec, "libinput_event_tablet_pad_get_time_usec", u64, argPtr},
		{&fnTabletPadGetButtonNumber, "libinput_event_tablet_pad_get_button_number", u32, argPtr},
		{&fnTabletPadGetButtonState, "libinput_event_tablet_pad_get_button_state", i32, argPtr},
		{&fnTabletPadGetRingPosition, "libinput_event_tablet_pad_get_ring_position", f64, argPtr},
		{&fnTabletPadGetStripPosition, "libinput_event_tablet_pad_get_strip_position", f64, argPtr},
		{&fnTabletPadGetKey, "libinput_event_tablet_pad_get_key", u32, argPtr},
		{&fnTabletPadGetKeyState, "libinput_event_tablet_pad_get_key_state", i32, argPtr},
		{&fnTabletPadGetMode, "libinput_event_tablet_pad_get_mode", u32, argPtr},

		{&fnTabletToolGetTime, "libinput_event_tablet_tool_get_time", u32, argPtr},
		{&fnTabletToolGetTimeUsec, "libinput_event_tablet_tool_get_time_usec", u64, argPtr},
		{&fnTabletToolGetX, "libinput_event_tablet_tool_get_x", f64, argPtr},
		{&fnTabletToolGetY, "libinput_event_tablet_tool_get_y", f64, argPtr},
		{&fnTabletToolGetPressure, "libinput_event_tablet_tool_get_pressure", f64, argPtr},
		{&fnTabletToolGetTipState, "libinput_event_tablet_tool_get_tip_state", i32, argPtr},
		{&fnTabletToolGetButton, "libinput_event_tablet_tool_get_button", u32, argPtr},
		{&fnTabletToolGetButtonState, "libinput_event_tablet_tool_get_button_state", i32, argPtr},
		{&fnTabletToolGetProximityState, "libinput_event_tablet_tool_get_proximity_state", i32, argPtr},
	})
}

func registerOptionalFunctions() {
	prepareOptional(lib, []symbol{
		{&fnPointerGetScrollValue, "libinput_event_pointer_get_scroll_value", &ffi.TypeDouble, argPtrI32},
		{&fnPointerGetScrollValueV120, "libinput_event_pointer_get_scroll_value_v120", &ffi.TypeDouble, argPtrI32},
		{&fnTabletPadGetDialDelta, "libinput_event_tablet_pad_get_dial_delta_v120", &ffi.TypeDouble, argPtr},
	})
}

// HasScrollValue reports whether the loaded libinput exports the scroll
// value accessors.
func HasScrollValue() bool { return fnPointerGetScrollValue.Addr != 0 }

// HasDialDelta reports whether the loaded libinput supports tablet pad dials.
func HasDialDelta() bool { return fnTabletPadGetDialDelta.Addr != 0 }

// Keyboard

func KeyboardGetTime(e KeyboardEvent) uint32     { return callU32(fnKeyboardGetTime, uintptr(e)) }
func KeyboardGetTimeUsec(e KeyboardEvent) uint64 { return callU64(fnKeyboardGetTimeUsec, uintptr(e)) }
func KeyboardGetKey(e KeyboardEvent) uint32      { return callU32(fnKeyboardGetKey, uintptr(e)) }
func KeyboardGetKeyState(e KeyboardEvent) int32  { return callI32(fnKeyboardGetKeyState, uintptr(e)) }
func KeyboardGetSeatKeyCount(e KeyboardEvent) uint32 {
	return callU32(fnKeyboardGetSeatKeyCount, uintptr(e))
}

// Pointer

func PointerGetTime(e PointerEvent) uint32     { return callU32(fnPointerGetTime, uintptr(e)) }
func PointerGetTimeUsec(e PointerEvent) uint64 { return callU64(fnPointerGetTimeUsec, uintptr(e)) }
func PointerGetDx(e PointerEvent) float64      { return callF64(fnPointerGetDx, uintptr(e)) }
func PointerGetDy(e PointerEvent) float64      { return callF64(fnPointerGetDy, uintptr(e)) }
func PointerGetDxUnaccelerated(e PointerEvent) float64 {
	return callF64(fnPointerGetDxUnaccelerated, uintptr(e))
}
func PointerGetDyUnaccelerated(e PointerEvent) float64 {
	return callF64(fnPointerGetDyUnaccelerated, uintptr(e))
}
func PointerGetAbsoluteX(e PointerEvent) float64 { return callF64(fnPointerGetAbsoluteX, uintptr(e)) }
func PointerGetAbsoluteY(e PointerEvent) float64 { return callF64(fnPointerGetAbsoluteY, uintptr(e)) }
func PointerGetAbsoluteXTransformed(e PointerEvent, width uint32) float64 {
	return callF64U32(fnPointerGetAbsoluteXTransformed, uintptr(e), width)
}
func PointerGetAbsoluteYTransformed(e PointerEvent, height uint32) float64 {
	return callF64U32(fnPointerGetAbsoluteYTransformed, uintptr(e), height)
}
func PointerGetButton(e PointerEvent) uint32 { return callU32(fnPointerGetButton, uintptr(e)) }
func PointerGetButtonState(e PointerEvent) int32 {
	return callI32(fnPointerGetButtonState, uintptr(e))
}
func PointerGetSeatButtonCount(e PointerEvent) uint32 {
	return callU32(fnPointerGetSeatButtonCount, uintptr(e))
}
func PointerHasAxis(e PointerEvent, axis int32) bool {
	return callI32Arg(fnPointerHasAxis, uintptr(e), axis) != 0
}

// PointerGetScrollValue returns 0 when the symbol is unavailable.
func PointerGetScrollValue(e PointerEvent, axis int32) float64 {
	if fnPointerGetScrollValue.Addr == 0 {
		return 0
	}
	return callF64Arg(fnPointerGetScrollValue, uintptr(e), axis)
}

// PointerGetScrollValueV120 returns 0 when the symbol is unavailable.
func PointerGetScrollValueV120(e PointerEvent, axis int32) float64 {
	if fnPointerGetScrollValueV120.Addr == 0 {
		return 0
	}
	return callF64Arg(fnPointerGetScrollValueV120, uintptr(e), axis)
}

// Touch

func TouchGetTime(e TouchEvent) uint32     { return callU32(fnTouchGetTime, uintptr(e)) }
func TouchGetTimeUsec(e TouchEvent) uint64 { return callU64(fnTouchGetTimeUsec, uintptr(e)) }
func TouchGetSlot(e TouchEvent) int32      { return callI32(fnTouchGetSlot, uintptr(e)) }
func TouchGetSeatSlot(e TouchEvent) int32  { return callI32(fnTouchGetSeatSlot, uintptr(e)) }
func TouchGetX(e TouchEvent) float64       { return callF64(fnTouchGetX, uintptr(e)) }
func TouchGetY(e TouchEvent) float64       { return callF64(fnTouchGetY, uintptr(e)) }

// Gesture

func GestureGetTime(e GestureEvent) uint32     { return callU32(fnGestureGetTime, uintptr(e)) }
func GestureGetTimeUsec(e GestureEvent) uint64 { return callU64(fnGestureGetTimeUsec, uintptr(e)) }
func GestureGetFingerCount(e GestureEvent) int32 {
	return callI32(fnGestureGetFingerCount, uintptr(e))
}
func GestureGetCancelled(e GestureEvent) bool {
	return callI32(fnGestureGetCancelled, uintptr(e)) != 0
}
func GestureGetDx(e GestureEvent) float64    { return callF64(fnGestureGetDx, uintptr(e)) }
func GestureGetDy(e GestureEvent) float64    { return callF64(fnGestureGetDy, uintptr(e)) }
func GestureGetScale(e GestureEvent) float64 { return callF64(fnGestureGetScale, uintptr(e)) }
func GestureGetAngleDelta(e GestureEvent) float64 {
	return callF64(fnGestureGetAngleDelta, uintptr(e))
}

// Switch

func SwitchGetSwitch(e SwitchEvent) int32 { return callI32(fnSwitchGetSwitch, uintptr(e)) }
func SwitchGetSwitchState(e SwitchEvent) int32 {
	return callI32(fnSwitchGetSwitchState, uintptr(e))
}
func SwitchGetTime(e SwitchEvent) uint32     { return callU32(fnSwitchGetTime, uintptr(e)) }
func SwitchGetTimeUsec(e SwitchEvent) uint64 { return callU64(fnSwitchGetTimeUsec, uintptr(e)) }

// Tablet pad

func TabletPadGetTime(e TabletPadEvent) uint32 { return callU32(fnTabletPadGetTime, uintptr(e)) }
func TabletPadGetTimeUsec(e TabletPadEvent) uint64 {
	return callU64(fnTabletPadGetTimeUsec, uintptr(e))
}
func TabletPadGetButtonNumber(e TabletPadEvent) uint32 {
	return callU32(fnTabletPadGetButtonNumber, uintptr(e))
}
func TabletPadGetButtonState(e TabletPadEvent) int32 {
	return callI32(fnTabletPadGetButtonState, uintptr(e))
}
func TabletPadGetRingPosition(e TabletPadEvent) float64 {
	return callF64(fnTabletPadGetRingPosition, uintptr(e))
}
func TabletPadGetStripPosition(e TabletPadEvent) float64 {
	return callF64(fnTabletPadGetStripPosition, uintptr(e))
}
func TabletPadGetKey(e TabletPadEvent) uint32 { return callU32(fnTabletPadGetKey, uintptr(e)) }
func TabletPadGetKeyState(e TabletPadEvent) int32 {
	return callI32(fnTabletPadGetKeyState, uintptr(e))
}
func TabletPadGetMode(e TabletPadEvent) uint32 { return callU32(fnTabletPadGetMode, uintptr(e)) }

// TabletPadGetDialDelta returns 0 when the symbol is unavailable.
func TabletPadGetDialDelta(e TabletPadEvent) float64 {
	if fnTabletPadGetDialDelta.Addr == 0 {
		return 0
	}
	return callF64(fnTabletPadGetDialDelta, uintptr(e))
}

// Tablet tool

func TabletToolGetTime(e TabletToolEvent) uint32 { return callU32(fnTabletToolGetTime, uintptr(e)) }
func TabletToolGetTimeUsec(e TabletToolEvent) uint64 {
	return callU64(fnTabletToolGetTimeUsec, uintptr(e))
}
func TabletToolGetX(e TabletToolEvent) float64 { return callF64(fnTabletToolGetX, uintptr(e)) }
func TabletToolGetY(e TabletToolEvent) float64 { return callF64(fnTabletToolGetY, uintptr(e)) }
func TabletToolGetPressure(e TabletToolEvent) float64 {
	return callF64(fnTabletToolGetPressure, uintptr(e))
}
func TabletToolGetTipState(e TabletToolEvent) int32 {
	return callI32(fnTabletToolGetTipState, uintptr(e))
}
func TabletToolGetButton(e TabletToolEvent) uint32 {
	return callU32(fnTabletToolGetButton, uintptr(e))
}
func TabletToolGetButtonState(e TabletToolEvent) int32 {
	return callI32(fnTabletToolGetButtonState, uintptr(e))
}
func TabletToolGetProximityState(e TabletToolEvent) int32 {
	return callI32(fnTabletToolGetProximityState, uintptr(e))
}
