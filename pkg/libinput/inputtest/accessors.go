/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package inputtest

import "github.com/verdiwm/colpetto/pkg/libinput"

// narrow returns the sub-event pointer when the event belongs to cat. Sub
// pointers share the value of the base pointer.
func (e *Engine) narrow(raw libinput.RawEvent, cat libinput.Category, op string) uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev := e.event(raw, op)
	if ev == nil || libinput.EventType(ev.typ).Category() != cat {
		return 0
	}
	return uintptr(ev.id)
}

func (e *Engine) sub(raw uintptr, cat libinput.Category, op string) *eventState {
	ev := e.event(libinput.RawEvent(raw), op)
	if ev == nil {
		return nil
	}
	if libinput.EventType(ev.typ).Category() != cat {
		e.violate("%s on %s event %#x", op, libinput.EventType(ev.typ), raw)
		return nil
	}
	return ev
}

func (e *Engine) widen(raw uintptr, cat libinput.Category, op string) libinput.RawEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ev := e.sub(raw, cat, op); ev != nil {
		return ev.id
	}
	return 0
}

func get[S ~uintptr, T any](e *Engine, raw S, cat libinput.Category, op string, f func(*Values) T) T {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero T
	ev := e.sub(uintptr(raw), cat, op)
	if ev == nil {
		return zero
	}
	return f(&ev.values)
}

func msec(v *Values) uint32 { return uint32(v.TimeUsec / 1000) }
func usec(v *Values) uint64 { return v.TimeUsec }
func state(v *Values) int32 { return v.State }

func (e *Engine) EventGetDeviceNotifyEvent(raw libinput.RawEvent) libinput.RawDeviceNotifyEvent {
	return libinput.RawDeviceNotifyEvent(e.narrow(raw, libinput.CategoryDevice, "get_device_notify_event"))
}

func (e *Engine) DeviceNotifyGetBaseEvent(raw libinput.RawDeviceNotifyEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryDevice, "device_notify_get_base_event")
}

func (e *Engine) EventGetKeyboardEvent(raw libinput.RawEvent) libinput.RawKeyboardEvent {
	return libinput.RawKeyboardEvent(e.narrow(raw, libinput.CategoryKeyboard, "get_keyboard_event"))
}

func (e *Engine) KeyboardGetBaseEvent(raw libinput.RawKeyboardEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryKeyboard, "keyboard_get_base_event")
}

func (e *Engine) EventGetPointerEvent(raw libinput.RawEvent) libinput.RawPointerEvent {
	return libinput.RawPointerEvent(e.narrow(raw, libinput.CategoryPointer, "get_pointer_event"))
}

func (e *Engine) PointerGetBaseEvent(raw libinput.RawPointerEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryPointer, "pointer_get_base_event")
}

func (e *Engine) EventGetTouchEvent(raw libinput.RawEvent) libinput.RawTouchEvent {
	return libinput.RawTouchEvent(e.narrow(raw, libinput.CategoryTouch, "get_touch_event"))
}

func (e *Engine) TouchGetBaseEvent(raw libinput.RawTouchEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryTouch, "touch_get_base_event")
}

func (e *Engine) EventGetGestureEvent(raw libinput.RawEvent) libinput.RawGestureEvent {
	return libinput.RawGestureEvent(e.narrow(raw, libinput.CategoryGesture, "get_gesture_event"))
}

func (e *Engine) GestureGetBaseEvent(raw libinput.RawGestureEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryGesture, "gesture_get_base_event")
}

func (e *Engine) EventGetSwitchEvent(raw libinput.RawEvent) libinput.RawSwitchEvent {
	return libinput.RawSwitchEvent(e.narrow(raw, libinput.CategorySwitch, "get_switch_event"))
}

func (e *Engine) SwitchGetBaseEvent(raw libinput.RawSwitchEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategorySwitch, "switch_get_base_event")
}

func (e *Engine) EventGetTabletPadEvent(raw libinput.RawEvent) libinput.RawTabletPadEvent {
	return libinput.RawTabletPadEvent(e.narrow(raw, libinput.CategoryTabletPad, "get_tablet_pad_event"))
}

func (e *Engine) TabletPadGetBaseEvent(raw libinput.RawTabletPadEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryTabletPad, "tablet_pad_get_base_event")
}

func (e *Engine) EventGetTabletToolEvent(raw libinput.RawEvent) libinput.RawTabletToolEvent {
	return libinput.RawTabletToolEvent(e.narrow(raw, libinput.CategoryTabletTool, "get_tablet_tool_event"))
}

func (e *Engine) TabletToolGetBaseEvent(raw libinput.RawTabletToolEvent) libinput.RawEvent {
	return e.widen(uintptr(raw), libinput.CategoryTabletTool, "tablet_tool_get_base_event")
}

func (e *Engine) KeyboardGetTime(raw libinput.RawKeyboardEvent) uint32 {
	return get(e, raw, libinput.CategoryKeyboard, "keyboard_get_time", msec)
}

func (e *Engine) KeyboardGetTimeUsec(raw libinput.RawKeyboardEvent) uint64 {
	return get(e, raw, libinput.CategoryKeyboard, "keyboard_get_time_usec", usec)
}

func (e *Engine) KeyboardGetKey(raw libinput.RawKeyboardEvent) uint32 {
	return get(e, raw, libinput.CategoryKeyboard, "keyboard_get_key", func(v *Values) uint32 { return v.Key })
}

func (e *Engine) KeyboardGetKeyState(raw libinput.RawKeyboardEvent) int32 {
	return get(e, raw, libinput.CategoryKeyboard, "keyboard_get_key_state", state)
}

func (e *Engine) KeyboardGetSeatKeyCount(raw libinput.RawKeyboardEvent) uint32 {
	return get(e, raw, libinput.CategoryKeyboard, "keyboard_get_seat_key_count", func(v *Values) uint32 { return v.SeatCount })
}

func (e *Engine) PointerGetTime(raw libinput.RawPointerEvent) uint32 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_time", msec)
}

func (e *Engine) PointerGetTimeUsec(raw libinput.RawPointerEvent) uint64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_time_usec", usec)
}

func (e *Engine) PointerGetDx(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_dx", func(v *Values) float64 { return v.Dx })
}

func (e *Engine) PointerGetDy(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_dy", func(v *Values) float64 { return v.Dy })
}

func (e *Engine) PointerGetDxUnaccelerated(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_dx_unaccelerated", func(v *Values) float64 { return v.DxUnaccelerated })
}

func (e *Engine) PointerGetDyUnaccelerated(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_dy_unaccelerated", func(v *Values) float64 { return v.DyUnaccelerated })
}

func (e *Engine) PointerGetAbsoluteX(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_absolute_x", func(v *Values) float64 { return v.X })
}

func (e *Engine) PointerGetAbsoluteY(raw libinput.RawPointerEvent) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_absolute_y", func(v *Values) float64 { return v.Y })
}

func (e *Engine) PointerGetAbsoluteXTransformed(raw libinput.RawPointerEvent, width uint32) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_absolute_x_transformed", func(v *Values) float64 { return v.X / 100 * float64(width) })
}

func (e *Engine) PointerGetAbsoluteYTransformed(raw libinput.RawPointerEvent, height uint32) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_absolute_y_transformed", func(v *Values) float64 { return v.Y / 100 * float64(height) })
}

func (e *Engine) PointerGetButton(raw libinput.RawPointerEvent) uint32 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_button", func(v *Values) uint32 { return v.Button })
}

func (e *Engine) PointerGetButtonState(raw libinput.RawPointerEvent) int32 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_button_state", state)
}

func (e *Engine) PointerGetSeatButtonCount(raw libinput.RawPointerEvent) uint32 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_seat_button_count", func(v *Values) uint32 { return v.SeatCount })
}

func (e *Engine) PointerHasAxis(raw libinput.RawPointerEvent, axis int32) bool {
	return get(e, raw, libinput.CategoryPointer, "pointer_has_axis", func(v *Values) bool {
		_, ok := v.Scroll[libinput.Axis(axis)]
		return ok
	})
}

func (e *Engine) PointerGetScrollValue(raw libinput.RawPointerEvent, axis int32) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_scroll_value", func(v *Values) float64 { return v.Scroll[libinput.Axis(axis)] })
}

func (e *Engine) PointerGetScrollValueV120(raw libinput.RawPointerEvent, axis int32) float64 {
	return get(e, raw, libinput.CategoryPointer, "pointer_get_scroll_value_v120", func(v *Values) float64 { return v.ScrollV120[libinput.Axis(axis)] })
}

func (e *Engine) TouchGetTime(raw libinput.RawTouchEvent) uint32 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_time", msec)
}

func (e *Engine) TouchGetTimeUsec(raw libinput.RawTouchEvent) uint64 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_time_usec", usec)
}

func (e *Engine) TouchGetSlot(raw libinput.RawTouchEvent) int32 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_slot", func(v *Values) int32 { return v.Slot })
}

func (e *Engine) TouchGetSeatSlot(raw libinput.RawTouchEvent) int32 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_seat_slot", func(v *Values) int32 { return v.SeatSlot })
}

func (e *Engine) TouchGetX(raw libinput.RawTouchEvent) float64 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_x", func(v *Values) float64 { return v.X })
}

func (e *Engine) TouchGetY(raw libinput.RawTouchEvent) float64 {
	return get(e, raw, libinput.CategoryTouch, "touch_get_y", func(v *Values) float64 { return v.Y })
}

func (e *Engine) GestureGetTime(raw libinput.RawGestureEvent) uint32 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_time", msec)
}

func (e *Engine) GestureGetTimeUsec(raw libinput.RawGestureEvent) uint64 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_time_usec", usec)
}

func (e *Engine) GestureGetFingerCount(raw libinput.RawGestureEvent) int32 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_finger_count", func(v *Values) int32 { return v.FingerCount })
}

func (e *Engine) GestureGetCancelled(raw libinput.RawGestureEvent) bool {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_cancelled", func(v *Values) bool { return v.Cancelled })
}

func (e *Engine) GestureGetDx(raw libinput.RawGestureEvent) float64 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_dx", func(v *Values) float64 { return v.Dx })
}

func (e *Engine) GestureGetDy(raw libinput.RawGestureEvent) float64 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_dy", func(v *Values) float64 { return v.Dy })
}

func (e *Engine) GestureGetScale(raw libinput.RawGestureEvent) float64 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_scale", func(v *Values) float64 { return v.Scale })
}

func (e *Engine) GestureGetAngleDelta(raw libinput.RawGestureEvent) float64 {
	return get(e, raw, libinput.CategoryGesture, "gesture_get_angle_delta", func(v *Values) float64 { return v.AngleDelta })
}

func (e *Engine) SwitchGetSwitch(raw libinput.RawSwitchEvent) int32 {
	return get(e, raw, libinput.CategorySwitch, "switch_get_switch", func(v *Values) int32 { return v.Switch })
}

func (e *Engine) SwitchGetSwitchState(raw libinput.RawSwitchEvent) int32 {
	return get(e, raw, libinput.CategorySwitch, "switch_get_switch_state", state)
}

func (e *Engine) SwitchGetTime(raw libinput.RawSwitchEvent) uint32 {
	return get(e, raw, libinput.CategorySwitch, "switch_get_time", msec)
}

func (e *Engine) SwitchGetTimeUsec(raw libinput.RawSwitchEvent) uint64 {
	return get(e, raw, libinput.CategorySwitch, "switch_get_time_usec", usec)
}

func (e *Engine) TabletPadGetTime(raw libinput.RawTabletPadEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_time", msec)
}

func (e *Engine) TabletPadGetTimeUsec(raw libinput.RawTabletPadEvent) uint64 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_time_usec", usec)
}

func (e *Engine) TabletPadGetButtonNumber(raw libinput.RawTabletPadEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_button_number", func(v *Values) uint32 { return v.Button })
}

func (e *Engine) TabletPadGetButtonState(raw libinput.RawTabletPadEvent) int32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_button_state", state)
}

func (e *Engine) TabletPadGetRingPosition(raw libinput.RawTabletPadEvent) float64 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_ring_position", func(v *Values) float64 { return v.Ring })
}

func (e *Engine) TabletPadGetStripPosition(raw libinput.RawTabletPadEvent) float64 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_strip_position", func(v *Values) float64 { return v.Strip })
}

func (e *Engine) TabletPadGetKey(raw libinput.RawTabletPadEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_key", func(v *Values) uint32 { return v.Key })
}

func (e *Engine) TabletPadGetKeyState(raw libinput.RawTabletPadEvent) int32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_key_state", state)
}

func (e *Engine) TabletPadGetMode(raw libinput.RawTabletPadEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_mode", func(v *Values) uint32 { return v.Mode })
}

func (e *Engine) TabletPadGetDialDelta(raw libinput.RawTabletPadEvent) float64 {
	return get(e, raw, libinput.CategoryTabletPad, "tablet_pad_get_dial_delta_v120", func(v *Values) float64 { return v.Dial })
}

func (e *Engine) TabletToolGetTime(raw libinput.RawTabletToolEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_time", msec)
}

func (e *Engine) TabletToolGetTimeUsec(raw libinput.RawTabletToolEvent) uint64 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_time_usec", usec)
}

func (e *Engine) TabletToolGetX(raw libinput.RawTabletToolEvent) float64 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_x", func(v *Values) float64 { return v.X })
}

func (e *Engine) TabletToolGetY(raw libinput.RawTabletToolEvent) float64 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_y", func(v *Values) float64 { return v.Y })
}

func (e *Engine) TabletToolGetPressure(raw libinput.RawTabletToolEvent) float64 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_pressure", func(v *Values) float64 { return v.Pressure })
}

func (e *Engine) TabletToolGetTipState(raw libinput.RawTabletToolEvent) int32 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_tip_state", state)
}

func (e *Engine) TabletToolGetButton(raw libinput.RawTabletToolEvent) uint32 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_button", func(v *Values) uint32 { return v.Button })
}

func (e *Engine) TabletToolGetButtonState(raw libinput.RawTabletToolEvent) int32 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_button_state", state)
}

func (e *Engine) TabletToolGetProximityState(raw libinput.RawTabletToolEvent) int32 {
	return get(e, raw, libinput.CategoryTabletTool, "tablet_tool_get_proximity_state", state)
}
