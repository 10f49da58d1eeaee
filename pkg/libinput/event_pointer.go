/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var pointerCategory = category[RawPointerEvent]{
	kind:   CategoryPointer,
	narrow: Native.EventGetPointerEvent,
	widen:  Native.PointerGetBaseEvent,
}

// PointerEvent is implemented by pointer events.
type PointerEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	pointerEvent()
}

type pointerBase struct {
	leaf[RawPointerEvent]
}

func (*pointerBase) pointerEvent() {}

func (e *pointerBase) Time() uint32     { return with(&e.handle, Native.PointerGetTime) }
func (e *pointerBase) TimeUsec() uint64 { return with(&e.handle, Native.PointerGetTimeUsec) }

// PointerMotion is a relative motion event.
type PointerMotion struct{ pointerBase }

// Dx returns the accelerated horizontal delta.
func (e *PointerMotion) Dx() float64 { return with(&e.handle, Native.PointerGetDx) }

// Dy returns the accelerated vertical delta.
func (e *PointerMotion) Dy() float64 { return with(&e.handle, Native.PointerGetDy) }

// DxUnaccelerated returns the raw horizontal delta in device units
// normalized to 1000 dpi.
func (e *PointerMotion) DxUnaccelerated() float64 {
	return with(&e.handle, Native.PointerGetDxUnaccelerated)
}

func (e *PointerMotion) DyUnaccelerated() float64 {
	return with(&e.handle, Native.PointerGetDyUnaccelerated)
}

// PointerMotionAbsolute is an absolute motion event, for example from a
// virtual machine pointer.
type PointerMotionAbsolute struct{ pointerBase }

// AbsoluteX returns the position in mm from the top left corner.
func (e *PointerMotionAbsolute) AbsoluteX() float64 {
	return with(&e.handle, Native.PointerGetAbsoluteX)
}

func (e *PointerMotionAbsolute) AbsoluteY() float64 {
	return with(&e.handle, Native.PointerGetAbsoluteY)
}

// AbsoluteXTransformed scales the position to a screen of the given width.
func (e *PointerMotionAbsolute) AbsoluteXTransformed(width uint32) float64 {
	return with(&e.handle, func(n Native, raw RawPointerEvent) float64 {
		return n.PointerGetAbsoluteXTransformed(raw, width)
	})
}

func (e *PointerMotionAbsolute) AbsoluteYTransformed(height uint32) float64 {
	return with(&e.handle, func(n Native, raw RawPointerEvent) float64 {
		return n.PointerGetAbsoluteYTransformed(raw, height)
	})
}

// PointerButton is a button press or release.
type PointerButton struct{ pointerBase }

// Button returns the button code (BTN_* in linux/input-event-codes.h).
func (e *PointerButton) Button() uint32 { return with(&e.handle, Native.PointerGetButton) }

func (e *PointerButton) ButtonState() ButtonState {
	return ButtonState(with(&e.handle, Native.PointerGetButtonState))
}

func (e *PointerButton) SeatButtonCount() uint32 {
	return with(&e.handle, Native.PointerGetSeatButtonCount)
}

// PointerAxis is the legacy scroll event, emitted alongside the
// PointerScroll* events.
type PointerAxis struct{ pointerBase }

func (e *PointerAxis) HasAxis(a Axis) bool { return hasAxis(&e.pointerBase, a) }

func hasAxis(e *pointerBase, a Axis) bool {
	return with(&e.handle, func(n Native, raw RawPointerEvent) bool {
		return n.PointerHasAxis(raw, int32(a))
	})
}

// pointerScroll carries the accessors shared by the scroll events.
type pointerScroll struct{ pointerBase }

// HasAxis reports whether the event carries a value for the axis.
func (e *pointerScroll) HasAxis(a Axis) bool { return hasAxis(&e.pointerBase, a) }

// ScrollValue returns the scroll distance on the axis. It is 0 when the
// axis is not set or the loaded libinput lacks the accessor.
func (e *pointerScroll) ScrollValue(a Axis) float64 {
	return with(&e.handle, func(n Native, raw RawPointerEvent) float64 {
		return n.PointerGetScrollValue(raw, int32(a))
	})
}

// ScrollValueV120 returns the wheel movement in fractions of 120 per
// detent.
func (e *pointerScroll) ScrollValueV120(a Axis) float64 {
	return with(&e.handle, func(n Native, raw RawPointerEvent) float64 {
		return n.PointerGetScrollValueV120(raw, int32(a))
	})
}

// PointerScrollWheel is scrolling from a physical wheel.
type PointerScrollWheel struct{ pointerScroll }

// PointerScrollFinger is two-finger or edge scrolling on a touchpad.
type PointerScrollFinger struct{ pointerScroll }

// PointerScrollContinuous is scrolling from a continuous source such as
// button scrolling.
type PointerScrollContinuous struct{ pointerScroll }
