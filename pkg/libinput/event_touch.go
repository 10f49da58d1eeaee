/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var touchCategory = category[RawTouchEvent]{
	kind:   CategoryTouch,
	narrow: Native.EventGetTouchEvent,
	widen:  Native.TouchGetBaseEvent,
}

// TouchEvent is implemented by touch events.
type TouchEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	touchEvent()
}

type touchBase struct {
	leaf[RawTouchEvent]
}

func (*touchBase) touchEvent() {}

func (e *touchBase) Time() uint32     { return with(&e.handle, Native.TouchGetTime) }
func (e *touchBase) TimeUsec() uint64 { return with(&e.handle, Native.TouchGetTimeUsec) }

type touchSlot struct{ touchBase }

// Slot returns the device slot of the touch point.
func (e *touchSlot) Slot() int32 { return with(&e.handle, Native.TouchGetSlot) }

// SeatSlot returns a slot unique across all devices of the seat.
func (e *touchSlot) SeatSlot() int32 { return with(&e.handle, Native.TouchGetSeatSlot) }

type touchPosition struct{ touchSlot }

// X returns the position in mm from the top left corner of the device.
func (e *touchPosition) X() float64 { return with(&e.handle, Native.TouchGetX) }
func (e *touchPosition) Y() float64 { return with(&e.handle, Native.TouchGetY) }

type TouchDown struct{ touchPosition }

type TouchUp struct{ touchSlot }

type TouchMotion struct{ touchPosition }

type TouchCancel struct{ touchSlot }

// TouchFrame ends a set of touch events that belong to the same hardware
// frame.
type TouchFrame struct{ touchBase }
