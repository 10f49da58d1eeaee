/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var gestureCategory = category[RawGestureEvent]{
	kind:   CategoryGesture,
	narrow: Native.EventGetGestureEvent,
	widen:  Native.GestureGetBaseEvent,
}

// GestureEvent is implemented by gesture events.
type GestureEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	FingerCount() int32
	gestureEvent()
}

type gestureBase struct {
	leaf[RawGestureEvent]
}

func (*gestureBase) gestureEvent() {}

func (e *gestureBase) Time() uint32     { return with(&e.handle, Native.GestureGetTime) }
func (e *gestureBase) TimeUsec() uint64 { return with(&e.handle, Native.GestureGetTimeUsec) }

// FingerCount returns the number of fingers in the gesture.
func (e *gestureBase) FingerCount() int32 { return with(&e.handle, Native.GestureGetFingerCount) }

type gestureDelta struct{ gestureBase }

// Dx returns the accelerated delta of the logical center.
func (e *gestureDelta) Dx() float64 { return with(&e.handle, Native.GestureGetDx) }
func (e *gestureDelta) Dy() float64 { return with(&e.handle, Native.GestureGetDy) }

type gestureEnd struct{ gestureBase }

// Cancelled reports whether the gesture ended abnormally.
func (e *gestureEnd) Cancelled() bool { return with(&e.handle, Native.GestureGetCancelled) }

func gestureScale(e *gestureBase) float64 { return with(&e.handle, Native.GestureGetScale) }

type GestureSwipeBegin struct{ gestureBase }

type GestureSwipeUpdate struct{ gestureDelta }

type GestureSwipeEnd struct{ gestureEnd }

type GesturePinchBegin struct{ gestureBase }

// Scale is 1.0 at the beginning of a pinch.
func (e *GesturePinchBegin) Scale() float64 { return gestureScale(&e.gestureBase) }

type GesturePinchUpdate struct{ gestureDelta }

// Scale returns the distance between the fingers relative to the start of
// the gesture.
func (e *GesturePinchUpdate) Scale() float64 { return gestureScale(&e.gestureBase) }

// AngleDelta returns the rotation since the previous event, in degrees
// clockwise.
func (e *GesturePinchUpdate) AngleDelta() float64 {
	return with(&e.handle, Native.GestureGetAngleDelta)
}

type GesturePinchEnd struct{ gestureEnd }

func (e *GesturePinchEnd) Scale() float64 { return gestureScale(&e.gestureBase) }

type GestureHoldBegin struct{ gestureBase }

type GestureHoldEnd struct{ gestureEnd }
