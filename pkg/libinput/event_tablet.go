/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var tabletToolCategory = category[RawTabletToolEvent]{
	kind:   CategoryTabletTool,
	narrow: Native.EventGetTabletToolEvent,
	widen:  Native.TabletToolGetBaseEvent,
}

var tabletPadCategory = category[RawTabletPadEvent]{
	kind:   CategoryTabletPad,
	narrow: Native.EventGetTabletPadEvent,
	widen:  Native.TabletPadGetBaseEvent,
}

// TabletToolEvent is implemented by tablet tool (stylus, eraser, ...)
// events.
type TabletToolEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	tabletToolEvent()
}

type tabletToolBase struct {
	leaf[RawTabletToolEvent]
}

func (*tabletToolBase) tabletToolEvent() {}

func (e *tabletToolBase) Time() uint32 { return with(&e.handle, Native.TabletToolGetTime) }
func (e *tabletToolBase) TimeUsec() uint64 {
	return with(&e.handle, Native.TabletToolGetTimeUsec)
}

// X returns the tool position in mm from the top left corner of the tablet.
func (e *tabletToolBase) X() float64 { return with(&e.handle, Native.TabletToolGetX) }
func (e *tabletToolBase) Y() float64 { return with(&e.handle, Native.TabletToolGetY) }

// Pressure is normalized to [0, 1].
func (e *tabletToolBase) Pressure() float64 { return with(&e.handle, Native.TabletToolGetPressure) }

type TabletToolAxis struct{ tabletToolBase }

type TabletToolProximity struct{ tabletToolBase }

func (e *TabletToolProximity) ProximityState() ProximityState {
	return ProximityState(with(&e.handle, Native.TabletToolGetProximityState))
}

type TabletToolTip struct{ tabletToolBase }

func (e *TabletToolTip) TipState() TipState {
	return TipState(with(&e.handle, Native.TabletToolGetTipState))
}

type TabletToolButton struct{ tabletToolBase }

func (e *TabletToolButton) Button() uint32 { return with(&e.handle, Native.TabletToolGetButton) }

func (e *TabletToolButton) ButtonState() ButtonState {
	return ButtonState(with(&e.handle, Native.TabletToolGetButtonState))
}

// TabletPadEvent is implemented by events from the buttons, rings, strips
// and dials of a tablet pad.
type TabletPadEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	Mode() uint32
	tabletPadEvent()
}

type tabletPadBase struct {
	leaf[RawTabletPadEvent]
}

func (*tabletPadBase) tabletPadEvent() {}

func (e *tabletPadBase) Time() uint32 { return with(&e.handle, Native.TabletPadGetTime) }
func (e *tabletPadBase) TimeUsec() uint64 {
	return with(&e.handle, Native.TabletPadGetTimeUsec)
}

// Mode returns the pad mode the event was generated in.
func (e *tabletPadBase) Mode() uint32 { return with(&e.handle, Native.TabletPadGetMode) }

type TabletPadButton struct{ tabletPadBase }

// ButtonNumber counts pad buttons from 0; it is not a BTN_* code.
func (e *TabletPadButton) ButtonNumber() uint32 {
	return with(&e.handle, Native.TabletPadGetButtonNumber)
}

func (e *TabletPadButton) ButtonState() ButtonState {
	return ButtonState(with(&e.handle, Native.TabletPadGetButtonState))
}

type TabletPadRing struct{ tabletPadBase }

// RingPosition returns the ring position in degrees, or -1 when the finger
// was lifted.
func (e *TabletPadRing) RingPosition() float64 {
	return with(&e.handle, Native.TabletPadGetRingPosition)
}

type TabletPadStrip struct{ tabletPadBase }

// StripPosition is normalized to [0, 1], or -1 when the finger was lifted.
func (e *TabletPadStrip) StripPosition() float64 {
	return with(&e.handle, Native.TabletPadGetStripPosition)
}

type TabletPadKey struct{ tabletPadBase }

func (e *TabletPadKey) Key() uint32 { return with(&e.handle, Native.TabletPadGetKey) }

func (e *TabletPadKey) KeyState() KeyState {
	return KeyState(with(&e.handle, Native.TabletPadGetKeyState))
}

type TabletPadDial struct{ tabletPadBase }

// DialDelta returns the dial movement in fractions of 120 per logical
// detent. It is 0 when the loaded libinput lacks dial support.
func (e *TabletPadDial) DialDelta() float64 {
	return with(&e.handle, Native.TabletPadGetDialDelta)
}
