/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var keyboardCategory = category[RawKeyboardEvent]{
	kind:   CategoryKeyboard,
	narrow: Native.EventGetKeyboardEvent,
	widen:  Native.KeyboardGetBaseEvent,
}

// KeyboardEvent is implemented by keyboard events.
type KeyboardEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	keyboardEvent()
}

type keyboardBase struct {
	leaf[RawKeyboardEvent]
}

func (*keyboardBase) keyboardEvent() {}

// Time returns the event time in milliseconds.
func (e *keyboardBase) Time() uint32 { return with(&e.handle, Native.KeyboardGetTime) }

// TimeUsec returns the event time in microseconds.
func (e *keyboardBase) TimeUsec() uint64 { return with(&e.handle, Native.KeyboardGetTimeUsec) }

// KeyboardKey is a key press or release.
type KeyboardKey struct{ keyboardBase }

// Key returns the kernel keycode (KEY_* in linux/input-event-codes.h).
func (e *KeyboardKey) Key() uint32 { return with(&e.handle, Native.KeyboardGetKey) }

func (e *KeyboardKey) KeyState() KeyState {
	return KeyState(with(&e.handle, Native.KeyboardGetKeyState))
}

// SeatKeyCount returns how many keyboards on the seat hold this key down,
// including this event.
func (e *KeyboardKey) SeatKeyCount() uint32 {
	return with(&e.handle, Native.KeyboardGetSeatKeyCount)
}
