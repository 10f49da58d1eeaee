/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var switchCategory = category[RawSwitchEvent]{
	kind:   CategorySwitch,
	narrow: Native.EventGetSwitchEvent,
	widen:  Native.SwitchGetBaseEvent,
}

// SwitchEvent is implemented by switch events.
type SwitchEvent interface {
	Event
	Time() uint32
	TimeUsec() uint64
	switchEvent()
}

type switchBase struct {
	leaf[RawSwitchEvent]
}

func (*switchBase) switchEvent() {}

func (e *switchBase) Time() uint32     { return with(&e.handle, Native.SwitchGetTime) }
func (e *switchBase) TimeUsec() uint64 { return with(&e.handle, Native.SwitchGetTimeUsec) }

// SwitchToggle reports a lid or tablet-mode switch changing state.
type SwitchToggle struct{ switchBase }

func (e *SwitchToggle) Switch() Switch { return Switch(with(&e.handle, Native.SwitchGetSwitch)) }

func (e *SwitchToggle) SwitchState() SwitchState {
	return SwitchState(with(&e.handle, Native.SwitchGetSwitchState))
}
