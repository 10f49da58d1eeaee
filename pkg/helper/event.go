/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package helper

import "github.com/verdiwm/colpetto/pkg/libinput"

// Event is an owned summary of a libinput event. It holds no native
// resources.
type Event struct {
	// Name is the human readable event type, such as "keyboard key".
	Name       string
	Kind       libinput.EventType
	DeviceName string
	// Key is set for keyboard key events.
	Key *Key
}

// Key describes a keyboard key event.
type Key struct {
	Code     uint32
	State    libinput.KeyState
	TimeUsec uint64
}

func summarize(ev libinput.Event) Event {
	out := Event{
		Name: ev.Type().String(),
		Kind: ev.Type(),
	}
	if d := ev.Device(); d != nil {
		out.DeviceName = d.Name()
		d.Close()
	}
	if k, ok := ev.(*libinput.KeyboardKey); ok {
		out.Key = &Key{
			Code:     k.Key(),
			State:    k.KeyState(),
			TimeUsec: k.TimeUsec(),
		}
	}
	return out
}
