/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package main

import (
	"fmt"
	"strings"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

func deviceName(ev libinput.Event) string {
	d := ev.Device()
	if d == nil {
		return "?"
	}
	defer d.Close()
	return d.Name()
}

func capabilities(d *libinput.Device) string {
	var caps []string
	for _, c := range libinput.Capabilities() {
		if d.HasCapability(c) {
			caps = append(caps, c.String())
		}
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, ", ")
}

// deviceRow formats the device of ev as a tab separated row.
func deviceRow(ev libinput.Event) string {
	d := ev.Device()
	if d == nil {
		return "?"
	}
	defer d.Close()
	seat := "-"
	if s := d.Seat(); s != nil {
		seat = s.PhysicalName()
		s.Close()
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s", d.Sysname(), d.Name(), seat, capabilities(d))
}

// describeKey formats keyboard and device notifications. It returns false
// for anything else.
func describeKey(ev libinput.Event) (string, bool) {
	switch e := ev.(type) {
	case *libinput.KeyboardKey:
		return fmt.Sprintf("key %d %s (%s)", e.Key(), e.KeyState(), deviceName(ev)), true
	case *libinput.DeviceAdded:
		return fmt.Sprintf("+ %s", deviceName(ev)), true
	case *libinput.DeviceRemoved:
		return fmt.Sprintf("- %s", deviceName(ev)), true
	}
	return "", false
}

// describe formats any event with its most useful fields.
func describe(ev libinput.Event) string {
	detail := ""
	switch e := ev.(type) {
	case *libinput.KeyboardKey:
		detail = fmt.Sprintf("key=%d %s", e.Key(), e.KeyState())
	case *libinput.PointerMotion:
		detail = fmt.Sprintf("dx=%.2f dy=%.2f", e.Dx(), e.Dy())
	case *libinput.PointerButton:
		detail = fmt.Sprintf("button=%#x %s", e.Button(), e.ButtonState())
	case *libinput.PointerScrollWheel:
		detail = fmt.Sprintf("v120=%.0f", e.ScrollValueV120(libinput.AxisScrollVertical))
	case *libinput.TouchDown:
		detail = fmt.Sprintf("slot=%d x=%.2f y=%.2f", e.Slot(), e.X(), e.Y())
	case libinput.GestureEvent:
		detail = fmt.Sprintf("fingers=%d", e.FingerCount())
	case *libinput.SwitchToggle:
		detail = fmt.Sprintf("switch=%d state=%d", e.Switch(), e.SwitchState())
	}
	line := fmt.Sprintf("%-26s %s", ev.Type(), deviceName(ev))
	if detail != "" {
		line += "  " + detail
	}
	return line
}
