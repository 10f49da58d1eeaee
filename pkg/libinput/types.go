/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import "fmt"

// EventType is the native event discriminant (enum libinput_event_type).
type EventType int32

const (
	EventNone          EventType = 0
	EventDeviceAdded   EventType = 1
	EventDeviceRemoved EventType = 2

	EventKeyboardKey EventType = 300

	EventPointerMotion           EventType = 400
	EventPointerMotionAbsolute   EventType = 401
	EventPointerButton           EventType = 402
	EventPointerAxis             EventType = 403
	EventPointerScrollWheel      EventType = 404
	EventPointerScrollFinger     EventType = 405
	EventPointerScrollContinuous EventType = 406

	EventTouchDown   EventType = 500
	EventTouchUp     EventType = 501
	EventTouchMotion EventType = 502
	EventTouchCancel EventType = 503
	EventTouchFrame  EventType = 504

	EventTabletToolAxis      EventType = 600
	EventTabletToolProximity EventType = 601
	EventTabletToolTip       EventType = 602
	EventTabletToolButton    EventType = 603

	EventTabletPadButton EventType = 700
	EventTabletPadRing   EventType = 701
	EventTabletPadStrip  EventType = 702
	EventTabletPadKey    EventType = 703
	EventTabletPadDial   EventType = 704

	EventGestureSwipeBegin  EventType = 800
	EventGestureSwipeUpdate EventType = 801
	EventGestureSwipeEnd    EventType = 802
	EventGesturePinchBegin  EventType = 803
	EventGesturePinchUpdate EventType = 804
	EventGesturePinchEnd    EventType = 805
	EventGestureHoldBegin   EventType = 806
	EventGestureHoldEnd     EventType = 807

	EventSwitchToggle EventType = 900
)

var eventTypeNames = map[EventType]string{
	EventNone:                    "none",
	EventDeviceAdded:             "device added",
	EventDeviceRemoved:           "device removed",
	EventKeyboardKey:             "keyboard key",
	EventPointerMotion:           "pointer motion",
	EventPointerMotionAbsolute:   "pointer motion absolute",
	EventPointerButton:           "pointer button",
	EventPointerAxis:             "pointer axis",
	EventPointerScrollWheel:      "pointer scroll wheel",
	EventPointerScrollFinger:     "pointer scroll finger",
	EventPointerScrollContinuous: "pointer scroll continuous",
	EventTouchDown:               "touch down",
	EventTouchUp:                 "touch up",
	EventTouchMotion:             "touch motion",
	EventTouchCancel:             "touch cancel",
	EventTouchFrame:              "touch frame",
	EventTabletToolAxis:          "tablet tool axis",
	EventTabletToolProximity:     "tablet tool proximity",
	EventTabletToolTip:           "tablet tool tip",
	EventTabletToolButton:        "tablet tool button",
	EventTabletPadButton:         "tablet pad button",
	EventTabletPadRing:           "tablet pad ring",
	EventTabletPadStrip:          "tablet pad strip",
	EventTabletPadKey:            "tablet pad key",
	EventTabletPadDial:           "tablet pad dial",
	EventGestureSwipeBegin:       "gesture swipe begin",
	EventGestureSwipeUpdate:      "gesture swipe update",
	EventGestureSwipeEnd:         "gesture swipe end",
	EventGesturePinchBegin:       "gesture pinch begin",
	EventGesturePinchUpdate:      "gesture pinch update",
	EventGesturePinchEnd:         "gesture pinch end",
	EventGestureHoldBegin:        "gesture hold begin",
	EventGestureHoldEnd:          "gesture hold end",
	EventSwitchToggle:            "switch toggle",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown event %d", int32(t))
}

// Category groups event types by the native sub-event they carry.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryDevice
	CategoryKeyboard
	CategoryPointer
	CategoryTouch
	CategoryTabletTool
	CategoryTabletPad
	CategoryGesture
	CategorySwitch
)

var categoryNames = [...]string{
	CategoryUnknown:    "unknown",
	CategoryDevice:     "device",
	CategoryKeyboard:   "keyboard",
	CategoryPointer:    "pointer",
	CategoryTouch:      "touch",
	CategoryTabletTool: "tablet tool",
	CategoryTabletPad:  "tablet pad",
	CategoryGesture:    "gesture",
	CategorySwitch:     "switch",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// Category returns the category of a known event type, CategoryUnknown
// otherwise.
func (t EventType) Category() Category {
	if _, ok := eventTypeNames[t]; !ok || t == EventNone {
		return CategoryUnknown
	}
	switch t / 100 {
	case 0:
		return CategoryDevice
	case 3:
		return CategoryKeyboard
	case 4:
		return CategoryPointer
	case 5:
		return CategoryTouch
	case 6:
		return CategoryTabletTool
	case 7:
		return CategoryTabletPad
	case 8:
		return CategoryGesture
	case 9:
		return CategorySwitch
	}
	return CategoryUnknown
}

// KeyState is the logical state of a key.
type KeyState int32

const (
	KeyReleased KeyState = 0
	KeyPressed  KeyState = 1
)

func (s KeyState) String() string {
	if s == KeyPressed {
		return "pressed"
	}
	return "released"
}

// ButtonState is the logical state of a button.
type ButtonState int32

const (
	ButtonReleased ButtonState = 0
	ButtonPressed  ButtonState = 1
)

func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "released"
}

// TipState reports whether a tablet tool touches the surface.
type TipState int32

const (
	TipUp   TipState = 0
	TipDown TipState = 1
)

// ProximityState reports whether a tablet tool is within sensing range.
type ProximityState int32

const (
	ProximityOut ProximityState = 0
	ProximityIn  ProximityState = 1
)

// Axis is a pointer scroll axis.
type Axis int32

const (
	AxisScrollVertical   Axis = 0
	AxisScrollHorizontal Axis = 1
)

// Switch identifies a hardware switch.
type Switch int32

const (
	SwitchLid        Switch = 1
	SwitchTabletMode Switch = 2
)

// SwitchState is the state of a switch.
type SwitchState int32

const (
	SwitchOff SwitchState = 0
	SwitchOn  SwitchState = 1
)

// Capability is a device capability (enum libinput_device_capability).
type Capability int32

const (
	CapabilityKeyboard   Capability = 0
	CapabilityPointer    Capability = 1
	CapabilityTouch      Capability = 2
	CapabilityTabletTool Capability = 3
	CapabilityTabletPad  Capability = 4
	CapabilityGesture    Capability = 5
	CapabilitySwitch     Capability = 6
)

var capabilityNames = [...]string{
	CapabilityKeyboard:   "keyboard",
	CapabilityPointer:    "pointer",
	CapabilityTouch:      "touch",
	CapabilityTabletTool: "tablet tool",
	CapabilityTabletPad:  "tablet pad",
	CapabilityGesture:    "gesture",
	CapabilitySwitch:     "switch",
}

func (c Capability) String() string {
	if c < 0 || int(c) >= len(capabilityNames) {
		return fmt.Sprintf("capability(%d)", int32(c))
	}
	return capabilityNames[c]
}

// Capabilities lists every capability in native order.
func Capabilities() []Capability {
	return []Capability{
		CapabilityKeyboard, CapabilityPointer, CapabilityTouch, CapabilityTabletTool,
		CapabilityTabletPad, CapabilityGesture, CapabilitySwitch,
	}
}
