/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/libinput/inputtest"
)

// seated returns a udev context on seat0 whose device-added events have
// already been drained.
func seated(t *testing.T, eng *inputtest.Engine, devices ...inputtest.DeviceSpec) *libinput.Context {
	t.Helper()
	for _, d := range devices {
		eng.AddDevice(d)
	}
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	t.Cleanup(func() { li.Close() })
	require.NoError(t, li.AssignSeat("seat0"))
	for ev := li.GetEvent(); ev != nil; ev = li.GetEvent() {
		ev.Close()
	}
	return li
}

func pop(t *testing.T, li *libinput.Context) libinput.Event {
	t.Helper()
	require.NoError(t, li.Dispatch())
	ev := li.GetEvent()
	require.NotNil(t, ev)
	return ev
}

func TestEventTypeNames(t *testing.T) {
	tests := []struct {
		typ      libinput.EventType
		name     string
		category libinput.Category
	}{
		{libinput.EventDeviceAdded, "device added", libinput.CategoryDevice},
		{libinput.EventKeyboardKey, "keyboard key", libinput.CategoryKeyboard},
		{libinput.EventPointerScrollWheel, "pointer scroll wheel", libinput.CategoryPointer},
		{libinput.EventTouchFrame, "touch frame", libinput.CategoryTouch},
		{libinput.EventTabletToolTip, "tablet tool tip", libinput.CategoryTabletTool},
		{libinput.EventTabletPadDial, "tablet pad dial", libinput.CategoryTabletPad},
		{libinput.EventGestureHoldEnd, "gesture hold end", libinput.CategoryGesture},
		{libinput.EventSwitchToggle, "switch toggle", libinput.CategorySwitch},
		{libinput.EventNone, "none", libinput.CategoryUnknown},
		{libinput.EventType(9999), "unknown event 9999", libinput.CategoryUnknown},
		{libinput.EventType(350), "unknown event 350", libinput.CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.typ.String())
			assert.Equal(t, tt.category, tt.typ.Category())
		})
	}
	assert.Equal(t, "tablet pad", libinput.CategoryTabletPad.String())
	assert.Equal(t, "unknown", libinput.Category(42).String())
}

func TestEventKinds(t *testing.T) {
	tests := []struct {
		typ  libinput.EventType
		want libinput.Event
	}{
		{libinput.EventKeyboardKey, &libinput.KeyboardKey{}},
		{libinput.EventPointerMotion, &libinput.PointerMotion{}},
		{libinput.EventPointerMotionAbsolute, &libinput.PointerMotionAbsolute{}},
		{libinput.EventPointerButton, &libinput.PointerButton{}},
		{libinput.EventPointerAxis, &libinput.PointerAxis{}},
		{libinput.EventPointerScrollWheel, &libinput.PointerScrollWheel{}},
		{libinput.EventPointerScrollFinger, &libinput.PointerScrollFinger{}},
		{libinput.EventPointerScrollContinuous, &libinput.PointerScrollContinuous{}},
		{libinput.EventTouchDown, &libinput.TouchDown{}},
		{libinput.EventTouchUp, &libinput.TouchUp{}},
		{libinput.EventTouchMotion, &libinput.TouchMotion{}},
		{libinput.EventTouchCancel, &libinput.TouchCancel{}},
		{libinput.EventTouchFrame, &libinput.TouchFrame{}},
		{libinput.EventTabletToolAxis, &libinput.TabletToolAxis{}},
		{libinput.EventTabletToolProximity, &libinput.TabletToolProximity{}},
		{libinput.EventTabletToolTip, &libinput.TabletToolTip{}},
		{libinput.EventTabletToolButton, &libinput.TabletToolButton{}},
		{libinput.EventTabletPadButton, &libinput.TabletPadButton{}},
		{libinput.EventTabletPadRing, &libinput.TabletPadRing{}},
		{libinput.EventTabletPadStrip, &libinput.TabletPadStrip{}},
		{libinput.EventTabletPadKey, &libinput.TabletPadKey{}},
		{libinput.EventTabletPadDial, &libinput.TabletPadDial{}},
		{libinput.EventGestureSwipeBegin, &libinput.GestureSwipeBegin{}},
		{libinput.EventGestureSwipeUpdate, &libinput.GestureSwipeUpdate{}},
		{libinput.EventGestureSwipeEnd, &libinput.GestureSwipeEnd{}},
		{libinput.EventGesturePinchBegin, &libinput.GesturePinchBegin{}},
		{libinput.EventGesturePinchUpdate, &libinput.GesturePinchUpdate{}},
		{libinput.EventGesturePinchEnd, &libinput.GesturePinchEnd{}},
		{libinput.EventGestureHoldBegin, &libinput.GestureHoldBegin{}},
		{libinput.EventGestureHoldEnd, &libinput.GestureHoldEnd{}},
		{libinput.EventSwitchToggle, &libinput.SwitchToggle{}},
	}

	eng := inputtest.New()
	li := seated(t, eng, keyboard("event0"))
	for _, tt := range tests {
		eng.Inject(inputtest.EventSpec{Type: tt.typ, Device: "event0"})
	}

	require.NoError(t, li.Dispatch())
	for _, tt := range tests {
		ev := li.GetEvent()
		require.NotNil(t, ev, tt.typ.String())
		assert.IsType(t, tt.want, ev)
		assert.Equal(t, tt.typ, ev.Type())
		assert.Equal(t, tt.typ.Category(), ev.Category())
		ev.Close()
	}
	assert.Nil(t, li.GetEvent())
	assert.Equal(t, 0, eng.Outstanding())
	assertClean(t, eng)
}

func TestEventCloseDestroysOnce(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, keyboard("event0"))
	base := eng.Destroyed()

	eng.Inject(inputtest.EventSpec{Type: libinput.EventKeyboardKey, Device: "event0"})
	ev := pop(t, li)
	ev.Close()
	ev.Close()
	ev.Close()

	assert.Equal(t, base+1, eng.Destroyed())
	assert.Equal(t, 0, eng.Outstanding())
	assertClean(t, eng)
}

func TestUnknownEvent(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, keyboard("event0"))
	base := eng.Destroyed()

	eng.Inject(inputtest.EventSpec{Type: libinput.EventType(9999), Device: "event0"})
	ev := pop(t, li)

	u, ok := ev.(*libinput.Unknown)
	require.True(t, ok, "got %T", ev)
	assert.Equal(t, libinput.EventType(9999), u.Type())
	assert.Equal(t, libinput.CategoryUnknown, u.Category())

	d := u.Device()
	require.NotNil(t, d)
	assert.Equal(t, "event0", d.Sysname())
	d.Close()

	u.Close()
	assert.Equal(t, base+1, eng.Destroyed())
	assertClean(t, eng)
}

func TestCategorySwitch(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, keyboard("event0"))

	eng.Inject(inputtest.EventSpec{Type: libinput.EventPointerButton, Device: "event0", Values: inputtest.Values{TimeUsec: 5_000}})
	eng.Inject(inputtest.EventSpec{Type: libinput.EventGesturePinchEnd, Device: "event0", Values: inputtest.Values{TimeUsec: 7_000}})
	require.NoError(t, li.Dispatch())

	var times []uint32
	for ev := li.GetEvent(); ev != nil; ev = li.GetEvent() {
		switch e := ev.(type) {
		case libinput.PointerEvent:
			times = append(times, e.Time())
		case libinput.GestureEvent:
			times = append(times, e.Time())
		default:
			t.Fatalf("unexpected %T", ev)
		}
		ev.Close()
	}
	assert.Equal(t, []uint32{5, 7}, times)
}

func TestKeyboardAccessors(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, keyboard("event0"))

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventKeyboardKey,
		Device: "event0",
		Values: inputtest.Values{TimeUsec: 1_234_567, Key: 30, State: 1, SeatCount: 1},
	})
	ev := pop(t, li)
	defer ev.Close()

	k := ev.(*libinput.KeyboardKey)
	assert.Equal(t, uint32(30), k.Key())
	assert.Equal(t, libinput.KeyPressed, k.KeyState())
	assert.Equal(t, "pressed", k.KeyState().String())
	assert.Equal(t, uint32(1), k.SeatKeyCount())
	assert.Equal(t, uint32(1234), k.Time())
	assert.Equal(t, uint64(1_234_567), k.TimeUsec())
	assertClean(t, eng)
}

func TestPointerAccessors(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, inputtest.DeviceSpec{Name: "Mouse", Sysname: "event1"})

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventPointerMotion,
		Device: "event1",
		Values: inputtest.Values{Dx: 1.5, Dy: -2, DxUnaccelerated: 1, DyUnaccelerated: -1},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventPointerMotionAbsolute,
		Device: "event1",
		Values: inputtest.Values{X: 50, Y: 25},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventPointerButton,
		Device: "event1",
		Values: inputtest.Values{Button: 0x110, State: 1, SeatCount: 2},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventPointerScrollWheel,
		Device: "event1",
		Values: inputtest.Values{
			Scroll:     map[libinput.Axis]float64{libinput.AxisScrollVertical: 15},
			ScrollV120: map[libinput.Axis]float64{libinput.AxisScrollVertical: 120},
		},
	})
	require.NoError(t, li.Dispatch())

	motion := li.GetEvent().(*libinput.PointerMotion)
	assert.Equal(t, 1.5, motion.Dx())
	assert.Equal(t, -2.0, motion.Dy())
	assert.Equal(t, 1.0, motion.DxUnaccelerated())
	assert.Equal(t, -1.0, motion.DyUnaccelerated())
	motion.Close()

	abs := li.GetEvent().(*libinput.PointerMotionAbsolute)
	assert.Equal(t, 50.0, abs.AbsoluteX())
	assert.Equal(t, 25.0, abs.AbsoluteY())
	assert.Equal(t, 960.0, abs.AbsoluteXTransformed(1920))
	assert.Equal(t, 270.0, abs.AbsoluteYTransformed(1080))
	abs.Close()

	button := li.GetEvent().(*libinput.PointerButton)
	assert.Equal(t, uint32(0x110), button.Button())
	assert.Equal(t, libinput.ButtonPressed, button.ButtonState())
	assert.Equal(t, uint32(2), button.SeatButtonCount())
	button.Close()

	wheel := li.GetEvent().(*libinput.PointerScrollWheel)
	assert.True(t, wheel.HasAxis(libinput.AxisScrollVertical))
	assert.False(t, wheel.HasAxis(libinput.AxisScrollHorizontal))
	assert.Equal(t, 15.0, wheel.ScrollValue(libinput.AxisScrollVertical))
	assert.Equal(t, 120.0, wheel.ScrollValueV120(libinput.AxisScrollVertical))
	wheel.Close()

	assertClean(t, eng)
}

func TestTouchGestureSwitchAccessors(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, inputtest.DeviceSpec{Name: "Touchpad", Sysname: "event2"})

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventTouchDown,
		Device: "event2",
		Values: inputtest.Values{Slot: 1, SeatSlot: 3, X: 10, Y: 20},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventGesturePinchUpdate,
		Device: "event2",
		Values: inputtest.Values{FingerCount: 2, Dx: 0.5, Dy: 0.25, Scale: 1.2, AngleDelta: -3},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventGestureSwipeEnd,
		Device: "event2",
		Values: inputtest.Values{FingerCount: 3, Cancelled: true},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventSwitchToggle,
		Device: "event2",
		Values: inputtest.Values{Switch: int32(libinput.SwitchLid), State: 1},
	})
	require.NoError(t, li.Dispatch())

	down := li.GetEvent().(*libinput.TouchDown)
	assert.Equal(t, int32(1), down.Slot())
	assert.Equal(t, int32(3), down.SeatSlot())
	assert.Equal(t, 10.0, down.X())
	assert.Equal(t, 20.0, down.Y())
	down.Close()

	pinch := li.GetEvent().(*libinput.GesturePinchUpdate)
	assert.Equal(t, int32(2), pinch.FingerCount())
	assert.Equal(t, 0.5, pinch.Dx())
	assert.Equal(t, 0.25, pinch.Dy())
	assert.Equal(t, 1.2, pinch.Scale())
	assert.Equal(t, -3.0, pinch.AngleDelta())
	pinch.Close()

	swipe := li.GetEvent().(*libinput.GestureSwipeEnd)
	assert.Equal(t, int32(3), swipe.FingerCount())
	assert.True(t, swipe.Cancelled())
	swipe.Close()

	sw := li.GetEvent().(*libinput.SwitchToggle)
	assert.Equal(t, libinput.SwitchLid, sw.Switch())
	assert.Equal(t, libinput.SwitchOn, sw.SwitchState())
	sw.Close()

	assertClean(t, eng)
}

func TestTabletAccessors(t *testing.T) {
	eng := inputtest.New()
	li := seated(t, eng, inputtest.DeviceSpec{Name: "Tablet", Sysname: "event3"})

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventTabletToolTip,
		Device: "event3",
		Values: inputtest.Values{X: 12, Y: 34, Pressure: 0.75, State: 1},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventTabletPadRing,
		Device: "event3",
		Values: inputtest.Values{Ring: 90, Mode: 2},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventTabletPadDial,
		Device: "event3",
		Values: inputtest.Values{Dial: -120},
	})
	require.NoError(t, li.Dispatch())

	tip := li.GetEvent().(*libinput.TabletToolTip)
	assert.Equal(t, 12.0, tip.X())
	assert.Equal(t, 34.0, tip.Y())
	assert.Equal(t, 0.75, tip.Pressure())
	assert.Equal(t, libinput.TipDown, tip.TipState())
	tip.Close()

	ring := li.GetEvent().(*libinput.TabletPadRing)
	assert.Equal(t, 90.0, ring.RingPosition())
	assert.Equal(t, uint32(2), ring.Mode())
	ring.Close()

	dial := li.GetEvent().(*libinput.TabletPadDial)
	assert.Equal(t, -120.0, dial.DialDelta())
	dial.Close()

	assertClean(t, eng)
}

func TestDeviceAddedScenario(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{
		Name:         "Integrated Keyboard",
		Sysname:      "event5",
		Vendor:       0x1234,
		Product:      0x5678,
		Capabilities: []libinput.Capability{libinput.CapabilityKeyboard, libinput.CapabilitySwitch},
		Group:        "laptop",
	})
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	defer li.Close()
	require.NoError(t, li.AssignSeat("seat0"))

	assert.Equal(t, libinput.EventDeviceAdded, li.NextEventType())
	ev := li.GetEvent()
	added, ok := ev.(*libinput.DeviceAdded)
	require.True(t, ok, "got %T", ev)

	d := added.Device()
	require.NotNil(t, d)
	assert.Equal(t, "Integrated Keyboard", d.Name())
	assert.Equal(t, "event5", d.Sysname())
	assert.Equal(t, uint32(0x1234), d.IDVendor())
	assert.Equal(t, uint32(0x5678), d.IDProduct())
	assert.True(t, d.HasCapability(libinput.CapabilityKeyboard))
	assert.True(t, d.HasCapability(libinput.CapabilitySwitch))
	assert.False(t, d.HasCapability(libinput.CapabilityPointer))

	seat := d.Seat()
	require.NotNil(t, seat)
	assert.Equal(t, "seat0", seat.PhysicalName())
	assert.Equal(t, "default", seat.LogicalName())

	group := d.Group()
	require.NotNil(t, group)

	// Every clone/close pair leaves the counts unchanged.
	devRefs, seatRefs, groupRefs := eng.DeviceRefs("event5"), eng.SeatRefs("seat0"), eng.GroupRefs("laptop")
	for range 3 {
		d.Clone().Close()
		seat.Clone().Close()
		group.Clone().Close()
	}
	assert.Equal(t, devRefs, eng.DeviceRefs("event5"))
	assert.Equal(t, seatRefs, eng.SeatRefs("seat0"))
	assert.Equal(t, groupRefs, eng.GroupRefs("laptop"))

	again := added.Device()
	assert.True(t, again.Equal(d))
	assert.Equal(t, devRefs+1, eng.DeviceRefs("event5"))
	again.Close()
	again.Close()
	assert.Equal(t, devRefs, eng.DeviceRefs("event5"))

	seat.Close()
	group.Close()
	d.Close()
	ev.Close()
	assert.Equal(t, 0, eng.DeviceRefs("event5"))
	assert.Equal(t, 0, eng.SeatRefs("seat0"))
	assert.Equal(t, 0, eng.GroupRefs("laptop"))

	// Closed handles report zero values.
	assert.Empty(t, d.Name())
	assert.Nil(t, d.Seat())
	assert.Nil(t, added.Device())
	assertClean(t, eng)
}

func TestHandlesAfterContextDestroyed(t *testing.T) {
	eng := inputtest.New()
	eng.AddDevice(keyboard("event0"))
	var rec recorder
	li := newUdev(t, eng, rec.iface())
	require.NoError(t, li.AssignSeat("seat0"))

	ev := li.GetEvent()
	require.NotNil(t, ev)
	d := ev.Device()
	require.NotNil(t, d)

	require.NoError(t, li.Close())
	require.True(t, eng.ContextDestroyed())

	assert.Empty(t, d.Name())
	assert.Nil(t, d.Clone())
	assert.Nil(t, ev.Device())
	d.Close()
	ev.Close()
	assertClean(t, eng)
}
