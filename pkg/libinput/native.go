/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

// Opaque native pointers as seen by this package. A zero value is NULL.
type (
	RawContext     uintptr
	RawEvent       uintptr
	RawDevice      uintptr
	RawSeat        uintptr
	RawDeviceGroup uintptr

	RawDeviceNotifyEvent uintptr
	RawKeyboardEvent     uintptr
	RawPointerEvent      uintptr
	RawTouchEvent        uintptr
	RawGestureEvent      uintptr
	RawSwitchEvent       uintptr
	RawTabletPadEvent    uintptr
	RawTabletToolEvent   uintptr
)

// Native is the native libinput engine. [System] returns the implementation
// backed by the shared library; package inputtest provides a fake.
//
// Methods map one to one onto libinput symbols and follow their ownership
// rules: getters that return a device, seat or group do not take a
// reference, Unref returns zero once the object is gone. Every method is
// called with the owning context's lock held.
type Native interface {
	// RegisterInterface binds a restricted interface to a token that is
	// passed to the create functions as user data.
	RegisterInterface(open func(path string, flags int32) int32, close func(fd int32)) uintptr
	UnregisterInterface(token uintptr)

	UdevCreateContext(token uintptr) RawContext
	PathCreateContext(token uintptr) RawContext
	PathAddDevice(li RawContext, path string) RawDevice
	PathRemoveDevice(d RawDevice)
	UdevAssignSeat(li RawContext, seat string) int32

	Ref(li RawContext) RawContext
	Unref(li RawContext) RawContext
	GetFd(li RawContext) int32
	Dispatch(li RawContext) int32
	GetEvent(li RawContext) RawEvent
	NextEventType(li RawContext) int32
	Suspend(li RawContext)
	Resume(li RawContext) int32

	SetLogHandler(li RawContext, handler func(priority int32, message string))
	ClearLogHandler(li RawContext)
	LogSetPriority(li RawContext, priority int32)

	EventGetType(e RawEvent) int32
	EventDestroy(e RawEvent)
	EventGetDevice(e RawEvent) RawDevice

	EventGetDeviceNotifyEvent(e RawEvent) RawDeviceNotifyEvent
	EventGetKeyboardEvent(e RawEvent) RawKeyboardEvent
	EventGetPointerEvent(e RawEvent) RawPointerEvent
	EventGetTouchEvent(e RawEvent) RawTouchEvent
	EventGetGestureEvent(e RawEvent) RawGestureEvent
	EventGetSwitchEvent(e RawEvent) RawSwitchEvent
	EventGetTabletPadEvent(e RawEvent) RawTabletPadEvent
	EventGetTabletToolEvent(e RawEvent) RawTabletToolEvent

	DeviceNotifyGetBaseEvent(e RawDeviceNotifyEvent) RawEvent
	KeyboardGetBaseEvent(e RawKeyboardEvent) RawEvent
	PointerGetBaseEvent(e RawPointerEvent) RawEvent
	TouchGetBaseEvent(e RawTouchEvent) RawEvent
	GestureGetBaseEvent(e RawGestureEvent) RawEvent
	SwitchGetBaseEvent(e RawSwitchEvent) RawEvent
	TabletPadGetBaseEvent(e RawTabletPadEvent) RawEvent
	TabletToolGetBaseEvent(e RawTabletToolEvent) RawEvent

	DeviceRef(d RawDevice) RawDevice
	DeviceUnref(d RawDevice) RawDevice
	DeviceGetName(d RawDevice) string
	DeviceGetSysname(d RawDevice) string
	DeviceGetIDVendor(d RawDevice) uint32
	DeviceGetIDProduct(d RawDevice) uint32
	DeviceGetSeat(d RawDevice) RawSeat
	DeviceGetDeviceGroup(d RawDevice) RawDeviceGroup
	DeviceHasCapability(d RawDevice, capability int32) bool

	SeatRef(s RawSeat) RawSeat
	SeatUnref(s RawSeat) RawSeat
	SeatGetPhysicalName(s RawSeat) string
	SeatGetLogicalName(s RawSeat) string

	DeviceGroupRef(g RawDeviceGroup) RawDeviceGroup
	DeviceGroupUnref(g RawDeviceGroup) RawDeviceGroup

	KeyboardGetTime(e RawKeyboardEvent) uint32
	KeyboardGetTimeUsec(e RawKeyboardEvent) uint64
	KeyboardGetKey(e RawKeyboardEvent) uint32
	KeyboardGetKeyState(e RawKeyboardEvent) int32
	KeyboardGetSeatKeyCount(e RawKeyboardEvent) uint32

	PointerGetTime(e RawPointerEvent) uint32
	PointerGetTimeUsec(e RawPointerEvent) uint64
	PointerGetDx(e RawPointerEvent) float64
	PointerGetDy(e RawPointerEvent) float64
	PointerGetDxUnaccelerated(e RawPointerEvent) float64
	PointerGetDyUnaccelerated(e RawPointerEvent) float64
	PointerGetAbsoluteX(e RawPointerEvent) float64
	PointerGetAbsoluteY(e RawPointerEvent) float64
	PointerGetAbsoluteXTransformed(e RawPointerEvent, width uint32) float64
	PointerGetAbsoluteYTransformed(e RawPointerEvent, height uint32) float64
	PointerGetButton(e RawPointerEvent) uint32
	PointerGetButtonState(e RawPointerEvent) int32
	PointerGetSeatButtonCount(e RawPointerEvent) uint32
	PointerHasAxis(e RawPointerEvent, axis int32) bool
	PointerGetScrollValue(e RawPointerEvent, axis int32) float64
	PointerGetScrollValueV120(e RawPointerEvent, axis int32) float64

	TouchGetTime(e RawTouchEvent) uint32
	TouchGetTimeUsec(e RawTouchEvent) uint64
	TouchGetSlot(e RawTouchEvent) int32
	TouchGetSeatSlot(e RawTouchEvent) int32
	TouchGetX(e RawTouchEvent) float64
	TouchGetY(e RawTouchEvent) float64

	GestureGetTime(e RawGestureEvent) uint32
	GestureGetTimeUsec(e RawGestureEvent) uint64
	GestureGetFingerCount(e RawGestureEvent) int32
	GestureGetCancelled(e RawGestureEvent) bool
	GestureGetDx(e RawGestureEvent) float64
	GestureGetDy(e RawGestureEvent) float64
	GestureGetScale(e RawGestureEvent) float64
	GestureGetAngleDelta(e RawGestureEvent) float64

	SwitchGetSwitch(e RawSwitchEvent) int32
	SwitchGetSwitchState(e RawSwitchEvent) int32
	SwitchGetTime(e RawSwitchEvent) uint32
	SwitchGetTimeUsec(e RawSwitchEvent) uint64

	TabletPadGetTime(e RawTabletPadEvent) uint32
	TabletPadGetTimeUsec(e RawTabletPadEvent) uint64
	TabletPadGetButtonNumber(e RawTabletPadEvent) uint32
	TabletPadGetButtonState(e RawTabletPadEvent) int32
	TabletPadGetRingPosition(e RawTabletPadEvent) float64
	TabletPadGetStripPosition(e RawTabletPadEvent) float64
	TabletPadGetKey(e RawTabletPadEvent) uint32
	TabletPadGetKeyState(e RawTabletPadEvent) int32
	TabletPadGetMode(e RawTabletPadEvent) uint32
	TabletPadGetDialDelta(e RawTabletPadEvent) float64

	TabletToolGetTime(e RawTabletToolEvent) uint32
	TabletToolGetTimeUsec(e RawTabletToolEvent) uint64
	TabletToolGetX(e RawTabletToolEvent) float64
	TabletToolGetY(e RawTabletToolEvent) float64
	TabletToolGetPressure(e RawTabletToolEvent) float64
	TabletToolGetTipState(e RawTabletToolEvent) int32
	TabletToolGetButton(e RawTabletToolEvent) uint32
	TabletToolGetButtonState(e RawTabletToolEvent) int32
	TabletToolGetProximityState(e RawTabletToolEvent) int32
}
