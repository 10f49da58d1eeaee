/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"fmt"

	"github.com/verdiwm/colpetto/pkg/cinput"
)

// System returns the [Native] engine backed by the loaded libinput shared
// library. It fails with an error wrapping [cinput.ErrNotLoaded] when the
// library is unavailable.
func System() (Native, error) {
	if err := cinput.LoadError(); err != nil {
		return nil, fmt.Errorf("libinput: %w", err)
	}
	return system{}, nil
}

type system struct{}

func (system) RegisterInterface(open func(path string, flags int32) int32, close func(fd int32)) uintptr {
	return cinput.RegisterInterface(open, close)
}

func (system) UnregisterInterface(token uintptr) {
	cinput.UnregisterInterface(token)
}

// UdevCreateContext owns the udev handle only until the context holds its
// own reference.
func (system) UdevCreateContext(token uintptr) RawContext {
	udev := cinput.UdevNew()
	if udev == 0 {
		return 0
	}
	defer cinput.UdevUnref(udev)
	return RawContext(cinput.UdevCreateContext(token, udev))
}

func (system) PathCreateContext(token uintptr) RawContext {
	return RawContext(cinput.PathCreateContext(token))
}

func (system) SetLogHandler(li RawContext, handler func(priority int32, message string)) {
	cinput.SetLogHandler(cinput.Libinput(li), handler)
}

func (system) ClearLogHandler(li RawContext) {
	cinput.ClearLogHandler(cinput.Libinput(li))
}

func (system) PathAddDevice(li RawContext, path string) RawDevice {
	return RawDevice(cinput.PathAddDevice(cinput.Libinput(li), path))
}

func (system) PathRemoveDevice(d RawDevice) {
	cinput.PathRemoveDevice(cinput.Device(d))
}

func (system) UdevAssignSeat(li RawContext, seat string) int32 {
	return cinput.UdevAssignSeat(cinput.Libinput(li), seat)
}

func (system) Ref(li RawContext) RawContext {
	return RawContext(cinput.Ref(cinput.Libinput(li)))
}

func (system) Unref(li RawContext) RawContext {
	return RawContext(cinput.Unref(cinput.Libinput(li)))
}

func (system) GetFd(li RawContext) int32 {
	return cinput.GetFd(cinput.Libinput(li))
}

func (system) Dispatch(li RawContext) int32 {
	return cinput.Dispatch(cinput.Libinput(li))
}

func (system) GetEvent(li RawContext) RawEvent {
	return RawEvent(cinput.GetEvent(cinput.Libinput(li)))
}

func (system) NextEventType(li RawContext) int32 {
	return cinput.NextEventType(cinput.Libinput(li))
}

func (system) Suspend(li RawContext) {
	cinput.Suspend(cinput.Libinput(li))
}

func (system) Resume(li RawContext) int32 {
	return cinput.Resume(cinput.Libinput(li))
}

func (system) LogSetPriority(li RawContext, priority int32) {
	cinput.LogSetPriority(cinput.Libinput(li), priority)
}

func (system) EventGetType(e RawEvent) int32 {
	return cinput.EventGetType(cinput.Event(e))
}

func (system) EventDestroy(e RawEvent) {
	cinput.EventDestroy(cinput.Event(e))
}

func (system) EventGetDevice(e RawEvent) RawDevice {
	return RawDevice(cinput.EventGetDevice(cinput.Event(e)))
}

func (system) EventGetDeviceNotifyEvent(e RawEvent) RawDeviceNotifyEvent {
	return RawDeviceNotifyEvent(cinput.EventGetDeviceNotifyEvent(cinput.Event(e)))
}

func (system) EventGetKeyboardEvent(e RawEvent) RawKeyboardEvent {
	return RawKeyboardEvent(cinput.EventGetKeyboardEvent(cinput.Event(e)))
}

func (system) EventGetPointerEvent(e RawEvent) RawPointerEvent {
	return RawPointerEvent(cinput.EventGetPointerEvent(cinput.Event(e)))
}

func (system) EventGetTouchEvent(e RawEvent) RawTouchEvent {
	return RawTouchEvent(cinput.EventGetTouchEvent(cinput.Event(e)))
}

func (system) EventGetGestureEvent(e RawEvent) RawGestureEvent {
	return RawGestureEvent(cinput.EventGetGestureEvent(cinput.Event(e)))
}

func (system) EventGetSwitchEvent(e RawEvent) RawSwitchEvent {
	return RawSwitchEvent(cinput.EventGetSwitchEvent(cinput.Event(e)))
}

func (system) EventGetTabletPadEvent(e RawEvent) RawTabletPadEvent {
	return RawTabletPadEvent(cinput.EventGetTabletPadEvent(cinput.Event(e)))
}

func (system) EventGetTabletToolEvent(e RawEvent) RawTabletToolEvent {
	return RawTabletToolEvent(cinput.EventGetTabletToolEvent(cinput.Event(e)))
}

func (system) DeviceNotifyGetBaseEvent(e RawDeviceNotifyEvent) RawEvent {
	return RawEvent(cinput.DeviceNotifyGetBaseEvent(cinput.DeviceNotifyEvent(e)))
}

func (system) KeyboardGetBaseEvent(e RawKeyboardEvent) RawEvent {
	return RawEvent(cinput.KeyboardGetBaseEvent(cinput.KeyboardEvent(e)))
}

func (system) PointerGetBaseEvent(e RawPointerEvent) RawEvent {
	return RawEvent(cinput.PointerGetBaseEvent(cinput.PointerEvent(e)))
}

func (system) TouchGetBaseEvent(e RawTouchEvent) RawEvent {
	return RawEvent(cinput.TouchGetBaseEvent(cinput.TouchEvent(e)))
}

func (system) GestureGetBaseEvent(e RawGestureEvent) RawEvent {
	return RawEvent(cinput.GestureGetBaseEvent(cinput.GestureEvent(e)))
}

func (system) SwitchGetBaseEvent(e RawSwitchEvent) RawEvent {
	return RawEvent(cinput.SwitchGetBaseEvent(cinput.SwitchEvent(e)))
}

func (system) TabletPadGetBaseEvent(e RawTabletPadEvent) RawEvent {
	return RawEvent(cinput.TabletPadGetBaseEvent(cinput.TabletPadEvent(e)))
}

func (system) TabletToolGetBaseEvent(e RawTabletToolEvent) RawEvent {
	return RawEvent(cinput.TabletToolGetBaseEvent(cinput.TabletToolEvent(e)))
}

func (system) DeviceRef(d RawDevice) RawDevice {
	return RawDevice(cinput.DeviceRef(cinput.Device(d)))
}

func (system) DeviceUnref(d RawDevice) RawDevice {
	return RawDevice(cinput.DeviceUnref(cinput.Device(d)))
}

func (system) DeviceGetName(d RawDevice) string {
	return cinput.DeviceGetName(cinput.Device(d))
}

func (system) DeviceGetSysname(d RawDevice) string {
	return cinput.DeviceGetSysname(cinput.Device(d))
}

func (system) DeviceGetIDVendor(d RawDevice) uint32 {
	return cinput.DeviceGetIDVendor(cinput.Device(d))
}

func (system) DeviceGetIDProduct(d RawDevice) uint32 {
	return cinput.DeviceGetIDProduct(cinput.Device(d))
}

func (system) DeviceGetSeat(d RawDevice) RawSeat {
	return RawSeat(cinput.DeviceGetSeat(cinput.Device(d)))
}

func (system) DeviceGetDeviceGroup(d RawDevice) RawDeviceGroup {
	return RawDeviceGroup(cinput.DeviceGetDeviceGroup(cinput.Device(d)))
}

func (system) DeviceHasCapability(d RawDevice, capability int32) bool {
	return cinput.DeviceHasCapability(cinput.Device(d), capability)
}

func (system) SeatRef(s RawSeat) RawSeat {
	return RawSeat(cinput.SeatRef(cinput.Seat(s)))
}

func (system) SeatUnref(s RawSeat) RawSeat {
	return RawSeat(cinput.SeatUnref(cinput.Seat(s)))
}

func (system) SeatGetPhysicalName(s RawSeat) string {
	return cinput.SeatGetPhysicalName(cinput.Seat(s))
}

func (system) SeatGetLogicalName(s RawSeat) string {
	return cinput.SeatGetLogicalName(cinput.Seat(s))
}

func (system) DeviceGroupRef(g RawDeviceGroup) RawDeviceGroup {
	return RawDeviceGroup(cinput.DeviceGroupRef(cinput.DeviceGroup(g)))
}

func (system) DeviceGroupUnref(g RawDeviceGroup) RawDeviceGroup {
	return RawDeviceGroup(cinput.DeviceGroupUnref(cinput.DeviceGroup(g)))
}

func (system) KeyboardGetTime(e RawKeyboardEvent) uint32 {
	return cinput.KeyboardGetTime(cinput.KeyboardEvent(e))
}

func (system) KeyboardGetTimeUsec(e RawKeyboardEvent) uint64 {
	return cinput.KeyboardGetTimeUsec(cinput.KeyboardEvent(e))
}

func (system) KeyboardGetKey(e RawKeyboardEvent) uint32 {
	return cinput.KeyboardGetKey(cinput.KeyboardEvent(e))
}

func (system) KeyboardGetKeyState(e RawKeyboardEvent) int32 {
	return cinput.KeyboardGetKeyState(cinput.KeyboardEvent(e))
}

func (system) KeyboardGetSeatKeyCount(e RawKeyboardEvent) uint32 {
	return cinput.KeyboardGetSeatKeyCount(cinput.KeyboardEvent(e))
}

func (system) PointerGetTime(e RawPointerEvent) uint32 {
	return cinput.PointerGetTime(cinput.PointerEvent(e))
}

func (system) PointerGetTimeUsec(e RawPointerEvent) uint64 {
	return cinput.PointerGetTimeUsec(cinput.PointerEvent(e))
}

func (system) PointerGetDx(e RawPointerEvent) float64 {
	return cinput.PointerGetDx(cinput.PointerEvent(e))
}

func (system) PointerGetDy(e RawPointerEvent) float64 {
	return cinput.PointerGetDy(cinput.PointerEvent(e))
}

func (system) PointerGetDxUnaccelerated(e RawPointerEvent) float64 {
	return cinput.PointerGetDxUnaccelerated(cinput.PointerEvent(e))
}

func (system) PointerGetDyUnaccelerated(e RawPointerEvent) float64 {
	return cinput.PointerGetDyUnaccelerated(cinput.PointerEvent(e))
}

func (system) PointerGetAbsoluteX(e RawPointerEvent) float64 {
	return cinput.PointerGetAbsoluteX(cinput.PointerEvent(e))
}

func (system) PointerGetAbsoluteY(e RawPointerEvent) float64 {
	return cinput.PointerGetAbsoluteY(cinput.PointerEvent(e))
}

func (system) PointerGetAbsoluteXTransformed(e RawPointerEvent, width uint32) float64 {
	return cinput.PointerGetAbsoluteXTransformed(cinput.PointerEvent(e), width)
}

func (system) PointerGetAbsoluteYTransformed(e RawPointerEvent, height uint32) float64 {
	return cinput.PointerGetAbsoluteYTransformed(cinput.PointerEvent(e), height)
}

func (system) PointerGetButton(e RawPointerEvent) uint32 {
	return cinput.PointerGetButton(cinput.PointerEvent(e))
}

func (system) PointerGetButtonState(e RawPointerEvent) int32 {
	return cinput.PointerGetButtonState(cinput.PointerEvent(e))
}

func (system) PointerGetSeatButtonCount(e RawPointerEvent) uint32 {
	return cinput.PointerGetSeatButtonCount(cinput.PointerEvent(e))
}

func (system) PointerHasAxis(e RawPointerEvent, axis int32) bool {
	return cinput.PointerHasAxis(cinput.PointerEvent(e), axis)
}

func (system) PointerGetScrollValue(e RawPointerEvent, axis int32) float64 {
	return cinput.PointerGetScrollValue(cinput.PointerEvent(e), axis)
}

func (system) PointerGetScrollValueV120(e RawPointerEvent, axis int32) float64 {
	return cinput.PointerGetScrollValueV120(cinput.PointerEvent(e), axis)
}

func (system) TouchGetTime(e RawTouchEvent) uint32 {
	return cinput.TouchGetTime(cinput.TouchEvent(e))
}

func (system) TouchGetTimeUsec(e RawTouchEvent) uint64 {
	return cinput.TouchGetTimeUsec(cinput.TouchEvent(e))
}

func (system) TouchGetSlot(e RawTouchEvent) int32 {
	return cinput.TouchGetSlot(cinput.TouchEvent(e))
}

func (system) TouchGetSeatSlot(e RawTouchEvent) int32 {
	return cinput.TouchGetSeatSlot(cinput.TouchEvent(e))
}

func (system) TouchGetX(e RawTouchEvent) float64 {
	return cinput.TouchGetX(cinput.TouchEvent(e))
}

func (system) TouchGetY(e RawTouchEvent) float64 {
	return cinput.TouchGetY(cinput.TouchEvent(e))
}

func (system) GestureGetTime(e RawGestureEvent) uint32 {
	return cinput.GestureGetTime(cinput.GestureEvent(e))
}

func (system) GestureGetTimeUsec(e RawGestureEvent) uint64 {
	return cinput.GestureGetTimeUsec(cinput.GestureEvent(e))
}

func (system) GestureGetFingerCount(e RawGestureEvent) int32 {
	return cinput.GestureGetFingerCount(cinput.GestureEvent(e))
}

func (system) GestureGetCancelled(e RawGestureEvent) bool {
	return cinput.GestureGetCancelled(cinput.GestureEvent(e))
}

func (system) GestureGetDx(e RawGestureEvent) float64 {
	return cinput.GestureGetDx(cinput.GestureEvent(e))
}

func (system) GestureGetDy(e RawGestureEvent) float64 {
	return cinput.GestureGetDy(cinput.GestureEvent(e))
}

func (system) GestureGetScale(e RawGestureEvent) float64 {
	return cinput.GestureGetScale(cinput.GestureEvent(e))
}

func (system) GestureGetAngleDelta(e RawGestureEvent) float64 {
	return cinput.GestureGetAngleDelta(cinput.GestureEvent(e))
}

func (system) SwitchGetSwitch(e RawSwitchEvent) int32 {
	return cinput.SwitchGetSwitch(cinput.SwitchEvent(e))
}

func (system) SwitchGetSwitchState(e RawSwitchEvent) int32 {
	return cinput.SwitchGetSwitchState(cinput.SwitchEvent(e))
}

func (system) SwitchGetTime(e RawSwitchEvent) uint32 {
	return cinput.SwitchGetTime(cinput.SwitchEvent(e))
}

func (system) SwitchGetTimeUsec(e RawSwitchEvent) uint64 {
	return cinput.SwitchGetTimeUsec(cinput.SwitchEvent(e))
}

func (system) TabletPadGetTime(e RawTabletPadEvent) uint32 {
	return cinput.TabletPadGetTime(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetTimeUsec(e RawTabletPadEvent) uint64 {
	return cinput.TabletPadGetTimeUsec(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetButtonNumber(e RawTabletPadEvent) uint32 {
	return cinput.TabletPadGetButtonNumber(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetButtonState(e RawTabletPadEvent) int32 {
	return cinput.TabletPadGetButtonState(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetRingPosition(e RawTabletPadEvent) float64 {
	return cinput.TabletPadGetRingPosition(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetStripPosition(e RawTabletPadEvent) float64 {
	return cinput.TabletPadGetStripPosition(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetKey(e RawTabletPadEvent) uint32 {
	return cinput.TabletPadGetKey(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetKeyState(e RawTabletPadEvent) int32 {
	return cinput.TabletPadGetKeyState(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetMode(e RawTabletPadEvent) uint32 {
	return cinput.TabletPadGetMode(cinput.TabletPadEvent(e))
}

func (system) TabletPadGetDialDelta(e RawTabletPadEvent) float64 {
	return cinput.TabletPadGetDialDelta(cinput.TabletPadEvent(e))
}

func (system) TabletToolGetTime(e RawTabletToolEvent) uint32 {
	return cinput.TabletToolGetTime(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetTimeUsec(e RawTabletToolEvent) uint64 {
	return cinput.TabletToolGetTimeUsec(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetX(e RawTabletToolEvent) float64 {
	return cinput.TabletToolGetX(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetY(e RawTabletToolEvent) float64 {
	return cinput.TabletToolGetY(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetPressure(e RawTabletToolEvent) float64 {
	return cinput.TabletToolGetPressure(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetTipState(e RawTabletToolEvent) int32 {
	return cinput.TabletToolGetTipState(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetButton(e RawTabletToolEvent) uint32 {
	return cinput.TabletToolGetButton(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetButtonState(e RawTabletToolEvent) int32 {
	return cinput.TabletToolGetButtonState(cinput.TabletToolEvent(e))
}

func (system) TabletToolGetProximityState(e RawTabletToolEvent) int32 {
	return cinput.TabletToolGetProximityState(cinput.TabletToolEvent(e))
}
