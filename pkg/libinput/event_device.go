/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

var deviceCategory = category[RawDeviceNotifyEvent]{
	kind:   CategoryDevice,
	narrow: Native.EventGetDeviceNotifyEvent,
	widen:  Native.DeviceNotifyGetBaseEvent,
}

// DeviceEvent is implemented by device notification events.
type DeviceEvent interface {
	Event
	deviceEvent()
}

type deviceBase struct {
	leaf[RawDeviceNotifyEvent]
}

func (*deviceBase) deviceEvent() {}

// DeviceAdded signals a new device. It is the first event for every device
// and the usual place to configure it.
type DeviceAdded struct{ deviceBase }

// DeviceRemoved signals that a device is gone. No events for the device
// follow.
type DeviceRemoved struct{ deviceBase }
