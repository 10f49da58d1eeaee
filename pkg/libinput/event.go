/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

// Event is an owned libinput event.
//
// The concrete value is always one of this package's leaf types, such as
// *KeyboardKey or *PointerMotion, or *Unknown for discriminants this
// package does not know. Use a type switch on the leaf or on a category
// interface ([KeyboardEvent], [PointerEvent], ...) to reach the accessors.
//
// Close releases the native event. It must be called exactly once; further
// calls are ignored.
type Event interface {
	Type() EventType
	Category() Category
	// Device returns a new reference to the device that generated the
	// event, or nil once the event is closed.
	Device() *Device
	Close()

	event()
}

// category describes how one family of events converts between the base
// event and its sub-event pointer.
type category[S ~uintptr] struct {
	kind   Category
	narrow func(Native, RawEvent) S
	widen  func(Native, S) RawEvent
}

// leaf owns one sub-event pointer. Every event type embeds it.
type leaf[S ~uintptr] struct {
	handle[S]
	cat *category[S]
	typ EventType
}

func (l *leaf[S]) bind(sh *shared, cat *category[S], raw RawEvent, typ EventType) bool {
	sub := cat.narrow(sh.native, raw)
	if sub == 0 {
		return false
	}
	l.sh = sh
	l.raw = sub
	l.cat = cat
	l.typ = typ
	return true
}

func (l *leaf[S]) Type() EventType { return l.typ }

func (l *leaf[S]) Category() Category { return l.cat.kind }

func (l *leaf[S]) Device() *Device {
	return with(&l.handle, func(n Native, raw S) *Device {
		d := n.EventGetDevice(l.cat.widen(n, raw))
		if d == 0 {
			return nil
		}
		return newDevice(l.sh, d)
	})
}

func (l *leaf[S]) Close() {
	l.release(func(n Native, raw S) S {
		n.EventDestroy(l.cat.widen(n, raw))
		return 0
	})
}

func (*leaf[S]) event() {}

// Unknown is an event whose type this package does not model. It still
// owns the native event and must be closed.
type Unknown struct {
	leaf[RawEvent]
}

var unknownCategory = category[RawEvent]{
	kind:   CategoryUnknown,
	narrow: func(_ Native, e RawEvent) RawEvent { return e },
	widen:  func(_ Native, e RawEvent) RawEvent { return e },
}

type builder func(sh *shared, raw RawEvent, typ EventType) Event

type binder[T any, S ~uintptr] interface {
	*T
	Event
	bind(sh *shared, cat *category[S], raw RawEvent, typ EventType) bool
}

func build[T any, S ~uintptr, P binder[T, S]](cat *category[S]) builder {
	return func(sh *shared, raw RawEvent, typ EventType) Event {
		p := P(new(T))
		if !p.bind(sh, cat, raw, typ) {
			return nil
		}
		return p
	}
}

var builders = map[EventType]builder{
	EventDeviceAdded:   build[DeviceAdded](&deviceCategory),
	EventDeviceRemoved: build[DeviceRemoved](&deviceCategory),

	EventKeyboardKey: build[KeyboardKey](&keyboardCategory),

	EventPointerMotion:           build[PointerMotion](&pointerCategory),
	EventPointerMotionAbsolute:   build[PointerMotionAbsolute](&pointerCategory),
	EventPointerButton:           build[PointerButton](&pointerCategory),
	EventPointerAxis:             build[PointerAxis](&pointerCategory),
	EventPointerScrollWheel:      build[PointerScrollWheel](&pointerCategory),
	EventPointerScrollFinger:     build[PointerScrollFinger](&pointerCategory),
	EventPointerScrollContinuous: build[PointerScrollContinuous](&pointerCategory),

	EventTouchDown:   build[TouchDown](&touchCategory),
	EventTouchUp:     build[TouchUp](&touchCategory),
	EventTouchMotion: build[TouchMotion](&touchCategory),
	EventTouchCancel: build[TouchCancel](&touchCategory),
	EventTouchFrame:  build[TouchFrame](&touchCategory),

	EventTabletToolAxis:      build[TabletToolAxis](&tabletToolCategory),
	EventTabletToolProximity: build[TabletToolProximity](&tabletToolCategory),
	EventTabletToolTip:       build[TabletToolTip](&tabletToolCategory),
	EventTabletToolButton:    build[TabletToolButton](&tabletToolCategory),

	EventTabletPadButton: build[TabletPadButton](&tabletPadCategory),
	EventTabletPadRing:   build[TabletPadRing](&tabletPadCategory),
	EventTabletPadStrip:  build[TabletPadStrip](&tabletPadCategory),
	EventTabletPadKey:    build[TabletPadKey](&tabletPadCategory),
	EventTabletPadDial:   build[TabletPadDial](&tabletPadCategory),

	EventGestureSwipeBegin:  build[GestureSwipeBegin](&gestureCategory),
	EventGestureSwipeUpdate: build[GestureSwipeUpdate](&gestureCategory),
	EventGestureSwipeEnd:    build[GestureSwipeEnd](&gestureCategory),
	EventGesturePinchBegin:  build[GesturePinchBegin](&gestureCategory),
	EventGesturePinchUpdate: build[GesturePinchUpdate](&gestureCategory),
	EventGesturePinchEnd:    build[GesturePinchEnd](&gestureCategory),
	EventGestureHoldBegin:   build[GestureHoldBegin](&gestureCategory),
	EventGestureHoldEnd:     build[GestureHoldEnd](&gestureCategory),

	EventSwitchToggle: build[SwitchToggle](&switchCategory),
}

// wrapEvent takes ownership of raw; the lock must be held.
func wrapEvent(sh *shared, raw RawEvent) Event {
	typ := EventType(sh.native.EventGetType(raw))
	if b, ok := builders[typ]; ok {
		if ev := b(sh, raw, typ); ev != nil {
			return ev
		}
	}
	u := &Unknown{}
	u.bind(sh, &unknownCategory, raw, typ)
	return u
}
