/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/libinput/inputtest"
)

func fakeContext(t *testing.T) (*inputtest.Engine, *libinput.Context) {
	t.Helper()
	eng := inputtest.New()
	eng.AddDevice(inputtest.DeviceSpec{
		Name:         "AT Keyboard",
		Sysname:      "event0",
		Capabilities: []libinput.Capability{libinput.CapabilityKeyboard, libinput.CapabilitySwitch},
	})
	iface := libinput.Interface{
		Open:  func(string, int) (int, error) { return 10, nil },
		Close: func(int) {},
	}
	li, err := libinput.NewUdev(iface, libinput.WithNative(eng))
	require.NoError(t, err)
	t.Cleanup(func() { li.Close() })
	require.NoError(t, li.AssignSeat("seat0"))
	return eng, li
}

func TestDeviceRow(t *testing.T) {
	eng, li := fakeContext(t)
	ev := li.GetEvent()
	require.NotNil(t, ev)
	defer ev.Close()

	assert.Equal(t, "event0\tAT Keyboard\tseat0\tkeyboard, switch", deviceRow(ev))
	line, ok := describeKey(ev)
	assert.True(t, ok)
	assert.Equal(t, "+ AT Keyboard", line)
	assert.Empty(t, eng.Violations())
}

func TestDescribe(t *testing.T) {
	eng, li := fakeContext(t)
	li.GetEvent().Close()

	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventKeyboardKey,
		Device: "event0",
		Values: inputtest.Values{Key: 30, State: 1},
	})
	eng.Inject(inputtest.EventSpec{
		Type:   libinput.EventPointerButton,
		Device: "event0",
		Values: inputtest.Values{Button: 0x110},
	})
	eng.Inject(inputtest.EventSpec{Type: libinput.EventTouchFrame, Device: "event0"})
	require.NoError(t, li.Dispatch())

	key := li.GetEvent()
	line, ok := describeKey(key)
	assert.True(t, ok)
	assert.Equal(t, "key 30 pressed (AT Keyboard)", line)
	assert.Equal(t, "keyboard key               AT Keyboard  key=30 pressed", describe(key))
	key.Close()

	button := li.GetEvent()
	_, ok = describeKey(button)
	assert.False(t, ok)
	assert.Equal(t, "pointer button             AT Keyboard  button=0x110 released", describe(button))
	button.Close()

	frame := li.GetEvent()
	assert.Equal(t, "touch frame                AT Keyboard", describe(frame))
	frame.Close()

	assert.Equal(t, 0, eng.Outstanding())
	assert.Empty(t, eng.Violations())
}
