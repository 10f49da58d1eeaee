/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenResult(t *testing.T) {
	tests := []struct {
		name string
		fd   int
		err  error
		want int32
	}{
		{"descriptor", 7, nil, 7},
		{"zero descriptor", 0, nil, 0},
		{"errno", -1, syscall.EACCES, -int32(syscall.EACCES)},
		{"wrapped errno", -1, fmt.Errorf("logind: %w", syscall.EBUSY), -int32(syscall.EBUSY)},
		{"plain error", -1, errors.New("no session"), -int32(syscall.EIO)},
		{"zero errno", -1, syscall.Errno(0), -int32(syscall.EIO)},
		{"negative without error", -3, nil, -int32(syscall.EINVAL)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, openResult(tt.fd, tt.err))
		})
	}
}

func TestGuardRecoversPanics(t *testing.T) {
	var reports []string
	iface := Interface{
		Open:  func(string, int) (int, error) { panic("open failed hard") },
		Close: func(int) { panic(errors.New("close failed hard")) },
	}
	open, closeFn := iface.guard(func(op string, r any) {
		reports = append(reports, fmt.Sprintf("%s: %v", op, r))
	})

	assert.NotPanics(t, func() {
		assert.Equal(t, -int32(syscall.EIO), open("/dev/input/event0", 0))
		closeFn(3)
	})
	assert.Equal(t, []string{"open: open failed hard", "close: close failed hard"}, reports)

	// Without a reporter panics are still contained.
	open, closeFn = iface.guard(nil)
	assert.NotPanics(t, func() {
		open("/dev/input/event0", 0)
		closeFn(3)
	})
}

func TestGuardForwardsFlags(t *testing.T) {
	var gotPath string
	var gotFlags int
	iface := Interface{
		Open: func(path string, flags int) (int, error) {
			gotPath, gotFlags = path, flags
			return 42, nil
		},
		Close: func(int) {},
	}
	open, _ := iface.guard(nil)
	assert.Equal(t, int32(42), open("/dev/input/event3", 0x802))
	assert.Equal(t, "/dev/input/event3", gotPath)
	assert.Equal(t, 0x802, gotFlags)
}

func TestDispatchResult(t *testing.T) {
	assert.NoError(t, dispatchResult(0))
	assert.NoError(t, dispatchResult(-int32(syscall.EAGAIN)))

	err := dispatchResult(-int32(syscall.EBADF))
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "libinput: dispatch: bad file descriptor", err.Error())
}
