//go:build !linux

/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import (
	"context"
	"errors"
)

var errNoReadiness = errors.New("libinput: event streams require linux")

type readiness struct{}

func newReadiness(int) (*readiness, error) { return nil, errNoReadiness }

func (*readiness) wait(context.Context) error { return errNoReadiness }
func (*readiness) clear()                     {}
func (*readiness) Close() error               { return nil }
