/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		" error ": log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestSetLevel(t *testing.T) {
	prev := Logger.GetLevel()
	defer Logger.SetLevel(prev)

	SetLevel("debug")
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
	SetLevel("")
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestHelpers(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	var buf bytes.Buffer
	Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	Debugf("helper running on seat %s", "seat0")
	Warn("seat assignment failed", "seat", "seat1")
	Error("adding device failed", "path", "/dev/input/event9")
	Errorf("event stream stopped: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "helper running on seat seat0")
	assert.Contains(t, out, "seat=seat1")
	assert.Contains(t, out, "path=/dev/input/event9")
	assert.Contains(t, out, "event stream stopped: boom")
}
