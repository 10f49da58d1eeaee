/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

import "fmt"

// LogPriority is the severity of a libinput log message.
type LogPriority int32

const (
	LogDebug LogPriority = 10
	LogInfo  LogPriority = 20
	LogError LogPriority = 30
)

func (p LogPriority) String() string {
	switch p {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogError:
		return "error"
	default:
		return fmt.Sprintf("priority(%d)", int32(p))
	}
}

// Logger receives messages emitted by libinput.
//
// Log calls happen synchronously on the dispatching goroutine while the
// context lock is held. Implementations must not call back into the Context.
type Logger interface {
	Log(priority LogPriority, message string)
}

// LoggerFunc is a function adapter for [Logger].
type LoggerFunc func(priority LogPriority, message string)

// Log implements [Logger].
func (f LoggerFunc) Log(priority LogPriority, message string) {
	f(priority, message)
}
