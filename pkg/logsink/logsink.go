/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package logsink adapts structured loggers to [libinput.Logger].
//
//	li, err := libinput.NewUdev(iface,
//	    libinput.WithLogger(logsink.Charm(log.Default())),
//	    libinput.WithLogPriority(libinput.LogInfo))
//
// Messages are stripped of the trailing newline libinput appends and tagged
// with source=libinput.
package logsink

import (
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/zap"

	"github.com/verdiwm/colpetto/pkg/libinput"
)

const source = "libinput"

func clean(message string) string {
	return strings.TrimRight(message, "\n")
}

// Charm forwards libinput messages to a charmbracelet logger. A nil logger
// uses log.Default().
func Charm(l *log.Logger) libinput.Logger {
	if l == nil {
		l = log.Default()
	}
	l = l.With("source", source)
	return libinput.LoggerFunc(func(priority libinput.LogPriority, message string) {
		msg := clean(message)
		switch {
		case priority >= libinput.LogError:
			l.Error(msg)
		case priority >= libinput.LogInfo:
			l.Info(msg)
		default:
			l.Debug(msg)
		}
	})
}

// Zap forwards libinput messages to a zap logger. A nil logger discards
// everything.
func Zap(l *zap.Logger) libinput.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	l = l.With(zap.String("source", source))
	return libinput.LoggerFunc(func(priority libinput.LogPriority, message string) {
		msg := clean(message)
		switch {
		case priority >= libinput.LogError:
			l.Error(msg)
		case priority >= libinput.LogInfo:
			l.Info(msg)
		default:
			l.Debug(msg, zap.Int32("priority", int32(priority)))
		}
	})
}
