/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

// Option configures a Context at construction.
type Option func(*options)

type options struct {
	native   Native
	logger   Logger
	priority LogPriority
}

func defaultOptions() options {
	return options{priority: LogError}
}

// WithNative selects the native engine. The default is [System].
func WithNative(n Native) Option {
	return func(o *options) {
		o.native = n
	}
}

// WithLogger routes libinput's log messages to l instead of stderr.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLogPriority sets the minimum priority forwarded to the logger.
func WithLogPriority(p LogPriority) Option {
	return func(o *options) {
		o.priority = p
	}
}
