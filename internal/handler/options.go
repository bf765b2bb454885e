package handler

// options.go handles the options closures passed to New.

import "github.com/jensneuse/abstractlogger"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for request and error logging. nil restores
// the default no-op logger.
func WithLogger(logger abstractlogger.Logger) Option {
	return func(h *Handler) {
		if logger == nil {
			logger = abstractlogger.NoopLogger
		}
		h.logger = logger
	}
}

// WithIndent controls whether JSON responses are indented.
func WithIndent(on bool) Option {
	return func(h *Handler) {
		h.indent = on
	}
}
