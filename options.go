package joiql

// options.go handles options that can be used to control the GraphQL server.
// These options are just passed on to the handler. (See internal/handler for
// details on how closures are used to handle options.)

import (
	"github.com/jensneuse/abstractlogger"
)

type options struct {
	logger abstractlogger.Logger
	indent bool
}

func newOptions() *options {
	return &options{logger: abstractlogger.NoopLogger}
}

// WithLogger sets the logger used by the HTTP handler to record requests and
// execution errors. Without this option nothing is logged.
func WithLogger(logger abstractlogger.Logger) func(*options) {
	return func(opt *options) {
		opt.logger = logger
	}
}

// WithIndent controls whether JSON responses are indented, which is handy when
// poking at a server with curl but wasteful in production.
func WithIndent(on bool) func(*options) {
	return func(opt *options) {
		opt.indent = on
	}
}
