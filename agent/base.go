package agent

import "github.com/louvorkit/louvor/logging"

// BaseResponder bundles the identity and logging plumbing shared by the
// concrete responders. Embed it and supply Process.
type BaseResponder struct {
	name   string
	logger logging.Logger
}

// NewBaseResponder constructs a BaseResponder with a non-nil logger.
func NewBaseResponder(name string, logger logging.Logger) BaseResponder {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return BaseResponder{name: name, logger: logger}
}

// Name returns the responder identifier used in dispatch results and logs.
func (b *BaseResponder) Name() string { return b.name }

// Logger returns the responder's logger.
func (b *BaseResponder) Logger() logging.Logger { return b.logger }
