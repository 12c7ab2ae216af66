package xmlcodec

import "go.uber.org/zap"

// DefaultIndent is the indentation used by encoders unless WithIndent is passed.
const DefaultIndent = "    "

type options struct {
	indent string
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{
		indent: DefaultIndent,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// An Option configures an Encoder or a Decoder.
type Option func(*options)

// WithIndent sets the string used to indent nested elements.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithLogger sets the logger used to report data that is not mapped to a declared field:
// undeclared data captured by decoders and list items skipped by encoders.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
