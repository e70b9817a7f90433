package store

import "go.uber.org/zap"

// DefaultSuffix is the extension of record files.
const DefaultSuffix = ".data"

type options struct {
	dir       string
	hideFiles bool
	suffix    string
	logger    *zap.Logger
}

func defaultOptions() options {
	return options{
		hideFiles: true,
		suffix:    DefaultSuffix,
		logger:    zap.NewNop(),
	}
}

// Option configures a LocalStore.
type Option func(*options)

// WithDir sets the root directory. An empty dir means the working directory.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithHideFiles controls whether newly written files get the hidden marker. Default true.
func WithHideFiles(hide bool) Option {
	return func(o *options) { o.hideFiles = hide }
}

// WithSuffix overrides the record file extension (default ".data").
func WithSuffix(suffix string) Option {
	return func(o *options) {
		if suffix != "" {
			o.suffix = suffix
		}
	}
}

// WithLogger sets the diagnostic sink. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
