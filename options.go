package watchface

import "log/slog"

// Option configures Load, Parse and NewArchiveResolver.
//
// Example:
//
//	doc, err := watchface.Load(a,
//	    watchface.WithLogger(logger),
//	    watchface.WithConcurrency(4),
//	)
type Option func(*options)

type options struct {
	logger      *slog.Logger
	decoder     Decoder
	concurrency int
	cacheSize   int
	source      string
	onSkip      func(*ItemError)
}

// DefaultFrameCacheSize is the per-shard capacity of the decoded frame cache.
const DefaultFrameCacheSize = 64

func defaultOptions() options {
	return options{
		concurrency: 1,
		cacheSize:   DefaultFrameCacheSize,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// log returns the per-call logger, falling back to the package logger.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithLogger sets the logger for a single call, overriding [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDecoder sets the frame decoder used by archive-backed resolvers.
// The default is [DefaultDecoder].
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

// WithConcurrency parses up to n item records at once. Results are merged in
// descriptor order, so the document is identical to a sequential parse.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithFrameCacheSize sets the per-shard capacity of the decoded frame cache.
// Values <= 0 select [DefaultFrameCacheSize].
func WithFrameCacheSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultFrameCacheSize
		}
		o.cacheSize = n
	}
}

// WithSource sets the source identity recorded on a document built by
// Parse. Load takes it from the archive instead.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSkipHandler registers a callback invoked, in descriptor order, for
// every item record that was skipped.
func WithSkipHandler(fn func(*ItemError)) Option {
	return func(o *options) {
		o.onSkip = fn
	}
}
