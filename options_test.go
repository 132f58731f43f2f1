package watchface

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)
	if o.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", o.concurrency)
	}
	if o.cacheSize != DefaultFrameCacheSize {
		t.Errorf("cacheSize = %d, want %d", o.cacheSize, DefaultFrameCacheSize)
	}
	if o.decoder != nil || o.onSkip != nil || o.source != "" {
		t.Errorf("unexpected non-zero options: %+v", o)
	}
}

func TestWithConcurrencyClamps(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{8, 8},
	}
	for _, tt := range tests {
		if got := newOptions([]Option{WithConcurrency(tt.n)}).concurrency; got != tt.want {
			t.Errorf("WithConcurrency(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestWithFrameCacheSize(t *testing.T) {
	if got := newOptions([]Option{WithFrameCacheSize(0)}).cacheSize; got != DefaultFrameCacheSize {
		t.Errorf("WithFrameCacheSize(0) = %d, want default", got)
	}
	if got := newOptions([]Option{WithFrameCacheSize(3)}).cacheSize; got != 3 {
		t.Errorf("WithFrameCacheSize(3) = %d, want 3", got)
	}
}

func TestOptionsLogFallsBackToPackageLogger(t *testing.T) {
	o := newOptions(nil)
	if o.log() != Logger() {
		t.Error("log() should return the package logger when none is set")
	}

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	o = newOptions([]Option{WithLogger(l)})
	if o.log() != l {
		t.Error("log() should return the WithLogger logger")
	}
}

func TestLaterOptionsWin(t *testing.T) {
	o := newOptions([]Option{WithSource("a"), WithSource("b"), WithConcurrency(2), WithConcurrency(5)})
	if o.source != "b" || o.concurrency != 5 {
		t.Errorf("got source %q concurrency %d, want b and 5", o.source, o.concurrency)
	}
}
