package watchface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/watchface/internal/bitmap"
	"github.com/gogpu/watchface/internal/cache"
)

// Archive supplies the descriptor and the named frame entries of a watch
// face package. See package archive for zip and directory implementations.
type Archive interface {
	// Descriptor opens the JSON descriptor.
	Descriptor() (io.ReadCloser, error)
	// Open opens a named entry. Missing entries wrap fs.ErrNotExist.
	Open(name string) (io.ReadCloser, error)
	// Source identifies the package, typically its path or URI.
	Source() string
}

// Decoder turns encoded frame bytes into an image.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.Reader) (image.Image, error)

func (f DecoderFunc) Decode(r io.Reader) (image.Image, error) { return f(r) }

// DefaultDecoder decodes PNG, JPEG, GIF, BMP and WebP frames.
func DefaultDecoder() Decoder {
	return DecoderFunc(bitmap.Decode)
}

// FrameResolver maps an item's frame names to images. Names that cannot be
// resolved are left out, so the result may be shorter than names; it never
// fails as a whole.
type FrameResolver interface {
	ResolveFrames(names []string) []image.Image
}

// ArchiveResolver resolves frames from an Archive.
//
// Decoded frames, and failures, are memoized by name so digit sheets shared
// by several items decode once. ArchiveResolver is safe for concurrent use.
type ArchiveResolver struct {
	archive Archive
	decoder Decoder
	frames  *cache.Sharded[decodedFrame]
	log     *slog.Logger
}

type decodedFrame struct {
	img image.Image
	err error
}

var errNilFrame = errors.New("decoder returned no image")

// NewArchiveResolver creates a resolver reading from a. It honours
// WithDecoder, WithFrameCacheSize and WithLogger.
func NewArchiveResolver(a Archive, opts ...Option) *ArchiveResolver {
	o := newOptions(opts)
	d := o.decoder
	if d == nil {
		d = DefaultDecoder()
	}
	return &ArchiveResolver{
		archive: a,
		decoder: d,
		frames:  cache.NewSharded[decodedFrame](o.cacheSize),
		log:     o.log(),
	}
}

// ResolveFrames implements FrameResolver.
func (r *ArchiveResolver) ResolveFrames(names []string) []image.Image {
	out := make([]image.Image, 0, len(names))
	for _, name := range names {
		f := r.frames.GetOrCreate(name, func() decodedFrame {
			img, err := r.load(name)
			return decodedFrame{img: img, err: err}
		})
		if f.err != nil {
			r.log.Debug("watchface: frame dropped", "frame", name, "err", f.err)
			continue
		}
		out = append(out, f.img)
	}
	return out
}

func (r *ArchiveResolver) load(name string) (image.Image, error) {
	rc, err := r.archive.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	img, err := r.decoder.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	if img == nil {
		return nil, fmt.Errorf("decode %q: %w", name, errNilFrame)
	}
	return img, nil
}

// FrameStats reports frame cache activity.
type FrameStats struct {
	// Entries is the number of distinct names held, failures included.
	Entries int
	Hits    uint64
	Misses  uint64
}

// Stats returns frame cache statistics.
func (r *ArchiveResolver) Stats() FrameStats {
	s := r.frames.Stats()
	return FrameStats{Entries: s.Len, Hits: s.Hits, Misses: s.Misses}
}
