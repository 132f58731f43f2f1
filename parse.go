package watchface

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Load parses the watch face in a. Frames are resolved through an
// ArchiveResolver built with the same options, and the document's source is
// taken from a.
func Load(a Archive, opts ...Option) (*Document, error) {
	return LoadContext(context.Background(), a, opts...)
}

// LoadContext is Load with cancellation between item records.
func LoadContext(ctx context.Context, a Archive, opts ...Option) (*Document, error) {
	rc, err := a.Descriptor()
	if err != nil {
		return nil, &DocumentError{Kind: ErrInvalidDescriptor, Err: err}
	}
	defer func() { _ = rc.Close() }()

	opts = append(opts[:len(opts):len(opts)], WithSource(a.Source()))
	return ParseContext(ctx, rc, NewArchiveResolver(a, opts...), opts...)
}

// Parse reads a descriptor from r and builds a Document, resolving frames
// through frames.
//
// Missing or invalid width and height, and an unreadable descriptor, are
// fatal and return a *DocumentError. Any problem confined to one item record
// skips that record: it is logged, listed in Document.Skipped and passed to
// the WithSkipHandler callback, and parsing continues.
func Parse(r io.Reader, frames FrameResolver, opts ...Option) (*Document, error) {
	return ParseContext(context.Background(), r, frames, opts...)
}

// ParseContext is Parse with cancellation checked between item records.
// A canceled parse returns ctx.Err() wrapped, and no document.
func ParseContext(ctx context.Context, r io.Reader, frames FrameResolver, opts ...Option) (*Document, error) {
	o := newOptions(opts)

	var top record
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return nil, &DocumentError{Kind: ErrInvalidDescriptor, Err: err}
	}
	if top == nil {
		return nil, &DocumentError{Kind: ErrInvalidDescriptor, Err: errors.New("descriptor is not an object")}
	}

	width, err := canvasSize(top, "width")
	if err != nil {
		return nil, err
	}
	height, err := canvasSize(top, "height")
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if raw, ok := top.lookup("items"); ok {
		if err := json.Unmarshal(raw, &raws); err != nil {
			return nil, &DocumentError{Field: "items", Kind: ErrInvalidDescriptor, Err: err}
		}
	}

	p := parser{frames: frames}
	results := make([]parsed, len(raws))
	if err := p.all(ctx, raws, results, o.concurrency); err != nil {
		return nil, fmt.Errorf("watchface: parse canceled: %w", err)
	}

	doc := &Document{width: width, height: height, source: o.source}
	log := o.log()
	for _, res := range results {
		if res.err != nil {
			logSkip(log, res.err)
			doc.skipped = append(doc.skipped, res.err)
			if o.onSkip != nil {
				o.onSkip(res.err)
			}
			continue
		}
		doc.items = append(doc.items, res.item)
		if tap, ok := res.item.(*TapActionItem); ok {
			doc.tapActions = append(doc.tapActions, tap)
		}
	}
	return doc, nil
}

func canvasSize(top record, field string) (int, error) {
	v, err := top.requireInt(field)
	if err != nil {
		return 0, &DocumentError{Field: field, Kind: ErrInvalidSize, Err: err}
	}
	if v <= 0 {
		return 0, &DocumentError{Field: field, Kind: ErrInvalidSize, Err: fmt.Errorf("%d is not positive", v)}
	}
	return v, nil
}

func logSkip(log *slog.Logger, e *ItemError) {
	level := slog.LevelWarn
	if errors.Is(e, ErrUnsupportedType) && e.Type.Known() {
		level = slog.LevelDebug
	}
	log.Log(context.Background(), level, "watchface: item skipped",
		"index", e.Index,
		"type", e.Type,
		"field", e.Field,
		"err", e)
}

// parsed is the outcome of one item record: exactly one field is set.
type parsed struct {
	item Item
	err  *ItemError
}

type parser struct {
	frames FrameResolver
}

// all parses raws into results, by index, on up to n goroutines.
func (p parser) all(ctx context.Context, raws []json.RawMessage, results []parsed, n int) error {
	if n <= 1 {
		for i, raw := range raws {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.item(i, raw)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for i, raw := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.item(i, raw)
			return nil
		})
	}
	return g.Wait()
}

// item converts one record into an Item. Frames are resolved before any
// field is checked.
func (p parser) item(index int, raw json.RawMessage) parsed {
	fail := func(t ItemType, field string, kind, err error) parsed {
		return parsed{err: &ItemError{Index: index, Type: t, Field: field, Kind: kind, Err: err}}
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fail(-1, "", ErrMalformedGeometry, fmt.Errorf("%w: record is not an object", errWrongType))
	}

	frames := p.frames.ResolveFrames(rec.stringList("frames"))

	code, err := rec.requireInt("type")
	if err != nil {
		return fail(-1, "type", ErrMalformedGeometry, err)
	}
	t := ItemType(code)
	cx, err := rec.requireInt("center_x")
	if err != nil {
		return fail(t, "center_x", ErrMalformedGeometry, err)
	}
	cy, err := rec.requireInt("center_y")
	if err != nil {
		return fail(t, "center_y", ErrMalformedGeometry, err)
	}

	switch {
	case t == TypeStatic:
		return parsed{item: NewStaticItem(cx, cy, frames)}
	case t == TypeRotatable:
		return p.rotatable(rec, cx, cy, frames, fail)
	case t == TypeTapAction:
		return p.tapAction(rec, cx, cy, frames, fail)
	case t == TypeWeather:
		return parsed{item: NewWeatherItem(cx, cy, frames)}
	case t == TypeMoonPhase:
		return parsed{item: NewMoonPhaseItem(cx, cy, frames)}
	case digitTypes[t]:
		return parsed{item: NewDigitItem(t, cx, cy, frames)}
	}
	return fail(t, "type", ErrUnsupportedType, nil)
}

type failFunc func(t ItemType, field string, kind, err error) parsed

func (p parser) rotatable(rec record, cx, cy int, frames []image.Image, fail failFunc) parsed {
	code, err := rec.requireInt("rotatable_type")
	switch {
	case errors.Is(err, errMissingField):
		return fail(TypeRotatable, "rotatable_type", ErrMissingRotatableType, nil)
	case err != nil:
		return fail(TypeRotatable, "rotatable_type", ErrUnsupportedRotatableType, err)
	}

	r := DefaultRotation()
	if r.Start, err = rec.optFloat("start_angle", DefaultStartAngle); err != nil {
		return fail(TypeRotatable, "start_angle", ErrMalformedGeometry, err)
	}
	if r.Max, err = rec.optFloat("max_angle", DefaultMaxAngle); err != nil {
		return fail(TypeRotatable, "max_angle", ErrMalformedGeometry, err)
	}
	dir, err := rec.optInt("direction", int(DefaultDirection))
	if err != nil {
		return fail(TypeRotatable, "direction", ErrMalformedGeometry, err)
	}
	// Only CounterClockwise flips; every other value turns clockwise.
	if Direction(dir) == CounterClockwise {
		r.Direction = CounterClockwise
	}

	kind := RotatableKind(code)
	if !kind.Valid() {
		return fail(TypeRotatable, "rotatable_type", ErrUnsupportedRotatableType,
			fmt.Errorf("unknown rotatable type %d", code))
	}
	return parsed{item: NewRotatableItem(cx, cy, frames, kind, r)}
}

func (p parser) tapAction(rec record, cx, cy int, frames []image.Image, fail failFunc) parsed {
	pkg, err := rec.requireString("packageName")
	if err != nil {
		return fail(TypeTapAction, "packageName", ErrMalformedTapAction, err)
	}
	class, err := rec.requireString("className")
	if err != nil {
		return fail(TypeTapAction, "className", ErrMalformedTapAction, err)
	}
	rng, err := rec.requireInt("range")
	if err != nil {
		return fail(TypeTapAction, "range", ErrMalformedTapAction, err)
	}
	return parsed{item: NewTapActionItem(cx, cy, frames, pkg, class, rng)}
}
