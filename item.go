package watchface

import (
	"image"
	"slices"
)

// Item is one renderable element of a watch face, anchored at a center
// point. Items are immutable once parsed.
type Item interface {
	// Type returns the descriptor type code of the item's variant.
	Type() ItemType

	// Center returns the anchor and rotation pivot, origin top-left.
	Center() image.Point

	// Frames returns a copy of the resolved frames. The slice may be
	// empty when no frame could be resolved; that means nothing to draw.
	Frames() []image.Image

	// Sprites returns what to draw for the live state s, in draw order.
	// s must not be nil.
	Sprites(s *State) []Sprite
}

// Sprite is one frame placed on the canvas.
type Sprite struct {
	Frame image.Image

	// X and Y locate the center of Frame on the canvas.
	X, Y float64

	// Angle rotates Frame about (X, Y), in degrees, clockwise positive.
	Angle float64
}

// base holds the fields every variant shares.
type base struct {
	center image.Point
	frames []image.Image
}

func newBase(cx, cy int, frames []image.Image) base {
	return base{center: image.Pt(cx, cy), frames: slices.Clone(frames)}
}

func (b base) Center() image.Point    { return b.center }
func (b base) Frames() []image.Image { return slices.Clone(b.frames) }

// frameMod returns frame i modulo the frame count.
func (b base) frameMod(i int) (image.Image, bool) {
	n := len(b.frames)
	if n == 0 {
		return nil, false
	}
	i %= n
	if i < 0 {
		i += n
	}
	return b.frames[i], true
}

// centered places a single frame on the item's center.
func (b base) centered(img image.Image, angle float64) []Sprite {
	return []Sprite{{
		Frame: img,
		X:     float64(b.center.X),
		Y:     float64(b.center.Y),
		Angle: angle,
	}}
}

// StaticItem draws its first frame unconditionally.
type StaticItem struct {
	base
}

// NewStaticItem creates a static item. The frames slice is copied.
func NewStaticItem(cx, cy int, frames []image.Image) *StaticItem {
	return &StaticItem{base: newBase(cx, cy, frames)}
}

func (*StaticItem) Type() ItemType { return TypeStatic }

func (it *StaticItem) Sprites(*State) []Sprite {
	if len(it.frames) == 0 {
		return nil
	}
	return it.centered(it.frames[0], 0)
}

// TapActionItem is a static item that also marks a circular touch region
// launching an external component.
type TapActionItem struct {
	StaticItem
	packageName string
	className   string
	rng         int
}

// NewTapActionItem creates a tap-action item. The frames slice is copied.
func NewTapActionItem(cx, cy int, frames []image.Image, packageName, className string, rng int) *TapActionItem {
	return &TapActionItem{
		StaticItem:  StaticItem{base: newBase(cx, cy, frames)},
		packageName: packageName,
		className:   className,
		rng:         rng,
	}
}

func (*TapActionItem) Type() ItemType { return TypeTapAction }

// PackageName identifies the package to launch on tap.
func (it *TapActionItem) PackageName() string { return it.packageName }

// ClassName identifies the component within the package to launch.
func (it *TapActionItem) ClassName() string { return it.className }

// Range is the radius of the touch region around the center, in pixels.
func (it *TapActionItem) Range() int { return it.rng }

// WeatherItem shows the frame matching the current weather condition.
type WeatherItem struct {
	base
}

// NewWeatherItem creates a weather item. The frames slice is copied.
func NewWeatherItem(cx, cy int, frames []image.Image) *WeatherItem {
	return &WeatherItem{base: newBase(cx, cy, frames)}
}

func (*WeatherItem) Type() ItemType { return TypeWeather }

func (it *WeatherItem) Sprites(s *State) []Sprite {
	img, ok := it.frameMod(int(s.Weather))
	if !ok {
		return nil
	}
	return it.centered(img, 0)
}

// MoonPhaseItem shows the frame matching the current moon phase.
type MoonPhaseItem struct {
	base
}

// NewMoonPhaseItem creates a moon-phase item. The frames slice is copied.
func NewMoonPhaseItem(cx, cy int, frames []image.Image) *MoonPhaseItem {
	return &MoonPhaseItem{base: newBase(cx, cy, frames)}
}

func (*MoonPhaseItem) Type() ItemType { return TypeMoonPhase }

func (it *MoonPhaseItem) Sprites(s *State) []Sprite {
	img, ok := it.frameMod(int(s.MoonPhase))
	if !ok {
		return nil
	}
	return it.centered(img, 0)
}

// RotatableItem turns a frame about its center by an angle derived from a
// live value. When it has several frames, the frame is also chosen from the
// value, so gauges can swap artwork as they sweep.
type RotatableItem struct {
	base
	kind     RotatableKind
	rotation Rotation
}

// NewRotatableItem creates a rotatable item. The frames slice is copied.
func NewRotatableItem(cx, cy int, frames []image.Image, kind RotatableKind, r Rotation) *RotatableItem {
	return &RotatableItem{base: newBase(cx, cy, frames), kind: kind, rotation: r}
}

func (*RotatableItem) Type() ItemType { return TypeRotatable }

// Kind returns the rotatable sub-kind.
func (it *RotatableItem) Kind() RotatableKind { return it.kind }

// Rotation returns the item's angular parameters.
func (it *RotatableItem) Rotation() Rotation { return it.rotation }

// Angle returns the draw angle for s.
func (it *RotatableItem) Angle(s *State) float64 {
	return it.rotation.Angle(it.kind, s.Value(it.kind))
}

func (it *RotatableItem) Sprites(s *State) []Sprite {
	n := len(it.frames)
	if n == 0 {
		return nil
	}
	v := s.Value(it.kind)
	img := it.frames[FrameIndex(it.kind, v, n)]
	return it.centered(img, it.rotation.Angle(it.kind, v))
}
