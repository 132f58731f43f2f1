package watchface

import "slices"

// Document is a parsed watch face. It is immutable and safe to share
// between goroutines once Parse or Load returns.
type Document struct {
	width      int
	height     int
	items      []Item
	tapActions []*TapActionItem
	skipped    []*ItemError
	source     string
}

// Width returns the canvas width in pixels.
func (d *Document) Width() int { return d.width }

// Height returns the canvas height in pixels.
func (d *Document) Height() int { return d.height }

// Items returns the items in render order.
func (d *Document) Items() []Item { return slices.Clone(d.items) }

// TapActions returns the tap-action items in descriptor order. Each is also
// present in Items.
func (d *Document) TapActions() []*TapActionItem { return slices.Clone(d.tapActions) }

// Skipped returns the errors of records that were dropped, in descriptor
// order.
func (d *Document) Skipped() []*ItemError { return slices.Clone(d.skipped) }

// Source returns the identity of the package the document came from.
func (d *Document) Source() string { return d.source }

// Sprites returns every sprite of every item for s, in render order.
func (d *Document) Sprites(s *State) []Sprite {
	var out []Sprite
	for _, it := range d.items {
		out = append(out, it.Sprites(s)...)
	}
	return out
}
