// Package preview renders still snapshots of a parsed watch face and lists
// its contents. It backs the owfpreview command.
package preview

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/gogpu/watchface"
)

// Options control a snapshot.
type Options struct {
	// Background fills the canvas before drawing. Nil leaves it transparent.
	Background color.Color
}

// Render draws every sprite of doc for s onto a canvas of the document's
// size, in render order.
func Render(doc *watchface.Document, s *watchface.State, opts Options) image.Image {
	dc := gg.NewContext(doc.Width(), doc.Height())
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	for _, sp := range doc.Sprites(s) {
		drawSprite(dc, sp)
	}
	return dc.Image()
}

func drawSprite(dc *gg.Context, sp watchface.Sprite) {
	dc.Push()
	defer dc.Pop()

	dc.Translate(sp.X, sp.Y)
	if sp.Angle != 0 {
		dc.Rotate(gg.Radians(sp.Angle))
	}
	dc.DrawImageAnchored(sp.Frame, 0, 0, 0.5, 0.5)
}
