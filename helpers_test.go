package watchface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/gogpu/watchface/archive"
)

// nopResolver resolves no frames.
type nopResolver struct{}

func (nopResolver) ResolveFrames([]string) []image.Image { return nil }

// mapResolver resolves names from a fixed table, dropping unknown names.
type mapResolver map[string]image.Image

func (m mapResolver) ResolveFrames(names []string) []image.Image {
	var out []image.Image
	for _, n := range names {
		if img, ok := m[n]; ok {
			out = append(out, img)
		}
	}
	return out
}

// solid returns a w x h image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// testPackage builds an in-memory package from a descriptor and PNG frames.
func testPackage(t *testing.T, desc string, frames map[string]image.Image) *archive.Package {
	t.Helper()
	fsys := fstest.MapFS{archive.DescriptorName: {Data: []byte(desc)}}
	for name, img := range frames {
		fsys[name] = &fstest.MapFile{Data: pngBytes(t, img)}
	}
	p, err := archive.FromFS(fsys, "mem://"+t.Name())
	if err != nil {
		t.Fatalf("archive.FromFS: %v", err)
	}
	return p
}

// digitSheet returns eleven frames: digits 0-9 of width 10+i, and a 4px
// separator, so glyph widths identify the glyph.
func digitSheet() []image.Image {
	frames := make([]image.Image, 0, 11)
	for i := range 10 {
		frames = append(frames, solid(10+i, 8, color.NRGBA{A: 255}))
	}
	return append(frames, solid(4, 8, color.NRGBA{A: 255}))
}
