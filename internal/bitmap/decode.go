// Package bitmap decodes watch face frame images.
//
// Frames ship as PNG, JPEG, GIF, BMP or WebP. Every decoded frame is
// returned as *image.NRGBA so renderers see one pixel layout regardless of
// the source encoding.
package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	_ "golang.org/x/image/bmp"  // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP
)

var (
	// ErrUnsupportedFormat is returned when the data is not a known image format.
	ErrUnsupportedFormat = errors.New("bitmap: unsupported format")

	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("bitmap: empty data")
)

// Decode reads one image from r, detecting the format from its header.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyData
		}
		return nil, fmt.Errorf("bitmap: read: %w", err)
	}

	img, _, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img as *image.NRGBA with its origin at (0, 0), converting
// when necessary. An NRGBA image already at the origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
