// Package watchface reads watch face packages and turns them into a
// renderable model.
//
// # Overview
//
// A watch face package is a zip archive, or a directory, holding a JSON
// descriptor (watchface.json) and the bitmaps it names. The descriptor gives
// a canvas size and an ordered list of item records. Each record becomes a
// typed Item: static art, digit runs bound to the clock, rotating hands and
// gauges, weather and moon-phase pictures, and tap-action regions.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/watchface"
//	    "github.com/gogpu/watchface/archive"
//	)
//
//	pkg, err := archive.Open("face.zip")
//	if err != nil { ... }
//	defer pkg.Close()
//
//	doc, err := watchface.Load(pkg)
//	if err != nil { ... }
//
//	for _, sp := range doc.Sprites(watchface.NewState(time.Now())) {
//	    // draw sp.Frame centered on (sp.X, sp.Y), turned sp.Angle degrees
//	}
//
// # Errors
//
// Only document-level problems fail a parse: an unreadable descriptor or a
// missing or non-positive width or height, reported as *DocumentError.
// A bad item record is skipped and reported as *ItemError through
// Document.Skipped, the package logger and WithSkipHandler. Frames that
// cannot be opened or decoded are dropped from their item.
//
// # Angles
//
// Angles are in degrees. Zero leaves a frame as drawn, and positive angles
// turn it clockwise on the y-down canvas.
//
// # Concurrency
//
// A Document is immutable and may be shared. ArchiveResolver is safe for
// concurrent use, and WithConcurrency parses item records in parallel
// without changing the result.
package watchface
