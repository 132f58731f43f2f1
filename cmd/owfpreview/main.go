// Command owfpreview renders a snapshot of a watch face package to PNG, or
// lists what the package contains.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/internal/preview"
)

func main() {
	var (
		face       = flag.String("face", "", "watch face package (zip or directory)")
		at         = flag.String("at", "", "instant to render, RFC 3339 (default now)")
		output     = flag.String("out", "", "output PNG file (default face.png)")
		configPath = flag.String("config", "", "TOML file with sensor values and output settings")
		verbose    = flag.Bool("v", false, "log skipped items and dropped frames")
		inspect    = flag.Bool("inspect", false, "list items instead of rendering")
	)
	flag.Parse()

	if *face == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	watchface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaultPreviewConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadPreviewConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *output != "" {
		cfg.Out = *output
	}

	when := time.Now()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("Invalid -at: %v", err)
		}
		when = t
	}

	doc, err := loadFace(*face, cfg.Concurrency)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	if *inspect {
		if err := preview.Describe(os.Stdout, doc); err != nil {
			log.Fatal(err)
		}
		return
	}

	img := preview.Render(doc, cfg.state(watchface.NewState(when)), preview.Options{Background: cfg.Background})
	if err := writePNG(cfg.Out, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Snapshot saved to %s (%dx%d, %d items, %d skipped)\n",
		cfg.Out, doc.Width(), doc.Height(), len(doc.Items()), len(doc.Skipped()))
}
