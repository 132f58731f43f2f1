package main

import (
	"github.com/gogpu/watchface"
	"github.com/gogpu/watchface/archive"
)

// facePackage is an opened package that must be closed after loading.
type facePackage interface {
	watchface.Archive
	Close() error
}

var openPackage = func(path string) (facePackage, error) {
	return archive.Open(path)
}

// loadFace parses the package at path. Frames are decoded during the load,
// so the package is closed before returning, on success and on failure.
func loadFace(path string, concurrency int) (*watchface.Document, error) {
	pkg, err := openPackage(path)
	if err != nil {
		return nil, err
	}
	doc, err := watchface.Load(pkg, watchface.WithConcurrency(concurrency))
	if cerr := pkg.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
