// Package archive opens watch face packages.
//
// A package is a zip file or a directory holding a JSON descriptor named
// watchface.json and the frame images it references. The descriptor may sit
// at the root or inside a single top-level directory; frame names resolve
// relative to the descriptor.
//
// Entry names are matched after Unicode NFC normalization, with backslashes
// treated as separators, so packages zipped on systems that store
// decomposed names still resolve.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DescriptorName is the file name of the JSON descriptor.
const DescriptorName = "watchface.json"

// ErrNoDescriptor is returned when a package has no descriptor.
var ErrNoDescriptor = errors.New("archive: no " + DescriptorName + " found")

// Package is an opened watch face package. It is safe for concurrent use.
type Package struct {
	fsys   fs.FS
	source string
	names  map[string]string // normalized name -> entry name
	closer io.Closer
}

// FromFS opens the package rooted in fsys. source is reported by Source.
func FromFS(fsys fs.FS, source string) (*Package, error) {
	root, err := findRoot(fsys)
	if err != nil {
		return nil, err
	}
	if root != "." {
		if fsys, err = fs.Sub(fsys, root); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}
	}

	p := &Package{fsys: fsys, source: source, names: make(map[string]string)}
	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			p.names[normalize(name)] = name
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive: index %s: %w", source, err)
	}
	return p, nil
}

// OpenDir opens a package unpacked in a directory.
func OpenDir(dir string) (*Package, error) {
	return FromFS(os.DirFS(dir), dir)
}

// OpenZip opens a zipped package. The caller must Close it.
func OpenZip(name string) (*Package, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	p, err := FromFS(zr, name)
	if err != nil {
		_ = zr.Close()
		return nil, err
	}
	p.closer = zr
	return p, nil
}

// NewZip opens a zipped package held in r.
func NewZip(r io.ReaderAt, size int64, source string) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return FromFS(zr, source)
}

// Open opens the package at name, choosing zip or directory by
// what it finds there.
func Open(name string) (*Package, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	if info.IsDir() {
		return OpenDir(name)
	}
	return OpenZip(name)
}

// Descriptor opens the JSON descriptor.
func (p *Package) Descriptor() (io.ReadCloser, error) {
	return p.Open(DescriptorName)
}

// Open opens the entry name. Missing entries wrap fs.ErrNotExist.
func (p *Package) Open(name string) (io.ReadCloser, error) {
	entry, ok := p.names[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("archive: %s: %q: %w", p.source, name, fs.ErrNotExist)
	}
	f, err := p.fsys.Open(entry)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return f, nil
}

// Source returns the identity given when the package was opened.
func (p *Package) Source() string { return p.source }

// Len returns the number of file entries in the package.
func (p *Package) Len() int { return len(p.names) }

// Close releases the underlying zip file, if any.
func (p *Package) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// findRoot returns the directory holding the descriptor: the root itself,
// or the only top-level directory.
func findRoot(fsys fs.FS) (string, error) {
	if _, err := fs.Stat(fsys, DescriptorName); err == nil {
		return ".", nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), "__MACOSX") {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) == 1 {
		if _, err := fs.Stat(fsys, path.Join(dirs[0], DescriptorName)); err == nil {
			return dirs[0], nil
		}
	}
	return "", ErrNoDescriptor
}

func normalize(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimLeft(path.Clean("/"+name), "/")
	return norm.NFC.String(name)
}
