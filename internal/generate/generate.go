// Package generate renders the icon set and writes it to disk.
package generate

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/bubbleicon/internal/icon"
	"github.com/Mavwarf/bubbleicon/internal/paths"
)

// DefaultSizes are the icon sizes a browser extension manifest expects.
var DefaultSizes = []int{16, 48, 128}

// FaviconName is the file written when Options.Favicon is set.
const FaviconName = "favicon.ico"

// faviconSize is the render size embedded in the favicon.
const faviconSize = 48

// Options controls a generation run.
type Options struct {
	Dir      string       // output directory, created if missing
	Sizes    []int        // nil = DefaultSizes
	Favicon  bool         // also write favicon.ico
	Progress func(Result) // called after each file is written, may be nil
}

// Result describes one written file.
type Result struct {
	Size  int
	Path  string
	Bytes int
}

// FileName returns the PNG file name for a given icon size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Run renders every size in opts.Sizes and writes it to opts.Dir,
// overwriting existing files. It stops at the first error; files written
// before the failure are left in place.
func Run(opts Options) ([]Result, error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := os.MkdirAll(opts.Dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var results []Result
	emit := func(r Result) {
		results = append(results, r)
		if opts.Progress != nil {
			opts.Progress(r)
		}
	}

	for _, size := range sizes {
		data, err := EncodePNG(size)
		if err != nil {
			return results, fmt.Errorf("encoding %s: %w", FileName(size), err)
		}
		p := filepath.Join(opts.Dir, FileName(size))
		if err := paths.AtomicWrite(p, data); err != nil {
			return results, fmt.Errorf("writing %s: %w", FileName(size), err)
		}
		emit(Result{Size: size, Path: p, Bytes: len(data)})
	}

	if opts.Favicon {
		data, err := EncodeICO(faviconSize)
		if err != nil {
			return results, fmt.Errorf("encoding %s: %w", FaviconName, err)
		}
		p := filepath.Join(opts.Dir, FaviconName)
		if err := paths.AtomicWrite(p, data); err != nil {
			return results, fmt.Errorf("writing %s: %w", FaviconName, err)
		}
		emit(Result{Size: faviconSize, Path: p, Bytes: len(data)})
	}
	return results, nil
}

// EncodePNG renders the icon at size and returns it PNG-encoded with the
// encoder's default settings.
func EncodePNG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, icon.Draw(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeICO renders the icon at size and returns it as a single-image ICO.
func EncodeICO(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, icon.Draw(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
