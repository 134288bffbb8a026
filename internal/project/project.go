// Package project provides the binary project file codec.
package project

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maskedsyntax/splashy/internal/page"
	"github.com/maskedsyntax/splashy/internal/raster"
	"github.com/maskedsyntax/splashy/pkg/colorutil"
	"github.com/maskedsyntax/splashy/pkg/geometry"
)

// Extension is the project file suffix.
const Extension = ".sphy"

// Version is the project format version this build reads and writes.
const Version = 1

var magic = [8]byte{'S', 'P', 'L', 'A', 'S', 'H', 'Y', 0}

// Decode failures that identify a foreign or incompatible file.
var (
	ErrBadMagic   = errors.New("not a splashy project file")
	ErrBadVersion = errors.New("unsupported project version")
)

// File is the decoded contents of a project file: document metadata plus
// one surface per layer, bottom first.
type File struct {
	Width       int
	Height      int
	ActiveLayer int
	Background  colorutil.Color
	Page        page.Pattern
	View        geometry.View
	Layers      []*raster.Surface
}

// header is the fixed 96-byte prelude of the format, little-endian. The
// blank fields keep the float64 runs 8-byte aligned.
type header struct {
	Magic       [8]byte
	Version     int32
	Width       int32
	Height      int32
	LayerCount  int32
	ActiveLayer int32
	_           [4]byte
	BgR         float64
	BgG         float64
	BgB         float64
	BgA         float64
	PageType    int32
	_           [4]byte
	OffsetX     float64
	OffsetY     float64
	Scale       float64
}

// Save writes the project to path: the header, then each layer as a
// length-prefixed PNG blob. The file is assembled in memory and written in
// one call so a failed save never leaves a truncated project behind.
func (f *File) Save(path string) error {
	var buf bytes.Buffer
	h := header{
		Magic:       magic,
		Version:     Version,
		Width:       int32(f.Width),
		Height:      int32(f.Height),
		LayerCount:  int32(len(f.Layers)),
		ActiveLayer: int32(f.ActiveLayer),
		BgR:         f.Background.R,
		BgG:         f.Background.G,
		BgB:         f.Background.B,
		BgA:         f.Background.A,
		PageType:    int32(f.Page),
		OffsetX:     f.View.OffsetX,
		OffsetY:     f.View.OffsetY,
		Scale:       f.View.Scale,
	}
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return err
	}

	for i, s := range f.Layers {
		var blob bytes.Buffer
		if err := s.EncodePNG(&blob); err != nil {
			return fmt.Errorf("layer %d: %w", i+1, err)
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint64(blob.Len())); err != nil {
			return err
		}
		buf.Write(blob.Bytes())
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Load reads a project from path. Any decode failure rejects the whole
// file; a partially read project is never returned.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, h.Version)
	}
	if h.LayerCount < 1 {
		return nil, errors.New("project has no layers")
	}

	f := &File{
		Width:       int(h.Width),
		Height:      int(h.Height),
		ActiveLayer: int(h.ActiveLayer),
		Background:  colorutil.New(h.BgR, h.BgG, h.BgB, h.BgA),
		Page:        page.Pattern(h.PageType),
		View: geometry.View{
			OffsetX: h.OffsetX,
			OffsetY: h.OffsetY,
			Scale:   h.Scale,
		},
	}

	for i := int32(0); i < h.LayerCount; i++ {
		var size uint64
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("layer %d size: %w", i+1, err)
		}
		if size > uint64(r.Len()) {
			return nil, fmt.Errorf("layer %d truncated", i+1)
		}
		blob := make([]byte, size)
		if _, err := io.ReadFull(r, blob); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		surf, err := raster.DecodePNG(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		f.Layers = append(f.Layers, surf)
	}

	return f, nil
}
