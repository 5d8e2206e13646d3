// Package text renders short label strings onto raster images.
//
// It shapes text with go-text/typesetting's HarfBuzz implementation,
// extracts glyph outlines with golang.org/x/image/font/sfnt and fills
// them with golang.org/x/image/vector. The package is sized for axis
// labels and annotations, not for paragraph layout.
package text

import (
	"bytes"
	"errors"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Errors reported when loading font data.
var (
	ErrEmptyFontData = errors.New("text: empty font data")
	ErrInvalidFont   = errors.New("text: cannot parse font data")
)

// Source represents a loaded font file.
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
type Source struct {
	data     []byte
	sfntFont *sfnt.Font   // outline extraction
	shaped   *gtfont.Font // HarfBuzz shaping

	// bufPool pools sfnt.Buffer instances; sfnt.Buffer is not safe for
	// concurrent use but is cheap to reuse across sequential calls.
	bufPool sync.Pool
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, ErrInvalidFont
	}

	shapedFace, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, ErrInvalidFont
	}

	s := &Source{
		data:     dataCopy,
		sfntFont: parsed,
		shaped:   shapedFace.Font,
	}
	s.bufPool.New = func() any { return &sfnt.Buffer{} }
	return s, nil
}

// Face creates a Face of this source at the given pixel size.
func (s *Source) Face(size float64) *Face {
	return &Face{source: s, size: size}
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *Source
)

// DefaultSource returns the shared Source for the embedded Go Regular
// font. The font ships with the package, so no filesystem access or asset
// download is needed.
func DefaultSource() *Source {
	defaultSourceOnce.Do(func() {
		s, err := NewSource(goregular.TTF)
		if err != nil {
			// The embedded font is known-good; failing to parse it is a
			// build corruption, not a runtime condition.
			panic("text: embedded font failed to parse: " + err.Error())
		}
		defaultSource = s
	})
	return defaultSource
}

// acquireBuffer returns a pooled sfnt.Buffer.
func (s *Source) acquireBuffer() *sfnt.Buffer {
	return s.bufPool.Get().(*sfnt.Buffer)
}

// releaseBuffer returns a buffer to the pool.
func (s *Source) releaseBuffer(b *sfnt.Buffer) {
	s.bufPool.Put(b)
}
