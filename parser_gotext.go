package fontmap

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// It is registered under the name "gotext" and can be selected with
// WithParser("gotext"). Compared to the default x/image backend it reads
// a wider range of OpenType name and metric tables.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return &gotextParsedFont{face: face, upem: float64(face.Upem())}, nil
}

// gotextParsedFont implements ParsedFont on top of a go-text font.Face.
//
// font.Face is not safe for concurrent use. FontMap guarantees
// single-threaded access: resolution runs to completion on one goroutine,
// and later reads are ordered after it by the Synchronize happens-before
// edge.
type gotextParsedFont struct {
	face *font.Face
	upem float64
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	return f.scale(f.face.HorizontalAdvance(font.GID(glyphIndex)), size)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *gotextParsedFont) GlyphBounds(glyphIndex uint16, size float64) Rect {
	ext, ok := f.face.GlyphExtents(font.GID(glyphIndex))
	if !ok {
		return Rect{}
	}

	// YBearing is the top edge of the glyph; Height extends downward from
	// it and is negative for upright glyphs.
	return Rect{
		MinX: f.scale(ext.XBearing, size),
		MinY: f.scale(ext.YBearing+ext.Height, size),
		MaxX: f.scale(ext.XBearing+ext.Width, size),
		MaxY: f.scale(ext.YBearing, size),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(size float64) FontMetrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}

	descent := f.scale(ext.Descender, size)
	if descent < 0 {
		descent = -descent
	}

	return FontMetrics{
		Ascent:  f.scale(ext.Ascender, size),
		Descent: descent,
		LineGap: f.scale(ext.LineGap, size),
	}
}

// scale converts a value in font units to pixels at the given size.
func (f *gotextParsedFont) scale(v float32, size float64) float64 {
	if f.upem == 0 {
		return 0
	}
	return float64(v) * size / f.upem
}
