package fontmap

// Glyph holds the cached, size-specific data for a single rune.
type Glyph struct {
	// Rune is the character this glyph was looked up for.
	Rune rune

	// GID is the glyph index within the font. 0 means the font has no
	// glyph for the rune (the .notdef glyph is used).
	GID uint16

	// Advance is the horizontal advance width in pixels.
	Advance float64

	// Bounds is the glyph bounding box relative to the origin.
	Bounds Rect
}

// Face is a rendering-ready font instance at a specific size. It holds a
// non-owning reference to its FontSource and a glyph cache that is
// pre-warmed during FontMap.Resolve and extended on demand afterwards.
//
// Face is not safe for concurrent use. Warm-ups run on the loader
// goroutine; consumer reads happen after the DeferredFontMap.Synchronize
// happens-before edge, in a single-threaded continuation.
type Face struct {
	source *FontSource
	size   float64
	glyphs map[rune]Glyph
}

func newFace(source *FontSource, size float64) *Face {
	return &Face{
		source: source,
		size:   size,
		glyphs: make(map[rune]Glyph),
	}
}

// WarmCache precomputes glyph data for every rune of sample, so the first
// render of that text does not pay the lookup cost. Repeated calls merge:
// after warming "Hello" and "World" the cache covers the union of both.
func (f *Face) WarmCache(sample string) {
	for _, r := range sample {
		if _, ok := f.glyphs[r]; ok {
			continue
		}
		f.glyphs[r] = f.lookup(r)
	}
}

// Glyph returns the glyph data for r, computing and caching it on a miss.
func (f *Face) Glyph(r rune) Glyph {
	g, ok := f.glyphs[r]
	if !ok {
		g = f.lookup(r)
		f.glyphs[r] = g
	}
	return g
}

// IsWarm reports whether r is already in the glyph cache.
func (f *Face) IsWarm(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// CachedGlyphs returns the number of runes in the glyph cache.
func (f *Face) CachedGlyphs() int {
	return len(f.glyphs)
}

// Advance returns the total advance width of text in pixels.
// Glyphs not yet cached are computed and cached along the way.
func (f *Face) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += f.Glyph(r).Advance
	}
	return total
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() FontMetrics {
	return f.source.Parsed().Metrics(f.size)
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

func (f *Face) lookup(r rune) Glyph {
	parsed := f.source.Parsed()
	gid := parsed.GlyphIndex(r)
	return Glyph{
		Rune:    r,
		GID:     gid,
		Advance: parsed.GlyphAdvance(gid, f.size),
		Bounds:  parsed.GlyphBounds(gid, f.size),
	}
}
