package fontmap

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the decoded, size-independent representation of a font
// file. One ParsedFont is shared by every Face derived from its font
// name; Faces hold non-owning references and rely on the FontMap to keep
// the ParsedFont alive.
type ParsedFont interface {
	// Name returns the font family name, falling back to the full font
	// name. Returns empty string if neither is available.
	Name() string

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given
	// size (in points).
	GlyphAdvance(glyphIndex uint16, size float64) float64

	// GlyphBounds returns the bounding box for a glyph at the given size.
	GlyphBounds(glyphIndex uint16, size float64) Rect

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) FontMetrics
}

// Rect is an axis-aligned glyph bounding box in pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below the baseline).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent + descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
