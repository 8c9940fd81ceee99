package fontmap

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource backs every Face requested for its font name; the owning
// FontMap keeps it alive for its own lifetime so that the non-owning
// references inside derived Faces stay valid.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   parsed.Name(),
	}
	s.addr = s // Self-reference for copy detection

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a rendering-ready Face at the specified size (in points).
// Multiple faces can be created from the same FontSource; each carries
// its own glyph cache.
//
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("fontmap: FontSource is nil — did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	return newFace(s, size)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by Face.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("fontmap: FontSource must not be copied by value")
	}
}
