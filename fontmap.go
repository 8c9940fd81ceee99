package fontmap

import (
	"fmt"
	"log/slog"
)

// Resolver locates the font file for a logical font name.
// The default implementation is sysfont.Resolver, which scans the
// platform font directories; tests and embedding hosts substitute their
// own via WithResolver.
type Resolver interface {
	Resolve(name string) (string, error)
}

// request is one queued (size, sample) requirement for a font name.
type request struct {
	size   float64
	sample string
}

// instanceKey identifies one rendering-ready instance in the cache.
type instanceKey struct {
	name string
	size SizeKey
}

// FontMap caches one rendering-ready Face per (font name, size) pair.
//
// Usage follows a two-phase protocol: queue every known requirement with
// Queue (optionally overriding file paths with AddFontPath), then call
// Resolve once to materialize the cache. Font file I/O and parsing happen
// only inside Resolve, at most once per font name for the life of the
// FontMap. After a pair has been resolved, re-queueing it only extends
// the glyph warm-up of the existing entry; prior state is never
// discarded.
//
// FontMap is not safe for concurrent use. The intended model is a single
// writer: all Queue/AddFontPath calls complete before Resolve runs
// (typically on the background goroutine started by Load), and consumers
// read the cache afterwards from one thread. See DeferredFontMap for the
// ordering guarantee across the goroutine boundary.
type FontMap struct {
	paths   map[string]string
	sources map[string]*FontSource
	pending map[string][]request
	ready   map[instanceKey]*Face

	resolver   Resolver
	sourceOpts []SourceOption
}

// New creates an empty FontMap.
func New(opts ...MapOption) *FontMap {
	config := defaultMapConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &FontMap{
		paths:      make(map[string]string),
		sources:    make(map[string]*FontSource),
		pending:    make(map[string][]request),
		ready:      make(map[instanceKey]*Face),
		resolver:   config.resolver,
		sourceOpts: config.sourceOpts,
	}
}

// Queue records that a rendering-ready instance of name at size will be
// needed, warmed for sample. No I/O happens and the font's existence is
// not checked until Resolve.
func (m *FontMap) Queue(name string, size float64, sample string) {
	m.pending[name] = append(m.pending[name], request{size: size, sample: sample})
}

// AddFontPath records path as the file to load for name, bypassing the
// system resolver. It must be called before Resolve first loads that
// font; an override stored after the font was already loaded from a
// different path has no retroactive effect on materialized instances.
func (m *FontMap) AddFontPath(name, path string) {
	m.paths[name] = path
}

// Resolve materializes every queued requirement into the ready cache.
//
// For each font name with pending requests it determines the file path
// (explicit override, else the system resolver, caching the answer),
// reads and parses the file once per name, and creates or warm-extends
// the Face for each queued (size, sample). The first failure aborts the
// whole resolution and is returned as a typed error; requirements for
// names that were already materialized stay in the cache.
//
// Resolve is idempotent with respect to already-resolved pairs: calling
// it again after additional Queue calls only adds entries or extends
// existing warm-ups.
func (m *FontMap) Resolve() error {
	for name, reqs := range m.pending {
		source, err := m.loadSource(name)
		if err != nil {
			return err
		}

		for _, req := range reqs {
			key := instanceKey{name: name, size: SizeKeyOf(req.size)}
			face, ok := m.ready[key]
			if !ok {
				face = source.Face(req.size)
				m.ready[key] = face
			}
			face.WarmCache(req.sample)
		}
		delete(m.pending, name)

		Logger().Debug("fontmap: resolved font",
			slog.String("name", name),
			slog.String("path", m.paths[name]),
			slog.Int("requests", len(reqs)))
	}
	return nil
}

// Font returns the rendering-ready instance for the exact (name, size)
// pair. The pair must have been queued and resolved first; there is no
// fallback to a nearest size or a default font. A miss returns
// ErrNotLoaded.
func (m *FontMap) Font(name string, size float64) (*Face, error) {
	face, ok := m.ready[instanceKey{name: name, size: SizeKeyOf(size)}]
	if !ok {
		return nil, fmt.Errorf("%w: %q at size %v", ErrNotLoaded, name, size)
	}
	return face, nil
}

// MustFont is like Font but panics on a miss. Querying a pair that was
// never queued and resolved is a programmer error, not a data error.
func (m *FontMap) MustFont(name string, size float64) *Face {
	face, err := m.Font(name, size)
	if err != nil {
		panic(err)
	}
	return face
}

// Len returns the number of materialized (name, size) entries.
func (m *FontMap) Len() int {
	return len(m.ready)
}

// loadSource returns the parsed font for name, loading and parsing the
// file on first use. The source is retained for the life of the FontMap.
func (m *FontMap) loadSource(name string) (*FontSource, error) {
	if source, ok := m.sources[name]; ok {
		return source, nil
	}

	path, err := m.fontPath(name)
	if err != nil {
		return nil, err
	}

	source, err := NewFontSourceFromFile(path, m.sourceOpts...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}

	m.sources[name] = source
	return source, nil
}

// fontPath returns the override or resolver-provided path for name,
// caching the resolver's answer for later passes.
func (m *FontMap) fontPath(name string) (string, error) {
	if path, ok := m.paths[name]; ok {
		return path, nil
	}

	if m.resolver == nil {
		return "", fmt.Errorf("%w: %q: no resolver configured", ErrNameUnresolved, name)
	}

	path, err := m.resolver.Resolve(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrNameUnresolved, name, err)
	}

	m.paths[name] = path
	return path, nil
}
