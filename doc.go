// Package fontmap provides a font-instance cache and asynchronous loader.
// It sits between a rendering layer and the filesystem/system font
// resolver: client code declares ahead of time which (font name, size,
// sample text) combinations it will need, and the cache resolves each name
// to a file, parses the file exactly once per name, and materializes one
// rendering-ready Face per (name, size) pair, pre-warmed with glyph data
// for the declared samples.
//
// The loading pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: per-size instance with a warmable glyph cache
//   - FontMap: the (name, size) → Face cache and resolution protocol
//   - DeferredFontMap: handle for building a FontMap on a background
//     goroutine and joining it exactly once
//
// # Example usage
//
//	m := fontmap.New()
//	m.Queue("DejaVu Sans", 12, "0123456789")
//	m.Queue("DejaVu Sans", 24, "Title")
//	m.AddFontPath("Icons", "assets/icons.ttf")
//	m.Queue("Icons", 16, "")
//
//	if err := m.Resolve(); err != nil {
//	    log.Fatal(err)
//	}
//	face := m.MustFont("DejaVu Sans", 12)
//
// # Background loading
//
// Font loading is expensive enough to keep off the startup path. Load
// runs the whole queue-and-resolve pipeline on a background goroutine;
// Synchronize joins it the first time a consumer needs the map:
//
//	deferred := fontmap.Load(func() (*fontmap.FontMap, error) {
//	    m := fontmap.New()
//	    m.Queue("DejaVu Sans", 12, "0123456789")
//	    return m, m.Resolve()
//	})
//
//	// ... rest of startup proceeds ...
//
//	if err := deferred.Synchronize(); err != nil {
//	    log.Fatal(err)
//	}
//	face := deferred.MustMap().MustFont("DejaVu Sans", 12)
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface. By default
// golang.org/x/image/font/opentype is used; a go-text/typesetting backend
// is available under the name "gotext", and custom parsers can be
// registered with RegisterParser:
//
//	source, err := fontmap.NewFontSource(data, fontmap.WithParser("gotext"))
//
// # Error posture
//
// Every failure mode surfaces as a typed sentinel error (ErrNotLoaded,
// ErrNameUnresolved, ...) so a host can opt into graceful degradation.
// The Must* variants preserve the fail-fast posture for hosts that treat
// fonts as a hard dependency of their UI.
package fontmap
