package fontmap

import "errors"

// Sentinel errors for the fontmap package. The cache treats every one of
// these as a misconfiguration rather than a recoverable data error; the
// Must* helpers turn them into panics for hosts that want the fail-fast
// posture, while the error-returning variants let a host fall back to a
// default font at a higher layer.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontmap: empty font data")

	// ErrSourceUnavailable is returned when a font file is missing or
	// unreadable.
	ErrSourceUnavailable = errors.New("fontmap: font file unavailable")

	// ErrParseFailed is returned when font data cannot be parsed as a
	// valid font.
	ErrParseFailed = errors.New("fontmap: font data could not be parsed")

	// ErrNameUnresolved is returned when a font name has no explicit path
	// and the system resolver cannot locate it.
	ErrNameUnresolved = errors.New("fontmap: font name could not be resolved")

	// ErrNotLoaded is returned when querying a (name, size) pair that was
	// never queued and resolved, or a deferred map that was never
	// synchronized.
	ErrNotLoaded = errors.New("fontmap: font not loaded")

	// ErrInvalidState is returned when a DeferredFontMap is observed in
	// its transient invalid state, which indicates concurrent
	// synchronization from multiple goroutines.
	ErrInvalidState = errors.New("fontmap: deferred font map in invalid state")
)
