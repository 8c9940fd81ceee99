// Package sysfont resolves logical font names to font files installed on
// the system. It is the default Resolver used by fontmap for names that
// have no explicit path override.
//
// The resolver scans the platform font directories once, on first use,
// and indexes every readable TTF/OTF file under its family name, full
// name, and file stem. Lookups are case-insensitive exact matches; there
// is no fuzzy matching or style negotiation.
package sysfont

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Sentinel errors for the sysfont package.
var (
	// ErrNotFound is returned when no installed font matches a name.
	ErrNotFound = errors.New("sysfont: font not found")

	// ErrUnsupported is returned on platforms without a known system
	// font layout.
	ErrUnsupported = errors.New("sysfont: system font lookup unsupported on this platform")
)

// Resolver maps logical font names to font file paths.
//
// The directory scan runs once, on the first Resolve call, and its result
// (or failure) is reused by every later call. Resolver is safe for
// concurrent use.
type Resolver struct {
	dirs []string
	log  *slog.Logger

	once  sync.Once
	index map[string]string
	err   error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDirs overrides the scanned directories. Used by tests and by hosts
// that bundle their own font directory.
func WithDirs(dirs ...string) Option {
	return func(r *Resolver) {
		r.dirs = dirs
	}
}

// WithLogger sets the logger for scan diagnostics. The default discards
// all output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Resolver. No I/O happens until the first Resolve call.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the path of the font file matching name. Matching is
// case-insensitive over the family name, the full font name, and the
// file stem (e.g. "DejaVuSans" for DejaVuSans.ttf).
func (r *Resolver) Resolve(name string) (string, error) {
	r.once.Do(r.buildIndex)
	if r.err != nil {
		return "", r.err
	}

	if path, ok := r.index[strings.ToLower(name)]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// buildIndex scans the font directories and fills r.index.
func (r *Resolver) buildIndex() {
	dirs := r.dirs
	if dirs == nil {
		dirs, r.err = fontDirs()
		if r.err != nil {
			return
		}
	}

	r.index = make(map[string]string)
	for _, dir := range dirs {
		// Missing directories and unreadable subtrees are skipped, not
		// errors; a partial index is still useful.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf":
				r.addFont(path)
			}
			return nil
		})
	}

	r.log.Debug("sysfont: index built",
		slog.Int("dirs", len(dirs)),
		slog.Int("entries", len(r.index)))
}

// addFont indexes one font file under its name-table names and file stem.
// The first file indexed under a key wins, so directory order decides
// between duplicates.
func (r *Resolver) addFont(path string) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	keys := []string{strings.ToLower(stem)}

	if data, err := os.ReadFile(path); err == nil {
		if f, err := opentype.Parse(data); err == nil {
			if family, err := f.Name(nil, sfnt.NameIDFamily); err == nil && family != "" {
				keys = append(keys, strings.ToLower(family))
			}
			if full, err := f.Name(nil, sfnt.NameIDFull); err == nil && full != "" {
				keys = append(keys, strings.ToLower(full))
			}
		} else {
			r.log.Warn("sysfont: skipping unparsable font file",
				slog.String("path", path))
		}
	}

	for _, key := range keys {
		if _, ok := r.index[key]; !ok {
			r.index[key] = path
		}
	}
}
