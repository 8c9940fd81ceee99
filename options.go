package fontmap

import "github.com/gogpu/fontmap/sysfont"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" selects the go-text/typesetting backend.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// MapOption configures FontMap creation.
type MapOption func(*mapConfig)

// mapConfig holds configuration for FontMap.
type mapConfig struct {
	resolver   Resolver
	sourceOpts []SourceOption
}

// defaultMapConfig returns the default map configuration.
func defaultMapConfig() mapConfig {
	return mapConfig{
		resolver: sysfont.New(),
	}
}

// WithResolver replaces the system font resolver used for names that have
// no explicit path. Pass nil to disable system lookup entirely; resolving
// a name without an explicit path then fails with ErrNameUnresolved.
func WithResolver(r Resolver) MapOption {
	return func(c *mapConfig) {
		c.resolver = r
	}
}

// WithSourceOptions applies opts to every FontSource the map loads,
// e.g. to select a parser backend for all fonts at once.
func WithSourceOptions(opts ...SourceOption) MapOption {
	return func(c *mapConfig) {
		c.sourceOpts = opts
	}
}
