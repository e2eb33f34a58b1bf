package bmfont

// Config holds the parameters of one atlas generation run.
type Config struct {
	// FontPath is the path of the TrueType/OpenType font file to use.
	// Its file name without extension names the generated artifacts.
	FontPath string

	// BaseDir is the assets directory. The description file is written
	// to BaseDir/fonts and the texture to BaseDir/textures; both
	// directories are created if missing.
	// Default: "."
	BaseDir string

	// Height is the pixel height of the generated font. A close
	// approximate value is used by the rasterizer. This drives the
	// final texture size, which is just big enough for all 256 glyphs.
	// Default: 48
	Height int

	// Encoding names the text encoding that maps the character codes
	// 0..255 to the characters whose glyphs are rendered.
	// Default: "latin-1"
	Encoding string
}

// DefaultConfig returns the default generation configuration.
// FontPath has no default and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		BaseDir:  ".",
		Height:   48,
		Encoding: "latin-1",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FontPath == "" {
		return &ConfigError{Field: "FontPath", Reason: "must not be empty"}
	}
	if c.BaseDir == "" {
		return &ConfigError{Field: "BaseDir", Reason: "must not be empty"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be at least 1"}
	}
	if c.Height > 1024 {
		return &ConfigError{Field: "Height", Reason: "must be at most 1024"}
	}
	if c.Encoding == "" {
		return &ConfigError{Field: "Encoding", Reason: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "bmfont: invalid config." + e.Field + ": " + e.Reason
}
