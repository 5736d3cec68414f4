package config

// DefaultExcludes are asset glob patterns skipped by default when copying
// the assets directory into the output.
var DefaultExcludes = []string{
	"**/.DS_Store",
	"**/*.psd",
	"**/*.ai",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Data:      "portfolio.json",
		OutputDir: "dist",
		AssetsDir: "assets",
		Theme:     ThemeLight,
		Include:   []string{"**"},
		Exclude:   DefaultExcludes,
		Server: ServerConfig{
			Port:     8080,
			Tracking: true,
			DataDir:  ".folio",
		},
	}
}
