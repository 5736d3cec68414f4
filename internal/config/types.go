package config

// Theme selects the initial page theme; visitors can still toggle and
// their choice persists in the browser.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ServerConfig holds serve-mode settings.
type ServerConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	AllowAll bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Tracking bool   `yaml:"tracking" koanf:"tracking"`
	DataDir  string `yaml:"data_dir" koanf:"data_dir"`
}

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	// Data is the portfolio document source: a file path or http(s) URL.
	Data      string       `yaml:"data" koanf:"data"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string       `yaml:"assets_dir" koanf:"assets_dir"`
	Theme     Theme        `yaml:"theme" koanf:"theme"`
	Include   []string     `yaml:"include" koanf:"include"`
	Exclude   []string     `yaml:"exclude" koanf:"exclude"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
}
