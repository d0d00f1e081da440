package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level walka configuration, corresponding to .walka.yml.
type Config struct {
	DataDir        string       `yaml:"data_dir" koanf:"data_dir"`
	OutputDir      string       `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir      string       `yaml:"assets_dir" koanf:"assets_dir"`
	AssetPatterns  []string     `yaml:"asset_patterns" koanf:"asset_patterns"`
	AssetExcludes  []string     `yaml:"asset_excludes" koanf:"asset_excludes"`
	HighlightTier  int          `yaml:"highlight_tier" koanf:"highlight_tier"`
	FAQMarkdown    bool         `yaml:"faq_markdown" koanf:"faq_markdown"`
	DefaultArchive string       `yaml:"default_archive" koanf:"default_archive"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Log            LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
