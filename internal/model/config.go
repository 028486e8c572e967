package model

import "time"

// Config holds all rulegen settings. It is assembled from defaults, the
// config file, RULEGEN_* environment variables and CLI flags.
type Config struct {
	Source  SourceConfig `yaml:"source" mapstructure:"source"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
	Cache   CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Log     LogConfig    `yaml:"log" mapstructure:"log"`
	Verbose bool         `yaml:"verbose" mapstructure:"verbose"`
}

// SourceConfig locates the workbook
type SourceConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`   // xlsx file
	Sheet string `yaml:"sheet" mapstructure:"sheet"` // worksheet holding the rows
}

// OutputConfig controls where and how the two artifacts are written
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	JSONFile    string `yaml:"json_file" mapstructure:"json_file"`
	SnippetFile string `yaml:"snippet_file" mapstructure:"snippet_file"`
	ConstName   string `yaml:"const_name" mapstructure:"const_name"` // JS constant in the snippet
}

// CacheConfig controls caching of parsed workbook rows
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Path:  "Copy of LSA_Updated_Signal.xlsx",
			Sheet: "General Settings",
		},
		Output: OutputConfig{
			Dir:         "rules",
			JSONFile:    "rules.json",
			SnippetFile: "rules_n8n_snippet.js",
			ConstName:   "RULES",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".rulegen-cache",
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
