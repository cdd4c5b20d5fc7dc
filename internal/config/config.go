// Package config assembles runtime settings for the bookstore CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order of precedence (later sources win).
package config

// Config holds runtime settings for the bookstore CLI.
//
// Fields:
//   - DataDir: directory holding the accounts, books, and ledger files.
//   - LogLevel: minimum level for stderr logging (debug, info, warn, error).
type Config struct {
	DataDir  string `env:"BOOKSTORE_DATA_DIR" json:"data_dir"`
	LogLevel string `env:"BOOKSTORE_LOG_LEVEL" json:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".data"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), the environment, and command-line
// flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
