package app

import (
	"fmt"

	"zc-features/internal/enrich"
	"zc-features/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSaver creates Saver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvideSaver(cfg *Config) (saver.Saver, error) {
	s := saver.NewSaver(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideBarSource creates the bar table source from config (for Wire).
func ProvideBarSource(cfg *Config) BarSource {
	return CreateSource(cfg)
}

// ProvideParams validates the enrichment section of config (for Wire).
func ProvideParams(cfg *Config) (enrich.Params, error) {
	return cfg.Params()
}
