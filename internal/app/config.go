package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"zc-features/internal/enrich"
	"zc-features/internal/model"
)

// Config holds application configuration from env
type Config struct {
	DataDir        string `envconfig:"DATA_DIR" default:"data"`
	FrontFile      string `envconfig:"FRONT_FILE"`
	ContractsDir   string `envconfig:"CONTRACTS_DIR"`
	ContractPrefix string `envconfig:"CONTRACT_PREFIX" default:"ZC"`
	CombinedFile   string `envconfig:"COMBINED_FILE"` // when set, bars are read from here instead of contracts
	OutputDir      string `envconfig:"OUTPUT_DIR"`
	Profile        string `envconfig:"PROFILE"`
	SaveFormat     string `envconfig:"SAVE_FORMAT"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"` // debug | info | warn | error
	RangeStart     string `envconfig:"RANGE_START"`              // 2006-01-02 15:04:05, optional
	RangeEnd       string `envconfig:"RANGE_END"`
	RangeCount     int    `envconfig:"RANGE_COUNT" default:"0"` // > 0: first N bars from RANGE_START, RANGE_END ignored
	ResamplePeriod string `envconfig:"RESAMPLE_PERIOD"`         // D | W | M | Y, optional
	StatAttr       string `envconfig:"STAT_ATTR"`               // column summarized in the run report, optional
	StatMethod     string `envconfig:"STAT_METHOD" default:"Mean"`
	Enrich         EnrichConfig
}

// EnrichConfig mirrors enrich.Params.
type EnrichConfig struct {
	Start      int    `envconfig:"ENRICH_START" default:"0"`
	End        int    `envconfig:"ENRICH_END" default:"-1"`
	Window     int    `envconfig:"ENRICH_WINDOW" default:"4"`
	StepG      int    `envconfig:"ENRICH_STEP_G" default:"2"`
	GroupSize  int    `envconfig:"ENRICH_GROUP" default:"2"`
	StepH      int    `envconfig:"ENRICH_STEP_H" default:"2"`
	OffsetMode string `envconfig:"ENRICH_OFFSET_MODE" default:"absolute"`
}

// LoadConfig reads config from environment, loading .env first if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ContractsDir == "" {
		c.ContractsDir = filepath.Join(c.DataDir, c.ContractPrefix)
	}
	if c.FrontFile == "" {
		c.FrontFile = filepath.Join(c.ContractsDir, "front.csv")
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.DataDir, "features")
	}
	if c.SaveFormat == "" {
		c.SaveFormat = saveFormatForProfile(c.Profile)
	}
	if c.StatAttr != "" && c.StatMethod == "" {
		c.StatMethod = "Mean"
	}
}

func saveFormatForProfile(profile string) string {
	switch profile {
	case "dev", "development":
		return "csv"
	case "prod", "production", "":
		return "parquet"
	default:
		return "parquet"
	}
}

// Params converts the enrich section to enrich.Params.
func (c *Config) Params() (enrich.Params, error) {
	mode, err := enrich.ParseOffsetMode(c.Enrich.OffsetMode)
	if err != nil {
		return enrich.Params{}, err
	}
	return enrich.Params{
		Start:     c.Enrich.Start,
		End:       c.Enrich.End,
		Window:    c.Enrich.Window,
		StepG:     c.Enrich.StepG,
		GroupSize: c.Enrich.GroupSize,
		StepH:     c.Enrich.StepH,
		Offset:    mode,
	}, nil
}

// TimeRange returns the configured slice bounds. ok is false when neither
// bound nor RANGE_COUNT is set; a missing bound is open-ended.
func (c *Config) TimeRange() (from, to time.Time, ok bool, err error) {
	if c.RangeStart == "" && c.RangeEnd == "" && c.RangeCount <= 0 {
		return time.Time{}, time.Time{}, false, nil
	}
	from = time.Unix(0, 0).UTC()
	to = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if c.RangeStart != "" {
		if from, err = time.ParseInLocation(model.TimeLayout, c.RangeStart, time.UTC); err != nil {
			return from, to, false, fmt.Errorf("RANGE_START: %w", err)
		}
	}
	if c.RangeEnd != "" {
		if to, err = time.ParseInLocation(model.TimeLayout, c.RangeEnd, time.UTC); err != nil {
			return from, to, false, fmt.Errorf("RANGE_END: %w", err)
		}
	}
	return from, to, true, nil
}

// CombinedOutPath returns data/combined_data.csv
func (c *Config) CombinedOutPath() string {
	return filepath.Join(c.DataDir, "combined_data.csv")
}

// ReportPath returns path to .lastrun.json (.lastrun.failed.json on failure)
func (c *Config) ReportPath() string {
	return filepath.Join(c.OutputDir, ".lastrun.json")
}
