package app

import (
	"context"
	"log/slog"

	"zc-features/internal/contract"
	"zc-features/internal/model"
)

// BarSource is the abstraction used by the pipeline when building the bar table.
type BarSource interface {
	Name() string
	Bars(ctx context.Context) ([]model.Bar, error)
}

// ContractSource stitches session days from the front file and contract files.
type ContractSource struct {
	Loader *contract.Loader
}

func (s *ContractSource) Name() string { return "contracts" }

func (s *ContractSource) Bars(ctx context.Context) ([]model.Bar, error) {
	return s.Loader.LoadAll(ctx)
}

// CombinedSource reads a previously written combined bar file.
type CombinedSource struct {
	Path string
}

func (s *CombinedSource) Name() string { return "combined" }

func (s *CombinedSource) Bars(ctx context.Context) ([]model.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bars, err := contract.ReadCombined(s.Path)
	if err != nil {
		return nil, err
	}
	slog.Info("combined file loaded", "path", s.Path, "bars", len(bars))
	return bars, nil
}

// CreateSource picks the combined file when COMBINED_FILE is set, contracts otherwise.
func CreateSource(cfg *Config) BarSource {
	if cfg.CombinedFile != "" {
		return &CombinedSource{Path: cfg.CombinedFile}
	}
	return &ContractSource{Loader: &contract.Loader{
		FrontPath:    cfg.FrontFile,
		ContractsDir: cfg.ContractsDir,
		Prefix:       cfg.ContractPrefix,
	}}
}
