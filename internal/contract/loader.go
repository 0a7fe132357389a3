package contract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"zc-features/internal/model"
)

// Loader builds the main-contract bar table from a front file and a
// directory of per-contract files named {Prefix}{code}.csv.
type Loader struct {
	FrontPath    string
	ContractsDir string
	Prefix       string
}

// ContractPath returns the file holding bars for contract code.
func (l *Loader) ContractPath(code string) string {
	return filepath.Join(l.ContractsDir, l.Prefix+code+".csv")
}

// LoadAll reads every front contract once and appends the session days
// mapped to it, contract by contract in roll-file order.
func (l *Loader) LoadAll(ctx context.Context) ([]model.Bar, error) {
	entries, err := ReadFront(l.FrontPath)
	if err != nil {
		return nil, err
	}
	contracts, dates := GroupByContract(entries)
	slog.Info("front file loaded", "path", l.FrontPath, "days", len(entries), "contracts", len(contracts))

	var all []model.Bar
	for _, code := range contracts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := l.ContractPath(code)
		bars, err := ReadContract(path)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", code, err)
		}
		n := len(all)
		for _, d := range dates[code] {
			all = append(all, SessionDay(bars, d)...)
		}
		slog.Debug("contract stitched", "contract", code, "days", len(dates[code]), "bars", len(all)-n)
	}
	slog.Info("bar table built", "bars", len(all))
	return all, nil
}
