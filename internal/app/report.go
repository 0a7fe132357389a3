package app

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"zc-features/internal/enrich"
)

// Report summarizes one pipeline run.
type Report struct {
	Source     string        `json:"source"`
	Format     string        `json:"format"`
	Params     enrich.Params `json:"params"`
	Offset     string        `json:"offset_mode"`
	Bars       int           `json:"bars"`
	SlicedBars int           `json:"sliced_bars"`
	Matrices   int           `json:"matrices"`
	Combined   string        `json:"combined,omitempty"`
	Resampled  string        `json:"resampled,omitempty"`
	Stat       *StatReport   `json:"stat,omitempty"`
	Output     string        `json:"output,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    string        `json:"elapsed"`
	Reason     string        `json:"reason,omitempty"`
}

// StatReport is the STAT_ATTR/STAT_METHOD summary of the sliced bars.
// Value is set for Mean and SD; Points and Last for the series methods.
// NaN results are left nil.
type StatReport struct {
	Attr   string   `json:"attr"`
	Method string   `json:"method"`
	Value  *float64 `json:"value,omitempty"`
	Points int      `json:"points,omitempty"`
	Last   *float64 `json:"last,omitempty"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// writeRunReport writes .lastrun.json on success or .lastrun.failed.json
// when runErr is non-nil.
func writeRunReport(dir string, rep Report, runErr error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	name := ".lastrun.json"
	if runErr != nil {
		name = ".lastrun.failed.json"
		rep.Reason = runErr.Error()
	}
	p := filepath.Join(dir, name)
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return err
	}
	slog.Info("report wrote", "path", p, "matrices", rep.Matrices)
	return nil
}
