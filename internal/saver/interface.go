package saver

import (
	"strings"

	"zc-features/internal/model"
)

// Saver persists feature matrices and bar tables in one file format.
// The pipeline depends only on this interface; the format is chosen by config.
type Saver interface {
	Save(matrices []model.FeatureMatrix, path string) error
	SaveBars(bars []model.Bar, path string) error
	Extension() string
}

// NewSaver creates implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

// FeatureRow is one row of a feature matrix flattened for tabular formats.
type FeatureRow struct {
	Matrix      int     `json:"matrix" parquet:"matrix"`
	Row         int     `json:"row" parquet:"row"`
	Block       string  `json:"block" parquet:"block,dict"`
	Stat        string  `json:"stat" parquet:"stat,dict"`
	Open        float64 `json:"open" parquet:"open"`
	High        float64 `json:"high" parquet:"high"`
	Low         float64 `json:"low" parquet:"low"`
	Close       float64 `json:"close" parquet:"close"`
	TotalVolume float64 `json:"total_volume" parquet:"total_volume"`
}

// Flatten turns matrices into rows, matrix-major.
func Flatten(matrices []model.FeatureMatrix) []FeatureRow {
	rows := make([]FeatureRow, 0, len(matrices)*len(model.FeatureMatrix{}))
	for k, m := range matrices {
		for r, v := range m {
			block, stat := model.RowLabel(r)
			rows = append(rows, FeatureRow{
				Matrix: k, Row: r, Block: block, Stat: stat,
				Open: v[0], High: v[1], Low: v[2], Close: v[3], TotalVolume: v[4],
			})
		}
	}
	return rows
}

// Unflatten rebuilds matrices from rows written by Flatten. Rows with a
// negative matrix index or an out-of-range row are skipped.
func Unflatten(rows []FeatureRow) []model.FeatureMatrix {
	n := 0
	for _, r := range rows {
		if r.Matrix+1 > n {
			n = r.Matrix + 1
		}
	}
	out := make([]model.FeatureMatrix, n)
	for _, r := range rows {
		if r.Matrix < 0 || r.Row < 0 || r.Row >= len(out[r.Matrix]) {
			continue
		}
		out[r.Matrix][r.Row] = model.Vector{r.Open, r.High, r.Low, r.Close, r.TotalVolume}
	}
	return out
}
