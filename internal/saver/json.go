package saver

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"zc-features/internal/model"
)

// JSONSaver lưu dữ liệu dưới dạng JSON (array, indent).
// Features are written as an array of 16x5 matrices; NaN becomes null.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(matrices []model.FeatureMatrix, path string) error {
	out := make([][][model.NumColumns]jsonFloat, len(matrices))
	for k, m := range matrices {
		out[k] = make([][model.NumColumns]jsonFloat, len(m))
		for r, v := range m {
			for j, x := range v {
				out[k][r][j] = jsonFloat(x)
			}
		}
	}
	return writeJSON(path, out)
}

type jsonBar struct {
	Timestamp   int64     `json:"t"`
	Open        jsonFloat `json:"o"`
	High        jsonFloat `json:"h"`
	Low         jsonFloat `json:"l"`
	Close       jsonFloat `json:"c"`
	TotalVolume jsonFloat `json:"tv"`
	Volume      jsonFloat `json:"v"`
}

func (JSONSaver) SaveBars(bars []model.Bar, path string) error {
	out := make([]jsonBar, len(bars))
	for i, b := range bars {
		out[i] = jsonBar{
			Timestamp:   b.Timestamp,
			Open:        jsonFloat(b.Open),
			High:        jsonFloat(b.High),
			Low:         jsonFloat(b.Low),
			Close:       jsonFloat(b.Close),
			TotalVolume: jsonFloat(b.TotalVolume),
			Volume:      jsonFloat(b.Volume),
		}
	}
	return writeJSON(path, out)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonFloat encodes NaN and ±Inf as null, which encoding/json rejects otherwise.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = jsonFloat(math.NaN())
		return nil
	}
	x, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = jsonFloat(x)
	return nil
}
