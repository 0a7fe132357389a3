package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"zc-features/internal/model"
)

// CSVSaver lưu dữ liệu dưới dạng CSV.
// Features: header matrix,row,block,stat,Open,High,Low,Close,TotalVolume.
// Bars: header Timestamp,Open,High,Low,Close,TotalVolume,Volume.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(matrices []model.FeatureMatrix, path string) error {
	header := append([]string{"matrix", "row", "block", "stat"}, model.Columns[:]...)
	return writeCSV(path, header, func(w *csv.Writer) error {
		for _, r := range Flatten(matrices) {
			if err := w.Write([]string{
				strconv.Itoa(r.Matrix),
				strconv.Itoa(r.Row),
				r.Block,
				r.Stat,
				floatStr(r.Open),
				floatStr(r.High),
				floatStr(r.Low),
				floatStr(r.Close),
				floatStr(r.TotalVolume),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (CSVSaver) SaveBars(bars []model.Bar, path string) error {
	header := []string{"Timestamp", "Open", "High", "Low", "Close", "TotalVolume", "Volume"}
	return writeCSV(path, header, func(w *csv.Writer) error {
		for _, b := range bars {
			if err := w.Write([]string{
				b.Time().Format(model.TimeLayout),
				floatStr(b.Open),
				floatStr(b.High),
				floatStr(b.Low),
				floatStr(b.Close),
				floatStr(b.TotalVolume),
				floatStr(b.Volume),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
