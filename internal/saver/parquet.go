package saver

import (
	"github.com/parquet-go/parquet-go"

	"zc-features/internal/model"
)

// ParquetSaver lưu dữ liệu dưới dạng Parquet, one FeatureRow per matrix row.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(matrices []model.FeatureMatrix, path string) error {
	return parquet.WriteFile(path, Flatten(matrices))
}

func (ParquetSaver) SaveBars(bars []model.Bar, path string) error {
	return parquet.WriteFile(path, bars)
}

// ReadFeatures loads matrices written by ParquetSaver.Save.
func ReadFeatures(path string) ([]model.FeatureMatrix, error) {
	rows, err := parquet.ReadFile[FeatureRow](path)
	if err != nil {
		return nil, err
	}
	return Unflatten(rows), nil
}
