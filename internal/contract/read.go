// Package contract loads futures minute bars from per-contract CSV files and
// stitches them into trading sessions following the front-month roll file.
package contract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"zc-features/internal/model"
)

var timeLayouts = []string{model.TimeLayout, "2006-01-02 15:04", "2006-01-02T15:04:05", "2006-01-02"}

// ErrMissingColumn is returned when a bar file lacks a required column.
var ErrMissingColumn = errors.New("contract: missing column")

var barColumns = []string{"open", "high", "low", "close", "totalvolume"}

// ParseTime parses a bar timestamp as a wall-clock time in UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q", s)
}

// ReadContract reads one contract file: a header row, the timestamp in the
// first column, then Open, High, Low, Close and TotalVolume. Volume is the
// first difference of TotalVolume over the file; the first row is NaN.
func ReadContract(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contract %s: %w", path, err)
	}
	defer f.Close()

	bars, err := readBars(f, false)
	if err != nil {
		return nil, fmt.Errorf("read contract %s: %w", path, err)
	}
	prev := math.NaN()
	for i := range bars {
		bars[i].Volume = bars[i].TotalVolume - prev
		prev = bars[i].TotalVolume
	}
	return bars, nil
}

// ReadCombined reads a combined bar file as written by saver.CSVSaver.
// Volume is taken from the file.
func ReadCombined(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open combined %s: %w", path, err)
	}
	defer f.Close()

	bars, err := readBars(f, true)
	if err != nil {
		return nil, fmt.Errorf("read combined %s: %w", path, err)
	}
	return bars, nil
}

func readBars(r io.Reader, withVolume bool) ([]model.Bar, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	want := barColumns
	if withVolume {
		want = append(append([]string(nil), barColumns...), "volume")
	}
	cols := make([]int, len(want))
	for i, name := range want {
		c, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		cols[i] = c
	}

	var bars []model.Bar
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ts, err := ParseTime(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var v [6]float64
		for i, c := range cols {
			if v[i], err = parseFloat(rec[c]); err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, want[i], err)
			}
		}
		bars = append(bars, model.Bar{
			Timestamp:   ts.UnixMilli(),
			Open:        v[0],
			High:        v[1],
			Low:         v[2],
			Close:       v[3],
			TotalVolume: v[4],
			Volume:      v[5],
		})
	}
	return bars, nil
}

// parseFloat treats an empty field as NaN.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
