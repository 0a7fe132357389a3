package contract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// FrontEntry maps one trading date to its front-month contract code.
type FrontEntry struct {
	Date     time.Time
	Contract string
}

// ReadFront reads a headerless "date,contract" roll file, e.g. "2016-01-04,H16".
func ReadFront(path string) ([]FrontEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open front file %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 2
	var entries []FrontEntry
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("front file %s line %d: %w", path, line, err)
		}
		d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(rec[0]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("front file %s line %d: %w", path, line, err)
		}
		entries = append(entries, FrontEntry{Date: d, Contract: strings.TrimSpace(rec[1])})
	}
	return entries, nil
}

// GroupByContract returns distinct contracts in first-seen order and, for
// each, its distinct dates in first-seen order.
func GroupByContract(entries []FrontEntry) ([]string, map[string][]time.Time) {
	var order []string
	dates := make(map[string][]time.Time)
	seen := make(map[string]map[time.Time]bool)
	for _, e := range entries {
		if _, ok := seen[e.Contract]; !ok {
			seen[e.Contract] = make(map[time.Time]bool)
			order = append(order, e.Contract)
		}
		if seen[e.Contract][e.Date] {
			continue
		}
		seen[e.Contract][e.Date] = true
		dates[e.Contract] = append(dates[e.Contract], e.Date)
	}
	return order, dates
}
