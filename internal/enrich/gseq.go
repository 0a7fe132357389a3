package enrich

import (
	"fmt"

	"zc-features/internal/model"
)

const (
	// DefaultWindow is the number of bars reduced into one summary.
	DefaultWindow = 4
	// DefaultStepG is the slide stride of the G-sequence.
	DefaultStepG = 2
)

// GRecord pairs the summary of one window with its delta against the
// sequence baseline.
type GRecord struct {
	Nor model.Vector
	Don model.Vector
}

// window returns bars[start : start+n] clamped to the table end.
func window(bars []model.Bar, start, n int) []model.Bar {
	if start < 0 || start >= len(bars) {
		return nil
	}
	end := start + n
	if end > len(bars) {
		end = len(bars)
	}
	return bars[start:end]
}

// GenerateG slides a window of b bars across bars starting at start+step
// and emits one G-record per step. Deltas are taken against the summary of
// the first window [start, start+b), which is computed once and never re-based.
// Windows near the table end may hold fewer than b bars.
func GenerateG(bars []model.Bar, start, b, step int) ([]GRecord, error) {
	if b <= 0 || step <= 0 {
		return nil, fmt.Errorf("g-sequence window=%d step=%d: %w", b, step, ErrInvalidParam)
	}
	if start < 0 {
		return nil, fmt.Errorf("g-sequence start=%d: %w", start, ErrInvalidParam)
	}
	baseline, err := Nor(window(bars, start, b))
	if err != nil {
		return nil, fmt.Errorf("g-sequence baseline at %d: %w", start, err)
	}

	n := 0
	if first := start + step; first < len(bars) {
		n = (len(bars) - first + step - 1) / step
	}
	out := make([]GRecord, 0, n)
	for i := start + step; i < len(bars); i += step {
		rec, err := deltaRecord(&baseline, window(bars, i, b))
		if err != nil {
			return nil, fmt.Errorf("g-sequence window at %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// deltaRecord summarizes w and diffs it against baseline.
func deltaRecord(baseline *model.Vector, w []model.Bar) (GRecord, error) {
	cur, err := Nor(w)
	if err != nil {
		return GRecord{}, err
	}
	delta, ok := Don(baseline, cur)
	if !ok {
		return GRecord{}, ErrNoBaseline
	}
	return GRecord{Nor: cur, Don: delta}, nil
}
