package enrich

import (
	"fmt"

	"zc-features/internal/model"
)

const (
	// DefaultGroupSize is the number of G-records per feature matrix.
	DefaultGroupSize = 2
	// DefaultStepH is the chunk stride over the G-sequence.
	DefaultStepH = 2
)

// GenerateH chunks g into groups of f records at offsets 0, step, 2*step, ...
// and aggregates each group. Generation stops at the first chunk shorter
// than f; that chunk and everything after it produce nothing.
func GenerateH(g []GRecord, f, step int) ([]model.FeatureMatrix, error) {
	if f < 0 || step <= 0 {
		return nil, fmt.Errorf("h-sequence group=%d step=%d: %w", f, step, ErrInvalidParam)
	}
	var out []model.FeatureMatrix
	for off := 0; off < len(g); off += step {
		end := off + f
		if end > len(g) {
			end = len(g)
		}
		chunk := g[off:end]
		if len(chunk) < f {
			break
		}
		m, err := Aggregate(chunk)
		if err != nil {
			return nil, fmt.Errorf("h-sequence chunk at %d: %w", off, err)
		}
		out = append(out, m)
	}
	return out, nil
}
