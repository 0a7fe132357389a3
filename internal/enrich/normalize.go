package enrich

import (
	"math"

	"zc-features/internal/model"
)

// Nor reduces a window of bars to one summary vector holding the
// Euclidean norm of each feature column. Squares are accumulated in row
// order.
func Nor(window []model.Bar) (model.Vector, error) {
	var out model.Vector
	if len(window) == 0 {
		return out, ErrEmptyWindow
	}
	rows := make([]model.Vector, len(window))
	for i, b := range window {
		rows[i] = b.Features()
	}
	for j := range out {
		var ss float64
		for i := range rows {
			x := rows[i][j]
			ss += x * x
		}
		out[j] = math.Sqrt(ss)
	}
	return out, nil
}

// Don returns current - baseline. A nil baseline means no baseline is
// available: the result is the zero vector and ok is false, and callers
// must treat it as absent rather than as a zero delta.
func Don(baseline *model.Vector, current model.Vector) (delta model.Vector, ok bool) {
	if baseline == nil {
		return model.Vector{}, false
	}
	return current.Sub(*baseline), true
}
