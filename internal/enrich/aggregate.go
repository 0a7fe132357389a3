package enrich

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"zc-features/internal/model"
)

// Aggregate reduces a G-group to its feature matrix: eight statistics per
// column over the Nor rows stacked above the same eight over the Don rows.
func Aggregate(group []GRecord) (model.FeatureMatrix, error) {
	var m model.FeatureMatrix
	if len(group) == 0 {
		return m, ErrDegenerateGroup
	}
	nor := make([]model.Vector, len(group))
	don := make([]model.Vector, len(group))
	for i, g := range group {
		nor[i] = g.Nor
		don[i] = g.Don
	}
	norStats := describe(nor)
	donStats := describe(don)
	copy(m[:model.NumStats], norStats[:])
	copy(m[model.NumStats:], donStats[:])
	return m, nil
}

// describe computes mean, min, max, p25, p50, p75, population std and
// range per column of rows. rows must be non-empty.
func describe(rows []model.Vector) [model.NumStats]model.Vector {
	var out [model.NumStats]model.Vector
	col := make([]float64, len(rows))
	sorted := make([]float64, len(rows))
	for j := 0; j < model.NumColumns; j++ {
		column(rows, j, col)
		copy(sorted, col)
		sort.Float64s(sorted)

		mean := seqMean(col)
		lo, hi := floats.Min(col), floats.Max(col)
		out[0][j] = mean
		out[1][j] = lo
		out[2][j] = hi
		out[3][j] = percentile(sorted, 0.25)
		out[4][j] = percentile(sorted, 0.50)
		out[5][j] = percentile(sorted, 0.75)
		out[6][j] = popStdDev(col, mean)
		out[7][j] = hi - lo
	}
	return out
}

// percentile interpolates linearly between the order statistics of sorted
// at virtual index (n-1)*q.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * q
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	return lerp(sorted[i], sorted[i+1], h-float64(i))
}

// lerp interpolates from the nearer endpoint so that t=1 yields b exactly.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t >= 0.5 {
		return b - d*(1-t)
	}
	return a + d*t
}

// seqMean sums x left to right before dividing by n.
func seqMean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// popStdDev is sqrt(sum((x-mean)^2)/n).
func popStdDev(x []float64, mean float64) float64 {
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(x)))
}

// column copies column j of rows into dst, which must have len(rows).
func column(rows []model.Vector, j int, dst []float64) {
	for i := range rows {
		dst[i] = rows[i][j]
	}
}
