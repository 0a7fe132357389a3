package model

// NumColumns is the width of every summary vector.
const NumColumns = 5

// Columns names the summary vector positions.
var Columns = [NumColumns]string{"Open", "High", "Low", "Close", "TotalVolume"}

// Vector is one summary row over the feature columns.
type Vector [NumColumns]float64

// Sub returns v - o elementwise.
func (v Vector) Sub(o Vector) Vector {
	var out Vector
	for j := range v {
		out[j] = v[j] - o[j]
	}
	return out
}

// NumStats is the number of statistic rows per block.
const NumStats = 8

// StatNames labels the statistic rows of a block, in row order.
var StatNames = [NumStats]string{"mean", "min", "max", "p25", "p50", "p75", "std", "range"}

// BlockNames labels the two blocks of a feature matrix.
var BlockNames = [2]string{"nor", "don"}

// FeatureMatrix is the 16x5 output of one G-group: eight statistic rows
// over the normalized block followed by eight over the delta block.
type FeatureMatrix [2 * NumStats]Vector

// Nor returns the statistic rows computed over normalized summaries.
func (m FeatureMatrix) Nor() [NumStats]Vector {
	var out [NumStats]Vector
	copy(out[:], m[:NumStats])
	return out
}

// Don returns the statistic rows computed over baseline deltas.
func (m FeatureMatrix) Don() [NumStats]Vector {
	var out [NumStats]Vector
	copy(out[:], m[NumStats:])
	return out
}

// RowLabel returns block and statistic names for row i.
func RowLabel(i int) (block, stat string) {
	return BlockNames[i/NumStats], StatNames[i%NumStats]
}
