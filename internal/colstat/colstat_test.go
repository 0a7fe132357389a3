package colstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zc-features/internal/model"
)

func closes(v ...float64) []model.Bar {
	bars := make([]model.Bar, len(v))
	for i, c := range v {
		bars[i] = model.Bar{Close: c, Volume: float64(i)}
	}
	return bars
}

func TestCompute(t *testing.T) {
	bars := closes(2, 4, 4, 4, 5, 5, 7, 9)

	r, err := Compute(bars, "Close", "Mean")
	require.NoError(t, err)
	assert.Equal(t, 5.0, r.Scalar)

	r, err = Compute(bars, "Close", "SD")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7), r.Scalar, 1e-12)

	r, err = Compute(bars, "Close", "Diff")
	require.NoError(t, err)
	require.Len(t, r.Series, 8)
	assert.True(t, math.IsNaN(r.Series[0]))
	assert.Equal(t, 2.0, r.Series[1])
	assert.Equal(t, 0.0, r.Series[2])

	r, err = Compute(bars, "close", "P_change")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Series[1])
	assert.Equal(t, 0.25, r.Series[4])

	r, err = Compute(bars, "Close", "Log_return")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), r.Series[1], 1e-12)
}

func TestMeanSkipsNaN(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, math.NaN(), 3}))
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(SD([]float64{1})))
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute(closes(1, 2), "Vwap", "Mean")
	assert.Error(t, err)

	_, err = Compute(closes(1, 2), "Close", "Median")
	assert.Error(t, err)
}
