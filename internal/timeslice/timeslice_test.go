package timeslice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zc-features/internal/model"
)

var t0 = time.Date(2016, 1, 3, 19, 0, 0, 0, time.UTC)

func minuteBars(n int) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{Timestamp: t0.Add(time.Duration(i) * time.Minute).UnixMilli(), Close: float64(i)}
	}
	return bars
}

func TestBetween(t *testing.T) {
	bars := minuteBars(10)
	from, to := t0.Add(2*time.Minute), t0.Add(5*time.Minute)

	in := Between(bars, from, to, true)
	assert.Len(t, in, 4)
	assert.Equal(t, 2.0, in[0].Close)
	assert.Equal(t, 5.0, in[3].Close)

	ex := Between(bars, from, to, false)
	assert.Len(t, ex, 2)
	assert.Equal(t, 3.0, ex[0].Close)

	assert.Empty(t, Between(bars, t0.Add(time.Hour), t0.Add(2*time.Hour), true))
	assert.Empty(t, Between(bars, to, from, true))
}

func TestFirstN(t *testing.T) {
	bars := minuteBars(10)

	got := FirstN(bars, t0.Add(3*time.Minute), 4, true)
	assert.Len(t, got, 4)
	assert.Equal(t, 3.0, got[0].Close)

	got = FirstN(bars, t0.Add(3*time.Minute), 4, false)
	assert.Equal(t, 4.0, got[0].Close)

	assert.Len(t, FirstN(bars, t0.Add(8*time.Minute), 100, true), 2)
	assert.Empty(t, FirstN(bars, t0.Add(time.Hour), 3, true))
}
