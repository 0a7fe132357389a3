// Package colstat computes descriptive statistics over one bar column.
package colstat

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"zc-features/internal/model"
)

// Column extracts the named column (Open, High, Low, Close, TotalVolume, Volume).
func Column(bars []model.Bar, attr string) ([]float64, error) {
	var field func(model.Bar) float64
	switch strings.ToLower(attr) {
	case "open":
		field = func(b model.Bar) float64 { return b.Open }
	case "high":
		field = func(b model.Bar) float64 { return b.High }
	case "low":
		field = func(b model.Bar) float64 { return b.Low }
	case "close":
		field = func(b model.Bar) float64 { return b.Close }
	case "totalvolume":
		field = func(b model.Bar) float64 { return b.TotalVolume }
	case "volume":
		field = func(b model.Bar) float64 { return b.Volume }
	default:
		return nil, fmt.Errorf("unknown column %q", attr)
	}
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = field(b)
	}
	return out, nil
}

func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean is the arithmetic mean of the non-NaN values; NaN if there are none.
func Mean(x []float64) float64 {
	x = dropNaN(x)
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// SD is the sample standard deviation (n-1) of the non-NaN values; NaN
// with fewer than two.
func SD(x []float64) float64 {
	x = dropNaN(x)
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// Diff returns x[i] - x[i-1]; the first element is NaN.
func Diff(x []float64) []float64 {
	return lagged(x, func(cur, prev float64) float64 { return cur - prev })
}

// PctChange returns x[i]/x[i-1] - 1; the first element is NaN.
func PctChange(x []float64) []float64 {
	return lagged(x, func(cur, prev float64) float64 { return cur/prev - 1 })
}

// LogReturn returns log(x[i]) - log(x[i-1]); the first element is NaN.
func LogReturn(x []float64) []float64 {
	return lagged(x, func(cur, prev float64) float64 { return math.Log(cur) - math.Log(prev) })
}

func lagged(x []float64, fn func(cur, prev float64) float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = fn(x[i], x[i-1])
	}
	return out
}

// Result holds either a scalar (Mean, SD) or a series (Diff, P_change, Log_return).
type Result struct {
	Scalar float64
	Series []float64
}

// Compute applies the named method (Mean, SD, Diff, P_change, Log_return)
// to the named column.
func Compute(bars []model.Bar, attr, method string) (Result, error) {
	x, err := Column(bars, attr)
	if err != nil {
		return Result{}, err
	}
	switch method {
	case "Mean":
		return Result{Scalar: Mean(x)}, nil
	case "SD":
		return Result{Scalar: SD(x)}, nil
	case "Diff":
		return Result{Series: Diff(x)}, nil
	case "P_change":
		return Result{Series: PctChange(x)}, nil
	case "Log_return":
		return Result{Series: LogReturn(x)}, nil
	default:
		return Result{}, fmt.Errorf("unknown stat method %q (use Mean, SD, Diff, P_change, Log_return)", method)
	}
}
