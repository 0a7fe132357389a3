// Package resample aggregates minute bars into trading-day bars and then
// into daily, weekly, monthly or yearly period bars.
package resample

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"zc-features/internal/contract"
	"zc-features/internal/model"
	"zc-features/internal/timeslice"
)

// Period is a resampling frequency.
type Period string

const (
	Daily   Period = "D"
	Weekly  Period = "W"
	Monthly Period = "M"
	Yearly  Period = "Y"
)

// ParsePeriod accepts D, W, M or Y (case-insensitive).
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToUpper(strings.TrimSpace(s))); p {
	case Daily, Weekly, Monthly, Yearly:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported resample period %q (use D, W, M or Y)", s)
	}
}

// tradingDayShift moves the 19:00 evening open onto the next calendar date.
const tradingDayShift = 5 * time.Hour

// ByPeriod keeps the bars of [from, to] that fall inside the trading
// session, folds them into one bar per trading date and resamples those
// into period bars labelled by the period end. Periods without trading
// days carry NaN prices and zero TotalVolume. Volume is NaN throughout.
func ByPeriod(bars []model.Bar, from, to time.Time, period Period, inclusive bool) ([]model.Bar, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}
	days := TradingDays(timeslice.Between(bars, from, to, inclusive))
	if len(days) == 0 {
		return nil, nil
	}

	var out []model.Bar
	i := 0
	last := periodEnd(days[len(days)-1].Time(), period)
	for label := periodEnd(days[0].Time(), period); !label.After(last); label = periodEnd(label.AddDate(0, 0, 1), period) {
		var group []model.Bar
		for i < len(days) && !days[i].Time().After(label) {
			group = append(group, days[i])
			i++
		}
		b := fold(group)
		b.Timestamp = label.UnixMilli()
		b.TotalVolume = sumTotal(group)
		out = append(out, b)
	}
	return out, nil
}

// TradingDays folds session bars into one bar per trading date: first
// Open, max High, min Low, last Close and last TotalVolume. Bars outside
// 19:00-13:20 are dropped.
func TradingDays(bars []model.Bar) []model.Bar {
	groups := make(map[time.Time][]model.Bar)
	for _, b := range bars {
		if !inSession(b.Time()) {
			continue
		}
		d := b.Time().Add(tradingDayShift)
		key := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		groups[key] = append(groups[key], b)
	}
	keys := make([]time.Time, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]model.Bar, 0, len(keys))
	for _, k := range keys {
		b := fold(groups[k])
		b.Timestamp = k.UnixMilli()
		b.TotalVolume = lastValid(groups[k], func(b model.Bar) float64 { return b.TotalVolume })
		out = append(out, b)
	}
	return out
}

// inSession reports whether t's wall time lies in [19:00, 24:00) or [00:00, 13:20].
func inSession(t time.Time) bool {
	tod := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return tod >= contract.NightOpen || tod <= contract.DayClose
}

// periodEnd returns the label of the period containing d.
func periodEnd(d time.Time, p Period) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case Weekly:
		return d.AddDate(0, 0, (7-int(d.Weekday()))%7)
	case Monthly:
		return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	case Yearly:
		return time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// fold aggregates prices ignoring NaN. An empty group yields NaN prices.
func fold(group []model.Bar) model.Bar {
	b := model.Bar{
		Open:   firstValid(group, func(b model.Bar) float64 { return b.Open }),
		High:   math.NaN(),
		Low:    math.NaN(),
		Close:  lastValid(group, func(b model.Bar) float64 { return b.Close }),
		Volume: math.NaN(),
	}
	for _, g := range group {
		if !math.IsNaN(g.High) && (math.IsNaN(b.High) || g.High > b.High) {
			b.High = g.High
		}
		if !math.IsNaN(g.Low) && (math.IsNaN(b.Low) || g.Low < b.Low) {
			b.Low = g.Low
		}
	}
	return b
}

func firstValid(group []model.Bar, field func(model.Bar) float64) float64 {
	for _, g := range group {
		if v := field(g); !math.IsNaN(v) {
			return v
		}
	}
	return math.NaN()
}

func lastValid(group []model.Bar, field func(model.Bar) float64) float64 {
	for i := len(group) - 1; i >= 0; i-- {
		if v := field(group[i]); !math.IsNaN(v) {
			return v
		}
	}
	return math.NaN()
}

// sumTotal adds TotalVolume skipping NaN; the empty sum is zero.
func sumTotal(group []model.Bar) float64 {
	var s float64
	for _, g := range group {
		if !math.IsNaN(g.TotalVolume) {
			s += g.TotalVolume
		}
	}
	return s
}
