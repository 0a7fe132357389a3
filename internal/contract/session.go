package contract

import (
	"sort"
	"time"

	"zc-features/internal/model"
)

// Session bounds in exchange wall time. A session labelled D is the evening
// of D-1 from NightOpen to NightClose plus D from midnight to DayClose.
const (
	NightOpen  = 19 * time.Hour
	NightClose = 23*time.Hour + 59*time.Minute
	DayClose   = 13*time.Hour + 20*time.Minute
)

// SessionDay returns a copy of the bars that belong to the session labelled
// date. The first bar's Volume is reset to its TotalVolume since the
// difference against the previous session is meaningless. bars must be
// sorted by timestamp.
func SessionDay(bars []model.Bar, date time.Time) []model.Bar {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	prev := day.AddDate(0, 0, -1)

	night := between(bars, prev.Add(NightOpen), prev.Add(NightClose))
	morning := between(bars, day, day.Add(DayClose))
	if len(night)+len(morning) == 0 {
		return nil
	}
	out := make([]model.Bar, 0, len(night)+len(morning))
	out = append(out, night...)
	out = append(out, morning...)
	out[0].Volume = out[0].TotalVolume
	return out
}

// between returns the sub-slice of sorted bars with from <= t <= to.
func between(bars []model.Bar, from, to time.Time) []model.Bar {
	lo := sort.Search(len(bars), func(i int) bool { return bars[i].Timestamp >= from.UnixMilli() })
	hi := sort.Search(len(bars), func(i int) bool { return bars[i].Timestamp > to.UnixMilli() })
	if lo >= hi {
		return nil
	}
	return bars[lo:hi]
}
