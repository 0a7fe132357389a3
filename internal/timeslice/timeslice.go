// Package timeslice selects bars by wall-clock time range.
package timeslice

import (
	"time"

	"zc-features/internal/model"
)

// Between returns the bars with from <= t <= to, or from < t < to when
// inclusive is false. The result aliases bars.
func Between(bars []model.Bar, from, to time.Time, inclusive bool) []model.Bar {
	lo, hi := len(bars), len(bars)
	for i, b := range bars {
		if after(b, from, inclusive) {
			lo = i
			break
		}
	}
	for i := lo; i < len(bars); i++ {
		if !before(bars[i], to, inclusive) {
			hi = i
			break
		}
	}
	return bars[lo:hi]
}

// FirstN returns at most n bars starting at from (inclusive or strict).
func FirstN(bars []model.Bar, from time.Time, n int, inclusive bool) []model.Bar {
	lo := len(bars)
	for i, b := range bars {
		if after(b, from, inclusive) {
			lo = i
			break
		}
	}
	hi := lo + n
	if n < 0 || hi > len(bars) {
		hi = len(bars)
	}
	return bars[lo:hi]
}

func after(b model.Bar, t time.Time, inclusive bool) bool {
	if inclusive {
		return b.Timestamp >= t.UnixMilli()
	}
	return b.Timestamp > t.UnixMilli()
}

func before(b model.Bar, t time.Time, inclusive bool) bool {
	if inclusive {
		return b.Timestamp <= t.UnixMilli()
	}
	return b.Timestamp < t.UnixMilli()
}
