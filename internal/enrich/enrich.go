// Package enrich turns an ordered table of minute bars into feature
// matrices. The G stage slides a window over the table and records each
// window's L2-norm summary together with its delta from a fixed baseline;
// the H stage chunks those records and reduces each chunk to eight
// statistics per column. All functions are pure and deterministic.
package enrich

import (
	"fmt"
	"strings"

	"zc-features/internal/model"
)

// OffsetMode selects how Params.Start is applied to the G stage after the
// table has been restricted to [Start, End).
type OffsetMode int

const (
	// OffsetAbsolute re-applies Start as an offset into the restricted
	// table. This is the historical recipe and skips Start bars twice.
	OffsetAbsolute OffsetMode = iota
	// OffsetRelative starts the G stage at the first bar of the restricted table.
	OffsetRelative
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetAbsolute:
		return "absolute"
	case OffsetRelative:
		return "relative"
	default:
		return fmt.Sprintf("OffsetMode(%d)", int(m))
	}
}

// ParseOffsetMode converts "absolute" or "relative" to an OffsetMode.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return OffsetAbsolute, nil
	case "relative":
		return OffsetRelative, nil
	default:
		return 0, fmt.Errorf("unknown offset mode %q (use absolute or relative): %w", s, ErrInvalidParam)
	}
}

// Params configures DataEnrich. End < 0 means the end of the table.
type Params struct {
	Start     int
	End       int
	Window    int // b
	StepG     int
	GroupSize int // f
	StepH     int
	Offset    OffsetMode
}

// DefaultParams covers the whole table with the default window, group and strides.
func DefaultParams() Params {
	return Params{
		Start:     0,
		End:       -1,
		Window:    DefaultWindow,
		StepG:     DefaultStepG,
		GroupSize: DefaultGroupSize,
		StepH:     DefaultStepH,
		Offset:    OffsetAbsolute,
	}
}

// Restrict returns bars[start:end] with both bounds clamped to
// [0, len(bars)]. A negative start is clamped to 0, not counted from the
// end; end < 0 means len(bars).
func Restrict(bars []model.Bar, start, end int) []model.Bar {
	n := len(bars)
	if end < 0 || end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		return bars[:0]
	}
	return bars[start:end]
}

// DataEnrich restricts bars to [p.Start, p.End), runs the G stage over the
// restricted table and chunks the result into feature matrices.
func DataEnrich(bars []model.Bar, p Params) ([]model.FeatureMatrix, error) {
	if p.Start < 0 {
		return nil, fmt.Errorf("data enrich start=%d: %w", p.Start, ErrInvalidParam)
	}
	sub := Restrict(bars, p.Start, p.End)
	gStart := p.Start
	if p.Offset == OffsetRelative {
		gStart = 0
	}
	g, err := GenerateG(sub, gStart, p.Window, p.StepG)
	if err != nil {
		return nil, err
	}
	return GenerateH(g, p.GroupSize, p.StepH)
}
