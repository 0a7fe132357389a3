package enrich

import "errors"

var (
	// ErrEmptyWindow is returned when a normalization is requested over zero bars.
	ErrEmptyWindow = errors.New("enrich: empty window")

	// ErrNoBaseline marks a delta requested against an absent baseline.
	ErrNoBaseline = errors.New("enrich: no baseline")

	// ErrDegenerateGroup is returned when statistics are requested over zero G-records.
	ErrDegenerateGroup = errors.New("enrich: degenerate group")

	// ErrInvalidParam is returned for non-positive window lengths or strides
	// and for a negative start index.
	ErrInvalidParam = errors.New("enrich: invalid parameter")
)
