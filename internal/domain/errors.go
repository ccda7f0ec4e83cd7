package domain

import (
	"errors"

	"go.ngs.io/sky-api/internal/sphere"
)

var (
	// ErrFormat is returned for malformed angle, date or time text.
	ErrFormat = sphere.ErrFormat

	// ErrDomain is returned for coordinates outside their valid range.
	ErrDomain = sphere.ErrDomain

	// ErrCircumpolar reports a body that never sets at the observer's
	// latitude on the requested date.
	ErrCircumpolar = errors.New("body is circumpolar and never sets")

	// ErrBelowHorizon reports a body that never rises at the observer's
	// latitude on the requested date.
	ErrBelowHorizon = errors.New("body never rises above the horizon")

	// ErrInternalConsistency reports a violated algorithm invariant. It
	// indicates a defect, not a normal outcome.
	ErrInternalConsistency = errors.New("internal consistency check failed")
)
