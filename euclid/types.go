// SPDX-License-Identifier: MIT
// Package: euclid
//
// This file defines the EuclideanParameters value type, the Euclidean
// interface it satisfies, and the sentinel errors of the package.
//
// Errors:
//
//	ErrInvalidParameters  - umbrella error for any rejected construction.
//	ErrNegativeResolution - resolution < 0.
//	ErrDensityOutOfRange  - density < 0 or density > resolution.
//	ErrPhaseOutOfRange    - phase < 0 or phase >= resolution.

package euclid

import "errors"

// Sentinel errors for euclid construction.
var (
	// ErrInvalidParameters is wrapped by every error returned from New and Validate.
	ErrInvalidParameters = errors.New("euclid: invalid parameters")

	// ErrNegativeResolution indicates resolution < 0.
	ErrNegativeResolution = errors.New("euclid: resolution must be non-negative")

	// ErrDensityOutOfRange indicates density outside [0, resolution].
	ErrDensityOutOfRange = errors.New("euclid: density out of range [0, resolution]")

	// ErrPhaseOutOfRange indicates phase outside [0, resolution).
	ErrPhaseOutOfRange = errors.New("euclid: phase out of range [0, resolution)")
)

// Euclidean is anything that describes a Euclidean rhythm by its three
// defining parameters.
type Euclidean interface {
	// Resolution is the number of slots in the rhythm space.
	Resolution() int

	// Density is the number of active slots.
	Density() int

	// Phase is the rotational offset applied to the pattern.
	Phase() int
}

// EuclideanParameters is the default Euclidean implementation.
//
// It is a comparable value: copies are independent and == compares all three
// fields. The zero value is the empty rhythm {0, 0, 0}.
//
// Construction through New is strict and rejects out-of-range input.
// The setters are corrective: they never fail and clamp (or wrap) the written
// field into range against the current resolution. A setter only corrects the
// field it writes, so lowering the resolution can leave density or phase out
// of range until they are written again; Valid reports that condition.
type EuclideanParameters struct {
	resolution int // slots; >= 0
	density    int // active slots; 0..resolution
	phase      int // offset; 0..resolution-1, or 0 when resolution == 0
}

var _ Euclidean = EuclideanParameters{}
