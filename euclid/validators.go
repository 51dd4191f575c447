// SPDX-License-Identifier: MIT
// Package: euclid
//
// Purpose:
//   - Single source of truth for the strict range checks used by New.
//   - Every failure wraps ErrInvalidParameters together with the specific
//     sentinel, so callers can match either one via errors.Is.
//
// Note:
//   - Checks run in a fixed order: resolution, density, phase. The first
//     violation is reported.

package euclid

import "fmt"

// invalidf joins the umbrella sentinel with the specific cause.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidParameters, cause}, args...)...)
}

// Validate reports whether (resolution, density, phase) is an admissible
// parameter set.
//
// Rules:
//   - resolution >= 0
//   - 0 <= density <= resolution
//   - 0 <= phase < resolution, except that phase 0 is admitted for the empty
//     rhythm (resolution == 0)
//
// Returns nil on success, otherwise an error wrapping ErrInvalidParameters
// and one of ErrNegativeResolution, ErrDensityOutOfRange, ErrPhaseOutOfRange.
// Complexity: O(1).
func Validate(resolution, density, phase int) error {
	if err := validateResolution(resolution); err != nil {
		return err
	}
	if err := validateDensity(resolution, density); err != nil {
		return err
	}

	return validatePhase(resolution, phase)
}

func validateResolution(resolution int) error {
	if resolution < 0 {
		return invalidf(ErrNegativeResolution, "resolution=%d", resolution)
	}

	return nil
}

func validateDensity(resolution, density int) error {
	if density < 0 || density > resolution {
		return invalidf(ErrDensityOutOfRange, "density=%d resolution=%d", density, resolution)
	}

	return nil
}

func validatePhase(resolution, phase int) error {
	// Empty rhythm: no slots to offset into, phase 0 is the only value.
	if resolution == 0 && phase == 0 {
		return nil
	}
	if phase < 0 || phase >= resolution {
		return invalidf(ErrPhaseOutOfRange, "phase=%d resolution=%d", phase, resolution)
	}

	return nil
}
