// SPDX-License-Identifier: MIT

package euclid

import "fmt"

// New returns EuclideanParameters holding exactly the given values.
//
// Construction is strict: nothing is clamped. If the values violate any range
// rule (see Validate) New returns the zero value and an error wrapping
// ErrInvalidParameters.
//
// Example:
//
//	p, err := euclid.New(8, 3, 2)   // ok: {8, 3, 2}
//	_, err = euclid.New(8, 9, 2)    // ErrDensityOutOfRange
//	_, err = euclid.New(8, 3, 8)    // ErrPhaseOutOfRange
func New(resolution, density, phase int) (EuclideanParameters, error) {
	if err := Validate(resolution, density, phase); err != nil {
		return EuclideanParameters{}, err
	}

	return EuclideanParameters{resolution: resolution, density: density, phase: phase}, nil
}

// Zero returns the empty rhythm {0, 0, 0}. Same as the zero value.
func Zero() EuclideanParameters {
	return EuclideanParameters{}
}

// Resolution returns the number of slots.
func (p EuclideanParameters) Resolution() int { return p.resolution }

// Density returns the number of active slots.
func (p EuclideanParameters) Density() int { return p.density }

// Phase returns the rotational offset.
func (p EuclideanParameters) Phase() int { return p.phase }

// SetResolution stores r, or 0 when r is negative.
// Density and phase are left as they are.
func (p *EuclideanParameters) SetResolution(r int) {
	if r < 0 {
		r = 0
	}
	p.resolution = r
}

// SetDensity stores d clamped to [0, Resolution()].
func (p *EuclideanParameters) SetDensity(d int) {
	switch {
	case d < 0:
		d = 0
	case d > p.resolution:
		d = p.resolution
	}
	p.density = d
}

// SetPhase stores ph wrapped into [0, Resolution()).
//
// Negative offsets wrap from the end: with resolution 8, -3 becomes 5.
// With resolution 0 there is no slot to offset into and phase is set to 0.
func (p *EuclideanParameters) SetPhase(ph int) {
	if p.resolution == 0 {
		p.phase = 0
		return
	}
	ph %= p.resolution
	if ph < 0 {
		ph += p.resolution
	}
	p.phase = ph
}

// Equal reports whether p and other hold the same resolution, density and phase.
func (p EuclideanParameters) Equal(other EuclideanParameters) bool {
	return p == other
}

// Valid reports whether p currently satisfies every range invariant.
// It can be false only after SetResolution lowered the resolution below a
// previously stored density or phase.
func (p EuclideanParameters) Valid() bool {
	return Validate(p.resolution, p.density, p.phase) == nil
}

// String implements fmt.Stringer.
func (p EuclideanParameters) String() string {
	return fmt.Sprintf("euclid(resolution=%d, density=%d, phase=%d)", p.resolution, p.density, p.phase)
}
