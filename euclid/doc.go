// Package euclid holds the three parameters that define a Euclidean rhythm:
// resolution, density and phase.
//
// 🚀 What is a Euclidean rhythm?
//
//	A pattern that spreads `density` onsets as evenly as possible over
//	`resolution` slots, then rotates the result by `phase` slots.
//	  E(3, 8)          → x . . x . . x .
//	  E(3, 8), phase 2 → rotated two slots
//
//	This package only models and guards the parameters; generating the
//	pattern itself is left to the caller.
//
// ✨ Contracts:
//
//   - resolution >= 0
//   - 0 <= density <= resolution
//   - 0 <= phase < resolution (phase is 0 when resolution is 0)
//
// Two ways in, two error policies:
//
//   - New is strict. Out-of-range input is rejected with an error wrapping
//     ErrInvalidParameters and one of ErrNegativeResolution,
//     ErrDensityOutOfRange or ErrPhaseOutOfRange. Nothing is clamped.
//   - SetResolution, SetDensity and SetPhase are corrective. They never fail:
//     resolution is floored at 0, density is clamped to [0, resolution] and
//     phase is wrapped modulo resolution (forced to 0 when resolution is 0).
//
// Each setter corrects only the field it writes. Lowering the resolution does
// not re-clamp density or phase; call SetDensity/SetPhase again, or check
// Valid, if you need the invariants to hold after such a change.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rhythm/euclid"
//
//	p, err := euclid.New(8, 3, 2)
//	if err != nil {
//	  // errors.Is(err, euclid.ErrInvalidParameters) == true
//	}
//	p.SetPhase(-3)   // phase = 5
//	p.SetDensity(20) // density = 8
//
// EuclideanParameters is a plain comparable value with no internal locking.
// Share a mutable instance across goroutines only under your own
// synchronization.
package euclid
