// Package rhythm is a small home for rhythm-description primitives in Go.
//
// Subpackages:
//
//	euclid/ — EuclideanParameters: resolution, density and phase of a
//	          Euclidean rhythm, with strict construction and self-correcting
//	          setters.
//
// Pure Go, no cgo, no runtime dependencies.
//
//	go get github.com/katalvlaran/rhythm/euclid
package rhythm
