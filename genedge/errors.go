package genedge

import "errors"

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates n is smaller than the generator's minimum.
	ErrTooFewVertices = errors.New("genedge: too few vertices")

	// ErrInvalidProbability indicates p is outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("genedge: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator was called with a
	// nil *rand.Rand.
	ErrNeedRandSource = errors.New("genedge: rng is required")

	// ErrInvalidDegree indicates n < 1 or d is outside [0, n).
	ErrInvalidDegree = errors.New("genedge: invalid degree")

	// ErrConstructFailed indicates stub-matching exhausted its retry budget
	// without producing a loop-free, multi-edge-free pairing.
	ErrConstructFailed = errors.New("genedge: construction failed")
)
