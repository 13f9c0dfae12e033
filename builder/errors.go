// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinel variables are exposed.
//   • Callers branch with errors.Is(err, ErrX); messages are not contracts.
//   • Implementations attach context via %w wrapping, never by mutating
//     the sentinel text.

package builder

import "errors"

// ErrTooFewVertices indicates a partition size below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// a seeded RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not complete, e.g. a nil
// constructor was supplied to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
