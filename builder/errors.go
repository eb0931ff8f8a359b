// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy:
//   - Parameter validation happens before any allocation or sampling:
//     fail fast, no partial graph is ever produced.
//   - Callers branch with errors.Is; context is attached via %w wrapping.
//   - Option constructors panic only on programmer error (nil *rand.Rand);
//     everything reachable from user parameters returns an error.

package builder

import "errors"

// ErrBadVertexCount indicates n < 0.
var ErrBadVertexCount = errors.New("builder: vertex count must be >= 0")

// ErrInvalidDensity indicates a density outside [0,1] after percent
// normalization (values > 1 are first divided by 100).
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrInvalidWeightRange indicates a weight range with min > max or min < 1.
// Zero is excluded because it encodes edge absence in the matrix
// representation; negative weights are outside the generator's domain.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")
