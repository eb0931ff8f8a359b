// SPDX-License-Identifier: MIT
// Package graphio: sentinel errors.

package graphio

import "errors"

// ErrNilGraph indicates a nil *digraph.Graph was passed to a writer.
var ErrNilGraph = errors.New("graphio: graph is nil")

// ErrBadVertexKey indicates a JSON key that is not a decimal integer in
// 0..n-1, or a key that collides with another after normalization.
var ErrBadVertexKey = errors.New("graphio: bad vertex key")

// ErrMalformedEntry indicates an adjacency entry that is neither a bare
// integer nor a [target, weight] pair with weight >= 1, or a document that
// mixes the two entry forms.
var ErrMalformedEntry = errors.New("graphio: malformed adjacency entry")
