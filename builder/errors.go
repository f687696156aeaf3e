// SPDX-License-Identifier: MIT
// Package: neurograph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w through builderErrorf.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative layer size.
// Usage: if errors.Is(err, ErrBadSize) { /* fix sizes */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates the graph rejected a connection the builder
// issued; it wraps the underlying core error.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tokens used as error prefixes.
const (
	MethodLayered = "Layered"
)

// builderErrorf wraps sentinel with method context:
// "<Method>: <sentinel>: <formatted message>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
