// SPDX-License-Identifier: MIT
// Package: pathlab/layout
//
// errors.go - sentinel errors for the layout package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w (method name, offending values).
//   - Constructors never panic; validation panics are confined to With* options.

package layout

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter (ring radius, segment length)
// below the constructor's minimum.
var ErrTooSmall = errors.New("layout: parameter too small")

// ErrInvalidDensity indicates a wall density outside [0,1].
var ErrInvalidDensity = errors.New("layout: density out of range")

// ErrOutOfBounds indicates a constructor anchor that lies outside the grid.
var ErrOutOfBounds = errors.New("layout: anchor out of bounds")

// ErrConstructFailed indicates a programmer error at the Apply boundary
// (nil grid or nil constructor).
var ErrConstructFailed = errors.New("layout: construction failed")

// layoutErrorf prefixes a constructor error with its method name.
func layoutErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
