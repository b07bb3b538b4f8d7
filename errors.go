// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import "github.com/pkg/errors"

// Errors returned by Build and Evaluate. They are always wrapped with some
// context; use errors.Cause (or errors.Is) to test for them.
//
var (
	ErrInvalidWidth    = errors.New("invalid width")
	ErrWidthMismatch   = errors.New("operand width mismatch")
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrNilNetwork      = errors.New("nil network")
)
