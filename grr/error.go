// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grr provides easy, context-wrapped error handling in Go.
// It is used by swatch for palette construction errors, which are
// fatal at initialization, and for decoding errors of custom palettes.
package grr

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the main type of grr and represents an error with
// a base error and the call stack at the point it was created.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
// An error that is already an [*Error] is returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	return &Error{
		Base:  err,
		Stack: Stack(),
	}
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. It is the grr equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace via [Wrap]. It is the grr equivalent
// of [fmt.Errorf], and %w verbs keep working with [errors.Is].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the string of the base error. The stack is only
// included by [Error.Detail], so that messages stay readable in logs.
func (e *Error) Error() string {
	return e.Base.Error()
}

// Detail returns the error as a string followed by the stack trace.
func (e *Error) Detail() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, " <- ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}
