// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Stack returns the stack trace of the caller of the function that
// called Stack, formatted as "pkg.Func file:line" strings.
func Stack() []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(3, callers)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	res := []string{}
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		if !isConstructor(frame.Function) {
			res = append(res, fmt.Sprintf("%s %s:%d", frame.Function, filepath.Base(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return res
}

// isConstructor returns whether the given function name is one of
// the grr error constructors, which are not part of the stack.
func isConstructor(fn string) bool {
	for _, c := range []string{"/grr.Wrap", "/grr.New", "/grr.Errorf"} {
		if strings.HasSuffix(fn, c) {
			return true
		}
	}
	return false
}
