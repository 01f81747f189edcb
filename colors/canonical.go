// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"
	"strconv"
)

// Canonicalizer converts any valid color string into a canonical
// functional color string of the form "rgb(r, g, b)" or
// "rgba(r, g, b, a)". It returns false if the string is not a
// valid color. Hosts with their own color engine can supply
// one to a [Parser] instead of the default [CSS].
type Canonicalizer interface {
	Resolve(s string) (string, bool)
}

// CanonicalizerFunc is a function that implements [Canonicalizer].
type CanonicalizerFunc func(s string) (string, bool)

// Resolve calls the function.
func (f CanonicalizerFunc) Resolve(s string) (string, bool) {
	return f(s)
}

// CSS is the default [Canonicalizer], which accepts everything
// [FromString] accepts and formats it like a browser does when
// reading back a computed color.
type CSS struct{}

// Resolve implements [Canonicalizer].
func (CSS) Resolve(s string) (string, bool) {
	c, err := FromString(s)
	if err != nil {
		return "", false
	}
	return CanonicalString(c), true
}

// CanonicalString formats the given color as "rgb(r, g, b)" if it is
// opaque, and as "rgba(r, g, b, a)" otherwise, with the alpha value
// in 0..1 rounded to three decimals.
func CanonicalString(c color.Color) string {
	n := AsNRGBA(c)
	b := make([]byte, 0, 24)
	if n.A == 255 {
		b = append(b, "rgb("...)
	} else {
		b = append(b, "rgba("...)
	}
	b = strconv.AppendUint(b, uint64(n.R), 10)
	b = append(b, ", "...)
	b = strconv.AppendUint(b, uint64(n.G), 10)
	b = append(b, ", "...)
	b = strconv.AppendUint(b, uint64(n.B), 10)
	if n.A != 255 {
		a := math.Round(float64(n.A)/255*1000) / 1000
		b = append(b, ", "...)
		b = strconv.AppendFloat(b, a, 'f', -1, 64)
	}
	return string(append(b, ')'))
}
