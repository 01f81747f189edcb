// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// RGB is one parsed color sample, with each channel in 0..255.
// The alpha channel of the source color is not kept.
type RGB struct {
	R, G, B int
}

// Hex returns the color as a #rrggbb hex string.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// Parser parses color strings into [RGB] values using a [Canonicalizer].
// The zero value uses [CSS].
type Parser struct {
	Canonicalizer Canonicalizer
}

// funcRegexp matches a functional color string, capturing its arguments.
var funcRegexp = regexp.MustCompile(`(?i)(rgba?|hsla?)\(([^)]+)\)`)

// Parse returns the red, green, and blue channels of the given color
// string. It never fails: if the string can not be canonicalized, or
// the canonical form does not start each of its first three channels
// with an integer, it returns
// the zero value (black). Callers that need to detect malformed input
// must validate it separately, for example with [FromString].
func (p Parser) Parse(s string) RGB {
	cz := p.Canonicalizer
	if cz == nil {
		cz = CSS{}
	}
	canon, ok := cz.Resolve(s)
	if !ok || canon == "" {
		slog.Debug("colors: could not resolve color, using black", "color", s)
		return RGB{}
	}
	return parseFunc(canon)
}

// parseFunc extracts the first three channels of a functional color string.
func parseFunc(canon string) RGB {
	m := funcRegexp.FindStringSubmatch(canon)
	if m == nil {
		return RGB{}
	}
	vals := strings.Split(m[2], ",")
	if len(vals) < 3 {
		return RGB{}
	}
	var ch [3]int
	for i := range ch {
		v, ok := leadingInt(vals[i])
		if !ok {
			slog.Debug("colors: invalid channel in canonical color", "color", canon, "channel", vals[i])
			return RGB{}
		}
		ch[i] = v
	}
	return RGB{ch[0], ch[1], ch[2]}
}

// leadingInt parses the optionally signed decimal integer at the start of
// the trimmed string, ignoring anything after it, so that "200.6" gives 200.
// It returns false if the string does not start with a digit.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	digits := n
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseRGB parses the given color string with the default [Parser].
// See [Parser.Parse] for the fallback behavior.
func ParseRGB(s string) RGB {
	return Parser{}.Parse(s)
}
