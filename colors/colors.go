// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses CSS color strings and decides which of
// black or white text stays legible on a given background color.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is fully transparent black, the value of
// the CSS "transparent" keyword.
var Transparent = color.NRGBA{}

// AsNRGBA returns the given color as a non alpha-premultiplied color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// AsHex returns the given color as a lowercase hex string
// of the form #rrggbb, or #rrggbbaa if it is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := AsNRGBA(c)
	if n.A == 255 {
		return RGBToHex(int(n.R), int(n.G), int(n.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// RGBToHex returns the #rrggbb hex string of the given red,
// green, and blue channel values, which must be in 0..255.
func RGBToHex(r, g, b int) string {
	return "#" + strconv.FormatInt(int64(1<<24+r<<16+g<<8+b), 16)[1:]
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found; see [MustFromName]
// for a version that does not return an error.
func FromName(name string) (color.NRGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return AsNRGBA(c), nil
}

// MustFromName returns the color value specified
// by the given CSS standard color name. It panics
// if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) color.NRGBA {
	c, err := FromName(name)
	if err != nil {
		panic("colors.MustFromName: " + err.Error())
	}
	return c
}

// FromHex parses the given hex color string, with or without
// the leading #, in 3 (rgb), 4 (rgba), 6 (rrggbb), or 8 (rrggbbaa)
// digit form. It returns any resulting error; see [MustFromHex]
// for a version that does not return an error.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	nib := func(shift uint) uint8 {
		n := uint8(v>>shift) & 0xf
		return n<<4 | n
	}
	byt := func(shift uint) uint8 {
		return uint8(v >> shift)
	}
	switch len(hex) {
	case 3:
		return color.NRGBA{nib(8), nib(4), nib(0), 255}, nil
	case 4:
		return color.NRGBA{nib(12), nib(8), nib(4), nib(0)}, nil
	case 6:
		return color.NRGBA{byt(16), byt(8), byt(0), 255}, nil
	case 8:
		return color.NRGBA{byt(24), byt(16), byt(8), byt(0)}, nil
	}
	return color.NRGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.NRGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// FromString returns a color value from the given CSS color string.
// It returns any resulting error; see [MustFromString] for a version
// that panics instead. FromString accepts the following types of strings:
//   - hex values: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - rgb(r, g, b), rgba(r, g, b, a), and the space separated
//     rgb(r g b / a) form, with channels as numbers or percentages
//   - hsl(h, s%, l%), hsla(h, s%, l%, a), and hsl(h s% l% / a)
//   - standard CSS color names and "transparent"
//
// Matching is case insensitive and surrounding space is ignored.
func FromString(str string) (color.NRGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	if lstr == "" {
		return color.NRGBA{}, errors.New("colors.FromString: empty color string")
	}
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgb"), strings.HasPrefix(lstr, "hsl"):
		return fromFunc(lstr)
	case lstr == "transparent":
		return Transparent, nil
	default:
		return FromName(lstr)
	}
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.NRGBA {
	c, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}
