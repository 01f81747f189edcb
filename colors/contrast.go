// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// Foreground is the color of text drawn on top of a background color.
type Foreground int32

const (
	// Black is black text, used on light backgrounds.
	Black Foreground = iota

	// White is white text, used on dark backgrounds.
	White
)

// String returns "black" or "white", which can be used
// directly as a CSS color value.
func (f Foreground) String() string {
	if f == White {
		return "white"
	}
	return "black"
}

// Hex returns the foreground color as a #rrggbb hex string.
func (f Foreground) Hex() string {
	if f == White {
		return "#ffffff"
	}
	return "#000000"
}

const (
	// DefaultThreshold is the normalized luma at or above which a
	// background is light enough for black text.
	DefaultThreshold = 0.627

	// HotkeyThreshold is the threshold used for the small hotkey
	// labels drawn on top of picker swatches.
	HotkeyThreshold = 0.7
)

// Luma returns the YIQ luma of the given color, in 0..255.
func Luma(c RGB) float64 {
	return float64(c.R*299+c.G*587+c.B*114) / 1000
}

// Contrast decides foreground colors using a [Parser].
// The zero value uses the default [CSS] canonicalizer.
type Contrast struct {
	Parser Parser
}

// PickForeground returns the foreground color that is legible on the
// given background color. The threshold in 0..1 is the normalized luma
// at or above which the background counts as light, giving [Black];
// anything darker gives [White]. The "transparent" background always
// gives [Black], and backgrounds that can not be parsed count as black,
// giving [White] for any positive threshold.
func (ct Contrast) PickForeground(background string, threshold float64) Foreground {
	if background == "transparent" {
		return Black
	}
	if Luma(ct.Parser.Parse(background))/255 >= threshold {
		return Black
	}
	return White
}

// PickForeground calls [Contrast.PickForeground] with the default parser.
// Use [DefaultThreshold] when there is no specific reason to tune it.
func PickForeground(background string, threshold float64) Foreground {
	return Contrast{}.PickForeground(background, threshold)
}

// ForegroundHex returns the hex code of [PickForeground], which is
// pure black or white rather than the softer black of a drawing palette.
func ForegroundHex(background string, threshold float64) string {
	return PickForeground(background, threshold).Hex()
}
