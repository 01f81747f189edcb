// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"strconv"
	"strings"
)

// Hue is one of the color families of the standard [Palette].
// It is a closed set: every [Palette] has exactly one [Shades]
// for every Hue, so code can safely range over [HueValues].
type Hue int32

const (
	Gray Hue = iota
	Red
	Pink
	Grape
	Violet
	Blue
	Cyan
	Teal
	Green
	Yellow
	Orange

	// Bronze is a warm neutral that is not part of the
	// spectrum source and is defined literally.
	Bronze

	// HuesN is the number of hues.
	HuesN
)

var hueNames = [HuesN]string{"gray", "red", "pink", "grape", "violet", "blue", "cyan", "teal", "green", "yellow", "orange", "bronze"}

var hueDescs = [HuesN]string{
	Gray:   "Gray is the cool neutral family.",
	Bronze: "Bronze is a warm neutral that is not part of the spectrum source and is defined literally.",
}

// String returns the lowercase name of the hue, which is also
// its key in palette entry lists.
func (h Hue) String() string {
	if !h.IsValid() {
		return "Hue(" + strconv.Itoa(int(h)) + ")"
	}
	return hueNames[h]
}

// SetString sets the hue from its name, case insensitively.
func (h *Hue) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range hueNames {
		if nm == s {
			*h = Hue(i)
			return nil
		}
	}
	return errors.New("palette.Hue.SetString: " + s + " is not a valid value for type Hue")
}

// Desc returns the description of the hue, which is empty for the
// chromatic hues.
func (h Hue) Desc() string {
	if !h.IsValid() {
		return ""
	}
	return hueDescs[h]
}

// Values returns all possible values for the type Hue.
func (h Hue) Values() []Hue { return HueValues() }

// IsValid returns whether the value is a valid option for type Hue.
func (h Hue) IsValid() bool {
	return h >= 0 && h < HuesN
}

// IsColorful returns whether the hue is a chromatic color family,
// which is true of all hues except the neutrals [Gray] and [Bronze].
// Only colorful hues appear in shade rows.
func (h Hue) IsColorful() bool {
	return h.IsValid() && h != Gray && h != Bronze
}

// MarshalText implements [encoding.TextMarshaler].
func (h Hue) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Hue) UnmarshalText(text []byte) error {
	return h.SetString(string(text))
}

// HueValues returns all values of type Hue, in order.
func HueValues() []Hue {
	res := make([]Hue, HuesN)
	for i := range res {
		res[i] = Hue(i)
	}
	return res
}
