// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the fixed color palette of the color pickers
// of a drawing tool: the standard [Palette] of hue families, the sub-palettes
// and quick picks shown for strokes, element backgrounds, and the canvas,
// and user supplied [Custom] palettes, which are kept separate from the
// closed standard set.
package palette

import (
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/grr"
	"cogentcore.org/swatch/opencolor"
)

// The scalar colors of the standard palette.
const (
	Transparent = "transparent"
	Black       = "#1e1e1e"
	White       = "#ffffff"
)

// bronzeShades are Radix bronze shades 3, 5, 7, 9, and 11.
var bronzeShades = Shades{"#f8f1ee", "#eaddd7", "#d2bab0", "#a18072", "#846358"}

// Palette is the standard color palette: one [Shades] for every [Hue]
// plus the black, white, and transparent scalar colors. A Palette is
// immutable once built; all accessors return copies.
type Palette struct {
	families [HuesN]Shades

	// members is the set of all lowercase colors in the palette.
	members map[string]struct{}
}

// BuildFrom builds a palette from the given spectra, keyed by
// lowercase hue name, selecting the given indexes of each spectrum.
// Every hue except [Bronze] must have a spectrum long enough for
// the indexes, and every resulting shade must be a valid hex color.
func BuildFrom(spectra map[string][]string, idx ShadeIndexes) (*Palette, error) {
	p := &Palette{members: map[string]struct{}{}}
	for _, h := range HueValues() {
		if h == Bronze {
			p.families[h] = bronzeShades
			continue
		}
		spec, ok := spectra[h.String()]
		if !ok {
			return nil, grr.Errorf("palette.BuildFrom: no spectrum for hue %v", h)
		}
		sh, err := GetShades(spec, idx)
		if err != nil {
			return nil, grr.Errorf("palette.BuildFrom: hue %v: %w", h, err)
		}
		p.families[h] = sh
	}
	for h, sh := range p.families {
		for i, c := range sh {
			if err := checkHex(c); err != nil {
				return nil, grr.Errorf("palette.BuildFrom: shade %d of hue %v: %w", i, Hue(h), err)
			}
			p.members[strings.ToLower(c)] = struct{}{}
		}
	}
	for _, c := range []string{Transparent, Black, White} {
		p.members[c] = struct{}{}
	}
	slog.Debug("palette: built", "hues", int(HuesN), "indexes", idx)
	return p, nil
}

// checkHex returns an error unless c is a #-prefixed hex color.
func checkHex(c string) error {
	if !strings.HasPrefix(c, "#") {
		return grr.Errorf("%q is not a hex color", c)
	}
	_, err := colors.FromHex(c)
	return err
}

// Build builds the standard palette from the Open Color spectra
// using [ElementShadeIndexes]. It panics if the spectra do not
// satisfy the indexes, as the palette must never be inconsistent.
// Most code should use the shared [Standard] palette instead.
func Build() *Palette {
	return grr.Must1(BuildFrom(opencolor.Spectra(), ElementShadeIndexes))
}

// BuildCanvas is like [Build], but uses [CanvasShadeIndexes] for the
// lighter shades suitable for canvas backgrounds.
func BuildCanvas() *Palette {
	return grr.Must1(BuildFrom(opencolor.Spectra(), CanvasShadeIndexes))
}

var standard = sync.OnceValue(Build)

// Standard returns the standard palette, which is built on first use
// and shared by the whole process.
func Standard() *Palette { return standard() }

// Family returns the shades of the given hue. It panics if the
// hue is not valid.
func (p *Palette) Family(h Hue) Shades {
	return p.families[h]
}

// Shade returns the shade at the given index of the given hue.
func (p *Palette) Shade(h Hue, index int) string {
	return p.families[h][index]
}

// Black returns the black scalar color.
func (p *Palette) Black() string { return Black }

// White returns the white scalar color.
func (p *Palette) White() string { return White }

// Transparent returns the transparent scalar color.
func (p *Palette) Transparent() string { return Transparent }

// Contains returns whether the given color is one of the colors of
// the palette, comparing hex colors case insensitively.
func (p *Palette) Contains(color string) bool {
	_, ok := p.members[strings.ToLower(strings.TrimSpace(color))]
	return ok
}
