// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cogentcore.org/swatch/grr"
)

// ShadesN is the number of shades of every color family.
const ShadesN = 5

// Shades are the shades of one color family, from lightest (0)
// to darkest (4). Position k means the same thing in every family,
// so position k across families forms a visual row.
type Shades [ShadesN]string

// ShadeIndexes are the positions within a hue spectrum that
// are selected to make a [Shades].
type ShadeIndexes [ShadesN]int

var (
	// ElementShadeIndexes is the wide index set used for the
	// stroke and background colors of drawn elements.
	ElementShadeIndexes = ShadeIndexes{0, 2, 4, 6, 8}

	// CanvasShadeIndexes is the narrow, contiguous index set
	// used for canvas background colors.
	CanvasShadeIndexes = ShadeIndexes{0, 1, 2, 3, 4}
)

// GetShades returns the shades at the given indexes of the given
// spectrum, in the order of the indexes, which need not be sorted.
// It returns an error if any index is outside of the spectrum.
func GetShades(spectrum []string, idx ShadeIndexes) (Shades, error) {
	var sh Shades
	for i, si := range idx {
		if si < 0 || si >= len(spectrum) {
			return Shades{}, grr.Errorf("palette.GetShades: index %d is out of range of a spectrum with %d shades", si, len(spectrum))
		}
		sh[i] = spectrum[si]
	}
	return sh, nil
}

// MustGetShades calls [GetShades] and panics on any error.
// Index sets are fixed at build time, so an error is a programmer error.
func MustGetShades(spectrum []string, idx ShadeIndexes) Shades {
	return grr.Must1(GetShades(spectrum, idx))
}

// RowN is the number of colors in a shade row.
const RowN = 10

// RowHues are the hues of a shade row, in display order:
// the first five fill one picker row and the last five the next.
// It must only contain colorful hues.
var RowHues = [RowN]Hue{Cyan, Blue, Violet, Grape, Pink, Green, Teal, Yellow, Orange, Red}

// Row returns the shade at the given index of every hue in [RowHues].
// It panics if the index is not in 0..4.
func (p *Palette) Row(index int) [RowN]string {
	if index < 0 || index >= ShadesN {
		panic(grr.Errorf("palette.Row: shade index %d is not in 0..%d", index, ShadesN-1))
	}
	var row [RowN]string
	for i, h := range RowHues {
		row[i] = p.families[h][index]
	}
	return row
}

// Row returns [Palette.Row] of the [Standard] palette.
func Row(index int) [RowN]string {
	return Standard().Row(index)
}
