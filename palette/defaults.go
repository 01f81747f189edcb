// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cmp"
	"slices"
	"strings"

	"cogentcore.org/swatch/keylist"
)

const (
	// ColorsPerRow is the number of swatches in one picker row.
	ColorsPerRow = 5

	// MaxCustomColorsUsedInCanvas is the maximum number of custom
	// colors offered from those already used on the canvas.
	MaxCustomColorsUsedInCanvas = 5

	// DefaultChartColorIndex is the shade index used for charts.
	DefaultChartColorIndex = 4

	// DefaultElementStrokeColorIndex is the shade index of
	// the stroke quick picks.
	DefaultElementStrokeColorIndex = 4

	// DefaultElementBackgroundColorIndex is the shade index of
	// the element background quick picks.
	DefaultElementBackgroundColorIndex = 1
)

// neutralKeys are the entries of the first row of the element palettes.
var neutralKeys = []string{"transparent", "white", "gray", "black", "bronze"}

// CommonElementShades returns the colorful families shared by the
// stroke and background palettes, in [RowHues] order.
func (p *Palette) CommonElementShades() *keylist.List[string, Entry] {
	keys := make([]string, len(RowHues))
	for i, h := range RowHues {
		keys[i] = h.String()
	}
	return PickList(p.Entries(), keys...)
}

// elementPalette returns the neutral row followed by the common shades.
func (p *Palette) elementPalette() *keylist.List[string, Entry] {
	kl := PickList(p.Entries(), neutralKeys...)
	for k, e := range p.CommonElementShades().All() {
		kl.Set(k, e)
	}
	return kl
}

// StrokePalette returns the entries of the element stroke color picker,
// in display order.
func (p *Palette) StrokePalette() *keylist.List[string, Entry] {
	return p.elementPalette()
}

// BackgroundPalette returns the entries of the element background color
// picker, in display order.
func (p *Palette) BackgroundPalette() *keylist.List[string, Entry] {
	return p.elementPalette()
}

// StrokePicks returns the stroke quick picks, in display order.
func (p *Palette) StrokePicks() [ColorsPerRow]string {
	i := DefaultElementStrokeColorIndex
	return [ColorsPerRow]string{Black, p.Shade(Red, i), p.Shade(Green, i), p.Shade(Blue, i), p.Shade(Yellow, i)}
}

// BackgroundPicks returns the element background quick picks,
// in display order.
func (p *Palette) BackgroundPicks() [ColorsPerRow]string {
	i := DefaultElementBackgroundColorIndex
	return [ColorsPerRow]string{Transparent, p.Shade(Red, i), p.Shade(Green, i), p.Shade(Blue, i), p.Shade(Yellow, i)}
}

// CanvasBackgroundPicks returns the canvas background quick picks,
// in display order: white, then Radix slate 2, blue 2, yellow 2, and bronze 2.
func CanvasBackgroundPicks() [ColorsPerRow]string {
	return [ColorsPerRow]string{White, "#f8f9fa", "#f5faff", "#fffce8", "#fdf8f6"}
}

// MostUsedCustom returns up to [MaxCustomColorsUsedInCanvas] of the given
// used colors that are not in the palette, most used first, with ties in
// order of first use. Colors are compared case insensitively and returned
// in lowercase.
func (p *Palette) MostUsedCustom(used []string) []string {
	type count struct {
		color string
		n     int
		first int
	}
	counts := map[string]*count{}
	for i, c := range used {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || p.Contains(c) {
			continue
		}
		if cn, ok := counts[c]; ok {
			cn.n++
			continue
		}
		counts[c] = &count{color: c, n: 1, first: i}
	}
	all := make([]*count, 0, len(counts))
	for _, cn := range counts {
		all = append(all, cn)
	}
	slices.SortFunc(all, func(a, b *count) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		return cmp.Compare(a.first, b.first)
	})
	res := []string{}
	for _, cn := range all[:min(len(all), MaxCustomColorsUsedInCanvas)] {
		res = append(res, cn.color)
	}
	return res
}
