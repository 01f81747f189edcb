// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"regexp"
	"sync"
	"testing"

	"cogentcore.org/swatch/grr"
	"cogentcore.org/swatch/opencolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRegexp = regexp.MustCompile(`^#[0-9a-f]{6}$`)

var testSpectrum = []string{"#000000", "#111111", "#222222", "#333333", "#444444", "#555555", "#666666", "#777777", "#888888"}

func TestGetShades(t *testing.T) {
	sh, err := GetShades(testSpectrum, ShadeIndexes{0, 2, 4, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, Shades{"#000000", "#222222", "#444444", "#666666", "#888888"}, sh)

	sh, err = GetShades(testSpectrum, ShadeIndexes{8, 0, 6, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, Shades{"#888888", "#000000", "#666666", "#222222", "#444444"}, sh)

	_, err = GetShades(testSpectrum[:8], ElementShadeIndexes)
	assert.Error(t, err)
	_, err = GetShades(testSpectrum, ShadeIndexes{-1, 0, 1, 2, 3})
	assert.Error(t, err)

	assert.Panics(t, func() { MustGetShades(testSpectrum[:4], CanvasShadeIndexes) })
	assert.Equal(t, Shades{"#000000", "#111111", "#222222", "#333333", "#444444"}, MustGetShades(testSpectrum[:5], CanvasShadeIndexes))
}

func TestBuild(t *testing.T) {
	p := Build()
	for _, h := range HueValues() {
		sh := p.Family(h)
		assert.Len(t, sh, ShadesN)
		for i, c := range sh {
			assert.Regexp(t, hexRegexp, c, "%v[%d]", h, i)
		}
	}
	assert.Equal(t, Shades{"#fff5f5", "#ffc9c9", "#ff8787", "#fa5252", "#e03131"}, p.Family(Red))
	assert.Equal(t, Shades{"#f8f9fa", "#e9ecef", "#ced4da", "#868e96", "#343a40"}, p.Family(Gray))
	assert.Equal(t, Shades{"#f8f1ee", "#eaddd7", "#d2bab0", "#a18072", "#846358"}, p.Family(Bronze))
	assert.Equal(t, "#1971c2", p.Shade(Blue, 4))
	assert.Equal(t, "#1e1e1e", p.Black())
	assert.Equal(t, "#ffffff", p.White())
	assert.Equal(t, "transparent", p.Transparent())

	assert.Equal(t, p, Build())
}

func TestBuildCanvas(t *testing.T) {
	p := BuildCanvas()
	assert.Equal(t, Shades{"#e7f5ff", "#d0ebff", "#a5d8ff", "#74c0fc", "#4dabf7"}, p.Family(Blue))
	assert.Equal(t, Build().Family(Bronze), p.Family(Bronze))
}

func TestBuildFromErrors(t *testing.T) {
	spectra := opencolor.Spectra()
	spectra["teal"] = spectra["teal"][:8]
	_, err := BuildFrom(spectra, ElementShadeIndexes)
	require.Error(t, err)
	var ge *grr.Error
	assert.ErrorAs(t, err, &ge)
	assert.Contains(t, err.Error(), "teal")

	delete(spectra, "teal")
	_, err = BuildFrom(spectra, ElementShadeIndexes)
	assert.ErrorContains(t, err, "no spectrum for hue teal")

	spectra = opencolor.Spectra()
	spectra["red"] = []string{"#fff", "red", "#ff0000", "#ff0000", "#ff0000"}
	_, err = BuildFrom(spectra, CanvasShadeIndexes)
	assert.ErrorContains(t, err, "not a hex color")

	spectra = opencolor.Spectra()
	spectra["red"][0] = "#zzzzzz"
	_, err = BuildFrom(spectra, CanvasShadeIndexes)
	assert.ErrorContains(t, err, "shade 0 of hue red")
}

func TestStandard(t *testing.T) {
	var wg sync.WaitGroup
	res := make([]*Palette, 8)
	for i := range res {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i] = Standard()
		}()
	}
	wg.Wait()
	for _, p := range res {
		assert.Same(t, res[0], p)
	}

	// accessors return copies
	sh := Standard().Family(Red)
	sh[0] = "#000000"
	assert.Equal(t, "#fff5f5", Standard().Family(Red)[0])

	// spectra handed out by opencolor are copies too
	opencolor.Spectra()["red"][0] = "#000000"
	sp, _ := opencolor.Spectrum("red")
	sp[0] = "#000000"
	assert.Equal(t, "#fff5f5", Build().Family(Red)[0])
}

func TestRow(t *testing.T) {
	row := Row(4)
	assert.Equal(t, [RowN]string{"#0c8599", "#1971c2", "#6741d9", "#9c36b5", "#c2255c", "#2f9e44", "#099268", "#f08c00", "#e8590c", "#e03131"}, row)
	row = Row(0)
	assert.Equal(t, [RowN]string{"#e3fafc", "#e7f5ff", "#f3f0ff", "#f8f0fc", "#fff0f6", "#ebfbee", "#e6fcf5", "#fff9db", "#fff4e6", "#fff5f5"}, row)

	p := Standard()
	neutrals := map[string]bool{Black: true, White: true, Transparent: true}
	for _, h := range []Hue{Gray, Bronze} {
		for _, c := range p.Family(h) {
			neutrals[c] = true
		}
	}
	for i := range ShadesN {
		for _, c := range p.Row(i) {
			assert.False(t, neutrals[c], c)
		}
	}
	for _, h := range RowHues {
		assert.True(t, h.IsColorful(), h.String())
	}

	assert.Panics(t, func() { Row(5) })
	assert.Panics(t, func() { Row(-1) })
}

func TestContains(t *testing.T) {
	p := Standard()
	assert.True(t, p.Contains("#E03131"))
	assert.True(t, p.Contains("transparent"))
	assert.True(t, p.Contains("#1e1e1e"))
	assert.False(t, p.Contains("#123456"))
	assert.False(t, p.Contains("#f5faff"))
}

func TestEntries(t *testing.T) {
	kl := Standard().Entries()
	assert.Equal(t, 3+int(HuesN), kl.Len())
	assert.Equal(t, []string{"transparent", "black", "white", "gray", "red"}, kl.Keys[:5])
	assert.False(t, kl.At("black").IsFamily())
	assert.Equal(t, Black, kl.At("black").Solid)
	assert.True(t, kl.At("red").IsFamily())
	assert.Equal(t, "#e03131", kl.At("red").Shades[4])

	kl.At("red").Shades[4] = "#000000"
	assert.Equal(t, "#e03131", Standard().Shade(Red, 4))
}
