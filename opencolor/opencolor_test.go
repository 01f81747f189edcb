// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opencolor

import (
	"testing"

	"cogentcore.org/swatch/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectra(t *testing.T) {
	all := Spectra()
	assert.Len(t, all, 13)
	for name, spec := range all {
		require.Len(t, spec, Shades, name)
		prev := 256.0
		for i, hex := range spec {
			c, err := colors.FromHex(hex)
			require.NoError(t, err, "%s[%d]", name, i)
			assert.Len(t, hex, 7)
			l := colors.Luma(colors.RGB{R: int(c.R), G: int(c.G), B: int(c.B)})
			assert.Less(t, l, prev, "%s[%d] should be darker than the shade before it", name, i)
			prev = l
		}
	}
}

func TestSpectrum(t *testing.T) {
	s, ok := Spectrum("blue")
	assert.True(t, ok)
	assert.Equal(t, "#1971c2", s[8])
	s[8] = "#000000"
	s, _ = Spectrum("blue")
	assert.Equal(t, "#1971c2", s[8])

	Spectra()["blue"][8] = "#000000"
	assert.Equal(t, "#1971c2", Spectra()["blue"][8])

	_, ok = Spectrum("bronze")
	assert.False(t, ok)
}
