// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"cogentcore.org/swatch/opencolor"
	"github.com/stretchr/testify/assert"
)

func TestHue(t *testing.T) {
	assert.Len(t, HueValues(), 12)
	assert.Equal(t, "bronze", Bronze.String())
	assert.Equal(t, "Hue(99)", Hue(99).String())

	var h Hue
	assert.NoError(t, h.SetString(" Violet "))
	assert.Equal(t, Violet, h)
	assert.Error(t, h.SetString("indigo"))
	assert.Error(t, h.SetString("lime"))

	b, err := Teal.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "teal", string(b))
	assert.NoError(t, h.UnmarshalText([]byte("orange")))
	assert.Equal(t, Orange, h)

	assert.False(t, Gray.IsColorful())
	assert.False(t, Bronze.IsColorful())
	assert.False(t, HuesN.IsColorful())
	assert.True(t, Red.IsColorful())

	assert.Equal(t, HueValues(), Red.Values())
	assert.Contains(t, Bronze.Desc(), "warm neutral")
	assert.Empty(t, Cyan.Desc())
	assert.Empty(t, Hue(-1).Desc())

	// every hue but bronze comes from the spectrum source
	for _, h := range HueValues() {
		_, ok := opencolor.Spectrum(h.String())
		assert.Equal(t, h != Bronze, ok, h.String())
	}
}
