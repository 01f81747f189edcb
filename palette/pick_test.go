// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"cogentcore.org/swatch/keylist"
	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	res := Pick(map[string]int{"a": 1, "b": 2, "c": 3}, "c", "a", "z")
	assert.Equal(t, []string{"c", "a"}, res.Keys)
	assert.Equal(t, []int{3, 1}, res.Values)
	assert.False(t, res.Has("b"))
	assert.False(t, res.Has("z"))

	res = Pick(map[string]int{"a": 1}, "a", "a")
	assert.Equal(t, 1, res.Len())

	assert.Equal(t, 0, Pick[string, int](nil, "a").Len())
	assert.Equal(t, 0, Pick(map[string]int{"a": 1}).Len())
}

func TestPickList(t *testing.T) {
	src := keylist.New[string, int]()
	src.Set("a", 1)
	src.Set("b", 2)
	src.Set("c", 3)
	res := PickList(src, "c", "a", "z")
	assert.Equal(t, []string{"c", "a"}, res.Keys)
	assert.Equal(t, []int{3, 1}, res.Values)
}

func TestElementPalettes(t *testing.T) {
	p := Standard()
	want := []string{"transparent", "white", "gray", "black", "bronze", "cyan", "blue", "violet", "grape", "pink", "green", "teal", "yellow", "orange", "red"}
	assert.Equal(t, want, p.StrokePalette().Keys)
	assert.Equal(t, want, p.BackgroundPalette().Keys)
	assert.Equal(t, 3*ColorsPerRow, p.StrokePalette().Len())

	common := p.CommonElementShades()
	assert.Equal(t, want[5:], common.Keys)
	for _, e := range common.Values {
		assert.True(t, e.IsFamily())
	}
	assert.Equal(t, White, p.StrokePalette().At("white").Solid)
}

func TestPicks(t *testing.T) {
	p := Standard()
	assert.Equal(t, [ColorsPerRow]string{"#1e1e1e", "#e03131", "#2f9e44", "#1971c2", "#f08c00"}, p.StrokePicks())
	assert.Equal(t, [ColorsPerRow]string{"transparent", "#ffc9c9", "#b2f2bb", "#a5d8ff", "#ffec99"}, p.BackgroundPicks())
	assert.Equal(t, [ColorsPerRow]string{"#ffffff", "#f8f9fa", "#f5faff", "#fffce8", "#fdf8f6"}, CanvasBackgroundPicks())
}

func TestMostUsedCustom(t *testing.T) {
	p := Standard()
	used := []string{
		"#e03131", "#123456", "#ABCDEF", "#abcdef", "transparent",
		"#111111", "#222222", "#333333", "#444444", "#555555", "#222222", "",
	}
	assert.Equal(t, []string{"#abcdef", "#222222", "#123456", "#111111", "#333333"}, p.MostUsedCustom(used))
	assert.Empty(t, p.MostUsedCustom(nil))
	assert.Empty(t, p.MostUsedCustom([]string{"#1e1e1e", "#FFFFFF"}))
}
