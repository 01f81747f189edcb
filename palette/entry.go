// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"strings"

	"cogentcore.org/swatch/keylist"
)

// Entry is one named entry of a palette: either a solid color,
// or a color family with [ShadesN] shades. If Shades is nil,
// it is a solid color; otherwise, it is a family and Solid is empty.
type Entry struct {
	Solid  string
	Shades *Shades
}

// SolidEntry returns a solid color entry.
func SolidEntry(c string) Entry {
	return Entry{Solid: c}
}

// FamilyEntry returns a color family entry holding a copy of the given shades.
func FamilyEntry(sh Shades) Entry {
	return Entry{Shades: &sh}
}

// IsFamily returns whether the entry is a color family.
func (e Entry) IsFamily() bool {
	return e.Shades != nil
}

// Colors returns all colors of the entry, in order.
func (e Entry) Colors() []string {
	if e.Shades != nil {
		return append([]string(nil), e.Shades[:]...)
	}
	return []string{e.Solid}
}

// String returns the solid color, or the shades separated by spaces.
func (e Entry) String() string {
	return strings.Join(e.Colors(), " ")
}

// Entries returns the whole palette as an ordered list of entries:
// transparent, black, and white, followed by every hue in [Hue] order.
// The list is a fresh copy that the caller owns.
func (p *Palette) Entries() *keylist.List[string, Entry] {
	kl := keylist.New[string, Entry]()
	kl.Set("transparent", SolidEntry(Transparent))
	kl.Set("black", SolidEntry(Black))
	kl.Set("white", SolidEntry(White))
	for _, h := range HueValues() {
		kl.Set(h.String(), FamilyEntry(p.families[h]))
	}
	return kl
}
