// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/grr"
	"cogentcore.org/swatch/keylist"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Custom is a user supplied palette with arbitrary names, each either a
// solid color or a family of [ShadesN] shades. Custom colors are never
// merged into a [Palette], whose set of hues is closed. Colors can only
// be added through [Custom.AddSolid] and [Custom.AddFamily].
type Custom struct {
	list keylist.List[string, Entry]
}

// NewCustom returns a new empty custom palette.
func NewCustom() *Custom {
	return &Custom{}
}

// Len returns the number of colors in the palette.
func (c *Custom) Len() int { return c.list.Len() }

// Keys returns the color names in the order they were added.
func (c *Custom) Keys() []string { return slices.Clone(c.list.Keys) }

// At returns the color with the given name, or the zero [Entry].
func (c *Custom) At(name string) Entry { return c.list.At(name) }

// AtTry returns the color with the given name, and whether it exists.
func (c *Custom) AtTry(name string) (Entry, bool) { return c.list.AtTry(name) }

// All returns an iterator over the names and colors in order.
func (c *Custom) All() iter.Seq2[string, Entry] { return c.list.All() }

// AddSolid adds a solid color with the given name. It returns an error
// if the name is empty or already used, or if the color is not valid.
func (c *Custom) AddSolid(name, color string) error {
	if _, err := colors.FromString(color); err != nil {
		return grr.Errorf("palette.Custom: color %q: %w", name, err)
	}
	return c.add(name, SolidEntry(color))
}

// AddFamily adds a color family with the given name. There must be
// exactly [ShadesN] shades, each a hex color like those of the
// standard palette.
func (c *Custom) AddFamily(name string, shades []string) error {
	if len(shades) != ShadesN {
		return grr.Errorf("palette.Custom: family %q has %d shades instead of %d", name, len(shades), ShadesN)
	}
	var sh Shades
	for i, s := range shades {
		if err := checkHex(s); err != nil {
			return grr.Errorf("palette.Custom: shade %d of family %q: %w", i, name, err)
		}
		sh[i] = s
	}
	return c.add(name, FamilyEntry(sh))
}

func (c *Custom) add(name string, e Entry) error {
	if strings.TrimSpace(name) == "" {
		return grr.New("palette.Custom: color name is empty")
	}
	return grr.Wrap(c.list.Add(name, e))
}

// customFile is the file format of a custom palette.
type customFile struct {
	Colors []customColor `toml:"colors" yaml:"colors"`
}

// customColor is one entry of a custom palette file, with
// exactly one of Solid and Shades set.
type customColor struct {
	Name   string   `toml:"name" yaml:"name"`
	Solid  string   `toml:"solid,omitempty" yaml:"solid,omitempty"`
	Shades []string `toml:"shades,omitempty" yaml:"shades,omitempty"`
}

// Format is the serialization format of a custom palette file.
type Format int32

const (
	TOML Format = iota
	YAML
)

// FormatFromFilename returns the format implied by the extension of the
// given filename: .yaml and .yml are [YAML], and anything else is [TOML].
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// ReadCustom reads a custom palette in the given format. The file
// is a list of colors, in display order, for example in TOML:
//
//	[[colors]]
//	name = "brand"
//	shades = ["#e7f5ff", "#a5d8ff", "#4dabf7", "#228be6", "#1971c2"]
//
//	[[colors]]
//	name = "accent"
//	solid = "#ff00aa"
func ReadCustom(r io.Reader, format Format) (*Custom, error) {
	var f customFile
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	}
	if err != nil {
		return nil, grr.Errorf("palette.ReadCustom: %w", err)
	}
	c := NewCustom()
	for i, cc := range f.Colors {
		switch {
		case cc.Solid != "" && len(cc.Shades) > 0:
			err = grr.Errorf("palette.ReadCustom: color %d (%q) has both solid and shades", i, cc.Name)
		case len(cc.Shades) > 0:
			err = c.AddFamily(cc.Name, cc.Shades)
		default:
			err = c.AddSolid(cc.Name, cc.Solid)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// OpenCustom reads a custom palette from the given file,
// in the format given by [FormatFromFilename].
func OpenCustom(filename string) (*Custom, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, grr.Wrap(err)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, grr.Wrap(err)
	}
	defer f.Close()
	c, err := ReadCustom(f, FormatFromFilename(filename))
	if err != nil {
		return nil, grr.Errorf("%s: %w", filename, err)
	}
	return c, nil
}
