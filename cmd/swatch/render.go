// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/palette"
	"github.com/muesli/termenv"
)

// renderer prints colors as terminal swatches, with each label in the
// foreground color chosen for its background. On outputs without color
// support it prints plain text.
type renderer struct {
	w   io.Writer
	out *termenv.Output
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w, out: termenv.NewOutput(w)}
}

// swatch returns the given color drawn as a labeled swatch.
func (r *renderer) swatch(c string) string {
	label := " " + c + " "
	if c == palette.Transparent {
		return label
	}
	n, err := colors.FromString(c)
	if err != nil {
		return label
	}
	fg := colors.PickForeground(c, colors.HotkeyThreshold)
	return r.out.String(label).
		Background(r.out.Color(colors.RGBToHex(int(n.R), int(n.G), int(n.B)))).
		Foreground(r.out.Color(fg.Hex())).
		String()
}

// line prints the given colors as swatches after an optional name.
func (r *renderer) line(name string, cs ...string) {
	sw := make([]string, len(cs))
	for i, c := range cs {
		sw[i] = r.swatch(c)
	}
	if name != "" {
		fmt.Fprintf(r.w, "%-12s", name)
	}
	fmt.Fprintln(r.w, strings.Join(sw, ""))
}

// entry prints one palette entry.
func (r *renderer) entry(name string, e palette.Entry) {
	r.line(name, e.Colors()...)
}

// contrast prints the label color decided for a background.
func (r *renderer) contrast(bg string, fg colors.Foreground, luma float64) {
	fmt.Fprintf(r.w, "%s\t%s\t%.3f\n", r.swatch(bg), fg, luma)
}
