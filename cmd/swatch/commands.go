// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/grog"
	"cogentcore.org/swatch/palette"
	"github.com/spf13/cobra"
)

// verbosity holds the global logging flags.
type verbosity struct {
	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	var vb verbosity
	root := &cobra.Command{
		Use:           "swatch",
		Short:         "Inspect the drawing color palettes and label contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		grog.UserLevel = grog.LevelFromFlags(vb.vv, vb.v, vb.q)
		grog.SetDefaultLogger(cmd.ErrOrStderr())
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vb.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&vb.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&vb.q, "quiet", "q", false, "only show errors")

	root.AddCommand(newPaletteCmd(), newRowCmd(), newPicksCmd(), newContrastCmd(), newCustomCmd())
	return root
}

func newPaletteCmd() *cobra.Command {
	var canvas bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print every color family of the standard palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.Standard()
			if canvas {
				p = palette.BuildCanvas()
			}
			r := newRenderer(cmd.OutOrStdout())
			for name, e := range p.Entries().All() {
				r.entry(name, e)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&canvas, "canvas", false, "use the lighter canvas background shades")
	return cmd
}

func newRowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "row <index>",
		Short: "Print one shade of every colorful family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil || idx < 0 || idx >= palette.ShadesN {
				return fmt.Errorf("shade index must be an integer in 0..%d, got %q", palette.ShadesN-1, args[0])
			}
			row := palette.Row(idx)
			r := newRenderer(cmd.OutOrStdout())
			for i := 0; i < len(row); i += palette.ColorsPerRow {
				r.line("", row[i:i+palette.ColorsPerRow]...)
			}
			return nil
		},
	}
}

func newPicksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picks",
		Short: "Print the quick pick colors of each picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.Standard()
			r := newRenderer(cmd.OutOrStdout())
			stroke, bg, canvas := p.StrokePicks(), p.BackgroundPicks(), palette.CanvasBackgroundPicks()
			r.line("stroke", stroke[:]...)
			r.line("background", bg[:]...)
			r.line("canvas", canvas[:]...)
			return nil
		},
	}
}

func newContrastCmd() *cobra.Command {
	threshold := colors.DefaultThreshold
	cmd := &cobra.Command{
		Use:   "contrast <color>...",
		Short: "Print the label color (black or white) for background colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(cmd.OutOrStdout())
			for _, bg := range args {
				if bg != palette.Transparent {
					if _, err := colors.FromString(bg); err != nil {
						if s, ok := colors.SuggestName(bg); ok {
							slog.Warn("invalid color, treating it as black", "color", bg, "didYouMean", s)
						} else {
							slog.Warn("invalid color, treating it as black", "color", bg, "err", err)
						}
					}
				}
				fg := colors.PickForeground(bg, threshold)
				luma := colors.Luma(colors.ParseRGB(bg)) / 255
				r.contrast(bg, fg, luma)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", threshold, "normalized luma (0..1) at or above which labels are black")
	return cmd
}

func newCustomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "custom <file>",
		Short: "Print a custom palette from a TOML or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := palette.OpenCustom(args[0])
			if err != nil {
				return err
			}
			slog.Info("loaded custom palette", "file", args[0], "colors", c.Len())
			r := newRenderer(cmd.OutOrStdout())
			for name, e := range c.All() {
				r.entry(name, e)
			}
			return nil
		},
	}
}
