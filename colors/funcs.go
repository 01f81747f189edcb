// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// fromFunc parses a lowercase rgb(), rgba(), hsl(), or hsla() string.
func fromFunc(str string) (color.NRGBA, error) {
	open := strings.IndexByte(str, '(')
	if open < 0 || !strings.HasSuffix(str, ")") {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: missing parentheses in %q", str)
	}
	name := strings.TrimSpace(str[:open])
	args, err := funcArgs(str[open+1 : len(str)-1])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromString: %s: %w in %q", name, err, str)
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := parseUnit(args[3], 1)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid alpha in %q: %w", str, err)
		}
		alpha = a
	}
	a := uint8(math.Round(clamp(alpha, 0, 1) * 255))

	switch name {
	case "rgb", "rgba":
		var ch [3]uint8
		for i := range ch {
			v, err := parseUnit(args[i], 255)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid channel in %q: %w", str, err)
			}
			ch[i] = uint8(math.Round(clamp(v, 0, 255)))
		}
		return color.NRGBA{ch[0], ch[1], ch[2], a}, nil
	case "hsl", "hsla":
		h, err := parseHue(args[0])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid hue in %q: %w", str, err)
		}
		s, err := parsePercent(args[1])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid saturation in %q: %w", str, err)
		}
		l, err := parsePercent(args[2])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colors.FromString: invalid lightness in %q: %w", str, err)
		}
		r, g, b := colorful.Hsl(h, clamp(s, 0, 1), clamp(l, 0, 1)).Clamped().RGB255()
		return color.NRGBA{r, g, b, a}, nil
	}
	return color.NRGBA{}, fmt.Errorf("colors.FromString: unknown color function %q", name)
}

// funcArgs splits the arguments of a color function into three channels
// and an optional alpha value. With any comma the arguments are comma
// separated, with the alpha as an optional fourth value. Otherwise they
// are separated by whitespace, with the alpha after a slash.
func funcArgs(s string) ([]string, error) {
	if strings.Contains(s, ",") {
		args := strings.Split(s, ",")
		for i, a := range args {
			a = strings.TrimSpace(a)
			if a == "" || strings.ContainsAny(a, " \t/") {
				return nil, fmt.Errorf("invalid argument %q", a)
			}
			args[i] = a
		}
		if len(args) != 3 && len(args) != 4 {
			return nil, fmt.Errorf("needs 3 or 4 arguments, got %d", len(args))
		}
		return args, nil
	}
	chans, alpha, hasAlpha := strings.Cut(s, "/")
	args := strings.Fields(chans)
	if len(args) != 3 {
		return nil, fmt.Errorf("needs 3 channels, got %d", len(args))
	}
	if hasAlpha {
		af := strings.Fields(alpha)
		if len(af) != 1 {
			return nil, fmt.Errorf("needs 1 alpha value after the slash, got %d", len(af))
		}
		args = append(args, af[0])
	}
	return args, nil
}

// parseUnit parses a finite number, or a percentage of the given full value.
func parseUnit(s string, full float64) (float64, error) {
	num, pct := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite", s)
	}
	if pct {
		v = v / 100 * full
	}
	return v, nil
}

// parsePercent parses a percentage with or without the % sign
// as a fraction, so that both "50" and "50%" give 0.5.
func parsePercent(s string) (float64, error) {
	v, err := parseUnit(strings.TrimSuffix(s, "%"), 1)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// parseHue parses a hue angle in degrees, normalized to [0, 360).
// Percentages are not valid hues.
func parseHue(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("hue %q can not be a percentage", s)
	}
	h, err := parseUnit(strings.TrimSuffix(s, "deg"), 1)
	if err != nil {
		return 0, err
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
