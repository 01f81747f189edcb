// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swatch prints the color picker palettes and the
// black or white label color chosen for background colors.
package main

import (
	"os"

	"cogentcore.org/swatch/grr"
)

func main() {
	if err := grr.Log(newRootCmd().Execute()); err != nil {
		os.Exit(1)
	}
}
