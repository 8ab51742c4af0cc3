// twtheme - A Tailwind CSS theme generator
//
// twtheme normalises colour overrides and generates shadcn/ui-style
// Tailwind CSS variables and theme presets for your projects.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/twtheme/internal/cli"
)

func main() {
	cli.Execute()
}
