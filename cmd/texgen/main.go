// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/texgen/internal/manifest"
)

func main() { cli.Main(new(app)) }

type app struct {
	root   string
	out    string
	anchor string
	format string
	minify bool
	strict bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", manifest.DefaultRoot, "Scan assets in `dir`.")
	fs.StringVar(&a.out, "out", manifest.DefaultOutput, "Write manifest to `file`.")
	fs.StringVar(&a.anchor, "anchor", manifest.DefaultAnchor, "Start texture paths from path `segment`.")
	fs.StringVar(&a.format, "format", string(manifest.JSON), "Output `format` (json or yaml).")
	fs.BoolVar(&a.minify, "minify", false, "Write JSON without indentation.")
	fs.BoolVar(&a.strict, "strict", false, "Fail when two files map to the same variant and size.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: texgen takes no arguments", cli.ErrInvalidArgs)
	}

	c := &manifest.Config{
		Root:   a.root,
		Output: a.out,
		Anchor: a.anchor,
		Format: manifest.Format(a.format),
		Minify: a.minify,
		Strict: a.strict,
	}
	if err := manifest.Generate(ctx, c); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "✔ %s file created: %s\n", strings.ToUpper(string(c.Format)), c.Output)
	return nil
}
