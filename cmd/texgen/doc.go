// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Texgen generates the texture manifest.

# Usage

	$ texgen [flags]

Texgen scans the asset tree (by default "assets/png_files"), where each
directory is a category and each of its subdirectories holds one size of
category textures:

	assets/png_files/zombie/8x8/zombie.png
	assets/png_files/zombie/16x16/zombie.png
	assets/png_files/zombie/8x8/angry/angry.png

It then writes a manifest (by default "textures.json" in the current
directory) that lists texture variants of each category together with
paths of their textures at every size.

Two files that resolve to the same variant and size are not an error: the
one found last wins. Pass -strict to fail instead.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
