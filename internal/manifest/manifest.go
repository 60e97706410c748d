// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package manifest builds texture manifests from a tree of PNG assets.

# Directory Structure

The asset root must have the following layout:

	<root>/<category>/<size>/<variant>.png
	<root>/<category>/<size>/<variant>/<any name>.png

Each directory under the root is a category (e.g. a creature type). Each
directory under a category is a size bucket; its size is derived from the
directory name with [SizeToken]. Files placed directly into a size bucket are
keyed by their name, files in nested directories by the name of the directory
that contains them (see [VariantKey]). Anything that isn't a directory at the
first two levels and any file that isn't a PNG image is ignored.

# Manifest Layout

	{
	  "zombie": {
	    "types": [
	      {
	        "textures": {
	          "8": "/png_files/zombie/8x8/zombie.png",
	          "16": "/png_files/zombie/16x16/zombie.png"
	        },
	        "default": true
	      },
	      {
	        "textures": {
	          "8": "/png_files/zombie/8x8/angry/angry.png"
	        },
	        "variant": "angry"
	      }
	    ]
	  }
	}

The first variant found for a category is marked as default. Variants named
"default" or named after their category carry no "variant" label.
*/
package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// Defaults used when the corresponding Config field is empty.
const (
	DefaultRoot   = "assets/png_files"
	DefaultOutput = "textures.json"
	DefaultAnchor = "png_files"
)

// Possible errors, used in tests.
var (
	// ErrDuplicateTexture is returned in strict mode when two files map to
	// the same variant and size.
	ErrDuplicateTexture = errors.New("duplicate texture")

	errRootNotDir    = errors.New("asset root is not a directory")
	errUnknownFormat = errors.New("unknown output format")
	errMinifyFormat  = errors.New("minification is supported only for JSON")
)

// Config represents a manifest build configuration.
type Config struct {
	// Root is the directory to scan. If empty, DefaultRoot is used.
	Root string
	// Output is the file where the manifest is written by Generate. If empty,
	// DefaultOutput is used.
	Output string
	// Anchor is the path segment web paths start from. If empty,
	// DefaultAnchor is used.
	Anchor string
	// Format is the output format. If empty, JSON is used.
	Format Format
	// Minify determines if the JSON output should be written without
	// indentation.
	Minify bool
	// Strict makes the build fail when two files resolve to the same variant
	// and size instead of keeping the last one.
	Strict bool
}

func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Anchor == "" {
		c.Anchor = DefaultAnchor
	}
	if c.Format == "" {
		c.Format = JSON
	}
}

// Manifest maps categories to their texture variants.
type Manifest struct {
	categories *orderedMap[string, *category]
}

type category struct {
	name     string
	variants *orderedMap[string, *variant]
}

type variant struct {
	key      string
	textures *orderedMap[string, string] // size -> web path
}

// setTexture records path as the texture of v for size. An earlier path for
// the same size is replaced, unless strict is set.
func (v *variant) setTexture(size, path string, strict bool) error {
	if old, ok := v.textures.Get(size); ok && strict {
		return fmt.Errorf("%w: variant %q, size %q: %s and %s", ErrDuplicateTexture, v.key, size, old, path)
	}
	v.textures.Set(size, path)
	return nil
}

// Categories returns category names in manifest order.
func (m *Manifest) Categories() []string {
	return m.categories.Keys()
}

// Types returns the variant entries of the named category, in the order they
// were discovered. It returns nil if there is no such category.
func (m *Manifest) Types(name string) []Entry {
	c, ok := m.categories.Get(name)
	if !ok {
		return nil
	}
	return c.entries()
}

// Entry describes one texture variant of a category.
type Entry struct {
	Textures Textures `json:"textures"`
	Variant  string   `json:"variant,omitempty"`
	Default  bool     `json:"default,omitempty"`
}

func (c *category) entries() []Entry {
	entries := make([]Entry, 0, c.variants.Len())
	for key, v := range c.variants.All() {
		e := Entry{
			Textures: newTextures(v.textures),
			Default:  len(entries) == 0,
		}
		if key != "default" && key != c.name {
			e.Variant = key
		}
		entries = append(entries, e)
	}
	return entries
}

// Build scans the asset tree described by c and returns its manifest.
func Build(ctx context.Context, c *Config) (*Manifest, error) {
	c.setDefaults()

	fi, err := os.Stat(c.Root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", c.Root, errRootNotDir)
	}

	logger.Info(ctx, "scanning assets", slog.String("root", c.Root))

	dirs, err := subdirs(c.Root)
	if err != nil {
		return nil, err
	}

	m := &Manifest{categories: newOrderedMap[string, *category]()}
	var textures int
	for _, name := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cat, n, err := buildCategory(ctx, c, name)
		if err != nil {
			return nil, err
		}
		m.categories.Set(name, cat)
		textures += n
	}

	logger.Info(ctx, "scanned assets",
		slog.Int("categories", m.categories.Len()),
		slog.Int("textures", textures),
	)
	return m, nil
}

func buildCategory(ctx context.Context, c *Config, name string) (*category, int, error) {
	cat := &category{
		name:     name,
		variants: newOrderedMap[string, *variant](),
	}
	catDir := filepath.Join(c.Root, name)

	buckets, err := subdirs(catDir)
	if err != nil {
		return nil, 0, err
	}

	var n int
	for _, bucket := range buckets {
		size, ok := SizeToken(bucket)
		if !ok {
			logger.Info(ctx, "size directory has no size token, using empty key",
				slog.String("category", name),
				slog.String("dir", bucket),
			)
		}

		bucketDir := filepath.Join(catDir, bucket)
		if err := walkFiles(bucketDir, func(dir, file string) error {
			if !isPNG(file) {
				return nil
			}
			key, err := VariantKey(bucketDir, dir, file)
			if err != nil {
				return err
			}
			v, ok := cat.variants.Get(key)
			if !ok {
				v = &variant{key: key, textures: newOrderedMap[string, string]()}
				cat.variants.Set(key, v)
			}
			n++
			return v.setTexture(size, WebPath(filepath.Join(dir, file), c.Anchor), c.Strict)
		}); err != nil {
			return nil, 0, err
		}
	}

	return cat, n, nil
}
