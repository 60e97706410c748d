// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package manifest

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"sigs.k8s.io/yaml"
)

// Format is the format in which a manifest can be written.
type Format string

// Available formats.
const (
	JSON = Format("json")
	YAML = Format("yaml")
)

// Texture is the path of a variant texture at one size.
type Texture struct {
	Size string
	Path string
}

// Textures is a list of textures ordered by size. It's encoded as a JSON
// object mapping sizes to paths.
type Textures []Texture

func newTextures(om *orderedMap[string, string]) Textures {
	ts := make(Textures, 0, om.Len())
	for size, path := range om.All() {
		ts = append(ts, Texture{Size: size, Path: path})
	}
	slices.SortStableFunc(ts, func(a, b Texture) int { return compareSizes(a.Size, b.Size) })
	return ts
}

// compareSizes orders numeric sizes by value. Sizes that aren't numbers,
// including the empty one, go first in lexical order.
func compareSizes(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr != nil && berr != nil:
		return cmp.Compare(a, b)
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	}
	if c := cmp.Compare(an, bn); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// Get returns the path of the texture for size.
func (ts Textures) Get(size string) (path string, ok bool) {
	for _, t := range ts {
		if t.Size == size {
			return t.Path, true
		}
	}
	return "", false
}

func (ts Textures) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range ts {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, t.Size); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, t.Path); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, c := range m.categories.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if err := writeJSON(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, struct {
			Types []Entry `json:"types"`
		}{c.entries()}); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON encodes v to buf without the trailing newline and without
// escaping HTML characters.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Encode returns the manifest in the provided format. JSON is indented with
// two spaces unless minify is set. The result always ends with a newline.
func (m *Manifest) Encode(format Format, minified bool) ([]byte, error) {
	if minified && format != JSON {
		return nil, fmt.Errorf("%w: %q", errMinifyFormat, format)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}

	switch format {
	case JSON:
		if !minified {
			return buf.Bytes(), nil
		}
		minifier := minify.New()
		minifier.AddFunc("application/json", mjson.Minify)
		b, err := minifier.Bytes("application/json", buf.Bytes())
		if err != nil {
			return nil, err
		}
		return append(bytes.TrimRight(b, "\n"), '\n'), nil
	case YAML:
		return yaml.JSONToYAML(buf.Bytes())
	}
	return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
}

// Generate builds the manifest described by c and writes it to c.Output.
// Nothing is written if the build or encoding fails.
func Generate(ctx context.Context, c *Config) error {
	m, err := Build(ctx, c)
	if err != nil {
		return err
	}
	b, err := m.Encode(c.Format, c.Minify)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Output, b, 0o644)
}
