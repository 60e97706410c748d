// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestWebPath(t *testing.T) {
	cases := map[string]struct {
		path, anchor string
		want         string
	}{
		"anchor in the middle": {
			path:   filepath.Join("assets", "png_files", "zombie", "8x8", "zombie.png"),
			anchor: "png_files",
			want:   "/png_files/zombie/8x8/zombie.png",
		},
		"anchor first": {
			path:   filepath.Join("png_files", "bat", "16x16", "bat.png"),
			anchor: "png_files",
			want:   "/png_files/bat/16x16/bat.png",
		},
		"first anchor wins": {
			path:   filepath.Join("png_files", "png_files", "a.png"),
			anchor: "png_files",
			want:   "/png_files/png_files/a.png",
		},
		"anchor is a substring only": {
			path:   filepath.Join("assets", "my_png_files", "a.png"),
			anchor: "png_files",
			want:   "/assets/my_png_files/a.png",
		},
		"no anchor": {
			path:   filepath.Join("sprites", "bat", "8x8", "bat.png"),
			anchor: "png_files",
			want:   "/sprites/bat/8x8/bat.png",
		},
		"custom anchor": {
			path:   filepath.Join("build", "img", "bat", "8x8", "bat.png"),
			anchor: "img",
			want:   "/img/bat/8x8/bat.png",
		},
		"no escaping": {
			path:   filepath.Join("png_files", "Cat & Mouse", "8x8", "ü.png"),
			anchor: "png_files",
			want:   "/png_files/Cat & Mouse/8x8/ü.png",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := WebPath(tc.path, tc.anchor)
			testutil.AssertEqual(t, got, tc.want)
			if strings.Contains(tc.path, tc.anchor) && !strings.HasPrefix(got, "/") {
				t.Fatalf("WebPath(%q): %q doesn't start with a slash", tc.path, got)
			}
		})
	}
}

func TestSizeToken(t *testing.T) {
	cases := map[string]struct {
		in     string
		want   string
		wantOK bool
	}{
		"square":          {"8x8", "8", true},
		"suffix":          {"16x16px", "16", true},
		"digits only":     {"32", "32", true},
		"digits in name":  {"size10", "10", true},
		"scattered":       {"s1z2", "12", true},
		"no digits":       {"nosize", "", false},
		"x without width": {"x8", "", false},
		"x before digits": {"max64", "ma", true},
		"empty":           {"", "", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := SizeToken(tc.in)
			testutil.AssertEqual(t, got, tc.want)
			testutil.AssertEqual(t, ok, tc.wantOK)
		})
	}
}

func TestVariantKey(t *testing.T) {
	bucket := filepath.Join("png_files", "zombie", "8x8")

	cases := map[string]struct {
		dir, name string
		want      string
	}{
		"file in bucket":        {bucket, "zombie.png", "zombie"},
		"double extension":      {bucket, "zombie.old.png", "zombie.old"},
		"dotfile":               {bucket, ".png", ".png"},
		"nested":                {filepath.Join(bucket, "angry"), "a.png", "angry"},
		"deeply nested":         {filepath.Join(bucket, "moods", "angry"), "b.png", "angry"},
		"nested name is unused": {filepath.Join(bucket, "angry"), "zombie.png", "angry"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := VariantKey(bucket, tc.dir, tc.name)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestIsPNG(t *testing.T) {
	cases := map[string]bool{
		"a.png":     true,
		"a.PNG":     true,
		"a.Png":     true,
		"a.jpg":     false,
		"a.png.bak": false,
		"png":       false,
	}
	for name, want := range cases {
		if got := isPNG(name); got != want {
			t.Errorf("isPNG(%q): want %v, got %v", name, want, got)
		}
	}
}

func TestCompareSizes(t *testing.T) {
	ts := newTextures(func() *orderedMap[string, string] {
		om := newOrderedMap[string, string]()
		for _, size := range []string{"16", "8", "", "128", "big", "08"} {
			om.Set(size, size)
		}
		return om
	}())

	var got []string
	for _, tex := range ts {
		got = append(got, tex.Size)
	}
	testutil.AssertEqual(t, got, []string{"", "big", "08", "8", "16", "128"})
}
