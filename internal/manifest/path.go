// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package manifest

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// WebPath converts a filesystem path to a slash-separated path with a leading
// slash. If one of the path segments equals anchor, everything before the
// first such segment is dropped:
//
//	WebPath("assets/png_files/zombie/8x8/zombie.png", "png_files")
//	// "/png_files/zombie/8x8/zombie.png"
//
// Otherwise the whole path is used. No escaping is performed.
func WebPath(path, anchor string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if i := slices.Index(parts, anchor); i >= 0 {
		parts = parts[i:]
	}
	return "/" + strings.Join(parts, "/")
}

// SizeToken extracts the size key from a size directory name.
//
// If the name contains 'x', the token is everything before the first 'x'
// ("8x8" and "8x8px" both give "8"). Otherwise the token is made of all
// digits found in the name ("size10" gives "10").
//
// ok is false when the token is empty, for example for "nosize" or "x8".
// An empty token is still a valid map key; callers decide what to do with it.
func SizeToken(dirname string) (token string, ok bool) {
	if before, _, found := strings.Cut(dirname, "x"); found {
		return before, before != ""
	}
	var sb strings.Builder
	for _, r := range dirname {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	token = sb.String()
	return token, token != ""
}

// VariantKey returns the variant a file belongs to. bucket is the size
// directory, dir is the directory the file was found in and name is the file
// name.
//
// Files placed directly into bucket are keyed by their name without
// extension. Files in nested directories are keyed by the name of the
// directory that contains them, so "8x8/angry/a.png" and
// "8x8/moods/angry/b.png" both belong to "angry".
func VariantKey(bucket, dir, name string) (string, error) {
	rel, err := filepath.Rel(bucket, dir)
	if err != nil {
		return "", err
	}
	if rel == "." || rel == "" {
		return stem(name), nil
	}
	return filepath.Base(rel), nil
}

// stem strips the extension from name. Leading dots don't start an
// extension, so ".png" stays ".png".
func stem(name string) string {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return name[:len(name)-len(ext)]
}

func isPNG(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".png")
}
