// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package manifest

import (
	"os"
	"path/filepath"
)

// subdirs returns names of the immediate subdirectories of dir in lexical
// order.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// walkFiles calls fn for every file under root. Files of a directory are
// visited before its subdirectories, both in lexical order.
func walkFiles(root string, fn func(dir, name string) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
			continue
		}
		if err := fn(root, e.Name()); err != nil {
			return err
		}
	}

	for _, d := range dirs {
		if err := walkFiles(filepath.Join(root, d), fn); err != nil {
			return err
		}
	}
	return nil
}
