// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
)

// sourceExt is the extension of files found by walking a directory.
const sourceExt = ".py"

// collect expands paths into the list of files to fix.
// A directory contributes every *.py file below it, in lexical order;
// a file is used as is. Each file appears once.
func (f *fixer) collect(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		key := filepath.Clean(f.path(name))
		if !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(f.path(p))
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(f.path(p), func(file string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !d.Type().IsRegular() || filepath.Ext(file) != sourceExt {
				return nil
			}
			rel, err := filepath.Rel(f.path(p), file)
			if err != nil {
				return err
			}
			add(filepath.Join(p, rel))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return names, nil
}
