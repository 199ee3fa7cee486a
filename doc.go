// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rmfstr removes unneeded f prefixes from Python string literals.
//
// Usage:
//
//	rmfstr [-diff] [-j n] [path ...]
//
// Each path names a file or a directory. Directories are searched
// recursively for *.py files; other files in them are ignored.
//
// An f-string that interpolates nothing is rewritten as a plain string,
// keeping any r prefix, and the doubled braces it needed become single:
//
//	f'hello'      ->  'hello'
//	fr'\d{{2}}'   ->  r'\d{2}'
//
// By default, rmfstr overwrites each rewritten file and prints
//
//	Rewriting path/to/file.py
//
// The -diff flag causes rmfstr to print a diff of the intended changes instead.
// Files that do not parse are left alone and reported as
//
//	Skipping path/to/file.py: 3:9: syntax error
//
// The -j flag sets how many files are processed at once.
//
// The exit status is the number of files rewritten (at most 125),
// so a zero exit means there was nothing to fix. Errors reading or
// writing files stop rmfstr with exit status 1.
package main
