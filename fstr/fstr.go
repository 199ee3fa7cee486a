// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fstr removes the f prefix from Python string literals
// that do not interpolate anything.
//
// Locate parses a file and reports each unneeded f-string as a Candidate.
// Rewrite deletes the prefix of each candidate and undoes the brace
// doubling that only the f prefix required, so that
//
//	f'{{hello}}'
//
// becomes
//
//	'{hello}'
//
// Fix runs both steps.
package fstr

import "context"

// NoColumn is the Column of a Candidate whose position is unknown.
// Rewrite skips such candidates.
const NoColumn = -1

// A Candidate is the location of an f-string literal that contains
// no interpolation. Line and EndLine are 0-based and inclusive.
// Column is the 0-based byte offset in Line where the literal, and
// therefore its prefix, begins.
//
// EndColumn is the byte offset just past the literal on EndLine.
// Zero means the end column is unknown, in which case brace
// unescaping applies to the whole of every spanned line.
type Candidate struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// A Result is the outcome of rewriting one file.
type Result struct {
	Text    string
	Changed bool // Text differs from the input other than in white space
}

// Fix locates the unneeded f-strings in src and rewrites them.
// If src does not parse, Fix returns a *ParseError.
func Fix(ctx context.Context, src []byte) (Result, error) {
	cands, err := Locate(ctx, src)
	if err != nil {
		return Result{Text: string(src)}, err
	}
	return Rewrite(string(src), cands), nil
}
