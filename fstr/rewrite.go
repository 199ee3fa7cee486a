// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstr

import (
	"sort"
	"strings"
	"unicode"
)

// Rewrite removes the f prefix of each candidate in src
// and collapses the doubled braces inside the literal.
//
// A candidate is skipped, silently, when its column is NoColumn
// or out of range, or when the byte it names (after an optional r
// prefix) is not an f. Skipped candidates leave src unmodified,
// so Changed reports only real edits.
func Rewrite(src string, cands []Candidate) Result {
	lines := strings.Split(src, "\n")

	order := make([]Candidate, len(cands))
	copy(order, cands)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Line != order[j].Line {
			return order[i].Line > order[j].Line
		}
		return order[i].Column > order[j].Column
	})
	for _, c := range order {
		apply(lines, c)
	}

	text := strings.Join(lines, "\n")
	if strings.HasSuffix(src, "\n") && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if stripSpace(text) == stripSpace(src) {
		return Result{Text: src}
	}
	return Result{Text: text, Changed: true}
}

// apply deletes the prefix of c from lines, if it is there.
func apply(lines []string, c Candidate) {
	if c.Column < 0 || c.Line < 0 || c.Line >= len(lines) {
		return
	}
	line := lines[c.Line]
	col := c.Column
	if col < len(line) && isRaw(line[col]) {
		// rf'' or fr'': the f is second either way.
		col++
	}
	if col >= len(line) || !isFormat(line[col]) {
		return
	}
	lines[c.Line] = line[:col] + line[col+1:]

	end := c.EndLine
	if end < c.Line {
		end = c.Line
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	for i := c.Line; i <= end; i++ {
		s := lines[i]
		lo, hi := 0, len(s)
		if c.EndColumn > 0 {
			if i == c.Line {
				lo = c.Column
			}
			if i == end {
				hi = c.EndColumn
				if i == c.Line {
					hi--
				}
			}
		}
		if hi > len(s) {
			hi = len(s)
		}
		if lo > hi {
			continue
		}
		lines[i] = s[:lo] + unescapeBraces(s[lo:hi]) + s[hi:]
	}
}

var braceUnescaper = strings.NewReplacer("{{", "{", "}}", "}")

func unescapeBraces(s string) string {
	return braceUnescaper.Replace(s)
}

func isRaw(c byte) bool    { return c == 'r' || c == 'R' }
func isFormat(c byte) bool { return c == 'f' || c == 'F' }

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
