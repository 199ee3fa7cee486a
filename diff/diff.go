// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements a Diff function that compares two inputs
// and formats the result as a unified diff.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged lines shown around each change.
const context = 3

// Diff returns the unified diff of old and new, or nil if they are equal.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	ops := lineOps(string(old), string(new))
	for _, h := range hunks(ops) {
		h.write(&buf, ops)
	}
	return buf.Bytes(), nil
}

// An op is a single line of a diff.
// The line keeps its trailing newline, if it has one.
type op struct {
	kind diffmatchpatch.Operation
	line string
}

// lineOps returns the line-by-line edit script turning a into b.
// Within each run of changes, deletions come before insertions.
func lineOps(a, b string) []op {
	var lines []string
	index := make(map[string]rune)
	encode := func(text string) []rune {
		var rs []rune
		for _, line := range strings.SplitAfter(text, "\n") {
			if line == "" {
				continue
			}
			r, ok := index[line]
			if !ok {
				r = lineRune(len(lines))
				index[line] = r
				lines = append(lines, line)
			}
			rs = append(rs, r)
		}
		return rs
	}
	ra, rb := encode(a), encode(b)

	dmp := diffmatchpatch.New()
	var ops, ins []op
	for _, d := range dmp.DiffMainRunes(ra, rb, false) {
		for _, r := range d.Text {
			o := op{d.Type, lines[runeLine(r)]}
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				ops = append(ops, o)
			case diffmatchpatch.DiffInsert:
				ins = append(ins, o)
			default:
				ops = append(ops, ins...)
				ins = nil
				ops = append(ops, o)
			}
		}
	}
	return append(ops, ins...)
}

// Lines are diffed as one rune each. Diff texts are strings,
// so the surrogate range, which does not survive conversion, is skipped.
const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
)

func lineRune(i int) rune {
	if i >= surrogateMin {
		i += surrogateLen
	}
	return rune(i)
}

func runeLine(r rune) int {
	if r >= surrogateMin+surrogateLen {
		r -= surrogateLen
	}
	return int(r)
}

// A hunk is the range ops[lo:hi], starting at the given
// 1-based line numbers in the old and new text.
type hunk struct {
	lo, hi           int
	oldLine, newLine int
}

func hunks(ops []op) []hunk {
	var hs []hunk
	oldLine, newLine := 1, 1
	var cur *hunk
	for i, o := range ops {
		if o.kind != diffmatchpatch.DiffEqual {
			if cur != nil && i-context <= cur.hi {
				cur.hi = min(i+context+1, len(ops))
			} else {
				lo := max(i-context, 0)
				hs = append(hs, hunk{
					lo:      lo,
					hi:      min(i+context+1, len(ops)),
					oldLine: oldLine - (i - lo),
					newLine: newLine - (i - lo),
				})
				cur = &hs[len(hs)-1]
			}
		}
		if o.kind != diffmatchpatch.DiffInsert {
			oldLine++
		}
		if o.kind != diffmatchpatch.DiffDelete {
			newLine++
		}
	}
	return hs
}

func (h hunk) write(buf *bytes.Buffer, ops []op) {
	nold, nnew := 0, 0
	for _, o := range ops[h.lo:h.hi] {
		if o.kind != diffmatchpatch.DiffInsert {
			nold++
		}
		if o.kind != diffmatchpatch.DiffDelete {
			nnew++
		}
	}
	fmt.Fprintf(buf, "@@ -%s +%s @@\n", span(h.oldLine, nold), span(h.newLine, nnew))
	for _, o := range ops[h.lo:h.hi] {
		switch o.kind {
		case diffmatchpatch.DiffDelete:
			buf.WriteByte('-')
		case diffmatchpatch.DiffInsert:
			buf.WriteByte('+')
		default:
			buf.WriteByte(' ')
		}
		buf.WriteString(o.line)
		if !strings.HasSuffix(o.line, "\n") {
			buf.WriteString("\n\\ No newline at end of file\n")
		}
	}
}

func span(line, n int) string {
	switch n {
	case 0:
		return fmt.Sprintf("%d,0", line-1)
	case 1:
		return fmt.Sprint(line)
	}
	return fmt.Sprintf("%d,%d", line, n)
}
