// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstr

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"golang.org/x/xerrors"
)

// Locate parses src as Python and returns the unneeded f-strings
// in document order.
//
// Adjacent literals are fused into a single joined string, as Python
// itself does, and reported at the position of the first literal.
// If that literal has no f prefix, Rewrite leaves the candidate alone.
//
// Several candidates may share a line; Rewrite applies them from the
// end of the file backward so that no edit moves a position not yet used.
func Locate(ctx context.Context, src []byte) ([]Candidate, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, xerrors.Errorf("parsing: %w", err)
	}
	root := tree.RootNode()
	if perr := syntaxErrors(root); perr != nil {
		return nil, perr
	}

	l := &locator{src: src}
	l.visit(root)
	return l.cands, nil
}

type locator struct {
	src   []byte
	cands []Candidate
}

func (l *locator) visit(n *sitter.Node) {
	switch n.Type() {
	case "concatenated_string":
		parts := stringParts(n)
		l.joined(n, parts)
		for _, part := range parts {
			l.visitChildren(part)
		}
		return

	case "string":
		l.joined(n, []*sitter.Node{n})
	}
	l.visitChildren(n)
}

func (l *locator) visitChildren(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		l.visit(n.Child(i))
	}
}

// joined records n as a candidate if it is a joined string
// (some part has an f prefix) with nothing to interpolate.
func (l *locator) joined(n *sitter.Node, parts []*sitter.Node) {
	if len(parts) == 0 {
		return
	}
	formatted := false
	for _, part := range parts {
		if hasInterpolation(part) {
			return
		}
		if strings.ContainsAny(l.prefix(part), "fF") {
			formatted = true
		}
	}
	if !formatted {
		return
	}

	start := n.StartPoint()
	end := parts[0].EndPoint()
	l.cands = append(l.cands, Candidate{
		Line:      int(start.Row),
		Column:    int(start.Column),
		EndLine:   int(end.Row),
		EndColumn: int(end.Column),
	})
}

// prefix returns the letters preceding the opening quote of a string node.
func (l *locator) prefix(n *sitter.Node) string {
	start := int(n.StartByte())
	i := start
	for i < len(l.src) && l.src[i] != '\'' && l.src[i] != '"' {
		i++
	}
	return string(l.src[start:i])
}

func stringParts(n *sitter.Node) []*sitter.Node {
	var parts []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "string" {
			parts = append(parts, c)
		}
	}
	return parts
}

func hasInterpolation(n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "interpolation" {
			return true
		}
	}
	return false
}

// syntaxErrors collects the ERROR and MISSING nodes below n, along with
// the Python 2 statements the grammar still accepts. It returns nil
// if there are none.
func syntaxErrors(n *sitter.Node) *ParseError {
	perr := new(ParseError)
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		pt := n.StartPoint()
		pos := Position{Line: int(pt.Row) + 1, Column: int(pt.Column) + 1}
		switch {
		case n.IsMissing():
			perr.List.Add(&Error{pos, "missing " + n.Type()})
			return
		case n.Type() == "ERROR":
			perr.List.Add(&Error{pos, "syntax error"})
			return
		case n.Type() == "print_statement", n.Type() == "exec_statement":
			perr.List.Add(&Error{pos, "Python 2 " + strings.TrimSuffix(n.Type(), "_statement") + " statement"})
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(n)
	if perr.List.Len() == 0 && n.HasError() {
		perr.List.Add(&Error{Position{Line: 1, Column: 1}, "syntax error"})
	}
	if perr.List.Len() == 0 {
		return nil
	}
	return perr
}
