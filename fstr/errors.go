// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstr

import (
	"fmt"
	"sort"
	"strings"
)

// A Position is a location in Python source text.
// Line and Column are 1-based; Column counts bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// An Error is a syntax error at a particular source position.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// ErrorList is a set of Errors. It is also an error itself. The zero value is
// an empty list, ready to use.
type ErrorList struct {
	errs []*Error
	set  map[Error]bool
}

// Add adds an error to l. If err is an *Error it keeps its position;
// an *ErrorList is merged into l. Any other error is added with no
// position information. Duplicates (same position and message) are
// suppressed.
func (l *ErrorList) Add(err error) {
	var e *Error

	switch err := err.(type) {
	case nil:
		return

	case *ErrorList:
		for _, e := range err.errs {
			l.Add(e)
		}
		return

	case *Error:
		e = err

	default:
		e = &Error{Position{}, err.Error()}
	}

	k := *e
	if !l.set[k] {
		if l.set == nil {
			l.set = make(map[Error]bool)
		}
		l.errs = append(l.errs, e)
		l.set[k] = true
	}
}

// Len returns the number of errors in l.
func (l *ErrorList) Len() int { return len(l.errs) }

func (l *ErrorList) sort() {
	sort.SliceStable(l.errs, func(i, j int) bool {
		p1, p2 := l.errs[i].Pos, l.errs[j].Pos
		if p1.Line != p2.Line {
			return p1.Line < p2.Line
		}
		return p1.Column < p2.Column
	})
}

// First returns the earliest error in l, or nil if l is empty.
func (l *ErrorList) First() *Error {
	if len(l.errs) == 0 {
		return nil
	}
	l.sort()
	return l.errs[0]
}

// Error sorts and returns a "\n" separated list of formatted errors.
// The result does not end in "\n".
func (l *ErrorList) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}
	l.sort()
	buf := new(strings.Builder)
	for _, e := range l.errs {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(e.Error())
	}
	return buf.String()
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

// A ParseError reports that source text is not valid Python.
// Its message is a single line naming the first problem.
type ParseError struct {
	List ErrorList
}

func (e *ParseError) Error() string {
	first := e.List.First()
	if first == nil {
		return "syntax error"
	}
	msg := first.Error()
	if n := e.List.Len() - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// Unwrap returns the underlying error list.
func (e *ParseError) Unwrap() error {
	return e.List.Err()
}
