// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstr

import (
	"errors"
	"testing"
)

func TestErrorList(t *testing.T) {
	var l ErrorList
	if l.Err() != nil {
		t.Fatalf("empty list: Err() = %v, want nil", l.Err())
	}
	l.Add(nil)
	l.Add(&Error{Position{3, 1}, "syntax error"})
	l.Add(&Error{Position{1, 5}, "missing )"})
	l.Add(&Error{Position{3, 1}, "syntax error"})
	l.Add(errors.New("no position"))

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	const want = "no position\n1:5: missing )\n3:1: syntax error"
	if got := l.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	perr := new(ParseError)
	perr.List.Add(&Error{Position{2, 7}, "syntax error"})
	if got, want := perr.Error(), "2:7: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	perr.List.Add(&Error{Position{1, 1}, "missing identifier"})
	if got, want := perr.Error(), "1:1: missing identifier (and 1 more)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var l *ErrorList
	if !errors.As(perr, &l) || l.Len() != 2 {
		t.Errorf("errors.As(ParseError, *ErrorList) failed")
	}
}
