// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
	"rsc.io/rmfstr/diff"
	"rsc.io/rmfstr/fstr"
)

// maxExit caps the exit status so that large counts do not wrap to 0.
const maxExit = 125

func usage() {
	fmt.Fprintf(os.Stderr, "usage: rmfstr [-diff] [-j n] [path ...]\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("rmfstr: ")
	log.SetFlags(0)

	f, paths, err := parseArgs(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Print(err)
		}
		usage()
	}
	n, err := f.run(context.Background(), paths)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(min(n, maxExit))
}

// A fixer rewrites the Python files named on the command line.
type fixer struct {
	Dir      string // directory relative paths are resolved against
	Stdout   io.Writer
	ShowDiff bool // print diffs instead of writing files
	Jobs     int  // files processed at once
}

func parseArgs(args []string) (*fixer, []string, error) {
	fs := flag.NewFlagSet("rmfstr", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	showDiff := fs.Bool("diff", false, "show diff instead of writing files")
	jobs := fs.Int("j", runtime.NumCPU(), "number of files to process in parallel")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, newErrUsage("%v", err)
	}
	if *jobs < 1 {
		return nil, nil, newErrUsage("-j must be at least 1, have %d", *jobs)
	}
	f := &fixer{
		Dir:      ".",
		Stdout:   os.Stdout,
		ShowDiff: *showDiff,
		Jobs:     *jobs,
	}
	return f, fs.Args(), nil
}

// A result is the outcome of fixing a single file.
type result struct {
	name    string
	changed bool
	diff    []byte
	skip    error // why the file was left alone
}

// run fixes the files named by paths and returns how many it rewrote
// (or, with ShowDiff, would rewrite).
func (f *fixer) run(ctx context.Context, paths []string) (int, error) {
	names, err := f.collect(paths)
	if err != nil {
		return 0, err
	}

	results := make([]result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.Jobs)
	for i, name := range names {
		g.Go(func() error {
			r, err := f.fixFile(ctx, name)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n := 0
	for _, r := range results {
		switch {
		case r.skip != nil:
			fmt.Fprintf(f.Stdout, "Skipping %s: %v\n", r.name, r.skip)
		case r.changed && f.ShowDiff:
			fmt.Fprintf(f.Stdout, "%s", r.diff)
			n++
		case r.changed:
			fmt.Fprintf(f.Stdout, "Rewriting %s\n", r.name)
			n++
		}
	}
	return n, nil
}

func (f *fixer) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.Dir, name)
}

func (f *fixer) fixFile(ctx context.Context, name string) (result, error) {
	r := result{name: name}
	file := f.path(name)
	old, err := os.ReadFile(file)
	if err != nil {
		return r, err
	}

	res, err := fstr.Fix(ctx, old)
	if err != nil {
		var perr *fstr.ParseError
		if errors.As(err, &perr) {
			r.skip = perr
			return r, nil
		}
		return r, xerrors.Errorf("%s: %w", name, err)
	}
	if !res.Changed {
		return r, nil
	}
	r.changed = true

	if f.ShowDiff {
		r.diff, err = diff.Diff("old/"+filepath.ToSlash(name), old, "new/"+filepath.ToSlash(name), []byte(res.Text))
		if err != nil {
			return r, xerrors.Errorf("diffing %s: %w", name, err)
		}
		return r, nil
	}

	info, err := os.Stat(file)
	if err != nil {
		return r, err
	}
	return r, os.WriteFile(file, []byte(res.Text), info.Mode().Perm())
}
