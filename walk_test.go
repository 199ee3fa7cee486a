// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		targ := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(targ), 0777))
		require.NoError(t, os.WriteFile(targ, []byte(data), 0666))
	}
}

func newTestFixer(dir string) (*fixer, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &fixer{Dir: dir, Stdout: &stdout, Jobs: 2}, &stdout
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"top.py":           "",
		"src/b.py":         "",
		"src/a.py":         "",
		"src/readme.md":    "",
		"src/deep/c.py":    "",
		"src/deep/c.pyc":   "",
		"other/not_py.txt": "",
	})

	f, _ := newTestFixer(dir)
	names, err := f.collect([]string{"src", "top.py", "src/a.py", "other"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "a.py"),
		filepath.Join("src", "b.py"),
		filepath.Join("src", "deep", "c.py"),
		"top.py",
	}, names)
}

func TestCollectMissing(t *testing.T) {
	f, _ := newTestFixer(t.TempDir())
	_, err := f.collect([]string{"nope.py"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRunSkipsUnparseable(t *testing.T) {
	dir := t.TempDir()
	const bad = "def f(:\n    return f'x'\n"
	writeFiles(t, dir, map[string]string{
		"bad.py":  bad,
		"good.py": "x = f'y'\n",
	})

	f, stdout := newTestFixer(dir)
	n, err := f.run(context.Background(), []string{"."})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Skipping bad.py: "), "have %q", lines[0])
	assert.Equal(t, "Rewriting good.py", lines[1])

	data, err := os.ReadFile(filepath.Join(dir, "bad.py"))
	require.NoError(t, err)
	assert.Equal(t, bad, string(data))
	data, err = os.ReadFile(filepath.Join(dir, "good.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 'y'\n", string(data))
}

func TestRunPreservesMode(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "tool.py")
	require.NoError(t, os.WriteFile(name, []byte("print(f'hi')\n"), 0755))
	require.NoError(t, os.Chmod(name, 0755))

	f, _ := newTestFixer(dir)
	n, err := f.run(context.Background(), []string{"tool.py"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0755), info.Mode().Perm())
}

func TestRunMissingFile(t *testing.T) {
	f, stdout := newTestFixer(t.TempDir())
	_, err := f.run(context.Background(), []string{"missing.py"})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, stdout.String())
}

func TestRunTwice(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.py": "a = f'{{x}}'\nb = fr'\\d'\n",
		"b.py": "c = f'{c}'\n",
	})

	f, _ := newTestFixer(dir)
	n, err := f.run(context.Background(), []string{"."})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, stdout := newTestFixer(dir)
	n, err = f.run(context.Background(), []string{"."})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, stdout.String())
}
