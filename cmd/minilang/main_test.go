package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdDispatchesRunSubcommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.ml")
	require.NoError(t, os.WriteFile(file, []byte("1 + 2;"), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--no-color", "run", file})
	require.NoError(t, root.Execute())
}

func TestRootCmdAcceptsBarePositionalFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.ml")
	require.NoError(t, os.WriteFile(file, []byte("1 + 2;"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"--no-color", file})
	require.NoError(t, root.Execute())
}

func TestVersionCmdReportsVersion(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
}

func TestRootCmdRejectsTooManyArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"a.ml", "b.ml"})
	assert.Error(t, root.Execute())
}
