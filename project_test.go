package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteProject(dir, Project{Name: "wibble"}))

	p, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "wibble", p.Name)
	assert.Equal(t, "build/ir", p.irDir())
	assert.Equal(t, "build/rust", p.outDir())
}

func TestWriteProjectRefusesToClobber(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteProject(dir, Project{Name: "wibble"}))
	err := WriteProject(dir, Project{Name: "wobble"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoadProjectOverrides(t *testing.T) {
	dir := t.TempDir()
	manifest := "name: app\nir_dir: artifacts\nout_dir: gen\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestName), []byte(manifest), 0644))

	p, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "artifacts", p.irDir())
	assert.Equal(t, "gen", p.outDir())
}

func TestLoadProjectRequiresName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestName), []byte("ir_dir: x\n"), 0644))
	_, err := LoadProject(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestWithOutputLockCreatesDirAndRuns(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	ran := false
	err := withOutputLock(outDir, func() error {
		ran = true
		_, statErr := os.Stat(outDir)
		return statErr
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWriteCrateFile(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, writeCrateFile(outDir, "lib.rs", "pub mod prelude;\n"))
	data, err := os.ReadFile(filepath.Join(outDir, "src", "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub mod prelude;\n", string(data))
}
