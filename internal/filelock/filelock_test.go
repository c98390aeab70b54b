// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filelock

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "nested", "errors.md")

	require.NoError(t, WriteFile(path, []byte("# Errors\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Errors\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	require.NoError(t, WriteFile(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "a.txt"), []byte("a")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{LockName, "a.txt"}, names)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteFile_OneLockPerDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"errors.md", "errors.html", "swerr-docs.json"} {
		require.NoError(t, WriteFile(filepath.Join(dir, name), []byte(name)))
	}
	require.NoError(t, WriteFile(filepath.Join(dir, "errors.md"), []byte("again")))

	assert.Equal(t, []string{LockName, "errors.html", "errors.md", "swerr-docs.json"}, dirNames(t, dir))
}

func TestWriteFile_WaitsForDirectoryLock(t *testing.T) {
	dir := t.TempDir()
	held := flock.New(filepath.Join(dir, LockName))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)

	done := make(chan error, 1)
	go func() { done <- WriteFile(filepath.Join(dir, "errors.md"), []byte("x")) }()

	select {
	case err := <-done:
		t.Fatalf("WriteFile finished while the directory was locked: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
	assert.NoFileExists(t, filepath.Join(dir, "errors.md"))

	require.NoError(t, held.Unlock())
	require.NoError(t, <-done)
	assert.FileExists(t, filepath.Join(dir, "errors.md"))
}

func TestWriteFile_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "errors.md")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "child"), []byte("x"), 0o644))

	err := WriteFile(path, []byte("data"))
	require.Error(t, err)

	assert.Equal(t, []string{LockName, "errors.md"}, dirNames(t, dir))
}

func TestWriteFile_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.txt")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, WriteFile(path, []byte(fmt.Sprintf("writer-%d", i))))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `^writer-\d$`, string(data))
}
