// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filelock writes generated documentation files atomically while
// holding an advisory lock on the output directory, so concurrent runs
// sharing a directory never observe or produce half-written files.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file kept in every directory swerr writes into.
// One lock covers all generated files in that directory.
const LockName = ".swerr.lock"

// WriteFile replaces path with data. It creates the parent directories,
// takes the directory lock, stages data in a hidden temp file next to path
// and renames it into place. When any step fails the previous contents of
// path are left untouched and the temp file is removed.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, LockName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", dir, err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
