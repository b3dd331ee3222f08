// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer persists the serialized deck. Writes go to a temp file
// in the destination directory and are renamed into place, so a crash or
// abort never leaves a partial file at the output path.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/deckgen/pkg/types"
)

// WriteFile atomically writes data to path. Any failure is wrapped with
// types.ErrOutput and leaves the destination untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", types.ErrOutput, dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %v", types.ErrOutput, tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: syncing %s: %v", types.ErrOutput, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing %s: %v", types.ErrOutput, tmpPath, err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: setting permissions on %s: %v", types.ErrOutput, tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming into %s: %v", types.ErrOutput, path, err)
	}
	return nil
}
