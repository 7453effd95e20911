// Package bundlefile writes certificate bundles to disk for consumers that
// configure their TLS stack with a file path instead of in-memory bytes.
package bundlefile

import (
	"context"
	"os"

	"github.com/google/renameio/v2"

	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
)

// Write writes data to path atomically, holding an advisory lock so
// concurrent exports to the same path do not interleave. The file appears
// either with its full content or not at all.
//
// If overwrite is false and path already exists, Write fails without
// touching the file.
func Write(ctx context.Context, path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return &anchorerrors.AnchorError{
				Op:   "export bundle",
				Path: path,
				Err:  anchorerrors.ErrFileExists,
			}
		}
	}

	lock := NewFileLock(path)
	if err := lock.Lock(ctx); err != nil {
		return &anchorerrors.AnchorError{
			Op:   "lock bundle file",
			Path: path,
			Err:  err,
		}
	}
	defer func() { _ = lock.Unlock() }()

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return &anchorerrors.AnchorError{
			Op:   "write bundle file",
			Path: path,
			Err:  err,
		}
	}

	return nil
}
