// Package atomicfile implements jct's atomic write (spec.md §4.6): write to
// a sibling temp file, flush and close, then rename into place, so a
// destination document is never observed half-written. Grounded on
// eykd-prosemark-go's writeFileAtomicImpl (temp-in-same-dir, write, close,
// rename, unlink-on-any-failure); extended here with the cross-device
// rename fallback spec.md calls for, which the teacher source does not need
// because it never writes across a mount boundary.
package atomicfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// Write atomically replaces the file at path with data. mode is applied to
// the temp file before the rename, so the final file's permissions are
// never briefly more permissive than requested.
func Write(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jct-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		if !isCrossDevice(err) {
			os.Remove(tmpName)
			return fmt.Errorf("renaming temp file: %w", err)
		}
		if err := copyAndUnlink(tmpName, path, mode); err != nil {
			os.Remove(tmpName)
			return err
		}
	}
	return nil
}

// copyAndUnlink is the cross-device fallback: stream-copy tmp to dst, then
// remove tmp. It is not itself atomic with respect to a reader racing the
// copy, but it is the best available substitute for rename(2) across
// filesystem boundaries — the same tradeoff every "mv across devices"
// implementation makes.
func copyAndUnlink(tmpName, dst string, mode os.FileMode) error {
	src, err := os.Open(tmpName)
	if err != nil {
		return fmt.Errorf("reopening temp file for cross-device copy: %w", err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("opening destination for cross-device copy: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copying to destination: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing destination: %w", err)
	}
	if err := os.Remove(tmpName); err != nil {
		return fmt.Errorf("removing temp file after cross-device copy: %w", err)
	}
	return nil
}

// isCrossDevice reports whether err is the EXDEV failure os.Rename returns
// when src and dst live on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
