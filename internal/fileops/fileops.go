package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Attempt cap for conflict renaming. Numeric suffixes make exhaustion
// practically unreachable, but the loop must still be bounded.
const maxCollisionAttempts = 10000

// ResolveCollision finds an unused sibling name for path by appending _1,
// _2, ... — before the extension for files, after the name for
// directories. The returned path did not exist at the time of the check.
func ResolveCollision(path string, isDir bool) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	ext := ""
	stem := base
	if !isDir {
		ext = filepath.Ext(base)
		stem = strings.TrimSuffix(base, ext)
	}

	for counter := 1; counter <= maxCollisionAttempts; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("resolve name for %s: %w", path, ErrCollisionExhausted)
}

// CopyFileOrDir copies a file or directory subtree from src to dst.
func CopyFileOrDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dst)
	}
	return copyFile(src, dst)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, info.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// Move renames src to dst, falling back to copy+delete when rename fails
// (cross-device). Atomicity is only guaranteed for the rename path.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFileOrDir(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// Remove deletes a single file or a directory subtree.
func Remove(path string, isDir bool) error {
	if isDir {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
