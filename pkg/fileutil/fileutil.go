// Package fileutil provides file utilities for report output with tmp+mv
// semantics.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eunmann/sort-eval/pkg/logging"
)

// tmpSuffix marks partially written files.
const tmpSuffix = ".tmp"

// Exists returns true if the file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteAtomic writes outPath through a temp file in the same directory and
// renames it into place once write succeeds. It returns the final size.
// A failed write leaves no file behind at outPath.
func WriteAtomic(outPath string, write func(f *os.File) error) (int64, error) {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(outPath)+".*"+tmpSuffix)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) (int64, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return 0, err
	}

	if err := write(tmp); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync temp file: %w", err))
	}
	info, err := tmp.Stat()
	if err != nil {
		return fail(fmt.Errorf("stat temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("rename temp to final: %w", err)
	}
	return info.Size(), nil
}

// CleanupTmpFiles removes temp files that WriteAtomic left behind for
// outPath, such as those from an interrupted run. Other files in the
// directory are never touched. A missing directory is not an error.
func CleanupTmpFiles(outPath string) error {
	dir := filepath.Dir(outPath)
	prefix := filepath.Base(outPath) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var removed int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, tmpSuffix) {
			continue
		}
		if rmErr := os.Remove(filepath.Join(dir, name)); rmErr == nil {
			removed++
		}
	}

	if removed > 0 {
		logging.L().Debug().Int("files_removed", removed).Str("path", outPath).Msg("cleaned up tmp files")
	}
	return nil
}
