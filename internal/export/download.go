package export

import (
	"fmt"
	"os"
	"path/filepath"

	"homeinsight-analyzer/pkg/logger"
)

// Download saves text as a UTF-8 CSV file named filename inside dir. The
// write goes through a temporary file that is removed on every failure
// path, so a crashed export never leaves a partial artifact behind.
func Download(text, filename, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("export: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			logger.GlobalLogger.Errorf("export: failed to remove temp file %s: %v", tmpPath, err)
		}
	}

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("export: write csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("export: close temp file: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return "", fmt.Errorf("export: finalize %s: %w", path, err)
	}

	return path, nil
}
