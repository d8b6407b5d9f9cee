//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 /data/data/{package}/saves
// gdata 在 Android 上不会预先创建该目录
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}
	pkg := string(bytes.Trim(bytes.ReplaceAll(cmdline, []byte{0}, nil), "\n"))
	if pkg == "" {
		return fmt.Errorf("failed to detect Android package: empty /proc/self/cmdline")
	}

	savesDir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}
	return nil
}
