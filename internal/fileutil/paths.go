package fileutil

import (
	"os"
	"path/filepath"
)

// Resolve joins a slash-separated content path onto root using the host separator.
func Resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// ContentRoot returns the content root for a config file. A relative root is
// taken relative to the directory holding the config file.
func ContentRoot(configPath, root string) string {
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(filepath.Dir(configPath), root)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
