package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is used for the cache directory and tracer name.
	AppName = "nix-bisect"

	// ResultsFileName is the name of the persisted outcome map.
	ResultsFileName = "build-results.json"

	// LogsDirName is the name of the failure log directory inside the cache root.
	LogsDirName = "logs"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = ".nix-bisect.yaml"

	// CacheDirEnv overrides the cache root.
	CacheDirEnv = "NIX_BISECT_CACHE_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the cache root directory.
// NIX_BISECT_CACHE_DIR wins over the user cache directory.
func DefaultCacheRoot() string {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return dir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(os.TempDir(), AppName)
}
