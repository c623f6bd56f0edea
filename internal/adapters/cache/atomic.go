package cache

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeFileAtomic writes data to a temp file in the target directory and renames it into place.
func writeFileAtomic(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	tmp, err := afero.TempFile(fsys, dir, ".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	defer func() { _ = fsys.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := fsys.Chmod(tmpPath, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set file mode")
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}
