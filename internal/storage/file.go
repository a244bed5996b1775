package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

const defaultFileMode os.FileMode = 0o644

// FileConfig configures a file-backed store
type FileConfig struct {
	Path string
}

// Validate ensures the path is set
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

type fileStore struct {
	path string
}

// NewFileStore creates a store persisting the document at cfg.Path. The
// parent directory is created on first write.
func NewFileStore(cfg *FileConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid file store config")
	}
	return &fileStore{path: filepath.Clean(cfg.Path)}, nil
}

func (s *fileStore) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "read canceled")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", s.path)
	}
	return data, nil
}

// Write stages the document in a temp file next to the target, syncs it and
// renames it into place.
func (s *fileStore) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "write canceled")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()         // nolint:errcheck // already failing
			_ = os.Remove(tmpName) // nolint:errcheck // best effort
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Chmod(defaultFileMode); err != nil {
		return errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", s.path)
	}
	committed = true
	return nil
}
