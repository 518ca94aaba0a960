package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// FileRepo keeps every key in its own file, <dir>/<key>.json.
// Writes go to a temp file in the same directory and are renamed into place.
type FileRepo struct {
	fs  afero.Fs
	dir string
}

func NewFileRepo(fs afero.Fs, dir string) *FileRepo {
	return &FileRepo{fs: fs, dir: dir}
}

// OpenFile returns a FileRepo on the OS filesystem rooted at dir, creating it if needed.
func OpenFile(dir string) (*FileRepo, error) {
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return NewFileRepo(fs, dir), nil
}

func (r *FileRepo) Get(ctx context.Context, key string) (string, error) {
	path, err := r.path(key)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(r.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (r *FileRepo) Set(ctx context.Context, key, value string) error {
	path, err := r.path(key)
	if err != nil {
		return err
	}
	if err := r.fs.MkdirAll(r.dir, 0o700); err != nil {
		return fmt.Errorf("creating data directory %s: %w", r.dir, err)
	}

	tmp, err := afero.TempFile(r.fs, r.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		r.fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		r.fs.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := r.fs.Rename(tmpName, path); err != nil {
		r.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func (r *FileRepo) Close() error {
	return nil
}

func (r *FileRepo) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}
