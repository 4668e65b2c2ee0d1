package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/storage"
	"github.com/revelaction/ertrie/storage/filesystem"
	"github.com/revelaction/ertrie/storage/sqlite/zombiezen"
)

// isDatabase reports whether path names a sqlite database: an existing
// file, or a new path with a database extension.
func isDatabase(path string) bool {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir()
	}

	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func NewExampleRepository(p *Pool, path string, l *zap.SugaredLogger) (storage.ExampleRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "example repository %s", path),
			"set --examples or storage.examples in the config file")
	}

	if !isDatabase(path) {
		return filesystem.NewExampleStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewExampleStore(pool, l), nil
}

// NewModelRepository returns the model store at path, creating the
// directory or the database when missing.
func NewModelRepository(p *Pool, path string, l *zap.SugaredLogger) (storage.ModelRepository, error) {
	if isDatabase(path) {
		pool, err := p.Open(path)
		if err != nil {
			return nil, err
		}
		return zombiezen.NewModelStore(pool, l), nil
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "model repository %s", path)
	}
	return filesystem.NewModelStore(path), nil
}
