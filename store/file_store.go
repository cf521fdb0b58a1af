// Package store provides the cache backends used by the skin tools:
// a JSON file store for state that survives between runs and an
// in-memory store for state scoped to one run.
package store

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps values as JSON files under
// cacheDir/bucket/<sha1(key)>.json.
type FileStore struct {
	cacheDir string
}

func NewFileStore(cacheDir string) *FileStore {
	return &FileStore{cacheDir: cacheDir}
}

func (fs *FileStore) Read(bucket, key string, buff any) (bool, error) {
	path := fs.keyFilePath(bucket, key)

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("error while reading file %s: %w", path, err)
	}

	if err := json.Unmarshal(b, buff); err != nil {
		return false, fmt.Errorf("error while unmarshalling %s: %w", path, err)
	}

	return true, nil
}

func (fs *FileStore) Write(bucket, key string, v any) error {
	path := fs.keyFilePath(bucket, key)

	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	// Write to a temp file first so readers never see a partial value.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write file %s error: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename file %s error: %w", tmpPath, err)
	}

	return nil
}

func (fs *FileStore) Delete(bucket, key string) error {
	path := fs.keyFilePath(bucket, key)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error while removing file %s: %w", path, err)
	}

	return nil
}

func (fs *FileStore) keyFilePath(bucket, key string) string {
	hash := sha1.Sum([]byte(key))

	return filepath.Join(fs.cacheDir, bucket, hex.EncodeToString(hash[:])+".json")
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check directory: %w", err)
		}

		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}

		return nil
	}

	if !info.IsDir() {
		return fmt.Errorf("%s already exists but is not a directory: %w", path, os.ErrNotExist)
	}

	return nil
}
