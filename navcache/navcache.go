// Package navcache memoizes values derived from a site descriptor, such
// as the parsed navigation configuration, keyed by descriptor identity.
// The cache is read-only from the renderer's point of view: a changed
// descriptor produces a new fingerprint and therefore a new entry.
package navcache

//go:generate mockgen -typed -source=navcache.go -destination=./internal/mocks/mocks.go -package=mocks

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
)

type Store interface {
	Read(bucket, key string, buff any) (bool, error)
	Write(bucket, key string, data any) error
}

// Get returns a value from the store if it exists, or calls the block to
// compute and store it.
func Get[T any](
	ctx context.Context,
	store Store,
	bucket string,
	key string,
	isInvalid func(T) bool,
	block func(context.Context) (T, error),
) (T, error) {
	var buff T

	exists, err := store.Read(bucket, key, &buff)
	if err != nil {
		var zero T

		return zero, err
	}

	if exists {
		if isInvalid == nil || !isInvalid(buff) {
			return buff, nil
		}
	}

	result, err := block(ctx)
	if err != nil {
		return result, err
	}

	if err := Put(store, bucket, key, result); err != nil {
		var zero T

		return zero, err
	}

	return result, nil
}

// Put stores a value without consulting the cache first.
func Put(store Store, bucket, key string, value any) error {
	return store.Write(bucket, key, value)
}

// Fingerprint returns an identity key for the descriptor file at path.
// The key changes whenever the descriptor content changes.
func Fingerprint(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error while reading descriptor %s: %w", path, err)
	}

	hash := sha1.Sum(b)

	return fmt.Sprintf("%s-%d", hex.EncodeToString(hash[:]), len(b)), nil
}
