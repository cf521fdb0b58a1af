package sitemon

import (
	"context"

	"github.com/jDTAUS/jdtaus-skin-tools/navcache"
)

// CacheStore is an interface used to decouple this package from the
// concrete store implementations.
type CacheStore interface {
	Read(bucket, key string, buff any) (bool, error)
	Write(bucket, key string, data any) error
	Delete(bucket, key string) error
}

const (
	bucketLastDescriptorID = "sitemon-descriptor-last-id"
	bucketLastSiteID       = "sitemon-site-last-id"
	singleKey              = ""
)

// CacheStorage keeps the monitor fingerprints in a cache store, so a
// restarted process does not re-run tasks for an unchanged site.
type CacheStorage struct {
	store CacheStore
}

func NewCacheStorage(store CacheStore) *CacheStorage {
	return &CacheStorage{store: store}
}

func (s *CacheStorage) ReadLastDescriptorID() (string, error) {
	return s.read(bucketLastDescriptorID)
}

func (s *CacheStorage) WriteLastDescriptorID(value string) error {
	return navcache.Put(s.store, bucketLastDescriptorID, singleKey, value)
}

func (s *CacheStorage) ReadLastSiteID() (string, error) {
	return s.read(bucketLastSiteID)
}

func (s *CacheStorage) WriteLastSiteID(value string) error {
	return navcache.Put(s.store, bucketLastSiteID, singleKey, value)
}

func (s *CacheStorage) Reset() error {
	if err := s.store.Delete(bucketLastDescriptorID, singleKey); err != nil {
		return err
	}

	return s.store.Delete(bucketLastSiteID, singleKey)
}

func (s *CacheStorage) read(bucket string) (string, error) {
	return navcache.Get(
		context.Background(), // this context is not used
		s.store,
		bucket,
		singleKey,
		nil,
		func(_ context.Context) (string, error) {
			return "", nil
		},
	)
}
