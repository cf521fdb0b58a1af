package store_test

import (
	"testing"

	"github.com/jDTAUS/jdtaus-skin-tools/store"
)

func TestMemStore(t *testing.T) {
	storage := store.NewMemStore()

	var buff testData
	exists, err := storage.Read("bucket", "key", &buff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected empty store")
	}

	if err := storage.Write("bucket", "key", testData{"Text"}); err != nil {
		t.Fatal(err)
	}

	exists, err = storage.Read("bucket", "key", &buff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || buff.Value != "Text" {
		t.Errorf("unexpected result: %v, %+v", exists, buff)
	}

	if err := storage.Delete("bucket", "key"); err != nil {
		t.Fatal(err)
	}

	exists, err = storage.Read("bucket", "key", &testData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected key to be gone")
	}
}

func TestMemStore_BucketsAreSeparate(t *testing.T) {
	storage := store.NewMemStore()

	if err := storage.Write("bucket1", "key", testData{"Text"}); err != nil {
		t.Fatal(err)
	}

	var buff testData
	exists, err := storage.Read("bucket2", "key", &buff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected key to be absent from bucket2")
	}
}
