// Package sitemon watches the site descriptor and the rendered site
// tree, running tasks when either changes.
package sitemon

//go:generate mockgen -typed -source=sitemon.go -destination=./internal/mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jDTAUS/jdtaus-skin-tools/navcache"
)

type Task interface {
	OnUpdate(ctx context.Context) error
}

// Storage keeps the fingerprints seen by the last successful check.
type Storage interface {
	ReadLastDescriptorID() (string, error)
	WriteLastDescriptorID(value string) error
	ReadLastSiteID() (string, error)
	WriteLastSiteID(value string) error
	// Reset drops the stored fingerprints so the next check reports
	// an update.
	Reset() error
}

type Monitor struct {
	descriptorPath string
	siteDir        string
	storage        Storage
}

func NewMonitor(descriptorPath, siteDir string, storage Storage) *Monitor {
	return &Monitor{
		descriptorPath: descriptorPath,
		siteDir:        siteDir,
		storage:        storage,
	}
}

// StartIntervalCheck runs Check repeatedly with the given delay between
// runs until the context is cancelled. Check errors are logged, not
// fatal: scanning is local I/O and the next run starts from a clean
// slate.
func (mon *Monitor) StartIntervalCheck(ctx context.Context, delay time.Duration, task Task) error {
	for {
		if err := mon.Check(ctx, task); err != nil {
			log.Printf("error while checking site for updates: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// Check fingerprints the descriptor and the site tree and runs the task
// when either changed since the last successful check.
func (mon *Monitor) Check(ctx context.Context, task Task) error {
	descriptorUpdated, err := mon.isDescriptorUpdated()
	if err != nil {
		return fmt.Errorf("error while checking if the site descriptor has been updated: %w", err)
	}

	siteUpdated, err := mon.isSiteUpdated()
	if err != nil {
		return fmt.Errorf("error while checking if the site tree has been updated: %w", err)
	}

	if !descriptorUpdated && !siteUpdated {
		return nil
	}

	if err := task.OnUpdate(ctx); err != nil {
		// Drop the recorded fingerprints so the next check retries.
		if resetErr := mon.storage.Reset(); resetErr != nil {
			log.Printf("error while resetting monitor storage: %v", resetErr)
		}

		return fmt.Errorf("error while performing on-update task: %w", err)
	}

	return nil
}

func (mon *Monitor) isDescriptorUpdated() (bool, error) {
	lastID, err := mon.storage.ReadLastDescriptorID()
	if err != nil {
		return false, err
	}

	currentID, err := navcache.Fingerprint(mon.descriptorPath)
	if err != nil {
		return false, err
	}

	isUpdated := lastID == "" || lastID != currentID

	if isUpdated {
		if err := mon.storage.WriteLastDescriptorID(currentID); err != nil {
			return false, err
		}
	}

	return isUpdated, nil
}

func (mon *Monitor) isSiteUpdated() (bool, error) {
	lastID, err := mon.storage.ReadLastSiteID()
	if err != nil {
		return false, err
	}

	currentID, err := SiteFingerprint(mon.siteDir)
	if err != nil {
		return false, err
	}

	isUpdated := lastID == "" || lastID != currentID

	if isUpdated {
		if err := mon.storage.WriteLastSiteID(currentID); err != nil {
			return false, err
		}
	}

	return isUpdated, nil
}

// SiteFingerprint returns an identity key for a site tree: file count,
// total size and newest modification time. A missing directory has a
// fixed fingerprint, so creating it counts as a change.
func SiteFingerprint(dir string) (string, error) {
	var count int

	var size, newest int64

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		count++
		size += info.Size()
		if modTime := info.ModTime().UnixNano(); modTime > newest {
			newest = modTime
		}

		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return "absent", nil
		}

		return "", fmt.Errorf("error while walking site directory %s: %w", dir, err)
	}

	return fmt.Sprintf("%d-%d-%d", count, size, newest), nil
}
