// Package tasks holds the composite refresh task run whenever the
// descriptor or the site tree changes.
package tasks

import (
	"context"
	"fmt"
	"log"

	"github.com/jDTAUS/jdtaus-skin-tools/inject"
	"github.com/jDTAUS/jdtaus-skin-tools/web"
)

type RefreshTask struct {
	injector         *inject.Injector
	refreshModelTask *web.RefreshModelTask
}

func NewRefreshTask(
	injector *inject.Injector,
	refreshModelTask *web.RefreshModelTask,
) *RefreshTask {
	return &RefreshTask{
		injector:         injector,
		refreshModelTask: refreshModelTask,
	}
}

func (t *RefreshTask) OnUpdate(ctx context.Context) error {
	count, err := t.injector.Run(ctx)
	if err != nil {
		return fmt.Errorf("error while injecting language navigation: %w", err)
	}

	log.Printf("language navigation updated in %d page(s)", count)

	if err := t.refreshModelTask.Run(ctx); err != nil {
		return fmt.Errorf("error while refreshing web model: %w", err)
	}

	return nil
}
