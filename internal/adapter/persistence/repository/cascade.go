package repository

import (
	"context"
	"sync"

	"assistencia_tecnica/internal/domain/docstore"
	"assistencia_tecnica/internal/infrastructure/metrics"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultCascadeParallelism bounds the concurrent child deletes of one
// cascade step.
const DefaultCascadeParallelism = 8

// cascade removes the children of a parent document before the parent
// itself is deleted.
type cascade struct {
	parent      collection
	parallelism int
}

// deleteChildren deletes every document of child whose field equals
// parentID. All deletes settle before it returns. A failed listing aborts
// the cascade; failed deletes are logged and counted, and the caller moves
// on to the next step.
func (c cascade) deleteChildren(ctx context.Context, child collection, field, parentID string) error {
	docs, err := child.listWhere(ctx, field, parentID, "", docstore.Asc)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	if c.parallelism > 0 {
		g.SetLimit(c.parallelism)
	}
	for _, d := range docs {
		id := d.ID
		g.Go(func() error {
			if err := child.delete(ctx, id); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		failures := multierr.Errors(errs)
		c.parent.logger.Warn("cascade left orphaned children",
			zap.String("parent_id", parentID),
			zap.String("child_collection", child.name),
			zap.Int("failed", len(failures)),
			zap.Int("total", len(docs)),
			zap.NamedError("first_error", failures[0]),
		)
		metrics.CascadeChildFailures(c.parent.name, child.name, len(failures))
	}
	return nil
}
