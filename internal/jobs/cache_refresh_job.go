package jobs

import (
	"context"
	"fmt"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
	"go.uber.org/zap"
)

// CacheRefreshJobName is the name of the cache refresh job
const CacheRefreshJobName = "cache_refresh"

// RowSetSource is the part of the delivery service the refresh job drives.
type RowSetSource interface {
	InvalidateCache(ctx context.Context) error
	Fetch(ctx context.Context, f domain.FilterModel) (*normalize.RowSet, error)
}

// CacheRefreshJob drops every cached row-set and reloads the unfiltered
// dashboard so the first request after a refresh is served from cache.
type CacheRefreshJob struct {
	source RowSetSource
	warm   []domain.FilterModel
	logger *zap.Logger
}

// NewCacheRefreshJob creates a cache refresh job. With no warm filters the
// unfiltered dashboard is warmed.
func NewCacheRefreshJob(source RowSetSource, logger *zap.Logger, warm ...domain.FilterModel) *CacheRefreshJob {
	if len(warm) == 0 {
		warm = []domain.FilterModel{{}}
	}
	return &CacheRefreshJob{source: source, warm: warm, logger: logger}
}

// Name implements Job
func (j *CacheRefreshJob) Name() string {
	return CacheRefreshJobName
}

// Run implements Job. A failed warm-up leaves the cache empty; the next
// request queries the view.
func (j *CacheRefreshJob) Run(ctx context.Context) error {
	if err := j.source.InvalidateCache(ctx); err != nil {
		return err
	}

	rows := 0
	for _, f := range j.warm {
		rs, err := j.source.Fetch(ctx, f)
		if err != nil {
			return fmt.Errorf("failed to warm row-set cache: %w", err)
		}
		rows += rs.Len()
	}

	j.logger.Info("row-set cache refreshed",
		zap.Int("filters", len(j.warm)),
		zap.Int("rows", rows))
	return nil
}
