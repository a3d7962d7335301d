package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/prostech/outbound-api/internal/analysis"
	"github.com/prostech/outbound-api/internal/cache"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/metrics"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/pivot"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/prostech/outbound-api/internal/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// filterOptionConcurrency bounds the DISTINCT queries issued at once
const filterOptionConcurrency = 4

// Executor runs queries against the delivery view.
type Executor interface {
	Query(ctx context.Context, q query.Query) (*normalize.RawRows, error)
	QueryText(ctx context.Context, text string, args ...interface{}) (*normalize.RawRows, error)
}

// DeliveryService runs the reporting pipeline: query, normalize, then
// aggregate or analyze. Row-sets are cached per filter signature.
type DeliveryService struct {
	view       Executor
	builder    *query.Builder
	normalizer *normalize.Normalizer
	cache      cache.RowSetCache
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewDeliveryService creates a new DeliveryService instance
func NewDeliveryService(
	view Executor,
	builder *query.Builder,
	normalizer *normalize.Normalizer,
	rowCache cache.RowSetCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DeliveryService {
	if rowCache == nil {
		rowCache = cache.Nop{}
	}
	return &DeliveryService{
		view:       view,
		builder:    builder,
		normalizer: normalizer,
		cache:      rowCache,
		metrics:    m,
		logger:     logger,
	}
}

// Today returns the calendar date the pipeline classifies against
func (s *DeliveryService) Today() time.Time {
	return s.normalizer.Today()
}

// Fetch returns the normalized row-set for f, reading through the cache.
// Cache failures are logged and the view is queried instead.
func (s *DeliveryService) Fetch(ctx context.Context, f domain.FilterModel) (*normalize.RowSet, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	key := f.Signature()

	rs, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.CacheError()
		s.logger.Warn("row-set cache lookup failed", zap.Error(err))
	case ok:
		s.metrics.CacheHit()
		return rs, nil
	default:
		s.metrics.CacheMiss()
	}

	rs, err = s.fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, rs); err != nil {
		s.logger.Warn("failed to cache row-set", zap.Error(err))
	}
	return rs, nil
}

// FetchFresh queries the view, bypassing the cache.
func (s *DeliveryService) FetchFresh(ctx context.Context, f domain.FilterModel) (*normalize.RowSet, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, f)
}

func (s *DeliveryService) fetch(ctx context.Context, f domain.FilterModel) (*normalize.RowSet, error) {
	q := s.builder.Build(f)

	start := time.Now()
	raw, err := s.view.Query(ctx, q)
	s.metrics.ObserveQuery("deliveries", start, err)
	if err != nil {
		s.logger.Error("delivery query failed",
			zap.Error(err),
			zap.Strings("clauses", q.Clauses),
		)
		return nil, err
	}

	rs, err := s.normalizer.Normalize(*raw)
	if err != nil {
		s.logger.Error("failed to normalize delivery rows", zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveRows(rs.Len())

	s.logger.Debug("delivery rows fetched",
		zap.Int("rows", rs.Len()),
		zap.Int("clauses", len(q.Clauses)),
		zap.Duration("duration", time.Since(start)),
	)
	return rs, nil
}

// InvalidateCache drops every cached row-set.
func (s *DeliveryService) InvalidateCache(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate row-set cache: %w", err)
	}
	s.logger.Info("row-set cache invalidated")
	return nil
}

// noticesFor lists the optional-column notices of a row-set
func noticesFor(rs *normalize.RowSet) []domain.DataQualityNotice {
	if rs.Empty() {
		return nil
	}
	return analysis.Notices(rs.Schema)
}

// Deliveries returns the line-level rows for f. An empty result carries the
// no-data message instead of an error.
func (s *DeliveryService) Deliveries(ctx context.Context, f domain.FilterModel) (*domain.DeliveriesResponse, error) {
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &domain.DeliveriesResponse{
		Count:   rs.Len(),
		Rows:    rs.Lines,
		Notices: noticesFor(rs),
	}
	if resp.Rows == nil {
		resp.Rows = []domain.DeliveryLine{}
	}
	if rs.Empty() {
		resp.Message = domain.ErrNoData.Error()
	}
	return resp, nil
}

// Metrics computes the KPI tiles for f.
func (s *DeliveryService) Metrics(ctx context.Context, f domain.FilterModel) (*analysis.Metrics, error) {
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	m := analysis.ComputeMetrics(rs.Lines)
	return &m, nil
}

// Pivot aggregates f's lines into period buckets.
func (s *DeliveryService) Pivot(ctx context.Context, f domain.FilterModel, period domain.Period) (*pivot.Table, error) {
	if period != "" && !period.Valid() {
		return nil, fmt.Errorf("%w: period %q", ErrInvalidInput, period)
	}
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return pivot.Build(rs.Lines, period), nil
}

// Wide builds the period-by-group matrix for f.
func (s *DeliveryService) Wide(ctx context.Context, f domain.FilterModel, opts pivot.WideOptions) (*pivot.WideTable, error) {
	if opts.Period != "" && !opts.Period.Valid() {
		return nil, fmt.Errorf("%w: period %q", ErrInvalidInput, opts.Period)
	}
	if opts.GroupBy != "" && !opts.GroupBy.Valid() {
		return nil, fmt.Errorf("%w: group_by %q", ErrInvalidInput, opts.GroupBy)
	}
	if opts.Measure != "" && !opts.Measure.Valid() {
		return nil, fmt.Errorf("%w: measure %q", ErrInvalidInput, opts.Measure)
	}
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return pivot.Wide(rs.Lines, opts), nil
}

// Products runs the product-gap analysis for f.
func (s *DeliveryService) Products(ctx context.Context, f domain.FilterModel) (*analysis.ProductAnalysis, error) {
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return analysis.AnalyzeProducts(rs), nil
}

// TopProducts ranks the products of f with the largest shortage.
func (s *DeliveryService) TopProducts(ctx context.Context, f domain.FilterModel, n int, key analysis.SortKey) (*analysis.ProductAnalysis, error) {
	if key == "" {
		key = analysis.SortByGapQuantity
	}
	if !key.Valid() {
		return nil, fmt.Errorf("%w: sort %q", ErrInvalidInput, key)
	}
	a, err := s.Products(ctx, f)
	if err != nil {
		return nil, err
	}
	return &analysis.ProductAnalysis{
		Products: analysis.TopShortage(a, analysis.ClampTopN(n), key),
		Notices:  a.Notices,
		Degraded: a.Degraded,
	}, nil
}

// Overdue summarizes the overdue lines of f.
func (s *DeliveryService) Overdue(ctx context.Context, f domain.FilterModel) (*analysis.OverdueSummary, error) {
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return analysis.SummarizeOverdue(rs.Lines), nil
}

// Workbook exports f's lines as an XLSX workbook.
func (s *DeliveryService) Workbook(ctx context.Context, f domain.FilterModel) ([]byte, error) {
	rs, err := s.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return render.BuildWorkbook(render.WorkbookInput{
		Lines:    rs.Lines,
		Schema:   rs.Schema,
		Products: analysis.AnalyzeProducts(rs),
	})
}

// PivotCSV exports the long pivot of f.
func (s *DeliveryService) PivotCSV(ctx context.Context, f domain.FilterModel, period domain.Period) ([]byte, error) {
	t, err := s.Pivot(ctx, f, period)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.WritePivotCSV(&buf, t); err != nil {
		return nil, fmt.Errorf("failed to write pivot csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WideCSV exports the wide pivot of f.
func (s *DeliveryService) WideCSV(ctx context.Context, f domain.FilterModel, opts pivot.WideOptions) ([]byte, error) {
	t, err := s.Wide(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.WriteWideCSV(&buf, t); err != nil {
		return nil, fmt.Errorf("failed to write wide pivot csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ProductsCSV exports the product analysis of f.
func (s *DeliveryService) ProductsCSV(ctx context.Context, f domain.FilterModel) ([]byte, error) {
	a, err := s.Products(ctx, f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.WriteProductsCSV(&buf, a); err != nil {
		return nil, fmt.Errorf("failed to write products csv: %w", err)
	}
	return buf.Bytes(), nil
}

// FilterOptions lists the distinct values of every dimension and the ETD
// range, one query per dimension.
func (s *DeliveryService) FilterOptions(ctx context.Context) (*domain.FilterOptionsDTO, error) {
	start := time.Now()
	results := make([][]string, len(domain.Dimensions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(filterOptionConcurrency)

	for i, d := range domain.Dimensions {
		i, d := i, d
		g.Go(func() error {
			text, err := s.builder.FilterOptionQuery(d)
			if err != nil {
				return err
			}
			raw, err := s.view.QueryText(gctx, text)
			if err != nil {
				return err
			}
			values, err := normalize.ColumnStrings(*raw, query.OptionColumn)
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}

	var minETD, maxETD *time.Time
	g.Go(func() error {
		raw, err := s.view.QueryText(gctx, s.builder.DateRangeQuery())
		if err != nil {
			return err
		}
		if minETD, err = normalize.FirstRowDate(*raw, "min_etd"); err != nil {
			return err
		}
		maxETD, err = normalize.FirstRowDate(*raw, "max_etd")
		return err
	})

	err := g.Wait()
	s.metrics.ObserveQuery("filter_options", start, err)
	if err != nil {
		s.logger.Error("failed to load filter options", zap.Error(err))
		return nil, err
	}

	out := &domain.FilterOptionsDTO{
		Options: make(map[domain.Dimension][]string, len(domain.Dimensions)),
		MinETD:  minETD,
		MaxETD:  maxETD,
	}
	for i, d := range domain.Dimensions {
		if results[i] == nil {
			results[i] = []string{}
		}
		out.Options[d] = results[i]
	}
	return out, nil
}
