package service

import (
	"context"

	"shopsight/internal/model"

	"go.uber.org/zap"
)

// Candidate pool defaults
const (
	DefaultMaxCandidates       = 500
	DefaultCandidateMultiplier = 25
	DefaultAnalyticsCandidates = 1000
)

// CatalogStore is the storage engine the retriever reads from.
// Implementations must be safe for concurrent read-only use.
type CatalogStore interface {
	SearchProducts(ctx context.Context, p model.Predicate, limit, offset int) ([]model.Product, error)
	CountProducts(ctx context.Context, p model.Predicate) (int, error)
	FetchCandidates(ctx context.Context, p model.Predicate, limit int) ([]model.Candidate, error)
	ArticleIDs(ctx context.Context, p model.Predicate) ([]int64, error)
	GetProduct(ctx context.Context, articleID int64) (*model.Product, error)
}

// RetrieverConfig bounds the candidate pools. Zero fields take the defaults.
type RetrieverConfig struct {
	MaxCandidates       int
	CandidateMultiplier int
	AnalyticsCandidates int
}

// CandidateRetriever turns query keywords and filters into catalog reads
type CandidateRetriever struct {
	store  CatalogStore
	cfg    RetrieverConfig
	logger *zap.Logger
}

// NewCandidateRetriever creates a retriever over store
func NewCandidateRetriever(store CatalogStore, cfg RetrieverConfig, logger *zap.Logger) *CandidateRetriever {
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultMaxCandidates
	}
	if cfg.CandidateMultiplier <= 0 {
		cfg.CandidateMultiplier = DefaultCandidateMultiplier
	}
	if cfg.AnalyticsCandidates <= 0 {
		cfg.AnalyticsCandidates = DefaultAnalyticsCandidates
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateRetriever{store: store, cfg: cfg, logger: logger}
}

// CandidateLimit is the size of the pool scored for one confidence-ranked page:
// min(MaxCandidates, pageSize*CandidateMultiplier).
func (r *CandidateRetriever) CandidateLimit(pageSize int) int {
	limit := pageSize * r.cfg.CandidateMultiplier
	if limit > r.cfg.MaxCandidates {
		limit = r.cfg.MaxCandidates
	}
	return limit
}

// AnalyticsCandidateLimit is the pool size used for confidence-filtered id listings
func (r *CandidateRetriever) AnalyticsCandidateLimit() int {
	return r.cfg.AnalyticsCandidates
}

// FetchPage pushes pagination down to storage and returns one page of display
// rows plus the exact count of every matching row.
func (r *CandidateRetriever) FetchPage(ctx context.Context, keywords []string, filters *model.Filters, page, pageSize int) ([]model.Product, int, error) {
	predicate := model.NewPredicate(keywords, filters)
	offset, ok := model.PageOffset(page, pageSize)
	if !ok {
		// No rows can sit at this offset; only the count is needed
		total, err := r.store.CountProducts(ctx, predicate)
		if err != nil {
			return nil, 0, err
		}
		return []model.Product{}, total, nil
	}

	r.logger.Debug("fetching product page",
		zap.Strings("keywords", keywords),
		zap.Any("predicate", predicate),
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.Int("offset", offset),
	)

	products, err := r.store.SearchProducts(ctx, predicate, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.store.CountProducts(ctx, predicate)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// FetchCandidates returns up to limit scoring rows from the start of the match set
func (r *CandidateRetriever) FetchCandidates(ctx context.Context, keywords []string, filters *model.Filters, limit int) ([]model.Candidate, error) {
	predicate := model.NewPredicate(keywords, filters)

	candidates, err := r.store.FetchCandidates(ctx, predicate, limit)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("fetched candidates",
		zap.Strings("keywords", keywords),
		zap.Int("limit", limit),
		zap.Int("count", len(candidates)),
	)
	return candidates, nil
}

// FetchArticleIDs returns every matching article id with no row cap
func (r *CandidateRetriever) FetchArticleIDs(ctx context.Context, keywords []string, filters *model.Filters) ([]int64, error) {
	return r.store.ArticleIDs(ctx, model.NewPredicate(keywords, filters))
}

// GetProduct looks up a single article
func (r *CandidateRetriever) GetProduct(ctx context.Context, articleID int64) (*model.Product, error) {
	return r.store.GetProduct(ctx, articleID)
}
