package service

import (
	"context"
	"time"

	"shopsight/internal/metrics"
	"shopsight/internal/model"

	"go.uber.org/zap"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// SearchService handles product search business logic
type SearchService struct {
	retriever *CandidateRetriever
	scorer    *RelevanceScorer
	ranker    *Ranker
	logger    *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(
	retriever *CandidateRetriever,
	scorer *RelevanceScorer,
	ranker *Ranker,
	logger *zap.Logger,
) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		retriever: retriever,
		scorer:    scorer,
		ranker:    ranker,
		logger:    logger,
	}
}

// Search runs the confidence-ranked path when requested, the plain path otherwise
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	query := orEmptyQuery(req.ParsedQuery)
	page, pageSize := req.Page, req.PageSize
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	response := &model.SearchResponse{
		ParsedQuery: query,
		Ranked:      req.UseConfidence,
	}

	if req.UseConfidence {
		result, err := s.SearchWithConfidence(ctx, query, page, pageSize, req.MinConfidence)
		if err != nil {
			return nil, err
		}
		response.Products = model.NewScoredProductResults(result.Items)
		response.Pagination = result.Pagination()
		response.CandidateLimit = s.retriever.CandidateLimit(pageSize)
	} else {
		result, err := s.SearchProducts(ctx, query, page, pageSize)
		if err != nil {
			return nil, err
		}
		response.Products = model.NewProductResults(result.Items)
		response.Pagination = result.Pagination()
	}

	response.Took = time.Since(startTime).Milliseconds()

	s.logger.Info("search completed",
		zap.Bool("ranked", response.Ranked),
		zap.Int("returned", len(response.Products)),
		zap.Int("total", response.Pagination.TotalItems),
		zap.Int("page", page),
		zap.Int("total_pages", response.Pagination.TotalPages),
		zap.Int64("took_ms", response.Took),
	)

	return response, nil
}

// SearchProducts is the plain path: storage paginates and the total is exact
func (s *SearchService) SearchProducts(ctx context.Context, q *model.ParsedQuery, page, pageSize int) (model.Page[model.Product], error) {
	q = orEmptyQuery(q)
	products, total, err := s.retriever.FetchPage(ctx, q.Keywords, q.Filters, page, pageSize)
	metrics.ObserveSearch(metrics.PathPlain, err)
	if err != nil {
		s.logger.Error("product search failed", zap.Strings("keywords", q.Keywords), zap.Error(err))
		return model.Page[model.Product]{}, err
	}

	s.logger.Debug("product search",
		zap.Strings("keywords", q.Keywords),
		zap.Int("returned", len(products)),
		zap.Int("total", total),
	)
	return model.NewPage(products, total, page, pageSize), nil
}

// SearchWithConfidence scores a bounded candidate pool and pages over it.
// The total counts candidates above minConfidence within that pool, so it
// never exceeds CandidateLimit(pageSize) whatever the catalog-wide match count.
func (s *SearchService) SearchWithConfidence(
	ctx context.Context,
	q *model.ParsedQuery,
	page, pageSize int,
	minConfidence float64,
) (model.Page[model.ScoredCandidate], error) {
	q = orEmptyQuery(q)
	limit := s.retriever.CandidateLimit(pageSize)

	candidates, err := s.retriever.FetchCandidates(ctx, q.Keywords, q.Filters, limit)
	metrics.ObserveSearch(metrics.PathConfidence, err)
	if err != nil {
		s.logger.Error("confidence search failed", zap.Strings("keywords", q.Keywords), zap.Error(err))
		return model.Page[model.ScoredCandidate]{}, err
	}
	metrics.ObserveCandidates(metrics.PathConfidence, len(candidates))

	scored := s.scorer.ScoreBatch(candidates, q)
	items, total := s.ranker.RankResults(scored, minConfidence, page, pageSize)

	s.logger.Debug("confidence search",
		zap.Any("attributes", q.Attributes),
		zap.Int("candidates", len(candidates)),
		zap.Float64("min_confidence", minConfidence),
		zap.Int("above_cutoff", total),
		zap.Int("returned", len(items)),
		zap.Float64s("top_scores", topScores(items, 5)),
	)
	return model.NewPage(items, total, page, pageSize), nil
}

// ArticleIDs returns every matching article id, for analytics over all matches
func (s *SearchService) ArticleIDs(ctx context.Context, q *model.ParsedQuery) ([]int64, error) {
	q = orEmptyQuery(q)
	ids, err := s.retriever.FetchArticleIDs(ctx, q.Keywords, q.Filters)
	metrics.ObserveSearch(metrics.PathAnalytics, err)
	if err != nil {
		s.logger.Error("article id listing failed", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("article ids", zap.Int("count", len(ids)))
	return ids, nil
}

// ArticleIDsWithConfidence returns ids of candidates scoring at least minConfidence.
// A zero threshold needs no scoring and falls back to the uncapped listing;
// otherwise ids come from the bounded analytics pool and capped is true.
func (s *SearchService) ArticleIDsWithConfidence(ctx context.Context, q *model.ParsedQuery, minConfidence float64) (ids []int64, capped bool, err error) {
	q = orEmptyQuery(q)
	if minConfidence <= 0 {
		ids, err = s.ArticleIDs(ctx, q)
		return ids, false, err
	}

	candidates, err := s.retriever.FetchCandidates(ctx, q.Keywords, q.Filters, s.retriever.AnalyticsCandidateLimit())
	metrics.ObserveSearch(metrics.PathAnalytics, err)
	if err != nil {
		s.logger.Error("article id listing with confidence failed", zap.Error(err))
		return nil, true, err
	}
	metrics.ObserveCandidates(metrics.PathAnalytics, len(candidates))

	ids = []int64{}
	for _, c := range candidates {
		if s.scorer.Score(c, q) >= minConfidence {
			ids = append(ids, c.ArticleID)
		}
	}

	s.logger.Debug("article ids with confidence",
		zap.Float64("min_confidence", minConfidence),
		zap.Int("candidates", len(candidates)),
		zap.Int("count", len(ids)),
	)
	return ids, true, nil
}

// GetProduct retrieves a single product by article id
func (s *SearchService) GetProduct(ctx context.Context, articleID int64) (*model.Product, error) {
	return s.retriever.GetProduct(ctx, articleID)
}

func topScores(items []model.ScoredCandidate, n int) []float64 {
	if len(items) < n {
		n = len(items)
	}
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = items[i].Confidence
	}
	return scores
}

func orEmptyQuery(q *model.ParsedQuery) *model.ParsedQuery {
	if q == nil {
		return &model.ParsedQuery{}
	}
	return q
}
