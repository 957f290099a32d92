package service

import (
	"sort"

	"shopsight/internal/model"
)

// Ranker applies the confidence cutoff, orders results and cuts pages
type Ranker struct{}

// NewRanker creates a new ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// RankResults keeps candidates at or above minConfidence, sorts them by
// confidence descending (ties keep retrieval order) and returns the requested
// page along with the size of the filtered set.
// A page outside the filtered set is empty, not an error.
func (r *Ranker) RankResults(
	scored []model.ScoredCandidate,
	minConfidence float64,
	page, pageSize int,
) ([]model.ScoredCandidate, int) {
	filtered := make([]model.ScoredCandidate, 0, len(scored))
	for _, candidate := range scored {
		if candidate.Confidence >= minConfidence {
			filtered = append(filtered, candidate)
		}
	}

	// Sort by confidence descending
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Confidence > filtered[j].Confidence
	})

	total := len(filtered)
	start, ok := model.PageOffset(page, pageSize)
	if !ok || start >= total {
		return []model.ScoredCandidate{}, total
	}
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	return filtered[start:end], total
}
