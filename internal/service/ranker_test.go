package service

import (
	"testing"

	"shopsight/internal/model"

	"github.com/stretchr/testify/assert"
)

func scoredList(confidences ...float64) []model.ScoredCandidate {
	scored := make([]model.ScoredCandidate, len(confidences))
	for i, c := range confidences {
		scored[i] = model.ScoredCandidate{
			Candidate:  candidate(int64(i+1), "", ""),
			Confidence: c,
		}
	}
	return scored
}

func scoredIDs(scored []model.ScoredCandidate) []int64 {
	ids := make([]int64, len(scored))
	for i, s := range scored {
		ids[i] = s.ArticleID
	}
	return ids
}

func TestRanker_RankResults(t *testing.T) {
	ranker := NewRanker()
	input := scoredList(0.5, 0.9, 0.5, 0.2, 0.9, 0.3)

	tests := []struct {
		name          string
		minConfidence float64
		page          int
		pageSize      int
		wantIDs       []int64
		wantTotal     int
	}{
		{name: "Cutoff is inclusive and ties keep retrieval order", minConfidence: 0.3, page: 1, pageSize: 10, wantIDs: []int64{2, 5, 1, 3, 6}, wantTotal: 5},
		{name: "No cutoff", minConfidence: 0, page: 1, pageSize: 10, wantIDs: []int64{2, 5, 1, 3, 6, 4}, wantTotal: 6},
		{name: "Second page", minConfidence: 0.3, page: 2, pageSize: 2, wantIDs: []int64{1, 3}, wantTotal: 5},
		{name: "Partial last page", minConfidence: 0.3, page: 3, pageSize: 2, wantIDs: []int64{6}, wantTotal: 5},
		{name: "Page past the end is empty", minConfidence: 0.3, page: 4, pageSize: 2, wantIDs: []int64{}, wantTotal: 5},
		{name: "Cutoff above everything", minConfidence: 0.95, page: 1, pageSize: 10, wantIDs: []int64{}, wantTotal: 0},
		{name: "Zero page size does not panic", minConfidence: 0, page: 1, pageSize: 0, wantIDs: []int64{}, wantTotal: 6},
		{name: "Zero page does not panic", minConfidence: 0, page: 0, pageSize: 2, wantIDs: []int64{}, wantTotal: 6},
		{name: "Overflowing page is empty", minConfidence: 0, page: 100_000_000_000_000_000, pageSize: 100, wantIDs: []int64{}, wantTotal: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total := ranker.RankResults(input, tt.minConfidence, tt.page, tt.pageSize)
			assert.Equal(t, tt.wantIDs, scoredIDs(items))
			assert.Equal(t, tt.wantTotal, total)
		})
	}

	// Input order is untouched
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, scoredIDs(input))
}

func TestRanker_Monotonic(t *testing.T) {
	ranker := NewRanker()
	input := scoredList(0.1, 0.75, 0.333, 0.75, 1, 0, 0.5, 0.999, 0.42)

	items, total := ranker.RankResults(input, 0, 1, len(input))
	assert.Equal(t, len(input), total)
	for i := 0; i+1 < len(items); i++ {
		assert.GreaterOrEqual(t, items[i].Confidence, items[i+1].Confidence)
	}
}
