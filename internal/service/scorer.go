package service

import (
	"math"
	"strings"

	"shopsight/internal/model"
	"shopsight/internal/utils"
)

// Attribute weights of the confidence model. They sum to 1.
const (
	WeightBrand   = 0.35
	WeightType    = 0.30
	WeightColor   = 0.20
	WeightKeyword = 0.15
)

// neutralScore is returned for attributes the query does not specify
const neutralScore = 0.5

// RelevanceScorer computes how well a candidate matches a parsed query.
// It holds no state and is safe for concurrent use.
type RelevanceScorer struct{}

// NewRelevanceScorer creates a new scorer
func NewRelevanceScorer() *RelevanceScorer {
	return &RelevanceScorer{}
}

// Score returns the candidate's confidence in [0, 1], rounded to 3 decimals
func (s *RelevanceScorer) Score(c model.Candidate, q *model.ParsedQuery) float64 {
	if q == nil {
		q = &model.ParsedQuery{}
	}

	attrs := q.Attributes
	confidence := WeightBrand*s.scoreBrand(c, strings.TrimSpace(attrs.Brand)) +
		WeightType*s.scoreType(c, strings.TrimSpace(attrs.Type)) +
		WeightColor*s.scoreColor(c, strings.TrimSpace(attrs.Color)) +
		WeightKeyword*s.scoreKeywords(c, q.Keywords)

	confidence = math.Max(0, math.Min(1, confidence))
	return math.Round(confidence*1000) / 1000
}

// ScoreBatch scores every candidate, returning new records in input order
func (s *RelevanceScorer) ScoreBatch(candidates []model.Candidate, q *model.ParsedQuery) []model.ScoredCandidate {
	scored := make([]model.ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = model.ScoredCandidate{
			Candidate:  c,
			Confidence: s.Score(c, q),
		}
	}
	return scored
}

// scoreBrand checks name, then brand label, then department
func (s *RelevanceScorer) scoreBrand(c model.Candidate, brand string) float64 {
	if brand == "" {
		return neutralScore
	}

	switch {
	case utils.WordMatch(c.Name, brand):
		return 1.0
	case utils.WordMatch(c.BrandLabel, brand):
		return 0.9
	case utils.WordMatch(c.Department, brand):
		return 0.6
	}
	return 0.0
}

// scoreType walks from the most specific field (type) to the broadest (garment group)
func (s *RelevanceScorer) scoreType(c model.Candidate, productType string) float64 {
	if productType == "" {
		return neutralScore
	}

	switch {
	case utils.ExactMatch(c.Type, productType):
		return 1.0
	case utils.FuzzyMatch(c.Type, productType):
		return 0.95
	case utils.WordMatch(c.Name, productType):
		return 0.9
	case utils.FuzzyMatch(c.ProductGroup, productType):
		return 0.7
	case utils.FuzzyMatch(c.GarmentGroup, productType):
		return 0.5
	}
	return 0.0
}

func (s *RelevanceScorer) scoreColor(c model.Candidate, color string) float64 {
	if color == "" {
		return neutralScore
	}

	switch {
	case utils.ExactMatch(c.Color, color):
		return 1.0
	case utils.FuzzyMatch(c.Color, color):
		return 0.95
	case utils.FuzzyMatch(c.PerceivedColorMaster, color):
		return 0.9
	case utils.FuzzyMatch(c.PerceivedColorValue, color):
		return 0.8
	case utils.WordMatch(c.Name, color):
		return 0.7
	}
	return 0.0
}

// scoreKeywords blends the share of keywords found in the name (70%)
// with the share found in the type (30%)
func (s *RelevanceScorer) scoreKeywords(c model.Candidate, keywords []string) float64 {
	if len(keywords) == 0 {
		return neutralScore
	}

	matchedInName, matchedInType := 0, 0
	for _, keyword := range keywords {
		if utils.WordMatch(c.Name, keyword) {
			matchedInName++
		}
		if utils.WordMatch(c.Type, keyword) {
			matchedInType++
		}
	}

	total := float64(len(keywords))
	score := 0.7*float64(matchedInName)/total + 0.3*float64(matchedInType)/total
	return math.Min(1.0, score)
}
