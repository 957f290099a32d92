package model

// Product is the display projection of a catalog article
type Product struct {
	ArticleID  int64   `json:"article_id" db:"article_id"`
	Name       string  `json:"name" db:"name"`
	Type       string  `json:"type" db:"type"`
	Color      string  `json:"color" db:"color"`
	Department string  `json:"department" db:"department"`
	ImageURL   *string `json:"image_url,omitempty" db:"image_url"`
}

// Candidate is a catalog article carrying every column the relevance scorer reads
type Candidate struct {
	Product
	ProductGroup         string `json:"product_group" db:"product_group"`
	GarmentGroup         string `json:"garment_group" db:"garment_group"`
	BrandLabel           string `json:"brand_label" db:"brand_label"` // index/collection name
	PerceivedColorMaster string `json:"perceived_color_master" db:"perceived_color_master"`
	PerceivedColorValue  string `json:"perceived_color_value" db:"perceived_color_value"`
}

// ScoredCandidate is a candidate with its confidence for one query
type ScoredCandidate struct {
	Candidate
	Confidence float64 `json:"confidence"`
}

// ProductResult is a product as returned to API clients.
// ConfidenceScore is only set on the confidence-ranked path.
type ProductResult struct {
	Product
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
}

// NewProductResults converts plain products to API results
func NewProductResults(products []Product) []ProductResult {
	results := make([]ProductResult, len(products))
	for i, p := range products {
		results[i] = ProductResult{Product: p}
	}
	return results
}

// NewScoredProductResults converts scored candidates to API results
func NewScoredProductResults(scored []ScoredCandidate) []ProductResult {
	results := make([]ProductResult, len(scored))
	for i, s := range scored {
		confidence := s.Confidence
		results[i] = ProductResult{
			Product:         s.Product,
			ConfidenceScore: &confidence,
		}
	}
	return results
}
