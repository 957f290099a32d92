package model

// SearchRequest represents a product search request.
// The query arrives as parsed_query, as raw parser_output, or as the user's query text.
// Page and PageSize are validated here, before the search pipeline sees them.
type SearchRequest struct {
	ParsedQuery   *ParsedQuery `json:"parsed_query"`
	ParserOutput  string       `json:"parser_output,omitempty"`
	Query         string       `json:"query,omitempty"`
	Page          int          `json:"page" binding:"omitempty,min=1,max=10000"`
	PageSize      int          `json:"page_size" binding:"omitempty,min=1,max=100"`
	UseConfidence bool         `json:"use_confidence"`
	MinConfidence float64      `json:"min_confidence" binding:"min=0,max=1"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	ParsedQuery    *ParsedQuery    `json:"parsed_query"`
	Products       []ProductResult `json:"products"`
	Pagination     Pagination      `json:"pagination"`
	Ranked         bool            `json:"ranked"`
	CandidateLimit int             `json:"candidate_limit,omitempty"` // ranked totals are relative to this pool
	Took           int64           `json:"took_ms"`                   // Response time in milliseconds
}

// ArticleIDsRequest asks for every article id matching a query, for analytics
type ArticleIDsRequest struct {
	ParsedQuery   *ParsedQuery `json:"parsed_query"`
	ParserOutput  string       `json:"parser_output,omitempty"`
	Query         string       `json:"query,omitempty"`
	MinConfidence float64      `json:"min_confidence" binding:"min=0,max=1"`
}

// ArticleIDsResponse lists matching article ids.
// Capped is true when ids were drawn from a bounded candidate pool.
type ArticleIDsResponse struct {
	ArticleIDs []int64 `json:"article_ids"`
	Count      int     `json:"count"`
	Capped     bool    `json:"capped"`
}
