package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shopsight/internal/model"
	"shopsight/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService   *service.SearchService
	defaultPageSize int
	maxPageSize     int
	logger          *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultPageSize, maxPageSize int, logger *zap.Logger) *SearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHandler{
		searchService:   searchService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	query, err := service.ResolveQuery(req.ParsedQuery, req.ParserOutput, req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ParsedQuery = query

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = h.defaultPageSize
	}
	if req.PageSize > h.maxPageSize {
		req.PageSize = h.maxPageSize
	}

	response, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ArticleIDs handles POST /api/v1/search/article-ids
func (h *SearchHandler) ArticleIDs(c *gin.Context) {
	var req model.ArticleIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	query, err := service.ResolveQuery(req.ParsedQuery, req.ParserOutput, req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ids, capped, err := h.searchService.ArticleIDsWithConfidence(c.Request.Context(), query, req.MinConfidence)
	if err != nil {
		h.respondError(c, "Article id listing failed", err)
		return
	}

	c.JSON(http.StatusOK, model.ArticleIDsResponse{
		ArticleIDs: ids,
		Count:      len(ids),
		Capped:     capped,
	})
}

// GetProduct handles GET /api/v1/products/:id
func (h *SearchHandler) GetProduct(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	product, err := h.searchService.GetProduct(c.Request.Context(), articleID)
	if err != nil {
		h.respondError(c, "Failed to get product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// respondError maps service errors to status codes. Storage details stay in the log.
func (h *SearchHandler) respondError(c *gin.Context, message string, err error) {
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.logger.Error(message,
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
