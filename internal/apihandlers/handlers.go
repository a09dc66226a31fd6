package apihandlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"palette/internal/app"
	"palette/internal/clix"
	"palette/internal/models"
	"palette/internal/services"
)

// statusClientClosedRequest marks a search abandoned by its caller.
const statusClientClosedRequest = 499

const rankingFailedNotice = "Search is temporarily unavailable for this query. Try different keywords."

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// SearchRequest holds the query string of GET /api/v1/search.
type SearchRequest struct {
	Query        string `form:"query"`
	Kinds        string `form:"kinds"`
	Tags         string `form:"tags"`
	From         string `form:"from"`
	To           string `form:"to"`
	Limit        int    `form:"limit" binding:"gte=0,lte=500"`
	MinRelevance string `form:"min_relevance"`
	All          bool   `form:"all"`
}

type searchResponse struct {
	services.SearchResponse
	Notice string `json:"notice,omitempty"`
}

func (h *APIHandler) SearchHandler(c *gin.Context) {
	params, err := parseSearchRequest(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := h.App.SearchService.Search(c.Request.Context(), params)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, searchResponse{SearchResponse: *resp})
	case errors.Is(err, models.ErrRankingFailed):
		c.JSON(http.StatusOK, searchResponse{
			SearchResponse: services.SearchResponse{Query: params.Query, Items: []models.SearchableItem{}},
			Notice:         rankingFailedNotice,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		log.WithError(err).WithField("query", params.Query).Error("Search request failed")
		Internal(c, fmt.Sprintf("SearchHandler: search failed: %v", err))
	}
}

func parseSearchRequest(c *gin.Context) (services.SearchParams, error) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return services.SearchParams{}, err
	}

	kinds, err := clix.ParseKindList(req.Kinds)
	if err != nil {
		return services.SearchParams{}, err
	}
	dateRange, err := clix.ParseDateBounds(req.From, req.To)
	if err != nil {
		return services.SearchParams{}, err
	}

	params := services.SearchParams{
		Query: req.Query,
		Filters: models.SearchFilters{
			Kinds:     kinds,
			Tags:      clix.SplitList(req.Tags),
			DateRange: dateRange,
		},
		Limit:   req.Limit,
		ShowAll: req.All,
	}
	if req.MinRelevance != "" {
		v, err := strconv.ParseFloat(req.MinRelevance, 64)
		if err != nil || v < 0 {
			return services.SearchParams{}, fmt.Errorf("invalid min_relevance: %s", req.MinRelevance)
		}
		params.MinRelevance = &v
	}
	return params, nil
}

// ListHistoryHandler handles GET requests for recent searches.
func (h *APIHandler) ListHistoryHandler(c *gin.Context) {
	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		} else {
			BadRequest(c, fmt.Sprintf("invalid limit: %s", l))
			return
		}
	}

	queries, err := h.App.SearchService.ListSearchHistory(c.Request.Context(), limit)
	if err != nil {
		Internal(c, fmt.Sprintf("ListHistoryHandler: failed to list history: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": queries})
}

// HistoryResultsHandler returns the ranked items recorded for one search.
func (h *APIHandler) HistoryResultsHandler(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		BadRequest(c, fmt.Sprintf("Invalid search query ID format: %s", idStr))
		return
	}

	results, err := h.App.SearchService.SearchHistoryResults(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Search query not found with ID: %d", id))
			return
		}
		Internal(c, fmt.Sprintf("HistoryResultsHandler: failed to list results: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"search_query_id": id, "items": results})
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.SearchService.Ping(c.Request.Context()); err != nil {
		ServiceUnavailable(c, "collection backend unreachable: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
