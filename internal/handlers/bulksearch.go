package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/requestdata"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
)

type BulkSearchHandler struct {
	log              *logger.Logger
	bulkMatchService services.BulkMatchService
}

func NewBulkSearchHandler(log *logger.Logger, bulkMatchService services.BulkMatchService) *BulkSearchHandler {
	return &BulkSearchHandler{
		log:              log.With("handler", "BulkSearchHandler"),
		bulkMatchService: bulkMatchService,
	}
}

// Match runs a batch of pasted queries against the workspace corpus and
// returns per-query results plus the matched-term frequency table used to
// drive exclusion suggestions.
func (h *BulkSearchHandler) Match(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil || rd.WorkspaceID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Queries []string `json:"queries"`
		Scope   string   `json:"scope"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	results, err := h.bulkMatchService.MatchAll(
		c.Request.Context(), rd.WorkspaceID, rd.UserID, req.Queries, services.MatchScope(req.Scope))
	if err != nil {
		h.log.Error("Bulk match failed", "error", err, "workspace_id", rd.WorkspaceID)
		RespondError(c, http.StatusInternalServerError, "bulk_match_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"results":          results,
		"term_frequencies": services.TermFrequencies(results),
	})
}
