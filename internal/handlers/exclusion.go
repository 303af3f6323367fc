package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/requestdata"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
)

type ExclusionHandler struct {
	log              *logger.Logger
	exclusionService services.ExclusionService
}

func NewExclusionHandler(log *logger.Logger, exclusionService services.ExclusionService) *ExclusionHandler {
	return &ExclusionHandler{
		log:              log.With("handler", "ExclusionHandler"),
		exclusionService: exclusionService,
	}
}

func (h *ExclusionHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	terms, version, err := h.exclusionService.GetTerms(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Error("Get exclusion terms failed", "error", err, "user_id", rd.UserID)
		RespondError(c, http.StatusInternalServerError, "load_exclusions_failed", err)
		return
	}
	RespondOK(c, gin.H{"terms": terms, "version": version})
}

// Put replaces the caller's whole exclusion vocabulary.
func (h *ExclusionHandler) Put(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Terms []string `json:"terms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	terms, version, err := h.exclusionService.PutTerms(c.Request.Context(), rd.UserID, req.Terms)
	if err != nil {
		h.log.Error("Put exclusion terms failed", "error", err, "user_id", rd.UserID)
		RespondError(c, http.StatusInternalServerError, "save_exclusions_failed", err)
		return
	}
	RespondOK(c, gin.H{"terms": terms, "version": version})
}
