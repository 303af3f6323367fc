package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/requestdata"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Error("GetMe failed", "error", err, "user_id", rd.UserID)
		RespondError(c, http.StatusInternalServerError, "load_user_failed", err)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (h *UserHandler) ListWorkspaces(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	workspaces, err := h.userService.ListWorkspaces(c.Request.Context(), rd.UserID)
	if err != nil {
		h.log.Error("ListWorkspaces failed", "error", err, "user_id", rd.UserID)
		RespondError(c, http.StatusInternalServerError, "load_workspaces_failed", err)
		return
	}
	RespondOK(c, gin.H{"workspaces": workspaces})
}
