package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/requestdata"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

func workspaceFromContext(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.WorkspaceID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return uuid.Nil, false
	}
	return rd.WorkspaceID, true
}

func (h *ContactHandler) Create(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var contact types.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.contactService.Create(c.Request.Context(), workspaceID, []*types.Contact{&contact})
	if err != nil {
		h.log.Error("Create contact failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "create_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": created[0]})
}

func (h *ContactHandler) Update(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var contact types.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	contact.ID = contactID
	contact.WorkspaceID = workspaceID
	updated, err := h.contactService.Update(c.Request.Context(), &contact)
	if err != nil {
		h.log.Error("Update contact failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "update_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": updated})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	if err := h.contactService.Delete(c.Request.Context(), workspaceID, []uuid.UUID{contactID}); err != nil {
		h.log.Error("Delete contact failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "delete_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (h *ContactHandler) LogCall(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var call types.Call
	if err := c.ShouldBindJSON(&call); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	call.ContactID = contactID
	created, err := h.contactService.LogCall(c.Request.Context(), workspaceID, &call)
	if err != nil {
		h.log.Error("LogCall failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "log_call_failed", err)
		return
	}
	RespondOK(c, gin.H{"call": created})
}

func (h *ContactHandler) LogEmail(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var email types.Email
	if err := c.ShouldBindJSON(&email); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	email.ContactID = contactID
	created, err := h.contactService.LogEmail(c.Request.Context(), workspaceID, &email)
	if err != nil {
		h.log.Error("LogEmail failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "log_email_failed", err)
		return
	}
	RespondOK(c, gin.H{"email": created})
}

func (h *ContactHandler) AddDeal(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var deal types.FuelDeal
	if err := c.ShouldBindJSON(&deal); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	deal.ContactID = contactID
	created, err := h.contactService.AddDeal(c.Request.Context(), workspaceID, &deal)
	if err != nil {
		h.log.Error("AddDeal failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "add_deal_failed", err)
		return
	}
	RespondOK(c, gin.H{"deal": created})
}

func (h *ContactHandler) AddPerson(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var person types.ContactPerson
	if err := c.ShouldBindJSON(&person); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	person.ContactID = contactID
	created, err := h.contactService.AddPerson(c.Request.Context(), workspaceID, &person)
	if err != nil {
		h.log.Error("AddPerson failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "add_person_failed", err)
		return
	}
	RespondOK(c, gin.H{"person": created})
}

func (h *ContactHandler) AddVessel(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_contact_id", err)
		return
	}
	var vessel types.Vessel
	if err := c.ShouldBindJSON(&vessel); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	vessel.ContactID = contactID
	created, err := h.contactService.AddVessel(c.Request.Context(), workspaceID, &vessel)
	if err != nil {
		h.log.Error("AddVessel failed", "error", err, "contact_id", contactID)
		RespondError(c, http.StatusInternalServerError, "add_vessel_failed", err)
		return
	}
	RespondOK(c, gin.H{"vessel": created})
}

// View computes filtered, sorted contact summaries for the workspace.
func (h *ContactHandler) View(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var cfg services.ContactFilterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	summaries, err := h.contactService.View(c.Request.Context(), workspaceID, cfg, time.Now())
	if err != nil {
		h.log.Error("Contact view failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "contact_view_failed", err)
		return
	}
	RespondOK(c, gin.H{"contacts": summaries})
}

func (h *ContactHandler) List(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	summaries, err := h.contactService.ListSummaries(c.Request.Context(), workspaceID, time.Now())
	if err != nil {
		h.log.Error("List contacts failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "list_contacts_failed", err)
		return
	}
	RespondOK(c, gin.H{"contacts": summaries})
}
