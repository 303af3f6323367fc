package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type SupplierHandler struct {
	log             *logger.Logger
	supplierService services.SupplierService
}

func NewSupplierHandler(log *logger.Logger, supplierService services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		log:             log.With("handler", "SupplierHandler"),
		supplierService: supplierService,
	}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var supplier types.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.supplierService.Create(c.Request.Context(), workspaceID, []*types.Supplier{&supplier})
	if err != nil {
		h.log.Error("Create supplier failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "create_supplier_failed", err)
		return
	}
	RespondOK(c, gin.H{"supplier": created[0]})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	var supplier types.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplier.ID = supplierID
	supplier.WorkspaceID = workspaceID
	updated, err := h.supplierService.Update(c.Request.Context(), &supplier)
	if err != nil {
		h.log.Error("Update supplier failed", "error", err, "supplier_id", supplierID)
		RespondError(c, http.StatusInternalServerError, "update_supplier_failed", err)
		return
	}
	RespondOK(c, gin.H{"supplier": updated})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	if err := h.supplierService.Delete(c.Request.Context(), workspaceID, []uuid.UUID{supplierID}); err != nil {
		h.log.Error("Delete supplier failed", "error", err, "supplier_id", supplierID)
		RespondError(c, http.StatusInternalServerError, "delete_supplier_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (h *SupplierHandler) AddOrder(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	var order types.SupplierOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	order.SupplierID = supplierID
	created, err := h.supplierService.AddOrder(c.Request.Context(), workspaceID, &order)
	if err != nil {
		h.log.Error("AddOrder failed", "error", err, "supplier_id", supplierID)
		RespondError(c, http.StatusInternalServerError, "add_order_failed", err)
		return
	}
	RespondOK(c, gin.H{"order": created})
}

func (h *SupplierHandler) AddContact(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	var contact types.SupplierContact
	if err := c.ShouldBindJSON(&contact); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	contact.SupplierID = supplierID
	created, err := h.supplierService.AddContact(c.Request.Context(), workspaceID, &contact)
	if err != nil {
		h.log.Error("AddContact failed", "error", err, "supplier_id", supplierID)
		RespondError(c, http.StatusInternalServerError, "add_supplier_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": created})
}

func (h *SupplierHandler) AddPort(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	var port types.SupplierPort
	if err := c.ShouldBindJSON(&port); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	port.SupplierID = supplierID
	created, err := h.supplierService.AddPort(c.Request.Context(), workspaceID, &port)
	if err != nil {
		h.log.Error("AddPort failed", "error", err, "supplier_id", supplierID)
		RespondError(c, http.StatusInternalServerError, "add_port_failed", err)
		return
	}
	RespondOK(c, gin.H{"port": created})
}

func (h *SupplierHandler) View(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var cfg services.SupplierFilterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	summaries, err := h.supplierService.View(c.Request.Context(), workspaceID, cfg)
	if err != nil {
		h.log.Error("Supplier view failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "supplier_view_failed", err)
		return
	}
	RespondOK(c, gin.H{"suppliers": summaries})
}

func (h *SupplierHandler) List(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	summaries, err := h.supplierService.ListSummaries(c.Request.Context(), workspaceID)
	if err != nil {
		h.log.Error("List suppliers failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "list_suppliers_failed", err)
		return
	}
	RespondOK(c, gin.H{"suppliers": summaries})
}
