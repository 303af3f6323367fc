package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type TaskHandler struct {
	log         *logger.Logger
	taskService services.TaskService
}

func NewTaskHandler(log *logger.Logger, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		log:         log.With("handler", "TaskHandler"),
		taskService: taskService,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var task types.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.taskService.Create(c.Request.Context(), workspaceID, []*types.Task{&task})
	if err != nil {
		h.log.Error("Create task failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusBadRequest, "create_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": created[0]})
}

func (h *TaskHandler) Update(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_task_id", err)
		return
	}
	var task types.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	task.ID = taskID
	task.WorkspaceID = workspaceID
	updated, err := h.taskService.Update(c.Request.Context(), &task)
	if err != nil {
		h.log.Error("Update task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusBadRequest, "update_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": updated})
}

func (h *TaskHandler) Complete(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_task_id", err)
		return
	}
	task, err := h.taskService.Complete(c.Request.Context(), workspaceID, taskID, time.Now())
	if err != nil {
		h.log.Error("Complete task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusInternalServerError, "complete_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"task": task})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_task_id", err)
		return
	}
	if err := h.taskService.Delete(c.Request.Context(), workspaceID, []uuid.UUID{taskID}); err != nil {
		h.log.Error("Delete task failed", "error", err, "task_id", taskID)
		RespondError(c, http.StatusInternalServerError, "delete_task_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (h *TaskHandler) View(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	var cfg services.TaskFilterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	summaries, err := h.taskService.View(c.Request.Context(), workspaceID, cfg, time.Now())
	if err != nil {
		h.log.Error("Task view failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "task_view_failed", err)
		return
	}
	RespondOK(c, gin.H{"tasks": summaries})
}

func (h *TaskHandler) List(c *gin.Context) {
	workspaceID, ok := workspaceFromContext(c)
	if !ok {
		return
	}
	summaries, err := h.taskService.ListSummaries(c.Request.Context(), workspaceID, time.Now())
	if err != nil {
		h.log.Error("List tasks failed", "error", err, "workspace_id", workspaceID)
		RespondError(c, http.StatusInternalServerError, "list_tasks_failed", err)
		return
	}
	RespondOK(c, gin.H{"tasks": summaries})
}
