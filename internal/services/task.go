package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

const taskViewKind = "tasks"

type TaskService interface {
	Create(ctx context.Context, workspaceID uuid.UUID, tasks []*types.Task) ([]*types.Task, error)
	Update(ctx context.Context, task *types.Task) (*types.Task, error)
	Complete(ctx context.Context, workspaceID, taskID uuid.UUID, now time.Time) (*types.Task, error)
	Delete(ctx context.Context, workspaceID uuid.UUID, taskIDs []uuid.UUID) error

	ListSummaries(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]*TaskSummary, error)
	View(ctx context.Context, workspaceID uuid.UUID, cfg TaskFilterConfig, now time.Time) ([]*TaskSummary, error)
}

type taskService struct {
	db        *gorm.DB
	log       *logger.Logger
	taskRepo  repos.TaskRepo
	viewCache ViewCache
}

func NewTaskService(db *gorm.DB, log *logger.Logger, taskRepo repos.TaskRepo, viewCache ViewCache) TaskService {
	serviceLog := log.With("service", "TaskService")
	return &taskService{db: db, log: serviceLog, taskRepo: taskRepo, viewCache: viewCache}
}

func (ts *taskService) Create(ctx context.Context, workspaceID uuid.UUID, tasks []*types.Task) ([]*types.Task, error) {
	for _, t := range tasks {
		t.WorkspaceID = workspaceID
		if t.ContactID != nil && t.SupplierID != nil {
			return nil, fmt.Errorf("task %q cannot belong to both a contact and a supplier", t.Title)
		}
	}
	created, err := ts.taskRepo.Create(ctx, nil, tasks)
	if err != nil {
		return nil, fmt.Errorf("create tasks: %w", err)
	}
	ts.viewCache.Invalidate(ctx, workspaceID)
	return created, nil
}

func (ts *taskService) Update(ctx context.Context, task *types.Task) (*types.Task, error) {
	if task.ContactID != nil && task.SupplierID != nil {
		return nil, fmt.Errorf("task %q cannot belong to both a contact and a supplier", task.Title)
	}
	updated, err := ts.taskRepo.Update(ctx, nil, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	ts.viewCache.Invalidate(ctx, task.WorkspaceID)
	return updated, nil
}

func (ts *taskService) Complete(ctx context.Context, workspaceID, taskID uuid.UUID, now time.Time) (*types.Task, error) {
	var completed *types.Task
	err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task types.Task
		if err := tx.Where("id = ? AND workspace_id = ?", taskID, workspaceID).First(&task).Error; err != nil {
			return err
		}
		task.Completed = true
		task.CompletedAt = &now
		updated, err := ts.taskRepo.Update(ctx, tx, &task)
		if err != nil {
			return err
		}
		completed = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	ts.viewCache.Invalidate(ctx, workspaceID)
	return completed, nil
}

func (ts *taskService) Delete(ctx context.Context, workspaceID uuid.UUID, taskIDs []uuid.UUID) error {
	if err := ts.taskRepo.Delete(ctx, nil, taskIDs); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	ts.viewCache.Invalidate(ctx, workspaceID)
	return nil
}

func (ts *taskService) ListSummaries(ctx context.Context, workspaceID uuid.UUID, now time.Time) ([]*TaskSummary, error) {
	tasks, err := ts.taskRepo.ListByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return SummarizeTasks(tasks, now), nil
}

func (ts *taskService) View(ctx context.Context, workspaceID uuid.UUID, cfg TaskFilterConfig, now time.Time) ([]*TaskSummary, error) {
	if payload, ok := ts.viewCache.Get(ctx, workspaceID, taskViewKind, cfg); ok {
		var cached []*TaskSummary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	summaries, err := ts.ListSummaries(ctx, workspaceID, now)
	if err != nil {
		return nil, err
	}
	filtered := FilterTasks(summaries, cfg)

	if payload, err := json.Marshal(filtered); err == nil {
		ts.viewCache.Set(ctx, workspaceID, taskViewKind, cfg, payload)
	}
	return filtered, nil
}
