package service

import (
	"context"
	"strings"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) ListTasksByWorkGroup(ctx context.Context, workGroupID string) ([]domain.Task, error) {
	return s.tasks.ListByWorkGroup(ctx, workGroupID)
}

func (s *taskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, missingField("title")
	}
	if input.WorkGroupID == "" {
		return nil, missingField("workGroupId")
	}
	if input.CreatedBy == "" {
		return nil, missingField("createdBy")
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !status.Valid() {
		return nil, invalidField("status", "unknown status")
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.Valid() {
		return nil, invalidField("priority", "unknown priority")
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		WorkGroupID: input.WorkGroupID,
		AssignedTo:  input.AssignedTo,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		IssueID:     input.IssueID,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
