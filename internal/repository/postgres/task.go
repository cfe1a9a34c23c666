package postgres

import (
	"context"
	"database/sql"
	"time"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"

	"github.com/google/uuid"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListByWorkGroup(ctx context.Context, workGroupID string) ([]domain.Task, error) {
	query := `SELECT id, title, description, work_group_id, assigned_to, status, priority,
	          due_date, issue_id, created_by, created_at, updated_at, completed_at
	          FROM tasks WHERE work_group_id = $1`
	rows, err := r.db.QueryContext(ctx, query, workGroupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t := domain.Task{}
		var completedAt sql.NullTime
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.WorkGroupID, &t.AssignedTo,
			&t.Status, &t.Priority, &t.DueDate, &t.IssueID, &t.CreatedBy,
			&t.CreatedAt, &t.UpdatedAt, &completedAt)
		if err != nil {
			return nil, err
		}
		if completedAt.Valid {
			done := completedAt.Time
			t.CompletedAt = &done
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO tasks (id, title, description, work_group_id, assigned_to, status,
	          priority, due_date, issue_id, created_by, created_at, updated_at, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Title, t.Description, t.WorkGroupID,
		t.AssignedTo, t.Status, t.Priority, t.DueDate, t.IssueID, t.CreatedBy,
		t.CreatedAt, t.UpdatedAt, t.CompletedAt)
	return err
}
