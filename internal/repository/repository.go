package repository

import (
	"context"

	"kig-backend/internal/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create stamps id and timestamps. It fails with ErrEmailTaken when
	// another user already holds the email; the check and the insert are a
	// single storage-level operation.
	Create(ctx context.Context, user *domain.User) error
}

type IssueRepository interface {
	List(ctx context.Context) ([]domain.Issue, error)
	GetByID(ctx context.Context, id string) (*domain.Issue, error)
	Create(ctx context.Context, issue *domain.Issue) error
	// Update replaces the full record and bumps updatedAt. Last write wins.
	Update(ctx context.Context, issue *domain.Issue) error
}

type WorkGroupRepository interface {
	List(ctx context.Context) ([]domain.WorkGroup, error)
	GetByID(ctx context.Context, id string) (*domain.WorkGroup, error)
	Create(ctx context.Context, group *domain.WorkGroup) error
}

type TaskRepository interface {
	ListByWorkGroup(ctx context.Context, workGroupID string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
}

type ActivityLogRepository interface {
	// List returns entries newest first, at most limit when limit > 0
	List(ctx context.Context, limit int) ([]domain.ActivityLog, error)
	Append(ctx context.Context, entry *domain.ActivityLog) error
}

// Store bundles the per-kind repositories behind one backend
type Store interface {
	Users() UserRepository
	Issues() IssueRepository
	WorkGroups() WorkGroupRepository
	Tasks() TaskRepository
	ActivityLogs() ActivityLogRepository
}
