// Package memory is the mock backend used when no table store is configured.
// It serves seeded fixture data from process memory so the application is
// fully usable in development. Single-process only; nothing is persisted.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"

	"github.com/google/uuid"
)

// Store implements repository.Store over in-process slices. All access is
// serialized through one mutex; reads hand out copies so callers can never
// mutate seeded data in place.
type Store struct {
	mu         sync.RWMutex
	users      []domain.User
	issues     []domain.Issue
	workGroups []domain.WorkGroup
	tasks      []domain.Task
	activity   []domain.ActivityLog
	now        func() time.Time
}

// NewStore returns an empty mock store. Use NewSeededStore for the
// development fixture set.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewSeededStore returns a mock store pre-populated with the demo community
// data (users, issues, work groups, tasks, recent activity).
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()
	return s
}

func (s *Store) Users() repository.UserRepository             { return (*userRepo)(s) }
func (s *Store) Issues() repository.IssueRepository           { return (*issueRepo)(s) }
func (s *Store) WorkGroups() repository.WorkGroupRepository   { return (*workGroupRepo)(s) }
func (s *Store) Tasks() repository.TaskRepository             { return (*taskRepo)(s) }
func (s *Store) ActivityLogs() repository.ActivityLogRepository { return (*activityRepo)(s) }

func (s *Store) stamp() (string, time.Time) {
	return uuid.NewString(), s.now().UTC()
}

type userRepo Store

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create performs the duplicate check and the insert under one lock so two
// concurrent registrations for the same email cannot both succeed.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) {
			return repository.ErrEmailTaken
		}
	}
	id, now := (*Store)(r).stamp()
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return nil
}

type issueRepo Store

func (r *issueRepo) List(ctx context.Context) ([]domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Issue, len(r.issues))
	copy(out, r.issues)
	return out, nil
}

func (r *issueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.issues {
		if r.issues[i].ID == id {
			issue := r.issues[i]
			return &issue, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *issueRepo) Create(ctx context.Context, issue *domain.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, now := (*Store)(r).stamp()
	issue.ID = id
	issue.CreatedAt = now
	issue.UpdatedAt = now
	if issue.Photos == nil {
		issue.Photos = []string{}
	}
	r.issues = append(r.issues, *issue)
	return nil
}

func (r *issueRepo) Update(ctx context.Context, issue *domain.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.issues {
		if r.issues[i].ID == issue.ID {
			issue.UpdatedAt = (*Store)(r).now().UTC()
			r.issues[i] = *issue
			return nil
		}
	}
	return repository.ErrNotFound
}

type workGroupRepo Store

func (r *workGroupRepo) List(ctx context.Context) ([]domain.WorkGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WorkGroup, len(r.workGroups))
	copy(out, r.workGroups)
	return out, nil
}

func (r *workGroupRepo) GetByID(ctx context.Context, id string) (*domain.WorkGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.workGroups {
		if r.workGroups[i].ID == id {
			g := r.workGroups[i]
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *workGroupRepo) Create(ctx context.Context, group *domain.WorkGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, now := (*Store)(r).stamp()
	group.ID = id
	group.CreatedAt = now
	group.UpdatedAt = now
	if group.Members == nil {
		group.Members = []string{}
	}
	r.workGroups = append(r.workGroups, *group)
	return nil
}

type taskRepo Store

func (r *taskRepo) ListByWorkGroup(ctx context.Context, workGroupID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Task
	for i := range r.tasks {
		if r.tasks[i].WorkGroupID == workGroupID {
			out = append(out, r.tasks[i])
		}
	}
	return out, nil
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, now := (*Store)(r).stamp()
	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	r.tasks = append(r.tasks, *task)
	return nil
}

type activityRepo Store

func (r *activityRepo) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ActivityLog, len(r.activity))
	copy(out, r.activity)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *activityRepo) Append(ctx context.Context, entry *domain.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, now := (*Store)(r).stamp()
	entry.ID = id
	entry.CreatedAt = now
	r.activity = append(r.activity, *entry)
	return nil
}
