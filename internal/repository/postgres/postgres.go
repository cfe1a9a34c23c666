// Package postgres is the live table backend. Each entity kind has its own
// table keyed by the entity id; nested structures travel as stringified JSON
// columns and cross the wire through the codec in codec.go.
package postgres

import (
	"database/sql"

	"kig-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB

	users      repository.UserRepository
	issues     repository.IssueRepository
	workGroups repository.WorkGroupRepository
	tasks      repository.TaskRepository
	activity   repository.ActivityLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		users:      NewUserRepository(db),
		issues:     NewIssueRepository(db),
		workGroups: NewWorkGroupRepository(db),
		tasks:      NewTaskRepository(db),
		activity:   NewActivityLogRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository               { return s.users }
func (s *Store) Issues() repository.IssueRepository             { return s.issues }
func (s *Store) WorkGroups() repository.WorkGroupRepository     { return s.workGroups }
func (s *Store) Tasks() repository.TaskRepository               { return s.tasks }
func (s *Store) ActivityLogs() repository.ActivityLogRepository { return s.activity }
