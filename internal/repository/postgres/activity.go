package postgres

import (
	"context"
	"database/sql"
	"time"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"

	"github.com/google/uuid"
)

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	query := `SELECT id, type, description, user_id, related_id, before_data, after_data, created_at
	          FROM activity_logs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLog
	for rows.Next() {
		e := domain.ActivityLog{}
		var before, after string
		err := rows.Scan(&e.ID, &e.Type, &e.Description, &e.UserID, &e.RelatedID,
			&before, &after, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := decodeField("activityLog", e.ID, "beforeData", before, &e.BeforeData); err != nil {
			return nil, err
		}
		if err := decodeField("activityLog", e.ID, "afterData", after, &e.AfterData); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Append is insert-only; entries are immutable once written
func (r *activityLogRepository) Append(ctx context.Context, e *domain.ActivityLog) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	before := ""
	after := ""
	var err error
	if e.BeforeData != nil {
		if before, err = encodeField(e.BeforeData); err != nil {
			return err
		}
	}
	if e.AfterData != nil {
		if after, err = encodeField(e.AfterData); err != nil {
			return err
		}
	}

	query := `INSERT INTO activity_logs (id, type, description, user_id, related_id, before_data, after_data, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecContext(ctx, query, e.ID, e.Type, e.Description, e.UserID,
		e.RelatedID, before, after, e.CreatedAt)
	return err
}
