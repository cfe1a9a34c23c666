package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"

	"github.com/google/uuid"
)

type issueRepository struct {
	db *sql.DB
}

func NewIssueRepository(db *sql.DB) repository.IssueRepository {
	return &issueRepository{db: db}
}

const issueColumns = `id, title, description, category, status, priority, location, photos,
	reported_by, assigned_to, work_group, estimated_cost, donation_goal, donations_received,
	created_at, updated_at, resolved_at`

func scanIssue(row interface{ Scan(...any) error }) (*domain.Issue, error) {
	i := &domain.Issue{}
	var location, photos string
	var resolvedAt sql.NullTime
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Category, &i.Status, &i.Priority,
		&location, &photos, &i.ReportedBy, &i.AssignedTo, &i.WorkGroup,
		&i.EstimatedCost, &i.DonationGoal, &i.DonationsReceived,
		&i.CreatedAt, &i.UpdatedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}
	if err := decodeField("issue", i.ID, "location", location, &i.Location); err != nil {
		return nil, err
	}
	if err := decodeField("issue", i.ID, "photos", photos, &i.Photos); err != nil {
		return nil, err
	}
	if i.Photos == nil {
		i.Photos = []string{}
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		i.ResolvedAt = &t
	}
	return i, nil
}

func (r *issueRepository) List(ctx context.Context) ([]domain.Issue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+issueColumns+` FROM issues`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *i)
	}
	return issues, rows.Err()
}

func (r *issueRepository) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+issueColumns+` FROM issues WHERE id = $1`, id)
	i, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return i, err
}

func (r *issueRepository) Create(ctx context.Context, i *domain.Issue) error {
	now := time.Now().UTC()
	i.ID = uuid.NewString()
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Photos == nil {
		i.Photos = []string{}
	}

	location, err := encodeField(i.Location)
	if err != nil {
		return err
	}
	photos, err := encodeField(i.Photos)
	if err != nil {
		return err
	}

	query := `INSERT INTO issues (id, title, description, category, status, priority, location, photos,
	          reported_by, assigned_to, work_group, estimated_cost, donation_goal, donations_received,
	          created_at, updated_at, resolved_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.db.ExecContext(ctx, query, i.ID, i.Title, i.Description, i.Category, i.Status,
		i.Priority, location, photos, i.ReportedBy, i.AssignedTo, i.WorkGroup,
		i.EstimatedCost, i.DonationGoal, i.DonationsReceived, i.CreatedAt, i.UpdatedAt, i.ResolvedAt)
	return err
}

// Update rewrites the full row; last write wins
func (r *issueRepository) Update(ctx context.Context, i *domain.Issue) error {
	i.UpdatedAt = time.Now().UTC()

	location, err := encodeField(i.Location)
	if err != nil {
		return err
	}
	photos, err := encodeField(i.Photos)
	if err != nil {
		return err
	}

	query := `UPDATE issues SET title=$2, description=$3, category=$4, status=$5, priority=$6,
	          location=$7, photos=$8, reported_by=$9, assigned_to=$10, work_group=$11,
	          estimated_cost=$12, donation_goal=$13, donations_received=$14, updated_at=$15, resolved_at=$16
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, i.ID, i.Title, i.Description, i.Category, i.Status,
		i.Priority, location, photos, i.ReportedBy, i.AssignedTo, i.WorkGroup,
		i.EstimatedCost, i.DonationGoal, i.DonationsReceived, i.UpdatedAt, i.ResolvedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
