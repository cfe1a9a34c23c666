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

type workGroupRepository struct {
	db *sql.DB
}

func NewWorkGroupRepository(db *sql.DB) repository.WorkGroupRepository {
	return &workGroupRepository{db: db}
}

const workGroupColumns = `id, name, description, leader_id, members, area, specialization,
	contact_info, category, is_active, created_at, updated_at`

func scanWorkGroup(row interface{ Scan(...any) error }) (*domain.WorkGroup, error) {
	g := &domain.WorkGroup{}
	var members, specialization, contactInfo string
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.LeaderID, &members, &g.Area,
		&specialization, &contactInfo, &g.Category, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := decodeField("workGroup", g.ID, "members", members, &g.Members); err != nil {
		return nil, err
	}
	if err := decodeField("workGroup", g.ID, "specialization", specialization, &g.Specialization); err != nil {
		return nil, err
	}
	if err := decodeField("workGroup", g.ID, "contactInfo", contactInfo, &g.ContactInfo); err != nil {
		return nil, err
	}
	if g.Members == nil {
		g.Members = []string{}
	}
	return g, nil
}

func (r *workGroupRepository) List(ctx context.Context) ([]domain.WorkGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+workGroupColumns+` FROM work_groups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.WorkGroup
	for rows.Next() {
		g, err := scanWorkGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

func (r *workGroupRepository) GetByID(ctx context.Context, id string) (*domain.WorkGroup, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workGroupColumns+` FROM work_groups WHERE id = $1`, id)
	g, err := scanWorkGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return g, err
}

func (r *workGroupRepository) Create(ctx context.Context, g *domain.WorkGroup) error {
	now := time.Now().UTC()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	g.UpdatedAt = now
	if g.Members == nil {
		g.Members = []string{}
	}

	members, err := encodeField(g.Members)
	if err != nil {
		return err
	}
	specialization, err := encodeField(g.Specialization)
	if err != nil {
		return err
	}
	contactInfo, err := encodeField(g.ContactInfo)
	if err != nil {
		return err
	}

	query := `INSERT INTO work_groups (id, name, description, leader_id, members, area,
	          specialization, contact_info, category, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.db.ExecContext(ctx, query, g.ID, g.Name, g.Description, g.LeaderID, members,
		g.Area, specialization, contactInfo, g.Category, g.IsActive, g.CreatedAt, g.UpdatedAt)
	return err
}
