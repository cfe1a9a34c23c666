package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
)

var issueColumnNames = []string{"id", "title", "description", "category", "status", "priority",
	"location", "photos", "reported_by", "assigned_to", "work_group",
	"estimated_cost", "donation_goal", "donations_received",
	"created_at", "updated_at", "resolved_at"}

func TestIssueRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewIssueRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Decodes nested fields", func(t *testing.T) {
		rows := sqlmock.NewRows(issueColumnNames).AddRow(
			"i1", "Burst pipe", "Flooding", "water", "open", "high",
			`{"latitude":-34.03,"longitude":23.04,"address":"Main Street"}`,
			`["https://blob/issues/i1/a.jpg"]`,
			"u1", "", "", 15000.0, 20000.0, 0.0, now, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM issues WHERE id").
			WithArgs("i1").
			WillReturnRows(rows)

		issue, err := repo.GetByID(ctx, "i1")
		require.NoError(t, err)
		assert.Equal(t, "Main Street", issue.Location.Address)
		assert.InDelta(t, -34.03, issue.Location.Latitude, 0.0001)
		assert.Equal(t, []string{"https://blob/issues/i1/a.jpg"}, issue.Photos)
		assert.Nil(t, issue.ResolvedAt)
	})

	t.Run("Empty photos column becomes empty slice", func(t *testing.T) {
		rows := sqlmock.NewRows(issueColumnNames).AddRow(
			"i2", "Light out", "Dark corner", "lights", "open", "medium",
			"", "", "u1", "", "", 0.0, 0.0, 0.0, now, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM issues WHERE id").
			WithArgs("i2").
			WillReturnRows(rows)

		issue, err := repo.GetByID(ctx, "i2")
		require.NoError(t, err)
		assert.Equal(t, []string{}, issue.Photos)
	})

	t.Run("Corrupt location JSON", func(t *testing.T) {
		rows := sqlmock.NewRows(issueColumnNames).AddRow(
			"i3", "Bad row", "Desc", "water", "open", "low",
			`{not json`, `[]`, "u1", "", "", 0.0, 0.0, 0.0, now, now, nil)
		mock.ExpectQuery("SELECT (.+) FROM issues WHERE id").
			WithArgs("i3").
			WillReturnRows(rows)

		_, err := repo.GetByID(ctx, "i3")
		var corrupt *repository.CorruptRecordError
		require.ErrorAs(t, err, &corrupt)
		assert.Equal(t, "issue", corrupt.Kind)
		assert.Equal(t, "i3", corrupt.ID)
		assert.Equal(t, "location", corrupt.Field)
	})
}

func TestIssueRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("Missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE issues SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Issue{ID: "missing", Photos: []string{}})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestActivityLogRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewActivityLogRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO activity_logs").
		WithArgs(sqlmock.AnyArg(), "issueResolved", "Issue status changed from open to resolved",
			"u1", "i1", `{"status":"open"}`, `{"status":"resolved"}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &domain.ActivityLog{
		Type:        domain.ActivityIssueResolved,
		Description: "Issue status changed from open to resolved",
		UserID:      "u1",
		RelatedID:   "i1",
		BeforeData:  domain.Snapshot{"status": "open"},
		AfterData:   domain.Snapshot{"status": "resolved"},
	}
	require.NoError(t, repo.Append(ctx, entry))
	assert.NotEmpty(t, entry.ID)
}
