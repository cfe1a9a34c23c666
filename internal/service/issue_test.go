package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
	"kig-backend/internal/repository/memory"
	"kig-backend/internal/storage"
)

func newIssueFixture(t *testing.T) (IssueService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	recorder := NewActivityRecorder(store.ActivityLogs(), nil)
	blobs := storage.NewMockBlobStorage("issues")
	svc := NewIssueService(store.Issues(), store.Users(), blobs, recorder, NoopNotifier{}, nil)
	return svc, store
}

func validCreateInput() CreateIssueInput {
	return CreateIssueInput{
		Title:       "Pothole on Long Street",
		Description: "Deep pothole damaging vehicles near the intersection.",
		Category:    domain.CategoryRoads,
		Location:    domain.Location{Latitude: -34.036, Longitude: 23.047, Address: "Long Street"},
		ReportedBy:  "user-1",
	}
}

func TestIssueService_CreateIssue(t *testing.T) {
	svc, store := newIssueFixture(t)
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, validCreateInput())
	require.NoError(t, err)
	assert.NotEmpty(t, issue.ID)
	assert.Equal(t, domain.StatusOpen, issue.Status)
	assert.Equal(t, domain.PriorityMedium, issue.Priority)
	assert.NotNil(t, issue.Photos)
	assert.False(t, issue.CreatedAt.IsZero())

	issues, err := svc.ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, issue.ID, issues[0].ID)

	entries, err := store.ActivityLogs().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityIssueCreated, entries[0].Type)
	assert.Equal(t, "New issue reported: Pothole on Long Street", entries[0].Description)
	assert.Equal(t, issue.ID, entries[0].RelatedID)
	assert.Equal(t, "user-1", entries[0].UserID)
}

func TestIssueService_CreateIssue_Validation(t *testing.T) {
	svc, _ := newIssueFixture(t)
	ctx := context.Background()
	var validation *ValidationError

	cases := []struct {
		name   string
		mutate func(*CreateIssueInput)
		field  string
	}{
		{"missing title", func(in *CreateIssueInput) { in.Title = "  " }, "title"},
		{"missing description", func(in *CreateIssueInput) { in.Description = "" }, "description"},
		{"unknown category", func(in *CreateIssueInput) { in.Category = "weather" }, "category"},
		{"missing reporter", func(in *CreateIssueInput) { in.ReportedBy = "" }, "reportedBy"},
		{"unknown priority", func(in *CreateIssueInput) { in.Priority = "urgent" }, "priority"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)
			_, err := svc.CreateIssue(ctx, input)
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
		})
	}
}

func TestIssueService_UpdateIssue_Resolve(t *testing.T) {
	svc, store := newIssueFixture(t)
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, validCreateInput())
	require.NoError(t, err)

	resolved := domain.StatusResolved
	updated, err := svc.UpdateIssue(ctx, issue.ID, domain.IssueUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)

	entries, err := store.ActivityLogs().List(ctx, 0)
	require.NoError(t, err)

	var resolutions []domain.ActivityLog
	for _, entry := range entries {
		if entry.Type == domain.ActivityIssueResolved {
			resolutions = append(resolutions, entry)
		}
	}
	require.Len(t, resolutions, 1)
	entry := resolutions[0]
	assert.Equal(t, "Issue status changed from open to resolved", entry.Description)
	assert.Equal(t, issue.ID, entry.RelatedID)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, domain.Snapshot{"status": "open"}, entry.BeforeData)
	assert.Equal(t, domain.Snapshot{"status": "resolved"}, entry.AfterData)

	// re-resolving with the same status records nothing further
	_, err = svc.UpdateIssue(ctx, issue.ID, domain.IssueUpdate{Status: &resolved})
	require.NoError(t, err)
	after, err := store.ActivityLogs().List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, after, len(entries))
}

func TestIssueService_UpdateIssue_StatusChange(t *testing.T) {
	svc, store := newIssueFixture(t)
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, validCreateInput())
	require.NoError(t, err)

	inProgress := domain.StatusInProgress
	assignee := "leader-9"
	updated, err := svc.UpdateIssue(ctx, issue.ID, domain.IssueUpdate{
		Status:     &inProgress,
		AssignedTo: &assignee,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Nil(t, updated.ResolvedAt)

	entries, err := store.ActivityLogs().List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActivityIssueUpdated, entries[0].Type)
	// the assignee is credited once the issue has one
	assert.Equal(t, "leader-9", entries[0].UserID)
}

func TestIssueService_UpdateIssue_NotFound(t *testing.T) {
	svc, _ := newIssueFixture(t)
	status := domain.StatusClosed
	_, err := svc.UpdateIssue(context.Background(), "missing", domain.IssueUpdate{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIssueService_UploadPhoto(t *testing.T) {
	svc, _ := newIssueFixture(t)
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, validCreateInput())
	require.NoError(t, err)

	url, err := svc.UploadPhoto(ctx, issue.ID, "pothole.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://mockblob.core.windows.net/issues/"+issue.ID+"/pothole.jpg", url)

	stored, err := svc.GetIssue(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{url}, stored.Photos)
}

func TestIssueService_UploadPhoto_TempScope(t *testing.T) {
	svc, _ := newIssueFixture(t)

	// uploads may precede the issue itself; the URL is still returned
	url, err := svc.UploadPhoto(context.Background(), "temp", "a.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://mockblob.core.windows.net/issues/temp/a.jpg", url)
}
