package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository/memory"
)

func TestWorkGroupService_Create(t *testing.T) {
	store := memory.NewStore()
	recorder := NewActivityRecorder(store.ActivityLogs(), nil)
	svc := NewWorkGroupService(store.WorkGroups(), recorder)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		group, err := svc.CreateWorkGroup(ctx, CreateWorkGroupInput{
			Name:           "Lighting Crew",
			LeaderID:       "leader-1",
			Specialization: []domain.IssueCategory{domain.CategoryLights},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, group.ID)
		assert.True(t, group.IsActive)
		assert.NotNil(t, group.Members)

		entries, err := store.ActivityLogs().List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.ActivityGroupCreated, entries[0].Type)
		assert.Equal(t, group.ID, entries[0].RelatedID)
	})

	t.Run("Unknown specialization", func(t *testing.T) {
		var validation *ValidationError
		_, err := svc.CreateWorkGroup(ctx, CreateWorkGroupInput{
			Name:           "Crew",
			LeaderID:       "leader-1",
			Specialization: []domain.IssueCategory{"weather"},
		})
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "specialization", validation.Field)
	})

	t.Run("Missing name", func(t *testing.T) {
		var validation *ValidationError
		_, err := svc.CreateWorkGroup(ctx, CreateWorkGroupInput{LeaderID: "leader-1"})
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "name", validation.Field)
	})
}

func TestTaskService_Create(t *testing.T) {
	store := memory.NewStore()
	svc := NewTaskService(store.Tasks())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:       "Replace pole 14",
		WorkGroupID: "wg-1",
		CreatedBy:   "leader-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)

	tasks, err := svc.ListTasksByWorkGroup(ctx, "wg-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)

	var validation *ValidationError
	_, err = svc.CreateTask(ctx, CreateTaskInput{WorkGroupID: "wg-1", CreatedBy: "x"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Field)
}
