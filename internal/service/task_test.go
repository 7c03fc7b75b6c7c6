package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/perfdesk/internal/model"
	"github.com/templui/perfdesk/internal/validation"
)

func TestTaskService_CreateAndApprove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.goals.Create(ctx, manager, 2, "Ship v1", day(2030, 1, 1))
	require.NoError(t, err)

	task, err := f.tasks.Create(ctx, employee, g.ID, "write release notes")
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)

	// Managers may log tasks too
	_, err = f.tasks.Create(ctx, manager, g.ID, "review release notes")
	require.NoError(t, err)

	assert.ErrorIs(t, f.tasks.UpdateStatus(ctx, employee, task.ID, model.TaskStatusApproved), ErrForbidden)
	assert.ErrorIs(t, f.tasks.UpdateStatus(ctx, manager, task.ID, "Done"), validation.ErrInvalidStatus)
	require.NoError(t, f.tasks.UpdateStatus(ctx, manager, task.ID, model.TaskStatusApproved))

	tasks, err := f.tasks.TasksForGoal(ctx, employee, g.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, model.TaskStatusApproved, tasks[0].Status)
	assert.Equal(t, model.TaskStatusPending, tasks[1].Status)
}

func TestTaskService_MissingGoal(t *testing.T) {
	f := newFixture(t)

	_, err := f.tasks.Create(context.Background(), employee, 12345, "orphan")
	assert.Error(t, err)
}
