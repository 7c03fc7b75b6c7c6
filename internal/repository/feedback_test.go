package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/perfdesk/internal/db/dbtest"
	"github.com/templui/perfdesk/internal/model"
)

func TestFeedbackRepository_CreateAndList(t *testing.T) {
	database := dbtest.New(t)
	goals := NewGoalRepository(database)
	feedback := NewFeedbackRepository(database)
	ctx := context.Background()

	g := newGoal(2, 1, "one", date(2025, 1, 1))
	require.NoError(t, goals.Create(ctx, g))

	f := &model.Feedback{GoalID: g.ID, ManagerID: 1, EmployeeID: 2, Content: "Good progress", GivenAt: time.Now().UTC()}
	require.NoError(t, feedback.Create(ctx, f))
	assert.NotZero(t, f.ID)

	got, err := feedback.FeedbackForGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Good progress", got[0].Content)
	assert.Equal(t, int64(1), got[0].ManagerID)
	assert.Equal(t, int64(2), got[0].EmployeeID)
}

func TestFeedbackRepository_CreateReminderGuardsPrefix(t *testing.T) {
	database := dbtest.New(t)
	goals := NewGoalRepository(database)
	feedback := NewFeedbackRepository(database)
	ctx := context.Background()

	g := newGoal(2, 1, "one", date(2024, 1, 1))
	require.NoError(t, goals.Create(ctx, g))

	// Manual feedback does not count as a reminder
	require.NoError(t, feedback.Create(ctx, &model.Feedback{GoalID: g.ID, ManagerID: 1, EmployeeID: 2, Content: "keep going", GivenAt: time.Now().UTC()}))

	reminder := func() *model.Feedback {
		return &model.Feedback{GoalID: g.ID, ManagerID: 1, EmployeeID: 2, Content: model.ReminderPrefix + " late", GivenAt: time.Now().UTC()}
	}

	created, err := feedback.CreateReminder(ctx, reminder(), model.ReminderPrefix)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = feedback.CreateReminder(ctx, reminder(), model.ReminderPrefix)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := feedback.FeedbackForGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFeedbackRepository_CreateReminderPrefixIsCaseSensitive(t *testing.T) {
	database := dbtest.New(t)
	goals := NewGoalRepository(database)
	feedback := NewFeedbackRepository(database)
	ctx := context.Background()

	g := newGoal(2, 1, "one", date(2024, 1, 1))
	require.NoError(t, goals.Create(ctx, g))

	for _, content := range []string{
		"automated reminder: please update",
		"AUTOMATED REMINDER: please update",
		"Automated reminder",
	} {
		require.NoError(t, feedback.Create(ctx, &model.Feedback{GoalID: g.ID, ManagerID: 1, EmployeeID: 2, Content: content, GivenAt: time.Now().UTC()}))
	}

	created, err := feedback.CreateReminder(ctx, &model.Feedback{
		GoalID:     g.ID,
		ManagerID:  1,
		EmployeeID: 2,
		Content:    model.ReminderPrefix + " late",
		GivenAt:    time.Now().UTC(),
	}, model.ReminderPrefix)
	require.NoError(t, err)
	assert.True(t, created, "only an exact prefix match counts as an earlier reminder")
}
