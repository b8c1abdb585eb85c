package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/client/client"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
	"github.com/dmitrijs2005/moodlog/internal/client/services"
	"github.com/dmitrijs2005/moodlog/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboard struct {
	services.DashboardService

	state *session.State

	created    []string
	updatedID  int64
	update     client.EntryUpdate
	deletedID  int64
	deletedAll bool
	err        error

	activity *models.ActivityFeedback
	thoughts *models.ThoughtsFeedback
	wins     *models.DailyAchievements
}

func (f *fakeDashboard) State() *session.State { return f.state }

func (f *fakeDashboard) Refresh(ctx context.Context) error { return f.err }

func (f *fakeDashboard) SwitchTab(ctx context.Context, tab string) error {
	return f.state.SetTab(tab)
}

func (f *fakeDashboard) Create(ctx context.Context, content, mood string) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = []string{content, mood}
	e := &models.Entry{ID: 99, Content: content, Mood: mood}
	f.state.Prepend(e)
	return e, nil
}

func (f *fakeDashboard) Update(ctx context.Context, id int64, u client.EntryUpdate) (*models.Entry, error) {
	f.updatedID = id
	f.update = u
	return &models.Entry{ID: id}, f.err
}

func (f *fakeDashboard) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeDashboard) DeleteAll(ctx context.Context) error {
	f.deletedAll = true
	return f.err
}

func (f *fakeDashboard) Overview(ctx context.Context) (*analytics.Overview, error) {
	return &analytics.Overview{TotalEntries: 3, HappinessRate: 67, MostActiveTime: analytics.Bucket{Name: "Morning", Value: 2}}, f.err
}

func (f *fakeDashboard) ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error) {
	return f.activity, f.err
}

func (f *fakeDashboard) ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error) {
	return f.thoughts, f.err
}

func (f *fakeDashboard) Achievements(ctx context.Context) (*models.DailyAchievements, error) {
	return f.wins, f.err
}

type fakeTokenClient struct {
	client.Client
	token string
}

func (f *fakeTokenClient) SetAccessToken(token string) { f.token = token }

func newTestApp(input string, entries ...*models.Entry) (*App, *fakeDashboard, *bytes.Buffer) {
	st := session.New(5)
	st.Load(entries)
	fd := &fakeDashboard{state: st}
	out := &bytes.Buffer{}
	return &App{
		client:    &fakeTokenClient{},
		dashboard: fd,
		reader:    rdr(input),
		out:       out,
	}, fd, out
}

func TestApp_AddPromptsAndPrepends(t *testing.T) {
	a, fd, out := newTestApp("went running\n\nHappy\n", &models.Entry{ID: 1, Content: "old", Mood: models.MoodSad})

	require.NoError(t, a.Add(context.Background(), nil))

	assert.Equal(t, []string{"went running", "happy"}, fd.created)
	assert.Equal(t, int64(99), fd.state.Visible()[0].ID)
	assert.Contains(t, out.String(), "added entry #99")
}

func TestApp_AddRejectsUnknownMood(t *testing.T) {
	a, fd, out := newTestApp("text\n\nangry\n")

	require.Error(t, a.Add(context.Background(), nil))
	assert.Nil(t, fd.created)
	assert.Contains(t, out.String(), "mood must be")
}

func TestApp_MoodAndEdit(t *testing.T) {
	a, fd, _ := newTestApp("new text\n\n")

	require.NoError(t, a.Mood(context.Background(), []string{"4", "SAD"}))
	assert.Equal(t, int64(4), fd.updatedID)
	require.NotNil(t, fd.update.Mood)
	assert.Equal(t, "sad", *fd.update.Mood)
	assert.Nil(t, fd.update.Content)

	require.NoError(t, a.Edit(context.Background(), []string{"5"}))
	assert.Equal(t, int64(5), fd.updatedID)
	require.NotNil(t, fd.update.Content)
	assert.Equal(t, "new text", *fd.update.Content)

	require.Error(t, a.Mood(context.Background(), []string{"x", "sad"}))
	require.Error(t, a.Edit(context.Background(), nil))
}

func TestApp_DeleteAndDeleteAll(t *testing.T) {
	a, fd, out := newTestApp("no\nyes\n")

	require.NoError(t, a.Delete(context.Background(), []string{"7"}))
	assert.Equal(t, int64(7), fd.deletedID)

	require.NoError(t, a.DeleteAll(context.Background(), nil))
	assert.False(t, fd.deletedAll)
	assert.Contains(t, out.String(), "cancelled")

	require.NoError(t, a.DeleteAll(context.Background(), nil))
	assert.True(t, fd.deletedAll)
}

func TestApp_ErrorsAreReported(t *testing.T) {
	a, fd, out := newTestApp("")
	fd.err = errors.New("server unavailable")

	require.Error(t, a.List(context.Background(), nil))
	assert.Contains(t, out.String(), "server unavailable")
}

func TestApp_FilterSearchAndPaging(t *testing.T) {
	entries := []*models.Entry{
		{ID: 3, Content: "Long walk", Mood: models.MoodHappy},
		{ID: 2, Content: "rain", Mood: models.MoodSad},
		{ID: 1, Content: "walk again", Mood: models.MoodSad},
	}
	a, fd, out := newTestApp("", entries...)

	require.NoError(t, a.Filter(context.Background(), []string{"sad"}))
	require.NoError(t, a.Search(context.Background(), []string{"WALK"}))
	require.Len(t, fd.state.Visible(), 1)
	assert.Equal(t, int64(1), fd.state.Visible()[0].ID)

	require.Error(t, a.Filter(context.Background(), []string{"angry"}))
	require.Error(t, a.Page(context.Background(), []string{"2"}))
	require.NoError(t, a.Next(context.Background(), nil))
	assert.Contains(t, out.String(), "already on the last page")
}

func TestApp_TabAndSelect(t *testing.T) {
	a, fd, out := newTestApp("", &models.Entry{ID: 1, Content: "x", Mood: models.MoodNeutral})

	require.NoError(t, a.Select(context.Background(), []string{"1"}))
	assert.Equal(t, int64(1), fd.state.Selected())
	require.Error(t, a.Select(context.Background(), []string{"8"}))

	require.NoError(t, a.Tab(context.Background(), []string{"Activity"}))
	assert.Equal(t, models.TypeActivity, fd.state.Tab())
	assert.Contains(t, out.String(), "Activities")
	require.Error(t, a.Tab(context.Background(), nil))
}

func TestApp_Overview(t *testing.T) {
	a, _, out := newTestApp("")

	require.NoError(t, a.Overview(context.Background(), nil))
	assert.Contains(t, out.String(), "67%")
	assert.Contains(t, out.String(), "Morning")
}

func TestApp_InsightsShowsFallback(t *testing.T) {
	a, fd, out := newTestApp("")
	fd.activity = &models.ActivityFeedback{
		ActivityPatterns: "Nu ai înregistrat activități astăzi.",
		Suggestions:      "Adaugă o activitate.",
	}

	require.NoError(t, a.Insights(context.Background(), []string{"activity"}))
	assert.Contains(t, out.String(), "Activity insights")
	assert.Contains(t, out.String(), "Nu ai înregistrat activități astăzi.")
	assert.Contains(t, out.String(), "Adaugă o activitate.")
	assert.NotContains(t, out.String(), "Trends", "empty sections are skipped")
}

func TestApp_InsightsKinds(t *testing.T) {
	a, fd, out := newTestApp("")
	fd.thoughts = &models.ThoughtsFeedback{EmotionalInsights: "steady"}
	fd.wins = &models.DailyAchievements{}

	require.NoError(t, a.Insights(context.Background(), []string{"Thoughts"}))
	assert.Contains(t, out.String(), "steady")

	out.Reset()
	require.NoError(t, a.Insights(context.Background(), []string{"achievements"}))
	assert.Contains(t, out.String(), "Today's achievements")
	assert.Contains(t, out.String(), "nothing to report")

	out.Reset()
	require.Error(t, a.Insights(context.Background(), nil))
	assert.Contains(t, out.String(), "usage")

	out.Reset()
	require.Error(t, a.Insights(context.Background(), []string{"dreams"}))
	assert.Contains(t, out.String(), "dreams")
}

func TestApp_InsightsFailureShowsDetails(t *testing.T) {
	a, fd, out := newTestApp("")
	fd.err = &client.GenerationError{Message: "Failed to get daily achievements", Details: "model unreachable"}

	err := a.Insights(context.Background(), []string{"achievements"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Failed to get daily achievements")
	assert.Contains(t, out.String(), "model unreachable")
	assert.NotContains(t, out.String(), "Today's achievements")

	out.Reset()
	fd.err = client.ErrUnavailable
	require.ErrorIs(t, a.Insights(context.Background(), []string{"activity"}), client.ErrUnavailable)
	assert.Contains(t, out.String(), "server unavailable")
}

func TestApp_Token(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("new-token"), nil }

	a, _, _ := newTestApp("")

	require.NoError(t, a.Token(context.Background(), nil))
	assert.Equal(t, "new-token", a.client.(*fakeTokenClient).token)
}
