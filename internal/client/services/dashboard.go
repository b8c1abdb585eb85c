// Package services contains application services for the MoodLog CLI.
// The dashboard service keeps the session view in step with the server.
package services

import (
	"context"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/client/client"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
	"github.com/dmitrijs2005/moodlog/internal/client/session"
)

// DashboardService applies journal operations on the server and mirrors
// their results in the session state. The state only changes after the
// server accepted the operation.
type DashboardService interface {
	State() *session.State
	Ping(ctx context.Context) error
	Refresh(ctx context.Context) error
	SwitchTab(ctx context.Context, tab string) error
	Create(ctx context.Context, content, mood string) (*models.Entry, error)
	Update(ctx context.Context, id int64, u client.EntryUpdate) (*models.Entry, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Overview(ctx context.Context) (*analytics.Overview, error)
	ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error)
	ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error)
	Achievements(ctx context.Context) (*models.DailyAchievements, error)
}

type dashboardService struct {
	client client.Client
	state  *session.State
}

func NewDashboardService(c client.Client, state *session.State) DashboardService {
	return &dashboardService{client: c, state: state}
}

func (d *dashboardService) State() *session.State {
	return d.state
}

func (d *dashboardService) Ping(ctx context.Context) error {
	return d.client.Ping(ctx)
}

// Refresh reloads the entries of the current tab.
func (d *dashboardService) Refresh(ctx context.Context) error {
	entries, err := d.client.ListEntries(ctx, d.state.Tab())
	if err != nil {
		return err
	}
	d.state.Load(entries)
	return nil
}

func (d *dashboardService) SwitchTab(ctx context.Context, tab string) error {
	if err := d.state.SetTab(tab); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

func (d *dashboardService) Create(ctx context.Context, content, mood string) (*models.Entry, error) {
	e, err := d.client.CreateEntry(ctx, content, mood, d.state.Tab())
	if err != nil {
		return nil, err
	}
	d.state.Prepend(e)
	return e, nil
}

func (d *dashboardService) Update(ctx context.Context, id int64, u client.EntryUpdate) (*models.Entry, error) {
	e, err := d.client.UpdateEntry(ctx, id, u)
	if err != nil {
		return nil, err
	}
	d.state.Replace(e)
	return e, nil
}

func (d *dashboardService) Delete(ctx context.Context, id int64) error {
	if _, err := d.client.DeleteEntry(ctx, id); err != nil {
		return err
	}
	d.state.Remove(id)
	return nil
}

// DeleteAll removes every entry of the current tab.
func (d *dashboardService) DeleteAll(ctx context.Context) error {
	if err := d.client.DeleteAllEntries(ctx, d.state.Tab()); err != nil {
		return err
	}
	d.state.Clear()
	return nil
}

func (d *dashboardService) Overview(ctx context.Context) (*analytics.Overview, error) {
	return d.client.GetOverview(ctx)
}

func (d *dashboardService) ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error) {
	return d.client.GetActivityFeedback(ctx)
}

func (d *dashboardService) ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error) {
	return d.client.GetThoughtsFeedback(ctx)
}

func (d *dashboardService) Achievements(ctx context.Context) (*models.DailyAchievements, error) {
	return d.client.GetDailyAchievements(ctx)
}
