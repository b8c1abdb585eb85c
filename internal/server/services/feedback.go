package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/llm"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodlog/internal/timex"
)

// FeedbackKind names one of the generated analyses.
type FeedbackKind string

const (
	KindActivity     FeedbackKind = "activity"
	KindThoughts     FeedbackKind = "thoughts"
	KindAchievements FeedbackKind = "achievements"
)

type feedbackSpec struct {
	kind     FeedbackKind
	types    []models.EntryType
	line     func(e *models.Entry) string
	template string
	schema   llm.Schema
}

func datedLine(e *models.Entry) string {
	return fmt.Sprintf("Date: %s, Time: %s, Content: %s, Mood: %s", e.Date, e.Time, e.Content, e.Mood)
}

func typedLine(e *models.Entry) string {
	return fmt.Sprintf("Type: %s, Time: %s, Content: %s, Mood: %s", e.Type, e.Time, e.Content, e.Mood)
}

var (
	activitySpec = feedbackSpec{
		kind:     KindActivity,
		types:    []models.EntryType{models.TypeActivity},
		line:     datedLine,
		template: activityPrompt,
		schema: llm.Schema{
			Name:   "activity_feedback",
			Fields: []string{"activityPatterns", "timeManagement", "suggestions", "trends"},
		},
	}
	thoughtsSpec = feedbackSpec{
		kind:     KindThoughts,
		types:    []models.EntryType{models.TypeThoughts},
		line:     datedLine,
		template: thoughtsPrompt,
		schema: llm.Schema{
			Name:   "thoughts_feedback",
			Fields: []string{"thoughtPatterns", "emotionalInsights", "suggestions", "trends"},
		},
	}
	achievementsSpec = feedbackSpec{
		kind:     KindAchievements,
		types:    []models.EntryType{models.TypeActivity, models.TypeThoughts},
		line:     typedLine,
		template: achievementsPrompt,
		schema: llm.Schema{
			Name:   "daily_achievements",
			Fields: []string{"majorAchievements", "smallWins", "personalGrowth", "positivePatterns"},
		},
	}
)

// buildPrompt renders entries (newest first) into the analysis template.
func (f feedbackSpec) buildPrompt(entries []*models.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = f.line(e)
	}
	return fmt.Sprintf(f.template, strings.Join(lines, "\n"))
}

// FeedbackService produces the AI analyses of today's entries.
type FeedbackService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   llm.Generator
	location    *time.Location
	logger      logging.Logger
	now         func() time.Time
}

func NewFeedbackService(db *sql.DB, m repomanager.RepositoryManager, generator llm.Generator, location *time.Location, logger logging.Logger) *FeedbackService {
	return &FeedbackService{
		db:          db,
		repomanager: m,
		generator:   generator,
		location:    location,
		logger:      logger.With("module", "feedback"),
		now:         time.Now,
	}
}

// runFeedback fetches today's entries for spec and asks the model for an
// analysis. With no entries it returns fallback without calling the model.
func runFeedback[T any](ctx context.Context, s *FeedbackService, spec feedbackSpec, fallback T) (*T, error) {
	today := timex.StartOfDay(s.now(), s.location)

	list, err := s.repomanager.Entries(s.db).ListByTypesSince(ctx, spec.types, today)
	if err != nil {
		s.logger.Error(ctx, "failed to load entries for feedback", "kind", spec.kind, "error", err)
		return nil, err
	}

	if len(list) == 0 {
		s.logger.Debug(ctx, "no entries today, returning fallback", "kind", spec.kind)
		return &fallback, nil
	}

	var out T
	s.logger.Info(ctx, "generating feedback", "kind", spec.kind, "entries", len(list))
	if err := s.generator.Generate(ctx, spec.buildPrompt(list), spec.schema, &out); err != nil {
		s.logger.Error(ctx, "feedback generation failed", "kind", spec.kind, "error", err)
		return nil, err
	}
	return &out, nil
}

// ActivityFeedback analyses today's activities.
func (s *FeedbackService) ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error) {
	return runFeedback(ctx, s, activitySpec, models.ActivityFeedback{ActivityPatterns: NoActivitiesMessage})
}

// ThoughtsFeedback analyses today's thoughts.
func (s *FeedbackService) ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error) {
	return runFeedback(ctx, s, thoughtsSpec, models.ThoughtsFeedback{ThoughtPatterns: NoThoughtsMessage})
}

// DailyAchievements highlights wins across all of today's entries.
func (s *FeedbackService) DailyAchievements(ctx context.Context) (*models.DailyAchievements, error) {
	return runFeedback(ctx, s, achievementsSpec, models.DailyAchievements{MajorAchievements: NoEntriesMessage})
}
