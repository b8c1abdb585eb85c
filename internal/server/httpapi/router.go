// Package httpapi exposes the journal over HTTP/JSON using gin.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/services"
	"github.com/gin-gonic/gin"
)

// EntryService is the entry operation boundary used by the handlers.
type EntryService interface {
	Create(ctx context.Context, e models.NewEntry) services.Result[*models.Entry]
	List(ctx context.Context, entryType models.EntryType) services.Result[[]*models.Entry]
	Update(ctx context.Context, id int64, patch models.EntryPatch) services.Result[*models.Entry]
	Delete(ctx context.Context, id int64) services.Result[*models.Entry]
	DeleteAll(ctx context.Context, entryType models.EntryType) services.Result[bool]
}

type OverviewService interface {
	Get(ctx context.Context) services.Result[analytics.Overview]
}

type FeedbackService interface {
	ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error)
	ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error)
	DailyAchievements(ctx context.Context) (*models.DailyAchievements, error)
}

// Handler holds the services behind the HTTP routes.
type Handler struct {
	entries  EntryService
	overview OverviewService
	feedback FeedbackService
	logger   logging.Logger
}

func NewHandler(es EntryService, ovs OverviewService, fs FeedbackService, l logging.Logger) *Handler {
	return &Handler{
		entries:  es,
		overview: ovs,
		feedback: fs,
		logger:   l.With("module", "http"),
	}
}

// NewRouter wires the routes. A non-empty jwtSecret puts every /api route
// behind the access token check.
func NewRouter(h *Handler, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(h.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if len(jwtSecret) > 0 {
		api.Use(AuthMiddleware(jwtSecret))
	}

	api.GET("/ai/get-ai-activity-feedback", h.GetActivityFeedback)
	api.GET("/ai/get-thoughts-ai-feedback", h.GetThoughtsFeedback)
	api.GET("/ai/get-daily-achievements", h.GetDailyAchievements)

	api.POST("/entries", h.CreateEntry)
	api.GET("/entries", h.ListEntries)
	api.PATCH("/entries/:id", h.UpdateEntry)
	api.DELETE("/entries/:id", h.DeleteEntry)
	api.DELETE("/entries", h.DeleteAllEntries)

	api.GET("/overview", h.GetOverview)

	return r
}
