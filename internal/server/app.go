// Package server initializes and runs the MoodLog server.
// It opens storage, applies migrations, builds the services and serves
// the HTTP and gRPC surfaces until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/dbx"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/config"
	"github.com/dmitrijs2005/moodlog/internal/server/httpapi"
	"github.com/dmitrijs2005/moodlog/internal/server/llm"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodlog/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/moodlog/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	entryService    *services.EntryService
	overviewService *services.OverviewService
	feedbackService *services.FeedbackService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	location, err := c.Location()
	if err != nil {
		return nil, err
	}

	weekStart, err := c.WeekStartDay()
	if err != nil {
		return nil, err
	}

	db, dialect, err := dbx.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.New(dialect)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	generator := llm.NewOpenAIClient(llm.OpenAIConfig{
		BaseURL: c.OpenAIBaseURL,
		APIKey:  c.OpenAIAPIKey,
		Model:   c.OpenAIModel,
		Timeout: c.LLMTimeout,
	})

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		entryService:    services.NewEntryService(db, rm, location, logger),
		overviewService: services.NewOverviewService(db, rm, location, weekStart, logger),
		feedbackService: services.NewFeedbackService(db, rm, generator, location, logger),
	}, nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := httpapi.NewHandler(app.entryService, app.overviewService, app.feedbackService, app.logger)
	router := httpapi.NewRouter(h, []byte(app.config.SecretKey))

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, router)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.entryService, app.overviewService, app.feedbackService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	gin.SetMode(gin.ReleaseMode)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.db.Close(); err != nil {
		app.logger.Error(closeCtx, "db close error", "error", err)
	}
	app.logger.Info(closeCtx, "App stopped")
}
