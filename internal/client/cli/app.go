package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/moodlog/internal/client/client"
	"github.com/dmitrijs2005/moodlog/internal/client/config"
	"github.com/dmitrijs2005/moodlog/internal/client/services"
	"github.com/dmitrijs2005/moodlog/internal/client/session"
)

// tokenSetter is implemented by clients whose access token can change at
// runtime.
type tokenSetter interface {
	SetAccessToken(token string)
}

type App struct {
	config    *config.Config
	client    client.Client
	dashboard services.DashboardService
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewJournalClient(c.ServerEndpointAddr, c.AccessToken, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	ds := services.NewDashboardService(apiClient, session.New(c.PageSize))

	return &App{
		config:    c,
		client:    apiClient,
		dashboard: ds,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			log.Println(err.Error())
		}
	}()

	a.Root(ctx)
}

func (a *App) status() string {
	s := a.dashboard.State()
	return tabTitle(s.Tab())
}
