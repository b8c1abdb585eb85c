package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moodlog/internal/client/client"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
)

var errUsage = errors.New("usage")

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints err and returns it so the REPL can ignore it.
func (a *App) report(err error) error {
	if err != nil {
		a.println(errorStyle.Render(err.Error()))
	}
	return err
}

func (a *App) show() {
	a.println(renderPage(a.dashboard.State()))
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", args[0])
	}
	return id, nil
}

func parseMood(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	if !models.ValidMood(m) {
		return "", fmt.Errorf("mood must be happy, neutral or sad")
	}
	return m, nil
}

func (a *App) Ping(ctx context.Context, args []string) error {
	if err := a.dashboard.Ping(ctx); err != nil {
		return a.report(err)
	}
	a.println("server is up")
	return nil
}

func (a *App) List(ctx context.Context, args []string) error {
	if err := a.dashboard.Refresh(ctx); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Tab(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.report(fmt.Errorf("usage: tab thoughts|activity"))
	}
	if err := a.dashboard.SwitchTab(ctx, strings.ToLower(args[0])); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Next(ctx context.Context, args []string) error {
	if !a.dashboard.State().NextPage() {
		a.println(dimStyle.Render("already on the last page"))
	}
	a.show()
	return nil
}

func (a *App) Prev(ctx context.Context, args []string) error {
	if !a.dashboard.State().PrevPage() {
		a.println(dimStyle.Render("already on the first page"))
	}
	a.show()
	return nil
}

func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.report(fmt.Errorf("usage: page <n>"))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !a.dashboard.State().GoToPage(n) {
		return a.report(fmt.Errorf("no page %q", args[0]))
	}
	a.show()
	return nil
}

func (a *App) Filter(ctx context.Context, args []string) error {
	filter := "all"
	if len(args) > 0 {
		filter = args[0]
	}
	if err := a.dashboard.State().SetFilter(filter); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	a.dashboard.State().SetQuery(strings.Join(args, " "))
	a.show()
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.report(fmt.Errorf("usage: select <id>"))
	}
	if !a.dashboard.State().Select(id) {
		return a.report(fmt.Errorf("entry %d is not in the list", id))
	}
	a.show()
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return a.report(err)
	}
	moodText, err := GetSimpleText(a.reader, "Mood (happy, neutral, sad)", a.out)
	if err != nil {
		return a.report(err)
	}
	mood, err := parseMood(moodText)
	if err != nil {
		return a.report(err)
	}

	e, err := a.dashboard.Create(ctx, content, mood)
	if err != nil {
		return a.report(err)
	}
	a.println(fmt.Sprintf("added entry #%d", e.ID))
	a.show()
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.report(fmt.Errorf("usage: edit <id>"))
	}
	content, err := GetMultiline(a.reader, "New content", a.out)
	if err != nil {
		return a.report(err)
	}

	if _, err := a.dashboard.Update(ctx, id, client.EntryUpdate{Content: &content}); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Mood(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.report(fmt.Errorf("usage: mood <id> happy|neutral|sad"))
	}
	id, err := parseID(args)
	if err != nil {
		return a.report(err)
	}
	mood, err := parseMood(args[1])
	if err != nil {
		return a.report(err)
	}

	if _, err := a.dashboard.Update(ctx, id, client.EntryUpdate{Mood: &mood}); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.report(fmt.Errorf("usage: delete <id>"))
	}
	if err := a.dashboard.Delete(ctx, id); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) DeleteAll(ctx context.Context, args []string) error {
	tab := a.dashboard.State().Tab()
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete every %s entry? (yes/no)", tab), a.out)
	if err != nil {
		return a.report(err)
	}
	if !strings.EqualFold(answer, "yes") {
		a.println("cancelled")
		return nil
	}
	if err := a.dashboard.DeleteAll(ctx); err != nil {
		return a.report(err)
	}
	a.show()
	return nil
}

func (a *App) Overview(ctx context.Context, args []string) error {
	o, err := a.dashboard.Overview(ctx)
	if err != nil {
		return a.report(err)
	}
	a.println(renderOverview(o))
	return nil
}

// Insights asks the server for AI feedback on today's entries.
func (a *App) Insights(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.report(errors.New("usage: insights activity|thoughts|achievements"))
	}

	var (
		out string
		err error
	)
	switch strings.ToLower(args[0]) {
	case "activity", "activities":
		var f *models.ActivityFeedback
		if f, err = a.dashboard.ActivityFeedback(ctx); err == nil {
			out = renderActivityFeedback(f)
		}
	case "thoughts":
		var f *models.ThoughtsFeedback
		if f, err = a.dashboard.ThoughtsFeedback(ctx); err == nil {
			out = renderThoughtsFeedback(f)
		}
	case "achievements", "wins":
		var w *models.DailyAchievements
		if w, err = a.dashboard.Achievements(ctx); err == nil {
			out = renderAchievements(w)
		}
	default:
		return a.report(fmt.Errorf("unknown insight %q, use activity, thoughts or achievements", args[0]))
	}

	var ge *client.GenerationError
	if errors.As(err, &ge) {
		a.println(errorStyle.Render(ge.Message))
		if ge.Details != "" {
			a.println(dimStyle.Render("  " + ge.Details))
		}
		return err
	}
	if err != nil {
		return a.report(err)
	}
	a.println(out)
	return nil
}

// Token asks for a new access token and uses it for later calls.
func (a *App) Token(ctx context.Context, args []string) error {
	ts, ok := a.client.(tokenSetter)
	if !ok {
		return a.report(errors.New("client does not accept tokens"))
	}
	tok, err := GetToken(a.out)
	if err != nil {
		return a.report(err)
	}
	ts.SetAccessToken(tok)
	return a.List(ctx, nil)
}
