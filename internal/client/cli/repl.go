package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type command func(ctx context.Context, args []string) error

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	Ping(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Tab(ctx context.Context, args []string) error
	Next(ctx context.Context, args []string) error
	Prev(ctx context.Context, args []string) error
	Page(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Mood(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	DeleteAll(ctx context.Context, args []string) error
	Overview(ctx context.Context, args []string) error
	Insights(ctx context.Context, args []string) error
	Token(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  (l)ist                 reload and show the current tab
  tab thoughts|activity  switch tab
  (n)ext, (p)rev, page N move between pages
  filter all|happy|neutral|sad
  search [text]          filter by content, empty clears
  select ID              highlight an entry
  add, edit ID, mood ID MOOD, delete ID, clear
  (o)verview             statistics for both tabs
  insights activity|thoughts|achievements
                         AI feedback on today's entries
  token                  enter a new access token
  ping, exit`

func commands(a execIface) map[string]command {
	return map[string]command{
		"ping":     a.Ping,
		"l":        a.List,
		"list":     a.List,
		"tab":      a.Tab,
		"n":        a.Next,
		"next":     a.Next,
		"p":        a.Prev,
		"prev":     a.Prev,
		"page":     a.Page,
		"filter":   a.Filter,
		"search":   a.Search,
		"select":   a.Select,
		"add":      a.Add,
		"edit":     a.Edit,
		"mood":     a.Mood,
		"delete":   a.Delete,
		"clear":    a.DeleteAll,
		"o":        a.Overview,
		"overview": a.Overview,
		"insights": a.Insights,
		"token":    a.Token,
	}
}

// runREPL reads a line from reader, parses the first token as the command
// and dispatches the rest as its arguments. The loop exits on EOF or on
// "exit" / "quit". Command errors are reported by the commands themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := commands(a)

	for {
		printlnFn(fmt.Sprintf("moodlog (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := strings.ToLower(parts[0])

		switch name {
		case "help":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := cmds[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		_ = cmd(ctx, parts[1:])
	}
}

// Root greets the user, loads the first page and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to MoodLog (type 'help' for commands)")

	_ = a.List(ctx, nil)

	runREPL(ctx, a, a.status, a.reader)
}
