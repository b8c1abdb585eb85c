package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
	"github.com/dmitrijs2005/moodlog/internal/client/session"
)

var (
	colorHappy   = lipgloss.Color("#22c55e")
	colorNeutral = lipgloss.Color("#eab308")
	colorSad     = lipgloss.Color("#ef4444")
	colorSubtext = lipgloss.Color("#908caa")
	colorAccent  = lipgloss.Color("#c4a7e7")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle    = lipgloss.NewStyle().Foreground(colorSubtext)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSad)
	selectStyle = lipgloss.NewStyle().Bold(true)
)

func moodStyle(mood string) lipgloss.Style {
	switch mood {
	case models.MoodHappy:
		return lipgloss.NewStyle().Foreground(colorHappy)
	case models.MoodSad:
		return lipgloss.NewStyle().Foreground(colorSad)
	default:
		return lipgloss.NewStyle().Foreground(colorNeutral)
	}
}

func renderEntry(e *models.Entry, selected bool) string {
	line := fmt.Sprintf("#%-4d %s %s  %s  %s",
		e.ID, e.Date, e.Time,
		moodStyle(e.Mood).Render(fmt.Sprintf("%-7s", e.Mood)),
		e.Content)
	if selected {
		return selectStyle.Render("> " + line)
	}
	return "  " + line
}

func tabTitle(tab string) string {
	if tab == models.TypeActivity {
		return "Activities"
	}
	return "Thoughts"
}

// renderPage renders the visible page of the session with a header and a
// pager line.
func renderPage(s *session.State) string {
	var b strings.Builder

	header := tabTitle(s.Tab())
	if s.Filter() != session.FilterAll {
		header += " [" + s.Filter() + "]"
	}
	if s.Query() != "" {
		header += fmt.Sprintf(" search %q", s.Query())
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	visible := s.Visible()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  no entries"))
		b.WriteString("\n")
	}
	for _, e := range visible {
		b.WriteString(renderEntry(e, e.ID == s.Selected()))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("page %d/%d, %d shown of %d",
		s.Page(), s.TotalPages(), len(s.Filtered()), s.Len())))
	return b.String()
}

func renderBuckets(title string, buckets []analytics.Bucket) string {
	parts := make([]string, 0, len(buckets))
	for _, bk := range buckets {
		parts = append(parts, fmt.Sprintf("%s %d", bk.Name, bk.Value))
	}
	return fmt.Sprintf("  %-12s %s", title, strings.Join(parts, ", "))
}

func renderTypeOverview(title string, t analytics.TypeOverview) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-12s %d (%s %d, %s %d, %s %d), %.1f per day\n",
		"total", t.Stats.Total,
		moodStyle(models.MoodHappy).Render("happy"), t.Stats.Happy,
		moodStyle(models.MoodNeutral).Render("neutral"), t.Stats.Neutral,
		moodStyle(models.MoodSad).Render("sad"), t.Stats.Sad,
		t.Stats.AvgPerDay)
	b.WriteString(renderBuckets("moods", t.Moods))
	b.WriteString("\n")
	b.WriteString(renderBuckets("time of day", t.TimeOfDay))
	b.WriteString("\n")

	days := make([]string, 0, len(t.Weekly))
	for _, d := range t.Weekly {
		days = append(days, fmt.Sprintf("%s %d", d.Day, d.Count))
	}
	fmt.Fprintf(&b, "  %-12s %s", "this week", strings.Join(days, ", "))
	return b.String()
}

func renderOverview(o *analytics.Overview) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-12s %d\n", "entries", o.TotalEntries)
	fmt.Fprintf(&b, "  %-12s %d%%\n", "happiness", o.HappinessRate)
	fmt.Fprintf(&b, "  %-12s %.1f\n", "daily avg", o.DailyAverage)
	fmt.Fprintf(&b, "  %-12s %s\n", "most active", o.MostActiveTime.Name)
	b.WriteString(renderTypeOverview("Thoughts", o.Thoughts))
	b.WriteString("\n")
	b.WriteString(renderTypeOverview("Activities", o.Activities))
	return b.String()
}

type insightSection struct {
	label string
	text  string
}

// renderInsights prints the non-empty sections under title.
func renderInsights(title string, sections []insightSection) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))

	shown := 0
	for _, s := range sections {
		if strings.TrimSpace(s.text) == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(selectStyle.Render("  " + s.label))
		b.WriteString("\n    ")
		b.WriteString(s.text)
		shown++
	}
	if shown == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  nothing to report"))
	}
	return b.String()
}

func renderActivityFeedback(f *models.ActivityFeedback) string {
	return renderInsights("Activity insights", []insightSection{
		{"Patterns", f.ActivityPatterns},
		{"Time management", f.TimeManagement},
		{"Suggestions", f.Suggestions},
		{"Trends", f.Trends},
	})
}

func renderThoughtsFeedback(f *models.ThoughtsFeedback) string {
	return renderInsights("Thought insights", []insightSection{
		{"Patterns", f.ThoughtPatterns},
		{"Emotional insights", f.EmotionalInsights},
		{"Suggestions", f.Suggestions},
		{"Trends", f.Trends},
	})
}

func renderAchievements(a *models.DailyAchievements) string {
	return renderInsights("Today's achievements", []insightSection{
		{"Major achievements", a.MajorAchievements},
		{"Small wins", a.SmallWins},
		{"Personal growth", a.PersonalGrowth},
		{"Positive patterns", a.PositivePatterns},
	})
}
