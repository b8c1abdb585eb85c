// Package analytics turns lists of journal entries into chart-ready
// aggregates. Every function is pure; "now" is always passed in.
package analytics

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/server/models"
)

// Bucket is one named count of a distribution.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// NoData is returned by MostActiveTime when nothing was recorded.
var NoData = Bucket{Name: "No data", Value: 0}

// DayBucket holds the counts for one calendar day of a weekly trend.
type DayBucket struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Count   int    `json:"count"`
	Happy   int    `json:"happy"`
	Neutral int    `json:"neutral"`
	Sad     int    `json:"sad"`
}

// Stats summarizes a list of entries of one type.
type Stats struct {
	Total     int     `json:"total"`
	Happy     int     `json:"happy"`
	Neutral   int     `json:"neutral"`
	Sad       int     `json:"sad"`
	AvgPerDay float64 `json:"avgPerDay"`
}

// Time-of-day slot names.
const (
	SlotMorning   = "Morning"
	SlotAfternoon = "Afternoon"
	SlotEvening   = "Evening"
)

func moodLabel(m models.Mood) string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MoodDistribution counts entries per mood, always returning the happy,
// neutral and sad buckets in that order.
func MoodDistribution(entries []*models.Entry) []Bucket {
	counts := make(map[models.Mood]int, len(models.Moods))
	for _, e := range entries {
		counts[e.Mood]++
	}

	result := make([]Bucket, 0, len(models.Moods))
	for _, m := range models.Moods {
		result = append(result, Bucket{Name: moodLabel(m), Value: counts[m]})
	}
	return result
}

// StartOfWeek returns local midnight of the first day of the week that
// contains now.
func StartOfWeek(now time.Time, weekStart time.Weekday) time.Time {
	offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
	y, m, d := now.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
}

func entryDate(e *models.Entry) (string, bool) {
	if d, err := time.Parse(models.DateLayout, e.Date); err == nil {
		return d.Format(models.DateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t.Format(models.DateLayout), true
	}
	return "", false
}

// WeeklyTrend returns seven buckets, one per day of the week containing
// now. Entries are matched on their calendar date, not their timestamps.
func WeeklyTrend(entries []*models.Entry, now time.Time, weekStart time.Weekday) []DayBucket {
	start := StartOfWeek(now, weekStart)

	result := make([]DayBucket, 7)
	index := make(map[string]int, 7)
	for i := range result {
		day := start.AddDate(0, 0, i)
		key := day.Format(models.DateLayout)
		result[i] = DayBucket{Date: key, Day: day.Format("Mon")}
		index[key] = i
	}

	for _, e := range entries {
		key, ok := entryDate(e)
		if !ok {
			continue
		}
		i, ok := index[key]
		if !ok {
			continue
		}
		b := &result[i]
		b.Count++
		switch e.Mood {
		case models.MoodHappy:
			b.Happy++
		case models.MoodNeutral:
			b.Neutral++
		case models.MoodSad:
			b.Sad++
		}
	}
	return result
}

// Slot maps an "HH:MM" clock string to its time-of-day slot. A time
// whose hour cannot be parsed lands in the evening.
func Slot(clock string) string {
	h, _, _ := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	switch {
	case err != nil:
		return SlotEvening
	case hour < 12:
		return SlotMorning
	case hour < 17:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

// TimeOfDay counts entries per slot. Empty input yields an empty slice.
func TimeOfDay(entries []*models.Entry) []Bucket {
	if len(entries) == 0 {
		return []Bucket{}
	}

	result := []Bucket{{Name: SlotMorning}, {Name: SlotAfternoon}, {Name: SlotEvening}}
	for _, e := range entries {
		switch Slot(e.Time) {
		case SlotMorning:
			result[0].Value++
		case SlotAfternoon:
			result[1].Value++
		default:
			result[2].Value++
		}
	}
	return result
}

// Summarize counts entries per mood. AvgPerDay always divides by seven.
func Summarize(entries []*models.Entry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		switch e.Mood {
		case models.MoodHappy:
			s.Happy++
		case models.MoodNeutral:
			s.Neutral++
		case models.MoodSad:
			s.Sad++
		}
	}
	s.AvgPerDay = float64(s.Total) / 7
	return s
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// HappinessRate is the share of happy entries across both summaries as a
// whole percentage. It is 0 when there are no entries.
func HappinessRate(a, b Stats) int {
	total := a.Total + b.Total
	if total == 0 {
		return 0
	}
	return int(roundHalfUp(float64(a.Happy+b.Happy) / float64(total) * 100))
}

// DailyAverage adds both per-day averages, rounded to one decimal.
func DailyAverage(a, b Stats) float64 {
	return roundHalfUp((a.AvgPerDay+b.AvgPerDay)*10) / 10
}

// MostActiveTime returns the bucket with the highest count across all
// distributions. Ties keep the first one seen; NoData when all are zero.
func MostActiveTime(distributions ...[]Bucket) Bucket {
	best := NoData
	for _, dist := range distributions {
		for _, b := range dist {
			if b.Value > best.Value {
				best = b
			}
		}
	}
	return best
}
