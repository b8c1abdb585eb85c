package analytics

import (
	"time"

	"github.com/dmitrijs2005/moodlog/internal/server/models"
)

// TypeOverview holds every aggregate of a single entry type.
type TypeOverview struct {
	Stats     Stats       `json:"stats"`
	Moods     []Bucket    `json:"moods"`
	Weekly    []DayBucket `json:"weekly"`
	TimeOfDay []Bucket    `json:"timeOfDay"`
}

// Overview is the dashboard data for thoughts and activities together.
type Overview struct {
	Thoughts       TypeOverview `json:"thoughts"`
	Activities     TypeOverview `json:"activities"`
	TotalEntries   int          `json:"totalEntries"`
	HappinessRate  int          `json:"happinessRate"`
	DailyAverage   float64      `json:"dailyAverage"`
	MostActiveTime Bucket       `json:"mostActiveTime"`
}

func buildTypeOverview(entries []*models.Entry, now time.Time, weekStart time.Weekday) TypeOverview {
	return TypeOverview{
		Stats:     Summarize(entries),
		Moods:     MoodDistribution(entries),
		Weekly:    WeeklyTrend(entries, now, weekStart),
		TimeOfDay: TimeOfDay(entries),
	}
}

// BuildOverview aggregates both entry lists and derives the cross-type values.
func BuildOverview(thoughts, activities []*models.Entry, now time.Time, weekStart time.Weekday) Overview {
	t := buildTypeOverview(thoughts, now, weekStart)
	a := buildTypeOverview(activities, now, weekStart)

	return Overview{
		Thoughts:       t,
		Activities:     a,
		TotalEntries:   t.Stats.Total + a.Stats.Total,
		HappinessRate:  HappinessRate(t.Stats, a.Stats),
		DailyAverage:   DailyAverage(t.Stats, a.Stats),
		MostActiveTime: MostActiveTime(t.TimeOfDay, a.TimeOfDay),
	}
}
