package models

// ActivityFeedback is the structured commentary over today's activities.
type ActivityFeedback struct {
	ActivityPatterns string `json:"activityPatterns"`
	TimeManagement   string `json:"timeManagement"`
	Suggestions      string `json:"suggestions"`
	Trends           string `json:"trends"`
}

// ThoughtsFeedback is the structured commentary over today's thoughts.
type ThoughtsFeedback struct {
	ThoughtPatterns   string `json:"thoughtPatterns"`
	EmotionalInsights string `json:"emotionalInsights"`
	Suggestions       string `json:"suggestions"`
	Trends            string `json:"trends"`
}

// DailyAchievements highlights wins across all of today's entries.
type DailyAchievements struct {
	MajorAchievements string `json:"majorAchievements"`
	SmallWins         string `json:"smallWins"`
	PersonalGrowth    string `json:"personalGrowth"`
	PositivePatterns  string `json:"positivePatterns"`
}
