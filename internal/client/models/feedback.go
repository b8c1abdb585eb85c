package models

// ActivityFeedback is the AI commentary on today's activity entries.
type ActivityFeedback struct {
	ActivityPatterns string `json:"activityPatterns"`
	TimeManagement   string `json:"timeManagement"`
	Suggestions      string `json:"suggestions"`
	Trends           string `json:"trends"`
}

// ThoughtsFeedback is the AI commentary on today's thought entries.
type ThoughtsFeedback struct {
	ThoughtPatterns   string `json:"thoughtPatterns"`
	EmotionalInsights string `json:"emotionalInsights"`
	Suggestions       string `json:"suggestions"`
	Trends            string `json:"trends"`
}

type DailyAchievements struct {
	MajorAchievements string `json:"majorAchievements"`
	SmallWins         string `json:"smallWins"`
	PersonalGrowth    string `json:"personalGrowth"`
	PositivePatterns  string `json:"positivePatterns"`
}
