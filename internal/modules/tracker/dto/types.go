package dto

import "time"

type ProfileInput struct {
	MealType   string
	DailyLimit int
	Goal       string
	Age        int
	WeightKg   int
}

type ImageOutput struct {
	ImageID      string
	Name         string
	Source       string
	DetectedType string
	Width        int
	Height       int
	Bytes        int
	SelectedAt   time.Time
}

type AnalyzeInput struct {
	Profile ProfileInput
}

type AnalysisOutput struct {
	ImageID       string
	MealType      string
	Text          string
	Failed        bool
	Calories      int
	Parsed        bool
	Verdict       string
	Message       string
	Recorded      bool
	RecordID      string
	TotalCalories int
	DailyLimit    int
	Progress      float64
}

type ExerciseInput struct {
	Profile ProfileInput
	// CaloriesToday overrides the session total when set.
	CaloriesToday *int
}

type ExerciseOutput struct {
	Text          string
	Failed        bool
	CaloriesToday int
}

type MealOutput struct {
	ID         string
	RecordedAt time.Time
	MealType   string
	Calories   int
	Analysis   string
}

type SummaryOutput struct {
	TotalCalories int
	History       []MealOutput
}

type ExportInput struct {
	Text string
}

type ExportOutput struct {
	Path        string
	FileName    string
	ContentType string
}
