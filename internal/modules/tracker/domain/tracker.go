package domain

import "time"

type Image struct {
	ID           string
	Name         string
	Source       string
	MIMEType     string
	DetectedType string
	Width        int
	Height       int
	Data         []byte
	SelectedAt   time.Time
}

type Advice struct {
	Text   string
	Failed bool
}

type Meal struct {
	ID         string
	RecordedAt time.Time
	MealType   string
	Calories   int
	Analysis   string
}

type Analysis struct {
	ImageID       string
	MealType      MealType
	Advice        Advice
	Calories      int
	Parsed        bool
	Verdict       Verdict
	Record        *Meal
	TotalCalories int
	DailyLimit    int
}

type ExportedReport struct {
	Path        string
	FileName    string
	ContentType string
}
