package dto

import "time"

type ImageInput struct {
	ID         string
	Name       string
	Source     string
	MIMEType   string
	Data       []byte
	SelectedAt time.Time
}

type ImageOutput struct {
	ID         string
	Name       string
	Source     string
	MIMEType   string
	Data       []byte
	SelectedAt time.Time
}

type AppendInput struct {
	MealType string
	Calories int
	Analysis string
}

type RecordOutput struct {
	ID         string
	RecordedAt time.Time
	MealType   string
	Calories   int
	Analysis   string
}

type SummaryOutput struct {
	SessionID     string
	StartedAt     time.Time
	TotalCalories int
	MealCount     int
	HasImage      bool
	ImageName     string
}
