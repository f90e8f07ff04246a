package domain

import "time"

// TimestampLayout is how meal times are shown in history and exports.
const TimestampLayout = "2006-01-02 15:04:05"

type SelectedImage struct {
	ID         string
	Name       string
	Source     string
	MIMEType   string
	Data       []byte
	SelectedAt time.Time
}

// MealRecord is immutable once appended.
type MealRecord struct {
	ID         string
	RecordedAt time.Time
	MealType   string
	Calories   int
	Analysis   string
}

// State is the transient per-process session. TotalCalories only grows.
type State struct {
	ID            string
	StartedAt     time.Time
	Image         *SelectedImage
	TotalCalories int
	Records       []MealRecord
}

// MostRecentFirst returns at most limit records, newest first. A limit of
// zero or less returns every record.
func MostRecentFirst(records []MealRecord, limit int) []MealRecord {
	n := len(records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]MealRecord, 0, n)
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out
}
