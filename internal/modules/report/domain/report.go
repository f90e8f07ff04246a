package domain

import (
	"strings"
	"time"
)

const (
	ContentType    = "application/pdf"
	FileNamePrefix = "meal_report_"
	FileNameLayout = "20060102_150405"
)

// Document is one exported analysis: one paragraph per input line.
type Document struct {
	FileName string
	Lines    []string
}

func FileName(at time.Time) string {
	return FileNamePrefix + at.Format(FileNameLayout) + ".pdf"
}

// SplitLines splits on newlines only; long lines are left to the renderer.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func NewDocument(at time.Time, text string) Document {
	return Document{FileName: FileName(at), Lines: SplitLines(text)}
}
