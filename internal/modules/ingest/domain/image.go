package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// AnalysisMIMEType is the label sent with every image, whatever its real format.
const AnalysisMIMEType = "image/jpeg"

// MaxImageBytes matches the inline payload limit of the analysis service.
const MaxImageBytes = 20 << 20

type Source string

const (
	SourceCamera Source = "camera"
	SourceUpload Source = "upload"
)

var AcceptedExtensions = []string{".jpg", ".jpeg", ".png"}

type MealImage struct {
	ID           string
	Name         string
	Source       Source
	MIMEType     string
	DetectedType string
	Width        int
	Height       int
	Data         []byte
	SelectedAt   time.Time
}

func (m MealImage) Size() int { return len(m.Data) }

// AcceptsExtension reports whether the file name has an accepted upload extension.
func AcceptsExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
