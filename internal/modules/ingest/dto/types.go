package dto

import "time"

type UploadInput struct {
	Path string
}

type NormalizeInput struct {
	Name   string
	Source string
	Data   []byte
}

type ImageOutput struct {
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
