package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrConfiguration    = errors.New("configuration error")
	ErrImageProcessing  = errors.New("error processing image")
	ErrAIService        = errors.New("ai service error")
	ErrExport           = errors.New("export failed")
	ErrNoImageSelected  = errors.New("no image selected")
	ErrAnalysisInFlight = errors.New("analysis already in flight")
)
