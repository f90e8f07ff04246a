package dto

type ExportInput struct {
	Text string
}

type ExportOutput struct {
	Path        string
	FileName    string
	ContentType string
	Lines       int
}

type ReadInput struct {
	Path string
}

type ReadOutput struct {
	Path  string
	Pages int
	Lines []string
}
