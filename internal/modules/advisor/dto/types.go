package dto

type AnalyzeInput struct {
	ImageID   string
	MIMEType  string
	ImageData []byte
}

type ExerciseInput struct {
	Goal          string
	Age           int
	WeightKg      int
	CaloriesToday int
}

// AdviceOutput always carries displayable text. Failed marks text that is a
// formatted service error rather than model output.
type AdviceOutput struct {
	Text   string
	Failed bool
}
