package domain

import (
	"fmt"
	"strings"
)

const (
	AnalysisErrorPrefix = "Error generating response: "
	ExerciseErrorPrefix = "Error generating exercise recommendations: "
)

// Part is one piece of a multimodal prompt: text, or inline binary data.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

func TextPart(text string) Part { return Part{Text: text} }

func BlobPart(mimeType string, data []byte) Part { return Part{MIMEType: mimeType, Data: data} }

func (p Part) IsBlob() bool { return len(p.Data) > 0 }

// AnalysisInstruction asks for an itemized estimate with a parseable
// "Total Calories" line and a Healthy/Unhealthy verdict.
const AnalysisInstruction = `You are a professional nutritionist. Analyze the food in the image and:
1) List each food item with estimated calorie content.
2) Calculate total calories for the meal.
3) Assess whether the meal is healthy.
4) If unhealthy, provide suggestions to improve it.
Format:
1. Item 1 - XX calories
2. Item 2 - XX calories
----
Total Calories: XXX kcal
Healthy or Unhealthy
Suggestions:
- ...`

func ExercisePrompt(goal string, age, weightKg, caloriesToday int) string {
	return fmt.Sprintf(
		"You are a fitness expert. Based on the user's goal: %s, age: %d years, weight: %d kg, and calories consumed today: %d kcal, "+
			"provide a personalized daily exercise and yoga routine. Include types of exercises, durations, and intensity levels suitable for this profile.",
		goal, age, weightKg, caloriesToday,
	)
}

// FailureText renders an error the way it is shown in place of advice.
func FailureText(prefix string, err error) string {
	return prefix + strings.TrimSpace(err.Error())
}
