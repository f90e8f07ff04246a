package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// "total", then "calories", then a digit run, with no digits in either gap.
var totalCaloriesPattern = regexp.MustCompile(`(?i)total\D*?calories\D*?(\d+)`)

// ExtractTotalCalories returns the first total-calories figure in free text.
// It reports false, with 0, when there is no match or the figure overflows.
func ExtractTotalCalories(text string) (int, bool) {
	m := totalCaloriesPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

type Verdict string

const (
	VerdictUnknown   Verdict = ""
	VerdictHealthy   Verdict = "healthy"
	VerdictUnhealthy Verdict = "unhealthy"
)

// Message is the line shown under an analysis for this verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictHealthy:
		return "This meal looks healthy! Keep it up!"
	case VerdictUnhealthy:
		return "This meal may be unhealthy. Consider the suggestions above."
	default:
		return ""
	}
}

// AssessVerdict checks "unhealthy" first since it contains "healthy".
func AssessVerdict(text string) Verdict {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "unhealthy"):
		return VerdictUnhealthy
	case strings.Contains(lower, "healthy"):
		return VerdictHealthy
	default:
		return VerdictUnknown
	}
}

// Progress is total/limit clamped to [0, 1].
func Progress(total, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	p := float64(total) / float64(limit)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
