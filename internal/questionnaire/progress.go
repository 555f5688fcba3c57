package questionnaire

import "github.com/ARROM2405/hero-search-bot/internal/models"

// Progress is the derived position in the questionnaire for one user. It is
// computed from the stored answer keys each time, never persisted.
type Progress struct {
	// Current is the first key in question order without a stored answer.
	Current models.QuestionKey
	// Next is the second missing key, empty when Current is the last one.
	Next models.QuestionKey
	// Done reports that every key has an answer; Current and Next are empty.
	Done bool
}

// ComputeProgress derives the current and next question from the stored
// answer set per the fixed question order.
func ComputeProgress(answers map[models.QuestionKey]string) Progress {
	var missing []models.QuestionKey
	for _, key := range models.QuestionOrder {
		if _, ok := answers[key]; !ok {
			missing = append(missing, key)
		}
	}
	switch len(missing) {
	case 0:
		return Progress{Done: true}
	case 1:
		return Progress{Current: missing[0]}
	default:
		return Progress{Current: missing[0], Next: missing[1]}
	}
}
