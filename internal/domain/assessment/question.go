package assessment

import (
	"github.com/google/uuid"
)

// QuestionType is a closed set. Every transition in the builder switches on
// it exhaustively; there is no fourth case.
type QuestionType string

const (
	SingleChoice   QuestionType = "single-choice"
	MultipleChoice QuestionType = "multiple-choice"
	TextInput      QuestionType = "text-input"
)

func (t QuestionType) Valid() bool {
	switch t {
	case SingleChoice, MultipleChoice, TextInput:
		return true
	default:
		return false
	}
}

// IsChoice reports whether the type carries options at all. TextInput
// questions never do.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultipleChoice
}

type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type Question struct {
	Text       string       `json:"text"`
	HelperText string       `json:"helperText"`
	Type       QuestionType `json:"type"`
	Options    []Option     `json:"options"`
}

// correctCount counts options marked correct. For SingleChoice the builder
// keeps this at most 1 on every mutation, not just at submission.
func (q Question) correctCount() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

// Draft is the single in-progress assessment owned by one authoring
// session. It is created on "start new" and discarded on submit or cancel.
type Draft struct {
	TrainingID  uuid.UUID  `json:"trainingId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Form is a submitted, validated assessment.
type Form struct {
	ID          uuid.UUID  `json:"id"`
	TrainingID  uuid.UUID  `json:"trainingId"`
	AuthorName  string     `json:"authorName"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}
