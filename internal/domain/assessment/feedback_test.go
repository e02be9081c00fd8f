package assessment

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDefaultFeedbackQuestions_FixedSet(t *testing.T) {
	defaults := DefaultFeedbackQuestions()
	if len(defaults) != 10 {
		t.Fatalf("expected 10 default questions, got %d", len(defaults))
	}
	for i, q := range defaults {
		if !q.IsDefault {
			t.Fatalf("question %d not flagged default", i)
		}
		if len(q.Options) == 0 {
			t.Fatalf("question %d has no options", i)
		}
	}
}

func TestAddCustomQuestion_StartsWithOneBlankOption(t *testing.T) {
	b := NewBuilder()
	b.AddCustomQuestion()
	f := b.Feedback()
	if len(f.Custom) != 1 || len(f.Custom[0].Options) != 1 || f.Custom[0].Options[0] != "" {
		t.Fatalf("unexpected fresh custom question: %+v", f.Custom)
	}
}

func TestSubmitFeedback_RequiresTraining(t *testing.T) {
	b := NewBuilder()
	if _, err := b.SubmitFeedback("Jane"); !errors.Is(err, ErrNoTrainingSelected) {
		t.Fatalf("expected ErrNoTrainingSelected, got %v", err)
	}
}

func TestSubmitFeedback_SanitizesInsteadOfRejecting(t *testing.T) {
	b := NewBuilder()
	b.SetFeedbackTraining(uuid.New())

	// Question with text and one empty option among real ones.
	b.AddCustomQuestion()
	_ = b.SetCustomQuestionText(0, "Was the room comfortable?")
	_ = b.SetCustomOption(0, 0, "Yes")
	_ = b.AddCustomOption(0)
	_ = b.AddCustomOption(0)
	_ = b.SetCustomOption(0, 2, "No")

	// Question with no text: dropped wholesale.
	b.AddCustomQuestion()
	_ = b.SetCustomOption(1, 0, "Orphan option")

	// Question whose options are all blank: dropped after sanitizing.
	b.AddCustomQuestion()
	_ = b.SetCustomQuestionText(2, "Ghost question")

	form, err := b.SubmitFeedback("Jane")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(form.Custom) != 1 {
		t.Fatalf("expected 1 surviving custom question, got %d", len(form.Custom))
	}
	q := form.Custom[0]
	if q.Text != "Was the room comfortable?" {
		t.Fatalf("unexpected survivor: %+v", q)
	}
	if len(q.Options) != 2 || q.Options[0] != "Yes" || q.Options[1] != "No" {
		t.Fatalf("blank option not stripped: %+v", q.Options)
	}
	if len(form.Defaults) != 10 {
		t.Fatalf("defaults missing from form: %d", len(form.Defaults))
	}
}

func TestSubmitFeedback_ResetsDraftAndView(t *testing.T) {
	b := NewBuilder()
	_ = b.SetView(ViewFeedbackForm)
	b.SetFeedbackTraining(uuid.New())
	b.AddCustomQuestion()

	if _, err := b.SubmitFeedback("Jane"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b.View() != ViewOverview {
		t.Fatalf("expected overview, got %s", b.View())
	}
	if f := b.Feedback(); f.TrainingID != uuid.Nil || len(f.Custom) != 0 {
		t.Fatalf("feedback draft not reset: %+v", f)
	}
}

func TestRemoveCustomOption_PreservesSiblings(t *testing.T) {
	b := NewBuilder()
	b.AddCustomQuestion()
	_ = b.SetCustomOption(0, 0, "first")
	_ = b.AddCustomOption(0)
	_ = b.SetCustomOption(0, 1, "second")
	_ = b.AddCustomOption(0)
	_ = b.SetCustomOption(0, 2, "third")

	if err := b.RemoveCustomOption(0, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	opts := b.Feedback().Custom[0].Options
	if len(opts) != 2 || opts[0] != "first" || opts[1] != "third" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestRemoveCustomQuestion_OutOfRange(t *testing.T) {
	b := NewBuilder()
	if err := b.RemoveCustomQuestion(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}
