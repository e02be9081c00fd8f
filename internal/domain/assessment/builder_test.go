package assessment

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func readyBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder()
	if err := b.SetView(ViewAssignmentForm); err != nil {
		t.Fatalf("set view: %v", err)
	}
	b.SetTraining(uuid.New())
	b.SetTitle("Python Basics Check")
	return b
}

func TestAddQuestion_StartsWithTwoEmptyOptions(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()

	d := b.Draft()
	if len(d.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(d.Questions))
	}
	q := d.Questions[0]
	if q.Type != SingleChoice {
		t.Fatalf("expected single-choice default, got %s", q.Type)
	}
	if len(q.Options) != 2 || q.Options[0].Text != "" || q.Options[1].Text != "" {
		t.Fatalf("expected two empty options, got %+v", q.Options)
	}
}

func TestRemoveQuestion_LeavesSiblingsIntact(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	b.AddQuestion()
	b.AddQuestion()
	_ = b.SetQuestionText(0, "first")
	_ = b.SetQuestionText(1, "second")
	_ = b.SetQuestionText(2, "third")

	if err := b.RemoveQuestion(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	d := b.Draft()
	if len(d.Questions) != 2 || d.Questions[0].Text != "first" || d.Questions[1].Text != "third" {
		t.Fatalf("unexpected questions after removal: %+v", d.Questions)
	}
}

func TestRemoveQuestion_OutOfRange(t *testing.T) {
	b := readyBuilder(t)
	if err := b.RemoveQuestion(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSetQuestionType_TextToChoicePopulatesOptions(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	if err := b.SetQuestionType(0, TextInput); err != nil {
		t.Fatalf("to text: %v", err)
	}
	if got := b.Draft().Questions[0].Options; len(got) != 0 {
		t.Fatalf("text question kept options: %+v", got)
	}
	if err := b.SetQuestionType(0, MultipleChoice); err != nil {
		t.Fatalf("to choice: %v", err)
	}
	if got := b.Draft().Questions[0].Options; len(got) != 2 {
		t.Fatalf("expected two auto-populated options, got %d", len(got))
	}
}

func TestSetQuestionType_SwitchToSingleChoiceKeepsFirstCorrect(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionType(0, MultipleChoice)
	_ = b.SetOptionText(0, 0, "A")
	_ = b.SetOptionText(0, 1, "B")
	_ = b.ToggleCorrect(0, 0)
	_ = b.ToggleCorrect(0, 1)

	if err := b.SetQuestionType(0, SingleChoice); err != nil {
		t.Fatalf("switch: %v", err)
	}
	q := b.Draft().Questions[0]
	if !q.Options[0].IsCorrect || q.Options[1].IsCorrect {
		t.Fatalf("expected only first option correct, got %+v", q.Options)
	}
}

func TestSetQuestionType_Unknown(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	if err := b.SetQuestionType(0, QuestionType("essay")); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestToggleCorrect_RadioSemantics(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.ToggleCorrect(0, 0)
	_ = b.ToggleCorrect(0, 1)

	q := b.Draft().Questions[0]
	if q.Options[0].IsCorrect || !q.Options[1].IsCorrect {
		t.Fatalf("radio toggle broke exclusivity: %+v", q.Options)
	}
}

func TestToggleCorrect_CheckboxSemantics(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionType(0, MultipleChoice)
	_ = b.ToggleCorrect(0, 0)
	_ = b.ToggleCorrect(0, 1)
	_ = b.ToggleCorrect(0, 1)

	q := b.Draft().Questions[0]
	if !q.Options[0].IsCorrect || q.Options[1].IsCorrect {
		t.Fatalf("checkbox toggle mismatch: %+v", q.Options)
	}
}

func TestToggleCorrect_TextInputRejected(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionType(0, TextInput)
	if err := b.ToggleCorrect(0, 0); !errors.Is(err, ErrNoOptionsForType) {
		t.Fatalf("expected ErrNoOptionsForType, got %v", err)
	}
}

func TestValidate_OrderOfFailures(t *testing.T) {
	b := NewBuilder()
	_ = b.SetView(ViewAssignmentForm)

	if err := b.Validate(); !errors.Is(err, ErrNoTrainingSelected) {
		t.Fatalf("expected training failure first, got %v", err)
	}
	b.SetTraining(uuid.New())
	if err := b.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected title failure, got %v", err)
	}
	b.SetTitle("Check")
	if err := b.Validate(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected question-count failure, got %v", err)
	}
	b.AddQuestion()
	if err := b.Validate(); !errors.Is(err, ErrQuestionTextEmpty) {
		t.Fatalf("expected question-text failure, got %v", err)
	}
	_ = b.SetQuestionText(0, "What is a slice?")
	if err := b.Validate(); !errors.Is(err, ErrOptionTextEmpty) {
		t.Fatalf("expected option-text failure, got %v", err)
	}
	_ = b.SetOptionText(0, 0, "A view into an array")
	_ = b.SetOptionText(0, 1, "A linked list")
	if err := b.Validate(); !errors.Is(err, ErrNoCorrectOption) {
		t.Fatalf("expected correctness failure, got %v", err)
	}
	_ = b.ToggleCorrect(0, 0)
	if err := b.Validate(); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

func TestValidate_NoCorrectOptionNamesTheQuestion(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionText(0, "Which keyword declares a constant?")
	_ = b.SetOptionText(0, 0, "const")
	_ = b.SetOptionText(0, 1, "let")

	err := b.Validate()
	if !errors.Is(err, ErrNoCorrectOption) {
		t.Fatalf("expected ErrNoCorrectOption, got %v", err)
	}
	if !strings.Contains(err.Error(), "Which keyword declares a constant?") {
		t.Fatalf("message does not identify the question: %v", err)
	}
}

func TestValidate_TextInputNeedsNoOptions(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionText(0, "Explain interfaces.")
	_ = b.SetQuestionType(0, TextInput)

	if err := b.Validate(); err != nil {
		t.Fatalf("text question should validate without options: %v", err)
	}
}

func TestValidate_FailureLeavesDraftUntouched(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	before := b.Draft()

	if err := b.Validate(); err == nil {
		t.Fatalf("expected validation failure")
	}
	after := b.Draft()
	if len(after.Questions) != len(before.Questions) || after.Title != before.Title {
		t.Fatalf("validation mutated the draft")
	}
}

func TestSubmit_ClearsDraftAndReturnsToOverview(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	_ = b.SetQuestionText(0, "Q1")
	_ = b.SetOptionText(0, 0, "A")
	_ = b.SetOptionText(0, 1, "B")
	_ = b.ToggleCorrect(0, 0)

	form, err := b.Submit("Jane Doe")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if form.Title != "Python Basics Check" || len(form.Questions) != 1 {
		t.Fatalf("unexpected form: %+v", form)
	}
	if form.AuthorName != "Jane Doe" {
		t.Fatalf("unexpected author: %s", form.AuthorName)
	}
	if b.View() != ViewOverview {
		t.Fatalf("expected overview after submit, got %s", b.View())
	}
	if d := b.Draft(); d.Title != "" || len(d.Questions) != 0 {
		t.Fatalf("draft not cleared: %+v", d)
	}
}

func TestSetView_OverviewResetsDrafts(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	b.SetFeedbackTraining(uuid.New())
	b.AddCustomQuestion()

	if err := b.SetView(ViewOverview); err != nil {
		t.Fatalf("set view: %v", err)
	}
	if d := b.Draft(); d.TrainingID != uuid.Nil || len(d.Questions) != 0 {
		t.Fatalf("assignment draft survived: %+v", d)
	}
	if f := b.Feedback(); f.TrainingID != uuid.Nil || len(f.Custom) != 0 {
		t.Fatalf("feedback draft survived: %+v", f)
	}
}

func TestSetView_Unknown(t *testing.T) {
	b := NewBuilder()
	if err := b.SetView(View("editor")); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
}

func TestDraft_ReturnsACopy(t *testing.T) {
	b := readyBuilder(t)
	b.AddQuestion()
	d := b.Draft()
	d.Questions[0].Text = "mutated"

	if b.Draft().Questions[0].Text == "mutated" {
		t.Fatalf("Draft exposed internal state")
	}
}
