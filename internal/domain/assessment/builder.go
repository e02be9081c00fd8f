package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// View is the trainer-zone authoring state. The overview is the resting
// state; each sub-form owns one draft that dies on the way back out.
type View string

const (
	ViewOverview       View = "overview"
	ViewAssignmentForm View = "assignmentForm"
	ViewFeedbackForm   View = "feedbackForm"
)

var (
	ErrUnknownView        = errors.New("unknown view")
	ErrUnknownType        = errors.New("unknown question type")
	ErrIndexOutOfRange    = errors.New("no such question or option")
	ErrNoOptionsForType   = errors.New("text questions carry no options")
	ErrNoTrainingSelected = errors.New("select a training for this assessment")
	ErrEmptyTitle         = errors.New("provide a title for this assessment")
	ErrNoQuestions        = errors.New("add at least one question")
	ErrQuestionTextEmpty  = errors.New("every question needs text")
	ErrOptionTextEmpty    = errors.New("every option needs text")
	ErrNoCorrectOption    = errors.New("mark at least one correct answer")
)

// Builder drives the assessment authoring state machine. It is not safe
// for concurrent use; one instance belongs to one authoring session.
type Builder struct {
	view     View
	draft    Draft
	feedback FeedbackDraft
}

func NewBuilder() *Builder {
	return &Builder{view: ViewOverview, feedback: NewFeedbackDraft()}
}

func (b *Builder) View() View { return b.view }

// SetView transitions between the overview and the sub-forms. Entering the
// overview from either form discards both drafts; the forms never share
// partial state across visits.
func (b *Builder) SetView(v View) error {
	switch v {
	case ViewOverview:
		b.draft = Draft{}
		b.feedback = NewFeedbackDraft()
	case ViewAssignmentForm, ViewFeedbackForm:
	default:
		return ErrUnknownView
	}
	b.view = v
	return nil
}

// Draft returns a copy of the in-progress assessment for rendering.
func (b *Builder) Draft() Draft {
	d := b.draft
	d.Questions = copyQuestions(b.draft.Questions)
	return d
}

func (b *Builder) SetTraining(id uuid.UUID) { b.draft.TrainingID = id }
func (b *Builder) SetTitle(title string) { b.draft.Title = title }
func (b *Builder) SetDescription(d string) { b.draft.Description = d }

// AddQuestion appends a fresh single-choice question with two empty
// options, the smallest form that can ever validate.
func (b *Builder) AddQuestion() {
	b.draft.Questions = append(b.draft.Questions, Question{
		Type:    SingleChoice,
		Options: []Option{{}, {}},
	})
}

func (b *Builder) RemoveQuestion(i int) error {
	if i < 0 || i >= len(b.draft.Questions) {
		return ErrIndexOutOfRange
	}
	b.draft.Questions = append(b.draft.Questions[:i], b.draft.Questions[i+1:]...)
	return nil
}

func (b *Builder) SetQuestionText(i int, text string) error {
	if i < 0 || i >= len(b.draft.Questions) {
		return ErrIndexOutOfRange
	}
	b.draft.Questions[i].Text = text
	return nil
}

func (b *Builder) SetHelperText(i int, text string) error {
	if i < 0 || i >= len(b.draft.Questions) {
		return ErrIndexOutOfRange
	}
	b.draft.Questions[i].HelperText = text
	return nil
}

// SetQuestionType re-shapes a question for its new variant as part of the
// transition itself, not at render time: a choice question with no options
// gains two empty ones, a text question sheds its options, and switching to
// single-choice keeps only the first marked answer.
func (b *Builder) SetQuestionType(i int, t QuestionType) error {
	if i < 0 || i >= len(b.draft.Questions) {
		return ErrIndexOutOfRange
	}
	q := &b.draft.Questions[i]

	switch t {
	case SingleChoice, MultipleChoice:
		if len(q.Options) == 0 {
			q.Options = []Option{{}, {}}
		}
	case TextInput:
		q.Options = nil
	default:
		return ErrUnknownType
	}
	q.Type = t

	if t == SingleChoice {
		firstSeen := false
		for j := range q.Options {
			if q.Options[j].IsCorrect {
				if firstSeen {
					q.Options[j].IsCorrect = false
				}
				firstSeen = true
			}
		}
	}
	return nil
}

func (b *Builder) AddOption(i int) error {
	if i < 0 || i >= len(b.draft.Questions) {
		return ErrIndexOutOfRange
	}
	q := &b.draft.Questions[i]
	if !q.Type.IsChoice() {
		return ErrNoOptionsForType
	}
	q.Options = append(q.Options, Option{})
	return nil
}

func (b *Builder) RemoveOption(i, j int) error {
	q, err := b.option(i, j)
	if err != nil {
		return err
	}
	q.Options = append(q.Options[:j], q.Options[j+1:]...)
	return nil
}

func (b *Builder) SetOptionText(i, j int, text string) error {
	q, err := b.option(i, j)
	if err != nil {
		return err
	}
	q.Options[j].Text = text
	return nil
}

// ToggleCorrect flips correctness with the semantics of the rendered
// control: radio for single-choice (the toggled option becomes the only
// correct one), checkbox for multiple-choice (only the toggled option
// flips).
func (b *Builder) ToggleCorrect(i, j int) error {
	q, err := b.option(i, j)
	if err != nil {
		return err
	}
	switch q.Type {
	case SingleChoice:
		for k := range q.Options {
			q.Options[k].IsCorrect = k == j
		}
	case MultipleChoice:
		q.Options[j].IsCorrect = !q.Options[j].IsCorrect
	default:
		return ErrNoOptionsForType
	}
	return nil
}

func (b *Builder) option(i, j int) (*Question, error) {
	if i < 0 || i >= len(b.draft.Questions) {
		return nil, ErrIndexOutOfRange
	}
	q := &b.draft.Questions[i]
	if !q.Type.IsChoice() {
		return nil, ErrNoOptionsForType
	}
	if j < 0 || j >= len(q.Options) {
		return nil, ErrIndexOutOfRange
	}
	return q, nil
}

// Validate checks the draft in submission order, stopping at the first
// failure. Nothing is dropped or repaired; the draft stays as-is so the
// author can fix the reported problem.
func (b *Builder) Validate() error {
	if b.draft.TrainingID == uuid.Nil {
		return ErrNoTrainingSelected
	}
	if strings.TrimSpace(b.draft.Title) == "" {
		return ErrEmptyTitle
	}
	if len(b.draft.Questions) == 0 {
		return ErrNoQuestions
	}
	for i, q := range b.draft.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w (question %d)", ErrQuestionTextEmpty, i+1)
		}
	}
	for _, q := range b.draft.Questions {
		if !q.Type.IsChoice() {
			continue
		}
		for _, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				return fmt.Errorf("%w (question %q)", ErrOptionTextEmpty, q.Text)
			}
		}
	}
	for _, q := range b.draft.Questions {
		if q.Type.IsChoice() && q.correctCount() == 0 {
			return fmt.Errorf("%w for question %q", ErrNoCorrectOption, q.Text)
		}
	}
	return nil
}

// BuildForm validates and snapshots the draft without touching it, so a
// failed persistence attempt leaves the author's work intact.
func (b *Builder) BuildForm(authorName string) (Form, error) {
	if err := b.Validate(); err != nil {
		return Form{}, err
	}
	return Form{
		ID:          uuid.New(),
		TrainingID:  b.draft.TrainingID,
		AuthorName:  authorName,
		Title:       b.draft.Title,
		Description: b.draft.Description,
		Questions:   copyQuestions(b.draft.Questions),
	}, nil
}

// CompleteSubmission clears the draft and returns the machine to the
// overview. Callers invoke it only after the form has been stored.
func (b *Builder) CompleteSubmission() {
	b.draft = Draft{}
	b.view = ViewOverview
}

// Submit validates, hands back the finished form, clears the draft, and
// returns the machine to the overview.
func (b *Builder) Submit(authorName string) (Form, error) {
	form, err := b.BuildForm(authorName)
	if err != nil {
		return Form{}, err
	}
	b.CompleteSubmission()
	return form, nil
}

func copyQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := range out {
		opts := make([]Option, len(out[i].Options))
		copy(opts, out[i].Options)
		out[i].Options = opts
	}
	return out
}

