package assessment

import (
	"strings"

	"github.com/google/uuid"
)

// FeedbackQuestion is one survey row: a prompt and its answer options.
// Custom questions are plain text lists; correctness does not apply here.
type FeedbackQuestion struct {
	Text      string   `json:"text"`
	Options   []string `json:"options"`
	IsDefault bool     `json:"isDefault"`
}

// FeedbackDraft layers mutable custom questions over the fixed default
// set. The defaults are never editable and always ship with the form.
type FeedbackDraft struct {
	TrainingID uuid.UUID          `json:"trainingId"`
	Custom     []FeedbackQuestion `json:"customQuestions"`
}

// FeedbackForm is a submitted feedback survey.
type FeedbackForm struct {
	ID         uuid.UUID          `json:"id"`
	TrainingID uuid.UUID          `json:"trainingId"`
	AuthorName string             `json:"authorName"`
	Defaults   []FeedbackQuestion `json:"defaultQuestions"`
	Custom     []FeedbackQuestion `json:"customQuestions"`
}

// DefaultFeedbackQuestions returns the fixed question set every feedback
// form carries.
func DefaultFeedbackQuestions() []FeedbackQuestion {
	return []FeedbackQuestion{
		{Text: "How would you rate your overall experience with this training?", Options: []string{"Excellent", "Good", "Average", "Fair", "Poor"}, IsDefault: true},
		{Text: "Was the content relevant and applicable to your role?", Options: []string{"Yes", "No", "Partially"}, IsDefault: true},
		{Text: "Was the material presented in a clear and understandable way?", Options: []string{"Yes", "No", "Somewhat"}, IsDefault: true},
		{Text: "Did the training meet your expectations?", Options: []string{"Yes", "No", "Partially"}, IsDefault: true},
		{Text: "Was the depth of the content appropriate?", Options: []string{"Appropriate", "Too basic", "Too advanced"}, IsDefault: true},
		{Text: "Was the trainer able to explain concepts clearly?", Options: []string{"Yes", "No", "Somewhat"}, IsDefault: true},
		{Text: "Did the trainer engage participants effectively?", Options: []string{"Yes", "No", "Somewhat"}, IsDefault: true},
		{Text: "Will this training improve your day-to-day job performance?", Options: []string{"Yes", "No", "Maybe"}, IsDefault: true},
		{Text: "Was the pace of the training comfortable?", Options: []string{"Comfortable", "Too fast", "Too slow"}, IsDefault: true},
		{Text: "Were the training materials/resources useful?", Options: []string{"Yes", "No", "Somewhat"}, IsDefault: true},
	}
}

func NewFeedbackDraft() FeedbackDraft {
	return FeedbackDraft{Custom: make([]FeedbackQuestion, 0)}
}

func (b *Builder) Feedback() FeedbackDraft {
	d := b.feedback
	d.Custom = copyFeedbackQuestions(b.feedback.Custom)
	return d
}

func (b *Builder) SetFeedbackTraining(id uuid.UUID) { b.feedback.TrainingID = id }

// AddCustomQuestion appends an empty custom question holding one blank
// option ready for editing.
func (b *Builder) AddCustomQuestion() {
	b.feedback.Custom = append(b.feedback.Custom, FeedbackQuestion{Options: []string{""}})
}

func (b *Builder) RemoveCustomQuestion(i int) error {
	if i < 0 || i >= len(b.feedback.Custom) {
		return ErrIndexOutOfRange
	}
	b.feedback.Custom = append(b.feedback.Custom[:i], b.feedback.Custom[i+1:]...)
	return nil
}

func (b *Builder) SetCustomQuestionText(i int, text string) error {
	if i < 0 || i >= len(b.feedback.Custom) {
		return ErrIndexOutOfRange
	}
	b.feedback.Custom[i].Text = text
	return nil
}

func (b *Builder) AddCustomOption(i int) error {
	if i < 0 || i >= len(b.feedback.Custom) {
		return ErrIndexOutOfRange
	}
	b.feedback.Custom[i].Options = append(b.feedback.Custom[i].Options, "")
	return nil
}

func (b *Builder) SetCustomOption(i, j int, text string) error {
	q, err := b.customOption(i, j)
	if err != nil {
		return err
	}
	q.Options[j] = text
	return nil
}

func (b *Builder) RemoveCustomOption(i, j int) error {
	q, err := b.customOption(i, j)
	if err != nil {
		return err
	}
	q.Options = append(q.Options[:j], q.Options[j+1:]...)
	return nil
}

func (b *Builder) customOption(i, j int) (*FeedbackQuestion, error) {
	if i < 0 || i >= len(b.feedback.Custom) {
		return nil, ErrIndexOutOfRange
	}
	q := &b.feedback.Custom[i]
	if j < 0 || j >= len(q.Options) {
		return nil, ErrIndexOutOfRange
	}
	return q, nil
}

// BuildFeedbackForm requires only a training target; custom questions are
// sanitized rather than rejected. Questions without text are dropped,
// blank options are dropped inside the survivors, and a survivor left with
// no options is dropped too. This leniency is deliberate and differs from
// the assessment form's strict validation. The draft itself is untouched.
func (b *Builder) BuildFeedbackForm(authorName string) (FeedbackForm, error) {
	if b.feedback.TrainingID == uuid.Nil {
		return FeedbackForm{}, ErrNoTrainingSelected
	}

	custom := make([]FeedbackQuestion, 0, len(b.feedback.Custom))
	for _, q := range b.feedback.Custom {
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		opts := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				continue
			}
			opts = append(opts, o)
		}
		if len(opts) == 0 {
			continue
		}
		custom = append(custom, FeedbackQuestion{Text: q.Text, Options: opts})
	}

	return FeedbackForm{
		ID:         uuid.New(),
		TrainingID: b.feedback.TrainingID,
		AuthorName: authorName,
		Defaults:   DefaultFeedbackQuestions(),
		Custom:     custom,
	}, nil
}

// CompleteFeedbackSubmission resets the feedback draft and returns the
// machine to the overview.
func (b *Builder) CompleteFeedbackSubmission() {
	b.feedback = NewFeedbackDraft()
	b.view = ViewOverview
}

// SubmitFeedback builds the sanitized form, then resets the draft.
func (b *Builder) SubmitFeedback(authorName string) (FeedbackForm, error) {
	form, err := b.BuildFeedbackForm(authorName)
	if err != nil {
		return FeedbackForm{}, err
	}
	b.CompleteFeedbackSubmission()
	return form, nil
}

func copyFeedbackQuestions(qs []FeedbackQuestion) []FeedbackQuestion {
	out := make([]FeedbackQuestion, len(qs))
	copy(out, qs)
	for i := range out {
		opts := make([]string, len(out[i].Options))
		copy(opts, out[i].Options)
		out[i].Options = opts
	}
	return out
}
