package usecase

import (
	"context"
	"errors"

	"comptrack/internal/domain/assessment"
	"comptrack/internal/repository"

	"github.com/google/uuid"
)

// BuilderAction is one edit applied to a trainer's draft. Index fields are
// ignored by actions that do not need them.
type BuilderAction struct {
	Action        string `json:"action"`
	QuestionIndex int    `json:"questionIndex"`
	OptionIndex   int    `json:"optionIndex"`
	Text          string `json:"text"`
	QuestionType  string `json:"questionType"`
	TrainingID    string `json:"trainingId"`
	View          string `json:"view"`
}

type BuilderState struct {
	View     assessment.View               `json:"view"`
	Draft    assessment.Draft              `json:"draft"`
	Feedback assessment.FeedbackDraft      `json:"feedback"`
	Defaults []assessment.FeedbackQuestion `json:"defaultQuestions"`
}

type BuilderUsecase interface {
	State(ctx context.Context, userID uuid.UUID) (BuilderState, error)
	Apply(ctx context.Context, userID uuid.UUID, action BuilderAction) (BuilderState, error)
	SubmitAssessment(ctx context.Context, userID uuid.UUID) (assessment.Form, error)
	SubmitFeedback(ctx context.Context, userID uuid.UUID) (assessment.FeedbackForm, error)
}

type FormBuilder struct {
	drafts    *DraftStore
	forms     repository.AssessmentRepository
	trainings repository.TrainingRepository
	users     repository.UserRepository
}

func NewBuilderUsecase(drafts *DraftStore, forms repository.AssessmentRepository, trainings repository.TrainingRepository, users repository.UserRepository) *FormBuilder {
	return &FormBuilder{drafts: drafts, forms: forms, trainings: trainings, users: users}
}

func (u *FormBuilder) State(_ context.Context, userID uuid.UUID) (BuilderState, error) {
	return stateOf(u.drafts.Get(userID)), nil
}

func (u *FormBuilder) Apply(ctx context.Context, userID uuid.UUID, action BuilderAction) (BuilderState, error) {
	b := u.drafts.Get(userID)

	var err error
	switch action.Action {
	case "setView":
		err = b.SetView(assessment.View(action.View))
	case "setTraining":
		var id uuid.UUID
		id, err = uuid.Parse(action.TrainingID)
		if err != nil {
			return BuilderState{}, ErrInvalidInput
		}
		if _, err = u.trainings.GetByID(ctx, id); err != nil {
			return BuilderState{}, err
		}
		b.SetTraining(id)
	case "setTitle":
		b.SetTitle(action.Text)
	case "setDescription":
		b.SetDescription(action.Text)
	case "addQuestion":
		b.AddQuestion()
	case "removeQuestion":
		err = b.RemoveQuestion(action.QuestionIndex)
	case "setQuestionText":
		err = b.SetQuestionText(action.QuestionIndex, action.Text)
	case "setHelperText":
		err = b.SetHelperText(action.QuestionIndex, action.Text)
	case "setQuestionType":
		err = b.SetQuestionType(action.QuestionIndex, assessment.QuestionType(action.QuestionType))
	case "addOption":
		err = b.AddOption(action.QuestionIndex)
	case "removeOption":
		err = b.RemoveOption(action.QuestionIndex, action.OptionIndex)
	case "setOptionText":
		err = b.SetOptionText(action.QuestionIndex, action.OptionIndex, action.Text)
	case "toggleCorrect":
		err = b.ToggleCorrect(action.QuestionIndex, action.OptionIndex)
	case "setFeedbackTraining":
		var id uuid.UUID
		id, err = uuid.Parse(action.TrainingID)
		if err != nil {
			return BuilderState{}, ErrInvalidInput
		}
		if _, err = u.trainings.GetByID(ctx, id); err != nil {
			return BuilderState{}, err
		}
		b.SetFeedbackTraining(id)
	case "addCustomQuestion":
		b.AddCustomQuestion()
	case "removeCustomQuestion":
		err = b.RemoveCustomQuestion(action.QuestionIndex)
	case "setCustomQuestionText":
		err = b.SetCustomQuestionText(action.QuestionIndex, action.Text)
	case "addCustomOption":
		err = b.AddCustomOption(action.QuestionIndex)
	case "setCustomOption":
		err = b.SetCustomOption(action.QuestionIndex, action.OptionIndex, action.Text)
	case "removeCustomOption":
		err = b.RemoveCustomOption(action.QuestionIndex, action.OptionIndex)
	case "discard":
		u.drafts.Discard(userID)
		return stateOf(u.drafts.Get(userID)), nil
	default:
		return BuilderState{}, ErrInvalidInput
	}

	if err != nil {
		return BuilderState{}, err
	}
	return stateOf(b), nil
}

func (u *FormBuilder) SubmitAssessment(ctx context.Context, userID uuid.UUID) (assessment.Form, error) {
	b := u.drafts.Get(userID)

	author, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return assessment.Form{}, ErrInternal
	}

	form, err := b.BuildForm(author.DisplayName)
	if err != nil {
		return assessment.Form{}, err
	}

	// Persist first; a storage failure must leave the draft recoverable.
	if err := u.forms.SaveForm(ctx, userID, form); err != nil {
		return assessment.Form{}, ErrInternal
	}
	b.CompleteSubmission()
	return form, nil
}

func (u *FormBuilder) SubmitFeedback(ctx context.Context, userID uuid.UUID) (assessment.FeedbackForm, error) {
	b := u.drafts.Get(userID)

	author, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return assessment.FeedbackForm{}, ErrInternal
	}

	form, err := b.BuildFeedbackForm(author.DisplayName)
	if err != nil {
		return assessment.FeedbackForm{}, err
	}

	if err := u.forms.SaveFeedbackForm(ctx, userID, form); err != nil {
		return assessment.FeedbackForm{}, ErrInternal
	}
	b.CompleteFeedbackSubmission()
	return form, nil
}

// IsDraftError reports whether the error came from the draft state machine
// rather than infrastructure, so handlers can answer 400 instead of 500.
func IsDraftError(err error) bool {
	for _, sentinel := range []error{
		assessment.ErrUnknownView,
		assessment.ErrUnknownType,
		assessment.ErrIndexOutOfRange,
		assessment.ErrNoOptionsForType,
		assessment.ErrNoTrainingSelected,
		assessment.ErrEmptyTitle,
		assessment.ErrNoQuestions,
		assessment.ErrQuestionTextEmpty,
		assessment.ErrOptionTextEmpty,
		assessment.ErrNoCorrectOption,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func stateOf(b *assessment.Builder) BuilderState {
	return BuilderState{
		View:     b.View(),
		Draft:    b.Draft(),
		Feedback: b.Feedback(),
		Defaults: assessment.DefaultFeedbackQuestions(),
	}
}
