package assessment

import (
	"errors"
	"sync"
	"time"
)

// State is a phase of the assessment flow.
type State string

const (
	StateIntro         State = "intro"
	StateLearningStyle State = "learning_style"
	StateKnowledgeTest State = "knowledge_test"
	StateResults       State = "results"
	StateDone          State = "done"
)

var (
	ErrWrongState      = errors.New("action not allowed in current state")
	ErrFlowDone        = errors.New("flow already completed")
	ErrUnknownQuestion = errors.New("question id not in current phase")
)

// Flow sequences one assessment attempt: intro → learning style → knowledge
// test → results. A flow is single-use; after Complete it accepts nothing.
// Recording an answer and advancing the cursor is one atomic step.
type Flow struct {
	mu sync.Mutex

	subject     string
	state       State
	styleQs     []LearningStyleQuestion
	knowledgeQs []DiagnosticQuestion
	cursor      int
	responses   *ResponseSet

	startedAt time.Time
	elapsed   int
	results   *Results

	now func() time.Time
}

// NewFlow validates the question bank and returns a flow in the intro state.
func NewFlow(subject string, knowledgeQs []DiagnosticQuestion, styleQs []LearningStyleQuestion) (*Flow, error) {
	if err := ValidateKnowledgeQuestions(knowledgeQs); err != nil {
		return nil, err
	}
	if err := ValidateStyleQuestions(styleQs); err != nil {
		return nil, err
	}
	return &Flow{
		subject:     subject,
		state:       StateIntro,
		styleQs:     styleQs,
		knowledgeQs: knowledgeQs,
		responses:   NewResponseSet(),
		now:         time.Now,
	}, nil
}

func (f *Flow) Subject() string {
	return f.subject
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Start moves intro → learning style.
func (f *Flow) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIntro {
		return ErrWrongState
	}
	f.state = StateLearningStyle
	f.cursor = 0
	return nil
}

// Skip terminates the flow from intro and hands back the caller-supplied
// defaults untouched. The scoring engine is never invoked.
func (f *Flow) Skip(defaultStyle LearningStyle, defaultLevel KnowledgeLevel) (LearningStyle, KnowledgeLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIntro {
		return LearningStyle{}, KnowledgeLevel{}, ErrWrongState
	}
	f.state = StateDone
	return defaultStyle, defaultLevel, nil
}

// CurrentQuestion returns the question the cursor points at, or nil when the
// flow is not in a question phase.
func (f *Flow) CurrentQuestion() (styleQ *LearningStyleQuestion, knowledgeQ *DiagnosticQuestion) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateLearningStyle:
		if f.cursor < len(f.styleQs) {
			q := f.styleQs[f.cursor]
			return &q, nil
		}
	case StateKnowledgeTest:
		if f.cursor < len(f.knowledgeQs) {
			q := f.knowledgeQs[f.cursor]
			return nil, &q
		}
	}
	return nil, nil
}

// SubmitAnswer records an answer for the current phase and advances the
// cursor. Answering the same question twice overwrites. Crossing the end of
// the style list starts the knowledge test and its timer; crossing the end of
// the knowledge list freezes the elapsed time and enters results.
func (f *Flow) SubmitAnswer(questionID string, optionIndex int) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateLearningStyle:
		if !containsStyleQuestion(f.styleQs, questionID) {
			return f.state, ErrUnknownQuestion
		}
		f.responses.StyleAnswers[questionID] = optionIndex
		if f.cursor < len(f.styleQs) {
			f.cursor++
		}
		if f.cursor >= len(f.styleQs) {
			f.state = StateKnowledgeTest
			f.cursor = 0
			// Monotonic reading; the timer starts when the first
			// knowledge question is shown.
			f.startedAt = f.now()
		}
		return f.state, nil

	case StateKnowledgeTest:
		if !containsKnowledgeQuestion(f.knowledgeQs, questionID) {
			return f.state, ErrUnknownQuestion
		}
		f.responses.KnowledgeAnswers[questionID] = optionIndex
		if f.cursor < len(f.knowledgeQs) {
			f.cursor++
		}
		if f.cursor >= len(f.knowledgeQs) {
			f.freezeElapsedLocked()
			f.state = StateResults
		}
		return f.state, nil

	case StateDone:
		return f.state, ErrFlowDone
	default:
		return f.state, ErrWrongState
	}
}

// Results scores the attempt. Called before all knowledge questions are
// answered it still produces a valid result, treating unanswered questions
// as incorrect. The computation runs once; re-entry returns the same values
// with the elapsed time frozen, never recomputed.
func (f *Flow) Results() (*Results, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateDone:
		if f.results == nil {
			return nil, ErrFlowDone
		}
	case StateResults:
		// fall through to compute or return memoized results
	case StateKnowledgeTest, StateLearningStyle:
		// Availability over completion gating: force the transition.
		f.freezeElapsedLocked()
		f.state = StateResults
	default:
		return nil, ErrWrongState
	}

	if f.results == nil {
		result := ComputeAssessmentResult(f.responses.KnowledgeAnswers, f.knowledgeQs, f.elapsed)
		f.results = &Results{
			LearningStyle:    ComputeLearningStyle(f.responses.StyleAnswers, f.styleQs),
			AssessmentResult: result,
			KnowledgeLevel:   DeriveKnowledgeLevel(result),
		}
	}
	return f.results, nil
}

// Complete hands the computed results to the caller and retires the flow.
func (f *Flow) Complete() (*Results, error) {
	res, err := f.Results()
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateDone {
		return nil, ErrFlowDone
	}
	f.state = StateDone
	return res, nil
}

// Progress reports the cursor position and phase length for the current
// question phase.
func (f *Flow) Progress() (answered, total int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateLearningStyle:
		return f.cursor, len(f.styleQs)
	case StateKnowledgeTest:
		return f.cursor, len(f.knowledgeQs)
	default:
		return 0, 0
	}
}

// ElapsedSeconds reports the running timer during the knowledge test and the
// frozen value afterwards.
func (f *Flow) ElapsedSeconds() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateKnowledgeTest && !f.startedAt.IsZero() {
		return int(f.now().Sub(f.startedAt).Seconds())
	}
	return f.elapsed
}

func (f *Flow) freezeElapsedLocked() {
	if !f.startedAt.IsZero() {
		f.elapsed = int(f.now().Sub(f.startedAt).Seconds())
	}
}

func containsStyleQuestion(qs []LearningStyleQuestion, id string) bool {
	for _, q := range qs {
		if q.ID == id {
			return true
		}
	}
	return false
}

func containsKnowledgeQuestion(qs []DiagnosticQuestion, id string) bool {
	for _, q := range qs {
		if q.ID == id {
			return true
		}
	}
	return false
}
