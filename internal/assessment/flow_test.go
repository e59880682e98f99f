package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	f, err := NewFlow("Matemática", KnowledgeQuestions("Matemática"), LearningStyleQuestions())
	require.NoError(t, err)
	return f
}

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func answerAllStyle(t *testing.T, f *Flow) {
	t.Helper()
	for _, q := range LearningStyleQuestions() {
		_, err := f.SubmitAnswer(q.ID, 0)
		require.NoError(t, err)
	}
}

func answerAllKnowledge(t *testing.T, f *Flow, idx int) {
	t.Helper()
	for _, q := range KnowledgeQuestions("Matemática") {
		_, err := f.SubmitAnswer(q.ID, idx)
		require.NoError(t, err)
	}
}

func TestFlow_HappyPath(t *testing.T) {
	f := newTestFlow(t)
	assert.Equal(t, StateIntro, f.State())

	require.NoError(t, f.Start())
	assert.Equal(t, StateLearningStyle, f.State())

	styleQ, knowledgeQ := f.CurrentQuestion()
	require.NotNil(t, styleQ)
	assert.Nil(t, knowledgeQ)
	assert.Equal(t, "ls1", styleQ.ID)

	answerAllStyle(t, f)
	assert.Equal(t, StateKnowledgeTest, f.State())

	styleQ, knowledgeQ = f.CurrentQuestion()
	assert.Nil(t, styleQ)
	require.NotNil(t, knowledgeQ)
	assert.Equal(t, "1", knowledgeQ.ID)

	answerAllKnowledge(t, f, 0)
	assert.Equal(t, StateResults, f.State())

	res, err := f.Results()
	require.NoError(t, err)
	assert.Equal(t, 3, res.AssessmentResult.TotalQuestions)

	res2, err := f.Complete()
	require.NoError(t, err)
	assert.Same(t, res, res2)
	assert.Equal(t, StateDone, f.State())
}

func TestFlow_StartTwiceFails(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())
	assert.ErrorIs(t, f.Start(), ErrWrongState)
}

func TestFlow_SkipReturnsDefaultsUntouched(t *testing.T) {
	f := newTestFlow(t)

	defStyle := LearningStyle{Visual: 25, Auditory: 25, Kinesthetic: 25, ReadingWriting: 25, DominantStyle: Visual}
	defLevel := KnowledgeLevel{Overall: Beginner, Topics: map[string]Level{}, ConfidenceScore: 0}

	style, level, err := f.Skip(defStyle, defLevel)
	require.NoError(t, err)
	assert.Equal(t, defStyle, style)
	assert.Equal(t, defLevel, level)
	assert.Equal(t, StateDone, f.State())

	// A skipped flow has no computed results.
	_, err = f.Results()
	assert.ErrorIs(t, err, ErrFlowDone)
}

func TestFlow_SkipOnlyFromIntro(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())

	_, _, err := f.Skip(LearningStyle{}, KnowledgeLevel{})
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestFlow_SubmitBeforeStartFails(t *testing.T) {
	f := newTestFlow(t)
	_, err := f.SubmitAnswer("ls1", 0)
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestFlow_UnknownQuestionRejected(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())

	// Knowledge-phase IDs are not valid during the style phase.
	_, err := f.SubmitAnswer("1", 0)
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	// Cursor did not move.
	answered, total := f.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 4, total)
}

func TestFlow_Progress(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())

	answered, total := f.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 4, total)

	_, err := f.SubmitAnswer("ls1", 1)
	require.NoError(t, err)
	answered, total = f.Progress()
	assert.Equal(t, 1, answered)
	assert.Equal(t, 4, total)

	answerAllStyle(t, f)
	answered, total = f.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 3, total)
}

func TestFlow_ElapsedTimeFrozenInResults(t *testing.T) {
	f := newTestFlow(t)
	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	f.now = clock.now

	require.NoError(t, f.Start())
	answerAllStyle(t, f)
	assert.Equal(t, StateKnowledgeTest, f.State())

	clock.advance(90 * time.Second)
	assert.Equal(t, 90, f.ElapsedSeconds())

	answerAllKnowledge(t, f, 0)

	res, err := f.Results()
	require.NoError(t, err)
	assert.Equal(t, 90, res.AssessmentResult.TimeTakenSeconds)

	// Time keeps passing; the frozen value does not.
	clock.advance(5 * time.Minute)
	assert.Equal(t, 90, f.ElapsedSeconds())

	res2, err := f.Results()
	require.NoError(t, err)
	assert.Same(t, res, res2)
	assert.Equal(t, 90, res2.AssessmentResult.TimeTakenSeconds)
}

func TestFlow_ResultsBeforeFinishingStillScores(t *testing.T) {
	f := newTestFlow(t)
	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	f.now = clock.now

	require.NoError(t, f.Start())
	answerAllStyle(t, f)

	clock.advance(30 * time.Second)
	_, err := f.SubmitAnswer("1", 0)
	require.NoError(t, err)

	// Two knowledge questions still open; they count as incorrect.
	res, err := f.Results()
	require.NoError(t, err)
	assert.Equal(t, StateResults, f.State())
	assert.Equal(t, 1, res.AssessmentResult.CorrectAnswers)
	assert.Equal(t, 3, res.AssessmentResult.TotalQuestions)
	assert.Equal(t, 30, res.AssessmentResult.TimeTakenSeconds)
}

func TestFlow_ReanswerOverwrites(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())

	_, err := f.SubmitAnswer("ls1", 0)
	require.NoError(t, err)
	_, err = f.SubmitAnswer("ls1", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, f.responses.StyleAnswers["ls1"])
}

func TestFlow_SingleUse(t *testing.T) {
	f := newTestFlow(t)
	require.NoError(t, f.Start())
	answerAllStyle(t, f)
	answerAllKnowledge(t, f, 0)

	_, err := f.Complete()
	require.NoError(t, err)

	_, err = f.SubmitAnswer("1", 0)
	assert.ErrorIs(t, err, ErrFlowDone)
	_, err = f.Complete()
	assert.ErrorIs(t, err, ErrFlowDone)
	assert.ErrorIs(t, f.Start(), ErrWrongState)

	// Results stay readable after completion.
	res, err := f.Results()
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestFlow_ResultsFromIntroFails(t *testing.T) {
	f := newTestFlow(t)
	_, err := f.Results()
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestNewFlow_RejectsBrokenBank(t *testing.T) {
	bad := []DiagnosticQuestion{{ID: "x", Options: []string{"a"}, CorrectAnswer: 0}}
	_, err := NewFlow("Matemática", bad, LearningStyleQuestions())
	assert.Error(t, err)

	badStyle := []LearningStyleQuestion{{ID: "s", Options: []StyleOption{{Text: "a", Category: Visual}}}}
	_, err = NewFlow("Matemática", KnowledgeQuestions("Matemática"), badStyle)
	assert.Error(t, err)
}
