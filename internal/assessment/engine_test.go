package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathQuestions() []DiagnosticQuestion {
	return KnowledgeQuestions("Matemática")
}

func TestComputeAssessmentResult_ScenarioMatematica(t *testing.T) {
	// Questions 1 and 2 answered correctly, question 3 wrong.
	answers := map[string]int{"1": 0, "2": 0, "3": 0}

	result := ComputeAssessmentResult(answers, mathQuestions(), 120)

	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.InDelta(t, 66.67, result.Score, 0.01)
	assert.Equal(t, Intermediate, result.RecommendedLevel)
	assert.Equal(t, 120, result.TimeTakenSeconds)
}

func TestComputeAssessmentResult_EmptyInputs(t *testing.T) {
	result := ComputeAssessmentResult(map[string]int{}, nil, 7)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, Beginner, result.RecommendedLevel)
	assert.Empty(t, result.TopicScores)
}

func TestComputeAssessmentResult_UnansweredCountsIncorrect(t *testing.T) {
	qs := mathQuestions()

	// Only the first question answered, correctly.
	result := ComputeAssessmentResult(map[string]int{"1": 0}, qs, 10)

	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.InDelta(t, 33.33, result.Score, 0.01)
}

func TestComputeAssessmentResult_OutOfRangeAnswerIsIncorrect(t *testing.T) {
	qs := mathQuestions()

	result := ComputeAssessmentResult(map[string]int{"1": 99, "2": -1}, qs, 10)

	assert.Equal(t, 0, result.CorrectAnswers)
}

func TestComputeAssessmentResult_TopicScores(t *testing.T) {
	qs := []DiagnosticQuestion{
		{ID: "a", Options: []string{"x", "y"}, CorrectAnswer: 0, Topic: "Álgebra Básica"},
		{ID: "b", Options: []string{"x", "y"}, CorrectAnswer: 1, Topic: "Álgebra Básica"},
		{ID: "c", Options: []string{"x", "y"}, CorrectAnswer: 0, Topic: "Cálculo"},
	}
	answers := map[string]int{"a": 0, "b": 0, "c": 0}

	result := ComputeAssessmentResult(answers, qs, 0)

	assert.InDelta(t, 50.0, result.TopicScores["Álgebra Básica"], 0.001)
	assert.InDelta(t, 100.0, result.TopicScores["Cálculo"], 0.001)
}

func TestRecommendedLevel_BoundaryThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{80, Advanced},
		{79.99, Intermediate},
		{60, Intermediate},
		{59.99, Beginner},
		{100, Advanced},
		{0, Beginner},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, classify(tc.score), "score %v", tc.score)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	qs := mathQuestions()

	prev := -1.0
	answerSets := []map[string]int{
		{},
		{"1": 0},
		{"1": 0, "2": 0},
		{"1": 0, "2": 0, "3": 1},
	}
	for i, answers := range answerSets {
		result := ComputeAssessmentResult(answers, qs, 0)
		if result.Score < prev {
			t.Fatalf("score decreased with more correct answers: step %d got %v after %v", i, result.Score, prev)
		}
		prev = result.Score
	}
}

func TestComputeAssessmentResult_Deterministic(t *testing.T) {
	answers := map[string]int{"1": 0, "2": 2}
	qs := mathQuestions()

	first := ComputeAssessmentResult(answers, qs, 42)
	second := ComputeAssessmentResult(answers, qs, 42)

	assert.Equal(t, first, second)
}

func TestComputeLearningStyle_ScenarioVisualDominant(t *testing.T) {
	// visual, visual, auditory, kinesthetic
	answers := map[string]int{"ls1": 0, "ls2": 0, "ls3": 1, "ls4": 2}

	style := ComputeLearningStyle(answers, LearningStyleQuestions())

	assert.InDelta(t, 50.0, style.Visual, 0.001)
	assert.InDelta(t, 25.0, style.Auditory, 0.001)
	assert.InDelta(t, 25.0, style.Kinesthetic, 0.001)
	assert.InDelta(t, 0.0, style.ReadingWriting, 0.001)
	assert.Equal(t, Visual, style.DominantStyle)
}

func TestComputeLearningStyle_SumBound(t *testing.T) {
	qs := LearningStyleQuestions()

	full := map[string]int{"ls1": 0, "ls2": 1, "ls3": 2, "ls4": 3}
	style := ComputeLearningStyle(full, qs)
	sum := style.Visual + style.Auditory + style.Kinesthetic + style.ReadingWriting
	assert.InDelta(t, 100.0, sum, 0.001)

	partial := map[string]int{"ls1": 0, "ls2": 3}
	style = ComputeLearningStyle(partial, qs)
	sum = style.Visual + style.Auditory + style.Kinesthetic + style.ReadingWriting
	assert.InDelta(t, 50.0, sum, 0.001)
}

func TestComputeLearningStyle_EmptyDefaultsToVisual(t *testing.T) {
	style := ComputeLearningStyle(map[string]int{}, LearningStyleQuestions())

	assert.Equal(t, 0.0, style.Visual)
	assert.Equal(t, 0.0, style.Auditory)
	assert.Equal(t, 0.0, style.Kinesthetic)
	assert.Equal(t, 0.0, style.ReadingWriting)
	assert.Equal(t, Visual, style.DominantStyle)
}

func TestComputeLearningStyle_TieBreaksInEnumerationOrder(t *testing.T) {
	// auditory and kinesthetic tied at 50 each; auditory enumerates first.
	answers := map[string]int{"ls1": 1, "ls2": 2, "ls3": 1, "ls4": 2}

	style := ComputeLearningStyle(answers, LearningStyleQuestions())

	assert.InDelta(t, style.Auditory, style.Kinesthetic, 0.001)
	assert.Equal(t, Auditory, style.DominantStyle)
}

func TestComputeLearningStyle_OutOfRangeAnswerIgnored(t *testing.T) {
	answers := map[string]int{"ls1": 9, "ls2": -3}

	style := ComputeLearningStyle(answers, LearningStyleQuestions())

	sum := style.Visual + style.Auditory + style.Kinesthetic + style.ReadingWriting
	assert.Equal(t, 0.0, sum)
}

func TestDeriveKnowledgeLevel_ConsistentWithThresholds(t *testing.T) {
	result := AssessmentResult{
		Score:            66.67,
		RecommendedLevel: Intermediate,
		TopicScores: map[string]float64{
			"Álgebra Básica": 100,
			"Cálculo":        80,
			"Trigonometria":  60,
			"Geometria":      59.99,
		},
	}

	level := DeriveKnowledgeLevel(result)

	assert.Equal(t, Intermediate, level.Overall)
	assert.Equal(t, 66.67, level.ConfidenceScore)
	assert.Equal(t, Advanced, level.Topics["Álgebra Básica"])
	assert.Equal(t, Advanced, level.Topics["Cálculo"])
	assert.Equal(t, Intermediate, level.Topics["Trigonometria"])
	assert.Equal(t, Beginner, level.Topics["Geometria"])

	// Same classification as applying the thresholds directly.
	for topic, score := range result.TopicScores {
		assert.Equal(t, classify(score), level.Topics[topic])
	}
}

func TestValidateKnowledgeQuestions(t *testing.T) {
	require.NoError(t, ValidateKnowledgeQuestions(mathQuestions()))

	bad := []DiagnosticQuestion{{ID: "x", Options: []string{"only"}, CorrectAnswer: 0}}
	assert.Error(t, ValidateKnowledgeQuestions(bad))

	outOfRange := []DiagnosticQuestion{{ID: "y", Options: []string{"a", "b"}, CorrectAnswer: 2}}
	assert.Error(t, ValidateKnowledgeQuestions(outOfRange))
}

func TestValidateStyleQuestions(t *testing.T) {
	require.NoError(t, ValidateStyleQuestions(LearningStyleQuestions()))

	short := []LearningStyleQuestion{{ID: "s", Options: []StyleOption{{Text: "a", Category: Visual}}}}
	assert.Error(t, ValidateStyleQuestions(short))

	duplicated := []LearningStyleQuestion{{ID: "d", Options: []StyleOption{
		{Text: "a", Category: Visual},
		{Text: "b", Category: Visual},
		{Text: "c", Category: Kinesthetic},
		{Text: "d", Category: ReadingWriting},
	}}}
	assert.Error(t, ValidateStyleQuestions(duplicated))
}

func TestBankIntegrity(t *testing.T) {
	for _, subject := range Subjects() {
		require.NoErrorf(t, ValidateKnowledgeQuestions(KnowledgeQuestions(subject)), "subject %s", subject)
	}
	require.NoError(t, ValidateStyleQuestions(LearningStyleQuestions()))
}

func TestKnowledgeQuestions_UnknownSubjectFallsBack(t *testing.T) {
	assert.Equal(t, KnowledgeQuestions("Matemática"), KnowledgeQuestions("Astrologia"))
}
