package assessment

import "fmt"

// Score thresholds shared by RecommendedLevel and per-topic classification.
const (
	advancedThreshold     = 80.0
	intermediateThreshold = 60.0
)

func classify(score float64) Level {
	switch {
	case score >= advancedThreshold:
		return Advanced
	case score >= intermediateThreshold:
		return Intermediate
	default:
		return Beginner
	}
}

// ComputeLearningStyle turns the style answers into a category distribution.
// Each answered question contributes 100/len(questions) points to the chosen
// option's category. Unanswered questions and out-of-range option indexes
// contribute nothing. With no answers all scores are zero and the dominant
// style defaults to the first category in enumeration order.
func ComputeLearningStyle(styleAnswers map[string]int, questions []LearningStyleQuestion) LearningStyle {
	scores := make(map[StyleCategory]float64, len(StyleCategories))
	for _, cat := range StyleCategories {
		scores[cat] = 0
	}

	if len(questions) > 0 {
		increment := 100.0 / float64(len(questions))
		for _, q := range questions {
			idx, ok := styleAnswers[q.ID]
			if !ok || idx < 0 || idx >= len(q.Options) {
				continue
			}
			scores[q.Options[idx].Category] += increment
		}
	}

	dominant := StyleCategories[0]
	for _, cat := range StyleCategories[1:] {
		if scores[cat] > scores[dominant] {
			dominant = cat
		}
	}

	return LearningStyle{
		Visual:         scores[Visual],
		Auditory:       scores[Auditory],
		Kinesthetic:    scores[Kinesthetic],
		ReadingWriting: scores[ReadingWriting],
		DominantStyle:  dominant,
	}
}

// ComputeAssessmentResult scores the knowledge answers against the question
// list. Unanswered questions count as incorrect and stay in the denominator;
// an empty question list yields a zero score instead of dividing by zero.
func ComputeAssessmentResult(knowledgeAnswers map[string]int, questions []DiagnosticQuestion, elapsedSeconds int) AssessmentResult {
	total := len(questions)
	correct := 0
	topicTotals := make(map[string]int)
	topicCorrect := make(map[string]int)

	for _, q := range questions {
		topicTotals[q.Topic]++
		if idx, ok := knowledgeAnswers[q.ID]; ok && idx == q.CorrectAnswer {
			correct++
			topicCorrect[q.Topic]++
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	topicScores := make(map[string]float64, len(topicTotals))
	for topic, n := range topicTotals {
		topicScores[topic] = float64(topicCorrect[topic]) / float64(n) * 100
	}

	return AssessmentResult{
		Score:            score,
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		TimeTakenSeconds: elapsedSeconds,
		TopicScores:      topicScores,
		RecommendedLevel: classify(score),
	}
}

// DeriveKnowledgeLevel classifies the overall result and every topic with the
// same cut points used for RecommendedLevel. The overall percentage doubles
// as the confidence score.
func DeriveKnowledgeLevel(result AssessmentResult) KnowledgeLevel {
	topics := make(map[string]Level, len(result.TopicScores))
	for topic, score := range result.TopicScores {
		topics[topic] = classify(score)
	}

	return KnowledgeLevel{
		Overall:         result.RecommendedLevel,
		Topics:          topics,
		ConfidenceScore: result.Score,
	}
}

// ValidateKnowledgeQuestions checks question-bank invariants at load time:
// at least two options and a correct-answer index inside them. A violation is
// a static-data bug, not a runtime condition.
func ValidateKnowledgeQuestions(questions []DiagnosticQuestion) error {
	for _, q := range questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %q: needs at least 2 options, has %d", q.ID, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %q: correct answer index %d out of range [0,%d)", q.ID, q.CorrectAnswer, len(q.Options))
		}
	}
	return nil
}

// ValidateStyleQuestions checks that every style question carries exactly one
// option per category.
func ValidateStyleQuestions(questions []LearningStyleQuestion) error {
	for _, q := range questions {
		if len(q.Options) != len(StyleCategories) {
			return fmt.Errorf("style question %q: needs exactly %d options, has %d", q.ID, len(StyleCategories), len(q.Options))
		}
		seen := make(map[StyleCategory]bool, len(StyleCategories))
		for _, opt := range q.Options {
			if seen[opt.Category] {
				return fmt.Errorf("style question %q: duplicate category %q", q.ID, opt.Category)
			}
			seen[opt.Category] = true
		}
		for _, cat := range StyleCategories {
			if !seen[cat] {
				return fmt.Errorf("style question %q: missing category %q", q.ID, cat)
			}
		}
	}
	return nil
}
