// Package assessment implements the diagnostic assessment core: the static
// question bank shapes, the per-attempt response set, the scoring engine and
// the flow state machine. Everything here is pure computation; persistence
// and transport live in the service and controller layers.
package assessment

// Level is a difficulty tier.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// StyleCategory is one of the four learning-style categories.
type StyleCategory string

const (
	Visual         StyleCategory = "visual"
	Auditory       StyleCategory = "auditory"
	Kinesthetic    StyleCategory = "kinesthetic"
	ReadingWriting StyleCategory = "reading_writing"
)

// StyleCategories is the canonical enumeration order. Dominant-style ties
// resolve to the first category in this order.
var StyleCategories = []StyleCategory{Visual, Auditory, Kinesthetic, ReadingWriting}

// DiagnosticQuestion is one knowledge-quiz item. Options are ordered and
// CorrectAnswer indexes into them; the engine works for any len(Options) >= 2.
type DiagnosticQuestion struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
	Difficulty    Level    `json:"difficultyLevel"`
	Topic         string   `json:"topic"`
	Explanation   string   `json:"explanation"`
}

// StyleOption tags each answer choice with its learning-style category
// explicitly, instead of relying on array position alone. The bank is still
// authored in canonical category order.
type StyleOption struct {
	Text     string        `json:"text"`
	Category StyleCategory `json:"category"`
}

// LearningStyleQuestion is one style-inventory item with exactly four
// options, one per category.
type LearningStyleQuestion struct {
	ID      string        `json:"id"`
	Prompt  string        `json:"question"`
	Options []StyleOption `json:"options"`
}

// ResponseSet accumulates a user's chosen option index per question across
// the two phases of one attempt. Re-answering a question overwrites.
type ResponseSet struct {
	StyleAnswers     map[string]int `json:"styleAnswers"`
	KnowledgeAnswers map[string]int `json:"knowledgeAnswers"`
}

func NewResponseSet() *ResponseSet {
	return &ResponseSet{
		StyleAnswers:     make(map[string]int),
		KnowledgeAnswers: make(map[string]int),
	}
}

// LearningStyle is the computed style distribution. Scores are percentages;
// a partially answered inventory sums to less than 100.
type LearningStyle struct {
	Visual         float64       `json:"visual"`
	Auditory       float64       `json:"auditory"`
	Kinesthetic    float64       `json:"kinesthetic"`
	ReadingWriting float64       `json:"readingWriting"`
	DominantStyle  StyleCategory `json:"dominantStyle"`
}

// AssessmentResult is the computed knowledge-quiz outcome.
type AssessmentResult struct {
	Score            float64            `json:"score"`
	TotalQuestions   int                `json:"totalQuestions"`
	CorrectAnswers   int                `json:"correctAnswers"`
	TimeTakenSeconds int                `json:"timeTaken"`
	TopicScores      map[string]float64 `json:"topicScores"`
	RecommendedLevel Level              `json:"recommendedLevel"`
}

// KnowledgeLevel classifies the overall result and each topic with the same
// thresholds used for RecommendedLevel.
type KnowledgeLevel struct {
	Overall         Level            `json:"overall"`
	Topics          map[string]Level `json:"topics"`
	ConfidenceScore float64          `json:"confidenceScore"`
}

// Results bundles the three value objects produced by one attempt.
type Results struct {
	LearningStyle    LearningStyle    `json:"learningStyle"`
	AssessmentResult AssessmentResult `json:"assessmentResult"`
	KnowledgeLevel   KnowledgeLevel   `json:"knowledgeLevel"`
}
