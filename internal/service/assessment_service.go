package service

import (
	"encoding/json"
	"errors"
	"sync"

	"tutoria_backend/internal/assessment"
	"tutoria_backend/internal/model"
	"tutoria_backend/internal/repository"
	"tutoria_backend/internal/util"

	"github.com/google/uuid"
)

// activeFlow is one in-flight diagnostic attempt held in memory until the
// student completes or skips it.
type activeFlow struct {
	userID    uint
	subjectID string
	flow      *assessment.Flow
}

type AssessmentService struct {
	SubjectRepo    *repository.SubjectRepository
	DiagnosticRepo *repository.DiagnosticRepository

	mu    sync.Mutex
	flows map[string]*activeFlow
}

func NewAssessmentService(subjectRepo *repository.SubjectRepository, diagnosticRepo *repository.DiagnosticRepository) *AssessmentService {
	return &AssessmentService{
		SubjectRepo:    subjectRepo,
		DiagnosticRepo: diagnosticRepo,
		flows:          make(map[string]*activeFlow),
	}
}

// AssessmentSession is the transport view of one attempt.
type AssessmentSession struct {
	ID             string                             `json:"id"`
	SubjectID      string                             `json:"subjectId"`
	SubjectName    string                             `json:"subjectName"`
	State          assessment.State                   `json:"state"`
	StyleQuestions []assessment.LearningStyleQuestion `json:"styleQuestions"`
	Questions      []assessment.DiagnosticQuestion    `json:"questions"`
	Answered       int                                `json:"answered"`
	Total          int                                `json:"total"`
}

// Start creates a flow for the subject and moves it past the intro so the
// first style question is immediately answerable.
func (s *AssessmentService) Start(userID uint, subjectID string) (*AssessmentSession, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, util.ErrSubjectNotFound
	}

	flow, err := assessment.NewFlow(subject.Name,
		assessment.KnowledgeQuestions(subject.Name),
		assessment.LearningStyleQuestions())
	if err != nil {
		return nil, err
	}
	if err := flow.Start(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.flows[id] = &activeFlow{userID: userID, subjectID: subjectID, flow: flow}
	s.mu.Unlock()

	return s.session(id, subject.Name, subjectID, flow), nil
}

func (s *AssessmentService) session(id, subjectName, subjectID string, flow *assessment.Flow) *AssessmentSession {
	answered, total := flow.Progress()
	return &AssessmentSession{
		ID:             id,
		SubjectID:      subjectID,
		SubjectName:    subjectName,
		State:          flow.State(),
		StyleQuestions: assessment.LearningStyleQuestions(),
		Questions:      assessment.KnowledgeQuestions(subjectName),
		Answered:       answered,
		Total:          total,
	}
}

func (s *AssessmentService) lookup(id string, userID uint) (*activeFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	af, ok := s.flows[id]
	if !ok || af.userID != userID {
		return nil, util.ErrFlowNotFound
	}
	return af, nil
}

// SubmitAnswer records one answer and reports the resulting state.
func (s *AssessmentService) SubmitAnswer(id string, userID uint, questionID string, optionIndex int) (assessment.State, error) {
	af, err := s.lookup(id, userID)
	if err != nil {
		return "", err
	}

	state, err := af.flow.SubmitAnswer(questionID, optionIndex)
	if errors.Is(err, assessment.ErrFlowDone) {
		return state, util.ErrFlowFinished
	}
	return state, err
}

// defaultLearningStyle is the balanced profile recorded for skipped attempts.
func defaultLearningStyle() assessment.LearningStyle {
	return assessment.LearningStyle{
		Visual:         25,
		Auditory:       25,
		Kinesthetic:    25,
		ReadingWriting: 25,
		DominantStyle:  assessment.Visual,
	}
}

func defaultKnowledgeLevel() assessment.KnowledgeLevel {
	return assessment.KnowledgeLevel{
		Overall:         assessment.Beginner,
		Topics:          map[string]assessment.Level{},
		ConfidenceScore: 0,
	}
}

// Skip abandons the attempt from the intro, persists a skipped record with
// the default profile and removes the flow.
func (s *AssessmentService) Skip(id string, userID uint) (*model.DiagnosticRecord, error) {
	af, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}

	style, level, err := af.flow.Skip(defaultLearningStyle(), defaultKnowledgeLevel())
	if err != nil {
		return nil, err
	}

	record, err := buildRecord(userID, af.subjectID, true, nil, style, level)
	if err != nil {
		return nil, err
	}
	if err := s.DiagnosticRepo.Create(record); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.flows, id)
	s.mu.Unlock()
	return record, nil
}

// Results scores the attempt without retiring it.
func (s *AssessmentService) Results(id string, userID uint) (*assessment.Results, error) {
	af, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}

	res, err := af.flow.Results()
	if errors.Is(err, assessment.ErrFlowDone) {
		return nil, util.ErrFlowFinished
	}
	return res, err
}

// Complete retires the flow, persists the diagnostic record and frees the
// in-memory slot.
func (s *AssessmentService) Complete(id string, userID uint) (*model.DiagnosticRecord, error) {
	af, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}

	res, err := af.flow.Complete()
	if err != nil {
		if errors.Is(err, assessment.ErrFlowDone) {
			return nil, util.ErrFlowFinished
		}
		return nil, err
	}

	record, err := buildRecord(userID, af.subjectID, false, res, res.LearningStyle, res.KnowledgeLevel)
	if err != nil {
		return nil, err
	}
	if err := s.DiagnosticRepo.Create(record); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.flows, id)
	s.mu.Unlock()
	return record, nil
}

// Session reports the current state of an in-flight attempt.
func (s *AssessmentService) Session(id string, userID uint) (*AssessmentSession, error) {
	af, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}

	subject, err := s.SubjectRepo.FindByID(af.subjectID)
	if err != nil {
		return nil, util.ErrSubjectNotFound
	}
	return s.session(id, subject.Name, af.subjectID, af.flow), nil
}

// History lists the user's persisted diagnostic records.
func (s *AssessmentService) History(userID uint) ([]model.DiagnosticRecord, error) {
	return s.DiagnosticRepo.FindByUserID(userID)
}

// Latest fetches the most recent record for one subject, or nil when the
// student never took the assessment.
func (s *AssessmentService) Latest(userID uint, subjectID string) (*model.DiagnosticRecord, error) {
	record, err := s.DiagnosticRepo.FindLatestByUserAndSubject(userID, subjectID)
	if err != nil {
		return nil, nil
	}
	return record, nil
}

func buildRecord(userID uint, subjectID string, skipped bool, res *assessment.Results, style assessment.LearningStyle, level assessment.KnowledgeLevel) (*model.DiagnosticRecord, error) {
	styleJSON, err := json.Marshal(style)
	if err != nil {
		return nil, err
	}
	levelJSON, err := json.Marshal(level)
	if err != nil {
		return nil, err
	}

	record := &model.DiagnosticRecord{
		UserID:           userID,
		SubjectID:        subjectID,
		Skipped:          skipped,
		LearningStyle:    styleJSON,
		KnowledgeLevel:   levelJSON,
		RecommendedLevel: string(level.Overall),
	}

	if res != nil {
		resultsJSON, err := json.Marshal(res)
		if err != nil {
			return nil, err
		}
		record.Results = resultsJSON
		record.RecommendedLevel = string(res.AssessmentResult.RecommendedLevel)
	}
	return record, nil
}
