package service

import (
	"encoding/json"

	"tutoria_backend/internal/assessment"
	"tutoria_backend/internal/model"
	"tutoria_backend/internal/repository"
)

type DashboardService struct {
	UserRepo         *repository.UserRepository
	SubjectRepo      *repository.SubjectRepository
	BookRepo         *repository.BookRepository
	ConversationRepo *repository.ConversationRepository
	DiagnosticRepo   *repository.DiagnosticRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	bookRepo *repository.BookRepository,
	conversationRepo *repository.ConversationRepository,
	diagnosticRepo *repository.DiagnosticRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:         userRepo,
		SubjectRepo:      subjectRepo,
		BookRepo:         bookRepo,
		ConversationRepo: conversationRepo,
		DiagnosticRepo:   diagnosticRepo,
	}
}

// SubjectProgress summarizes the student's standing in one subject.
type SubjectProgress struct {
	Subject          model.Subject             `json:"subject"`
	Assessed         bool                      `json:"assessed"`
	Skipped          bool                      `json:"skipped"`
	RecommendedLevel string                    `json:"recommendedLevel,omitempty"`
	LearningStyle    *assessment.LearningStyle `json:"learningStyle,omitempty"`
}

// StudentDashboard is the landing-page payload.
type StudentDashboard struct {
	Conversations int64             `json:"conversations"`
	Messages      int64             `json:"messages"`
	Assessments   int64             `json:"assessments"`
	Subjects      []SubjectProgress `json:"subjects"`
}

func (s *DashboardService) StudentOverview(userID uint) (*StudentDashboard, error) {
	conversations, err := s.ConversationRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	messages, err := s.ConversationRepo.CountMessagesByUser(userID)
	if err != nil {
		return nil, err
	}
	assessments, err := s.DiagnosticRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.SubjectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	progress := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		p := SubjectProgress{Subject: subject}
		record, err := s.DiagnosticRepo.FindLatestByUserAndSubject(userID, subject.ID)
		if err == nil && record != nil {
			p.Assessed = true
			p.Skipped = record.Skipped
			p.RecommendedLevel = record.RecommendedLevel
			if len(record.LearningStyle) > 0 {
				var style assessment.LearningStyle
				if json.Unmarshal(record.LearningStyle, &style) == nil {
					p.LearningStyle = &style
				}
			}
		}
		progress = append(progress, p)
	}

	return &StudentDashboard{
		Conversations: int64(len(conversations)),
		Messages:      messages,
		Assessments:   assessments,
		Subjects:      progress,
	}, nil
}

// AdminOverview is the admin landing-page payload.
type AdminOverview struct {
	Students int64 `json:"students"`
	Admins   int64 `json:"admins"`
	Subjects int64 `json:"subjects"`
	Books    int64 `json:"books"`
}

func (s *DashboardService) AdminStats() (*AdminOverview, error) {
	students, err := s.UserRepo.CountByRole(model.RoleStudent)
	if err != nil {
		return nil, err
	}
	admins, err := s.UserRepo.CountByRole(model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	subjects, err := s.SubjectRepo.Count()
	if err != nil {
		return nil, err
	}
	books, err := s.BookRepo.Count()
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		Students: students,
		Admins:   admins,
		Subjects: subjects,
		Books:    books,
	}, nil
}
