package service

import (
	"errors"

	"tutoria_backend/internal/model"
	"tutoria_backend/internal/repository"
	"tutoria_backend/internal/util"

	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

func (s *SubjectService) List() ([]model.Subject, error) {
	return s.SubjectRepo.FindAll()
}

func (s *SubjectService) Get(id string) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Create(subject *model.Subject) error {
	return s.SubjectRepo.Create(subject)
}

func (s *SubjectService) Update(id string, updated *model.Subject) (*model.Subject, error) {
	subject, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if updated.Name != "" {
		subject.Name = updated.Name
	}
	if updated.Description != "" {
		subject.Description = updated.Description
	}
	if updated.Icon != "" {
		subject.Icon = updated.Icon
	}
	if updated.Color != "" {
		subject.Color = updated.Color
	}
	if updated.AgentDescription != "" {
		subject.AgentDescription = updated.AgentDescription
	}

	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.SubjectRepo.Delete(id)
}
