package repository

import (
	"tutoria_backend/internal/model"

	"gorm.io/gorm"
)

type DiagnosticRepository struct {
	DB *gorm.DB
}

func NewDiagnosticRepository(db *gorm.DB) *DiagnosticRepository {
	return &DiagnosticRepository{DB: db}
}

func (r *DiagnosticRepository) Create(record *model.DiagnosticRecord) error {
	return r.DB.Create(record).Error
}

func (r *DiagnosticRepository) FindByUserID(userID uint) ([]model.DiagnosticRecord, error) {
	var records []model.DiagnosticRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DiagnosticRepository) FindLatestByUserAndSubject(userID uint, subjectID string) (*model.DiagnosticRecord, error) {
	var record model.DiagnosticRecord
	err := r.DB.Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("created_at desc").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *DiagnosticRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.DiagnosticRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
