package repository

import (
	"tutoria_backend/internal/model"

	"gorm.io/gorm"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{DB: db}
}

func (r *BookRepository) FindBySubjectID(subjectID string, onlyPublished bool) ([]model.Book, error) {
	var books []model.Book
	query := r.DB.Where("subject_id = ?", subjectID)
	if onlyPublished {
		query = query.Where("status = ?", model.BookStatusPublished)
	}
	err := query.Order("title asc").Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) FindByID(id string) (*model.Book, error) {
	var book model.Book
	err := r.DB.Preload("Subject").Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) Create(book *model.Book) error {
	return r.DB.Create(book).Error
}

func (r *BookRepository) Update(book *model.Book) error {
	return r.DB.Save(book).Error
}

func (r *BookRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Book{}).Error
}

func (r *BookRepository) IncrementDownloads(id string) error {
	return r.DB.Model(&model.Book{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
}

func (r *BookRepository) List(page, pageSize int) ([]model.Book, int64, error) {
	var books []model.Book
	var total int64

	if err := r.DB.Model(&model.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Subject").Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Book{}).Count(&count).Error
	return count, err
}
