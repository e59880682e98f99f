package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tutoria_backend/internal/model"
	"tutoria_backend/internal/repository"
	"tutoria_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookService struct {
	BookRepo    *repository.BookRepository
	SubjectRepo *repository.SubjectRepository
	Storage     StorageProvider
}

func NewBookService(bookRepo *repository.BookRepository, subjectRepo *repository.SubjectRepository, storage StorageProvider) *BookService {
	return &BookService{
		BookRepo:    bookRepo,
		SubjectRepo: subjectRepo,
		Storage:     storage,
	}
}

func (s *BookService) ListBySubject(subjectID string, includeUnpublished bool) ([]model.Book, error) {
	if _, err := s.SubjectRepo.FindByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}
	return s.BookRepo.FindBySubjectID(subjectID, !includeUnpublished)
}

func (s *BookService) Get(id string) (*model.Book, error) {
	book, err := s.BookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *BookService) Create(book *model.Book) error {
	if _, err := s.SubjectRepo.FindByID(book.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubjectNotFound
		}
		return err
	}
	if book.Status == "" {
		book.Status = model.BookStatusReview
	}
	return s.BookRepo.Create(book)
}

// UploadFile stores the book file and records its path. The stored name is
// namespaced by book id so re-uploads replace the previous file URL without
// collisions.
func (s *BookService) UploadFile(ctx context.Context, bookID string, filename string, reader io.Reader, size int64, contentType string) (*model.Book, error) {
	book, err := s.Get(bookID)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	stored := fmt.Sprintf("books/%s/%s%s", book.ID, uuid.NewString(), ext)

	url, err := s.Storage.Upload(ctx, stored, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	book.FilePath = url
	if err := s.BookRepo.Update(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Update(id string, updated *model.Book) (*model.Book, error) {
	book, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if updated.Title != "" {
		book.Title = updated.Title
	}
	if updated.Author != "" {
		book.Author = updated.Author
	}
	if updated.Status != "" {
		if updated.Status != model.BookStatusPublished && updated.Status != model.BookStatusReview {
			return nil, fmt.Errorf("unknown book status %q", updated.Status)
		}
		book.Status = updated.Status
	}

	if err := s.BookRepo.Update(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	book, err := s.Get(id)
	if err != nil {
		return err
	}

	if book.FilePath != "" {
		// The stored object name is the URL path without the provider prefix.
		name := strings.TrimPrefix(book.FilePath, "/uploads/")
		name = strings.TrimPrefix(name, "/")
		_ = s.Storage.Delete(ctx, name)
	}
	return s.BookRepo.Delete(id)
}

// Download resolves the file URL and bumps the download counter.
func (s *BookService) Download(id string) (string, error) {
	book, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if book.FilePath == "" {
		return "", util.ErrBookNotFound
	}
	if err := s.BookRepo.IncrementDownloads(id); err != nil {
		return "", err
	}
	return book.FilePath, nil
}

func (s *BookService) List(page, pageSize int) ([]model.Book, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.BookRepo.List(page, pageSize)
}
