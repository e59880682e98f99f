package controller

import (
	"errors"
	"strconv"

	"tutoria_backend/internal/model"
	"tutoria_backend/internal/service"
	"tutoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookController struct {
	BookService *service.BookService
}

func NewBookController(bookService *service.BookService) *BookController {
	return &BookController{BookService: bookService}
}

func (c *BookController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	books, total, err := c.BookService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  books,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

type BookRequest struct {
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author"`
	SubjectID string `json:"subjectId" binding:"required"`
	Status    string `json:"status"`
}

func (c *BookController) Create(ctx *gin.Context) {
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	book := &model.Book{
		Title:     req.Title,
		Author:    req.Author,
		SubjectID: req.SubjectID,
		Status:    req.Status,
	}
	if err := c.BookService.Create(book); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.BadRequest(ctx, "subject not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, book)
}

type BookUpdateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
}

func (c *BookController) Update(ctx *gin.Context) {
	var req BookUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	book, err := c.BookService.Update(ctx.Param("id"), &model.Book{
		Title:  req.Title,
		Author: req.Author,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, book)
}

func (c *BookController) Delete(ctx *gin.Context) {
	if err := c.BookService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// Upload receives a multipart file and stores it for an existing book.
func (c *BookController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	book, err := c.BookService.UploadFile(ctx.Request.Context(), ctx.Param("id"),
		fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, book)
}

// Download resolves the file URL and counts the download.
func (c *BookController) Download(ctx *gin.Context) {
	url, err := c.BookService.Download(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
