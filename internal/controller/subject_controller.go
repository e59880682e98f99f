package controller

import (
	"errors"

	"tutoria_backend/internal/model"
	"tutoria_backend/internal/service"
	"tutoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
	BookService    *service.BookService
}

func NewSubjectController(subjectService *service.SubjectService, bookService *service.BookService) *SubjectController {
	return &SubjectController{
		SubjectService: subjectService,
		BookService:    bookService,
	}
}

func (c *SubjectController) List(ctx *gin.Context) {
	subjects, err := c.SubjectService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

func (c *SubjectController) Get(ctx *gin.Context) {
	subject, err := c.SubjectService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subject)
}

func (c *SubjectController) Books(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	includeUnpublished := claims != nil && claims.Role == model.RoleAdmin

	books, err := c.BookService.ListBySubject(ctx.Param("id"), includeUnpublished)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, books)
}

type SubjectRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	AgentDescription string `json:"agentDescription"`
}

func (c *SubjectController) Create(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := &model.Subject{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		Color:            req.Color,
		AgentDescription: req.AgentDescription,
	}
	if err := c.SubjectService.Create(subject); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, subject)
}

func (c *SubjectController) Update(ctx *gin.Context) {
	var req SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.SubjectService.Update(ctx.Param("id"), &model.Subject{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		Color:            req.Color,
		AgentDescription: req.AgentDescription,
	})
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subject)
}

func (c *SubjectController) Delete(ctx *gin.Context) {
	if err := c.SubjectService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
