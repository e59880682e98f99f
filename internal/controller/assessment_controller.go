package controller

import (
	"errors"

	"tutoria_backend/internal/service"
	"tutoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type StartAssessmentRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
}

func (c *AssessmentController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.AssessmentService.Start(claims.UserID, req.SubjectID)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, session)
}

func (c *AssessmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.AssessmentService.Session(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrFlowNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, session)
}

type AnswerRequest struct {
	QuestionID  string `json:"questionId" binding:"required"`
	OptionIndex *int   `json:"optionIndex" binding:"required"`
}

func (c *AssessmentController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	state, err := c.AssessmentService.SubmitAnswer(ctx.Param("id"), claims.UserID, req.QuestionID, *req.OptionIndex)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFlowNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrFlowFinished):
			util.Error(ctx, 409, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, gin.H{"state": state})
}

func (c *AssessmentController) Skip(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.AssessmentService.Skip(ctx.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFlowNotFound):
			util.NotFound(ctx)
		default:
			util.Error(ctx, 409, err.Error())
		}
		return
	}
	util.Success(ctx, record)
}

func (c *AssessmentController) Results(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.AssessmentService.Results(ctx.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFlowNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrFlowFinished):
			util.Error(ctx, 409, err.Error())
		default:
			util.Error(ctx, 409, err.Error())
		}
		return
	}
	util.Success(ctx, results)
}

func (c *AssessmentController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.AssessmentService.Complete(ctx.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFlowNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrFlowFinished):
			util.Error(ctx, 409, err.Error())
		default:
			util.Error(ctx, 409, err.Error())
		}
		return
	}
	util.Success(ctx, record)
}

func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.AssessmentService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
