package controller

import (
	"errors"

	"tutoria_backend/internal/service"
	"tutoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	TutorService *service.TutorService
}

func NewChatController(tutorService *service.TutorService) *ChatController {
	return &ChatController{TutorService: tutorService}
}

type CreateConversationRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
	Title     string `json:"title"`
}

func (c *ChatController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	conversation, err := c.TutorService.CreateConversation(claims.UserID, req.SubjectID, req.Title)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.BadRequest(ctx, "subject not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, conversation)
}

func (c *ChatController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conversations, err := c.TutorService.ListConversations(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conversations)
}

func (c *ChatController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.TutorService.DeleteConversation(ctx.Param("id"), claims.UserID); err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *ChatController) Messages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.TutorService.Messages(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, messages)
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (c *ChatController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	message, err := c.TutorService.SendMessage(ctx.Request.Context(), ctx.Param("id"), claims.UserID, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, message)
}
