package controller

import (
	"errors"
	"net/http"
	"strconv"

	"tutoria_backend/internal/service"
	"tutoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GifController struct {
	GifService *service.GifService
}

func NewGifController(gifService *service.GifService) *GifController {
	return &GifController{GifService: gifService}
}

func (c *GifController) Search(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	query := ctx.Query("q")
	if query == "" {
		util.BadRequest(ctx, "q is required")
		return
	}
	subject := ctx.Query("subject")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "3"))

	gifs, quota, err := c.GifService.Search(ctx.Request.Context(), claims.UserID, query, subject, limit)
	if err != nil {
		if errors.Is(err, util.ErrDailyGifLimit) {
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{
		"gifs":  gifs,
		"quota": quota,
	})
}

func (c *GifController) Quota(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quota, err := c.GifService.Quota(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quota)
}
