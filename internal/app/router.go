package app

import (
	"tutoria_backend/internal/config"
	"tutoria_backend/internal/middleware"
	"tutoria_backend/internal/model"
	"tutoria_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/subjects", c.subject.List)
		public.GET("/subjects/:id", c.subject.Get)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Profile)
	rg.PUT("/profile", c.auth.UpdateProfile)
	rg.GET("/dashboard", c.dashboard.Student)

	rg.GET("/subjects/:id/books", c.subject.Books)
	rg.GET("/books/:id/download", c.book.Download)

	assessments := rg.Group("/assessments")
	{
		assessments.POST("", c.assessment.Start)
		assessments.GET("", c.assessment.History)
		assessments.GET("/:id", c.assessment.Get)
		assessments.POST("/:id/answers", c.assessment.Answer)
		assessments.POST("/:id/skip", c.assessment.Skip)
		assessments.GET("/:id/results", c.assessment.Results)
		assessments.POST("/:id/complete", c.assessment.Complete)
	}

	conversations := rg.Group("/conversations")
	{
		conversations.POST("", c.chat.Create)
		conversations.GET("", c.chat.List)
		conversations.DELETE("/:id", c.chat.Delete)
		conversations.GET("/:id/messages", c.chat.Messages)
		conversations.POST("/:id/messages", c.chat.Send)
	}

	rg.GET("/gifs/search", c.gif.Search)
	rg.GET("/gifs/quota", c.gif.Quota)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/overview", c.dashboard.Admin)

		admin.GET("/users", c.user.List)
		admin.PATCH("/users/:id", c.user.Patch)

		admin.POST("/subjects", c.subject.Create)
		admin.PUT("/subjects/:id", c.subject.Update)
		admin.DELETE("/subjects/:id", c.subject.Delete)

		admin.GET("/books", c.book.List)
		admin.POST("/books", c.book.Create)
		admin.PUT("/books/:id", c.book.Update)
		admin.DELETE("/books/:id", c.book.Delete)
		admin.POST("/books/:id/upload", c.book.Upload)
	}
}
