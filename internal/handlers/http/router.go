package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/legalpro-backend/internal/handlers/middleware"
)

// SetupRoutes registra todas as rotas da API sob /api/v1.
// A detecção de idioma roda em todas as rotas; autenticação apenas nas
// protegidas.
func SetupRoutes(
	engine *gin.Engine,
	auth *AuthHandler,
	admin *AdminHandler,
	business *BusinessHandler,
	consultation *ConsultationHandler,
	attachment *AttachmentHandler,
	authMW *middleware.AuthMiddleware,
	i18nMW *middleware.I18nMiddleware,
) {
	engine.Use(i18nMW.DetectLanguage())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", authMW.RequireAuth(), auth.Me)
	}

	adminGroup := api.Group("/admin", authMW.RequireAuth())
	{
		adminGroup.PATCH("/user/:userId/set-lawyer", admin.SetLawyer)
	}

	businessGroup := api.Group("/business", authMW.RequireAuth())
	{
		businessGroup.POST("", business.Create)
		businessGroup.GET("/my", business.ListMine)
		businessGroup.GET("/all", business.ListAll)
		businessGroup.GET("/:id", business.Get)
		businessGroup.PUT("/:id", business.Update)
		businessGroup.DELETE("/:id", business.Delete)
		businessGroup.PATCH("/:id/assign", business.Assign)

		businessGroup.POST("/:id/permits", attachment.UploadPermit)
		businessGroup.GET("/:id/permits", attachment.ListPermits)
		businessGroup.GET("/:id/permits/:attachmentId/download", attachment.DownloadPermit)
		businessGroup.DELETE("/:id/permits/:attachmentId", attachment.DeletePermit)

		businessGroup.POST("/:id/files", attachment.UploadBusinessFile)
		businessGroup.GET("/:id/files", attachment.ListBusinessFiles)
		businessGroup.GET("/:id/files/:attachmentId/download", attachment.DownloadBusinessFile)
		businessGroup.DELETE("/:id/files/:attachmentId", attachment.DeleteBusinessFile)
	}

	consultationGroup := api.Group("/consultations", authMW.RequireAuth())
	{
		consultationGroup.POST("", consultation.Create)
		consultationGroup.GET("/my", consultation.ListMine)
		consultationGroup.GET("/admin", consultation.ListAll)
		consultationGroup.GET("/lawyer", consultation.ListForLawyer)
		consultationGroup.PATCH("/:id/assign", consultation.Assign)
		consultationGroup.PATCH("/:id/status", consultation.UpdateStatus)
		consultationGroup.PATCH("/:id/result", consultation.SubmitResult)

		consultationGroup.POST("/:id/result-files", attachment.UploadResult)
		consultationGroup.GET("/:id/result-files", attachment.ListResults)
		consultationGroup.GET("/:id/result-files/:attachmentId/download", attachment.DownloadResult)
		consultationGroup.DELETE("/:id/result-files/:attachmentId", attachment.DeleteResult)
	}
}
