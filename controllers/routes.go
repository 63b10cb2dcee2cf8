// Package controllers file: controllers/routes.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"rpe-portal/middleware"
	"rpe-portal/services"
)

// RegisterRoutes mounts every portal route on r. The sessions and
// PortalSession middleware must already be installed with r.Use.
func (p *Portal) RegisterRoutes(r *gin.Engine, staticDir string) {
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/status", Status)
		api.GET("/news", p.ListNews)
		api.GET("/news/:id", p.GetNews)
		api.GET("/news/:id/qrcode", p.ArticleQRCode)
		api.GET("/courses", p.ListCourses)
		api.GET("/lecturers", p.ListLecturers)
		api.GET("/facilities", p.ListFacilities)
		api.GET("/stats", p.GetStats)
		api.GET("/curriculum", p.GetCurriculum)
		api.GET("/language", GetLanguage)
		api.POST("/language", SetLanguage)
		api.POST("/chat", p.Chat)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", p.Login)
		auth.POST("/logout", p.Logout)
		auth.GET("/me", p.Me)
	}

	admin := api.Group("/admin", middleware.AuthRequired)
	{
		dashboard := middleware.SectionRequired(services.SectionDashboard)
		admin.GET("/nav", dashboard, p.Nav)
		admin.GET("/updates", dashboard, p.Updates)

		news := admin.Group("/news", middleware.SectionRequired(services.SectionArticles))
		news.POST("", p.CreateNews)
		news.PUT("/:id", p.UpdateNews)
		news.DELETE("/:id", p.DeleteNews)
		news.POST("/:id/attachments", p.UploadAttachments)
		news.DELETE("/:id/attachments/:attachmentID", p.DeleteAttachment)

		curriculum := middleware.SectionRequired(services.SectionCurriculum)
		admin.PUT("/curriculum", curriculum, p.UploadCurriculum)
		courses := admin.Group("/courses", curriculum)
		courses.POST("", p.CreateCourse)
		courses.PUT("/:code", p.UpdateCourse)
		courses.DELETE("/:code", p.DeleteCourse)

		lecturers := admin.Group("/lecturers", middleware.SectionRequired(services.SectionLecturers))
		lecturers.POST("", p.CreateLecturer)
		lecturers.PUT("/:id", p.UpdateLecturer)
		lecturers.DELETE("/:id", p.DeleteLecturer)

		facilities := admin.Group("/facilities", middleware.SectionRequired(services.SectionFacilities))
		facilities.POST("", p.CreateFacility)
		facilities.PUT("/:id", p.UpdateFacility)
		facilities.DELETE("/:id", p.DeleteFacility)

		users := admin.Group("/users", middleware.SectionRequired(services.SectionUsers))
		users.GET("", p.ListUsers)
		users.POST("", p.CreateUser)
		users.PUT("/:id", p.UpdateUser)
		users.DELETE("/:id", p.DeleteUser)

		admin.PUT("/stats", middleware.SectionRequired(services.SectionStatistics), p.ReplaceStats)
	}

	r.NoRoute(SPA(staticDir))
}
