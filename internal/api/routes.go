package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"resumebuilder/internal/config"
	"resumebuilder/internal/export"
	"resumebuilder/internal/resume"
)

// Deps 汇总路由需要的全部依赖；cmd/api 里大多由 redis / asynq / minio 客户端直接满足。
type Deps struct {
	Service     resume.Service
	Documents   DocumentGenerator
	Exports     export.Repository
	Queue       TaskEnqueuer
	RateCounter RateCounter
	Subscriber  Subscriber
	Storage     ObjectStorage
	Export      config.ExportConfig
	MaxRetry    int
	Logger      *slog.Logger
}

// RegisterRoutes 注册 /v1 下的全部路由。
func RegisterRoutes(router *gin.Engine, deps Deps) {
	userHandler := NewUserHandler(deps.Service)
	resumeHandler := NewResumeHandler(deps.Service, deps.Documents, deps.Storage)
	sectionHandler := NewSectionHandler(deps.Service)
	templateHandler := NewTemplateHandler(deps.Service)
	exportHandler := NewExportHandler(deps.Service, deps.Exports, deps.Queue, deps.RateCounter, deps.Storage, deps.Export, deps.MaxRetry)
	wsHandler := NewWsHandler(deps.Subscriber, deps.Logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		users := v1.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
			users.GET("/:id/resumes", userHandler.ListResumes)
		}

		resumes := v1.Group("/resumes")
		{
			resumes.POST("", resumeHandler.Create)
			resumes.GET("/:id", resumeHandler.Get)
			resumes.PATCH("/:id", resumeHandler.Update)
			resumes.DELETE("/:id", resumeHandler.Delete)
			resumes.GET("/:id/full", resumeHandler.GetFull)
			resumes.GET("/:id/document", resumeHandler.Document)
			resumes.POST("/:id/exports", exportHandler.Create)
			resumes.GET("/:id/work-experiences", sectionHandler.ListWorkExperiences)
			resumes.GET("/:id/education", sectionHandler.ListEducation)
			resumes.GET("/:id/skills", sectionHandler.ListSkills)
		}

		work := v1.Group("/work-experiences")
		{
			work.POST("", sectionHandler.CreateWorkExperience)
			work.PATCH("/:id", sectionHandler.UpdateWorkExperience)
			work.DELETE("/:id", sectionHandler.DeleteWorkExperience)
		}

		education := v1.Group("/education")
		{
			education.POST("", sectionHandler.CreateEducation)
			education.PATCH("/:id", sectionHandler.UpdateEducation)
			education.DELETE("/:id", sectionHandler.DeleteEducation)
		}

		skills := v1.Group("/skills")
		{
			skills.POST("", sectionHandler.CreateSkill)
			skills.PATCH("/:id", sectionHandler.UpdateSkill)
			skills.DELETE("/:id", sectionHandler.DeleteSkill)
		}

		templates := v1.Group("/templates")
		{
			templates.POST("", templateHandler.Create)
			templates.GET("", templateHandler.ListActive)
		}

		exports := v1.Group("/exports")
		{
			exports.GET("/:id", exportHandler.Get)
			exports.GET("/:id/download-link", exportHandler.DownloadLink)
		}
	}
}
