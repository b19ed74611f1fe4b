package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "resumehub/docs"
	"resumehub/internal/config"
	"resumehub/internal/handler"
	"resumehub/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	resumeH *handler.ResumeHandler,
	fileH *handler.FileHandler,
	projectH *handler.ProjectHandler,
	schemaH *handler.SchemaHandler,
	systemH *handler.SystemHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/health", healthH.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Resume records
	resume := v1.Group("/resume")
	resume.GET("/latest", resumeH.GetLatest)
	resume.GET("/all", resumeH.GetAll)
	resume.GET("/:id", resumeH.GetByID)
	resume.GET("/:id/export", resumeH.Export)
	resume.POST("", resumeH.Save)
	resume.PUT("/:id", resumeH.Update)
	resume.DELETE("/:id", resumeH.Delete)

	// Schema registry (read-only)
	sch := v1.Group("/schema")
	sch.GET("/groups", schemaH.Groups)
	sch.GET("/groups/:key/fields", schemaH.GroupFields)

	// Projects
	projects := v1.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.Get)
	projects.DELETE("/:id", projectH.Delete)
	projects.POST("/:id/files", fileH.UploadToProject)
	projects.GET("/:id/files", fileH.ListByProject)

	// Files
	files := v1.Group("/files")
	files.POST("/category/:category", fileH.UploadToCategory)
	files.GET("/category/:category", fileH.ListByCategory)
	files.GET("/:id/download", fileH.Download)
	files.POST("/:id/parse", resumeH.Parse)
	files.PUT("/:id/parse-status", fileH.UpdateParseStatus)
	files.PUT("/:id/sync-status", fileH.UpdateSyncStatus)
	files.DELETE("/:id", fileH.Delete)

	// System
	v1.GET("/system/info", systemH.Info)

	return r
}
