package main

import (
	"fmt"
	"log"

	"resumehub/internal/config"
	"resumehub/internal/handler"
	"resumehub/internal/mapper"
	"resumehub/internal/parser/resumesdk"
	"resumehub/internal/repository/postgres"
	"resumehub/internal/router"
	"resumehub/internal/schema"
	"resumehub/internal/service"
	"resumehub/internal/storage/disk"
	"resumehub/internal/xlsxexport"
)

// @title ResumeHub API
// @version 1.0
// @description Resume ingestion, parsing and normalization service.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	eventRepo := postgres.NewParseEventRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	projectRepo := postgres.NewProjectRepo(db)

	// Initialize storage and the external parser client
	store := disk.NewStore(&cfg.Storage)
	parserClient := resumesdk.NewClient(&cfg.Parser)

	// The field-group registry is built once and injected everywhere.
	registry := schema.NewRegistry()
	fieldMapper := mapper.New(registry)

	// Initialize services
	resumeSvc := service.NewResumeService(eventRepo, fileRepo, store, parserClient, fieldMapper)
	fileSvc := service.NewFileService(fileRepo, projectRepo, store, cfg.Storage.MaxFileSizeBytes())
	projectSvc := service.NewProjectService(projectRepo, fileRepo, store)
	systemSvc := service.NewSystemService(fileRepo, projectRepo, store, cfg.Storage.DataDir)

	// Initialize handlers
	resumeH := handler.NewResumeHandler(resumeSvc, xlsxexport.NewWriter(registry))
	fileH := handler.NewFileHandler(fileSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	schemaH := handler.NewSchemaHandler(registry)
	systemH := handler.NewSystemHandler(systemSvc)
	healthH := handler.NewHealthHandler(db, cfg.Storage.DataDir)

	// Setup router
	r := router.Setup(cfg, resumeH, fileH, projectH, schemaH, systemH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
