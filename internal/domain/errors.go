package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrFileNotFound         = errors.New("file not found")
	ErrFileMissingOnDisk    = errors.New("file missing on disk")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrInvalidCategory      = errors.New("invalid file category")
	ErrEmptyProjectName     = errors.New("project name must not be empty")
	ErrDuplicateProjectName = errors.New("project name already exists")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrEmptyPayload         = errors.New("request payload must not be empty")
	ErrStoreFailed          = errors.New("writing file to storage failed")
)
