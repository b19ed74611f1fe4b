package domain

// Category classifies uploaded files into fixed storage buckets.
type Category string

const (
	CategoryResume    Category = "resume"
	CategoryCompany   Category = "company"
	CategoryJob       Category = "job"
	CategoryKnowledge Category = "knowledge"
	CategoryProject   Category = "project"
)

// CategoryNames maps each category to its display name.
var CategoryNames = map[Category]string{
	CategoryResume:    "个人简历",
	CategoryCompany:   "公司介绍",
	CategoryJob:       "工作条件",
	CategoryKnowledge: "知识纪要",
	CategoryProject:   "项目文件",
}

// UploadCategories are the categories accepted by the category upload route.
// Project files go through the project-scoped route instead.
var UploadCategories = map[Category]bool{
	CategoryResume:    true,
	CategoryCompany:   true,
	CategoryJob:       true,
	CategoryKnowledge: true,
}

// AllowedExtensions lists the file extensions (without dot) accepted for upload.
var AllowedExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true, "md": true,
}

// ParseStatus represents the resume-parsing lifecycle of an uploaded file.
type ParseStatus string

const (
	ParseStatusPending    ParseStatus = "pending"
	ParseStatusProcessing ParseStatus = "processing"
	ParseStatusCompleted  ParseStatus = "completed"
	ParseStatusFailed     ParseStatus = "failed"
)

// SyncStatus represents the downstream indexing lifecycle of an uploaded file.
// It is driven by explicit caller updates and is independent of ParseStatus.
type SyncStatus string

const (
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusProcessing SyncStatus = "processing"
	SyncStatusCompleted  SyncStatus = "completed"
	SyncStatusFailed     SyncStatus = "failed"
)

// EventStatus is the outcome of a single parse invocation.
type EventStatus string

const (
	EventStatusCompleted EventStatus = "completed"
	EventStatusFailed    EventStatus = "failed"
)

// ValidParseStatus reports whether s is a known parse status.
func ValidParseStatus(s ParseStatus) bool {
	switch s {
	case ParseStatusPending, ParseStatusProcessing, ParseStatusCompleted, ParseStatusFailed:
		return true
	}
	return false
}

// ValidSyncStatus reports whether s is a known sync status.
func ValidSyncStatus(s SyncStatus) bool {
	switch s {
	case SyncStatusPending, SyncStatusProcessing, SyncStatusCompleted, SyncStatusFailed:
		return true
	}
	return false
}
