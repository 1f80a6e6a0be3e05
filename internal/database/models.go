package database

import (
	"time"

	"gorm.io/datatypes"
)

// Artifact 表示一次保存分享的文档快照。
// theme 与 answers 以 JSONB 原样存储,rendered_html 是分享页直接输出的内容。
type Artifact struct {
	ID           string         `gorm:"primaryKey;size:36"`
	Type         string         `gorm:"size:64;index"`
	Layout       string         `gorm:"size:64"`
	Theme        datatypes.JSON `gorm:"type:jsonb"`
	Answers      datatypes.JSON `gorm:"type:jsonb"`
	RenderedHTML string         `gorm:"column:rendered_html"`
	ShareSlug    string         `gorm:"uniqueIndex;size:16"`
	IsPublic     bool           `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Export tracks one background export job and the object it produced.
type Export struct {
	ID         string `gorm:"primaryKey;size:36"`
	ArtifactID string `gorm:"size:36;index"`
	Format     string `gorm:"size:16"`
	Status     string `gorm:"size:32"`
	ObjectKey  string `gorm:"size:512"`
	Error      string `gorm:"size:1024"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Export statuses.
const (
	ExportPending   = "pending"
	ExportRunning   = "running"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)
