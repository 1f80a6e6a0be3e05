package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"typecraft/internal/api/middleware"
	"typecraft/internal/artifact"
	"typecraft/internal/database"
	"typecraft/internal/storage"
	"typecraft/internal/tasks"
)

// ExportHandler 负责导出任务的创建与查询。
// 实际产物由 worker 异步生成，完成后通过 WebSocket 通知。
type ExportHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     *storage.Client
}

func NewExportHandler(db *gorm.DB, asynqClient *asynq.Client, storageClient *storage.Client) *ExportHandler {
	return &ExportHandler{
		db:          db,
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

type createExportRequest struct {
	ArtifactID string `json:"artifact_id" binding:"required"`
	Format     string `json:"format" binding:"required"`
	EditorID   string `json:"editor_id"`
}

type exportResponse struct {
	ID         string    `json:"id"`
	ArtifactID string    `json:"artifact_id"`
	Format     string    `json:"format"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newExportResponse(e database.Export) exportResponse {
	return exportResponse{
		ID:         e.ID,
		ArtifactID: e.ArtifactID,
		Format:     e.Format,
		Status:     e.Status,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// POST /v1/exports
// 校验格式与快照后落库并入队，返回 202。
func (h *ExportHandler) CreateExport(c *gin.Context) {
	var req createExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !tasks.ValidFormat(req.Format) {
		BadRequest(c, "unsupported export format")
		return
	}

	ctx := c.Request.Context()
	var art database.Artifact
	if err := h.db.WithContext(ctx).First(&art, "id = ?", req.ArtifactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "artifact not found")
			return
		}
		Internal(c, "failed to query artifact")
		return
	}

	deckOnly := req.Format == tasks.FormatPPTX || req.Format == tasks.FormatZIP
	if deckOnly && art.Type != artifact.PitchDeck.String() {
		BadRequest(c, fmt.Sprintf("%s export only applies to pitch decks", req.Format))
		return
	}

	job := database.Export{
		ID:         uuid.NewString(),
		ArtifactID: art.ID,
		Format:     req.Format,
		Status:     database.ExportPending,
	}
	if err := h.db.WithContext(ctx).Create(&job).Error; err != nil {
		Internal(c, "failed to create export")
		return
	}

	task, err := tasks.NewExportTask(req.Format, tasks.ExportPayload{
		ExportID:      job.ID,
		ArtifactID:    art.ID,
		EditorID:      req.EditorID,
		CorrelationID: middleware.GetCorrelationID(c),
	})
	if err != nil {
		Internal(c, "failed to build export task")
		return
	}
	if _, err := h.asynqClient.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(5*time.Minute)); err != nil {
		Internal(c, "failed to enqueue export task")
		return
	}

	c.JSON(http.StatusAccepted, newExportResponse(job))
}

// GET /v1/exports/:id
func (h *ExportHandler) GetExport(c *gin.Context) {
	job, ok := h.findExport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newExportResponse(job))
}

// GET /v1/exports/:id/download-link
// 完成的导出签发限时下载链接，文件名通过响应头指定。
func (h *ExportHandler) GetDownloadLink(c *gin.Context) {
	job, ok := h.findExport(c)
	if !ok {
		return
	}
	if job.Status != database.ExportCompleted || job.ObjectKey == "" {
		Conflict(c, "export not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURLWithParams(c.Request.Context(), job.ObjectKey, 5*time.Minute, map[string]string{
		"response-content-disposition": fmt.Sprintf("attachment; filename=%q", exportFilename(job.ArtifactID, job.Format)),
	})
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// GET /v1/exports/:id/file
// 直接回源下载。MinIO 端点未对客户端开放时用本路由代替签名链接。
func (h *ExportHandler) DownloadFile(c *gin.Context) {
	job, ok := h.findExport(c)
	if !ok {
		return
	}
	if job.Status != database.ExportCompleted || job.ObjectKey == "" {
		Conflict(c, "export not ready")
		return
	}

	obj, err := h.storage.GetObject(c.Request.Context(), job.ObjectKey)
	if err != nil {
		Internal(c, "failed to open export artifact")
		return
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		if storage.IsNoSuchKey(err) {
			NotFound(c, "export artifact missing")
			return
		}
		Internal(c, "failed to read export artifact")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(job.ArtifactID, job.Format)))
	c.DataFromReader(http.StatusOK, stat.Size, stat.ContentType, obj, nil)
}

// DELETE /v1/exports/:id
// 删除任务记录及其产物；对象删除是幂等的。
func (h *ExportHandler) DeleteExport(c *gin.Context) {
	job, ok := h.findExport(c)
	if !ok {
		return
	}

	if job.ObjectKey != "" {
		if err := h.storage.DeleteObject(c.Request.Context(), job.ObjectKey); err != nil {
			Internal(c, "failed to delete export artifact")
			return
		}
	}
	if err := h.db.WithContext(c.Request.Context()).Delete(&database.Export{}, "id = ?", job.ID).Error; err != nil {
		Internal(c, "failed to delete export")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportFilename 生成下载时的文件名。Artifact id 目前是 uuid，
// 但短 id 不应让请求崩溃。
func exportFilename(artifactID, format string) string {
	short := artifactID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("typecraft-%s.%s", short, format)
}

func (h *ExportHandler) findExport(c *gin.Context) (database.Export, bool) {
	var job database.Export
	if err := h.db.WithContext(c.Request.Context()).
		First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "export not found")
			return job, false
		}
		Internal(c, "failed to query export")
		return job, false
	}
	return job, true
}
