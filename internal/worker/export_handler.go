// Package worker consumes export tasks from the asynq queue: it re-renders
// the saved artifact, produces the requested format and uploads the result
// to object storage.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"typecraft/internal/artifact"
	"typecraft/internal/database"
	"typecraft/internal/deck"
	"typecraft/internal/errcode"
	"typecraft/internal/export"
	"typecraft/internal/pdf"
	"typecraft/internal/render"
	"typecraft/internal/storage"
	"typecraft/internal/tasks"
	"typecraft/internal/template"
)

// Content types per export format.
var exportContentTypes = map[string]string{
	tasks.FormatPDF:  "application/pdf",
	tasks.FormatPNG:  "image/png",
	tasks.FormatDOC:  "application/msword",
	tasks.FormatPPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	tasks.FormatZIP:  "application/zip",
}

// ExportTaskHandler 负责消费所有格式的导出任务。
type ExportTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewExportTaskHandler 创建任务处理器。
func NewExportTaskHandler(
	db *gorm.DB,
	storage *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		db:          db,
		storage:     storage,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Register binds every export task type to the handler.
func (h *ExportTaskHandler) Register(mux *asynq.ServeMux) {
	for _, t := range []string{
		tasks.TypeExportPDF,
		tasks.TypeExportPNG,
		tasks.TypeExportDOC,
		tasks.TypeExportPPTX,
		tasks.TypeExportZIP,
	} {
		mux.Handle(t, h)
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("export_id", payload.ExportID),
		slog.String("artifact_id", payload.ArtifactID),
	)

	var job database.Export
	if err := h.db.WithContext(ctx).First(&job, "id = ?", payload.ExportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("export job not found, skipping task")
			return nil
		}
		log.Error("query export job failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.String("format", job.Format))
	log.Info("Starting export task...")

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		msg := strings.TrimSpace(retErr.Error())
		if err := h.db.WithContext(ctx).Model(&job).Updates(map[string]any{
			"status": database.ExportFailed,
			"error":  msg,
		}).Error; err != nil {
			log.Error("mark export failed", slog.Any("error", err))
		}
		notify := ExportNotifyMessage{
			Status:        "error",
			ExportID:      job.ID,
			Format:        job.Format,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  msg,
		}
		if err := h.publishExportNotify(ctx, payload.EditorID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	var art database.Artifact
	if err := h.db.WithContext(ctx).First(&art, "id = ?", job.ArtifactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("artifact not found, marking export failed")
			if err := h.db.WithContext(ctx).Model(&job).Updates(map[string]any{
				"status": database.ExportFailed,
				"error":  "artifact not found",
			}).Error; err != nil {
				log.Error("mark export failed", slog.Any("error", err))
			}
			notify := ExportNotifyMessage{
				Status:        "error",
				ExportID:      job.ID,
				Format:        job.Format,
				CorrelationID: payload.CorrelationID,
				ErrorCode:     errcode.ResourceMissing,
				ErrorMessage:  "artifact not found",
			}
			if err := h.publishExportNotify(ctx, payload.EditorID, notify); err != nil {
				log.Error("publish export error notification failed", slog.Any("error", err))
			}
			return nil
		}
		log.Error("query artifact failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&job).Update("status", database.ExportRunning).Error; err != nil {
		log.Error("mark export running", slog.Any("error", err))
		return err
	}

	data, err := h.buildExport(art, job.Format)
	if err != nil {
		log.Error("build export failed", slog.Any("error", err))
		return err
	}

	ext := job.Format
	objectName := fmt.Sprintf("%s%s/%s.%s", storage.ExportPrefix, art.ID, uuid.NewString(), ext)
	contentType := exportContentTypes[job.Format]
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		log.Error("upload export to minio failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&job).Updates(map[string]any{
		"status":     database.ExportCompleted,
		"object_key": objectName,
		"error":      "",
	}).Error; err != nil {
		log.Error("update export job failed", slog.Any("error", err))
		return err
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		ExportID:      job.ID,
		Format:        job.Format,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
		ObjectKey:     objectName,
	}
	if err := h.publishExportNotify(ctx, payload.EditorID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("Export task completed successfully.")
	return nil
}

// buildExport produces the export bytes for one artifact snapshot.
func (h *ExportTaskHandler) buildExport(art database.Artifact, format string) ([]byte, error) {
	id := artifact.ID(art.Type)
	answers, theme := decodeSnapshot(art)

	switch format {
	case tasks.FormatPDF:
		return pdf.FromHTML(h.renderHTML(art, id, answers, theme))
	case tasks.FormatPNG:
		return pdf.CapturePNG(h.renderHTML(art, id, answers, theme))
	case tasks.FormatDOC:
		return export.DocFromHTML(h.renderHTML(art, id, answers, theme)), nil
	case tasks.FormatPPTX:
		if id != artifact.PitchDeck {
			return nil, fmt.Errorf("pptx export only supports pitch decks, got %q", art.Type)
		}
		d := deck.FromAnswers(answers).Ensure()
		return export.PitchDeckPPTX(d, theme, art.Layout)
	case tasks.FormatZIP:
		if id != artifact.PitchDeck {
			return nil, fmt.Errorf("zip export only supports pitch decks, got %q", art.Type)
		}
		return h.buildSlidesZIP(id, answers, theme, art.Layout)
	default:
		return nil, tasks.ErrUnknownFormat
	}
}

// buildSlidesZIP screenshots every slide one by one and bundles the PNGs.
func (h *ExportTaskHandler) buildSlidesZIP(id artifact.ID, answers template.Answers, theme template.Theme, layout string) ([]byte, error) {
	d := deck.FromAnswers(answers).Ensure()
	images := make([][]byte, 0, len(d.Slides))
	for _, s := range d.Slides {
		html := render.Render(id, d.Select(s.ID).ToAnswers(answers), theme, layout)
		img, err := pdf.CapturePNG(html)
		if err != nil {
			return nil, fmt.Errorf("capture slide %s: %w", s.ID, err)
		}
		images = append(images, img)
	}
	return export.SlidesZIP(images)
}

// renderHTML prefers the stored snapshot; blank snapshots re-render from the
// saved answers so older rows still export.
func (h *ExportTaskHandler) renderHTML(art database.Artifact, id artifact.ID, answers template.Answers, theme template.Theme) string {
	if strings.TrimSpace(art.RenderedHTML) != "" {
		return art.RenderedHTML
	}
	return render.Render(id, answers, theme, art.Layout)
}

// decodeSnapshot parses the JSONB columns; malformed JSON degrades to empty
// values and the renderer's defaults take over.
func decodeSnapshot(art database.Artifact) (template.Answers, template.Theme) {
	answers := template.Answers{}
	if len(art.Answers) > 0 {
		_ = json.Unmarshal(art.Answers, &answers)
	}
	var theme template.Theme
	if len(art.Theme) > 0 {
		_ = json.Unmarshal(art.Theme, &theme)
	}
	if tpl, ok := template.Get(artifact.ID(art.Type)); ok {
		theme = tpl.DefaultTheme.Merge(theme)
	}
	return answers, theme
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, editorID string, notify ExportNotifyMessage) error {
	if strings.TrimSpace(editorID) == "" {
		return nil
	}
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("editor_notify:%s", editorID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
