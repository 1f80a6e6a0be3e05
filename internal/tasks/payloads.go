package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeExportPDF  = "export:pdf"
	TypeExportPNG  = "export:png"
	TypeExportDOC  = "export:doc"
	TypeExportPPTX = "export:pptx"
	TypeExportZIP  = "export:zip"
)

// Export formats as they appear in API requests and Export rows.
const (
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatDOC  = "doc"
	FormatPPTX = "pptx"
	FormatZIP  = "zip"
)

// ExportPayload 描述一次导出任务所需的最小信息。
// EditorID 用于完成后的通知频道,可为空。
type ExportPayload struct {
	ExportID      string `json:"export_id"`
	ArtifactID    string `json:"artifact_id"`
	EditorID      string `json:"editor_id,omitempty"`
	CorrelationID string `json:"correlation_id"`
}

// taskType maps an export format to its asynq task type.
func taskType(format string) (string, bool) {
	switch format {
	case FormatPDF:
		return TypeExportPDF, true
	case FormatPNG:
		return TypeExportPNG, true
	case FormatDOC:
		return TypeExportDOC, true
	case FormatPPTX:
		return TypeExportPPTX, true
	case FormatZIP:
		return TypeExportZIP, true
	default:
		return "", false
	}
}

// ValidFormat reports whether format names a supported export.
func ValidFormat(format string) bool {
	_, ok := taskType(format)
	return ok
}

// NewExportTask 构造一个导出任务。
func NewExportTask(format string, p ExportPayload) (*asynq.Task, error) {
	t, ok := taskType(format)
	if !ok {
		return nil, ErrUnknownFormat
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(t, payload), nil
}
