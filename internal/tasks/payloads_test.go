package tasks

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewExportTask(t *testing.T) {
	p := ExportPayload{
		ExportID:      "e1",
		ArtifactID:    "a1",
		EditorID:      "editor-1",
		CorrelationID: "c1",
	}

	task, err := NewExportTask(FormatPDF, p)
	if err != nil {
		t.Fatalf("new export task: %v", err)
	}
	if task.Type() != TypeExportPDF {
		t.Fatalf("task type: %q", task.Type())
	}

	var got ExportPayload
	if err := json.Unmarshal(task.Payload(), &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got != p {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestNewExportTaskUnknownFormat(t *testing.T) {
	if _, err := NewExportTask("gif", ExportPayload{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatPDF, FormatPNG, FormatDOC, FormatPPTX, FormatZIP} {
		if !ValidFormat(f) {
			t.Errorf("%s should be valid", f)
		}
	}
	for _, f := range []string{"", "gif", "PDF"} {
		if ValidFormat(f) {
			t.Errorf("%q should be invalid", f)
		}
	}
}
