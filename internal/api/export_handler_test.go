package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"typecraft/internal/database"
)

func newExportRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(db, nil, nil)

	router := gin.New()
	router.POST("/v1/exports", h.CreateExport)
	router.GET("/v1/exports/:id", h.GetExport)
	router.GET("/v1/exports/:id/download-link", h.GetDownloadLink)
	router.GET("/v1/exports/:id/file", h.DownloadFile)
	router.DELETE("/v1/exports/:id", h.DeleteExport)
	return router
}

func seedArtifact(t *testing.T, db *gorm.DB, artifactType string) database.Artifact {
	t.Helper()
	row := database.Artifact{
		ID:           "11111111-1111-1111-1111-111111111111",
		Type:         artifactType,
		Layout:       "status_a",
		RenderedHTML: "<div>doc</div>",
		ShareSlug:    "slug123456",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed artifact: %v", err)
	}
	return row
}

func TestCreateExportRejectsUnknownFormat(t *testing.T) {
	db := newTestDB(t)
	seedArtifact(t, db, "status_card")
	router := newExportRouter(t, db)

	w := postJSON(t, router, "/v1/exports", map[string]any{
		"artifact_id": "11111111-1111-1111-1111-111111111111",
		"format":      "gif",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCreateExportArtifactNotFound(t *testing.T) {
	router := newExportRouter(t, newTestDB(t))

	w := postJSON(t, router, "/v1/exports", map[string]any{
		"artifact_id": "missing",
		"format":      "pdf",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateExportDeckFormatsRequireDeck(t *testing.T) {
	db := newTestDB(t)
	seedArtifact(t, db, "status_card")
	router := newExportRouter(t, db)

	for _, format := range []string{"pptx", "zip"} {
		w := postJSON(t, router, "/v1/exports", map[string]any{
			"artifact_id": "11111111-1111-1111-1111-111111111111",
			"format":      format,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s on a status card: expected 400, got %d", format, w.Code)
		}
	}
}

func TestGetExportStatus(t *testing.T) {
	db := newTestDB(t)
	art := seedArtifact(t, db, "status_card")
	job := database.Export{
		ID:         "22222222-2222-2222-2222-222222222222",
		ArtifactID: art.ID,
		Format:     "pdf",
		Status:     database.ExportRunning,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed export: %v", err)
	}
	router := newExportRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Status string `json:"status"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != database.ExportRunning || resp.Format != "pdf" {
		t.Fatalf("response: %+v", resp)
	}

	missing := httptest.NewRequest(http.MethodGet, "/v1/exports/unknown", nil)
	mw := httptest.NewRecorder()
	router.ServeHTTP(mw, missing)
	if mw.Code != http.StatusNotFound {
		t.Fatalf("missing export: expected 404, got %d", mw.Code)
	}
}

func TestDownloadLinkRequiresCompletedExport(t *testing.T) {
	db := newTestDB(t)
	art := seedArtifact(t, db, "status_card")
	job := database.Export{
		ID:         "33333333-3333-3333-3333-333333333333",
		ArtifactID: art.ID,
		Format:     "pdf",
		Status:     database.ExportPending,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed export: %v", err)
	}
	router := newExportRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID+"/download-link", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("pending export: expected 409, got %d", w.Code)
	}

	fw := httptest.NewRecorder()
	router.ServeHTTP(fw, httptest.NewRequest(http.MethodGet, "/v1/exports/"+job.ID+"/file", nil))
	if fw.Code != http.StatusConflict {
		t.Fatalf("pending export file: expected 409, got %d", fw.Code)
	}
}

func TestDeleteExport(t *testing.T) {
	db := newTestDB(t)
	art := seedArtifact(t, db, "status_card")
	job := database.Export{
		ID:         "44444444-4444-4444-4444-444444444444",
		ArtifactID: art.ID,
		Format:     "pdf",
		Status:     database.ExportPending,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed export: %v", err)
	}
	router := newExportRouter(t, db)

	req := httptest.NewRequest(http.MethodDelete, "/v1/exports/"+job.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.Model(&database.Export{}).Where("id = ?", job.ID).Count(&count).Error; err != nil {
		t.Fatalf("count exports: %v", err)
	}
	if count != 0 {
		t.Fatalf("export row still present after delete")
	}

	again := httptest.NewRecorder()
	router.ServeHTTP(again, httptest.NewRequest(http.MethodDelete, "/v1/exports/"+job.ID, nil))
	if again.Code != http.StatusNotFound {
		t.Fatalf("deleting twice: expected 404, got %d", again.Code)
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		artifactID string
		format     string
		want       string
	}{
		{"11111111-1111-1111-1111-111111111111", "pdf", "typecraft-11111111.pdf"},
		{"short", "pptx", "typecraft-short.pptx"},
		{"", "zip", "typecraft-.zip"},
	}
	for _, tc := range cases {
		if got := exportFilename(tc.artifactID, tc.format); got != tc.want {
			t.Errorf("exportFilename(%q, %q) = %q, want %q", tc.artifactID, tc.format, got, tc.want)
		}
	}
}
