package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"typecraft/internal/artifact"
)

func newTemplateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewTemplateHandler()

	router := gin.New()
	router.GET("/v1/templates", h.ListTemplates)
	router.GET("/v1/templates/:artifact", h.GetTemplate)
	return router
}

func TestListTemplates(t *testing.T) {
	router := newTemplateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []templateListItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != len(artifact.All) {
		t.Fatalf("expected %d templates, got %d", len(artifact.All), len(items))
	}
	if items[0].Artifact != artifact.PitchDeck {
		t.Fatalf("panel order lost, first item: %s", items[0].Artifact)
	}
}

func TestGetTemplate(t *testing.T) {
	router := newTemplateRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates/status_card", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Artifact        string `json:"artifact"`
		DefaultLayoutID string `json:"default_layout_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Artifact != "status_card" || resp.DefaultLayoutID != "status_a" {
		t.Fatalf("response: %+v", resp)
	}

	missing := httptest.NewRequest(http.MethodGet, "/v1/templates/bogus", nil)
	mw := httptest.NewRecorder()
	router.ServeHTTP(mw, missing)
	if mw.Code != http.StatusNotFound {
		t.Fatalf("unknown artifact: expected 404, got %d", mw.Code)
	}
}
