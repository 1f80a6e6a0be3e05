package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"typecraft/internal/database"
	"typecraft/internal/sharecode"
	"typecraft/internal/template"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Artifact{}, &database.Export{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newArtifactRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewArtifactHandler(db, true)

	router := gin.New()
	router.GET("/r", h.ViewEncoded)
	router.GET("/r/:slug", h.ViewShared)
	router.POST("/v1/render/preview", h.Preview)
	router.POST("/v1/artifacts", h.CreateArtifact)
	router.GET("/v1/artifacts/:id", h.GetArtifact)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPreviewRendersHTML(t *testing.T) {
	router := newArtifactRouter(t, newTestDB(t))

	w := postJSON(t, router, "/v1/render/preview", map[string]any{
		"artifact": "status_card",
		"layout":   "status_b",
		"answers":  map[string]any{"project": "Rollout", "title": "Week 5"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Layout string `json:"layout"`
		HTML   string `json:"html"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Layout != "status_b" {
		t.Fatalf("layout: %q", resp.Layout)
	}
	if !strings.Contains(resp.HTML, "Week 5") {
		t.Fatal("preview HTML should carry the answers")
	}
}

func TestPreviewUnknownArtifact(t *testing.T) {
	router := newArtifactRouter(t, newTestDB(t))
	w := postJSON(t, router, "/v1/render/preview", map[string]any{"artifact": "bogus"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPreviewUnknownLayoutFallsBack(t *testing.T) {
	router := newArtifactRouter(t, newTestDB(t))
	w := postJSON(t, router, "/v1/render/preview", map[string]any{
		"artifact": "status_card",
		"layout":   "bogus_layout",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Layout string `json:"layout"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Layout != "status_a" {
		t.Fatalf("unknown layout should fall back to the default, got %q", resp.Layout)
	}
}

func TestCreateArtifactAndShare(t *testing.T) {
	db := newTestDB(t)
	router := newArtifactRouter(t, db)

	w := postJSON(t, router, "/v1/artifacts", map[string]any{
		"artifact":  "status_card",
		"layout":    "status_b",
		"answers":   map[string]any{"project": "Rollout", "title": "Week 5"},
		"is_public": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		ID        string `json:"id"`
		ShareSlug string `json:"share_slug"`
		ShareCode string `json:"share_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || len(resp.ShareSlug) != 10 {
		t.Fatalf("bad identifiers: %+v", resp)
	}

	// Slug route serves the stored snapshot.
	req := httptest.NewRequest(http.MethodGet, "/r/"+resp.ShareSlug, nil)
	slugW := httptest.NewRecorder()
	router.ServeHTTP(slugW, req)
	if slugW.Code != http.StatusOK {
		t.Fatalf("share page: expected 200, got %d", slugW.Code)
	}
	if !strings.Contains(slugW.Body.String(), "Week 5") {
		t.Fatal("share page should carry the rendered document")
	}

	// Encoded route serves the same snapshot without touching the row.
	p, err := sharecode.Decode(resp.ShareCode)
	if err != nil {
		t.Fatalf("decode share code: %v", err)
	}
	if !strings.Contains(p.RenderedHTML, "Week 5") {
		t.Fatal("share code should embed the rendered document")
	}
	encReq := httptest.NewRequest(http.MethodGet, "/r?d="+resp.ShareCode, nil)
	encW := httptest.NewRecorder()
	router.ServeHTTP(encW, encReq)
	if encW.Code != http.StatusOK {
		t.Fatalf("encoded share page: expected 200, got %d", encW.Code)
	}
	if !strings.Contains(encW.Body.String(), "Week 5") {
		t.Fatal("encoded share page should carry the rendered document")
	}

	// GET by id round-trips the stored answers.
	getReq := httptest.NewRequest(http.MethodGet, "/v1/artifacts/"+resp.ID, nil)
	getW := httptest.NewRecorder()
	router.ServeHTTP(getW, getReq)
	if getW.Code != http.StatusOK {
		t.Fatalf("get artifact: expected 200, got %d", getW.Code)
	}

	var row database.Artifact
	if err := db.First(&row, "id = ?", resp.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	var answers template.Answers
	if err := json.Unmarshal(row.Answers, &answers); err != nil {
		t.Fatalf("decode stored answers: %v", err)
	}
	if answers.Text("title") != "Week 5" {
		t.Fatalf("stored answers: %+v", answers)
	}
}

func TestPrivateArtifactNotShared(t *testing.T) {
	db := newTestDB(t)
	router := newArtifactRouter(t, db)

	w := postJSON(t, router, "/v1/artifacts", map[string]any{
		"artifact":  "status_card",
		"answers":   map[string]any{"project": "Secret"},
		"is_public": false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp struct {
		ShareSlug string `json:"share_slug"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/r/"+resp.ShareSlug, nil)
	pageW := httptest.NewRecorder()
	router.ServeHTTP(pageW, req)
	if pageW.Code != http.StatusNotFound {
		t.Fatalf("private snapshot must 404 on the share page, got %d", pageW.Code)
	}
}

func TestSharePageEscapesArtifactType(t *testing.T) {
	router := newArtifactRouter(t, newTestDB(t))

	// The encoded route carries a client-supplied type string; it must not
	// reach the page head unescaped.
	code, err := sharecode.Encode(sharecode.Payload{
		Artifact:     `<script>alert(1)</script>`,
		RenderedHTML: "<div>ok</div>",
	})
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/r?d="+code, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "<title>Shared <script>") {
		t.Fatal("artifact type reached the title unescaped")
	}
	if !strings.Contains(body, "Shared &lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("escaped title missing, body=%s", body)
	}
}

func TestShareRoutesNotFound(t *testing.T) {
	router := newArtifactRouter(t, newTestDB(t))

	for _, path := range []string{"/r/nope123456", "/r?d=garbage!!!", "/r"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}
