package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"typecraft/internal/editor"
)

func newEditorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctl := editor.NewController(editor.NewMemoryStore(), "test", nil)
	h := NewEditorHandler(ctl)

	router := gin.New()
	g := router.Group("/v1/editor/:artifact")
	g.GET("", h.Open)
	g.PUT("/layout", h.SetLayout)
	g.PATCH("/answers", h.PatchAnswers)
	g.POST("/next", h.Next)
	g.POST("/slides", h.AddSlide)
	g.DELETE("/slides/:id", h.RemoveSlide)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) editor.State {
	t.Helper()
	var st editor.State
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode state: %v body=%s", err, w.Body.String())
	}
	return st
}

func TestEditorOpenAndMutate(t *testing.T) {
	router := newEditorRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/editor/status_card", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open: expected 200, got %d", w.Code)
	}
	st := decodeState(t, w)
	if st.Step != editor.StepLayout {
		t.Fatalf("open step: %d", st.Step)
	}

	w = doJSON(t, router, http.MethodPut, "/v1/editor/status_card/layout", map[string]any{"layout": "status_b"})
	if st = decodeState(t, w); st.Layout != "status_b" {
		t.Fatalf("layout: %q", st.Layout)
	}

	w = doJSON(t, router, http.MethodPatch, "/v1/editor/status_card/answers", map[string]any{"title": "Week 5"})
	if st = decodeState(t, w); st.Answers.Text("title") != "Week 5" {
		t.Fatalf("answers: %+v", st.Answers)
	}

	w = doJSON(t, router, http.MethodPost, "/v1/editor/status_card/next", nil)
	if st = decodeState(t, w); st.Step != editor.StepFill {
		t.Fatalf("next step: %d", st.Step)
	}
}

func TestEditorUnknownArtifact(t *testing.T) {
	router := newEditorRouter(t)
	w := doJSON(t, router, http.MethodGet, "/v1/editor/bogus", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeckRoutesRejectNonDecks(t *testing.T) {
	router := newEditorRouter(t)
	w := doJSON(t, router, http.MethodPost, "/v1/editor/status_card/slides", map[string]any{"after": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeckRoutes(t *testing.T) {
	router := newEditorRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/editor/pitch_deck", nil)
	st := decodeState(t, w)
	slides := st.Answers["slides"].([]any)
	if len(slides) != 6 {
		t.Fatalf("starter slides: %d", len(slides))
	}

	w = doJSON(t, router, http.MethodPost, "/v1/editor/pitch_deck/slides", map[string]any{"after": "s2"})
	st = decodeState(t, w)
	if got := len(st.Answers["slides"].([]any)); got != 7 {
		t.Fatalf("after add: %d slides", got)
	}

	w = doJSON(t, router, http.MethodDelete, "/v1/editor/pitch_deck/slides/s2", nil)
	st = decodeState(t, w)
	if got := len(st.Answers["slides"].([]any)); got != 6 {
		t.Fatalf("after remove: %d slides", got)
	}
}
