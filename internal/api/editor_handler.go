package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"typecraft/internal/artifact"
	"typecraft/internal/deck"
	"typecraft/internal/editor"
	"typecraft/internal/template"
)

// EditorHandler 暴露编辑器控制器的全部操作。
// 每个端点都返回最新的编辑器状态（含渲染后的预览 HTML）。
type EditorHandler struct {
	ctl *editor.Controller
}

func NewEditorHandler(ctl *editor.Controller) *EditorHandler {
	return &EditorHandler{ctl: ctl}
}

// artifactParam parses the :artifact path segment; unknown ids 404.
func artifactParam(c *gin.Context) (artifact.ID, bool) {
	id, ok := artifact.Parse(c.Param("artifact"))
	if !ok {
		NotFound(c, "unknown artifact")
		return "", false
	}
	return id, true
}

func (h *EditorHandler) respond(c *gin.Context, st editor.State, ok bool) {
	if !ok {
		NotFound(c, "unknown artifact")
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /v1/editor/:artifact
func (h *EditorHandler) Open(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	st, ok := h.ctl.Open(c.Request.Context(), id)
	h.respond(c, st, ok)
}

type setLayoutRequest struct {
	Layout string `json:"layout" binding:"required"`
}

// PUT /v1/editor/:artifact/layout
func (h *EditorHandler) SetLayout(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	var req setLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.SetLayout(c.Request.Context(), id, req.Layout)
	h.respond(c, st, ok)
}

// PUT /v1/editor/:artifact/theme
// 请求体是主题补丁，空字段保留当前值。
func (h *EditorHandler) SetTheme(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	var th template.Theme
	if err := c.ShouldBindJSON(&th); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.SetTheme(c.Request.Context(), id, th)
	h.respond(c, st, ok)
}

// PATCH /v1/editor/:artifact/answers
// 请求体是 answers 补丁；值为 null 的键会被删除。
func (h *EditorHandler) PatchAnswers(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	var patch template.Answers
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.SetAnswers(c.Request.Context(), id, patch)
	h.respond(c, st, ok)
}

type setSlugRequest struct {
	Slug string `json:"slug"`
}

// PUT /v1/editor/:artifact/slug
func (h *EditorHandler) SetSavedSlug(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	var req setSlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.SetSavedSlug(c.Request.Context(), id, req.Slug)
	h.respond(c, st, ok)
}

// POST /v1/editor/:artifact/next
func (h *EditorHandler) Next(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	st, ok := h.ctl.Next(c.Request.Context(), id)
	h.respond(c, st, ok)
}

// POST /v1/editor/:artifact/prev
func (h *EditorHandler) Prev(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	st, ok := h.ctl.Prev(c.Request.Context(), id)
	h.respond(c, st, ok)
}

// POST /v1/editor/:artifact/reset
func (h *EditorHandler) Reset(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	st, ok := h.ctl.Reset(c.Request.Context(), id)
	h.respond(c, st, ok)
}

// GET /v1/editor/:artifact/panels/:name?default=1
func (h *EditorHandler) GetPanel(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	def := c.DefaultQuery("default", "1") != "0"
	open := h.ctl.PanelOpen(c.Request.Context(), id, c.Param("name"), def)
	c.JSON(http.StatusOK, gin.H{"open": open})
}

type setPanelRequest struct {
	Open bool `json:"open"`
}

// PUT /v1/editor/:artifact/panels/:name
func (h *EditorHandler) SetPanel(c *gin.Context) {
	id, ok := artifactParam(c)
	if !ok {
		return
	}
	var req setPanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.ctl.SetPanelOpen(c.Request.Context(), id, c.Param("name"), req.Open)
	c.JSON(http.StatusOK, gin.H{"open": req.Open})
}

// requireDeck ensures the deck sub-editor routes only fire for pitch decks.
func (h *EditorHandler) requireDeck(c *gin.Context) bool {
	id, ok := artifactParam(c)
	if !ok {
		return false
	}
	if id != artifact.PitchDeck {
		BadRequest(c, "slide operations only apply to pitch decks")
		return false
	}
	return true
}

type addSlideRequest struct {
	After string `json:"after"`
}

// POST /v1/editor/pitch_deck/slides
func (h *EditorHandler) AddSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	var req addSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.AddSlide(c.Request.Context(), req.After)
	h.respond(c, st, ok)
}

// DELETE /v1/editor/pitch_deck/slides/:id
func (h *EditorHandler) RemoveSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	st, ok := h.ctl.RemoveSlide(c.Request.Context(), c.Param("id"))
	h.respond(c, st, ok)
}

type moveSlideRequest struct {
	Dir int `json:"dir" binding:"required"`
}

// POST /v1/editor/pitch_deck/slides/:id/move
// dir 为 -1（上移）或 1（下移），越界移动是空操作。
func (h *EditorHandler) MoveSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	var req moveSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Dir != -1 && req.Dir != 1 {
		BadRequest(c, "dir must be -1 or 1")
		return
	}
	st, ok := h.ctl.MoveSlide(c.Request.Context(), c.Param("id"), req.Dir)
	h.respond(c, st, ok)
}

// POST /v1/editor/pitch_deck/slides/:id/select
func (h *EditorHandler) SelectSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	st, ok := h.ctl.SelectSlide(c.Request.Context(), c.Param("id"))
	h.respond(c, st, ok)
}

// PATCH /v1/editor/pitch_deck/slides/:id
func (h *EditorHandler) PatchSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	var p deck.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.PatchSlide(c.Request.Context(), c.Param("id"), p)
	h.respond(c, st, ok)
}

type retypeSlideRequest struct {
	Type deck.Type `json:"type" binding:"required"`
}

// PUT /v1/editor/pitch_deck/slides/:id/type
func (h *EditorHandler) RetypeSlide(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	var req retypeSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.RetypeSlide(c.Request.Context(), c.Param("id"), req.Type)
	h.respond(c, st, ok)
}

// POST /v1/editor/pitch_deck/slides/:id/commit-bullets
func (h *EditorHandler) CommitBullets(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	st, ok := h.ctl.CommitBullets(c.Request.Context(), c.Param("id"))
	h.respond(c, st, ok)
}

type setLogoRequest struct {
	URL string `json:"url"`
}

// PUT /v1/editor/pitch_deck/logo
func (h *EditorHandler) SetLogo(c *gin.Context) {
	if !h.requireDeck(c) {
		return
	}
	var req setLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	st, ok := h.ctl.SetLogo(c.Request.Context(), req.URL)
	h.respond(c, st, ok)
}
