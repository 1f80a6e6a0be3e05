package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"typecraft/internal/artifact"
	"typecraft/internal/database"
	"typecraft/internal/render"
	"typecraft/internal/sharecode"
	"typecraft/internal/slug"
	"typecraft/internal/template"
)

// ArtifactHandler 负责文档快照的保存、查询与公开分享页。
type ArtifactHandler struct {
	db        *gorm.DB
	watermark bool
}

func NewArtifactHandler(db *gorm.DB, watermark bool) *ArtifactHandler {
	return &ArtifactHandler{db: db, watermark: watermark}
}

type renderRequest struct {
	Artifact string           `json:"artifact" binding:"required"`
	Layout   string           `json:"layout"`
	Theme    template.Theme   `json:"theme"`
	Answers  template.Answers `json:"answers"`
}

// resolveRender normalizes a render request against the template registry and
// produces the HTML.
func (h *ArtifactHandler) resolveRender(req renderRequest) (artifact.ID, string, template.Theme, string, bool) {
	id, ok := artifact.Parse(req.Artifact)
	if !ok {
		return "", "", template.Theme{}, "", false
	}
	layout := req.Layout
	theme := req.Theme
	if tpl, found := template.Get(id); found {
		if layout == "" || !tpl.HasLayout(layout) {
			layout = tpl.DefaultLayoutID
		}
		theme = tpl.DefaultTheme.Merge(req.Theme)
	}
	rendered := render.WithOptions(id, req.Answers, theme, layout, render.Options{Watermark: h.watermark})
	return id, layout, theme, rendered, true
}

// POST /v1/render/preview
// 纯函数渲染：入参即出参，不落库。
func (h *ArtifactHandler) Preview(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	id, layout, _, rendered, ok := h.resolveRender(req)
	if !ok {
		NotFound(c, "unknown artifact")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artifact": id,
		"layout":   layout,
		"html":     rendered,
	})
}

type createArtifactRequest struct {
	renderRequest
	IsPublic bool `json:"is_public"`
}

type artifactResponse struct {
	ID        string         `json:"id"`
	Artifact  string         `json:"artifact"`
	Layout    string         `json:"layout"`
	Theme     datatypes.JSON `json:"theme"`
	Answers   datatypes.JSON `json:"answers"`
	ShareSlug string         `json:"share_slug"`
	ShareCode string         `json:"share_code,omitempty"`
	IsPublic  bool           `json:"is_public"`
	CreatedAt time.Time      `json:"created_at"`
}

// POST /v1/artifacts
// 保存快照并同时签发两种分享方式：短链 slug 和自包含 share code。
func (h *ArtifactHandler) CreateArtifact(c *gin.Context) {
	var req createArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	id, layout, theme, rendered, ok := h.resolveRender(req.renderRequest)
	if !ok {
		NotFound(c, "unknown artifact")
		return
	}

	themeJSON, err := jsonColumn(theme)
	if err != nil {
		Internal(c, "failed to encode theme")
		return
	}
	answersJSON, err := jsonColumn(req.Answers)
	if err != nil {
		Internal(c, "failed to encode answers")
		return
	}

	model := database.Artifact{
		ID:           uuid.NewString(),
		Type:         id.String(),
		Layout:       layout,
		Theme:        themeJSON,
		Answers:      answersJSON,
		RenderedHTML: rendered,
		ShareSlug:    slug.Share(),
		IsPublic:     req.IsPublic,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&model).Error; err != nil {
		Internal(c, "failed to save artifact")
		return
	}

	code, err := sharecode.Encode(sharecode.Payload{
		Artifact:     id,
		Layout:       layout,
		Theme:        theme,
		Answers:      req.Answers,
		RenderedHTML: rendered,
		IsPublic:     req.IsPublic,
		CreatedAt:    model.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		Internal(c, "failed to encode share code")
		return
	}

	c.JSON(http.StatusCreated, artifactResponse{
		ID:        model.ID,
		Artifact:  model.Type,
		Layout:    model.Layout,
		Theme:     model.Theme,
		Answers:   model.Answers,
		ShareSlug: model.ShareSlug,
		ShareCode: code,
		IsPublic:  model.IsPublic,
		CreatedAt: model.CreatedAt,
	})
}

// GET /v1/artifacts/:id
func (h *ArtifactHandler) GetArtifact(c *gin.Context) {
	var model database.Artifact
	if err := h.db.WithContext(c.Request.Context()).
		First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "artifact not found")
			return
		}
		Internal(c, "failed to query artifact")
		return
	}
	c.JSON(http.StatusOK, artifactResponse{
		ID:        model.ID,
		Artifact:  model.Type,
		Layout:    model.Layout,
		Theme:     model.Theme,
		Answers:   model.Answers,
		ShareSlug: model.ShareSlug,
		IsPublic:  model.IsPublic,
		CreatedAt: model.CreatedAt,
	})
}

// GET /r/:slug
// 公开分享页：只有 is_public 的快照可见，其余一律 404。
func (h *ArtifactHandler) ViewShared(c *gin.Context) {
	var model database.Artifact
	err := h.db.WithContext(c.Request.Context()).
		Where("share_slug = ? AND is_public = ?", c.Param("slug"), true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.sharePageNotFound(c)
			return
		}
		Internal(c, "failed to query artifact")
		return
	}
	h.sharePage(c, model.Type, model.RenderedHTML)
}

// GET /r?d=<code>
// 自包含分享：快照完整编码在 URL 中，无需数据库。
func (h *ArtifactHandler) ViewEncoded(c *gin.Context) {
	p, err := sharecode.Decode(c.Query("d"))
	if err != nil {
		h.sharePageNotFound(c)
		return
	}
	h.sharePage(c, p.Artifact.String(), p.RenderedHTML)
}

func (h *ArtifactHandler) sharePage(c *gin.Context, artifactType, inner string) {
	page := fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>Shared %s · TypeCraft</title>
</head>
<body style="margin:0;padding:32px 16px;background:#f4f4f5;">
<div style="max-width:1100px;margin:0 auto;">%s</div>
</body>
</html>`, html.EscapeString(artifactType), inner)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *ArtifactHandler) sharePageNotFound(c *gin.Context) {
	page := `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Not found · TypeCraft</title></head>
<body style="margin:0;padding:80px 16px;background:#f4f4f5;font-family:system-ui;text-align:center;">
<div style="font-size:40px;font-weight:900;">404</div>
<div style="margin-top:8px;color:#52525b;">This share link does not exist or is no longer public.</div>
</body>
</html>`
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(page))
}

func jsonColumn(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
