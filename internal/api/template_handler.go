package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

// TemplateHandler 负责模板相关的 API。
// 模板注册表是静态的，所以这里不依赖数据库。
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

type templateListItem struct {
	Artifact    artifact.ID `json:"artifact"`
	Label       string      `json:"label"`
	Desc        string      `json:"desc"`
	Size        string      `json:"size"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Layouts     int         `json:"layouts"`
}

// GET /v1/templates
// 按面板顺序返回全部模板的摘要。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	items := make([]templateListItem, 0, len(artifact.All))
	for _, def := range artifact.All {
		tpl, _ := template.Get(def.ID)
		items = append(items, templateListItem{
			Artifact:    def.ID,
			Label:       def.Label,
			Desc:        def.Desc,
			Size:        def.Size,
			Title:       tpl.Title,
			Description: tpl.Description,
			Layouts:     len(tpl.Layouts),
		})
	}
	c.JSON(http.StatusOK, items)
}

// GET /v1/templates/:artifact
// 返回单个模板的完整定义：布局、表单块、默认主题。
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := artifact.Parse(c.Param("artifact"))
	if !ok {
		NotFound(c, "unknown artifact")
		return
	}
	tpl, ok := template.Get(id)
	if !ok {
		NotFound(c, "template not found")
		return
	}
	c.JSON(http.StatusOK, tpl)
}
