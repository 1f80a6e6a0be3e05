package render

import (
	"fmt"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

// Options tweak rendering at the edges; content always comes from answers.
type Options struct {
	// Watermark stamps the brand tag on the document. Defaults on.
	Watermark bool
	// Brand overrides the watermark text.
	Brand string
}

// DefaultBrand is the watermark text stamped on free documents.
const DefaultBrand = "TypeCraft · Free"

func (o Options) brand() string {
	if o.Brand == "" {
		return DefaultBrand
	}
	return o.Brand
}

func (o Options) watermark() string {
	if !o.Watermark {
		return ""
	}
	return watermark(o.brand())
}

// Render produces the HTML document for an artifact with default options.
func Render(id artifact.ID, a template.Answers, th template.Theme, layoutID string) string {
	return WithOptions(id, a, th, layoutID, Options{Watermark: true})
}

// WithOptions renders with explicit options. It never fails: unknown
// artifacts produce a static placeholder fragment and every renderer
// tolerates blank answers and unknown layout ids.
func WithOptions(id artifact.ID, a template.Answers, th template.Theme, layoutID string, o Options) string {
	if a == nil {
		a = template.Answers{}
	}
	switch id {
	case artifact.OnePageReport:
		return renderOnePageReport(a, th, layoutID, o)
	case artifact.ConceptNote:
		return renderConceptNote(a, th, layoutID, o)
	case artifact.PitchDeck:
		return renderPitchDeck(a, th, layoutID, o)
	case artifact.ExecutiveSummary:
		return renderExecutiveSummary(a, th, layoutID, o)
	case artifact.Application:
		return renderApplication(a, th, layoutID, o)
	case artifact.ProjectReport:
		return renderProjectReport(a, th, layoutID, o)
	case artifact.StatusCard:
		return renderStatusCard(a, th, layoutID, o)
	case artifact.Screenshot:
		return renderComingSoon("Screenshot", th, o)
	case artifact.Collage:
		return renderComingSoon("Collage", th, o)
	default:
		return `<div style="padding:40px;font-family:system-ui">Renderer not added yet.</div>`
	}
}

// renderComingSoon is the stub shown for artifacts that exist in the panel
// but have no renderer yet.
func renderComingSoon(label string, th template.Theme, o Options) string {
	p := resolve(th, "#111827")
	return fmt.Sprintf(`
<div style="font-family: %s; background:#ffffff; color:#0a0a0a; padding:46px; max-width:900px; margin:0 auto; position:relative; border:1px solid rgba(0,0,0,0.10); border-radius:22px; box-shadow: 0 30px 90px rgba(0,0,0,0.10);">
  %s
  <div style="font-size:12px; font-weight:900; letter-spacing:0.14em; text-transform:uppercase; color:#52525b;">Coming soon</div>
  <div style="margin-top:12px; font-size:42px; font-weight:950; letter-spacing:-0.04em; line-height:1.05;">%s</div>
  <div style="margin-top:12px; font-size:15px; line-height:1.75; color:#52525b;">Not ready yet. We're working hard to launch this feature soon. Stay tuned!</div>
  <div style="margin-top:22px; height:10px; border-radius:999px; background:linear-gradient(90deg, %s, rgba(0,0,0,0.06)); opacity:0.85;"></div>
</div>`, fontStack, o.watermark(), esc(label), p.Accent)
}
