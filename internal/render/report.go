package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

// renderOnePageReport has three layouts: A modern split with an accent rail,
// B editorial column with a stats sidebar, C dashboard cards.
func renderOnePageReport(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#10b981")

	title := esc(textOr(a.Text("title"), "Untitled report"))
	subtitle := esc(a.Text("subtitle"))
	summary := esc(a.Text("summary"))
	owner := esc(a.Text("owner"))
	date := esc(a.Text("date"))

	highlights := a.Bullets("highlights")
	risks := a.Bullets("risks")
	nextSteps := a.Bullets("next_steps")
	stats := parseStats(a["stats"])

	summaryBlock := fmt.Sprintf(`<div style="margin-top:18px; font-size:14px; line-height:1.75; color:#111; white-space:pre-wrap;">%s</div>`,
		textOr(summary, fillPrompt))

	subtitleBlock := ""
	if subtitle != "" {
		subtitleBlock = fmt.Sprintf(`<div style="margin-top:10px; color:#3f3f46; font-size:14px; line-height:1.5;">%s</div>`, subtitle)
	}

	switch layoutID {
	case "report_b":
		accentRule := fmt.Sprintf(`<div style="height:2px; margin-top:10px; background:%s; border-radius:999px; opacity:0.55;"></div>`, p.Accent)
		var b strings.Builder
		fmt.Fprintf(&b, `<div style="font-family: %s; background:#ffffff; color:#0a0a0a; padding:46px; max-width:920px; margin:0 auto; position:relative;">`, fontStack)
		b.WriteString(o.watermark())
		b.WriteString(`<div style="display:flex; gap:22px;">`)

		fmt.Fprintf(&b, `<div style="flex:1; border-left:4px solid %s; padding-left:18px;">`, p.Accent)
		fmt.Fprintf(&b, `<div style="font-size:40px; font-weight:900; letter-spacing:-0.03em; line-height:1.05;">%s</div>`, title)
		b.WriteString(subtitleBlock)
		b.WriteString(summaryBlock)
		b.WriteString(`<div style="margin-top:22px; display:grid; grid-template-columns:1fr; gap:14px;">`)
		for _, sec := range []struct {
			label string
			items []string
		}{
			{"Highlights", highlights},
			{"Risks", risks},
			{"Next steps", nextSteps},
		} {
			fmt.Fprintf(&b, `<div style="border-top:1px solid rgba(0,0,0,0.10); padding-top:14px;">%s%s</div>`,
				sectionLabel(sec.label), bulletList(sec.items, ""))
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div style="margin-top:26px; display:flex; justify-content:space-between; color:#52525b; font-size:12px;"><div>%s</div><div>%s</div></div>`, owner, date)
		b.WriteString(`</div>`)

		b.WriteString(`<div style="width:260px;">`)
		b.WriteString(`<div style="border:1px solid rgba(0,0,0,0.10); border-radius:18px; padding:14px; background:linear-gradient(180deg, rgba(0,0,0,0.02), rgba(0,0,0,0.0));">`)
		b.WriteString(`<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase; margin-bottom:10px;">Top stats</div>`)
		b.WriteString(statRows(stats, 0, "#52525b", accentRule))
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div style="margin-top:14px; border-radius:18px; padding:14px; background:%s; color:white;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase; opacity:0.9;">Accent</div>
<div style="margin-top:8px; font-size:14px; opacity:0.95;">This layout uses your chosen accent color.</div>
</div>`, p.Accent)
		b.WriteString(`</div></div></div>`)
		return b.String()

	case "report_c":
		tiles := stats
		if len(tiles) == 0 {
			tiles = []stat{{K: "Stat", V: "—"}, {K: "Stat", V: "—"}, {K: "Stat", V: "—"}}
		}
		if len(tiles) > 3 {
			tiles = tiles[:3]
		}
		var b strings.Builder
		fmt.Fprintf(&b, `<div style="font-family: %s; background:#ffffff; color:#0a0a0a; padding:40px; max-width:980px; margin:0 auto; position:relative;">`, fontStack)
		b.WriteString(o.watermark())

		fmt.Fprintf(&b, `<div style="border-radius:22px; padding:18px 18px 16px; background:linear-gradient(135deg, %s22, rgba(255,255,255,0.0)); border:1px solid rgba(0,0,0,0.10);">
<div style="display:flex; justify-content:space-between; gap:16px; align-items:flex-start;">
<div style="flex:1;"><div style="font-size:28px; font-weight:900; letter-spacing:-0.03em; line-height:1.1;">%s</div>%s</div>
<div style="text-align:right; color:#52525b; font-size:12px;"><div style="font-weight:800; color:#111;">%s</div><div style="margin-top:2px;">%s</div></div>
</div></div>`, p.Accent, title, subtitleBlock, owner, date)

		b.WriteString(spacer(14))
		b.WriteString(`<div style="display:grid; grid-template-columns: repeat(3, 1fr); gap:12px;">`)
		for _, t := range tiles {
			b.WriteString(statTile(t, p.Accent, "#52525b"))
		}
		b.WriteString(`</div>`)
		b.WriteString(spacer(12))

		b.WriteString(`<div style="display:grid; grid-template-columns: 1.2fr 1fr 1fr; gap:12px;">`)
		fmt.Fprintf(&b, `<div style="border-radius:18px; border:1px solid rgba(0,0,0,0.10); padding:16px;">%s<div style="margin-top:10px; font-size:14px; line-height:1.7; color:#111; white-space:pre-wrap;">%s</div></div>`,
			sectionLabel("Summary"), textOr(summary, fillPrompt))
		b.WriteString(bulletPanel("Highlights", highlights, ""))
		b.WriteString(bulletPanel("Risks", risks, ""))
		b.WriteString(`</div>`)
		b.WriteString(spacer(12))

		fmt.Fprintf(&b, `<div style="border-radius:18px; border:1px solid rgba(0,0,0,0.10); padding:16px;">
<div style="display:flex; justify-content:space-between; align-items:center;">%s<div style="font-size:12px; color:#52525b;">Accent: <span style="font-weight:800; color:#111;">%s</span></div></div>%s</div>`,
			sectionLabel("Next steps"), p.Accent, bulletList(nextSteps, ""))
		b.WriteString(`</div>`)
		return b.String()
	}

	// Layout A (default): modern split + accent rail + stat module.
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family: %s; color:#0a0a0a; background:white; padding:46px; max-width:900px; margin:0 auto; position:relative;">`, fontStack)
	b.WriteString(o.watermark())

	b.WriteString(`<div style="display:grid; grid-template-columns: 1fr 300px; gap:18px; align-items:start;">`)
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<div style="display:flex; gap:14px; align-items:flex-start;">
<div style="width:10px; border-radius:999px; background:%s; height:96px;"></div>
<div style="flex:1;"><div style="font-size:36px; font-weight:900; letter-spacing:-0.03em; line-height:1.08;">%s</div>%s</div>
</div>`, p.Accent, title, subtitleBlock)
	b.WriteString(summaryBlock)
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div style="border:1px solid rgba(0,0,0,0.10); border-radius:20px; padding:14px; background:linear-gradient(180deg, %s14, rgba(255,255,255,0.0));">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase; margin-bottom:10px;">Top stats</div>%s</div>`,
		p.Accent, statRows(stats, 5, "#52525b", ""))
	b.WriteString(`</div>`)

	b.WriteString(spacer(16))
	b.WriteString(`<div style="display:grid; grid-template-columns: 1fr 1fr; gap:14px;">`)
	b.WriteString(bulletPanel("Highlights", highlights, ""))
	b.WriteString(bulletPanel("Risks / blockers", risks, ""))
	b.WriteString(`</div>`)
	b.WriteString(spacer(14))

	fmt.Fprintf(&b, `<div style="border:1px solid rgba(0,0,0,0.10); border-radius:18px; padding:16px;">
<div style="display:flex; justify-content:space-between; align-items:center;">%s<div style="font-size:12px; color:#52525b;">%s · %s</div></div>%s</div>`,
		sectionLabel("Next steps"), owner, date, bulletList(nextSteps, ""))
	b.WriteString(`</div>`)
	return b.String()
}
