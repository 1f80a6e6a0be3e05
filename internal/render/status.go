package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

// statusPill colors the status chip by the well-known phrases; anything else
// shows verbatim on the accent tint.
func statusPill(raw, accent string) string {
	bg := accent + "1f"
	label := raw
	if label == "" {
		label = "Update"
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on track":
		label = "On track"
	case "at risk":
		bg, label = "rgba(245,158,11,0.18)", "At risk"
	case "off track":
		bg, label = "rgba(244,63,94,0.18)", "Off track"
	}
	return fmt.Sprintf(`<span style="display:inline-flex; align-items:center; gap:8px; padding:8px 12px; border-radius:999px; background:%s; border:1px solid rgba(0,0,0,0.10); font-size:12px; font-weight:900; letter-spacing:0.08em; text-transform:uppercase; color:#0a0a0a;"><span style="width:8px;height:8px;border-radius:999px;background:%s;"></span>%s</span>`,
		bg, accent, esc(label))
}

func renderStatusCard(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#22c55e")

	project := esc(textOr(a.Text("project"), "Project"))
	title := esc(textOr(a.Text("title"), "Status update"))
	owner := esc(a.Text("owner"))
	date := esc(a.Text("date"))
	status := textOr(a.Text("status"), "On track")
	summary := esc(a.Text("summary"))

	wins := a.Bullets("wins")
	blockers := a.Bullets("blockers")
	next := a.Bullets("next")

	cta := esc(textOr(a.Text("cta"), "View details"))
	footerNote := esc(textOr(a.Text("footer_note"), o.brand()))

	ownerDate := joinDot(owner, date)

	summaryBlock := func(color string) string {
		return fmt.Sprintf(`<div style="margin-top:14px; font-size:14px; line-height:1.7; color:%s; white-space:pre-wrap;">%s</div>`,
			color, textOr(summary, "Add a crisp update summary."))
	}

	panel := func(label string, items []string) string {
		return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; padding:14px; background:%s;">%s%s</div>`,
			p.Border, p.Bg, sectionLabel(label), bulletList(items, p.Muted))
	}

	// 点状背景画布,三个布局共用。
	outer := func(inner string) string {
		return fmt.Sprintf(`<div style="font-family: %s; color:%s; width:820px; max-width:100%%; margin:0 auto; position:relative; padding:26px; background: radial-gradient(circle at 1px 1px, rgba(0,0,0,0.06) 1px, transparent 0); background-size:18px 18px; border-radius:26px;">%s</div>`,
			fontStack, p.Text, inner)
	}

	switch layoutID {
	case "status_a":
		var b strings.Builder
		fmt.Fprintf(&b, `<div style="position:relative; border-radius:28px; background:%s; border:1px solid %s; box-shadow: 0 30px 90px rgba(0,0,0,0.14); overflow:hidden;">`, p.Card, p.Border)
		b.WriteString(o.watermark())

		fmt.Fprintf(&b, `<div style="padding:22px 22px 16px; background: linear-gradient(135deg, %s24, transparent 55%%), linear-gradient(180deg, rgba(0,0,0,0.02), rgba(0,0,0,0.00)); border-bottom:1px solid %s;">
<div style="display:flex; align-items:flex-start; justify-content:space-between; gap:14px;">
<div style="min-width:0;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.12em; text-transform:uppercase; color:%s;">%s</div>
<div style="margin-top:8px; font-size:30px; font-weight:950; letter-spacing:-0.03em; line-height:1.05;">%s</div>
<div style="margin-top:10px;">%s</div>
</div>
<div style="width:74px; height:74px; border-radius:18px; border:1px solid %s; background: linear-gradient(135deg, %s2b, transparent);"></div>
</div>%s</div>`,
			p.Accent, p.Border, p.Muted, project, title, statusPill(status, p.Accent), p.Border, p.Accent, summaryBlock(p.Muted))

		b.WriteString(`<div style="padding:18px 22px 18px;">`)
		b.WriteString(`<div style="display:grid; grid-template-columns: 1fr 1fr; gap:12px;">`)
		b.WriteString(panel("Wins", wins))
		b.WriteString(panel("Blockers", blockers))
		b.WriteString(`</div>`)
		b.WriteString(spacer(12))
		b.WriteString(panel("Next", next))
		fmt.Fprintf(&b, `<div style="margin-top:14px; border-top:1px solid %s;"></div>`, p.Border)
		fmt.Fprintf(&b, `<div style="margin-top:14px; display:flex; justify-content:space-between; align-items:center; gap:12px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="display:flex; gap:10px; align-items:center;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="padding:10px 14px; border-radius:14px; background:#0a0a0a; color:white; font-size:13px; font-weight:900;">%s</div>
</div></div>`, p.Muted, ownerDate, p.Muted, footerNote, cta)
		b.WriteString(`</div></div>`)
		return outer(b.String())

	case "status_b":
		var b strings.Builder
		fmt.Fprintf(&b, `<div style="position:relative; border-radius:28px; overflow:hidden; border:1px solid %s; box-shadow: 0 30px 90px rgba(0,0,0,0.14); background:%s;">`, p.Border, p.Card)
		b.WriteString(o.watermark())
		b.WriteString(`<div style="display:grid; grid-template-columns: 300px 1fr;">`)

		fmt.Fprintf(&b, `<div style="padding:22px; background: linear-gradient(180deg, %s, #111827); color:white; min-height:420px;">
<div style="font-size:12px; font-weight:950; letter-spacing:0.14em; text-transform:uppercase; opacity:0.9;">%s</div>
<div style="margin-top:14px; font-size:34px; font-weight:950; letter-spacing:-0.03em; line-height:1.02;">%s</div>
<div style="margin-top:16px;"><span style="display:inline-flex; align-items:center; gap:8px; padding:8px 12px; border-radius:999px; background: rgba(255,255,255,0.14); border:1px solid rgba(255,255,255,0.22); font-size:12px; font-weight:950; letter-spacing:0.10em; text-transform:uppercase;"><span style="width:8px;height:8px;border-radius:999px;background:rgba(255,255,255,0.95);"></span>%s</span></div>
<div style="margin-top:18px; font-size:13px; line-height:1.65; opacity:0.9; white-space:pre-wrap;">%s</div>
<div style="margin-top:18px; height:1px; background: rgba(255,255,255,0.22);"></div>
<div style="margin-top:14px; font-size:12px; opacity:0.9;">%s</div>
</div>`, p.Accent, project, title, esc(status), textOr(summary, "Add a crisp update summary."), ownerDate)

		b.WriteString(`<div style="padding:20px 22px;">`)
		b.WriteString(`<div style="display:grid; grid-template-columns: 1fr; gap:12px;">`)
		b.WriteString(panel("Wins", wins))
		b.WriteString(panel("Blockers", blockers))
		b.WriteString(panel("Next", next))
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div style="margin-top:14px; display:flex; justify-content:space-between; align-items:center; gap:12px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="padding:10px 14px; border-radius:14px; background:%s; color:white; font-size:13px; font-weight:950;">%s</div>
</div>`, p.Muted, footerNote, p.Accent, cta)
		b.WriteString(`</div></div></div>`)
		return outer(b.String())
	}

	// Layout C (default): minimal bold pill + clean sections.
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="position:relative; border-radius:28px; background:%s; border:1px solid %s; box-shadow: 0 30px 90px rgba(0,0,0,0.12); overflow:hidden; padding:22px;">`, p.Card, p.Border)
	b.WriteString(o.watermark())

	fmt.Fprintf(&b, `<div style="display:flex; align-items:flex-start; justify-content:space-between; gap:14px;">
<div style="min-width:0;">
<div style="font-size:12px; font-weight:950; letter-spacing:0.14em; text-transform:uppercase; color:%s;">%s</div>
<div style="margin-top:10px; font-size:32px; font-weight:950; letter-spacing:-0.03em; line-height:1.05;">%s</div>
<div style="margin-top:10px;">%s</div>
</div>
<div style="width:110px; height:44px; border-radius:999px; background:%s; opacity:0.9;"></div>
</div>`, p.Muted, project, title, statusPill(status, p.Accent), p.Accent)

	b.WriteString(summaryBlock(p.Muted))
	fmt.Fprintf(&b, `<div style="margin-top:16px; height:1px; background:%s;"></div>`, p.Border)

	b.WriteString(`<div style="margin-top:16px; display:grid; grid-template-columns: 1fr 1fr 1fr; gap:10px;">`)
	for _, sec := range []struct {
		label string
		items []string
	}{{"Wins", wins}, {"Blockers", blockers}, {"Next", next}} {
		fmt.Fprintf(&b, `<div style="border:1px solid %s; border-radius:16px; padding:12px;">%s%s</div>`,
			p.Border, sectionLabel(sec.label), bulletList(sec.items, p.Muted))
	}
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div style="margin-top:14px; display:flex; justify-content:space-between; align-items:center; gap:12px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="display:flex; align-items:center; gap:10px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="padding:10px 14px; border-radius:14px; background:#0a0a0a; color:white; font-size:13px; font-weight:950;">%s</div>
</div></div>`, p.Muted, ownerDate, p.Muted, footerNote, cta)
	b.WriteString(`</div>`)
	return outer(b.String())
}

// joinDot joins the non-empty parts with the interpunct separator.
func joinDot(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " · ")
}
