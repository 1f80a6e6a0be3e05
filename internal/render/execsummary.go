package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

// accentPanel is a bordered card whose header strip carries the accent tint.
func accentPanel(title, bodyHTML, accent, muted, border string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; overflow:hidden;">
<div style="padding:12px 14px; background: linear-gradient(90deg, %s14, transparent); border-bottom:1px solid %s;">
<div style="font-size:13px; font-weight:900;">%s</div>
</div>
<div style="padding:12px 14px;"><div style="font-size:15px; line-height:1.75; color:%s;">%s</div></div>
</div>`, border, accent, border, esc(title), muted, bodyHTML)
}

func metricCard(label, value, accent, muted, border string) string {
	return fmt.Sprintf(`<div style="padding:14px 14px; border-right:1px solid %s;">
<div style="font-size:12px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:8px; font-size:22px; font-weight:900; color:#0a0a0a;">%s</div>
<div style="margin-top:10px; height:3px; border-radius:999px; background: linear-gradient(90deg, %s, transparent); opacity:0.45;"></div>
</div>`, border, muted, esc(textOr(label, "Metric")), esc(textOr(value, "—")), accent)
}

func metricMini(label, value, border, muted string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:14px; padding:10px 10px; background:#fff;">
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:6px; font-size:16px; font-weight:900;">%s</div>
</div>`, border, muted, esc(textOr(label, "Metric")), esc(textOr(value, "—")))
}

func metricInline(label, value, border, muted string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:16px; padding:12px 12px;">
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:7px; font-size:18px; font-weight:900;">%s</div>
</div>`, border, muted, esc(textOr(label, "Metric")), esc(textOr(value, "—")))
}

func renderExecutiveSummary(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#2563eb")

	org := esc(textOr(a.Text("org"), "—"))
	title := esc(textOr(a.Text("title"), "Executive Summary"))
	period := esc(a.Text("period"))
	preparedBy := esc(a.Text("prepared_by"))
	date := esc(a.Text("date"))

	intro := esc(a.Text("intro"))
	summary := esc(a.Text("summary"))

	highlights := a.Bullets("highlights")
	risks := a.Bullets("risks")
	nextSteps := a.Bullets("next_steps")

	l1, v1 := a.Stat("stat_1")
	l2, v2 := a.Stat("stat_2")
	l3, v3 := a.Stat("stat_3")

	contactEmail := esc(a.Text("contact_email"))
	footerNote := esc(textOr(a.Text("footer_note"), o.brand()+" (watermarked)"))

	metaLine := joinDot(period, preparedBy, date)

	docOpen := fmt.Sprintf(`<div style="font-family: %s; color:%s;">
<div style="width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow: 0 30px 90px rgba(0,0,0,0.10); position:relative;">%s`,
		fontStack, p.Text, p.Bg, p.Border, o.watermark())

	docClose := fmt.Sprintf(`<div style="border-top:1px solid %s; padding:14px 22px; display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s; font-weight:700;">%s</div>
</div></div></div>`, p.Border, p.Muted, footerNote, p.Muted, contactEmail)

	switch layoutID {
	case "exec_a":
		var b strings.Builder
		b.WriteString(docOpen)

		fmt.Fprintf(&b, `<div style="position:relative; height:220px; background:#0b1220;">
<div style="position:absolute; inset:0; background: linear-gradient(135deg, rgba(255,255,255,0.08), rgba(255,255,255,0.02)), radial-gradient(circle at 70%% 10%%, %s55, transparent 55%%);"></div>
<div style="position:absolute; inset:0; opacity:0.18; background-image: linear-gradient(rgba(255,255,255,0.10) 1px, transparent 1px), linear-gradient(90deg, rgba(255,255,255,0.10) 1px, transparent 1px); background-size: 18px 18px;"></div>
<div style="position:absolute; left:26px; top:22px; right:26px;">
<div style="display:flex; align-items:flex-start; justify-content:space-between; gap:14px;">
<div style="min-width:0;">
<div style="font-size:13px; letter-spacing:0.14em; text-transform:uppercase; color:rgba(255,255,255,0.72); font-weight:900;">%s</div>
<div style="margin-top:10px; font-size:46px; font-weight:900; color:#fff; letter-spacing:-0.04em; line-height:1.0;">%s</div>
<div style="margin-top:10px; font-size:13px; color:rgba(255,255,255,0.74);">%s</div>
</div>
<div style="width:86px; height:86px; border-radius:18px; border:1px solid rgba(255,255,255,0.18); background: linear-gradient(135deg, rgba(255,255,255,0.16), rgba(255,255,255,0.02));"></div>
</div></div>
<div style="position:absolute; left:0; right:0; bottom:-26px; padding:0 22px;">
<div style="border:1px solid %s; border-radius:18px; background:#fff; box-shadow: 0 20px 60px rgba(0,0,0,0.12);">
<div style="display:grid; grid-template-columns: 1fr 1fr 1fr; gap:0;">%s%s%s</div>
</div></div></div>`,
			p.Accent, org, title, metaLine, p.Border,
			metricCard(l1, v1, p.Accent, p.Muted, p.Border),
			metricCard(l2, v2, p.Accent, p.Muted, p.Border),
			metricCard(l3, v3, p.Accent, p.Muted, p.Border))

		b.WriteString(`<div style="padding:56px 26px 24px 26px;">`)
		b.WriteString(docSection("Introduction", textOr(intro, "Add a short intro that frames the update."), p.Muted, p.Border))
		b.WriteString(docSection("Executive Summary", textOr(summary, "Add a crisp executive summary."), p.Muted, p.Border))
		b.WriteString(`<div style="margin-top:18px; display:grid; grid-template-columns: 1fr 1fr; gap:16px;">`)
		b.WriteString(accentPanel("Key highlights", mutedBullets(highlights, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(accentPanel("Risks / Watchouts", mutedBullets(risks, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(`</div><div style="margin-top:16px;">`)
		b.WriteString(accentPanel("Next steps", mutedBullets(nextSteps, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(`</div></div>`)
		b.WriteString(docClose)
		return b.String()

	case "exec_b":
		var b strings.Builder
		b.WriteString(docOpen)
		b.WriteString(`<div style="display:flex; gap:0;">`)

		fmt.Fprintf(&b, `<div style="width:160px; background:%s18; border-right:1px solid %s; padding:18px 14px;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:14px; font-size:12px; color:%s; line-height:1.6;">%s<br/>%s<br/>%s</div>
<div style="margin-top:16px; border-top:1px solid %s; padding-top:14px;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase; color:%s;">Metrics</div>
<div style="margin-top:10px; display:grid; gap:10px;">%s%s%s</div>
</div></div>`,
			p.Accent, p.Border, p.Muted, org, p.Muted,
			textOr(period, "—"), textOr(date, "—"), textOr(preparedBy, "—"),
			p.Border, p.Muted,
			metricMini(l1, v1, p.Border, p.Muted),
			metricMini(l2, v2, p.Border, p.Muted),
			metricMini(l3, v3, p.Border, p.Muted))

		b.WriteString(`<div style="flex:1; padding:22px 24px;">`)
		fmt.Fprintf(&b, `<div style="display:flex; align-items:flex-end; justify-content:space-between; gap:12px;">
<div>
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">Executive Summary</div>
<div style="margin-top:10px; font-size:34px; font-weight:900; letter-spacing:-0.03em;">%s</div>
</div>
<div style="width:72px; height:72px; border-radius:16px; border:1px solid %s; background: linear-gradient(135deg, %s22, transparent);"></div>
</div>`, p.Muted, title, p.Border, p.Accent)

		fmt.Fprintf(&b, `<div style="margin-top:18px; display:grid; grid-template-columns: 1.3fr 0.7fr; gap:16px;">
<div style="border:1px solid %s; border-radius:18px; padding:16px;">
<div style="font-size:13px; font-weight:900;">Summary</div>
<div style="margin-top:10px; font-size:15px; line-height:1.75; color:%s;">%s</div>
</div>
<div style="border:1px solid %s; border-radius:18px; padding:16px; background: linear-gradient(180deg, %s10, transparent);">
<div style="font-size:13px; font-weight:900;">Highlights</div>%s</div>
</div>`, p.Border, p.Muted, textOr(summary, "Add a crisp executive summary."), p.Border, p.Accent, mutedBullets(highlights, p.Muted, "—"))

		fmt.Fprintf(&b, `<div style="margin-top:16px; display:grid; grid-template-columns: 1fr 1fr; gap:16px;">
<div style="border:1px solid %s; border-radius:18px; padding:16px;"><div style="font-size:13px; font-weight:900;">Risks</div>%s</div>
<div style="border:1px solid %s; border-radius:18px; padding:16px;"><div style="font-size:13px; font-weight:900;">Next steps</div>%s</div>
</div>`, p.Border, mutedBullets(risks, p.Muted, "—"), p.Border, mutedBullets(nextSteps, p.Muted, "—"))

		b.WriteString(`<div style="margin-top:16px;">`)
		b.WriteString(docSection("Introduction", textOr(intro, "Add a short intro that frames the update."), p.Muted, p.Border))
		b.WriteString(`</div></div></div>`)
		b.WriteString(docClose)
		return b.String()
	}

	// Layout C (default): minimal editorial.
	var b strings.Builder
	b.WriteString(docOpen)
	b.WriteString(`<div style="padding:34px 34px 26px 34px;">`)

	fmt.Fprintf(&b, `<div style="display:flex; justify-content:space-between; align-items:flex-start; gap:14px;">
<div>
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:10px; font-size:56px; font-weight:900; letter-spacing:-0.04em; line-height:1.05;">%s</div>
<div style="margin-top:10px; color:%s; font-size:14px;">%s</div>
</div>
<div style="width:110px; height:110px; border-radius:18px; border:1px solid %s; background: linear-gradient(135deg, %s22, transparent);"></div>
</div>`, p.Muted, org, title, p.Muted, metaLine, p.Border, p.Accent)

	fmt.Fprintf(&b, `<div style="margin-top:22px; height:1px; background:%s;"></div>`, p.Border)
	b.WriteString(`<div style="margin-top:22px; display:grid; gap:16px;">`)
	b.WriteString(miniSection("Introduction", textOr(intro, "Add context."), p.Muted))
	b.WriteString(miniSection("Executive Summary", textOr(summary, "Add a crisp executive summary."), p.Muted))
	b.WriteString(miniSection("Key highlights", mutedBullets(highlights, p.Muted, "—"), p.Muted))
	b.WriteString(miniSection("Risks / Watchouts", mutedBullets(risks, p.Muted, "—"), p.Muted))
	b.WriteString(miniSection("Next steps", mutedBullets(nextSteps, p.Muted, "—"), p.Muted))
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div style="margin-top:22px; height:1px; background:%s;"></div>`, p.Border)
	fmt.Fprintf(&b, `<div style="margin-top:14px; display:grid; grid-template-columns: 1fr 1fr 1fr; gap:10px;">%s%s%s</div>`,
		metricInline(l1, v1, p.Border, p.Muted),
		metricInline(l2, v2, p.Border, p.Muted),
		metricInline(l3, v3, p.Border, p.Muted))
	b.WriteString(`</div>`)
	b.WriteString(docClose)
	return b.String()
}
