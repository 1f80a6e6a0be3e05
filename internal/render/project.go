package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

func metaCard(label, value, accent, muted, border string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; padding:14px; background:linear-gradient(135deg, %s14, transparent);">
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:8px; font-size:14px; font-weight:900;">%s</div>
</div>`, border, accent, muted, esc(label), textOr(value, "—"))
}

func gridTile(title, bodyHTML, muted, border string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; padding:14px;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase;">%s</div>
<div style="margin-top:10px; font-size:14px; line-height:1.75; color:%s; white-space:pre-wrap;">%s</div>
</div>`, border, esc(title), muted, bodyHTML)
}

func renderProjectReport(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#2563eb")

	project := esc(textOr(a.Text("project"), "Project report"))
	team := esc(a.Text("team"))
	owner := esc(a.Text("owner"))
	period := esc(a.Text("period"))
	date := esc(a.Text("date"))

	execSummary := esc(a.Text("exec_summary"))
	goals := esc(a.Text("goals"))
	scope := esc(a.Text("scope"))

	highlights := a.Bullets("highlights")
	wins := a.Bullets("wins")
	metrics := a.Bullets("metrics")
	risks := a.Bullets("risks")

	timeline := esc(a.Text("timeline"))
	nextSteps := a.Bullets("next_steps")

	stakeholders := esc(a.Text("stakeholders"))
	footerNote := esc(textOr(a.Text("footer_note"), o.brand()))

	metaLine := joinDot(team, owner, period, date)

	switch layoutID {
	case "proj_a":
		// 封面页加正文页,打印时靠 CSS 分页。
		var periodDate strings.Builder
		if period != "" {
			fmt.Fprintf(&periodDate, `Period: <span style="font-weight:800; color:%s;">%s</span>`, p.Text, period)
		}
		if period != "" && date != "" {
			periodDate.WriteString(" · ")
		}
		if date != "" {
			fmt.Fprintf(&periodDate, `Report date: <span style="font-weight:800; color:%s;">%s</span>`, p.Text, date)
		}

		var cover strings.Builder
		cover.WriteString(`<div class="tc-page" style="position:relative;">`)
		cover.WriteString(o.watermark())
		cover.WriteString(`<div style="padding:34px 40px 26px 40px;">`)
		fmt.Fprintf(&cover, `<div style="display:flex; align-items:flex-start; justify-content:space-between;">
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:900;">Project Report</div>
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
</div>`, p.Muted, p.Muted, textOr(team, "—"))
		fmt.Fprintf(&cover, `<div style="margin-top:18px; height:3px; background:linear-gradient(90deg, %s, transparent); opacity:0.75;"></div>`, p.Accent)
		fmt.Fprintf(&cover, `<div style="margin-top:30px; font-size:58px; font-weight:900; letter-spacing:-0.05em; line-height:1.02;">%s</div>`, project)
		fmt.Fprintf(&cover, `<div style="margin-top:12px; font-size:14px; color:%s;">%s</div>`, p.Muted, periodDate.String())
		fmt.Fprintf(&cover, `<div style="margin-top:26px; display:grid; grid-template-columns: 1fr 1fr; gap:16px;">%s%s</div>`,
			metaCard("Owner", owner, p.Accent, p.Muted, p.Border),
			metaCard("Stakeholders", stakeholders, p.Accent, p.Muted, p.Border))
		fmt.Fprintf(&cover, `<div style="margin-top:26px; border-top:1px solid %s; padding-top:16px;">
<div style="font-size:12px; color:%s; font-weight:900; letter-spacing:0.10em; text-transform:uppercase;">Executive Summary</div>
<div style="margin-top:10px; font-size:15px; line-height:1.75; color:%s; white-space:pre-wrap;">%s</div>
</div>`, p.Border, p.Muted, p.Muted, textOr(execSummary, "Add a crisp executive summary."))
		cover.WriteString(`</div>`)
		fmt.Fprintf(&cover, `<div style="background: linear-gradient(90deg, %s22, transparent), linear-gradient(180deg, rgba(0,0,0,0.02), rgba(0,0,0,0.03)); border-top:1px solid %s; padding:16px 40px; display:flex; align-items:center; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s; line-height:1.5;">%s</div>
<div style="font-size:12px; color:%s; font-weight:800;">%s</div>
</div></div>`, p.Accent, p.Border, p.Muted, footerNote, p.Muted, owner)

		stakeholderLine := ""
		if stakeholders != "" {
			stakeholderLine = "Stakeholders · " + stakeholders
		}

		var page strings.Builder
		page.WriteString(`<div class="tc-page tc-page-break"><div style="padding:30px 34px 34px 34px;">`)
		fmt.Fprintf(&page, `<div style="display:flex; justify-content:space-between; align-items:flex-start; gap:12px;">
<div>
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">Project Report</div>
<div style="margin-top:10px; font-size:30px; font-weight:900; letter-spacing:-0.03em;">%s</div>
<div style="margin-top:6px; font-size:13px; color:%s;">%s</div>
</div>
<div style="width:80px; height:80px; border-radius:16px; border:1px solid %s; background: radial-gradient(circle at 30%% 30%%, %s35, transparent 55%%), linear-gradient(135deg, %s22, transparent);"></div>
</div>`, p.Muted, project, p.Muted, metaLine, p.Border, p.Accent, p.Accent)
		page.WriteString(docSection("Goals", textOr(goals, "What were we trying to achieve?"), p.Muted, p.Border))
		page.WriteString(docSection("Scope", textOr(scope, "What was included/excluded."), p.Muted, p.Border))
		page.WriteString(docSection("Highlights", mutedBullets(highlights, p.Muted, "Add highlights."), p.Muted, p.Border))
		page.WriteString(docSection("Key wins / outcomes", mutedBullets(wins, p.Muted, "Add outcomes."), p.Muted, p.Border))
		page.WriteString(docSection("Metrics", mutedBullets(metrics, p.Muted, "Add metrics (one per line)."), p.Muted, p.Border))
		page.WriteString(docSection("Risks / blockers", mutedBullets(risks, p.Muted, "Add risks."), p.Muted, p.Border))
		page.WriteString(docSection("Timeline", textOr(timeline, "Phases, milestones, dates."), p.Muted, p.Border))
		page.WriteString(docSection("Next steps", mutedBullets(nextSteps, p.Muted, "Add next steps."), p.Muted, p.Border))
		fmt.Fprintf(&page, `<div style="margin-top:18px; border-top:1px solid %s; padding-top:16px; display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s; font-weight:800;">%s</div>
</div>`, p.Border, p.Muted, footerNote, p.Muted, stakeholderLine)
		page.WriteString(`</div></div>`)

		return fmt.Sprintf(`<style>
.tc-doc { font-family: %s; color:%s; width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow:0 30px 90px rgba(0,0,0,0.10); }
.tc-page + .tc-page { border-top:1px solid %s; }
@media print {
  @page { size:A4; margin:14mm; }
  .tc-doc { box-shadow:none !important; border-radius:0 !important; border:none !important; }
  .tc-page-break { break-before: page; page-break-before: always; }
}
</style>
<div class="tc-doc">%s%s</div>`, fontStack, p.Text, p.Bg, p.Border, p.Border, cover.String(), page.String())

	case "proj_b":
		card := func(title string, items []string) string {
			return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; overflow:hidden;">
<div style="padding:12px 14px; background: linear-gradient(90deg, %s18, transparent); border-bottom:1px solid %s;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase;">%s</div>
</div>
<div style="padding:12px 14px;"><div style="font-size:14px; line-height:1.75; color:%s;">%s</div></div>
</div>`, p.Border, p.Accent, p.Border, esc(title), p.Muted, mutedBullets(items, p.Muted, "—"))
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<div style="font-family: %s; color:%s;">`, fontStack, p.Text)
		fmt.Fprintf(&b, `<div style="width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow:0 30px 90px rgba(0,0,0,0.10); position:relative;">`, p.Bg, p.Border)
		b.WriteString(o.watermark())

		fmt.Fprintf(&b, `<div style="position:relative; height:150px; background:#0b1220;">
<div style="position:absolute; inset:0; background: radial-gradient(circle at 68%% 16%%, %s66, transparent 55%%), linear-gradient(90deg, rgba(255,255,255,0.08), rgba(255,255,255,0.02));"></div>
<div style="position:absolute; left:34px; top:26px;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:rgba(255,255,255,0.72); font-weight:900;">Project Report</div>
<div style="margin-top:10px; font-size:40px; font-weight:900; color:#fff; letter-spacing:-0.04em; line-height:1.02;">%s</div>
<div style="margin-top:8px; font-size:13px; color:rgba(255,255,255,0.72);">%s</div>
</div></div>`, p.Accent, project, metaLine)

		b.WriteString(`<div style="padding:26px 30px 30px 30px;">`)
		b.WriteString(docSection("Executive summary", textOr(execSummary, "Add a crisp executive summary."), p.Muted, p.Border))
		fmt.Fprintf(&b, `<div style="margin-top:18px; display:grid; grid-template-columns: 1fr 1fr; gap:14px;">%s%s</div>`,
			card("Highlights", highlights), card("Key wins", wins))
		fmt.Fprintf(&b, `<div style="margin-top:14px; display:grid; grid-template-columns: 1fr 1fr; gap:14px;">%s%s</div>`,
			card("Metrics", metrics), card("Risks", risks))
		b.WriteString(docSection("Next steps", mutedBullets(nextSteps, p.Muted, "—"), p.Muted, p.Border))
		fmt.Fprintf(&b, `<div style="margin-top:18px; border-top:1px solid %s; padding-top:14px; display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s; font-weight:800;">%s</div>
</div>`, p.Border, p.Muted, footerNote, p.Muted, stakeholders)
		b.WriteString(`</div></div></div>`)
		return b.String()
	}

	// Layout C (default): grid of tiles with a tinted header band.
	goalsScope := fmt.Sprintf("%s\n\n%s", textOr(goals, "Goals…"), textOr(scope, "Scope…"))

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family: %s; color:%s;">`, fontStack, p.Text)
	fmt.Fprintf(&b, `<div style="width:860px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow:0 30px 90px rgba(0,0,0,0.10); position:relative;">`, p.Bg, p.Border)
	b.WriteString(o.watermark())

	fmt.Fprintf(&b, `<div style="padding:18px 22px; background: linear-gradient(135deg, %s22, transparent); border-bottom:1px solid %s;">
<div style="display:flex; justify-content:space-between; gap:16px; align-items:flex-start;">
<div style="flex:1;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">Project Report</div>
<div style="margin-top:10px; font-size:34px; font-weight:900; letter-spacing:-0.03em; line-height:1.05;">%s</div>
<div style="margin-top:8px; font-size:13px; color:%s;">%s</div>
</div>
<div style="text-align:right; color:%s; font-size:12px;">
<div style="font-weight:900; color:%s;">%s</div>
<div style="margin-top:2px;">%s</div>
</div></div></div>`,
		p.Accent, p.Border, p.Muted, project, p.Muted, joinDot(team, period, date), p.Muted, p.Text, textOr(owner, "—"), stakeholders)

	b.WriteString(`<div style="padding:18px 22px 22px 22px;">`)
	fmt.Fprintf(&b, `<div style="display:grid; grid-template-columns: 1.3fr 1fr; gap:12px;">%s%s</div>`,
		gridTile("Executive summary", textOr(execSummary, "Add a crisp executive summary."), p.Muted, p.Border),
		gridTile("Goals + scope", goalsScope, p.Muted, p.Border))
	b.WriteString(spacer(12))
	fmt.Fprintf(&b, `<div style="display:grid; grid-template-columns: 1fr 1fr 1fr; gap:12px;">%s%s%s</div>`,
		gridTile("Highlights", mutedBullets(highlights, p.Muted, "—"), p.Muted, p.Border),
		gridTile("Wins", mutedBullets(wins, p.Muted, "—"), p.Muted, p.Border),
		gridTile("Metrics", mutedBullets(metrics, p.Muted, "—"), p.Muted, p.Border))
	b.WriteString(spacer(12))
	fmt.Fprintf(&b, `<div style="display:grid; grid-template-columns: 1fr 1fr; gap:12px;">%s%s</div>`,
		gridTile("Risks / blockers", mutedBullets(risks, p.Muted, "—"), p.Muted, p.Border),
		gridTile("Next steps", mutedBullets(nextSteps, p.Muted, "—"), p.Muted, p.Border))
	fmt.Fprintf(&b, `<div style="margin-top:16px; border-top:1px solid %s; padding-top:14px; display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s;">Accent: <span style="font-weight:900; color:%s;">%s</span></div>
</div>`, p.Border, p.Muted, footerNote, p.Muted, p.Text, esc(p.Accent))
	b.WriteString(`</div></div></div>`)
	return b.String()
}
