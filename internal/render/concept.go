package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

// docSection is the ruled heading+body block used by the long-form documents.
func docSection(title, bodyHTML, muted, border string) string {
	return fmt.Sprintf(`<div style="margin-top:18px; padding-top:18px; border-top:1px solid %s;">
<div style="font-size:14px; font-weight:900; letter-spacing:-0.01em;">%s</div>
<div style="margin-top:10px; font-size:15px; line-height:1.75; color:%s;">%s</div>
</div>`, border, esc(title), muted, bodyHTML)
}

func miniSection(title, bodyHTML, muted string) string {
	return fmt.Sprintf(`<div>
<div style="font-size:13px; font-weight:900; letter-spacing:-0.01em;">%s</div>
<div style="margin-top:8px; font-size:15px; line-height:1.75; color:%s;">%s</div>
</div>`, esc(title), muted, bodyHTML)
}

// mutedBullets renders a bullet list in the document body register, or the
// fallback prompt when the list is empty.
func mutedBullets(items []string, muted, fallback string) string {
	if len(items) == 0 {
		return fmt.Sprintf(`<div style="color:%s;">%s</div>`, muted, fallback)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<ul style="margin:10px 0 0 18px; padding:0; line-height:1.75; color:%s;">`, muted)
	for _, item := range items {
		fmt.Fprintf(&b, `<li style="margin:6px 0;">%s</li>`, esc(item))
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func renderConceptNote(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#10b981")

	title := esc(textOr(a.Text("title"), "Concept Note"))
	org := esc(a.Text("org"))
	preparedBy := esc(a.Text("prepared_by"))
	date := esc(a.Text("date"))
	version := a.Text("version")

	summary := esc(a.Text("summary"))
	problem := esc(a.Text("problem"))
	solution := esc(a.Text("solution"))
	scope := esc(a.Text("scope"))
	beneficiaries := esc(a.Text("beneficiaries"))
	timeline := esc(a.Text("timeline"))
	budget := esc(a.Text("budget"))
	objectives := a.Bullets("objectives")
	outcomes := a.Bullets("expected_outcomes")
	risks := a.Bullets("risks")
	contactName := esc(a.Text("contact_name"))
	contactEmail := esc(a.Text("contact_email"))
	footerNote := esc(textOr(a.Text("footer_note"), o.brand()+" · Concept Note"))

	versionTag := ""
	if strings.TrimSpace(version) != "" {
		versionTag = "v" + esc(version)
	}
	metaLine := joinDot(org, preparedBy, date, versionTag)

	contact := ""
	if contactEmail != "" {
		contact = joinDot(contactName, contactEmail)
	}

	footer := func(topRule bool) string {
		rule := ""
		if topRule {
			rule = fmt.Sprintf("border-top:1px solid %s; padding-top:16px;", p.Border)
		}
		return fmt.Sprintf(`<div style="margin-top:18px; %s display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s; font-weight:700;">%s</div>
</div>`, rule, p.Muted, footerNote, p.Muted, contact)
	}

	body := func(section func(title, bodyHTML string) string) string {
		var b strings.Builder
		b.WriteString(section("Problem", textOr(problem, "What problem exists and why it matters now.")))
		b.WriteString(section("Proposed Solution", textOr(solution, "What you propose to do and how it addresses the problem.")))
		b.WriteString(section("Objectives", mutedBullets(objectives, p.Muted, "Add objectives (one per line).")))
		b.WriteString(section("Expected Outcomes", mutedBullets(outcomes, p.Muted, "Add expected outcomes (one per line).")))
		b.WriteString(section("Scope", textOr(scope, "Define what is included and excluded.")))
		b.WriteString(section("Beneficiaries", textOr(beneficiaries, "Who benefits and how.")))
		b.WriteString(section("Timeline", textOr(timeline, "Key phases and dates.")))
		b.WriteString(section("Budget", textOr(budget, "Rough budget estimate and major heads.")))
		b.WriteString(section("Risks & Mitigations", mutedBullets(risks, p.Muted, "Add risks (one per line).")))
		return b.String()
	}

	switch layoutID {
	case "concept_a":
		// Cover page + body page inside one paper container; print CSS adds
		// the page break.
		coverField := func(label, value string) string {
			return fmt.Sprintf(`<div style="border-top:1px solid %s; padding-top:16px;">
<div style="font-size:12px; color:%s; font-weight:800; letter-spacing:0.10em; text-transform:uppercase;">%s</div>
<div style="margin-top:8px; font-size:16px; font-weight:700;">%s</div>
</div>`, p.Border, p.Muted, esc(label), textOr(value, "—"))
		}

		dateVersion := date
		if versionTag != "" {
			dateVersion = strings.TrimSpace(date + " · " + versionTag)
		}

		var cover strings.Builder
		cover.WriteString(`<div class="tc-page"><div style="padding:34px 40px 24px 40px;">`)
		fmt.Fprintf(&cover, `<div style="display:flex; align-items:flex-start; justify-content:space-between;">
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:800;">Concept Documentation</div>
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:800;">Project</div>
</div>`, p.Muted, p.Muted)
		fmt.Fprintf(&cover, `<div style="margin-top:18px; height:2px; background:linear-gradient(90deg, %s, transparent); opacity:0.55;"></div>`, p.Accent)
		cover.WriteString(`<div style="margin-top:34px; font-size:64px; font-weight:300; letter-spacing:-0.03em; line-height:1.0;"><div>Concept</div><div style="font-weight:700;">Note</div></div>`)
		cover.WriteString(`<div style="margin-top:38px; display:grid; grid-template-columns: 1fr 1fr; gap:22px;">`)
		cover.WriteString(coverField("Project Title", title))
		cover.WriteString(coverField("Organisation", org))
		cover.WriteString(coverField("Prepared by", preparedBy))
		cover.WriteString(coverField("Date / Version", dateVersion))
		cover.WriteString(`</div>`)
		fmt.Fprintf(&cover, `<div style="margin-top:34px; border-top:1px solid %s; padding-top:16px;">
<div style="font-size:12px; color:%s; font-weight:800; letter-spacing:0.10em; text-transform:uppercase;">Executive Summary</div>
<div style="margin-top:10px; font-size:15px; line-height:1.7; color:%s;">%s</div>
</div>`, p.Border, p.Muted, p.Muted, textOr(summary, "Add a short executive summary."))
		cover.WriteString(`</div>`)
		fmt.Fprintf(&cover, `<div style="background: linear-gradient(90deg, %s22, transparent), linear-gradient(180deg, rgba(0,0,0,0.02), rgba(0,0,0,0.03)); border-top:1px solid %s; padding:18px 40px; display:flex; align-items:center; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s; line-height:1.5;">%s</div>
<div style="font-size:12px; color:%s; font-weight:700;">%s</div>
</div></div>`, p.Accent, p.Border, p.Muted, footerNote, p.Muted, contact)

		var page strings.Builder
		page.WriteString(`<div class="tc-page tc-page-break"><div style="padding:30px 34px 34px 34px;">`)
		fmt.Fprintf(&page, `<div style="display:flex; justify-content:space-between; align-items:flex-start; gap:12px;">
<div>
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">Concept Note</div>
<div style="margin-top:10px; font-size:30px; font-weight:900; letter-spacing:-0.03em;">%s</div>
<div style="margin-top:6px; font-size:13px; color:%s;">%s</div>
</div>
<div style="width:80px; height:80px; border-radius:16px; border:1px solid %s; background: linear-gradient(135deg, %s22, transparent);"></div>
</div>`, p.Muted, title, p.Muted, metaLine, p.Border, p.Accent)
		page.WriteString(body(func(t, h string) string { return docSection(t, h, p.Muted, p.Border) }))
		page.WriteString(footer(true))
		page.WriteString(`</div></div>`)

		return fmt.Sprintf(`<style>
.tc-doc { font-family: %s; color:%s; width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow: 0 30px 90px rgba(0,0,0,0.10); position:relative; }
.tc-page + .tc-page { border-top:1px solid %s; }
@media print {
  @page { size: A4; margin: 14mm; }
  .tc-doc { box-shadow:none !important; border-radius:0 !important; border:none !important; }
  .tc-page-break { break-before: page; page-break-before: always; }
}
</style>
<div class="tc-doc">%s%s%s</div>`, fontStack, p.Text, p.Bg, p.Border, p.Border, o.watermark(), cover.String(), page.String())

	case "concept_b":
		var b strings.Builder
		fmt.Fprintf(&b, `<div style="font-family: %s; color:%s;">`, fontStack, p.Text)
		fmt.Fprintf(&b, `<div style="width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow: 0 30px 90px rgba(0,0,0,0.10); position:relative;">`, p.Bg, p.Border)
		b.WriteString(o.watermark())

		fmt.Fprintf(&b, `<div style="position:relative; height:120px; background:#111827;">
<div style="position:absolute; inset:0; background: linear-gradient(90deg, rgba(255,255,255,0.06), rgba(255,255,255,0.02));"></div>
<div style="position:absolute; right:-40px; top:-20px; width:240px; height:200px; transform:skewX(-18deg); background:%s; opacity:0.85;"></div>
<div style="position:absolute; right:-20px; top:-10px; width:210px; height:180px; transform:skewX(-18deg); background:#ffffff; opacity:0.10;"></div>
<div style="position:absolute; left:34px; top:26px;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:rgba(255,255,255,0.72); font-weight:900;">Concept Note</div>
<div style="margin-top:10px; font-size:34px; font-weight:900; color:#fff; letter-spacing:-0.03em;">%s</div>
<div style="margin-top:6px; font-size:13px; color:rgba(255,255,255,0.72);">%s</div>
</div></div>`, p.Accent, title, joinDot(org, preparedBy, date))

		b.WriteString(`<div style="padding:30px 34px 34px 34px;">`)
		b.WriteString(docSection("Executive Summary", textOr(summary, "Add a crisp summary of the project."), p.Muted, p.Border))
		b.WriteString(body(func(t, h string) string { return docSection(t, h, p.Muted, p.Border) }))
		b.WriteString(footer(true))
		b.WriteString(`</div></div></div>`)
		return b.String()
	}

	// Layout C (default): minimal editorial single page.
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family: %s; color:%s;">`, fontStack, p.Text)
	fmt.Fprintf(&b, `<div style="width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow: 0 30px 90px rgba(0,0,0,0.08); padding:38px 42px 34px 42px; position:relative;">`, p.Bg, p.Border)
	b.WriteString(o.watermark())

	fmt.Fprintf(&b, `<div style="display:flex; justify-content:space-between; gap:14px; align-items:flex-start;">
<div>
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; color:%s; font-weight:900;">Concept Note</div>
<div style="margin-top:10px; font-size:56px; font-weight:900; letter-spacing:-0.04em; line-height:1.05;">%s</div>
<div style="margin-top:10px; color:%s; font-size:14px;">%s</div>
</div>
<div style="width:110px; height:110px; border-radius:18px; border:1px solid %s; background: linear-gradient(135deg, %s22, transparent);"></div>
</div>`, p.Muted, title, p.Muted, metaLine, p.Border, p.Accent)

	fmt.Fprintf(&b, `<div style="margin-top:22px; height:1px; background:%s;"></div>`, p.Border)
	b.WriteString(`<div style="margin-top:22px; display:grid; gap:16px;">`)
	b.WriteString(miniSection("Executive Summary", textOr(summary, "Add a crisp summary."), p.Muted))
	b.WriteString(miniSection("Problem", textOr(problem, "Define the problem."), p.Muted))
	b.WriteString(miniSection("Solution", textOr(solution, "Your approach."), p.Muted))
	b.WriteString(miniSection("Objectives", mutedBullets(objectives, p.Muted, "Add objectives."), p.Muted))
	b.WriteString(miniSection("Expected Outcomes", mutedBullets(outcomes, p.Muted, "Add outcomes."), p.Muted))
	b.WriteString(miniSection("Scope", textOr(scope, "What is included."), p.Muted))
	b.WriteString(miniSection("Timeline", textOr(timeline, "Phases and dates."), p.Muted))
	b.WriteString(miniSection("Budget", textOr(budget, "Estimate and breakdown."), p.Muted))
	b.WriteString(miniSection("Risks", mutedBullets(risks, p.Muted, "Add risks."), p.Muted))
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div style="margin-top:22px; height:1px; background:%s;"></div>`, p.Border)
	b.WriteString(footer(false))
	b.WriteString(`</div></div>`)
	return b.String()
}
