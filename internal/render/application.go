package render

import (
	"fmt"
	"strings"

	"typecraft/internal/template"
)

func heroPill(v, border string) string {
	if v == "" {
		return fmt.Sprintf(`<div style="border:1px dashed %s; border-radius:999px; padding:10px 12px; color:rgba(255,255,255,0.55); font-size:12px;">—</div>`, border)
	}
	return fmt.Sprintf(`<div style="border:1px solid rgba(255,255,255,0.18); border-radius:999px; padding:10px 12px; color:#fff; font-size:12px; overflow:hidden; text-overflow:ellipsis; white-space:nowrap;">%s</div>`, v)
}

func contactTag(v string) string {
	if v == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="border:1px solid rgba(0,0,0,0.10); border-radius:999px; padding:8px 12px; font-size:12px; color:#111; background:rgba(0,0,0,0.02);">%s</div>`, v)
}

func sideItem(k, v, muted string) string {
	return fmt.Sprintf(`<div>
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:6px; font-size:12px; color:#111; font-weight:800; overflow:hidden; text-overflow:ellipsis;">%s</div>
</div>`, muted, esc(k), textOr(v, "—"))
}

func kvTile(label, value, muted, border string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; padding:14px;">
<div style="font-size:12px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:8px; font-size:14px; font-weight:800;">%s</div>
</div>`, border, muted, esc(label), textOr(value, "—"))
}

func bodyCard(title, bodyHTML, muted, border string) string {
	return fmt.Sprintf(`<div style="border:1px solid %s; border-radius:18px; padding:16px;">
<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase;">%s</div>
<div style="margin-top:10px; font-size:14px; line-height:1.75; color:%s; white-space:pre-wrap;">%s</div>
</div>`, border, esc(title), muted, bodyHTML)
}

func renderApplication(a template.Answers, th template.Theme, layoutID string, o Options) string {
	p := resolve(th, "#0ea5e9")

	name := esc(textOr(a.Text("name"), "Your name"))
	role := esc(textOr(a.Text("role"), "Role"))
	company := esc(textOr(a.Text("company"), "Company"))

	email := esc(a.Text("email"))
	phone := esc(a.Text("phone"))
	location := esc(a.Text("location"))
	links := esc(a.Text("links"))

	summary := esc(a.Text("summary"))
	why := esc(a.Text("why"))

	experience := a.Bullets("experience")
	projects := a.Bullets("projects")
	skills := a.Bullets("skills")

	availability := esc(a.Text("availability"))
	comp := esc(a.Text("comp"))
	references := a.Bullets("references")

	footerNote := esc(textOr(a.Text("footer_note"), o.brand()))

	docOpen := fmt.Sprintf(`<div style="font-family: %s; color:%s;">
<div style="width:820px; max-width:100%%; margin:0 auto; background:%s; border:1px solid %s; border-radius:18px; overflow:hidden; box-shadow: 0 30px 90px rgba(0,0,0,0.10); position:relative;">%s`,
		fontStack, p.Text, p.Bg, p.Border, o.watermark())

	docClose := fmt.Sprintf(`<div style="border-top:1px solid %s; padding:14px 22px; display:flex; justify-content:space-between; gap:14px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:12px; color:%s; font-weight:700;">%s</div>
</div></div></div>`, p.Border, p.Muted, footerNote, p.Muted, email)

	switch layoutID {
	case "app_a":
		var b strings.Builder
		b.WriteString(docOpen)

		fmt.Fprintf(&b, `<div style="position:relative; padding:26px 26px 22px 26px; background:#0b1220;">
<div style="position:absolute; inset:0; background: radial-gradient(circle at 70%% 10%%, %s66, transparent 55%%), linear-gradient(135deg, rgba(255,255,255,0.10), rgba(255,255,255,0.02));"></div>
<div style="position:relative;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:rgba(255,255,255,0.74); font-weight:900;">Application · %s</div>
<div style="margin-top:10px; font-size:46px; font-weight:900; color:#fff; letter-spacing:-0.04em; line-height:1.0;">%s</div>
<div style="margin-top:10px; font-size:14px; color:rgba(255,255,255,0.78);">%s</div>
<div style="margin-top:18px; display:grid; grid-template-columns: 1fr 1fr; gap:10px;">%s%s%s%s</div>
</div></div>`,
			p.Accent, company, name, role,
			heroPill(email, p.Border), heroPill(phone, p.Border), heroPill(location, p.Border), heroPill(links, p.Border))

		b.WriteString(`<div style="padding:22px 26px 22px 26px;">`)
		b.WriteString(docSection("Profile summary", textOr(summary, "Add a crisp summary."), p.Muted, p.Border))
		b.WriteString(docSection("Why this role", textOr(why, "Add your rationale."), p.Muted, p.Border))
		b.WriteString(`<div style="margin-top:18px; display:grid; grid-template-columns: 1fr 1fr; gap:16px;">`)
		b.WriteString(accentPanel("Experience highlights", mutedBullets(experience, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(accentPanel("Key projects", mutedBullets(projects, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(`</div><div style="margin-top:16px;">`)
		b.WriteString(accentPanel("Skills", mutedBullets(skills, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div style="margin-top:16px; display:grid; grid-template-columns: 1fr 1fr; gap:16px;">%s%s</div>`,
			kvTile("Availability", availability, p.Muted, p.Border),
			kvTile("Compensation", comp, p.Muted, p.Border))
		b.WriteString(`<div style="margin-top:16px;">`)
		b.WriteString(accentPanel("References", mutedBullets(references, p.Muted, "—"), p.Accent, p.Muted, p.Border))
		b.WriteString(`</div></div>`)
		b.WriteString(docClose)
		return b.String()

	case "app_b":
		var b strings.Builder
		b.WriteString(docOpen)
		b.WriteString(`<div style="display:flex; gap:0;">`)

		fmt.Fprintf(&b, `<div style="width:200px; border-right:1px solid %s; background:%s14; padding:18px 14px;">
<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">%s</div>
<div style="margin-top:12px; font-size:22px; font-weight:900; letter-spacing:-0.02em;">%s</div>
<div style="margin-top:6px; font-size:12px; color:%s; font-weight:800;">%s</div>
<div style="margin-top:14px; border-top:1px solid %s; padding-top:12px; display:grid; gap:10px;">%s%s%s%s</div>
<div style="margin-top:14px; border-top:1px solid %s; padding-top:12px;">
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">Availability</div>
<div style="margin-top:6px; font-size:12px; color:#111; font-weight:800;">%s</div>
</div>
<div style="margin-top:12px;">
<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; color:%s; font-weight:900;">Comp</div>
<div style="margin-top:6px; font-size:12px; color:#111; font-weight:800;">%s</div>
</div></div>`,
			p.Border, p.Accent, p.Muted, company, name, p.Muted, role, p.Border,
			sideItem("Email", email, p.Muted), sideItem("Phone", phone, p.Muted),
			sideItem("Location", location, p.Muted), sideItem("Links", links, p.Muted),
			p.Border, p.Muted, textOr(availability, "—"), p.Muted, textOr(comp, "—"))

		b.WriteString(`<div style="flex:1; padding:22px 24px;">`)
		fmt.Fprintf(&b, `<div style="font-size:12px; letter-spacing:0.14em; text-transform:uppercase; color:%s; font-weight:900;">Application</div>
<div style="margin-top:10px; font-size:34px; font-weight:900; letter-spacing:-0.03em;">%s</div>`, p.Muted, role)

		b.WriteString(`<div style="margin-top:16px; display:grid; gap:14px;">`)
		b.WriteString(bodyCard("Profile summary", textOr(summary, "Add a crisp summary."), p.Muted, p.Border))
		b.WriteString(bodyCard("Why this role", textOr(why, "Add a rationale."), p.Muted, p.Border))
		b.WriteString(`</div>`)
		b.WriteString(`<div style="margin-top:16px; display:grid; grid-template-columns: 1fr 1fr; gap:14px;">`)
		b.WriteString(bodyCard("Experience highlights", mutedBullets(experience, p.Muted, "—"), p.Muted, p.Border))
		b.WriteString(bodyCard("Key projects", mutedBullets(projects, p.Muted, "—"), p.Muted, p.Border))
		b.WriteString(`</div><div style="margin-top:14px;">`)
		b.WriteString(bodyCard("Skills", mutedBullets(skills, p.Muted, "—"), p.Muted, p.Border))
		b.WriteString(`</div><div style="margin-top:14px;">`)
		b.WriteString(bodyCard("References", mutedBullets(references, p.Muted, "—"), p.Muted, p.Border))
		b.WriteString(`</div></div></div>`)
		b.WriteString(docClose)
		return b.String()
	}

	// Layout C (default): minimal editorial.
	roleLine := role
	if location != "" {
		roleLine = role + " · " + location
	}

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
</div>`, p.Muted, company, name, p.Muted, roleLine, p.Border, p.Accent)

	fmt.Fprintf(&b, `<div style="margin-top:18px; display:flex; flex-wrap:wrap; gap:10px;">%s%s%s</div>`,
		contactTag(email), contactTag(phone), contactTag(links))
	fmt.Fprintf(&b, `<div style="margin-top:22px; height:1px; background:%s;"></div>`, p.Border)
	b.WriteString(`<div style="margin-top:22px; display:grid; gap:16px;">`)
	b.WriteString(miniSection("Profile summary", textOr(summary, "Add a crisp summary."), p.Muted))
	b.WriteString(miniSection("Why this role", textOr(why, "Add a rationale."), p.Muted))
	b.WriteString(miniSection("Experience highlights", mutedBullets(experience, p.Muted, "—"), p.Muted))
	b.WriteString(miniSection("Key projects", mutedBullets(projects, p.Muted, "—"), p.Muted))
	b.WriteString(miniSection("Skills", mutedBullets(skills, p.Muted, "—"), p.Muted))
	b.WriteString(miniSection("Availability", textOr(availability, "—"), p.Muted))
	b.WriteString(miniSection("Compensation", textOr(comp, "—"), p.Muted))
	b.WriteString(miniSection("References", mutedBullets(references, p.Muted, "—"), p.Muted))
	b.WriteString(`</div></div>`)
	b.WriteString(docClose)
	return b.String()
}
