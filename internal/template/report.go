package template

import "typecraft/internal/artifact"

var onePageReport = Template{
	Artifact:        artifact.OnePageReport,
	Title:           "One-page report",
	Description:     "Tight, structured, printable.",
	DefaultLayoutID: "report_a",
	Layouts: []Layout{
		{ID: "report_a", Name: "Report A", Ratio: "a4", Vibe: "clean"},
		{ID: "report_b", Name: "Report B", Ratio: "a4", Vibe: "editorial"},
		{ID: "report_c", Name: "Report C", Ratio: "a4", Vibe: "bold"},
	},
	DefaultTheme: lightTheme("#10b981"),
	AccentOptions: []ThemeOption{
		{ID: "mint", Name: "Mint", Value: "#10b981"},
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "rose", Name: "Rose", Value: "#f43f5e"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "sky", Name: "Sky", Value: "#0ea5e9"},
		{ID: "violet", Name: "Violet", Value: "#8b5cf6"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "title", Label: "Title", Placeholder: "Q4 Growth Update — Week 2", Required: true, MaxChars: 80},
		{Kind: KindText, ID: "subtitle", Label: "Subtitle", Placeholder: "A crisp one-pager for stakeholders", MaxChars: 120},
		{Kind: KindDivider, ID: "divider_1", Label: "—"},
		{Kind: KindStat, ID: "stats", Label: "Top stats", Hint: "3–4 key numbers. Keep it skimmable.", Stat: StatFields{Label: "Metric", Value: "Value"}},
		{Kind: KindTextarea, ID: "summary", Label: "Executive summary", Placeholder: "What happened, why it matters, and what's next.", Required: true, Rows: 5, MaxChars: 600},
		{Kind: KindBullets, ID: "highlights", Label: "Highlights", Placeholder: "Add 3–6 bullets", MaxItems: 6},
		{Kind: KindBullets, ID: "risks", Label: "Risks / blockers", Placeholder: "Add 0–5 bullets", MaxItems: 5},
		{Kind: KindBullets, ID: "next_steps", Label: "Next steps", Placeholder: "Add 3–6 bullets", MaxItems: 6},
		{Kind: KindText, ID: "owner", Label: "Owner", Placeholder: "Partha", MaxChars: 40},
		{Kind: KindText, ID: "date", Label: "Date", Placeholder: "Dec 31, 2025", MaxChars: 30},
	},
}

var projectReport = Template{
	Artifact:        artifact.ProjectReport,
	Title:           "Project report",
	Description:     "Outcome + timeline + next.",
	DefaultLayoutID: "proj_a",
	Layouts: []Layout{
		{ID: "proj_a", Name: "Project A (Cover+Body)", Ratio: "a4", Vibe: "bold"},
		{ID: "proj_b", Name: "Project B (Blue Banner)", Ratio: "a4", Vibe: "clean"},
		{ID: "proj_c", Name: "Project C (Grid+Stats)", Ratio: "a4", Vibe: "editorial"},
	},
	DefaultTheme: lightTheme("#2563eb"),
	AccentOptions: []ThemeOption{
		{ID: "blue", Name: "Blue", Value: "#2563eb"},
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "emerald", Name: "Emerald", Value: "#10b981"},
		{ID: "rose", Name: "Rose", Value: "#f43f5e"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "project", Label: "Project name", Placeholder: "e.g., Payments Revamp Q4"},
		{Kind: KindText, ID: "team", Label: "Team / Org", Placeholder: "e.g., Product Engineering"},
		{Kind: KindText, ID: "owner", Label: "Owner", Placeholder: "Name"},
		{Kind: KindText, ID: "period", Label: "Period", Placeholder: "e.g., Oct–Dec 2025"},
		{Kind: KindText, ID: "date", Label: "Report date", Placeholder: "YYYY-MM-DD"},
		{Kind: KindDivider, ID: "d1", Label: "—"},
		{Kind: KindTextarea, ID: "exec_summary", Label: "Executive summary", Placeholder: "What happened, what changed, why it matters.", Rows: 5},
		{Kind: KindTextarea, ID: "goals", Label: "Goals", Placeholder: "What were we trying to achieve?", Rows: 4},
		{Kind: KindTextarea, ID: "scope", Label: "Scope", Placeholder: "What was included / excluded.", Rows: 4},
		{Kind: KindDivider, ID: "d2", Label: "—"},
		{Kind: KindBullets, ID: "highlights", Label: "Highlights (one per line)"},
		{Kind: KindBullets, ID: "wins", Label: "Key wins / outcomes (one per line)"},
		{Kind: KindBullets, ID: "metrics", Label: "Metrics (one per line, e.g. “Latency: -32%”)"},
		{Kind: KindBullets, ID: "risks", Label: "Risks / blockers (one per line)"},
		{Kind: KindDivider, ID: "d3", Label: "—"},
		{Kind: KindTextarea, ID: "timeline", Label: "Timeline", Placeholder: "Phases, milestones, dates.", Rows: 5},
		{Kind: KindBullets, ID: "next_steps", Label: "Next steps (one per line)"},
		{Kind: KindDivider, ID: "d4", Label: "—"},
		{Kind: KindText, ID: "stakeholders", Label: "Stakeholders", Placeholder: "Names / functions (one line)"},
		{Kind: KindText, ID: "footer_note", Label: "Footer note", Placeholder: "TypeCraft · Free (watermarked)"},
	},
}
