package template

import "typecraft/internal/artifact"

var conceptNote = Template{
	Artifact:        artifact.ConceptNote,
	Title:           "Concept note",
	Description:     "Idea → scope → plan.",
	DefaultLayoutID: "concept_a",
	Layouts: []Layout{
		{ID: "concept_a", Name: "Concept A (Cover)", Ratio: "a4", Vibe: "editorial"},
		{ID: "concept_b", Name: "Concept B (Banner)", Ratio: "a4", Vibe: "clean"},
		{ID: "concept_c", Name: "Concept C (Minimal)", Ratio: "a4", Vibe: "minimal"},
	},
	DefaultTheme: lightTheme("#10b981"),
	AccentOptions: []ThemeOption{
		{ID: "mint", Name: "Mint", Value: "#10b981"},
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "title", Label: "Project / Programme Title", Placeholder: "e.g., Tripura Rising 2026"},
		{Kind: KindText, ID: "org", Label: "Organisation", Placeholder: "e.g., Coassist Foundation"},
		{Kind: KindText, ID: "prepared_by", Label: "Prepared by", Placeholder: "Your name"},
		{Kind: KindText, ID: "date", Label: "Date", Placeholder: "YYYY-MM-DD"},
		{Kind: KindText, ID: "version", Label: "Version", Placeholder: "1.0"},
		{Kind: KindDivider, ID: "d1", Label: "—"},
		{Kind: KindTextarea, ID: "summary", Label: "Executive Summary", Placeholder: "2–6 lines describing what this is.", Rows: 5},
		{Kind: KindTextarea, ID: "problem", Label: "Problem", Placeholder: "What problem exists? Why now?", Rows: 5},
		{Kind: KindTextarea, ID: "solution", Label: "Proposed Solution", Placeholder: "What you propose to do.", Rows: 5},
		{Kind: KindBullets, ID: "objectives", Label: "Objectives (one per line)"},
		{Kind: KindBullets, ID: "expected_outcomes", Label: "Expected Outcomes (one per line)"},
		{Kind: KindDivider, ID: "d2", Label: "—"},
		{Kind: KindTextarea, ID: "scope", Label: "Scope", Placeholder: "What's included, what's not.", Rows: 4},
		{Kind: KindTextarea, ID: "beneficiaries", Label: "Beneficiaries", Placeholder: "Who benefits and how.", Rows: 4},
		{Kind: KindTextarea, ID: "timeline", Label: "Timeline", Placeholder: "Phases, milestones, dates.", Rows: 4},
		{Kind: KindTextarea, ID: "budget", Label: "Budget", Placeholder: "Rough budget and top heads.", Rows: 4},
		{Kind: KindBullets, ID: "risks", Label: "Risks & mitigations (one per line)"},
		{Kind: KindDivider, ID: "d3", Label: "—"},
		{Kind: KindText, ID: "contact_name", Label: "Contact name", Placeholder: "Name"},
		{Kind: KindText, ID: "contact_email", Label: "Contact email", Placeholder: "name@company.com"},
		{Kind: KindText, ID: "footer_note", Label: "Footer note", Placeholder: "TypeCraft · Concept Note"},
	},
}

var executiveSummary = Template{
	Artifact:        artifact.ExecutiveSummary,
	Title:           "Executive summary",
	Description:     "Executive-friendly briefing.",
	DefaultLayoutID: "exec_a",
	Layouts: []Layout{
		{ID: "exec_a", Name: "Exec A (Photo Hero)", Ratio: "a4", Vibe: "bold"},
		{ID: "exec_b", Name: "Exec B (Dashboard)", Ratio: "a4", Vibe: "clean"},
		{ID: "exec_c", Name: "Exec C (Minimal)", Ratio: "a4", Vibe: "minimal"},
	},
	DefaultTheme: lightTheme("#2563eb"),
	AccentOptions: []ThemeOption{
		{ID: "blue", Name: "Royal Blue", Value: "#2563eb"},
		{ID: "teal", Name: "Teal", Value: "#14b8a6"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "org", Label: "Organisation", Placeholder: "e.g., Arrowwai Industries"},
		{Kind: KindText, ID: "title", Label: "Document title", Placeholder: "Executive Summary"},
		{Kind: KindText, ID: "period", Label: "Period / Context", Placeholder: "e.g., Q4 2025 · Board Update"},
		{Kind: KindText, ID: "prepared_by", Label: "Prepared by", Placeholder: "Name"},
		{Kind: KindText, ID: "date", Label: "Date", Placeholder: "YYYY-MM-DD"},
		{Kind: KindDivider, ID: "d1", Label: "—"},
		{Kind: KindTextarea, ID: "intro", Label: "Introduction", Placeholder: "2–5 lines of context.", Rows: 4},
		{Kind: KindTextarea, ID: "summary", Label: "Executive Summary", Placeholder: "Crisp, skimmable summary.", Rows: 6},
		{Kind: KindDivider, ID: "d2", Label: "—"},
		{Kind: KindBullets, ID: "highlights", Label: "Key highlights (one per line)"},
		{Kind: KindBullets, ID: "risks", Label: "Risks / Watchouts (one per line)"},
		{Kind: KindBullets, ID: "next_steps", Label: "Next steps (one per line)"},
		{Kind: KindDivider, ID: "d3", Label: "—"},
		{Kind: KindStat, ID: "stat_1", Label: "Metric 1", Stat: StatFields{Label: "Metric", Value: "Value"}},
		{Kind: KindStat, ID: "stat_2", Label: "Metric 2", Stat: StatFields{Label: "Metric", Value: "Value"}},
		{Kind: KindStat, ID: "stat_3", Label: "Metric 3", Stat: StatFields{Label: "Metric", Value: "Value"}},
		{Kind: KindDivider, ID: "d4", Label: "—"},
		{Kind: KindText, ID: "contact_email", Label: "Contact email", Placeholder: "hello@company.com"},
		{Kind: KindText, ID: "footer_note", Label: "Footer note", Placeholder: "TypeCraft · Free (watermarked)"},
	},
}

var application = Template{
	Artifact:        artifact.Application,
	Title:           "Application",
	Description:     "Clean, confident, skimmable.",
	DefaultLayoutID: "app_a",
	Layouts: []Layout{
		{ID: "app_a", Name: "App A (Hero)", Ratio: "a4", Vibe: "bold"},
		{ID: "app_b", Name: "App B (Sidebar)", Ratio: "a4", Vibe: "clean"},
		{ID: "app_c", Name: "App C (Minimal)", Ratio: "a4", Vibe: "minimal"},
	},
	DefaultTheme: lightTheme("#0ea5e9"),
	AccentOptions: []ThemeOption{
		{ID: "sky", Name: "Sky", Value: "#0ea5e9"},
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "emerald", Name: "Emerald", Value: "#10b981"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "name", Label: "Full name", Placeholder: "Your name"},
		{Kind: KindText, ID: "role", Label: "Role applying for", Placeholder: "e.g., Founding Engineer"},
		{Kind: KindText, ID: "company", Label: "Company / Team", Placeholder: "e.g., TypeCraft"},
		{Kind: KindDivider, ID: "d1", Label: "—"},
		{Kind: KindText, ID: "email", Label: "Email", Placeholder: "name@email.com"},
		{Kind: KindText, ID: "phone", Label: "Phone", Placeholder: "+91…"},
		{Kind: KindText, ID: "location", Label: "Location", Placeholder: "City, Country"},
		{Kind: KindText, ID: "links", Label: "Links", Placeholder: "Portfolio / GitHub / LinkedIn (one line)"},
		{Kind: KindDivider, ID: "d2", Label: "—"},
		{Kind: KindTextarea, ID: "summary", Label: "Profile summary", Placeholder: "3–6 lines. Who you are + what you've done.", Rows: 5},
		{Kind: KindTextarea, ID: "why", Label: "Why this role?", Placeholder: "Why you + why them. Be specific.", Rows: 5},
		{Kind: KindDivider, ID: "d3", Label: "—"},
		{Kind: KindBullets, ID: "experience", Label: "Experience highlights (one per line)"},
		{Kind: KindBullets, ID: "projects", Label: "Key projects (one per line)"},
		{Kind: KindBullets, ID: "skills", Label: "Skills (one per line)"},
		{Kind: KindDivider, ID: "d4", Label: "—"},
		{Kind: KindText, ID: "availability", Label: "Availability", Placeholder: "e.g., Immediately / 2 weeks"},
		{Kind: KindText, ID: "comp", Label: "Compensation expectations", Placeholder: "Optional"},
		{Kind: KindBullets, ID: "references", Label: "References (optional, one per line)"},
		{Kind: KindDivider, ID: "d5", Label: "—"},
		{Kind: KindText, ID: "footer_note", Label: "Footer note", Placeholder: "TypeCraft · Free"},
	},
}

var statusCard = Template{
	Artifact:        artifact.StatusCard,
	Title:           "Status card",
	Description:     "A clean update card you can share anywhere.",
	DefaultLayoutID: "status_a",
	Layouts: []Layout{
		{ID: "status_a", Name: "Status A (Product)", Ratio: "square", Vibe: "bold"},
		{ID: "status_b", Name: "Status B (Split)", Ratio: "square", Vibe: "clean"},
		{ID: "status_c", Name: "Status C (Minimal)", Ratio: "square", Vibe: "editorial"},
	},
	DefaultTheme: lightTheme("#22c55e"),
	AccentOptions: []ThemeOption{
		{ID: "green", Name: "Green", Value: "#22c55e"},
		{ID: "blue", Name: "Blue", Value: "#2563eb"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "rose", Name: "Rose", Value: "#f43f5e"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "project", Label: "Project / Client", Placeholder: "e.g., Arrowwai Industries"},
		{Kind: KindText, ID: "title", Label: "Update title", Placeholder: "e.g., Week 5 Status Update"},
		{Kind: KindText, ID: "owner", Label: "Owner", Placeholder: "Your name"},
		{Kind: KindText, ID: "date", Label: "Date", Placeholder: "YYYY-MM-DD"},
		{Kind: KindDivider, ID: "d1", Label: "—"},
		{Kind: KindText, ID: "status", Label: "Overall status", Placeholder: "On track / At risk / Off track"},
		{Kind: KindTextarea, ID: "summary", Label: "Summary", Placeholder: "2–5 lines. What changed? What matters?", Rows: 5},
		{Kind: KindDivider, ID: "d2", Label: "—"},
		{Kind: KindBullets, ID: "wins", Label: "Wins (one per line)"},
		{Kind: KindBullets, ID: "blockers", Label: "Blockers / risks (one per line)"},
		{Kind: KindBullets, ID: "next", Label: "Next steps (one per line)"},
		{Kind: KindDivider, ID: "d3", Label: "—"},
		{Kind: KindText, ID: "cta", Label: "CTA button text", Placeholder: "e.g., View plan / Book review call"},
		{Kind: KindText, ID: "footer_note", Label: "Footer note", Placeholder: "TypeCraft · Free"},
	},
}
