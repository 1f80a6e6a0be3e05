package template

import "typecraft/internal/artifact"

// The pitch deck collects no flat blocks; its answers are the slide list
// managed by the deck sub-editor.
var pitchDeck = Template{
	Artifact:        artifact.PitchDeck,
	Title:           "Pitch deck",
	Description:     "Slides that look like a fundraise.",
	DefaultLayoutID: "deck_a",
	Layouts: []Layout{
		{ID: "deck_a", Name: "Deck A", Ratio: "wide", Vibe: "bold"},
		{ID: "deck_b", Name: "Deck B", Ratio: "wide", Vibe: "clean"},
		{ID: "deck_c", Name: "Deck C (Gradient)", Ratio: "wide", Vibe: "bold"},
		{ID: "deck_d", Name: "Deck D (Dark)", Ratio: "wide", Vibe: "minimal"},
		{ID: "deck_e", Name: "Deck E (Outline)", Ratio: "wide", Vibe: "editorial"},
	},
	DefaultTheme: lightTheme("#6366f1"),
	AccentOptions: []ThemeOption{
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "emerald", Name: "Emerald", Value: "#10b981"},
		{ID: "rose", Name: "Rose", Value: "#f43f5e"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
		{ID: "ink", Name: "Ink", Value: "#111827"},
	},
	Blocks: []Block{},
}

var screenshot = comingSoon(artifact.Screenshot, "Screenshot", "Coming soon.", "#f43f5e", "wide")

var collage = comingSoon(artifact.Collage, "Collage", "Coming soon.", "#14b8a6", "square")

func comingSoon(id artifact.ID, title, desc, accent, ratio string) Template {
	return Template{
		Artifact:        id,
		Title:           title,
		Description:     desc,
		DefaultLayoutID: "coming_soon",
		Layouts: []Layout{
			{ID: "coming_soon", Name: "Coming soon", Ratio: ratio, Vibe: "minimal"},
		},
		DefaultTheme: lightTheme(accent),
		Blocks: []Block{
			{Kind: KindTextarea, ID: "note", Label: "Note", Placeholder: "This artifact is coming soon.", Rows: 3},
		},
	}
}

var surprise = Template{
	Artifact:        artifact.Surprise,
	Title:           "Surprise me",
	Description:     "Spin the wheel. Get something random.",
	DefaultLayoutID: "surprise_roulette",
	Layouts: []Layout{
		{ID: "surprise_roulette", Name: "Roulette", Ratio: "square", Vibe: "bold"},
	},
	DefaultTheme: lightTheme("#111827"),
	AccentOptions: []ThemeOption{
		{ID: "ink", Name: "Ink", Value: "#111827"},
		{ID: "indigo", Name: "Indigo", Value: "#6366f1"},
		{ID: "rose", Name: "Rose", Value: "#f43f5e"},
		{ID: "emerald", Name: "Emerald", Value: "#10b981"},
		{ID: "amber", Name: "Amber", Value: "#f59e0b"},
	},
	Blocks: []Block{
		{Kind: KindText, ID: "seed", Label: "Optional seed", Placeholder: "Leave empty for true randomness"},
	},
}
