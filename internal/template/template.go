package template

import (
	"typecraft/internal/artifact"
)

// BlockKind tags the form-field variants a template may declare.
type BlockKind string

const (
	KindText     BlockKind = "text"
	KindTextarea BlockKind = "textarea"
	KindBullets  BlockKind = "bullets"
	KindStat     BlockKind = "stat"
	KindDivider  BlockKind = "divider"
)

// StatFields carries the captions shown next to a stat block's two inputs.
type StatFields struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Block describes one form field within a template. Only the fields relevant
// to its Kind are set.
type Block struct {
	Kind        BlockKind  `json:"kind"`
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Hint        string     `json:"hint,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	MaxChars    int        `json:"max_chars,omitempty"`
	MaxItems    int        `json:"max_items,omitempty"`
	Rows        int        `json:"rows,omitempty"`
	Stat        StatFields `json:"stat,omitempty"`
}

// Layout is one visual arrangement variant of an artifact's renderer.
type Layout struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ratio string `json:"ratio"` // a4 / square / wide / story
	Vibe  string `json:"vibe"`  // clean / bold / editorial / minimal
}

// ThemeOption is one selectable value for a theme token.
type ThemeOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Theme holds the color tokens applied across all layouts of an artifact.
// Unset fields fall back to the renderer's hard-coded defaults.
type Theme struct {
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	MutedText  string `json:"mutedText,omitempty"`
	Card       string `json:"card,omitempty"`
	Border     string `json:"border,omitempty"`
}

// Merge overlays the non-empty fields of other on top of t.
func (t Theme) Merge(other Theme) Theme {
	if other.Accent != "" {
		t.Accent = other.Accent
	}
	if other.Background != "" {
		t.Background = other.Background
	}
	if other.Text != "" {
		t.Text = other.Text
	}
	if other.MutedText != "" {
		t.MutedText = other.MutedText
	}
	if other.Card != "" {
		t.Card = other.Card
	}
	if other.Border != "" {
		t.Border = other.Border
	}
	return t
}

// Template is the static configuration for one artifact: its layouts, form
// blocks and default styling. Registry entries are defined at init and never
// mutated.
type Template struct {
	Artifact        artifact.ID   `json:"artifact"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Layouts         []Layout      `json:"layouts"`
	Blocks          []Block       `json:"blocks"`
	DefaultTheme    Theme         `json:"default_theme"`
	DefaultLayoutID string        `json:"default_layout_id"`
	AccentOptions   []ThemeOption `json:"accent_options,omitempty"`
}

// HasLayout reports whether id names one of the template's layouts.
func (t Template) HasLayout(id string) bool {
	for _, l := range t.Layouts {
		if l.ID == id {
			return true
		}
	}
	return false
}

var registry = map[artifact.ID]Template{
	artifact.PitchDeck:        pitchDeck,
	artifact.OnePageReport:    onePageReport,
	artifact.ConceptNote:      conceptNote,
	artifact.ExecutiveSummary: executiveSummary,
	artifact.StatusCard:       statusCard,
	artifact.Application:      application,
	artifact.ProjectReport:    projectReport,
	artifact.Screenshot:       screenshot,
	artifact.Collage:          collage,
	artifact.Surprise:         surprise,
}

// Get looks up the template for an artifact. Unknown ids report ok=false and
// the caller degrades to an empty-state response.
func Get(id artifact.ID) (Template, bool) {
	t, ok := registry[id]
	return t, ok
}

// All returns every template in panel order.
func All() []Template {
	out := make([]Template, 0, len(artifact.All))
	for _, def := range artifact.All {
		out = append(out, registry[def.ID])
	}
	return out
}

// lightTheme 是大多数模板共享的默认浅色主题，仅 accent 不同。
func lightTheme(accent string) Theme {
	return Theme{
		Accent:     accent,
		Background: "#ffffff",
		Text:       "#0a0a0a",
		MutedText:  "#52525b",
		Card:       "#ffffff",
		Border:     "rgba(0,0,0,0.10)",
	}
}
