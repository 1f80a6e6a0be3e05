// Package deck implements the structured sub-editor for pitch decks: an
// ordered slide list with a current-slide cursor. Every operation returns a
// new Deck (copy-on-write) so the editor's change detection and draft resync
// fire on each edit.
package deck

import (
	"encoding/json"
	"strings"

	"typecraft/internal/slug"
	"typecraft/internal/template"
)

// Type tags what a slide is about; it only changes defaults and labels, the
// data record is shared by all types.
type Type string

const (
	Title         Type = "title"
	Problem       Type = "problem"
	Solution      Type = "solution"
	Product       Type = "product"
	Market        Type = "market"
	Traction      Type = "traction"
	BusinessModel Type = "business_model"
	GTM           Type = "gtm"
	Competition   Type = "competition"
	Team          Type = "team"
	Ask           Type = "ask"
	Custom        Type = "custom"
)

// TypeInfo 描述幻灯片类型在编辑器里的展示文案。
type TypeInfo struct {
	ID    Type   `json:"id"`
	Label string `json:"label"`
	Hint  string `json:"hint"`
}

// Types lists every slide type in picker order.
var Types = []TypeInfo{
	{Title, "Title", "Big statement + subtitle"},
	{Problem, "Problem", "What hurts & who feels it"},
	{Solution, "Solution", "Your wedge"},
	{Product, "Product", "What it is + key features"},
	{Market, "Market", "TAM / ICP / why now"},
	{Traction, "Traction", "Proof, metrics, momentum"},
	{BusinessModel, "Business model", "Pricing / unit economics"},
	{GTM, "Go-to-market", "Distribution + loops"},
	{Competition, "Competition", "Why you win"},
	{Team, "Team", "Why you can do it"},
	{Ask, "Ask", "Round / use of funds"},
	{Custom, "Custom", "Any slide you want"},
}

func typeLabel(t Type) string {
	for _, info := range Types {
		if info.ID == t {
			return info.Label
		}
	}
	return "Slide"
}

// Data is the content record shared by every slide type. Bullets may hold
// blank entries while the raw editor is open; renderers and CommitBullets
// normalize them away.
type Data struct {
	Title      string   `json:"title,omitempty"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
	Footer     string   `json:"footer,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	ChartLines string   `json:"chartLines,omitempty"`
}

// Patch carries a partial update for a slide's data record; nil fields are
// left untouched.
type Patch struct {
	Title      *string   `json:"title,omitempty"`
	Subtitle   *string   `json:"subtitle,omitempty"`
	Bullets    *[]string `json:"bullets,omitempty"`
	Footer     *string   `json:"footer,omitempty"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	ChartLines *string   `json:"chartLines,omitempty"`
}

// Slide is one entry in the deck.
type Slide struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`
	Data Data   `json:"data"`
}

// Deck is the slide list plus the current-slide cursor. The zero value is a
// valid empty deck.
type Deck struct {
	Slides         []Slide `json:"slides"`
	CurrentSlideID string  `json:"currentSlideId,omitempty"`
	LogoURL        string  `json:"logoUrl,omitempty"`
}

// NewSlide creates a slide of the given type with default content.
func NewSlide(t Type) Slide {
	title := typeLabel(t)
	subtitle := ""
	if t == Title {
		title = "Company name"
		subtitle = "One-liner that sounds like a fundraise."
	}
	return Slide{
		ID:   slug.New(10),
		Type: t,
		Data: Data{Title: title, Subtitle: subtitle, Bullets: []string{}},
	}
}

// Starter seeds the slides a brand-new pitch deck opens with.
func Starter() Deck {
	slides := []Slide{
		{ID: "s1", Type: Title, Data: Data{Title: "Company name", Subtitle: "One-liner that sounds like a fundraise.", Bullets: []string{}}},
		{ID: "s2", Type: Problem, Data: Data{Title: "Problem", Bullets: []string{}}},
		{ID: "s3", Type: Solution, Data: Data{Title: "Solution", Bullets: []string{}}},
		{ID: "s4", Type: Product, Data: Data{Title: "Product", Bullets: []string{}}},
		{ID: "s5", Type: Traction, Data: Data{Title: "Traction", Bullets: []string{}}},
		{ID: "s6", Type: Ask, Data: Data{Title: "Ask", Bullets: []string{}}},
	}
	return Deck{Slides: slides, CurrentSlideID: "s1"}
}

// FromAnswers decodes the slide list out of an answers map. Any malformed
// shape reads as an empty deck.
func FromAnswers(a template.Answers) Deck {
	raw, err := json.Marshal(map[string]any{
		"slides":         a["slides"],
		"currentSlideId": a["currentSlideId"],
		"logoUrl":        a["logoUrl"],
	})
	if err != nil {
		return Deck{}
	}
	var d Deck
	if err := json.Unmarshal(raw, &d); err != nil {
		return Deck{}
	}
	return d
}

// ToAnswers writes the deck back over a copy of the answers map.
func (d Deck) ToAnswers(a template.Answers) template.Answers {
	out := a.Clone()
	if out == nil {
		out = template.Answers{}
	}
	slides := make([]any, 0, len(d.Slides))
	for _, s := range d.Slides {
		slides = append(slides, map[string]any{
			"id":   s.ID,
			"type": string(s.Type),
			"data": map[string]any{
				"title":      s.Data.Title,
				"subtitle":   s.Data.Subtitle,
				"bullets":    append([]string(nil), s.Data.Bullets...),
				"footer":     s.Data.Footer,
				"imageUrl":   s.Data.ImageURL,
				"chartLines": s.Data.ChartLines,
			},
		})
	}
	out["slides"] = slides
	out["currentSlideId"] = d.CurrentSlideID
	if d.LogoURL != "" {
		out["logoUrl"] = d.LogoURL
	}
	return out
}

// Ensure returns the deck unchanged if it has slides, or the starter deck.
func (d Deck) Ensure() Deck {
	if len(d.Slides) > 0 {
		if d.CurrentSlideID == "" {
			d.CurrentSlideID = d.Slides[0].ID
		}
		return d
	}
	starter := Starter()
	starter.LogoURL = d.LogoURL
	return starter
}

// Current resolves the cursor: the referenced slide, falling back to the
// first slide when the reference is absent.
func (d Deck) Current() (Slide, bool) {
	if len(d.Slides) == 0 {
		return Slide{}, false
	}
	for _, s := range d.Slides {
		if s.ID == d.CurrentSlideID {
			return s, true
		}
	}
	return d.Slides[0], true
}

func (d Deck) index(id string) int {
	for i, s := range d.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (d Deck) cloneSlides() []Slide {
	out := make([]Slide, len(d.Slides))
	copy(out, d.Slides)
	return out
}

// Add inserts a new custom slide immediately after afterID (or at the end if
// the reference is empty or unknown) and makes it current.
func (d Deck) Add(afterID string) Deck {
	s := NewSlide(Custom)
	at := len(d.Slides)
	if idx := d.index(afterID); idx >= 0 {
		at = idx + 1
	}
	next := make([]Slide, 0, len(d.Slides)+1)
	next = append(next, d.Slides[:at]...)
	next = append(next, s)
	next = append(next, d.Slides[at:]...)
	return Deck{Slides: next, CurrentSlideID: s.ID, LogoURL: d.LogoURL}
}

// Remove drops a slide by id. Removing the last remaining slide is a no-op;
// removing the current slide moves the cursor to the new last slide.
func (d Deck) Remove(id string) Deck {
	if len(d.Slides) <= 1 {
		return d
	}
	idx := d.index(id)
	if idx < 0 {
		return d
	}
	next := make([]Slide, 0, len(d.Slides)-1)
	next = append(next, d.Slides[:idx]...)
	next = append(next, d.Slides[idx+1:]...)
	current := d.CurrentSlideID
	if current == id {
		current = next[len(next)-1].ID
	}
	return Deck{Slides: next, CurrentSlideID: current, LogoURL: d.LogoURL}
}

// Move swaps a slide with its neighbor; dir is -1 (up) or +1 (down). Moving
// past either end is a no-op.
func (d Deck) Move(id string, dir int) Deck {
	idx := d.index(id)
	j := idx + dir
	if idx < 0 || j < 0 || j >= len(d.Slides) {
		return d
	}
	next := d.cloneSlides()
	next[idx], next[j] = next[j], next[idx]
	return Deck{Slides: next, CurrentSlideID: d.CurrentSlideID, LogoURL: d.LogoURL}
}

// Select moves the cursor; unknown ids are ignored.
func (d Deck) Select(id string) Deck {
	if d.index(id) < 0 {
		return d
	}
	return Deck{Slides: d.Slides, CurrentSlideID: id, LogoURL: d.LogoURL}
}

// ApplyPatch merges a partial data update into one slide.
func (d Deck) ApplyPatch(id string, p Patch) Deck {
	idx := d.index(id)
	if idx < 0 {
		return d
	}
	next := d.cloneSlides()
	data := next[idx].Data
	if p.Title != nil {
		data.Title = *p.Title
	}
	if p.Subtitle != nil {
		data.Subtitle = *p.Subtitle
	}
	if p.Bullets != nil {
		data.Bullets = append([]string(nil), (*p.Bullets)...)
	}
	if p.Footer != nil {
		data.Footer = *p.Footer
	}
	if p.ImageURL != nil {
		data.ImageURL = *p.ImageURL
	}
	if p.ChartLines != nil {
		data.ChartLines = *p.ChartLines
	}
	next[idx].Data = data
	return Deck{Slides: next, CurrentSlideID: d.CurrentSlideID, LogoURL: d.LogoURL}
}

// Retype changes a slide's type tag without touching its data.
func (d Deck) Retype(id string, t Type) Deck {
	idx := d.index(id)
	if idx < 0 {
		return d
	}
	next := d.cloneSlides()
	next[idx].Type = t
	return Deck{Slides: next, CurrentSlideID: d.CurrentSlideID, LogoURL: d.LogoURL}
}

// SplitRawBullets splits textarea input into lines without dropping blanks,
// so the editor never fights the user's cursor mid-edit.
func SplitRawBullets(text string) []string {
	return strings.Split(text, "\n")
}

// CommitBullets re-normalizes one slide's bullets (trim, drop blanks) once
// the user leaves the raw editor.
func (d Deck) CommitBullets(id string) Deck {
	idx := d.index(id)
	if idx < 0 {
		return d
	}
	next := d.cloneSlides()
	next[idx].Data.Bullets = template.NormalizeBullets(next[idx].Data.Bullets)
	return Deck{Slides: next, CurrentSlideID: d.CurrentSlideID, LogoURL: d.LogoURL}
}
