package artifact

// ID identifies one of the fixed document kinds the studio can produce.
type ID string

const (
	PitchDeck        ID = "pitch_deck"
	OnePageReport    ID = "one_page_report"
	ConceptNote      ID = "concept_note"
	ExecutiveSummary ID = "executive_summary"
	StatusCard       ID = "status_card"
	Application      ID = "application"
	ProjectReport    ID = "project_report"
	Screenshot       ID = "screenshot"
	Collage          ID = "collage"
	Surprise         ID = "surprise"
)

// Def 描述工件在选择面板中的展示信息。
type Def struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
	Size  string `json:"size"` // sm / md / lg，控制面板中磁贴大小
}

// All lists every artifact in panel order.
var All = []Def{
	{ID: PitchDeck, Label: "Pitch deck", Desc: "Slides that look like a fundraise.", Size: "lg"},
	{ID: OnePageReport, Label: "One-page report", Desc: "Tight, structured, printable.", Size: "md"},
	{ID: ConceptNote, Label: "Concept note", Desc: "Idea → scope → plan.", Size: "md"},
	{ID: ExecutiveSummary, Label: "Executive summary", Desc: "Executive-friendly briefing.", Size: "sm"},
	{ID: StatusCard, Label: "Status card", Desc: "Update card for Slack/Email.", Size: "sm"},
	{ID: Application, Label: "Application", Desc: "Clean, confident, skimmable.", Size: "sm"},
	{ID: ProjectReport, Label: "Project report", Desc: "Outcome + timeline + next.", Size: "md"},
	{ID: Screenshot, Label: "Screenshot", Desc: "Frame it like a product shot.", Size: "sm"},
	{ID: Collage, Label: "Collage", Desc: "Aesthetic grid composition.", Size: "sm"},
	{ID: Surprise, Label: "Surprise me", Desc: "Pick for me. Make it pop.", Size: "sm"},
}

// Parse maps a raw query value onto a known artifact id.
// The empty string and unknown values report ok=false; callers degrade to an
// empty state rather than failing.
func Parse(raw string) (ID, bool) {
	id := ID(raw)
	for _, def := range All {
		if def.ID == id {
			return id, true
		}
	}
	return "", false
}

func (id ID) String() string { return string(id) }
