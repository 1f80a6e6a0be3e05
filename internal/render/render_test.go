package render

import (
	"strings"
	"testing"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

func TestRenderEscapesUserText(t *testing.T) {
	hostile := `<script>alert("x")</script>`
	answers := template.Answers{
		"title":      hostile,
		"summary":    hostile,
		"highlights": hostile,
		"risks":      hostile,
		"next_steps": hostile,
		"project":    hostile,
		"problem":    hostile,
		"status":     hostile,
		"update":     hostile,
		"metric":     hostile,
		"full_name":  hostile,
		"role":       hostile,
		"goals":      hostile,
	}

	for _, def := range artifact.All {
		tpl, ok := template.Get(def.ID)
		if !ok {
			t.Fatalf("missing template for %s", def.ID)
		}
		for _, layout := range tpl.Layouts {
			html := Render(def.ID, answers, tpl.DefaultTheme, layout.ID)
			if strings.Contains(html, "<script>") {
				t.Errorf("%s/%s: unescaped script tag in output", def.ID, layout.ID)
			}
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	answers := template.Answers{
		"title":   "Q3 update",
		"summary": "Shipped the thing.",
		"stats":   map[string]any{"Users": 120.0, "Revenue": 3000.0, "NPS": 61.0},
	}
	tpl, _ := template.Get(artifact.OnePageReport)

	first := Render(artifact.OnePageReport, answers, tpl.DefaultTheme, "report_a")
	for i := 0; i < 5; i++ {
		if got := Render(artifact.OnePageReport, answers, tpl.DefaultTheme, "report_a"); got != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestRenderEmptyAnswersShowsFillPrompt(t *testing.T) {
	tpl, _ := template.Get(artifact.OnePageReport)
	html := Render(artifact.OnePageReport, template.Answers{}, tpl.DefaultTheme, "report_a")
	if !strings.Contains(html, fillPrompt) {
		t.Fatalf("empty report should contain the fill prompt, got:\n%s", html)
	}
}

func TestRenderUnknownLayoutFallsBack(t *testing.T) {
	tpl, _ := template.Get(artifact.StatusCard)
	answers := template.Answers{"project": "Rollout", "status": "on track"}

	def := Render(artifact.StatusCard, answers, tpl.DefaultTheme, "status_c")
	unknown := Render(artifact.StatusCard, answers, tpl.DefaultTheme, "does_not_exist")
	if def != unknown {
		t.Fatal("unknown layout should render like the default layout")
	}
}

func TestRenderNilAnswers(t *testing.T) {
	for _, def := range artifact.All {
		tpl, _ := template.Get(def.ID)
		html := Render(def.ID, nil, tpl.DefaultTheme, tpl.DefaultLayoutID)
		if html == "" {
			t.Errorf("%s: nil answers produced empty output", def.ID)
		}
	}
}

func TestWatermarkToggle(t *testing.T) {
	tpl, _ := template.Get(artifact.StatusCard)
	answers := template.Answers{"project": "Rollout"}

	with := WithOptions(artifact.StatusCard, answers, tpl.DefaultTheme, "status_a", Options{Watermark: true})
	if !strings.Contains(with, DefaultBrand) {
		t.Fatal("watermarked render should carry the default brand")
	}

	custom := WithOptions(artifact.StatusCard, answers, tpl.DefaultTheme, "status_a", Options{Watermark: true, Brand: "Acme Studio"})
	if !strings.Contains(custom, "Acme Studio") {
		t.Fatal("brand override not applied")
	}
}

func TestParseStats(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []stat
	}{
		{
			name: "newline text",
			raw:  "Revenue: 3000\nUsers: 120",
			want: []stat{{K: "Revenue", V: "3000"}, {K: "Users", V: "120"}},
		},
		{
			name: "line without colon keeps label only",
			raw:  "Growing fast",
			want: []stat{{K: "Growing fast"}},
		},
		{
			name: "object array",
			raw: []any{
				map[string]any{"k": "MRR", "v": "12k"},
				map[string]any{"label": "Churn", "value": "2%"},
			},
			want: []stat{{K: "MRR", V: "12k"}, {K: "Churn", V: "2%"}},
		},
		{
			name: "map sorts keys",
			raw:  map[string]any{"Users": 120.0, "Revenue": 3000.0},
			want: []stat{{K: "Revenue", V: "3000"}, {K: "Users", V: "120"}},
		},
		{
			name: "string array",
			raw:  []any{"Revenue: 3000", "Users: 120"},
			want: []stat{{K: "Revenue", V: "3000"}, {K: "Users", V: "120"}},
		},
		{
			name: "nil",
			raw:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStats(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d stats, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("stat %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseStatsCap(t *testing.T) {
	raw := "a:1\nb:2\nc:3\nd:4\ne:5\nf:6\ng:7\nh:8"
	if got := parseStats(raw); len(got) != 6 {
		t.Fatalf("expected cap at 6 entries, got %d", len(got))
	}
}

func TestParseChartLinesDropsMalformed(t *testing.T) {
	raw := "Q1: 10\nnot a pair\nQ2: twelve\n: 5\nQ3: 30.5"
	got := parseChartLines(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 valid pairs, got %d: %+v", len(got), got)
	}
	if got[0].Label != "Q1" || got[0].Val != 10 {
		t.Errorf("first pair: %+v", got[0])
	}
	if got[1].Label != "Q3" || got[1].Val != 30.5 {
		t.Errorf("second pair: %+v", got[1])
	}
}

func TestParseChartLinesUsesLastColon(t *testing.T) {
	got := parseChartLines("Revenue (USD: M): 42")
	if len(got) != 1 || got[0].Label != "Revenue (USD: M)" || got[0].Val != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestResolvePalette(t *testing.T) {
	p := resolve(template.Theme{}, "#6366f1")
	if p.Accent != "#6366f1" || p.Bg != "#ffffff" {
		t.Fatalf("empty theme should use fallbacks, got %+v", p)
	}

	p = resolve(template.Theme{Accent: "#10b981", Background: "#0b0c10"}, "#6366f1")
	if p.Accent != "#10b981" || p.Bg != "#0b0c10" {
		t.Fatalf("set fields should override, got %+v", p)
	}
	if p.Text != "#0a0a0a" {
		t.Fatalf("unset fields should keep defaults, got %+v", p)
	}
}
