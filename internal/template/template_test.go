package template

import (
	"testing"

	"typecraft/internal/artifact"
)

func TestRegistryCoversEveryArtifact(t *testing.T) {
	for _, def := range artifact.All {
		tpl, ok := Get(def.ID)
		if !ok {
			t.Fatalf("no template registered for %s", def.ID)
		}
		if tpl.Artifact != def.ID {
			t.Errorf("%s: template artifact mismatch: %s", def.ID, tpl.Artifact)
		}
	}
	if got := len(All()); got != len(artifact.All) {
		t.Fatalf("All() returned %d templates, want %d", got, len(artifact.All))
	}
}

func TestTemplateIntegrity(t *testing.T) {
	for _, tpl := range All() {
		t.Run(tpl.Artifact.String(), func(t *testing.T) {
			if len(tpl.Layouts) > 0 {
				if tpl.DefaultLayoutID == "" {
					t.Error("default layout id is empty")
				} else if !tpl.HasLayout(tpl.DefaultLayoutID) {
					t.Errorf("default layout %q not among layouts", tpl.DefaultLayoutID)
				}
			}
			if tpl.DefaultTheme.Accent == "" {
				t.Error("default theme has no accent")
			}

			seen := map[string]bool{}
			for _, b := range tpl.Blocks {
				if b.Kind == KindDivider {
					continue
				}
				if b.ID == "" {
					t.Errorf("block %q has no id", b.Label)
					continue
				}
				if seen[b.ID] {
					t.Errorf("duplicate block id %q", b.ID)
				}
				seen[b.ID] = true
			}

			layoutIDs := map[string]bool{}
			for _, l := range tpl.Layouts {
				if layoutIDs[l.ID] {
					t.Errorf("duplicate layout id %q", l.ID)
				}
				layoutIDs[l.ID] = true
			}
		})
	}
}

func TestThemeMerge(t *testing.T) {
	base := lightTheme("#6366f1")
	got := base.Merge(Theme{Accent: "#2563eb", Background: "#0b0c10"})
	if got.Accent != "#2563eb" || got.Background != "#0b0c10" {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.Text != base.Text || got.Border != base.Border {
		t.Fatalf("unset fields must keep base values: %+v", got)
	}

	if got := base.Merge(Theme{}); got != base {
		t.Fatalf("empty merge must be identity: %+v", got)
	}
}

func TestAnswersCoercion(t *testing.T) {
	a := Answers{
		"title":   "Q3",
		"num":     42.0,
		"flag":    true,
		"bullets": "one\n\n two \nthree",
		"list":    []any{"a", nil, "b"},
		"stat":    map[string]any{"label": "Users", "value": "120"},
	}

	if got := a.Text("title"); got != "Q3" {
		t.Errorf("Text: %q", got)
	}
	if got := a.Text("num"); got != "42" {
		t.Errorf("number should stringify: %q", got)
	}
	if got := a.Text("missing"); got != "" {
		t.Errorf("missing key: %q", got)
	}

	if got := a.Bullets("bullets"); len(got) != 3 || got[1] != "two" {
		t.Errorf("Bullets from text: %v", got)
	}
	if got := a.Bullets("list"); len(got) != 2 {
		t.Errorf("Bullets from list: %v", got)
	}

	label, value := a.Stat("stat")
	if label != "Users" || value != "120" {
		t.Errorf("Stat: %q %q", label, value)
	}
	if label, value := a.Stat("title"); label != "" || value != "" {
		t.Errorf("Stat on non-map: %q %q", label, value)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := Answers{"k": "v"}
	b := a.Clone()
	b["k"] = "changed"
	if a.Text("k") != "v" {
		t.Fatal("clone aliased the original map")
	}
}
