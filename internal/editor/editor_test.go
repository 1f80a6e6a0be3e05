package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

// failingStore errors on every operation, standing in for a dead Redis.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("store down") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("store down") }

func newTestController() *Controller {
	return NewController(NewMemoryStore(), "test", nil)
}

func TestOpenUnknownArtifact(t *testing.T) {
	ctl := newTestController()
	if _, ok := ctl.Open(context.Background(), artifact.ID("bogus")); ok {
		t.Fatal("unknown artifact must report ok=false")
	}
}

func TestOpenDefaults(t *testing.T) {
	ctl := newTestController()
	st, ok := ctl.Open(context.Background(), artifact.StatusCard)
	if !ok {
		t.Fatal("open failed")
	}
	if st.Step != StepLayout {
		t.Fatalf("fresh editor should start at the layout step, got %d", st.Step)
	}
	if st.Layout == "" {
		t.Fatal("fresh editor should carry the default layout")
	}
	if st.HTML == "" {
		t.Fatal("open should derive preview HTML")
	}
}

func TestDraftRoundTripAcrossControllers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	ctl := NewController(store, "test", nil)

	if _, ok := ctl.SetLayout(ctx, artifact.StatusCard, "status_b"); !ok {
		t.Fatal("set layout failed")
	}
	ctl.SetAnswers(ctx, artifact.StatusCard, template.Answers{"title": "Week 5"})
	ctl.SetTheme(ctx, artifact.StatusCard, template.Theme{Accent: "#2563eb"})

	// A new controller over the same store sees the same editing session.
	again := NewController(store, "test", nil)
	st, ok := again.Open(ctx, artifact.StatusCard)
	if !ok {
		t.Fatal("reopen failed")
	}
	if st.Layout != "status_b" {
		t.Fatalf("layout lost: %q", st.Layout)
	}
	if st.Answers.Text("title") != "Week 5" {
		t.Fatalf("answers lost: %+v", st.Answers)
	}
	if st.Theme.Accent != "#2563eb" {
		t.Fatalf("theme lost: %+v", st.Theme)
	}
	if !strings.Contains(st.HTML, "Week 5") {
		t.Fatal("preview should reflect the draft answers")
	}
}

func TestSetLayoutUnknownIgnored(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()
	before, _ := ctl.Open(ctx, artifact.StatusCard)
	after, _ := ctl.SetLayout(ctx, artifact.StatusCard, "bogus_layout")
	if after.Layout != before.Layout {
		t.Fatalf("unknown layout should be ignored, got %q", after.Layout)
	}
}

func TestSetAnswersNilDeletesKey(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()
	ctl.SetAnswers(ctx, artifact.StatusCard, template.Answers{"title": "Week 5"})
	st, _ := ctl.SetAnswers(ctx, artifact.StatusCard, template.Answers{"title": nil})
	if _, present := st.Answers["title"]; present {
		t.Fatal("nil patch value should delete the key")
	}
}

func TestStepGating(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()

	st, _ := ctl.Open(ctx, artifact.StatusCard)
	if st.Step != StepLayout {
		t.Fatalf("start step: %d", st.Step)
	}

	st, _ = ctl.Next(ctx, artifact.StatusCard)
	if st.Step != StepFill {
		t.Fatalf("next should reach the fill step, got %d", st.Step)
	}
	st, _ = ctl.Next(ctx, artifact.StatusCard)
	if st.Step != StepShare {
		t.Fatalf("next should reach the share step, got %d", st.Step)
	}
	st, _ = ctl.Next(ctx, artifact.StatusCard)
	if st.Step != StepShare {
		t.Fatalf("next past the last step must clamp, got %d", st.Step)
	}

	st, _ = ctl.Prev(ctx, artifact.StatusCard)
	st, _ = ctl.Prev(ctx, artifact.StatusCard)
	st, _ = ctl.Prev(ctx, artifact.StatusCard)
	if st.Step != StepLayout {
		t.Fatalf("prev must stop at the layout step, got %d", st.Step)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()
	ctl.SetLayout(ctx, artifact.StatusCard, "status_b")
	ctl.SetAnswers(ctx, artifact.StatusCard, template.Answers{"title": "Week 5"})

	st, ok := ctl.Reset(ctx, artifact.StatusCard)
	if !ok {
		t.Fatal("reset failed")
	}
	if st.Answers.Text("title") != "" {
		t.Fatal("reset should drop answers")
	}
	if st.Step != StepLayout {
		t.Fatalf("reset should return to the layout step, got %d", st.Step)
	}
}

func TestFailingStoreNeverBlocksEditing(t *testing.T) {
	ctx := context.Background()
	ctl := NewController(failingStore{}, "test", nil)

	st, ok := ctl.SetAnswers(ctx, artifact.StatusCard, template.Answers{"title": "Week 5"})
	if !ok {
		t.Fatal("editing must continue when the store is down")
	}
	if st.Answers.Text("title") != "Week 5" {
		t.Fatalf("in-flight state lost: %+v", st.Answers)
	}
	if st.HTML == "" {
		t.Fatal("preview should still render")
	}
}

func TestPitchDeckSeedsStarterSlides(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()
	st, ok := ctl.Open(ctx, artifact.PitchDeck)
	if !ok {
		t.Fatal("open failed")
	}
	slides, isList := st.Answers["slides"].([]any)
	if !isList || len(slides) != 6 {
		t.Fatalf("fresh pitch deck should seed 6 starter slides, got %T len %d", st.Answers["slides"], len(slides))
	}
}

func TestDeckOpsThroughController(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()
	ctl.Open(ctx, artifact.PitchDeck)

	st, ok := ctl.AddSlide(ctx, "s2")
	if !ok {
		t.Fatal("add slide failed")
	}
	slides := st.Answers["slides"].([]any)
	if len(slides) != 7 {
		t.Fatalf("expected 7 slides, got %d", len(slides))
	}

	st, _ = ctl.RemoveSlide(ctx, "s2")
	slides = st.Answers["slides"].([]any)
	if len(slides) != 6 {
		t.Fatalf("expected 6 slides after removal, got %d", len(slides))
	}

	st, _ = ctl.SetLogo(ctx, "https://example.com/logo.png")
	if st.Answers.Text("logoUrl") != "https://example.com/logo.png" {
		t.Fatalf("logo not applied: %+v", st.Answers["logoUrl"])
	}
}

func TestPanelFlags(t *testing.T) {
	ctx := context.Background()
	ctl := newTestController()

	if !ctl.PanelOpen(ctx, artifact.StatusCard, "theme", true) {
		t.Fatal("missing flag should report the default")
	}
	ctl.SetPanelOpen(ctx, artifact.StatusCard, "theme", false)
	if ctl.PanelOpen(ctx, artifact.StatusCard, "theme", true) {
		t.Fatal("persisted flag should win over the default")
	}
	ctl.SetPanelOpen(ctx, artifact.StatusCard, "theme", true)
	if !ctl.PanelOpen(ctx, artifact.StatusCard, "theme", false) {
		t.Fatal("persisted open flag should read back true")
	}
}
