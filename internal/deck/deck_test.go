package deck

import (
	"testing"

	"typecraft/internal/template"
)

func TestStarterDeck(t *testing.T) {
	d := Starter()
	if len(d.Slides) != 6 {
		t.Fatalf("starter should have 6 slides, got %d", len(d.Slides))
	}
	if d.CurrentSlideID != "s1" {
		t.Fatalf("starter cursor should be s1, got %q", d.CurrentSlideID)
	}
	if d.Slides[0].Type != Title || d.Slides[5].Type != Ask {
		t.Fatalf("unexpected starter types: %v ... %v", d.Slides[0].Type, d.Slides[5].Type)
	}
}

func TestAddInsertsAfterAndSelects(t *testing.T) {
	d := Starter()
	next := d.Add("s2")
	if len(next.Slides) != 7 {
		t.Fatalf("expected 7 slides, got %d", len(next.Slides))
	}
	if next.Slides[2].ID != next.CurrentSlideID {
		t.Fatal("new slide should be inserted after s2 and selected")
	}
	if next.Slides[2].Type != Custom {
		t.Fatalf("new slide should be custom, got %v", next.Slides[2].Type)
	}
	// Unknown reference appends at the end.
	tail := d.Add("nope")
	if tail.Slides[len(tail.Slides)-1].ID != tail.CurrentSlideID {
		t.Fatal("unknown afterID should append at the end")
	}
}

func TestRemoveLastSlideIsNoop(t *testing.T) {
	d := Deck{Slides: []Slide{NewSlide(Title)}, CurrentSlideID: ""}
	d.CurrentSlideID = d.Slides[0].ID
	next := d.Remove(d.Slides[0].ID)
	if len(next.Slides) != 1 {
		t.Fatal("removing the only slide must be a no-op")
	}
}

func TestRemoveCurrentMovesCursorToLast(t *testing.T) {
	d := Starter().Select("s3")
	next := d.Remove("s3")
	if len(next.Slides) != 5 {
		t.Fatalf("expected 5 slides, got %d", len(next.Slides))
	}
	if next.CurrentSlideID != "s6" {
		t.Fatalf("cursor should move to the new last slide, got %q", next.CurrentSlideID)
	}
}

func TestRemoveOtherKeepsCursor(t *testing.T) {
	d := Starter().Select("s2")
	next := d.Remove("s5")
	if next.CurrentSlideID != "s2" {
		t.Fatalf("cursor should stay on s2, got %q", next.CurrentSlideID)
	}
}

func TestMoveBoundaries(t *testing.T) {
	d := Starter()
	if got := d.Move("s1", -1); got.Slides[0].ID != "s1" {
		t.Fatal("moving the first slide up must be a no-op")
	}
	if got := d.Move("s6", 1); got.Slides[5].ID != "s6" {
		t.Fatal("moving the last slide down must be a no-op")
	}
	swapped := d.Move("s2", 1)
	if swapped.Slides[1].ID != "s3" || swapped.Slides[2].ID != "s2" {
		t.Fatalf("s2 should swap with s3, got %v %v", swapped.Slides[1].ID, swapped.Slides[2].ID)
	}
}

func TestSelectUnknownIgnored(t *testing.T) {
	d := Starter()
	if got := d.Select("missing"); got.CurrentSlideID != "s1" {
		t.Fatalf("unknown select should be ignored, got %q", got.CurrentSlideID)
	}
}

func TestApplyPatchIsCopyOnWrite(t *testing.T) {
	d := Starter()
	title := "New title"
	next := d.ApplyPatch("s2", Patch{Title: &title})
	if next.Slides[1].Data.Title != "New title" {
		t.Fatalf("patch not applied: %+v", next.Slides[1].Data)
	}
	if d.Slides[1].Data.Title == "New title" {
		t.Fatal("patch mutated the original deck")
	}
}

func TestRawBulletsPreservedUntilCommit(t *testing.T) {
	d := Starter()
	raw := SplitRawBullets("a\nb\n\nc")
	if len(raw) != 4 {
		t.Fatalf("raw split must keep blank lines, got %d", len(raw))
	}
	d = d.ApplyPatch("s2", Patch{Bullets: &raw})
	if got := d.Slides[1].Data.Bullets; len(got) != 4 {
		t.Fatalf("blanks must survive until commit, got %v", got)
	}
	d = d.CommitBullets("s2")
	if got := d.Slides[1].Data.Bullets; len(got) != 3 {
		t.Fatalf("commit should drop blanks, got %v", got)
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	d := Starter()
	title := "Problem worth solving"
	d = d.ApplyPatch("s2", Patch{Title: &title}).Select("s2")
	d.LogoURL = "https://example.com/logo.png"

	a := d.ToAnswers(template.Answers{"unrelated": "kept"})
	if a.Text("unrelated") != "kept" {
		t.Fatal("unrelated answer keys must survive")
	}

	got := FromAnswers(a)
	if len(got.Slides) != 6 {
		t.Fatalf("expected 6 slides after round trip, got %d", len(got.Slides))
	}
	if got.CurrentSlideID != "s2" {
		t.Fatalf("cursor lost: %q", got.CurrentSlideID)
	}
	if got.Slides[1].Data.Title != title {
		t.Fatalf("slide data lost: %+v", got.Slides[1].Data)
	}
	if got.LogoURL != d.LogoURL {
		t.Fatalf("logo lost: %q", got.LogoURL)
	}
}

func TestFromAnswersMalformed(t *testing.T) {
	got := FromAnswers(template.Answers{"slides": "not a list"})
	if len(got.Slides) != 0 {
		t.Fatalf("malformed slides should read as empty deck, got %d", len(got.Slides))
	}
}

func TestEnsure(t *testing.T) {
	seeded := Deck{}.Ensure()
	if len(seeded.Slides) != 6 {
		t.Fatalf("empty deck should seed starter slides, got %d", len(seeded.Slides))
	}

	d := Deck{Slides: []Slide{NewSlide(Title)}}
	got := d.Ensure()
	if len(got.Slides) != 1 {
		t.Fatal("non-empty deck must pass through Ensure")
	}
	if got.CurrentSlideID != got.Slides[0].ID {
		t.Fatal("Ensure should repair a missing cursor")
	}
}
