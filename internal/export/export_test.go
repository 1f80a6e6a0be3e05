package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"typecraft/internal/deck"
	"typecraft/internal/template"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	out := map[string]string{}
	for _, f := range zr.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(b)
	}
	return out
}

func TestPitchDeckPPTXStructure(t *testing.T) {
	d := deck.Starter()
	data, err := PitchDeckPPTX(d, template.Theme{Accent: "#2563eb"}, "deck_a")
	if err != nil {
		t.Fatalf("build pptx: %v", err)
	}

	parts := readZip(t, data)
	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"docProps/core.xml",
		"docProps/app.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	for i := 1; i <= len(d.Slides); i++ {
		name := "ppt/slides/slide" + string(rune('0'+i)) + ".xml"
		if _, ok := parts[name]; !ok {
			t.Errorf("missing slide part %s", name)
		}
	}

	if !strings.Contains(parts["ppt/presentation.xml"], `cx="12192000"`) {
		t.Error("presentation should declare widescreen slide size")
	}
	if !strings.Contains(parts["ppt/slides/slide1.xml"], "Company name") {
		t.Error("title slide should carry the starter title")
	}
	if !strings.Contains(parts["ppt/slides/slide1.xml"], `val="2563EB"`) {
		t.Error("bold layout should paint the accent bar with the theme accent")
	}
}

func TestPitchDeckPPTXEscapesText(t *testing.T) {
	d := deck.Starter()
	title := `<Launch> & "win"`
	d = d.ApplyPatch("s1", deck.Patch{Title: &title})

	data, err := PitchDeckPPTX(d, template.Theme{}, "deck_b")
	if err != nil {
		t.Fatalf("build pptx: %v", err)
	}
	parts := readZip(t, data)
	slide := parts["ppt/slides/slide1.xml"]
	if strings.Contains(slide, "<Launch>") {
		t.Error("slide text must be XML-escaped")
	}
	if !strings.Contains(slide, "&lt;Launch&gt; &amp; &quot;win&quot;") {
		t.Errorf("escaped title not found in slide:\n%s", slide)
	}
}

func TestPitchDeckPPTXDarkLayout(t *testing.T) {
	data, err := PitchDeckPPTX(deck.Starter(), template.Theme{}, "deck_d")
	if err != nil {
		t.Fatalf("build pptx: %v", err)
	}
	parts := readZip(t, data)
	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, `val="0B0C10"`) {
		t.Error("dark layout should use the dark background")
	}
	if !strings.Contains(slide, `val="F4F4F5"`) {
		t.Error("dark layout should use the light title color")
	}
	if strings.Contains(slide, `name="Accent bar"`) {
		t.Error("deck_d should not paint the accent bar")
	}
}

func TestPitchDeckPPTXEmptyDeck(t *testing.T) {
	if _, err := PitchDeckPPTX(deck.Deck{}, template.Theme{}, "deck_a"); err == nil {
		t.Fatal("empty deck must error")
	}
}

func TestSlidesZIPNaming(t *testing.T) {
	images := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	data, err := SlidesZIP(images)
	if err != nil {
		t.Fatalf("build zip: %v", err)
	}
	parts := readZip(t, data)
	want := []string{"slide-01.png", "slide-02.png", "slide-03.png"}
	if len(parts) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(parts))
	}
	for i, name := range want {
		if parts[name] != string(images[i]) {
			t.Errorf("entry %s: got %q", name, parts[name])
		}
	}
}

func TestDocFromHTML(t *testing.T) {
	doc := string(DocFromHTML("<div>body</div>"))
	if !strings.Contains(doc, "<div>body</div>") {
		t.Error("rendered HTML missing from doc envelope")
	}
	if !strings.Contains(doc, `<meta charset="utf-8" />`) {
		t.Error("doc envelope should declare utf-8")
	}
}
