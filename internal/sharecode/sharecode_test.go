package sharecode

import (
	"errors"
	"strings"
	"testing"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := Payload{
		Artifact:     artifact.StatusCard,
		Layout:       "status_b",
		Theme:        template.Theme{Accent: "#2563eb"},
		Answers:      template.Answers{"project": "Rollout", "title": "Week 5"},
		RenderedHTML: "<div>hello</div>",
		IsPublic:     true,
		CreatedAt:    "2026-08-28T00:00:00Z",
	}

	code, err := Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.ContainsAny(code, "+/=") {
		t.Fatalf("share code must be URL-safe without padding, got %q", code)
	}

	got, err := Decode(code)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.V != 1 {
		t.Errorf("version should default to 1, got %d", got.V)
	}
	if got.Artifact != p.Artifact || got.Layout != p.Layout || got.RenderedHTML != p.RenderedHTML {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.IsPublic {
		t.Error("is_public lost in round trip")
	}
	if got.Answers.Text("project") != "Rollout" {
		t.Errorf("answers lost: %+v", got.Answers)
	}
}

func TestDecodeToleratesPadding(t *testing.T) {
	code, err := Encode(Payload{Artifact: artifact.StatusCard, RenderedHTML: "<div/>"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	padded := code
	for len(padded)%4 != 0 {
		padded += "="
	}
	if _, err := Decode(padded); err != nil {
		t.Fatalf("decode padded: %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"not base64":      "!!!not-base64!!!",
		"not json":        "bm90LWpzb24",      // "not-json"
		"json non-object": "WyJhcnJheSJd",     // ["array"]
		"no html":         "eyJ2IjoxfQ",       // {"v":1}
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(input); !errors.Is(err, ErrMalformed) {
				t.Fatalf("want ErrMalformed, got %v", err)
			}
		})
	}
}
