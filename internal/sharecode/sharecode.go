// Package sharecode implements the URL-embedded share format: a JSON payload
// carried as base64url in the `d` query parameter, so a document can be viewed
// without a database row.
package sharecode

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"typecraft/internal/artifact"
	"typecraft/internal/template"
)

// ErrMalformed marks data that is not a valid share payload. Handlers map it
// to 404 so share URLs never leak decode internals.
var ErrMalformed = errors.New("sharecode: malformed payload")

// Payload is the self-contained snapshot embedded in a share URL. RenderedHTML
// is what viewers display; the answers/theme travel along so the document can
// be re-rendered or remixed later.
type Payload struct {
	V            int              `json:"v"`
	Artifact     artifact.ID      `json:"type"`
	Layout       string           `json:"layout"`
	Theme        template.Theme   `json:"theme"`
	Answers      template.Answers `json:"answers"`
	RenderedHTML string           `json:"rendered_html"`
	IsPublic     bool             `json:"is_public"`
	CreatedAt    string           `json:"created_at,omitempty"`
}

// Encode serializes the payload as unpadded base64url.
func Encode(p Payload) (string, error) {
	if p.V == 0 {
		p.V = 1
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a share parameter. Every failure mode, bad base64, bad JSON,
// or a payload with no rendered document, reads as ErrMalformed.
func Decode(data string) (Payload, error) {
	if data == "" {
		return Payload{}, ErrMalformed
	}
	// Tolerate padded input from hand-built URLs.
	for len(data)%4 != 0 {
		data += "="
	}
	raw, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.RenderedHTML == "" {
		return Payload{}, ErrMalformed
	}
	return p, nil
}
