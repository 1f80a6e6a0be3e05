package template

import (
	"fmt"
	"strings"
)

// Answers holds the user-entered content for one document, keyed by block id.
// Values arrive from JSON, so shapes are coerced leniently at read time; a
// missing or oddly-shaped value reads as empty rather than failing a render.
// For the pitch deck the map instead carries the slide list (see the deck
// package).
type Answers map[string]any

// Text reads a string value. Numbers and booleans are stringified; nil and
// missing keys read as "".
func (a Answers) Text(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// Bullets reads a bullet-list value: either an ordered list of strings or
// newline-delimited text. The result is trimmed, with blank lines dropped.
func (a Answers) Bullets(key string) []string {
	v, ok := a[key]
	if !ok || v == nil {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return NormalizeBullets(items)
	case []any:
		lines := make([]string, 0, len(items))
		for _, item := range items {
			if item == nil {
				continue
			}
			lines = append(lines, fmt.Sprint(item))
		}
		return NormalizeBullets(lines)
	case string:
		return NormalizeBullets(strings.Split(items, "\n"))
	default:
		return nil
	}
}

// Stat reads a {label, value} pair stored under key.
func (a Answers) Stat(key string) (label, value string) {
	v, ok := a[key]
	if !ok {
		return "", ""
	}
	m, ok := v.(map[string]any)
	if !ok {
		return "", ""
	}
	label, _ = m["label"].(string)
	value, _ = m["value"].(string)
	return label, value
}

// Clone returns a shallow copy so mutations never alias a caller's map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// NormalizeBullets trims every line and drops the blank ones.
func NormalizeBullets(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
