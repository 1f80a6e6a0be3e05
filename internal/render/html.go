// Package render maps (answers, theme, layout) onto self-contained HTML.
// Every renderer is a total, pure function: blank answers produce a coherent
// skeleton document, unknown layouts fall through to the default branch, and
// all user-supplied text is escaped before interpolation.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"typecraft/internal/template"
)

const fontStack = "ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial"

const fillPrompt = "Start filling the form on the left."

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// esc HTML-escapes user-supplied text. This is the one correctness-sensitive
// contract in the render layer and must cover every interpolated field.
func esc(s string) string {
	return escaper.Replace(s)
}

// palette holds fully-resolved theme tokens; unset theme fields fall back to
// the renderer's defaults here, not to the template's.
type palette struct {
	Accent string
	Bg     string
	Text   string
	Muted  string
	Card   string
	Border string
}

func resolve(th template.Theme, fallbackAccent string) palette {
	p := palette{
		Accent: fallbackAccent,
		Bg:     "#ffffff",
		Text:   "#0a0a0a",
		Muted:  "#52525b",
		Card:   "#ffffff",
		Border: "rgba(0,0,0,0.10)",
	}
	if th.Accent != "" {
		p.Accent = th.Accent
	}
	if th.Background != "" {
		p.Bg = th.Background
	}
	if th.Text != "" {
		p.Text = th.Text
	}
	if th.MutedText != "" {
		p.Muted = th.MutedText
	}
	if th.Card != "" {
		p.Card = th.Card
	}
	if th.Border != "" {
		p.Border = th.Border
	}
	return p
}

// watermark renders the corner brand tag stamped on free documents.
func watermark(brand string) string {
	return fmt.Sprintf(`<div style="position:absolute; top:16px; right:16px; font-size:11px; letter-spacing:0.10em; text-transform:uppercase; opacity:0.55; font-weight:800;">%s</div>`, esc(brand))
}

// sectionLabel is the small uppercase heading used above every panel.
func sectionLabel(text string) string {
	return fmt.Sprintf(`<div style="font-size:12px; font-weight:900; letter-spacing:0.10em; text-transform:uppercase;">%s</div>`, esc(text))
}

// bulletList renders normalized bullets, or a muted em-dash when empty.
func bulletList(items []string, muted string) string {
	if muted == "" {
		muted = "#71717a"
	}
	if len(items) == 0 {
		return fmt.Sprintf(`<div style="color:%s;font-size:13px;">—</div>`, muted)
	}
	var b strings.Builder
	b.WriteString(`<ul style="margin:10px 0 0 18px; padding:0; line-height:1.55;">`)
	for _, item := range items {
		b.WriteString(`<li style="margin:6px 0;">`)
		b.WriteString(esc(item))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// bulletPanel is a bordered card with a section label and a bullet list.
func bulletPanel(label string, items []string, muted string) string {
	return fmt.Sprintf(`<div style="border:1px solid rgba(0,0,0,0.10); border-radius:18px; padding:16px;">%s%s</div>`,
		sectionLabel(label), bulletList(items, muted))
}

// stat is one {label, value} pair rendered by the stat tiles.
type stat struct {
	K string
	V string
}

// parseStats accepts the shapes users have historically pasted in:
//  1. "Revenue: 3000\nUsers: 120"
//  2. [{k/key/label: ..., v/value/val: ...}, ...]
//  3. {"Revenue": 3000, "Users": 120}
//  4. ["Revenue: 3000", "Users: 120"]
//
// capped at 6 entries, never failing.
func parseStats(raw any) []stat {
	if raw == nil {
		return nil
	}

	splitLine := func(line string) (stat, bool) {
		line = strings.TrimSpace(line)
		if line == "" {
			return stat{}, false
		}
		idx := strings.Index(line, ":")
		if idx == -1 {
			return stat{K: line}, true
		}
		return stat{
			K: strings.TrimSpace(line[:idx]),
			V: strings.TrimSpace(line[idx+1:]),
		}, true
	}

	var out []stat
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				if s, ok := splitLine(entry); ok {
					out = append(out, s)
				}
			case map[string]any:
				k := firstString(entry, "k", "key", "label")
				val := firstString(entry, "v", "value", "val")
				if k != "" {
					out = append(out, stat{K: k, V: val})
				}
			}
		}
	case map[string]any:
		// Sorted for deterministic output; JSON objects carry no order.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := strings.TrimSpace(k)
			if key == "" {
				continue
			}
			out = append(out, stat{K: key, V: strings.TrimSpace(anyString(v[k]))})
		}
	case string:
		for _, line := range strings.Split(v, "\n") {
			if s, ok := splitLine(line); ok {
				out = append(out, s)
			}
		}
	}

	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s := strings.TrimSpace(anyString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func anyString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// chartPair is one parsed "Label: 42" line.
type chartPair struct {
	Label string
	Val   float64
}

// parseChartLines drops malformed lines instead of failing the render.
func parseChartLines(raw string) []chartPair {
	var out []chartPair
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ":")
		if idx == -1 {
			continue
		}
		label := strings.TrimSpace(line[:idx])
		val, err := strconv.ParseFloat(strings.TrimSpace(line[idx+1:]), 64)
		if label == "" || err != nil {
			continue
		}
		out = append(out, chartPair{Label: label, Val: val})
	}
	return out
}

// statRows renders the stacked "Top stats" sidebar entries.
func statRows(stats []stat, max int, muted string, accentRule string) string {
	if len(stats) == 0 {
		return `<div style="color:#71717a; font-size:13px;">—</div>`
	}
	if max > 0 && len(stats) > max {
		stats = stats[:max]
	}
	var b strings.Builder
	for _, s := range stats {
		b.WriteString(`<div style="padding:10px 0; border-top:1px solid rgba(0,0,0,0.06);">`)
		fmt.Fprintf(&b, `<div style="font-size:12px; color:%s;">%s</div>`, muted, esc(s.K))
		fmt.Fprintf(&b, `<div style="font-size:16px; font-weight:900; margin-top:2px;">%s</div>`, esc(s.V))
		if accentRule != "" {
			b.WriteString(accentRule)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

// statTile renders one bordered dashboard tile with an accent underline.
func statTile(s stat, accent, muted string) string {
	return fmt.Sprintf(`<div style="border-radius:18px; border:1px solid rgba(0,0,0,0.10); padding:14px; background:white;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="font-size:18px; font-weight:900; margin-top:3px;">%s</div>
<div style="height:3px; border-radius:999px; margin-top:12px; background:%s; opacity:0.65;"></div>
</div>`, muted, esc(s.K), esc(s.V), accent)
}

// spacer is the inter-section gap div.
func spacer(px int) string {
	return fmt.Sprintf(`<div style="height:%dpx;"></div>`, px)
}

// textOr substitutes a fallback when the field is blank.
func textOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
