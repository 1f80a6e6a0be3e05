package render

import (
	"fmt"
	"strconv"
	"strings"

	"typecraft/internal/deck"
	"typecraft/internal/template"
)

// renderPitchDeck shows the current slide as a 16:9 card. Layout D flips to a
// dark palette, layout C adds radial accent washes, A and C carry the bold
// accent rail.
func renderPitchDeck(a template.Answers, th template.Theme, layoutID string, o Options) string {
	d := deck.FromAnswers(a)

	accent := th.Accent
	if accent == "" {
		accent = "#6366f1"
	}

	dark := layoutID == "deck_d"
	baseBg := "#ffffff"
	baseText := th.Text
	baseMuted := th.MutedText
	baseBorder := th.Border
	if baseText == "" {
		baseText = "#0a0a0a"
	}
	if baseMuted == "" {
		baseMuted = "#52525b"
	}
	if baseBorder == "" {
		baseBorder = "rgba(0,0,0,0.10)"
	}
	if dark {
		baseBg = "#0b0c10"
		baseText = "#f4f4f5"
		baseMuted = "rgba(244,244,245,0.72)"
		baseBorder = "rgba(255,255,255,0.14)"
	}

	cardBg := baseBg
	if layoutID == "deck_c" {
		cardBg = fmt.Sprintf(`radial-gradient(900px 500px at 20%% -10%%, %s22, transparent 60%%), radial-gradient(800px 480px at 90%% 10%%, %s14, transparent 55%%), %s`,
			accent, accent, baseBg)
	}

	isBold := layoutID == "deck_a" || layoutID == "deck_c"

	slide, ok := d.Current()
	if !ok {
		return fmt.Sprintf(`<div style="padding:24px;font-family:system-ui;color:%s;">No slides yet.</div>`, baseText)
	}

	slideNo := 1
	for i, s := range d.Slides {
		if s.ID == slide.ID {
			slideNo = i + 1
			break
		}
	}
	total := len(d.Slides)
	if total < 1 {
		total = 1
	}

	title := esc(textOr(slide.Data.Title, "Untitled slide"))
	subtitle := esc(slide.Data.Subtitle)
	footer := esc(slide.Data.Footer)
	bullets := template.NormalizeBullets(slide.Data.Bullets)
	if len(bullets) > 10 {
		bullets = bullets[:10]
	}
	pairs := parseChartLines(slide.Data.ChartLines)
	if len(pairs) > 8 {
		pairs = pairs[:8]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div style="font-family: %s; color:%s;">`, fontStack, baseText)
	fmt.Fprintf(&b, `<div style="width:1200px; max-width:100%%; aspect-ratio:16/9; margin:0 auto; border-radius:28px; border:1px solid %s; background:%s; box-shadow: 0 30px 90px rgba(0,0,0,0.14); padding:34px 38px; display:flex; flex-direction:column; gap:18px; overflow:hidden;">`,
		baseBorder, cardBg)

	// Header strip: type pill, slide counter, logo, watermark.
	pillBg := "rgba(255,255,255,0.72)"
	if dark {
		pillBg = "rgba(0,0,0,0.20)"
	}
	typeLabel := strings.ReplaceAll(string(slide.Type), "_", " ")
	b.WriteString(`<div style="display:flex; align-items:center; justify-content:space-between; gap:12px;">`)
	fmt.Fprintf(&b, `<div style="display:flex; align-items:center; gap:10px;">
<span style="display:inline-flex; align-items:center; border:1px solid %s; background:%s; padding:8px 12px; border-radius:999px; font-size:12px; letter-spacing:0.12em; text-transform:uppercase; font-weight:800; color:%s;">%s</span>
<span style="font-size:12px; color:%s; letter-spacing:0.08em; font-weight:700;">%d/%d</span>
</div>`, baseBorder, pillBg, baseMuted, esc(typeLabel), baseMuted, slideNo, total)

	b.WriteString(`<div style="display:flex; align-items:center; gap:12px;">`)
	if d.LogoURL != "" {
		opacity, filter := "0.9", "none"
		if dark {
			opacity, filter = "0.95", "brightness(1.1)"
		}
		fmt.Fprintf(&b, `<img src="%s" alt="" style="height:22px; width:auto; object-fit:contain; opacity:%s; filter:%s;" />`,
			esc(d.LogoURL), opacity, filter)
	}
	if o.Watermark {
		fmt.Fprintf(&b, `<div style="font-size:11px; letter-spacing:0.10em; text-transform:uppercase; opacity:0.6; font-weight:800; color:%s; white-space:nowrap;">%s</div>`,
			baseMuted, esc(o.brand()))
	}
	b.WriteString(`</div></div>`)

	b.WriteString(spacer(10))

	// Body: optional accent rail + title/subtitle/bullets.
	b.WriteString(`<div style="display:flex; gap:18px; align-items:flex-start;">`)
	if isBold {
		fmt.Fprintf(&b, `<div style="width:10px; border-radius:999px; background:%s; height:96px;"></div>`, accent)
	}
	b.WriteString(`<div style="flex:1;">`)
	titleSize := 50
	if isBold {
		titleSize = 54
	}
	fmt.Fprintf(&b, `<div style="font-size:%dpx; font-weight:900; letter-spacing:-0.04em; line-height:1.05;">%s</div>`, titleSize, title)
	if subtitle != "" {
		fmt.Fprintf(&b, `<div style="margin-top:14px; color:%s; font-size:18px; line-height:1.55; max-width:980px;">%s</div>`, baseMuted, subtitle)
	} else {
		fmt.Fprintf(&b, `<div style="margin-top:14px; color:%s; font-size:18px;"> </div>`, baseMuted)
	}
	if len(bullets) > 0 {
		b.WriteString(`<ul style="margin:18px 0 0 0; padding:0 0 0 22px; line-height:1.55; font-size:18px; list-style-type:disc; list-style-position:outside;">`)
		for _, item := range bullets {
			fmt.Fprintf(&b, `<li style="margin:10px 0; padding:0;">%s</li>`, esc(item))
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</div></div>`)

	if slide.Data.ImageURL != "" {
		fmt.Fprintf(&b, `<div style="margin-top:18px; border:1px solid %s; border-radius:20px; overflow:hidden;"><img src="%s" alt="" style="width:100%%; height:auto; display:block;" /></div>`,
			baseBorder, esc(slide.Data.ImageURL))
	}

	if len(pairs) > 0 {
		maxVal := pairs[0].Val
		for _, pair := range pairs {
			if pair.Val > maxVal {
				maxVal = pair.Val
			}
		}
		if maxVal <= 0 {
			maxVal = 1
		}
		chartBg := "rgba(255,255,255,0.55)"
		if dark {
			chartBg = "rgba(255,255,255,0.04)"
		}
		fmt.Fprintf(&b, `<div style="margin-top:18px; border:1px solid %s; border-radius:20px; padding:16px; background:%s;">
<div style="font-size:12px; letter-spacing:0.12em; text-transform:uppercase; font-weight:800; color:%s;">Chart</div>
<div style="margin-top:10px; display:grid; gap:10px;">`, baseBorder, chartBg, baseMuted)
		for _, pair := range pairs {
			w := int(pair.Val/maxVal*100 + 0.5)
			if w < 6 {
				w = 6
			}
			fmt.Fprintf(&b, `<div style="display:grid; grid-template-columns: 140px 1fr 60px; gap:12px; align-items:center;">
<div style="font-size:14px; color:%s;">%s</div>
<div style="height:10px; border-radius:999px; background:%s; overflow:hidden;"><div style="height:10px; width:%d%%; border-radius:999px; background:%s;"></div></div>
<div style="font-size:14px; text-align:right; color:%s; font-weight:700;">%s</div>
</div>`, baseMuted, esc(pair.Label), baseBorder, w, accent, baseText, strconv.FormatFloat(pair.Val, 'f', -1, 64))
		}
		b.WriteString(`</div></div>`)
	}

	fmt.Fprintf(&b, `<div style="display:flex; align-items:center; justify-content:space-between; margin-top:auto; padding-top:18px;">
<div style="font-size:12px; color:%s;">%s</div>
<div style="display:flex; gap:10px; align-items:center;">
<div style="height:8px; width:8px; border-radius:999px; background:%s;"></div>
<div style="height:8px; width:8px; border-radius:999px; background:%s;"></div>
<div style="height:8px; width:8px; border-radius:999px; background:%s;"></div>
</div></div>`, baseMuted, footer, accent, baseBorder, baseBorder)

	b.WriteString(`</div></div>`)
	return b.String()
}
