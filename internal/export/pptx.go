package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"typecraft/internal/deck"
	"typecraft/internal/template"
)

// PPTX geometry. Slides are widescreen 13.333 x 7.5 inches; OOXML measures in
// EMU (914400 per inch) and font sizes in hundredths of a point.
const (
	emuPerInch = 914400
	slideCX    = 12192000
	slideCY    = 6858000
)

func emu(inches float64) int {
	return int(inches*emuPerInch + 0.5)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xesc(s string) string {
	return xmlEscaper.Replace(s)
}

// hexColor strips the leading # and uppercases; bad input falls back.
func hexColor(c, fallback string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(c) != 6 {
		return fallback
	}
	return strings.ToUpper(c)
}

// PitchDeckPPTX builds a .pptx with one slide per deck slide: accent bar for
// the bold layouts, dark canvas for deck_d, title/subtitle/bullets and a
// slide counter mirroring the HTML renderer.
func PitchDeckPPTX(d deck.Deck, th template.Theme, layoutID string) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("pptx export: deck has no slides")
	}

	accent := hexColor(th.Accent, "6366F1")
	isDark := layoutID == "deck_d"
	bg := "FFFFFF"
	titleColor := "0A0A0A"
	mutedColor := "52525B"
	if isDark {
		bg = "0B0C10"
		titleColor = "F4F4F5"
		mutedColor = "D4D4D8"
	}
	accentBar := layoutID == "deck_a" || layoutID == "deck_c"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(name, content string) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	n := len(d.Slides)

	if err := add("[Content_Types].xml", contentTypesXML(n)); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", rootRelsXML); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", corePropsXML); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", appPropsXML); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", presentationXML(n)); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", presentationRelsXML(n)); err != nil {
		return nil, err
	}
	if err := add("ppt/slideMasters/slideMaster1.xml", slideMasterXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideLayouts/slideLayout1.xml", slideLayoutXML); err != nil {
		return nil, err
	}
	if err := add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML); err != nil {
		return nil, err
	}
	if err := add("ppt/theme/theme1.xml", themeXML); err != nil {
		return nil, err
	}

	for i, s := range d.Slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		if err := add(name, slideXML(s, i+1, n, bg, titleColor, mutedColor, accent, accentBar)); err != nil {
			return nil, err
		}
		rels := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1)
		if err := add(rels, slideRelsXML); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close pptx: %w", err)
	}
	return buf.Bytes(), nil
}

// slideXML builds one slide part.
func slideXML(s deck.Slide, no, total int, bg, titleColor, mutedColor, accent string, accentBar bool) string {
	var shapes strings.Builder
	id := 2

	if accentBar {
		fmt.Fprintf(&shapes, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Accent bar"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="roundRect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></p:spPr><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="en-US"/></a:p></p:txBody></p:sp>`,
			id, emu(0.5), emu(1.2), emu(0.12), emu(1.6), accent, accent)
		id++
	}

	title := s.Data.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}
	shapes.WriteString(textBox(id, "Title", emu(0.9), emu(1.1), emu(11.5), emu(1.2),
		[]para{{runs: []run{{text: title, size: 4400, bold: true, color: titleColor, face: "Aptos Display"}}}}))
	id++

	if s.Data.Subtitle != "" {
		shapes.WriteString(textBox(id, "Subtitle", emu(0.9), emu(2.25), emu(11.5), emu(1.0),
			[]para{{runs: []run{{text: s.Data.Subtitle, size: 1800, color: mutedColor, face: "Aptos"}}}}))
		id++
	}

	bullets := template.NormalizeBullets(s.Data.Bullets)
	if len(bullets) > 0 {
		paras := make([]para, 0, len(bullets))
		for _, item := range bullets {
			paras = append(paras, para{
				lineSpacing: 125000,
				runs:        []run{{text: "• " + item, size: 1800, color: titleColor, face: "Aptos"}},
			})
		}
		shapes.WriteString(textBox(id, "Bullets", emu(0.95), emu(3.1), emu(11.2), emu(3.8), paras))
		id++
	}

	shapes.WriteString(textBox(id, "Slide number", emu(12.0), emu(0.25), emu(1.0), emu(0.3),
		[]para{{align: "r", runs: []run{{text: fmt.Sprintf("%d/%d", no, total), size: 1200, color: mutedColor, face: "Aptos"}}}}))

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>%s</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`,
		bg, shapes.String())
}

type run struct {
	text  string
	size  int
	bold  bool
	color string
	face  string
}

type para struct {
	align       string
	lineSpacing int
	runs        []run
}

func textBox(id int, name string, x, y, cx, cy int, paras []para) string {
	var body strings.Builder
	for _, p := range paras {
		body.WriteString("<a:p>")
		if p.align != "" || p.lineSpacing > 0 {
			body.WriteString("<a:pPr")
			if p.align != "" {
				fmt.Fprintf(&body, ` algn="%s"`, p.align)
			}
			body.WriteString(">")
			if p.lineSpacing > 0 {
				fmt.Fprintf(&body, `<a:lnSpc><a:spcPct val="%d"/></a:lnSpc>`, p.lineSpacing)
			}
			body.WriteString("</a:pPr>")
		}
		for _, r := range p.runs {
			bold := ""
			if r.bold {
				bold = ` b="1"`
			}
			fmt.Fprintf(&body, `<a:r><a:rPr lang="en-US" sz="%d"%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
				r.size, bold, r.color, xesc(r.face), xesc(r.text))
		}
		body.WriteString("</a:p>")
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr><p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, xesc(name), x, y, cx, cy, body.String())
}

func contentTypesXML(slides int) string {
	var overrides strings.Builder
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&overrides, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/><Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/><Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/><Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/><Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>%s</Types>`,
		overrides.String())
}

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/><Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/></Relationships>`

const corePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>TypeCraft pitch deck</dc:title><dc:creator>TypeCraft</dc:creator></cp:coreProperties>`

const appPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Application>TypeCraft</Application></Properties>`

func presentationXML(slides int) string {
	var ids strings.Builder
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst><p:sldIdLst>%s</p:sldIdLst><p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/></p:presentation>`,
		ids.String(), slideCX, slideCY)
}

func presentationRelsXML(slides int) string {
	var rels strings.Builder
	rels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i)
	}
	fmt.Fprintf(&rels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`, slides+2)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">%s</Relationships>`, rels.String())
}

const slideRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/></Relationships>`

const slideMasterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/><p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`

const slideMasterRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/></Relationships>`

const slideLayoutXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1"><p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

const slideLayoutRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/></Relationships>`

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="TypeCraft"><a:themeElements><a:clrScheme name="TypeCraft"><a:dk1><a:srgbClr val="0A0A0A"/></a:dk1><a:lt1><a:srgbClr val="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="52525B"/></a:dk2><a:lt2><a:srgbClr val="F4F4F5"/></a:lt2><a:accent1><a:srgbClr val="6366F1"/></a:accent1><a:accent2><a:srgbClr val="10B981"/></a:accent2><a:accent3><a:srgbClr val="2563EB"/></a:accent3><a:accent4><a:srgbClr val="F59E0B"/></a:accent4><a:accent5><a:srgbClr val="EF4444"/></a:accent5><a:accent6><a:srgbClr val="0EA5E9"/></a:accent6><a:hlink><a:srgbClr val="2563EB"/></a:hlink><a:folHlink><a:srgbClr val="6366F1"/></a:folHlink></a:clrScheme><a:fontScheme name="TypeCraft"><a:majorFont><a:latin typeface="Aptos Display"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Aptos"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`
