// 命令行渲染工具：读取一份草稿 JSON，离线输出 HTML 或 PDF。
// 常用于调试模板和布局，不依赖数据库和队列。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"typecraft/internal/artifact"
	"typecraft/internal/pdf"
	"typecraft/internal/render"
	"typecraft/internal/template"
)

type draftFile struct {
	Artifact string           `json:"artifact"`
	Layout   string           `json:"layout"`
	Theme    template.Theme   `json:"theme"`
	Answers  template.Answers `json:"answers"`
}

func main() {
	var (
		input       = flag.String("input", "", "草稿 JSON 文件路径（必填）")
		output      = flag.String("output", "", "输出文件路径，留空输出到 stdout")
		format      = flag.String("format", "html", "输出格式：html 或 pdf")
		noWatermark = flag.Bool("no-watermark", false, "不加水印")
		brand       = flag.String("brand", "", "自定义水印文案")
	)
	flag.Parse()

	if strings.TrimSpace(*input) == "" {
		log.Fatal("missing required flag: --input")
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read draft: %v", err)
	}

	var draft draftFile
	if err := json.Unmarshal(raw, &draft); err != nil {
		log.Fatalf("parse draft: %v", err)
	}

	id, ok := artifact.Parse(draft.Artifact)
	if !ok {
		log.Fatalf("unknown artifact %q", draft.Artifact)
	}

	layout := draft.Layout
	theme := draft.Theme
	if tpl, found := template.Get(id); found {
		if layout == "" || !tpl.HasLayout(layout) {
			layout = tpl.DefaultLayoutID
		}
		theme = tpl.DefaultTheme.Merge(draft.Theme)
	}

	html := render.WithOptions(id, draft.Answers, theme, layout, render.Options{
		Watermark: !*noWatermark,
		Brand:     *brand,
	})

	var data []byte
	switch *format {
	case "html":
		data = []byte(html)
	case "pdf":
		data, err = pdf.FromHTML(html)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (want html or pdf)", *format)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes, layout=%s)\n", *output, len(data), layout)
}
