// Package pdf rasterizes rendered document HTML in a headless browser. The
// render layer emits self-contained HTML (inline styles only), so pages are
// loaded via SetDocumentContent without any frontend round-trip.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// openPage launches a headless browser and loads the given HTML document.
func openPage(htmlContent string) (_ *rod.Page, cleanup func(), err error) {
	cleanup = func() {}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	defer func() {
		if err != nil {
			launch.Cleanup()
		}
	}()

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, cleanup, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		launch.Cleanup()
		return nil, cleanup, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Timeout(30 * time.Second).Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		launch.Cleanup()
		return nil, cleanup, fmt.Errorf("create page: %w", err)
	}
	cleanup = func() {
		_ = page.Close()
		_ = browser.Close()
		launch.Cleanup()
	}

	page = page.Timeout(30 * time.Second)
	if err := page.SetDocumentContent(wrapDocument(htmlContent)); err != nil {
		return nil, cleanup, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, cleanup, fmt.Errorf("wait load: %w", err)
	}

	return page, cleanup, nil
}

// wrapDocument puts the rendered fragment on a white canvas.
func wrapDocument(fragment string) string {
	return `<!doctype html><html><head><meta charset="utf-8"></head><body style="margin:0;background:white;">` +
		fragment + `</body></html>`
}

// FromHTML 使用 go-rod 在无头浏览器中渲染 HTML 并返回 PDF 字节。
func FromHTML(htmlContent string) ([]byte, error) {
	page, cleanup, err := openPage(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}

	return data, nil
}

// CapturePNG renders the HTML and screenshots the document node as PNG.
// pixelRatio 2 keeps slide exports crisp.
func CapturePNG(htmlContent string) ([]byte, error) {
	page, cleanup, err := openPage(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             1240,
		Height:            0,
		DeviceScaleFactor: 2,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set device metrics: %w", err)
	}

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("page screenshot: %w", err)
	}
	return data, nil
}
