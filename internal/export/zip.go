package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// SlidesZIP bundles per-slide PNGs as slide-01.png, slide-02.png, ...
func SlidesZIP(images [][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, img := range images {
		w, err := zw.Create(fmt.Sprintf("slide-%02d.png", i+1))
		if err != nil {
			return nil, fmt.Errorf("create zip entry %d: %w", i+1, err)
		}
		if _, err := w.Write(img); err != nil {
			return nil, fmt.Errorf("write zip entry %d: %w", i+1, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
