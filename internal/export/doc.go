// Package export builds the downloadable artifact bytes for each export
// format. Rasterized formats (PDF/PNG) live in the pdf package; this package
// covers the document envelopes that are assembled directly.
package export

import "fmt"

// DocFromHTML wraps rendered HTML in the minimal envelope Word accepts as a
// .doc file.
func DocFromHTML(html string) []byte {
	doc := fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>TypeCraft</title>
  </head>
  <body>%s</body>
</html>`, html)
	return []byte(doc)
}
