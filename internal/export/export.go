// Package export wraps rendered document HTML into a standalone page.
package export

import (
	"strings"

	"github.com/gerunddev/inkwell/internal/markdown"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%TITLE%</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.6; }
pre { background: #f5f5f5; padding: 1rem; overflow-x: auto; }
code { font-family: ui-monospace, monospace; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1rem; color: #555; }
.math-error { color: #b00; border-bottom: 1px dotted #b00; }
</style>
</head>
<body>
%BODY%
</body>
</html>
`

// Page renders body markdown through r and returns a complete HTML
// document titled title.
func Page(r *markdown.Renderer, title, body string) string {
	page := strings.ReplaceAll(pageTemplate, "%TITLE%", escapeTitle(title))
	return strings.Replace(page, "%BODY%", r.Render(body), 1)
}

func escapeTitle(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
