package markdown

import (
	"regexp"
	"strings"
)

// The inline substitution chain. Order matters: image before link so
// "![" is not misread as a plain link, double markers before single
// ones so bold is not eaten by italic. Spans are shortest-match and
// never empty; replacements are not re-scanned.
var (
	imageRe  = regexp.MustCompile(`!\[([^\]]+?)\]\(([^)]+?)\)`)
	linkRe   = regexp.MustCompile(`\[([^\]]+?)\]\(([^)]+?)\)`)
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bold2Re  = regexp.MustCompile(`__(.+?)__`)
	italicRe = regexp.MustCompile(`(^|[^*])\*([^*]+?)\*`)
	ital2Re  = regexp.MustCompile(`_([^_]+?)_`)
	strikeRe = regexp.MustCompile(`~~(.+?)~~`)
	codeRe   = regexp.MustCompile("`([^`]+?)`")
)

// inline transforms the text content of one block line into an
// HTML-safe string: escape first, then inline math, then the fixed
// marker substitution chain.
func (r *Renderer) inline(text string) string {
	s := escapeHTML(text)
	s = r.inlineMath(s)

	s = imageRe.ReplaceAllString(s, `<img alt="$1" src="$2" />`)
	s = linkRe.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noreferrer">$1</a>`)
	s = boldRe.ReplaceAllString(s, `<strong>$1</strong>`)
	s = bold2Re.ReplaceAllString(s, `<strong>$1</strong>`)
	s = italicRe.ReplaceAllString(s, `$1<em>$2</em>`)
	s = ital2Re.ReplaceAllString(s, `<em>$1</em>`)
	s = strikeRe.ReplaceAllString(s, `<del>$1</del>`)
	s = codeRe.ReplaceAllString(s, `<code>$1</code>`)
	return s
}

// inlineMath scans for $...$ spans and replaces them with rendered
// math. A backslash-escaped \$ stays a literal dollar sign, an
// all-whitespace span is left as typed (a bare currency sign, not
// math), and an unclosed $ at end of text is emitted literally.
func (r *Renderer) inlineMath(s string) string {
	var out strings.Builder
	var expr strings.Builder
	inMath := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == '$' {
			if inMath {
				expr.WriteByte('$')
			} else {
				out.WriteByte('$')
			}
			i++
			continue
		}
		if c == '$' {
			if !inMath {
				inMath = true
				expr.Reset()
				continue
			}
			inMath = false
			if strings.TrimSpace(expr.String()) == "" {
				out.WriteString("$" + expr.String() + "$")
			} else {
				out.WriteString(r.mathHTML(expr.String(), false))
			}
			continue
		}
		if inMath {
			expr.WriteByte(c)
		} else {
			out.WriteByte(c)
		}
	}

	if inMath {
		out.WriteString("$" + expr.String())
	}
	return out.String()
}
