// Package markdown converts raw Markdown text into an HTML string.
//
// The conversion runs in two cooperating passes: a stateful
// line-by-line block scanner (headings, lists, blockquotes, fenced
// code, display math) and an inline span transformer applied to the
// text content of each block-producing line. Math expressions are
// delegated to a pluggable MathRenderer; everything else is handled
// here. The renderer is a pure function of its input: no state
// survives between calls and no input can make it fail.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Renderer converts documents to HTML using a fixed math bridge.
type Renderer struct {
	math MathRenderer
}

// New returns a Renderer that delegates math to the given bridge.
// A nil bridge renders every expression as an escaped error marker.
func New(math MathRenderer) *Renderer {
	if math == nil {
		math = noMath{}
	}
	return &Renderer{math: math}
}

type blockMode int

const (
	modeDefault blockMode = iota
	modeCode
	modeMath
)

// blockState is the transient scan state for one document. Code and
// math capture are mutually exclusive modes; the list and blockquote
// flags only apply while the mode is modeDefault.
type blockState struct {
	mode     blockMode
	inBullet bool
	inNumber bool
	inQuote  bool

	codeLines []string
	codeLang  string
	mathLines []string
}

var (
	headingRe = regexp.MustCompile(`^(#{1,6}) (.+)$`)
	ruleRe    = regexp.MustCompile(`^(-{3,}|_{3,}|\*{3,})$`)
	orderedRe = regexp.MustCompile(`^\d+\. (.+)$`)
	bulletRe  = regexp.MustCompile(`^[-*+] (.+)$`)
)

// Render converts a Markdown document into HTML fragments joined by
// newlines. Line endings are normalized once up front; every call
// reprocesses the whole document. Empty input yields empty output.
func (r *Renderer) Render(document string) string {
	if document == "" {
		return ""
	}

	normalized := strings.ReplaceAll(document, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	st := &blockState{}
	var out []string

	for _, line := range lines {
		out = r.scanLine(out, st, line)
	}

	// Flush order at end of input: code, math, list, blockquote.
	// Unterminated blocks still render their accumulated content.
	if st.mode == modeCode {
		out = r.flushCode(out, st)
	}
	if st.mode == modeMath {
		out = r.flushMath(out, st)
	}
	out = closeList(out, st)
	out = closeQuote(out, st)

	return strings.Join(out, "\n")
}

// scanLine processes a single line, closing and opening blocks as
// needed, and returns out with zero or more fragments appended.
// Constructs are tried in a fixed order; the first match wins.
func (r *Renderer) scanLine(out []string, st *blockState, line string) []string {
	trimmed := strings.TrimSpace(line)

	// Code fences preempt everything, including an open math block.
	if strings.HasPrefix(trimmed, "```") {
		if st.mode == modeCode {
			return r.flushCode(out, st)
		}
		out = closeList(out, st)
		out = closeQuote(out, st)
		if st.mode == modeMath {
			out = r.flushMath(out, st)
		}
		st.mode = modeCode
		st.codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		st.codeLines = nil
		return out
	}

	// Inside a code fence every other line is raw content.
	if st.mode == modeCode {
		st.codeLines = append(st.codeLines, line)
		return out
	}

	if strings.HasPrefix(trimmed, "$$") {
		return r.scanMathFence(out, st, trimmed)
	}

	// Inside a math block, lines accumulate until a closing $$.
	if st.mode == modeMath {
		if strings.HasSuffix(trimmed, "$$") {
			rest := strings.TrimSuffix(strings.TrimRight(line, " \t"), "$$")
			rest = strings.TrimRight(rest, " \t")
			if rest != "" {
				st.mathLines = append(st.mathLines, rest)
			}
			return r.flushMath(out, st)
		}
		st.mathLines = append(st.mathLines, line)
		return out
	}

	// Blank line: close open structures, emit nothing.
	if trimmed == "" {
		out = closeList(out, st)
		out = closeQuote(out, st)
		return out
	}

	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		out = closeList(out, st)
		out = closeQuote(out, st)
		level := len(m[1])
		return append(out, fmt.Sprintf("<h%d>%s</h%d>", level, r.inline(m[2]), level))
	}

	if ruleRe.MatchString(trimmed) {
		out = closeList(out, st)
		out = closeQuote(out, st)
		return append(out, "<hr />")
	}

	if strings.HasPrefix(trimmed, ">") {
		out = closeList(out, st)
		quoted := strings.TrimPrefix(trimmed, ">")
		quoted = strings.TrimPrefix(quoted, " ")
		if !st.inQuote {
			out = append(out, "<blockquote>")
			st.inQuote = true
		}
		return append(out, "<p>"+r.inline(quoted)+"</p>")
	}

	if m := orderedRe.FindStringSubmatch(trimmed); m != nil {
		out = closeQuote(out, st)
		if !st.inNumber {
			out = closeList(out, st)
			out = append(out, "<ol>")
			st.inNumber = true
		}
		return append(out, "<li>"+r.inline(m[1])+"</li>")
	}

	if m := bulletRe.FindStringSubmatch(trimmed); m != nil {
		out = closeQuote(out, st)
		if !st.inBullet {
			out = closeList(out, st)
			out = append(out, "<ul>")
			st.inBullet = true
		}
		return append(out, "<li>"+r.inline(m[1])+"</li>")
	}

	out = closeList(out, st)
	out = closeQuote(out, st)
	return append(out, "<p>"+r.inline(trimmed)+"</p>")
}

// scanMathFence handles a trimmed line that starts with "$$".
func (r *Renderer) scanMathFence(out []string, st *blockState, trimmed string) []string {
	if st.mode == modeMath {
		rest := strings.TrimPrefix(trimmed, "$$")
		closing := trimmed == "$$" || strings.HasSuffix(trimmed, "$$")
		rest = strings.TrimSuffix(rest, "$$")
		if rest != "" {
			st.mathLines = append(st.mathLines, rest)
		}
		if closing {
			return r.flushMath(out, st)
		}
		return out
	}

	out = closeList(out, st)
	out = closeQuote(out, st)

	if trimmed == "$$" {
		st.mode = modeMath
		st.mathLines = nil
		return out
	}
	if strings.HasSuffix(trimmed, "$$") {
		// Opening and closing fence on one line: render directly
		// without entering block state.
		expr := strings.TrimSuffix(strings.TrimPrefix(trimmed, "$$"), "$$")
		if strings.TrimSpace(expr) != "" {
			return append(out, r.mathHTML(strings.TrimSpace(expr), true))
		}
	}
	st.mode = modeMath
	st.mathLines = []string{strings.TrimPrefix(trimmed, "$$")}
	return out
}

// flushCode emits the accumulated code block. Content is escaped at
// flush time, never inline-transformed.
func (r *Renderer) flushCode(out []string, st *blockState) []string {
	open := "<pre><code>"
	if st.codeLang != "" {
		open = `<pre><code class="language-` + st.codeLang + `">`
	}
	out = append(out, open+escapeHTML(strings.Join(st.codeLines, "\n"))+"</code></pre>")
	st.mode = modeDefault
	st.codeLines = nil
	st.codeLang = ""
	return out
}

// flushMath renders the accumulated math buffer in display mode.
func (r *Renderer) flushMath(out []string, st *blockState) []string {
	expr := strings.TrimSpace(strings.Join(st.mathLines, "\n"))
	out = append(out, r.mathHTML(expr, true))
	st.mode = modeDefault
	st.mathLines = nil
	return out
}

func closeList(out []string, st *blockState) []string {
	if st.inBullet {
		out = append(out, "</ul>")
		st.inBullet = false
	}
	if st.inNumber {
		out = append(out, "</ol>")
		st.inNumber = false
	}
	return out
}

func closeQuote(out []string, st *blockState) []string {
	if st.inQuote {
		out = append(out, "</blockquote>")
		st.inQuote = false
	}
	return out
}

// escapeHTML escapes the five characters that could reinterpret as
// markup. It runs before any inline substitution.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
