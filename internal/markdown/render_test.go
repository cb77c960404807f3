package markdown

import (
	"errors"
	"strings"
	"testing"
)

// fakeMath wraps expressions in pseudo tags so tests can assert on
// exactly what reached the bridge and in which mode.
type fakeMath struct {
	fail bool
}

func (f fakeMath) Render(expr string, display bool) MathResult {
	if f.fail {
		return MathResult{Err: errors.New("bad expression")}
	}
	mode := "inline"
	if display {
		mode = "display"
	}
	return MathResult{HTML: "<math mode=\"" + mode + "\">" + expr + "</math>"}
}

func testRenderer() *Renderer {
	return New(fakeMath{})
}

func TestRenderEmpty(t *testing.T) {
	if got := testRenderer().Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderParagraph(t *testing.T) {
	got := testRenderer().Render("hello world")
	want := "<p>hello world</p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLineEndingNormalization(t *testing.T) {
	unix := testRenderer().Render("one\ntwo")
	windows := testRenderer().Render("one\r\ntwo")
	mac := testRenderer().Render("one\rtwo")

	if unix != windows || unix != mac {
		t.Errorf("line endings should normalize identically: %q / %q / %q", unix, windows, mac)
	}
}

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"h1", "# Title", "<h1>Title</h1>"},
		{"h3", "### Deep", "<h3>Deep</h3>"},
		{"h6", "###### Bottom", "<h6>Bottom</h6>"},
		{"seven hashes is a paragraph", "####### nope", "<p>####### nope</p>"},
		{"no space is a paragraph", "#nospace", "<p>#nospace</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testRenderer().Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderThematicBreak(t *testing.T) {
	for _, input := range []string{"---", "----", "___", "***", "*****"} {
		got := testRenderer().Render(input)
		if got != "<hr />" {
			t.Errorf("Render(%q) = %q, want <hr />", input, got)
		}
	}

	// Mixed or short marker runs are not rules.
	if got := testRenderer().Render("--"); got != "<p>--</p>" {
		t.Errorf("Render(\"--\") = %q, want paragraph", got)
	}
	if got := testRenderer().Render("-_-"); got != "<p>-_-</p>" {
		t.Errorf("Render(\"-_-\") = %q, want paragraph", got)
	}
}

func TestRenderUnorderedList(t *testing.T) {
	got := testRenderer().Render("- a\n- b\n\nc")
	want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<p>c</p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	if strings.Count(got, "<ul>") != strings.Count(got, "</ul>") {
		t.Error("list tags are not balanced")
	}
}

func TestRenderOrderedList(t *testing.T) {
	got := testRenderer().Render("1. one\n2. two")
	want := "<ol>\n<li>one</li>\n<li>two</li>\n</ol>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderListSwitch(t *testing.T) {
	// Switching marker kinds closes the previous list.
	got := testRenderer().Render("- a\n1. b")
	want := "<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderListMarkers(t *testing.T) {
	for _, marker := range []string{"-", "*", "+"} {
		got := testRenderer().Render(marker + " item")
		want := "<ul>\n<li>item</li>\n</ul>"
		if got != want {
			t.Errorf("marker %q: Render = %q, want %q", marker, got, want)
		}
	}
}

func TestRenderBlockquote(t *testing.T) {
	got := testRenderer().Render("> one\n> two\n\nafter")
	want := "<blockquote>\n<p>one</p>\n<p>two</p>\n</blockquote>\n<p>after</p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBlockquoteClosedByHeading(t *testing.T) {
	got := testRenderer().Render("> quote\n# head")
	want := "<blockquote>\n<p>quote</p>\n</blockquote>\n<h1>head</h1>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderFencedCode(t *testing.T) {
	got := testRenderer().Render("```\n**not bold**\n```")
	want := "<pre><code>**not bold**</code></pre>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if strings.Contains(got, "<strong>") {
		t.Error("code content must not be inline-transformed")
	}
}

func TestRenderFencedCodeLanguage(t *testing.T) {
	got := testRenderer().Render("```go\nx := 1\n```")
	want := "<pre><code class=\"language-go\">x := 1</code></pre>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderFencedCodeEscapes(t *testing.T) {
	got := testRenderer().Render("```\na < b && c > d\n```")
	if !strings.Contains(got, "a &lt; b &amp;&amp; c &gt; d") {
		t.Errorf("code content not escaped: %q", got)
	}
}

func TestRenderUnterminatedFence(t *testing.T) {
	got := testRenderer().Render("```js\nlet x = 1;")
	want := "<pre><code class=\"language-js\">let x = 1;</code></pre>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCodeSwallowsBlockMarkers(t *testing.T) {
	// Inside a fence, headings, lists and math fences are raw content.
	got := testRenderer().Render("```\n# not a heading\n- not a list\n$$\n```")
	if strings.Contains(got, "<h1>") || strings.Contains(got, "<li>") || strings.Contains(got, "<math") {
		t.Errorf("block markers leaked out of code fence: %q", got)
	}
	if !strings.Contains(got, "# not a heading") {
		t.Errorf("raw content missing from code block: %q", got)
	}
}

func TestRenderBlockMathSameLine(t *testing.T) {
	got := testRenderer().Render("$$x^2$$")
	want := "<math mode=\"display\">x^2</math>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBlockMathMultiline(t *testing.T) {
	got := testRenderer().Render("$$\na+b\nc+d\n$$")
	want := "<math mode=\"display\">a+b\nc+d</math>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBlockMathSeededOpening(t *testing.T) {
	got := testRenderer().Render("$$a+b\nc$$")
	want := "<math mode=\"display\">a+b\nc</math>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBlockMathTrailingMarkerLine(t *testing.T) {
	got := testRenderer().Render("$$\na+b\nc+d$$")
	want := "<math mode=\"display\">a+b\nc+d</math>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderUnterminatedMath(t *testing.T) {
	got := testRenderer().Render("$$\na+b")
	want := "<math mode=\"display\">a+b</math>"
	if got != want {
		t.Errorf("unterminated math must still flush: %q, want %q", got, want)
	}
}

func TestRenderMathClosesOpenList(t *testing.T) {
	got := testRenderer().Render("- item\n$$x$$")
	want := "<ul>\n<li>item</li>\n</ul>\n<math mode=\"display\">x</math>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderFencePreemptsMath(t *testing.T) {
	// A code fence while a math block is open flushes the math first.
	got := testRenderer().Render("$$\na+b\n```\ncode\n```")
	if !strings.Contains(got, "<math mode=\"display\">a+b</math>") {
		t.Errorf("open math block was dropped: %q", got)
	}
	if !strings.Contains(got, "<pre><code>code</code></pre>") {
		t.Errorf("code block missing: %q", got)
	}
}

func TestRenderEscaping(t *testing.T) {
	got := testRenderer().Render("a <b> & \"c\" 'd'")
	want := "<p>a &lt;b&gt; &amp; &quot;c&quot; &#39;d&#39;</p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderInlineMathInParagraph(t *testing.T) {
	got := testRenderer().Render("$a+b$")
	want := "<p><math mode=\"inline\">a+b</math></p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if strings.Contains(got, "$") {
		t.Errorf("leftover dollar signs in %q", got)
	}
}

func TestRenderMathBridgeFailure(t *testing.T) {
	r := New(fakeMath{fail: true})

	got := r.Render("$a+b$")
	want := "<p><span class=\"math-error\">a+b</span></p>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	got = r.Render("$$x^2$$")
	want = "<span class=\"math-error\">x^2</span>"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderNilBridge(t *testing.T) {
	r := New(nil)
	got := r.Render("$a$")
	if !strings.Contains(got, "math-error") {
		t.Errorf("nil bridge should degrade to error marker, got %q", got)
	}
}

func TestRenderDocumentOrder(t *testing.T) {
	input := "# Title\n\nintro\n\n- a\n- b\n\n> note\n\n```sh\nls\n```\n\n---\n\nend"
	got := testRenderer().Render(input)
	want := strings.Join([]string{
		"<h1>Title</h1>",
		"<p>intro</p>",
		"<ul>",
		"<li>a</li>",
		"<li>b</li>",
		"</ul>",
		"<blockquote>",
		"<p>note</p>",
		"</blockquote>",
		"<pre><code class=\"language-sh\">ls</code></pre>",
		"<hr />",
		"<p>end</p>",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	input := "# a\n\n- x\n- y\n\n$$e=mc^2$$\n\ntext"
	first := testRenderer().Render(input)
	second := testRenderer().Render(input)
	if first != second {
		t.Error("Render is not deterministic for identical input")
	}
}
