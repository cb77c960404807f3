package markdown

import "errors"

var errNoMathRenderer = errors.New("no math renderer configured")

// MathResult is the outcome of rendering a single TeX expression.
// Exactly one of HTML or Err is meaningful: a non-nil Err means the
// expression could not be rendered and the caller should fall back to
// an escaped literal.
type MathResult struct {
	HTML string
	Err  error
}

// MathRenderer converts a TeX expression into an HTML fragment.
// Implementations must not panic; any failure is reported through
// MathResult.Err so a broken expression never breaks the surrounding
// document render.
type MathRenderer interface {
	Render(expr string, display bool) MathResult
}

// noMath is the fallback renderer used when no bridge is configured.
// It fails every expression, which routes all math through the
// escaped-literal error path.
type noMath struct{}

func (noMath) Render(expr string, display bool) MathResult {
	return MathResult{Err: errNoMathRenderer}
}

// mathHTML renders expr through the configured bridge and degrades to
// an inline error marker containing the escaped source expression.
func (r *Renderer) mathHTML(expr string, display bool) string {
	res := r.math.Render(expr, display)
	if res.Err != nil {
		return `<span class="math-error">` + escapeHTML(expr) + `</span>`
	}
	return res.HTML
}
