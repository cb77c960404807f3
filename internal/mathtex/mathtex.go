// Package mathtex bridges TeX expressions to MathML for the markdown
// renderer. It wraps latex2mathml behind the markdown.MathRenderer
// contract: any conversion failure, including a panic inside the
// library, is reported as a result error so the caller can fall back
// to escaped literal output.
package mathtex

import (
	"errors"
	"fmt"
	"strings"

	"git.sr.ht/~mekyt/latex2mathml"

	"github.com/gerunddev/inkwell/internal/markdown"
)

const mathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// Bridge renders TeX through latex2mathml.
type Bridge struct{}

// New returns a ready-to-use bridge.
func New() Bridge {
	return Bridge{}
}

// Render converts expr to a MathML fragment. The display flag selects
// block vs inline layout. Never panics outward.
func (Bridge) Render(expr string, display bool) (res markdown.MathResult) {
	defer func() {
		if r := recover(); r != nil {
			res = markdown.MathResult{Err: fmt.Errorf("mathml conversion panicked: %v", r)}
		}
	}()

	if strings.TrimSpace(expr) == "" {
		return markdown.MathResult{Err: errors.New("empty expression")}
	}

	mode := "inline"
	if display {
		mode = "block"
	}

	out := latex2mathml.Convert(expr, mathMLNamespace, mode, 0)
	if strings.TrimSpace(out) == "" {
		return markdown.MathResult{Err: errors.New("empty mathml output")}
	}
	return markdown.MathResult{HTML: out}
}
