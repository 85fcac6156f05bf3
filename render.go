// Package sqltemplate renders query templates with typed placeholders and
// conditional blocks into final query text.
//
// A template may contain the placeholders ? (any scalar), ?d (integer),
// ?f (float), ?a (list or associative array) and ?# (identifier). Arguments
// are consumed left to right, one per placeholder. Text wrapped in braces is
// a conditional block: it is dropped entirely when one of its placeholders is
// bound to Omit(), and kept without the braces otherwise.
//
//	q, err := sqltemplate.Render(
//		"SELECT name FROM users WHERE id = ?d {AND block = ?d}",
//		42, sqltemplate.Omit(),
//	)
//	// q == "SELECT name FROM users WHERE id = 42 "
//
// Strings are wrapped in backticks with a fixed set of characters escaped;
// when the wrapped text directly follows "=", it is rewritten to single
// quotes. The output is plain text: this package is not a substitute for
// parameterized execution.
package sqltemplate

// Options controls how a Renderer writes values.
type Options struct {
	// Booleans selects the text written for false. BoolNumeric, the zero
	// value, writes 0.
	Booleans BoolStyle
	// Strict rejects argument lists longer than the number of placeholders.
	Strict bool
}

// Renderer renders templates with a fixed set of Options. It holds no state
// between calls and is safe for concurrent use.
type Renderer struct {
	opts Options
}

// New returns a Renderer using opts.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the options the renderer was created with.
func (r *Renderer) Options() Options { return r.opts }

// Render binds args to the placeholders of template, resolves conditional
// blocks and normalizes quoting. No output is produced on error.
func (r *Renderer) Render(template string, args ...any) (string, error) {
	segs, err := scan(template)
	if err != nil {
		return "", err
	}
	frags, err := bind(segs, args, r.opts)
	if err != nil {
		return "", err
	}
	query, err := resolveBlocks(frags)
	if err != nil {
		return "", err
	}
	return NormalizeQuotes(query), nil
}

// MustRender is like Render but panics on error.
func (r *Renderer) MustRender(template string, args ...any) string {
	q, err := r.Render(template, args...)
	if err != nil {
		panic(err)
	}
	return q
}

var defaultRenderer = New(Options{})

// Render renders template with the default options.
func Render(template string, args ...any) (string, error) {
	return defaultRenderer.Render(template, args...)
}

// MustRender renders template with the default options and panics on error.
func MustRender(template string, args ...any) string {
	return defaultRenderer.MustRender(template, args...)
}
