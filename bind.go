package sqltemplate

// fragment is a segment after binding: placeholders have been replaced by
// formatted text.
type fragment struct {
	kind segmentKind
	text string
	// omit is set when the bound value holds the omit sentinel.
	omit bool
	arg  int
}

// bind substitutes every placeholder segment with the formatted text of the
// next argument. It stops at the first argument that is missing, has an
// unsupported type or does not fit its placeholder.
func bind(segs []segment, args []any, opts Options) ([]fragment, error) {
	frags := make([]fragment, 0, len(segs))
	next := 0
	for _, seg := range segs {
		if seg.kind != segPlaceholder {
			frags = append(frags, fragment{kind: seg.kind, text: seg.text, arg: -1})
			continue
		}

		if next >= len(args) {
			return nil, NewErrMissingArgument(next, len(args))
		}
		v, err := ValueOf(args[next])
		if err != nil {
			return nil, err
		}
		if !Accepts(seg.placeholder, v.Kind()) {
			return nil, NewErrIncompatibleType(seg.placeholder, v.Kind(), next)
		}
		text, err := format(v, opts.Booleans)
		if err != nil {
			return nil, err
		}
		frags = append(frags, fragment{kind: segText, text: text, omit: containsOmit(v), arg: next})
		next++
	}

	if opts.Strict && next < len(args) {
		return nil, NewErrExtraArguments(next, len(args))
	}
	return frags, nil
}
