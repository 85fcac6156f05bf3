package sqltemplate

type segmentKind int

const (
	segText segmentKind = iota
	segPlaceholder
	segOpen
	segClose
)

// segment is one piece of a scanned template.
type segment struct {
	kind        segmentKind
	text        string
	placeholder Placeholder
	offset      int
}

// scan splits a template into text, placeholder and block delimiter
// segments in a single pass.
//
// Text between single quotes is a literal: placeholder markers and braces
// inside it are kept as plain text. Blocks cannot nest.
func scan(template string) ([]segment, error) {
	var (
		segs      []segment
		start     int
		inLiteral bool
		openAt    = -1
	)

	flush := func(end int) {
		if end > start {
			segs = append(segs, segment{kind: segText, text: template[start:end], offset: start})
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		if inLiteral {
			if c == '\'' {
				inLiteral = false
			}
			i++
			continue
		}

		switch c {
		case '\'':
			inLiteral = true
		case Marker:
			flush(i)
			var next byte
			if i+1 < len(template) {
				next = template[i+1]
			}
			p, n := placeholderFor(next)
			segs = append(segs, segment{kind: segPlaceholder, placeholder: p, offset: i})
			i += n
			start = i
			continue
		case '{':
			if openAt >= 0 {
				return nil, NewErrNestedBlock(i)
			}
			flush(i)
			segs = append(segs, segment{kind: segOpen, offset: i})
			openAt = i
			start = i + 1
		case '}':
			if openAt < 0 {
				return nil, NewErrUnbalancedBlock(i)
			}
			flush(i)
			segs = append(segs, segment{kind: segClose, offset: i})
			openAt = -1
			start = i + 1
		}
		i++
	}

	if openAt >= 0 {
		return nil, NewErrUnbalancedBlock(openAt)
	}
	flush(len(template))
	return segs, nil
}
