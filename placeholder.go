package sqltemplate

// Placeholder is the kind of a placeholder token in a template.
type Placeholder int

const (
	Generic    Placeholder = iota // ?
	Integer                       // ?d
	FloatKind                     // ?f
	Array                         // ?a
	Identifier                    // ?#
)

// Marker starts every placeholder token.
const Marker = '?'

var placeholderSpellings = [...]string{
	Generic:    "?",
	Integer:    "?d",
	FloatKind:  "?f",
	Array:      "?a",
	Identifier: "?#",
}

func (p Placeholder) String() string {
	if p < 0 || int(p) >= len(placeholderSpellings) {
		return "?"
	}
	return placeholderSpellings[p]
}

// placeholderFor returns the placeholder spelled by the marker followed by
// next. next is zero when the marker ends the template.
func placeholderFor(next byte) (Placeholder, int) {
	switch next {
	case 'd':
		return Integer, 2
	case 'f':
		return FloatKind, 2
	case 'a':
		return Array, 2
	case '#':
		return Identifier, 2
	}
	return Generic, 1
}

// acceptance is the placeholder × value kind matrix.
var acceptance = [...][KindOmit + 1]bool{
	Generic: {
		KindNull: true, KindBool: true, KindInt: true, KindFloat: true,
		KindString: true, KindOmit: true,
	},
	Integer: {
		KindNull: true, KindBool: true, KindInt: true, KindOmit: true,
	},
	FloatKind: {
		KindNull: true, KindFloat: true,
	},
	Array: {
		KindList: true, KindAssoc: true,
	},
	Identifier: {
		KindNull: true, KindBool: true, KindInt: true, KindFloat: true,
		KindString: true, KindList: true, KindAssoc: true, KindOmit: true,
	},
}

// Accepts reports whether a value of kind k may be bound to placeholder p.
func Accepts(p Placeholder, k Kind) bool {
	if p < 0 || int(p) >= len(acceptance) || k < 0 || k > KindOmit {
		return false
	}
	return acceptance[p][k]
}
