package sqltemplate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BoolStyle selects how booleans are written.
type BoolStyle int

const (
	// BoolNumeric writes true as 1 and false as 0.
	BoolNumeric BoolStyle = iota
	// BoolLegacy writes true as 1 and false as an empty string.
	BoolLegacy
)

func (s BoolStyle) String() string {
	if s == BoolLegacy {
		return "legacy"
	}
	return "numeric"
}

// ParseBoolStyle parses "numeric" or "legacy". An empty name selects
// BoolNumeric.
func ParseBoolStyle(name string) (BoolStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "numeric":
		return BoolNumeric, nil
	case "legacy":
		return BoolLegacy, nil
	}
	return BoolNumeric, fmt.Errorf("sqltemplate: unknown boolean style %q", name)
}

// omitMarker is written in place of an omitted value. It only ever appears
// inside a block that the resolver deletes.
const omitMarker = "\x00omit\x00"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
	"`", "&#096;",
)

func quote(s string) string {
	return "`" + escaper.Replace(s) + "`"
}

func boolText(b bool, style BoolStyle) string {
	switch {
	case b:
		return "1"
	case style == BoolLegacy:
		return ""
	default:
		return "0"
	}
}

func floatText(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", NewErrUndefinedType("float " + strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// format maps a value to its textual form.
func format(v Value, style BoolStyle) (string, error) {
	switch v.kind {
	case KindNull:
		return "NULL", nil
	case KindBool:
		return boolText(v.b, style), nil
	case KindInt:
		return strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return floatText(v.f)
	case KindString:
		return quote(v.s), nil
	case KindList:
		return formatList(v.elems, style)
	case KindAssoc:
		return formatAssoc(v.pairs, style)
	case KindOmit:
		return omitMarker, nil
	}
	return "", NewErrUndefinedType(v.kind.String())
}

func formatList(elems []Value, style BoolStyle) (string, error) {
	parts := make([]string, len(elems))
	for i, e := range elems {
		switch e.kind {
		case KindInt:
			parts[i] = strconv.FormatInt(e.i, 10)
		case KindNull:
			parts[i] = "NULL"
		case KindString:
			parts[i] = quote(e.s)
		case KindBool:
			parts[i] = quote(boolText(e.b, style))
		case KindFloat:
			s, err := floatText(e.f)
			if err != nil {
				return "", err
			}
			parts[i] = quote(s)
		default:
			return "", NewErrUndefinedType(e.kind.String() + " in list")
		}
	}
	return strings.Join(parts, ", "), nil
}

func formatAssoc(pairs []Pair, style BoolStyle) (string, error) {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		s, err := format(p.Value, style)
		if err != nil {
			return "", err
		}
		parts[i] = quote(p.Key) + " = " + s
	}
	return strings.Join(parts, ", "), nil
}

// containsOmit reports whether v is, or holds anywhere inside it, the omit
// sentinel.
func containsOmit(v Value) bool {
	switch v.kind {
	case KindOmit:
		return true
	case KindList:
		for _, e := range v.elems {
			if containsOmit(e) {
				return true
			}
		}
	case KindAssoc:
		for _, p := range v.pairs {
			if containsOmit(p.Value) {
				return true
			}
		}
	}
	return false
}
