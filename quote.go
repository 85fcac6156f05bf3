package sqltemplate

import "regexp"

var assignedLiteral = regexp.MustCompile("=(\\s*)`([^`]*)`")

// NormalizeQuotes rewrites backtick-quoted text that directly follows an
// equals sign into single quotes. Backtick-quoted text anywhere else is an
// identifier and is left alone.
func NormalizeQuotes(query string) string {
	return assignedLiteral.ReplaceAllString(query, "=${1}'${2}'")
}
