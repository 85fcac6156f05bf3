package sqltemplate

import "strings"

// resolveBlocks joins bound fragments into a single string. A conditional
// block holding an omitted value is dropped together with its braces; any
// other block keeps its content and loses only the braces.
func resolveBlocks(frags []fragment) (string, error) {
	var (
		b       strings.Builder
		block   []fragment
		inBlock bool
	)

	for _, f := range frags {
		switch f.kind {
		case segOpen:
			inBlock = true
			block = block[:0]
		case segClose:
			inBlock = false
			if blockOmitted(block) {
				continue
			}
			for _, bf := range block {
				b.WriteString(bf.text)
			}
		default:
			if inBlock {
				block = append(block, f)
				continue
			}
			if f.omit {
				return "", NewErrOmitOutsideBlock(f.arg)
			}
			b.WriteString(f.text)
		}
	}
	return b.String(), nil
}

func blockOmitted(block []fragment) bool {
	for _, f := range block {
		if f.omit {
			return true
		}
	}
	return false
}
