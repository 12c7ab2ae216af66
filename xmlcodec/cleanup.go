package xmlcodec

import (
	"bytes"
	"regexp"
)

var (
	// an element containing only whitespace, with or without attributes,
	// along with the line break and indentation preceding it
	emptyPair = regexp.MustCompile(`(?:\n[ \t]*)?<([\w.-]+)(?:\s[^<>]*[^/<>])?\s*>\s*</([\w.-]+)\s*>`)
	// a self-closing element
	selfClosing = regexp.MustCompile(`(?:\n[ \t]*)?<[\w.-]+(?:\s[^<>]*)?/>`)
)

// removeEmptyElements strips every element that has no content, whether or not it
// carries attributes. Removing an element can leave its parent empty, so the document
// is scanned again until nothing changes.
func removeEmptyElements(doc []byte) []byte {
	for {
		out := selfClosing.ReplaceAll(removeEmptyPairs(doc), nil)
		if bytes.Equal(out, doc) {
			return out
		}
		doc = out
	}
}

func removeEmptyPairs(doc []byte) []byte {
	matches := emptyPair.FindAllSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc
	}

	out := make([]byte, 0, len(doc))
	var last int
	for _, m := range matches {
		open, closing := doc[m[2]:m[3]], doc[m[4]:m[5]]
		if !bytes.Equal(open, closing) {
			continue
		}

		out = append(out, doc[last:m[0]]...)
		last = m[1]
	}

	return append(out, doc[last:]...)
}
