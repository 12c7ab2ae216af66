package testutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var emptyElement = regexp.MustCompile(`<[\w.-]+(?:\s[^<>]*)?/>|<([\w.-]+)(?:\s[^<>]*[^/<>])?\s*>\s*</([\w.-]+)\s*>`)

// RequireXMLEqual compares two documents line by line and prints a diff on failure.
func RequireXMLEqual(t testing.TB, want, got string) {
	t.Helper()

	if diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")); diff != "" {
		t.Fatalf("documents mismatch (-want +got):\n%s\ngot:\n%s", diff, got)
	}
}

// RequireNoEmptyElements fails if the document contains an element
// without content, attributes notwithstanding.
func RequireNoEmptyElements(t testing.TB, doc string) {
	t.Helper()

	for _, m := range emptyElement.FindAllStringSubmatch(doc, -1) {
		if m[1] == m[2] {
			t.Fatalf("unexpected empty element %q in:\n%s", m[0], doc)
		}
	}
}
