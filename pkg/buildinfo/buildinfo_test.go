package buildinfo

import (
	"strings"
	"testing"
)

func TestStringIncludesAllFields(t *testing.T) {
	s := String()
	for _, want := range []string{Version, BuildDate, GitCommit} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
