package commands

import "testing"

func TestTruncateString(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
	}
	for _, c := range cases {
		if got := truncateString(c.in, c.maxLen); got != c.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}
}
