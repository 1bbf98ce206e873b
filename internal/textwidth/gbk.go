// Package textwidth measures terminal column widths for mixed CJK and ASCII
// labels such as lunar day names.
package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the widest line of s in monospace columns. A Chinese
// character counts as two columns, measured through its GBK encoding.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// PadCenter surrounds s with spaces so it is centred in width columns,
// putting any odd column on the right.
func PadCenter(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}

// Truncate cuts s to at most width columns without splitting a wide rune.
func Truncate(s string, width int) string {
	if StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lineWidth(string(r))
		if used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}

func lineWidth(s string) int {
	if s == "" {
		return 0
	}
	clean := ansiRegexp.ReplaceAllString(s, "")
	encoded, _, err := transform.String(simplifiedchinese.GBK.NewEncoder(), clean)
	if err != nil {
		return fallbackWidth(clean)
	}
	return len(encoded)
}

func fallbackWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\n' || r == '\r' {
			continue
		}
		if r <= unicode.MaxASCII {
			width++
		} else {
			width += 2
		}
	}
	return width
}
