package emitter

import (
	"slices"
	"strings"
)

// splicer rebuilds a file from its original lines with text inserted before chosen lines.
// Line indexes always refer to the original content, so insertions never shift each other.
type splicer struct {
	lines   []string
	newLine string
	before  map[int][]string
}

func newSplicer(content, newLine string) *splicer {
	return &splicer{
		lines:   strings.Split(content, newLine),
		newLine: newLine,
		before:  make(map[int][]string),
	}
}

// line returns the original line at index i
func (s *splicer) line(i int) (string, bool) {
	if i < 0 || i >= len(s.lines) {
		return "", false
	}
	return s.lines[i], true
}

// insertBefore queues text ahead of line i. An index past the last line appends to the file.
func (s *splicer) insertBefore(i int, text string) {
	s.before[i] = append(s.before[i], text)
}

func (s *splicer) String() string {
	var b strings.Builder
	last := len(s.lines) - 1
	for i, line := range s.lines {
		for _, text := range s.before[i] {
			b.WriteString(text)
		}
		b.WriteString(line)
		if i < last {
			b.WriteString(s.newLine)
		}
	}

	var tail []int
	for i := range s.before {
		if i > last {
			tail = append(tail, i)
		}
	}
	if len(tail) > 0 {
		slices.Sort(tail)
		b.WriteString(s.newLine)
		for _, i := range tail {
			for _, text := range s.before[i] {
				b.WriteString(text)
			}
		}
	}
	return b.String()
}
