package lint

import "strings"

// action is the per-line strategy shared by lint and format mode. The
// traversal, classification, and structural tracking are identical in
// both modes; only what happens to each classified line differs.
type action interface {
	visit(lineNum int, c Classified, st State)
}

// run walks lines in order through the classifier and tracker, handing
// each classified line to the action. Lines carry their original
// terminators.
func run(lines []string, act action) {
	tr := &tracker{}
	for i, raw := range lines {
		content, eol := splitEOL(raw)
		c := Classify(content)
		c.EOL = eol

		st := tr.before(&c)
		act.visit(i+1, c, st)
		tr.after(c)
	}
}

// splitEOL separates a line's content from its terminator.
func splitEOL(line string) (content, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// SplitLines splits file content into lines, preserving each line's
// terminator. A file without a trailing newline yields a final line
// with no terminator. Empty content yields no lines.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, string(content[start:i+1]))
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, string(content[start:]))
	}
	return lines
}
