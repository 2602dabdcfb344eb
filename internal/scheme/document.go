package scheme

import "strings"

// Document is a configuration file snapshot: the full text for parsing and
// the same content split into lines for scanning and substitution.
type Document struct {
	Text  string
	Lines []string
}

// NewDocument builds a Document from raw file content.
func NewDocument(content []byte) Document {
	text := string(content)

	return Document{Text: text, Lines: SplitLines(text)}
}

// SplitLines splits text into lines without terminators. Both "\n" and "\r\n"
// end a line. A final terminator does not produce a trailing empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// JoinLines reassembles lines with "\n" separators and a single trailing
// newline.
func JoinLines(lines []string) []byte {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return []byte(b.String())
}
