package export

import (
	"strings"
)

// Document is a generated export artifact ready to be streamed to a client.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CSV builds a CSV document. Every field, header included, is double-quoted
// regardless of content; embedded quotes are doubled so the output re-parses
// cleanly. Downstream consumers of these reports expect the fully quoted
// form, so quoting must not be left to a minimal-quoting writer. Rows are
// joined by newline; there is no terminator after the last row.
func CSV(filename string, header []string, rows [][]string) Document {
	var b strings.Builder

	writeRow := func(fields []string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}

	return Document{
		Filename:    filename,
		ContentType: "text/csv",
		Content:     []byte(b.String()),
	}
}
