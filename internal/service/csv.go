package service

import (
	"strings"
	"time"

	"github.com/formsmith/formsmith/internal/dto"
	"github.com/formsmith/formsmith/internal/model"
)

// The export format quotes every cell, header included, and doubles embedded
// quotes. encoding/csv only quotes on demand, so the rows are built by hand.

type exportRow struct {
	response *model.Response
	answers  map[string]model.AnswerValue
}

func renderCSV(fields []dto.FieldDTO, rows []exportRow) []byte {
	var b strings.Builder

	header := make([]string, 0, 3+len(fields))
	header = append(header, "Submitted At", "Name", "Email")
	for _, f := range fields {
		header = append(header, f.Label)
	}
	writeCSVRow(&b, header)

	for _, row := range rows {
		cells := make([]string, 0, 3+len(fields))
		cells = append(cells,
			row.response.SubmittedAt.Format(time.RFC3339),
			deref(row.response.SubmitterName),
			deref(row.response.SubmitterEmail),
		)
		for _, f := range fields {
			if answer, ok := row.answers[f.ID]; ok {
				cells = append(cells, answer.CSVCell())
			} else {
				cells = append(cells, "")
			}
		}
		writeCSVRow(&b, cells)
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// exportFilename turns a form title into a safe attachment name.
func exportFilename(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, title)
	if sanitized == "" {
		sanitized = "form"
	}
	return sanitized + "_responses.csv"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
