package models

import "strings"

// DocFormat is a supported resume document format.
type DocFormat string

const (
	FormatPDF  DocFormat = "pdf"
	FormatDocx DocFormat = "docx"
)

// FormatFor maps a declared media content type onto a supported document
// format. ok is false for anything that is not a PDF or Word document; the
// parser is never asked to guess.
func FormatFor(contentType string) (DocFormat, bool) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "pdf"):
		return FormatPDF, true
	case strings.Contains(ct, "word"), strings.Contains(ct, "docx"):
		return FormatDocx, true
	}
	return "", false
}
