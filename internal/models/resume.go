package models

import (
	"bytes"
	"encoding/json"
)

// SheetHeader is the canonical first row of the intake spreadsheet.
var SheetHeader = []string{
	"Timestamp", "Full Name", "Email",
	"Phone Number", "Education", "Experience", "Skills",
}

// ExtractedResume is the structured record the extraction model produces for
// one uploaded document. Valid is false for documents that are not resumes
// (cover letters included); only valid records are ever written to the sheet.
type ExtractedResume struct {
	Valid      bool      `json:"valid_resume"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Education  TextValue `json:"education"`
	Experience TextValue `json:"experience"`
	Skills     TextValue `json:"skills"`
}

// TextValue holds a field the model may return either as a plain string or as
// a nested JSON structure. The shape is not contractually fixed; whatever
// arrives is coerced to text for the sheet row.
type TextValue struct {
	text string
}

// Text wraps a plain string as a TextValue.
func Text(s string) TextValue {
	return TextValue{text: s}
}

func (t TextValue) String() string {
	return t.text
}

func (t TextValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.text)
}

func (t *TextValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.text = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.text = s
		return nil
	}

	// Nested structure: keep its compact JSON rendering as the text.
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	t.text = buf.String()
	return nil
}
