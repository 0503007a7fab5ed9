package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeModelJSON decodes a JSON object out of raw model output. The model is
// asked for bare JSON but may wrap it in markdown fences or surrounding
// prose, so the fallback chain is: strip fences, strict parse, then parse the
// outermost brace-delimited substring.
func DecodeModelJSON(raw string, target any) error {
	text := stripFences(raw)

	if err := json.Unmarshal([]byte(text), target); err == nil {
		return nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return fmt.Errorf("no JSON object in model response")
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), target); err != nil {
		return fmt.Errorf("failed to unmarshal model response: %w", err)
	}
	return nil
}

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
