package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedResumeUnmarshal(t *testing.T) {
	t.Run("flat string fields", func(t *testing.T) {
		raw := `{
			"valid_resume": true,
			"name": "John Doe",
			"email": "john@example.com",
			"phone": "+15551234567",
			"education": "BSc Computer Science, MIT",
			"experience": "Data Analyst at Acme (2019-2024)",
			"skills": "Python, SQL"
		}`

		var resume ExtractedResume
		require.NoError(t, json.Unmarshal([]byte(raw), &resume))

		assert.True(t, resume.Valid)
		assert.Equal(t, "John Doe", resume.Name)
		assert.Equal(t, "BSc Computer Science, MIT", resume.Education.String())
		assert.Equal(t, "Python, SQL", resume.Skills.String())
	})

	t.Run("nested fields coerce to text", func(t *testing.T) {
		raw := `{
			"valid_resume": true,
			"name": "Jane",
			"education": [{"degree": "MSc", "university": "ETH"}],
			"experience": {"company": "Acme", "role": "Engineer"},
			"skills": ["Go", "Kubernetes"]
		}`

		var resume ExtractedResume
		require.NoError(t, json.Unmarshal([]byte(raw), &resume))

		assert.Equal(t, `[{"degree":"MSc","university":"ETH"}]`, resume.Education.String())
		assert.Equal(t, `{"company":"Acme","role":"Engineer"}`, resume.Experience.String())
		assert.Equal(t, `["Go","Kubernetes"]`, resume.Skills.String())
	})

	t.Run("null and missing fields are empty", func(t *testing.T) {
		raw := `{"valid_resume": false, "education": null}`

		var resume ExtractedResume
		require.NoError(t, json.Unmarshal([]byte(raw), &resume))

		assert.False(t, resume.Valid)
		assert.Empty(t, resume.Education.String())
		assert.Empty(t, resume.Skills.String())
	})
}

func TestTextValueMarshal(t *testing.T) {
	b, err := json.Marshal(Text("Go, SQL"))
	require.NoError(t, err)
	assert.Equal(t, `"Go, SQL"`, string(b))
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		contentType string
		format      DocFormat
		ok          bool
	}{
		{"application/pdf", FormatPDF, true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDocx, true},
		{"application/msword", FormatDocx, true},
		{"application/docx", FormatDocx, true},
		{"image/jpeg", "", false},
		{"text/plain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		format, ok := FormatFor(tt.contentType)
		assert.Equal(t, tt.ok, ok, tt.contentType)
		assert.Equal(t, tt.format, format, tt.contentType)
	}
}
