package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocParagraphs(t *testing.T) {
	t.Run("paragraphs join with newline", func(t *testing.T) {
		content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
			<w:body>
				<w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
				<w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
				<w:p><w:r><w:t>Skills: Go</w:t></w:r></w:p>
			</w:body>
		</w:document>`

		text, err := docParagraphs(content)
		require.NoError(t, err)
		assert.Equal(t, "John Doe\nSenior Engineer\nSkills: Go", text)
	})

	t.Run("empty paragraph contributes empty line", func(t *testing.T) {
		content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
			<w:body>
				<w:p><w:r><w:t>first</w:t></w:r></w:p>
				<w:p></w:p>
				<w:p><w:r><w:t>last</w:t></w:r></w:p>
			</w:body>
		</w:document>`

		text, err := docParagraphs(content)
		require.NoError(t, err)
		assert.Equal(t, "first\n\nlast", text)
	})

	t.Run("no paragraphs yields empty text", func(t *testing.T) {
		text, err := docParagraphs(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`)
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("malformed XML is an error", func(t *testing.T) {
		_, err := docParagraphs(`<w:document><w:p>`)
		assert.Error(t, err)
	})
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	parser := NewDocumentParser()

	_, err := parser.ExtractPDF([]byte("this is not a pdf"))
	assert.Error(t, err)
}

func TestExtractDocxRejectsGarbage(t *testing.T) {
	parser := NewDocumentParser()

	_, err := parser.ExtractDocx([]byte("this is not a zip archive"))
	assert.Error(t, err)
}
