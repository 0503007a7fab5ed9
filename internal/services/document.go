package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentParser turns raw document bytes into plain text. It is a pure
// transform; the caller decides which format applies.
type DocumentParser interface {
	ExtractPDF(data []byte) (string, error)
	ExtractDocx(data []byte) (string, error)
}

type documentParser struct{}

func NewDocumentParser() DocumentParser {
	return &documentParser{}
}

// ExtractPDF implements DocumentParser. Pages are concatenated in order; a
// page with no extractable text contributes nothing rather than failing the
// document.
func (p *documentParser) ExtractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

// ExtractDocx implements DocumentParser. Paragraph texts are joined with
// newlines in document order.
func (p *documentParser) ExtractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	return docParagraphs(doc.Editable().GetContent())
}

// docParagraphs walks document.xml collecting the text runs of each w:p
// element.
func docParagraphs(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				if !inParagraph {
					continue
				}
				var text string
				if err := decoder.DecodeElement(&text, &el); err == nil {
					current.WriteString(text)
				}
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, current.String())
				inParagraph = false
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
