package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/LenatThomas/Resume-Handler/internal/models"
)

// ResumeProcessor runs one uploaded document through text extraction, field
// extraction, and the sheet sink, and reports the terminal status. It never
// formats user-facing text; the responder does that.
type ResumeProcessor interface {
	Process(ctx context.Context, data []byte, format models.DocFormat) *models.Status
}

type resumeProcessor struct {
	parser    DocumentParser
	extractor Extractor
	sink      SheetSink
}

func NewResumeProcessor(parser DocumentParser, extractor Extractor, sink SheetSink) ResumeProcessor {
	return &resumeProcessor{
		parser:    parser,
		extractor: extractor,
		sink:      sink,
	}
}

// Process implements ResumeProcessor.
func (r *resumeProcessor) Process(ctx context.Context, data []byte, format models.DocFormat) *models.Status {
	var (
		text string
		err  error
	)
	switch format {
	case models.FormatPDF:
		text, err = r.parser.ExtractPDF(data)
	case models.FormatDocx:
		text, err = r.parser.ExtractDocx(data)
	default:
		return models.Failed(models.ErrUnsupported, fmt.Sprintf("unsupported document format %q", format))
	}
	if err != nil {
		return models.Failed(models.ErrLoad, err.Error())
	}

	resume, err := r.extractor.Extract(ctx, text)
	if err != nil {
		var extractErr *ExtractionError
		if errors.As(err, &extractErr) {
			return models.Failed(models.ErrExtract, extractErr.Raw)
		}
		return models.Failed(models.ErrExtract, err.Error())
	}

	if !resume.Valid {
		return models.Skipped(resume, "document is not a resume")
	}

	saved := true
	if err := r.sink.AppendResume(ctx, resume); err != nil {
		// Persistence failure stays internal; the user still gets the
		// extracted fields in the reply.
		log.Printf("⚠️  Failed to save resume to sheet: %v", err)
		saved = false
	}

	return models.Succeeded(resume, saved)
}
