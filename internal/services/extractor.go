package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/LenatThomas/Resume-Handler/internal/models"
)

// Extractor sends resume text to the language model and parses the structured
// record out of its response. It holds no conversational history and never
// retries.
type Extractor interface {
	Extract(ctx context.Context, resumeText string) (*models.ExtractedResume, error)
}

// ExtractionError reports a model response that could not be recovered as
// JSON. Raw carries the full response text for the status payload. A
// successful call that returned valid_resume=false is not an ExtractionError.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("invalid JSON in model response: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

type extractor struct {
	client    *genai.Client
	modelName string
	config    *genai.GenerateContentConfig
}

func NewExtractor(client *genai.Client, modelName string) Extractor {
	temperature := float32(0.1)

	return &extractor{
		client:    client,
		modelName: modelName,
		config: &genai.GenerateContentConfig{
			Temperature:       &temperature,
			MaxOutputTokens:   2048,
			SystemInstruction: genai.NewContentFromText(NewPromptBuilder().ExtractionInstruction(), genai.RoleUser),
		},
	}
}

// Extract implements Extractor.
func (e *extractor) Extract(ctx context.Context, resumeText string) (*models.ExtractedResume, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.modelName, genai.Text(resumeText), e.config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate extraction: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty extraction response")
	}

	var resume models.ExtractedResume
	if err := DecodeModelJSON(raw, &resume); err != nil {
		return nil, &ExtractionError{Raw: raw, Err: err}
	}

	return &resume, nil
}
