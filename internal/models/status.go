package models

import "encoding/json"

type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusSkipped StatusKind = "skipped"
	StatusFailed  StatusKind = "failed"
)

// ErrKind names the stage a resume upload failed at.
type ErrKind string

const (
	ErrFetch       ErrKind = "fetch_failed"
	ErrUnsupported ErrKind = "unsupported_type"
	ErrLoad        ErrKind = "load_failed"
	ErrExtract     ErrKind = "extraction_failed"
)

// Status is the terminal result of one resume upload, handed to the chat
// responder to ground its reply. A nil *Status means no upload happened this
// turn.
type Status struct {
	Kind   StatusKind       `json:"status"`
	Resume *ExtractedResume `json:"resume,omitempty"`
	Saved  bool             `json:"saved,omitempty"`
	Reason string           `json:"reason,omitempty"`
	Error  ErrKind          `json:"error,omitempty"`
	Detail string           `json:"detail,omitempty"`
}

// Succeeded reports a valid resume; saved is false when the sheet write did
// not go through.
func Succeeded(resume *ExtractedResume, saved bool) *Status {
	return &Status{Kind: StatusSuccess, Resume: resume, Saved: saved}
}

// Skipped reports a document the model flagged as not a resume. The record is
// never persisted.
func Skipped(resume *ExtractedResume, reason string) *Status {
	return &Status{Kind: StatusSkipped, Resume: resume, Reason: reason}
}

// Failed reports a terminal error at the named stage.
func Failed(kind ErrKind, detail string) *Status {
	return &Status{Kind: StatusFailed, Error: kind, Detail: detail}
}

// Render returns the JSON form of the status embedded in chat prompts.
func (s *Status) Render() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return string(s.Kind)
	}
	return string(b)
}
