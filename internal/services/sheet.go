package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/LenatThomas/Resume-Handler/internal/models"
)

// ErrSinkDisabled reports an operation on a sink that never initialized. The
// caller logs it and moves on; it is never surfaced to the end user.
var ErrSinkDisabled = errors.New("sheet sink not configured")

// SheetSink persists extracted resumes as rows of the intake spreadsheet.
type SheetSink interface {
	Enabled() bool
	EnsureHeaders(ctx context.Context) error
	AppendResume(ctx context.Context, resume *models.ExtractedResume) error
}

type sheetSink struct {
	srv     *sheets.Service
	sheetID string
	now     func() time.Time
}

// NewSheetSink connects to the configured spreadsheet. A missing sheet ID or
// missing credentials yields a disabled sink whose operations report failure
// without reaching the network.
func NewSheetSink(ctx context.Context, sheetID, credsFile, credsJSON string) SheetSink {
	if sheetID == "" {
		log.Println("⚠️  GOOGLE_SHEET_ID not set. Sheet sink disabled.")
		return &sheetSink{}
	}

	var auth option.ClientOption
	switch {
	case fileExists(credsFile):
		auth = option.WithCredentialsFile(credsFile)
	case credsJSON != "":
		auth = option.WithCredentialsJSON([]byte(credsJSON))
	default:
		log.Println("⚠️  Sheet credentials not found. Sheet sink disabled.")
		return &sheetSink{}
	}

	srv, err := sheets.NewService(ctx, auth, option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		log.Printf("⚠️  Failed to connect to sheets: %v. Sheet sink disabled.", err)
		return &sheetSink{}
	}

	return newSheetSink(srv, sheetID)
}

func newSheetSink(srv *sheets.Service, sheetID string) SheetSink {
	return &sheetSink{srv: srv, sheetID: sheetID, now: time.Now}
}

func (s *sheetSink) Enabled() bool {
	return s.srv != nil
}

// EnsureHeaders checks that row 1 of the first worksheet equals the canonical
// header and, when it does not, clears the whole sheet and rewrites it. The
// clear is destructive to any data below row 1 and is logged before it
// happens. With correct headers already in place this performs no write.
func (s *sheetSink) EnsureHeaders(ctx context.Context) error {
	if s.srv == nil {
		return ErrSinkDisabled
	}

	resp, err := s.srv.Spreadsheets.Values.Get(s.sheetID, "1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	if len(resp.Values) > 0 && headerMatches(resp.Values[0]) {
		return nil
	}

	log.Printf("⚠️  Header mismatch on sheet %s. Clearing sheet and rewriting headers.", s.sheetID)

	if _, err := s.srv.Spreadsheets.Values.Clear(s.sheetID, "A:ZZ", &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	header := make([]interface{}, len(models.SheetHeader))
	for i, h := range models.SheetHeader {
		header[i] = h
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{header}}
	if _, err := s.srv.Spreadsheets.Values.Update(s.sheetID, "A1", vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	return nil
}

// AppendResume implements SheetSink. The row is the record flattened into the
// canonical 7-column order with the timestamp taken at call time.
func (s *sheetSink) AppendResume(ctx context.Context, resume *models.ExtractedResume) error {
	if s.srv == nil {
		return ErrSinkDisabled
	}

	row := []interface{}{
		s.now().Format("2006-01-02 15:04:05"),
		resume.Name,
		resume.Email,
		resume.Phone,
		resume.Education.String(),
		resume.Experience.String(),
		resume.Skills.String(),
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.srv.Spreadsheets.Values.Append(s.sheetID, "A1", vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	return nil
}

func headerMatches(row []interface{}) bool {
	if len(row) != len(models.SheetHeader) {
		return false
	}
	for i, cell := range row {
		text, ok := cell.(string)
		if !ok || text != models.SheetHeader[i] {
			return false
		}
	}
	return true
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
