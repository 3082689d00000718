// Package corpus supplies labeled email records for training, either from
// the built-in sample set or from a JSON file.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
)

// SampleSource serves the built-in labeled corpus.
type SampleSource struct{}

// NewSampleSource creates a source over the built-in corpus.
func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

// Emails returns the sample corpus in its fixed order.
func (s *SampleSource) Emails(ctx context.Context) ([]core.EmailRecord, error) {
	return Sample(), nil
}

// jsonRecord is the on-disk record shape: the label travels under "type".
type jsonRecord struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Sender  string `json:"sender"`
	Type    string `json:"type"`
}

// FileSource reads a JSON array of labeled email records.
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a source over the given JSON file.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Emails loads and validates the records, preserving file order.
func (s *FileSource) Emails(ctx context.Context) ([]core.EmailRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var records []jsonRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}

	emails := make([]core.EmailRecord, 0, len(records))
	for i, rec := range records {
		label := core.Label(rec.Type)
		if label.Index() < 0 {
			return nil, fmt.Errorf("record %d has unknown label %q", i, rec.Type)
		}
		emails = append(emails, core.EmailRecord{
			Subject: rec.Subject,
			Body:    rec.Body,
			Sender:  rec.Sender,
			Label:   label,
		})
	}

	s.logger.Info("Loaded corpus from file",
		zap.String("path", s.path),
		zap.Int("records", len(emails)))
	return emails, nil
}

// WriteJSON exports a corpus as a JSON array in the same shape FileSource
// reads, for inspection alongside the dataset snapshot.
func WriteJSON(path string, emails []core.EmailRecord) error {
	records := make([]jsonRecord, len(emails))
	for i, email := range emails {
		records[i] = jsonRecord{
			Subject: email.Subject,
			Body:    email.Body,
			Sender:  email.Sender,
			Type:    string(email.Label),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &core.PersistenceError{Artifact: "corpus export", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &core.PersistenceError{Artifact: "corpus export", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &core.PersistenceError{Artifact: "corpus export", Err: err}
	}
	return nil
}
