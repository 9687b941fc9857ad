package exporter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Document is the envelope every JSON export is wrapped in.
type Document struct {
	Metadata     map[string]any `json:"metadata,omitempty"`
	Data         []Record       `json:"data"`
	ExportedAt   string         `json:"exported_at"`
	TotalRecords int            `json:"total_records"`
}

// MarshalJSON wraps the records and optional metadata into a pretty-printed
// report document stamped with the export instant. The indent width comes
// from Options.Indent; zero disables pretty-printing.
func MarshalJSON(records []Record, opts Options) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("marshal json: %w", ErrNoData)
	}

	doc := Document{
		Metadata:     opts.Metadata,
		Data:         records,
		ExportedAt:   opts.now().Format(time.RFC3339),
		TotalRecords: len(records),
	}

	var (
		content []byte
		err     error
	)
	if opts.Indent > 0 {
		content, err = json.MarshalIndent(doc, "", strings.Repeat(" ", opts.Indent))
	} else {
		content, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return content, nil
}
