package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Artifact is one finished export: content plus the metadata needed to serve
// it as a download. It exists only for the duration of the export call and
// the file it is persisted to.
type Artifact struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	MIME      string    `json:"mime_type"`
	Content   []byte    `json:"-"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	// BOMPrefix prepends a UTF-8 BOM on save so Excel opens the CSV with
	// the right encoding. Ignored for non-text content.
	BOMPrefix bool `json:"-"`
}

// NewArtifact builds an artifact with a fresh ID around serialized content.
func NewArtifact(filename, mime string, content []byte) *Artifact {
	return &Artifact{
		ID:        uuid.New(),
		Filename:  filename,
		MIME:      mime,
		Content:   content,
		Size:      int64(len(content)),
		CreatedAt: time.Now(),
	}
}

// Sink persists artifacts under a single exports directory. It is the
// server-side counterpart of the dashboard's browser download trigger: the
// file handle is acquired, written and always released within one call.
type Sink struct {
	dir string
}

// NewSink creates a sink rooted at dir.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Dir returns the directory artifacts are saved under.
func (s *Sink) Dir() string {
	return s.dir
}

// Save writes the artifact to the exports directory and returns the full
// path. The handle is closed on every path out of the function, including
// write failures, so no descriptor leaks when the disk fills up mid-write.
func (s *Sink) Save(artifact *Artifact) (string, error) {
	if artifact == nil || len(artifact.Content) == 0 {
		return "", fmt.Errorf("save artifact: %w", ErrNoData)
	}

	fullPath := filepath.Join(s.dir, filepath.Base(artifact.Filename))

	slog.Info("Saving export artifact",
		slog.String("artifact_id", artifact.ID.String()),
		slog.String("filename", artifact.Filename),
		slog.Int64("size", artifact.Size))

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if artifact.BOMPrefix {
		if _, err := file.Write(utf8BOM); err != nil {
			return "", fmt.Errorf("failed to write BOM: %w", err)
		}
	}
	if _, err := file.Write(artifact.Content); err != nil {
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := file.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync file: %w", err)
	}

	return fullPath, nil
}
