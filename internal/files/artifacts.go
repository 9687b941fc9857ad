package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ArtifactInfo describes one generated export on disk.
type ArtifactInfo struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
}

// ArtifactRegistry lists and resolves generated exports under the exports
// directory. Only the known report extensions are surfaced.
type ArtifactRegistry struct {
	dir string
}

// NewArtifactRegistry creates a registry over the exports directory.
func NewArtifactRegistry(dir string) *ArtifactRegistry {
	return &ArtifactRegistry{dir: dir}
}

// exportExtensions are the artifact types the registry surfaces
var exportExtensions = map[string]string{
	".csv":  "csv",
	".json": "json",
	".xlsx": "xlsx",
}

// List returns the artifacts in the exports directory, newest first.
func (r *ArtifactRegistry) List() ([]ArtifactInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read exports directory: %w", err)
	}

	var artifacts []ArtifactInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := exportExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, ArtifactInfo{
			Filename:  entry.Name(),
			Size:      info.Size(),
			Format:    format,
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].CreatedAt.After(artifacts[j].CreatedAt)
	})
	return artifacts, nil
}

// Resolve maps an artifact filename to its full path. Path separators are
// rejected so downloads cannot escape the exports directory.
func (r *ArtifactRegistry) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("invalid artifact name: %q", filename)
	}
	if _, ok := exportExtensions[strings.ToLower(filepath.Ext(filename))]; !ok {
		return "", fmt.Errorf("invalid artifact name: %q", filename)
	}

	fullPath := filepath.Join(r.dir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		return "", fmt.Errorf("artifact not found: %w", err)
	}
	return fullPath, nil
}
