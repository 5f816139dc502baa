package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/awaitly-go/analyzer/internal/source"
)

// FileAdapter persists each key as one JSON file under Dir, keyed by
// SanitizeWorkflowName(key)+".dsl.json".
type FileAdapter struct {
	Dir string
	Cfg source.Config
}

// NewFileAdapter creates a FileAdapter rooted at dir. It does not create
// dir; Set creates it before writing a file.
func NewFileAdapter(dir string) *FileAdapter {
	return &FileAdapter{Dir: dir, Cfg: source.DefaultConfig()}
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeWorkflowName maps a workflow name to a filesystem-safe sidecar
// basename: non [A-Za-z0-9_.-] runs become a single underscore.
func SanitizeWorkflowName(name string) string {
	s := unsafeNameChars.ReplaceAllString(name, "_")
	return strings.Trim(s, "_")
}

func (f *FileAdapter) path(key string) string {
	return filepath.Join(f.Dir, SanitizeWorkflowName(key)+".dsl.json")
}

func (f *FileAdapter) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	data, err := source.ReadFile(ctx, f.path(key), f.Cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return json.RawMessage(data), true, nil
}

func (f *FileAdapter) Set(_ context.Context, key string, value json.RawMessage) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), value, 0o644)
}

func (f *FileAdapter) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := f.Get(ctx, key)
	return ok, err
}

func (f *FileAdapter) Keys(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".dsl.json") {
			keys = append(keys, strings.TrimSuffix(e.Name(), ".dsl.json"))
		}
	}
	return keys, nil
}
