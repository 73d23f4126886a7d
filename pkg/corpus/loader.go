package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Format identifies a corpus file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported corpus extension %q", filepath.Ext(path))
	}
}

// Parse decodes corpus records and builds a Corpus.
func Parse(data []byte, format Format) (*Corpus, error) {
	var records []Record
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown corpus format %q", format)
	}
	return New(records)
}

// Load reads and parses the corpus file at path.
func Load(path string) (*Corpus, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return c, nil
}

// Loader loads a corpus file and optionally hot-reloads it on change.
// Readers always get a complete corpus; a failed reload keeps the previous one.
type Loader struct {
	path string

	mu      sync.RWMutex
	current *Corpus
}

// NewLoader creates a loader for the corpus file at path. Until Load
// succeeds, Current returns an empty corpus.
func NewLoader(path string) *Loader {
	return &Loader{
		path:    path,
		current: Empty(),
	}
}

// Path returns the watched corpus file.
func (l *Loader) Path() string { return l.path }

// Load reads the corpus file and makes it current.
func (l *Loader) Load() (*Corpus, error) {
	c, err := Load(l.path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.current = c
	l.mu.Unlock()

	return c, nil
}

// Current returns the most recently loaded corpus.
func (l *Loader) Current() *Corpus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// WatchAndReload watches the corpus file's directory and reloads on change.
// onReload, if set, is called after every successful reload.
// This blocks until the done channel is closed.
func (l *Loader) WatchAndReload(done <-chan struct{}, onReload func(*Corpus)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch dir %q: %w", dir, err)
	}

	target := filepath.Clean(l.path)
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			c, err := l.Load()
			if err != nil {
				slog.Warn("corpus reload failed, keeping previous corpus",
					slog.String("path", l.path), slog.String("error", err.Error()))
				continue
			}
			slog.Info("corpus reloaded",
				slog.String("path", l.path), slog.Int("lines", c.TotalLines()))
			if onReload != nil {
				onReload(c)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
