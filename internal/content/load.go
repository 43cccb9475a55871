package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyFeed   = errors.New("chapter feed is empty")
	ErrMissingID   = errors.New("chapter id is empty")
	ErrDuplicateID = errors.New("duplicate chapter id")
	ErrUnknownKind = errors.New("unknown block kind")
)

// Load reads a chapter feed from a .toml, .yaml or .yml file.
func Load(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chapters: %w", err)
	}
	var file feedFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported chapters file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	feed, err := NewFeed(file.Chapters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return feed, nil
}

// LoadOrBuiltin loads path when set, otherwise returns the built-in feed.
func LoadOrBuiltin(path string) (*Feed, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	return Load(path)
}

func validate(chapters []Chapter) error {
	if len(chapters) == 0 {
		return ErrEmptyFeed
	}
	seen := make(map[string]bool, len(chapters))
	for i, ch := range chapters {
		id := strings.TrimSpace(ch.ID)
		if id == "" {
			return fmt.Errorf("chapter %d: %w", i+1, ErrMissingID)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
		for j, b := range ch.Blocks {
			if !b.Kind.Valid() {
				return fmt.Errorf("chapter %s block %d: %w %q", id, j+1, ErrUnknownKind, b.Kind)
			}
		}
	}
	return nil
}
