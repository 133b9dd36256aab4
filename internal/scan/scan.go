// Package scan discovers markdown source files and splits their YAML front
// matter before they reach the markdown parser.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds the YAML header fields docforge cares about.
type FrontMatter struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Aliases []string `yaml:"aliases"`
	Tags    []string `yaml:"tags"`
}

// File is one discovered markdown source file.
type File struct {
	Path string
	Meta FrontMatter
	Body []byte
}

// Dir walks root for .md files, skipping dotted directories and any path
// matching an exclude pattern (filepath.Match against the relative path).
func Dir(root string, excludes []string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		for _, pattern := range excludes {
			if ok, _ := filepath.Match(pattern, rel); ok {
				return nil
			}
		}

		f, err := Read(path)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}

// Read loads one file and splits its front matter.
func Read(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	meta, body, err := SplitFrontMatter(content)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := meta.EnsureID(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return File{Path: path, Meta: meta, Body: body}, nil
}

// SplitFrontMatter separates a leading YAML front matter block from the
// markdown body. Content without a front matter fence comes back untouched
// with an empty FrontMatter.
func SplitFrontMatter(content []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	text := string(content)
	if !strings.HasPrefix(text, "---\n") {
		return meta, content, nil
	}

	// The closing fence must be --- on a line of its own; lines that merely
	// start with --- belong to the header.
	rest := text[4:]
	var header, body string
	if end := strings.Index(rest, "\n---\n"); end >= 0 {
		header = rest[:end]
		body = rest[end+5:]
	} else if strings.HasSuffix(rest, "\n---") {
		header = rest[:len(rest)-4]
	} else {
		return meta, content, nil
	}

	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, []byte(body), nil
}

// EnsureID validates the front matter ID as a UUID, minting a new one when
// it is missing. A malformed ID is an error rather than a silent rewrite.
func (m *FrontMatter) EnsureID() error {
	if m.ID == "" {
		m.ID = uuid.NewString()
		return nil
	}
	if _, err := uuid.Parse(m.ID); err != nil {
		return fmt.Errorf("front matter id %q: %w", m.ID, err)
	}
	return nil
}
