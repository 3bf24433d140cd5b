package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Body formats accepted by the loader.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type document struct {
	Pages []pageDoc `yaml:"pages"`
}

type pageDoc struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Breadcrumb  []string          `yaml:"breadcrumb"`
	Platform    string            `yaml:"platform"`
	Format      string            `yaml:"format"`
	Content     string            `yaml:"content"`
	Levels      map[string]string `yaml:"levels"`
}

// Parse builds a table from a YAML content document.
func Parse(data []byte) (*Table, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a YAML content document of the form
//
//	pages:
//	  - id: overview
//	    title: Overview
//	    description: What the app does
//	    breadcrumb: [Docs, Overview]
//	    platform: ios          # optional
//	    format: markdown       # optional, default html
//	    content: |             # flat body
//	      ...
//	    levels:                # optional per-level bodies
//	      quick: ...
//
// Bodies are converted (markdown) and sanitized; unknown fields are errors.
func Load(r io.Reader) (*Table, error) {
	pages, err := decode(r)
	if err != nil {
		return nil, err
	}
	return NewTable(pages...)
}

// LoadFiles builds one table from every file in fsys matching the doublestar
// pattern (e.g. "docs/**/*.yaml"). Files are read in lexical order and their
// pages kept in that order; an id declared twice is an error.
func LoadFiles(fsys fs.FS, pattern string) (*Table, error) {
	names, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no content files match %q", pattern)
	}
	slices.Sort(names)

	var pages []*Page
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		filePages, err := decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		pages = append(pages, filePages...)
	}
	return NewTable(pages...)
}

func decode(r io.Reader) ([]*Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	pages := make([]*Page, 0, len(doc.Pages))
	for i, pd := range doc.Pages {
		p, err := pd.build()
		if err != nil {
			return nil, fmt.Errorf("page %d (%q): %w", i, pd.ID, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func (pd pageDoc) build() (*Page, error) {
	if pd.ID == "" {
		return nil, errors.New("id is required")
	}
	if pd.Title == "" {
		return nil, errors.New("title is required")
	}

	render, err := bodyRenderer(pd.Format)
	if err != nil {
		return nil, err
	}

	flat, err := render(pd.Content)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	var levels map[string]string
	if len(pd.Levels) > 0 {
		levels = make(map[string]string, len(pd.Levels))
		for name, body := range pd.Levels {
			markup, err := render(body)
			if err != nil {
				return nil, fmt.Errorf("level %q: %w", name, err)
			}
			levels[name] = markup
		}
	}

	breadcrumb := pd.Breadcrumb
	if len(breadcrumb) == 0 {
		breadcrumb = []string{pd.Title}
	}

	return &Page{
		ID:          pd.ID,
		Title:       pd.Title,
		Description: pd.Description,
		Breadcrumb:  breadcrumb,
		Platform:    pd.Platform,
		Content:     flat,
		Levels:      levels,
	}, nil
}

func bodyRenderer(format string) (func(string) (string, error), error) {
	switch format {
	case "", FormatHTML:
		return func(body string) (string, error) {
			return Sanitize(body), nil
		}, nil
	case FormatMarkdown:
		return func(body string) (string, error) {
			if body == "" {
				return "", nil
			}
			markup, err := MarkdownToHTML(body)
			if err != nil {
				return "", err
			}
			return Sanitize(markup), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
