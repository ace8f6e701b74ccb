package interfaces

import (
	"context"
	"time"
)

// MarkdownParser converts raw Markdown bytes into HTML and exposes the
// structural inventory used by audit rules. Implementations should be
// stateless so a single instance can be shared across scans.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
	// Inspect walks the Markdown AST and collects links, images, headings,
	// and fenced code blocks without rendering.
	Inspect(markdown []byte) (*Inventory, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// DocumentService exposes the file workflows used by the audit layer: load
// Markdown documents from a base directory, render them, and inspect their
// structure.
type DocumentService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
}

// Document represents a Markdown file with parsed metadata, content, and the
// structural inventory audit rules operate on. The struct is shared between
// the interfaces package and internal implementations so consumers can depend
// on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	Inventory    *Inventory
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so repeated scans can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. Documentation
// corpora rarely require frontmatter, so every field is optional; the Custom
// map keeps domain-specific values reachable for schema validation.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Summary string         `yaml:"summary" json:"summary"`
	Status  string         `yaml:"status" json:"status"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}

// Inventory captures the structural elements of a single document.
type Inventory struct {
	Links      []Link
	Images     []Image
	Headings   []Heading
	CodeFences []CodeFence
}

// LinkKind classifies a link destination.
type LinkKind string

const (
	// LinkInternal points at another file in the corpus via a relative path.
	LinkInternal LinkKind = "internal"
	// LinkExternal points outside the corpus (http, https, mailto, ...).
	LinkExternal LinkKind = "external"
	// LinkFragment points at a heading anchor, optionally in another file.
	LinkFragment LinkKind = "fragment"
)

// Link records a Markdown link occurrence.
type Link struct {
	Destination string
	Title       string
	Text        string
	Kind        LinkKind
	Line        int
}

// Image records a Markdown image reference.
type Image struct {
	Destination string
	AltText     string
	Line        int
}

// Heading records a document heading along with the anchor id goldmark
// derives for it.
type Heading struct {
	Level  int
	Text   string
	Anchor string
	Line   int
}

// CodeFence records a fenced code block and whether its closing fence was
// found.
type CodeFence struct {
	Language string
	Line     int
	Closed   bool
}
