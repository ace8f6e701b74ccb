package rules

import (
	"sort"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// stubCorpus is the minimal Corpus used across rule tests.
type stubCorpus struct {
	docs      map[string]*interfaces.Document
	files     map[string]struct{}
	dirs      []string
	indexFile string
}

func newStubCorpus(docs []*interfaces.Document, extraFiles []string, dirs []string) *stubCorpus {
	corpus := &stubCorpus{
		docs:      map[string]*interfaces.Document{},
		files:     map[string]struct{}{},
		dirs:      append([]string(nil), dirs...),
		indexFile: "README.md",
	}
	for _, doc := range docs {
		corpus.docs[doc.FilePath] = doc
		corpus.files[doc.FilePath] = struct{}{}
	}
	for _, file := range extraFiles {
		corpus.files[file] = struct{}{}
	}
	sort.Strings(corpus.dirs)
	return corpus
}

func (c *stubCorpus) Documents() []*interfaces.Document {
	paths := make([]string, 0, len(c.docs))
	for path := range c.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	out := make([]*interfaces.Document, 0, len(paths))
	for _, path := range paths {
		out = append(out, c.docs[path])
	}
	return out
}

func (c *stubCorpus) Document(path string) *interfaces.Document {
	return c.docs[path]
}

func (c *stubCorpus) FileExists(path string) bool {
	_, ok := c.files[path]
	return ok
}

func (c *stubCorpus) Directories() []string {
	return c.dirs
}

func (c *stubCorpus) RootIndex() *interfaces.Document {
	return c.docs[c.indexFile]
}

func docWithLinks(path string, links ...interfaces.Link) *interfaces.Document {
	return &interfaces.Document{
		FilePath:  path,
		Inventory: &interfaces.Inventory{Links: links},
	}
}

func docWithImages(path string, images ...interfaces.Image) *interfaces.Document {
	return &interfaces.Document{
		FilePath:  path,
		Inventory: &interfaces.Inventory{Images: images},
	}
}

func docWithHeadings(path string, headings ...interfaces.Heading) *interfaces.Document {
	return &interfaces.Document{
		FilePath:  path,
		Inventory: &interfaces.Inventory{Headings: headings},
	}
}
