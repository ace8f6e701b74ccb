package audit

import (
	"sort"

	"github.com/goliatone/go-doclint/pkg/interfaces"
)

// corpusView is the immutable snapshot of a loaded documentation tree handed
// to rules. It satisfies interfaces.Corpus.
type corpusView struct {
	docs      []*interfaces.Document
	byPath    map[string]*interfaces.Document
	files     map[string]struct{}
	dirs      []string
	indexFile string
}

var _ interfaces.Corpus = (*corpusView)(nil)

func newCorpusView(docs []*interfaces.Document, files, dirs []string, indexFile string) *corpusView {
	view := &corpusView{
		docs:      docs,
		byPath:    make(map[string]*interfaces.Document, len(docs)),
		files:     make(map[string]struct{}, len(files)),
		indexFile: indexFile,
	}
	for _, doc := range docs {
		view.byPath[doc.FilePath] = doc
	}
	for _, file := range files {
		view.files[file] = struct{}{}
	}
	view.dirs = append([]string(nil), dirs...)
	sort.Strings(view.dirs)
	return view
}

func (c *corpusView) Documents() []*interfaces.Document {
	return c.docs
}

func (c *corpusView) Document(path string) *interfaces.Document {
	return c.byPath[path]
}

func (c *corpusView) FileExists(path string) bool {
	_, ok := c.files[path]
	return ok
}

func (c *corpusView) Directories() []string {
	return c.dirs
}

func (c *corpusView) RootIndex() *interfaces.Document {
	return c.byPath[c.indexFile]
}
