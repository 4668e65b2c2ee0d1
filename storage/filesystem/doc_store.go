package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/ertrie/errors"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/storage"
	"github.com/revelaction/ertrie/tagger"
)

// DocStore reads the tagged paragraphs of a directory. A paragraph is a
// .json file holding a sentence.Doc, or a .txt file in slash notation.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocReader = (*DocStore)(nil)

// NewDocStore lists the paragraph files of docDir, sorted by name.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, errors.Wrapf(err, "doc dir %s", docDir)
	}

	names := []string{}
	for _, file := range files {
		if file.IsDir() || !isDocFile(file.Name()) {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	docs := make([]sent.Doc, len(names))
	for i, n := range names {
		docs[i] = sent.Doc{Id: i, Title: n}
	}

	return &DocStore{docDir: docDir, docs: docs}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, errors.Wrapf(errors.ErrNotFound, "doc id %d", id)
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.docs[id].Title))
	if err != nil {
		return sent.Doc{}, err
	}
	doc.Id = id
	doc.Title = h.docs[id].Title
	return doc, nil
}

func isDocFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".json" || ext == ".txt"
}

// ReadDoc reads a paragraph file. JSON files are decoded as a sentence.Doc,
// any other file is parsed in slash notation and split into sentences.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, errors.Wrap(err, "IO error")
	}

	if filepath.Ext(path) != ".json" {
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return tagger.ParseDoc(tagger.Slash{}, title, string(f))
	}

	var doc sent.Doc
	if err := json.Unmarshal(f, &doc); err != nil {
		return sent.Doc{}, errors.Wrapf(err, "JSON decoding error in %s", path)
	}

	for i := range doc.Sentences {
		doc.Sentences[i].Id = i
		for j := range doc.Sentences[i].Tokens {
			doc.Sentences[i].Tokens[j].Index = j
		}
	}

	return doc, nil
}
