package filesystem

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/storage"
)

// ExampleStore keeps each example set in a <set>.json file of a directory.
type ExampleStore struct {
	root string
}

var _ storage.ExampleRepository = (*ExampleStore)(nil)

func NewExampleStore(root string) *ExampleStore {
	return &ExampleStore{root: root}
}

func (es *ExampleStore) ReadAll() (model.Library, error) {
	names, err := es.Names()
	if err != nil {
		return nil, err
	}

	lib := model.Library{}
	for _, n := range names {
		examples, err := es.Read(n)
		if err != nil {
			return nil, err
		}

		lib = append(lib, examples...)
	}

	return lib, nil
}

func (es *ExampleStore) Names() ([]string, error) {
	files, err := os.ReadDir(es.root)
	if err != nil {
		return nil, errors.Wrapf(err, "example dir %s", es.root)
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		names = append(names, strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())))
	}

	sort.Strings(names)
	return names, nil
}

func (es *ExampleStore) Read(set string) (model.Library, error) {
	f, err := os.ReadFile(filepath.Join(es.root, set+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "example set %q", set)
		}
		return nil, err
	}

	lib := model.Library{}
	if err := json.Unmarshal(f, &lib); err != nil {
		return nil, errors.Wrapf(err, "example set %q", set)
	}

	// examples without a name are named after their set and position
	for i := range lib {
		if lib[i].Name == "" {
			lib[i].Name = set + "#" + strconv.Itoa(i)
		}
		for j := range lib[i].Tokens {
			lib[i].Tokens[j].Index = j
		}
	}

	return lib, nil
}

// Write stores lib as a JSON array with one example per line.
func (es *ExampleStore) Write(set string, lib model.Library) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, ex := range lib {
		line, err := json.Marshal(ex)
		if err != nil {
			return errors.Wrapf(err, "example %q", ex.Name)
		}
		buf.WriteByte('\t')
		buf.Write(line)
		if i < len(lib)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")

	return os.WriteFile(filepath.Join(es.root, set+".json"), buf.Bytes(), 0644)
}
