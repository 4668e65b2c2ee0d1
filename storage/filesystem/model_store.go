package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/storage"
)

// ModelStore keeps each consolidated model in a <id>.json file of a
// directory.
type ModelStore struct {
	root string

	// now is replaced in tests
	now func() time.Time
}

var _ storage.ModelRepository = (*ModelStore)(nil)

func NewModelStore(root string) *ModelStore {
	return &ModelStore{root: root, now: time.Now}
}

func (ms *ModelStore) WriteModel(title string, m model.Model) (string, error) {
	sm := storage.StoredModel{
		Id:      uuid.NewString(),
		Title:   title,
		Created: ms.now().UTC(),
		Model:   m,
	}

	data, err := json.MarshalIndent(sm, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(ms.root, sm.Id+".json"), data, 0644); err != nil {
		return "", errors.Wrapf(err, "model %q", title)
	}
	return sm.Id, nil
}

func (ms *ModelStore) ReadModel(id string) (storage.StoredModel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return storage.StoredModel{}, errors.Wrapf(errors.ErrInvalidInput, "model id %q", id)
	}

	f, err := os.ReadFile(filepath.Join(ms.root, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return storage.StoredModel{}, errors.Wrapf(errors.ErrNotFound, "model %s", id)
		}
		return storage.StoredModel{}, err
	}

	var sm storage.StoredModel
	if err := json.Unmarshal(f, &sm); err != nil {
		return storage.StoredModel{}, errors.Wrapf(err, "model %s", id)
	}
	return sm, nil
}

func (ms *ModelStore) ListModels() ([]storage.StoredModel, error) {
	files, err := os.ReadDir(ms.root)
	if err != nil {
		return nil, errors.Wrapf(err, "model dir %s", ms.root)
	}

	list := []storage.StoredModel{}
	for _, file := range files {
		id := strings.TrimSuffix(file.Name(), ".json")
		if filepath.Ext(file.Name()) != ".json" || uuid.Validate(id) != nil {
			continue
		}

		sm, err := ms.ReadModel(id)
		if err != nil {
			return nil, err
		}
		sm.Model = model.Model{}
		list = append(list, sm)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Created.After(list[j].Created)
	})
	return list, nil
}
