package zombiezen

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/logger"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/storage"
)

type ModelStore struct {
	pool   *sqlitex.Pool
	logger *zap.SugaredLogger
}

var _ storage.ModelRepository = (*ModelStore)(nil)

// NewModelStore returns a store on pool. The models table must exist, see
// CreateSchemas. l may be nil.
func NewModelStore(pool *sqlitex.Pool, l *zap.SugaredLogger) *ModelStore {
	return &ModelStore{pool: pool, logger: logger.OrNop(l)}
}

func (s *ModelStore) WriteModel(title string, m model.Model) (string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return "", err
	}
	defer s.pool.Put(conn)

	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	err = sqlitex.Execute(conn, "INSERT INTO models (id, title, created, entities, relationships, data) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{id, title, time.Now().UnixMilli(), len(m.Entities), len(m.Relationships), string(data)},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to insert model %q", title)
	}

	s.logger.Debugw("model written", "id", id, "title", title)
	return id, nil
}

func (s *ModelStore) ReadModel(id string) (storage.StoredModel, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return storage.StoredModel{}, err
	}
	defer s.pool.Put(conn)

	var sm storage.StoredModel
	found := false
	err = sqlitex.Execute(conn, "SELECT id, title, created, data FROM models WHERE id = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			sm = scanModel(stmt)
			found = true
			return json.Unmarshal([]byte(stmt.ColumnText(3)), &sm.Model)
		},
	})
	if err != nil {
		return storage.StoredModel{}, err
	}
	if !found {
		return storage.StoredModel{}, errors.Wrapf(errors.ErrNotFound, "model %s", id)
	}

	return sm, nil
}

func (s *ModelStore) ListModels() ([]storage.StoredModel, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	list := []storage.StoredModel{}
	err = sqlitex.Execute(conn, "SELECT id, title, created FROM models ORDER BY created DESC, rowid DESC", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			list = append(list, scanModel(stmt))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

func scanModel(stmt *sqlite.Stmt) storage.StoredModel {
	return storage.StoredModel{
		Id:      stmt.ColumnText(0),
		Title:   stmt.ColumnText(1),
		Created: time.UnixMilli(stmt.ColumnInt64(2)).UTC(),
	}
}
