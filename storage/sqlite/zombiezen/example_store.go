package zombiezen

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/logger"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/storage"
)

type ExampleStore struct {
	pool   *sqlitex.Pool
	logger *zap.SugaredLogger
}

var _ storage.ExampleRepository = (*ExampleStore)(nil)

// NewExampleStore returns a store on pool. The examples table must exist,
// see CreateSchemas. l may be nil.
func NewExampleStore(pool *sqlitex.Pool, l *zap.SugaredLogger) *ExampleStore {
	return &ExampleStore{pool: pool, logger: logger.OrNop(l)}
}

func (s *ExampleStore) Names() ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	names := []string{}
	err = sqlitex.Execute(conn, "SELECT DISTINCT set_name FROM examples ORDER BY set_name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

func (s *ExampleStore) ReadAll() (model.Library, error) {
	return s.query("SELECT data FROM examples ORDER BY set_name, id")
}

func (s *ExampleStore) Read(set string) (model.Library, error) {
	lib, err := s.query("SELECT data FROM examples WHERE set_name = ? ORDER BY id", set)
	if err != nil {
		return nil, err
	}
	if len(lib) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "example set %q", set)
	}
	return lib, nil
}

func (s *ExampleStore) query(q string, args ...interface{}) (model.Library, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	lib := model.Library{}
	err = sqlitex.Execute(conn, q, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var ex model.Example
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &ex); err != nil {
				return err
			}
			lib = append(lib, ex)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return lib, nil
}

// Write replaces the examples of set in a single transaction.
func (s *ExampleStore) Write(set string, lib model.Library) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM examples WHERE set_name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{set},
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete example set")
	}

	for _, ex := range lib {
		data, marshalErr := json.Marshal(ex)
		if marshalErr != nil {
			err = marshalErr
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO examples (set_name, name, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{set, ex.Name, string(data)},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to insert example %q", ex.Name)
		}
	}

	s.logger.Debugw("example set written", "set", set, "examples", len(lib))
	return nil
}
