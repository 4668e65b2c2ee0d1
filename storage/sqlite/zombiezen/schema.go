package zombiezen

import (
	"context"
	"embed"
	"path"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/ertrie/errors"
)

// sqlFiles embeds all SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// Schema names of the embedded scripts.
const (
	ExamplesSchema = "examples.sql"
	ModelsSchema   = "models.sql"
)

// CreateSchema executes the embedded script schemaName (f.ex. "examples.sql").
func CreateSchema(pool *sqlitex.Pool, schemaName string) error {
	scriptPath := path.Join("sql", schemaName)

	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read embedded sql file %s", scriptPath)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	// ExecuteScript handles multi-statement strings.
	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return errors.Wrapf(err, "failed to execute script %s", schemaName)
	}

	return nil
}

// CreateSchemas executes every embedded script.
func CreateSchemas(pool *sqlitex.Pool) error {
	for _, name := range []string{ExamplesSchema, ModelsSchema} {
		if err := CreateSchema(pool, name); err != nil {
			return err
		}
	}
	return nil
}
