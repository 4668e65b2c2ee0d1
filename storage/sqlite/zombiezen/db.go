package zombiezen

import (
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/ertrie/errors"
)

// NewPool opens the example or model database at path, one connection per
// CPU. The file is created if missing and journals in WAL mode.
func NewPool(path string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+path, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite database %s", path)
	}
	return pool, nil
}
