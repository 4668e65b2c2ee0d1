package main

import (
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/ertrie/storage/sqlite/zombiezen"
)

// Pool opens the sqlite database of a command once and creates its tables.
type Pool struct {
	p    *sqlitex.Pool
	path string
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil && p.path == path {
		return p.p, nil
	}
	if err := p.Close(); err != nil {
		return nil, err
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool); err != nil {
		_ = pool.Close()
		return nil, err
	}
	p.p = pool
	p.path = path
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		err := p.p.Close()
		p.p = nil
		return err
	}
	return nil
}
