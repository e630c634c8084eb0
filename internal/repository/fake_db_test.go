package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"talent-sync/internal/database"
)

type fakeResult struct {
	rows [][]any
	err  error
}

// fakeDB replays one scripted result per Query/QueryRow call, in order.
type fakeDB struct {
	results []fakeResult
	queries []string
	args    [][]any
}

func (f *fakeDB) next(query string, args []any) fakeResult {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	if len(f.results) == 0 {
		return fakeResult{err: fmt.Errorf("unexpected query: %s", query)}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	r := f.next(query, args)
	return 1, r.err
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	r := f.next(query, args)
	if r.err != nil {
		return nil, r.err
	}
	return &fakeRows{rows: r.rows, idx: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	r := f.next(query, args)
	if r.err != nil {
		return fakeRow{err: r.err}
	}
	if len(r.rows) == 0 {
		return fakeRow{err: sql.ErrNoRows}
	}
	return fakeRow{values: r.rows[0]}
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("transactions not supported by fakeDB")
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.rows[r.idx])
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: cannot assign %s to %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}
