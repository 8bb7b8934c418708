// Package sqlite provides a RecordStore backed by an embedded sqlite
// database. It is the host-side query executor domain filters are
// translated for: each FilterClause becomes one parameterized predicate
// of the WHERE clause.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/entities"
	"github.com/recordbridge-dev/recordbridge-sdk/go/domain/ports"
)

// Store executes domain filters against one table whose columns follow a
// bridge schema.
type Store struct {
	db     *sql.DB
	schema entities.Schema
}

var _ ports.RecordStore = (*Store)(nil)

// Open creates a Store over the sqlite database at dsn (":memory:" for an
// in-memory database) and creates the schema's table if it is missing.
func Open(dsn string, schema entities.Schema) (*Store, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &Store{db: db, schema: schema}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the schema's table with one column per declared
// property. Timestamps are stored as RFC 3339 text, booleans as 0/1.
func (s *Store) migrate() error {
	cols := make([]string, 0, len(s.schema.Properties))
	for _, desc := range s.schema.Properties {
		cols = append(cols, fmt.Sprintf("%s %s", desc.Name, columnType(desc.Type)))
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", s.schema.Object, strings.Join(cols, ", "))
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("create table %s: %w", s.schema.Object, err)
	}
	return nil
}

func columnType(t entities.PropertyType) string {
	switch t {
	case entities.TypeInteger, entities.TypeBoolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// Insert adds a record with the given field values. Only declared
// properties are accepted.
func (s *Store) Insert(ctx context.Context, fields map[string]any) error {
	cols := make([]string, 0, len(fields))
	marks := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, desc := range s.schema.Properties {
		value, ok := fields[desc.Name]
		if !ok {
			continue
		}
		cols = append(cols, desc.Name)
		marks = append(marks, "?")
		args = append(args, toColumn(value))
	}
	if len(cols) != len(fields) {
		return entities.NewErrorDetail(entities.ErrTypeValidation,
			fmt.Sprintf("insert into %s contains undeclared fields", s.schema.Object))
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.schema.Object, strings.Join(cols, ", "), strings.Join(marks, ", "))
	_, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.schema.Object, err)
	}
	return nil
}

// Select returns the records matching every clause.
func (s *Store) Select(ctx context.Context, clauses []entities.FilterClause) ([]map[string]any, error) {
	where, args, err := WhereSQL(clauses)
	if err != nil {
		return nil, err
	}
	stmt := fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.schema.Names(), ", "), s.schema.Object)
	if where != "" {
		stmt += " WHERE " + where
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", s.schema.Object, err)
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		scan := make([]any, len(s.schema.Properties))
		for i := range scan {
			scan[i] = new(any)
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		record := make(map[string]any, len(s.schema.Properties))
		for i, desc := range s.schema.Properties {
			record[desc.Name] = fromColumn(desc.Type, *(scan[i].(*any)))
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// toColumn converts a host or script value to its sqlite column form.
func toColumn(value any) any {
	switch v := value.(type) {
	case bool:
		if v {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return v
	}
}

// fromColumn converts a sqlite column value back to host representation.
func fromColumn(t entities.PropertyType, value any) any {
	if value == nil {
		return nil
	}
	switch t {
	case entities.TypeBoolean:
		if n, ok := value.(int64); ok {
			return n != 0
		}
	case entities.TypeTimestamp:
		if s, ok := value.(string); ok {
			if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return parsed
			}
		}
	}
	return value
}
