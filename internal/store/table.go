package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Schema describes how one entity maps onto one table. Columns lists every
// column except id, in the order Values produces them. Scan receives a row
// selected as "id, Columns...".
type Schema[T any] struct {
	Table   string
	Columns []string
	Scan    func(row RowScanner) (T, error)
	Values  func(record T) []any
}

// Table is the storage gateway for a single entity collection.
type Table[T any] struct {
	db     *sql.DB
	schema Schema[T]
}

func NewTable[T any](db *sql.DB, schema Schema[T]) *Table[T] {
	return &Table[T]{db: db, schema: schema}
}

func (t *Table[T]) Name() string {
	return t.schema.Table
}

func (t *Table[T]) selectColumns() string {
	return "id, " + strings.Join(t.schema.Columns, ", ")
}

func (t *Table[T]) hasColumn(field string) bool {
	return field == "id" || slices.Contains(t.schema.Columns, field)
}

// ListAll returns every row ordered by id.
func (t *Table[T]) ListAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, t.selectColumns(), t.schema.Table)
	return t.query(ctx, query)
}

// GetByID reports found=false without error when no row has the given id.
func (t *Table[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.selectColumns(), t.schema.Table)

	record, err := t.schema.Scan(t.db.QueryRowContext(ctx, query, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, classify(err)
	}
	return record, true, nil
}

// FindWhere evaluates the predicate in the database.
func (t *Table[T]) FindWhere(ctx context.Context, p Predicate) ([]T, error) {
	if !t.hasColumn(p.Field) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.schema.Table, p.Field)
	}

	clause, arg, err := p.compile()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY id`, t.selectColumns(), t.schema.Table, clause)
	return t.query(ctx, query, arg)
}

// FindSorted orders the whole collection by field, breaking ties by id.
func (t *Table[T]) FindSorted(ctx context.Context, field string, dir Direction) ([]T, error) {
	if !t.hasColumn(field) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.schema.Table, field)
	}

	keyword, err := dir.sql()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s %s, id ASC`, t.selectColumns(), t.schema.Table, field, keyword)
	return t.query(ctx, query)
}

// Insert stores record and returns the id assigned by the database.
func (t *Table[T]) Insert(ctx context.Context, record T) (int, error) {
	placeholders := make([]string, len(t.schema.Columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		t.schema.Table, strings.Join(t.schema.Columns, ", "), strings.Join(placeholders, ", "))

	var id int
	if err := t.db.QueryRowContext(ctx, query, t.schema.Values(record)...).Scan(&id); err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// Replace overwrites every column of row id. The existence check and the
// write share one transaction; the row is locked between them.
func (t *Table[T]) Replace(ctx context.Context, id int, record T) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	var existing int
	lockQuery := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, t.schema.Table)
	if err := tx.QueryRowContext(ctx, lockQuery, id).Scan(&existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return classify(err)
	}

	assignments := make([]string, len(t.schema.Columns))
	for i, column := range t.schema.Columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		t.schema.Table, strings.Join(assignments, ", "), len(t.schema.Columns)+1)

	args := append(t.schema.Values(record), id)
	result, err := tx.ExecContext(ctx, updateQuery, args...)
	if err != nil {
		return classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrConflict
	}

	return classify(tx.Commit())
}

// Delete removes row id, returning ErrNotFound when nothing was deleted.
func (t *Table[T]) Delete(ctx context.Context, id int) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.schema.Table), id)
	if err != nil {
		return classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return classify(tx.Commit())
}

// Count returns the number of rows in the table.
func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.schema.Table)
	if err := t.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, classify(err)
	}
	return total, nil
}

func (t *Table[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		record, scanErr := t.schema.Scan(rows)
		if scanErr != nil {
			return nil, classify(scanErr)
		}
		out = append(out, record)
	}

	return out, classify(rows.Err())
}
