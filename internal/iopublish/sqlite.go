package iopublish

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/baactools/baacprep/pkg/tables"
	_ "modernc.org/sqlite"
)

// sqliteBatchSize is the number of rows inserted per transaction.
const sqliteBatchSize = 5000

// SQLite writes the prepared tables into an embedded SQLite database at
// path. Existing tables of the same names are replaced, so repeated runs
// stay idempotent. All columns are TEXT; the dashboard layer casts on
// read like it does with the CSV outputs.
func SQLite(ctx context.Context, path string, prepared map[string]*tables.Table) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return PublishSQLiteError(path, err)
	}
	defer db.Close()

	for name, t := range prepared {
		if err = writeTable(ctx, db, name, t); err != nil {
			return PublishSQLiteError(path, err)
		}
		slog.Info("Published SQLite table",
			"path", path, "table", name, "rows", t.Len())
	}
	return nil
}

func writeTable(
	ctx context.Context,
	db *sql.DB,
	name string,
	t *tables.Table,
) error {
	header := t.Header()
	cols := make([]string, len(header))
	marks := make([]string, len(header))
	for i, c := range header {
		cols[i] = quoteIdent(c)
		marks[i] = "?"
	}

	if _, err := db.ExecContext(ctx,
		"DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return err
	}
	create := fmt.Sprintf(
		"CREATE TABLE %s (%s TEXT)",
		quoteIdent(name),
		strings.Join(cols, " TEXT, "),
	)
	if _, err := db.ExecContext(ctx, create); err != nil {
		return err
	}

	insert := fmt.Sprintf(
		"INSERT INTO %s VALUES (%s)",
		quoteIdent(name),
		strings.Join(marks, ", "),
	)

	for start := 0; start < t.Len(); start += sqliteBatchSize {
		end := start + sqliteBatchSize
		if end > t.Len() {
			end = t.Len()
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			tx.Rollback()
			return err
		}
		for i := start; i < end; i++ {
			row := t.Row(i)
			args := make([]any, len(row))
			for j, v := range row {
				args[j] = v
			}
			if _, err = stmt.ExecContext(ctx, args...); err != nil {
				stmt.Close()
				tx.Rollback()
				return err
			}
		}
		stmt.Close()
		if err = tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// quoteIdent protects column names such as "int" that collide with SQL
// keywords.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
