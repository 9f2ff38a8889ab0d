package render

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"parseit/internal/parse"
)

// SQLite writes the batch into the processed_data table of an SQLite
// database file, replacing any previous contents of that table. All inserts
// run in a single transaction.
func SQLite(path string, batch *parse.RowBatch) error {
	if path == "" {
		return fmt.Errorf("sqlite output requires an output file (--out)")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	headers := columnNames(batch.Headers)

	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = h + " TEXT"
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(columns, ", "))
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(headers)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(headers, ", "), placeholders))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range batch.Records {
		args := make([]any, len(headers))
		for i, v := range pad(record, len(headers)) {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
