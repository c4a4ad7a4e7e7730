package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open открывает файл SQLite (или ":memory:") и проверяет соединение
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	// Один писатель: SQLite не допускает параллельной записи, а ":memory:" живет в одном соединении
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error while pinging sqlite database: %w", err)
	}
	return db, nil
}
