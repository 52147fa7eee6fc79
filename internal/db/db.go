package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

var DB *sql.DB

// InitDB открывает базу SQLite с учетными записями и применяет схему.
// Путь может быть файлом или DSN вида "file:name?mode=memory&cache=shared".
func InitDB(dbPath string) error {
	// Проверка, что директория для файла базы данных существует
	if !strings.HasPrefix(dbPath, "file:") && dbPath != ":memory:" {
		dbDir := filepath.Dir(dbPath)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	var err error

	DB, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite не любит параллельных писателей, а база в памяти живет в одном соединении
	DB.SetMaxOpenConns(1)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = ApplySchema(); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

// ApplySchema выполняет SQL из встроенного schema.sql
func ApplySchema() error {
	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// CleanupDB очищает таблицы и закрывает соединение (для тестов)
func CleanupDB() {
	if DB == nil {
		return
	}
	DB.Exec("DELETE FROM users")
	DB.Close()
	DB = nil
}
