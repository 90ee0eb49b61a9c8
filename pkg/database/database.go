package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/alimgiray/folio/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Init opens the SQLite database at path and applies the SQL scripts in migrationsDir
func Init(path, migrationsDir string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}

	if err := RunSQLScripts(db, migrationsDir); err != nil {
		db.Close()
		return err
	}

	DB = db
	return nil
}

// Open opens a SQLite connection with the pragmas the app relies on
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// The contact table sees a handful of writes; a small pool is plenty
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("path", path).Info("Database connected")
	return db, nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunSQLScripts executes every .sql file in dir in lexical order.
// Scripts must be idempotent (CREATE ... IF NOT EXISTS).
func RunSQLScripts(db *sql.DB, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".sql" {
			continue
		}

		sqlContent, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return err
		}

		if _, err := db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", file.Name(), err)
		}

		logger.WithField("script", file.Name()).Debug("Executed SQL script")
	}

	return nil
}
