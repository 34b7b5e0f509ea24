package data

import (
	"database/sql"
	"fmt"
	"okcard/logger"

	_ "github.com/mattn/go-sqlite3"
)

type SqliteJournal struct {
	db   *sql.DB
	Path string
}

func OpenSqliteJournal(path string) (*SqliteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach sqlite journal %s: %w", path, err)
	}

	createTableQuery := `
		CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			deck_name TEXT NOT NULL,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			outcome TEXT NOT NULL,
			created DATETIME NOT NULL
		);
	`
	if _, err = db.Exec(createTableQuery); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create reviews table: %w", err)
	}

	logger.Debug.Printf("sqlite journal opened at %s", path)
	return &SqliteJournal{db: db, Path: path}, nil
}

func (j *SqliteJournal) Record(entry ReviewEntry) (int64, error) {
	result, err := j.db.Exec(
		"INSERT INTO reviews (session_id, deck_name, front, back, outcome, created) VALUES (?, ?, ?, ?, ?, ?)",
		entry.SessionId, entry.DeckName, entry.Front, entry.Back, entry.Outcome.String(), entry.Created)
	if err != nil {
		logger.Debug.Println("insert of review failed", err)
		return 0, err
	}
	return result.LastInsertId()
}

func (j *SqliteJournal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

func (j *SqliteJournal) Close() error {
	return j.db.Close()
}
