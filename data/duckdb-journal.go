package data

import (
	"database/sql"
	"fmt"
	"okcard/logger"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDB implementation of Journal. It mirrors the sqlite one; DuckDB has no
// AUTOINCREMENT so ids come from a sequence.
type DuckDbJournal struct {
	db   *sql.DB
	Path string
}

func OpenDuckDbJournal(path string) (*DuckDbJournal, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	stmts := []string{
		"CREATE SEQUENCE IF NOT EXISTS reviews_id_seq START 1",
		`CREATE TABLE IF NOT EXISTS reviews (
			id BIGINT PRIMARY KEY DEFAULT nextval('reviews_id_seq'),
			session_id VARCHAR NOT NULL,
			deck_name VARCHAR NOT NULL,
			front VARCHAR NOT NULL,
			back VARCHAR NOT NULL,
			outcome VARCHAR NOT NULL,
			created TIMESTAMP NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			db.Close()
			return nil, fmt.Errorf("could not set up duckdb journal: %w", err)
		}
	}

	logger.Debug.Printf("duckdb journal opened at %s", path)
	return &DuckDbJournal{db: db, Path: path}, nil
}

func (j *DuckDbJournal) Record(entry ReviewEntry) (int64, error) {
	var id int64
	err := j.db.QueryRow("INSERT INTO reviews (session_id, deck_name, front, back, outcome, created) VALUES (?, ?, ?, ?, ?, ?) RETURNING id",
		entry.SessionId, entry.DeckName, entry.Front, entry.Back, entry.Outcome.String(), entry.Created).
		Scan(&id)
	if err != nil {
		logger.Debug.Println("insert of review failed (duckdb)", err)
		return 0, err
	}
	return id, nil
}

func (j *DuckDbJournal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

func (j *DuckDbJournal) Close() error {
	return j.db.Close()
}
