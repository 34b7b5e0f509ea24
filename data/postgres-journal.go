package data

import (
	"database/sql"
	"fmt"
	"okcard/logger"

	_ "github.com/lib/pq"
)

type PostgresJournal struct {
	db *sql.DB
}

func OpenPostgresJournal(connectionString string) (*PostgresJournal, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("postgres journal needs a connection string")
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id BIGSERIAL PRIMARY KEY,
			session_id TEXT NOT NULL,
			deck_name TEXT NOT NULL,
			front TEXT NOT NULL,
			back TEXT NOT NULL,
			outcome TEXT NOT NULL,
			created TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create reviews table: %w", err)
	}

	logger.Debug.Println("postgres journal opened")
	return &PostgresJournal{db: db}, nil
}

func (j *PostgresJournal) Record(entry ReviewEntry) (int64, error) {
	var id int64
	err := j.db.QueryRow("INSERT INTO reviews (session_id, deck_name, front, back, outcome, created) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		entry.SessionId, entry.DeckName, entry.Front, entry.Back, entry.Outcome.String(), entry.Created).
		Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (j *PostgresJournal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count)
	return count, err
}

func (j *PostgresJournal) Close() error {
	return j.db.Close()
}
