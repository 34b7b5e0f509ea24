package data

import (
	"fmt"
	"time"
)

// ReviewEntry is one graded learning round.
type ReviewEntry struct {
	Id        int64     `json:"id"`
	SessionId string    `json:"sessionId"`
	DeckName  string    `json:"deckName"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Outcome   Outcome   `json:"outcome"`
	Created   time.Time `json:"created"`
}

// Journal is a write-only record of learning outcomes. Nothing in the
// application reads entries back; Count exists for inspection and tests.
type Journal interface {
	Record(entry ReviewEntry) (int64, error)
	Count() (int, error)
	Close() error
}

const (
	BackendNone     = "none"
	BackendSqlite   = "sqlite"
	BackendPostgres = "postgres"
	BackendDuckDb   = "duckdb"
)

// OpenJournal opens the journal for the given backend. An empty dsn for the
// file based backends falls back to a file under ~/.okcard.
func OpenJournal(backend string, dsn string) (Journal, error) {
	switch backend {
	case "", BackendNone:
		return NoopJournal{}, nil
	case BackendSqlite:
		if dsn == "" {
			path, err := defaultJournalPath("journal.db")
			if err != nil {
				return nil, err
			}
			dsn = path
		}
		return OpenSqliteJournal(dsn)
	case BackendDuckDb:
		if dsn == "" {
			path, err := defaultJournalPath("journal.duckdb")
			if err != nil {
				return nil, err
			}
			dsn = path
		}
		return OpenDuckDbJournal(dsn)
	case BackendPostgres:
		return OpenPostgresJournal(dsn)
	default:
		return nil, fmt.Errorf("unknown journal backend %q", backend)
	}
}

type NoopJournal struct{}

func (NoopJournal) Record(entry ReviewEntry) (int64, error) { return 0, nil }
func (NoopJournal) Count() (int, error)                     { return 0, nil }
func (NoopJournal) Close() error                            { return nil }
