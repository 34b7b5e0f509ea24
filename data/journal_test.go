package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseJournal(t *testing.T, journal Journal) {
	t.Helper()

	count, err := journal.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	entry := ReviewEntry{
		SessionId: "session-1",
		DeckName:  "Biology",
		Front:     "Q1",
		Back:      "A1",
		Outcome:   OutcomeCorrect,
		Created:   time.Now(),
	}
	first, err := journal.Record(entry)
	require.NoError(t, err)

	entry.Outcome = OutcomeEasy
	second, err := journal.Record(entry)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	count, err = journal.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSqliteJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	journal, err := OpenJournal(BackendSqlite, path)
	require.NoError(t, err)
	defer journal.Close()

	exerciseJournal(t, journal)
}

func TestSqliteJournal_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	journal, err := OpenSqliteJournal(path)
	require.NoError(t, err)
	_, err = journal.Record(ReviewEntry{SessionId: "s", DeckName: "d", Front: "f", Back: "b", Outcome: OutcomeIncorrect, Created: time.Now()})
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	reopened, err := OpenSqliteJournal(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDuckDbJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.duckdb")

	journal, err := OpenJournal(BackendDuckDb, path)
	require.NoError(t, err)
	defer journal.Close()

	exerciseJournal(t, journal)
}

func TestPostgresJournal(t *testing.T) {
	dsn := os.Getenv("OKCARD_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("OKCARD_TEST_POSTGRES_DSN not set")
	}

	journal, err := OpenPostgresJournal(dsn)
	require.NoError(t, err)
	defer journal.Close()

	before, err := journal.Count()
	require.NoError(t, err)

	_, err = journal.Record(ReviewEntry{SessionId: "s", DeckName: "d", Front: "f", Back: "b", Outcome: OutcomeEasy, Created: time.Now()})
	require.NoError(t, err)

	after, err := journal.Count()
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestPostgresJournal_RequiresConnectionString(t *testing.T) {
	_, err := OpenJournal(BackendPostgres, "")
	assert.Error(t, err)
}

func TestOpenJournal_NoneAndUnknown(t *testing.T) {
	journal, err := OpenJournal(BackendNone, "")
	require.NoError(t, err)
	id, err := journal.Record(ReviewEntry{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), id)

	_, err = OpenJournal("mongo", "")
	assert.Error(t, err)
}
