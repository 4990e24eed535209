package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/njayco/scoremybars/src/bars/db"
	"github.com/stretchr/testify/assert"
	"log"
	"os"
	"path"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func TestMain(m *testing.M) {
	dbPath := fmt.Sprintf(path.Join("%s", "scoremybars-test.db"), os.TempDir())

	// delete any existing database
	err := os.Truncate(dbPath, 0)

	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("could not truncate database file %s: %v", dbPath, err)
	}

	// open DB and load schema
	DB, err = sql.Open("sqlite3", dbPath)
	defer DB.Close()

	err = db.BootstrapDB(DB)
	if err != nil {
		log.Fatalf("could not open database %s: %v", dbPath, err)
	}

	m.Run()

	os.Remove(dbPath)
}

func testRecord(hash byte, lyrics string) db.Record {
	return db.Record{
		Hash:         []byte{hash, 1, 2, 3},
		Title:        "Test Track",
		Artist:       "Test MC",
		Lyrics:       lyrics,
		RhymeScheme:  "AABB",
		RhymeDensity: 0.5,
		Cleverness:   62,
		RhymeScore:   71.5,
		Wordplay:     58,
		RadioScore:   80,
		Popularity:   69.4,
		TotalBars:    4,
	}
}

func TestAnalysisDAO_Insert(t *testing.T) {
	ctx := context.Background()

	rows, err := db.AnalysisDAO.Insert(ctx, DB, testRecord(1, "first bars"))
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rec, err := db.AnalysisDAO.FindByHash(ctx, DB, []byte{1, 1, 2, 3})
	assert.NoError(t, err)
	assert.EqualValues(t, "first bars", rec.Lyrics)
	assert.EqualValues(t, "AABB", rec.RhymeScheme)
	assert.EqualValues(t, 80, rec.RadioScore)
	assert.NotEmpty(t, rec.CreatedAt)

	found, err := db.AnalysisDAO.FindByID(ctx, DB, rec.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, rec.Lyrics, found.Lyrics)
}

func TestAnalysisDAO_InsertDuplicate(t *testing.T) {
	ctx := context.Background()

	rows, err := db.AnalysisDAO.Insert(ctx, DB, testRecord(2, "same bars"))
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = db.AnalysisDAO.Insert(ctx, DB, testRecord(2, "same bars"))
	assert.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	assert.NoError(t, db.SaveAnalysis(ctx, DB, testRecord(2, "same bars")))
}

func TestAnalysisDAO_Recent(t *testing.T) {
	ctx := context.Background()

	for i := byte(10); i < 15; i++ {
		_, err := db.AnalysisDAO.Insert(ctx, DB, testRecord(i, fmt.Sprintf("bars %d", i)))
		assert.NoError(t, err)
	}

	recent, err := db.AnalysisDAO.Recent(ctx, DB, 3)
	assert.NoError(t, err)
	if assert.Len(t, recent, 3) {
		// newest first
		assert.Equal(t, "bars 14", recent[0].Lyrics)
		assert.Equal(t, "bars 13", recent[1].Lyrics)
		assert.Equal(t, "bars 12", recent[2].Lyrics)
	}
}

func TestAnalysisDAO_FindByHashMiss(t *testing.T) {
	ctx := context.Background()

	rec, err := db.AnalysisDAO.FindByHash(ctx, DB, []byte{99, 99, 99, 99})
	assert.NoError(t, err) // proteus maps no rows to a zero Record
	assert.Empty(t, rec.Lyrics)
}
