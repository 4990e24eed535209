package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/mattn/go-sqlite3"

	"github.com/njayco/scoremybars/src/bars"
	"github.com/njayco/scoremybars/src/bars/db"
	"github.com/njayco/scoremybars/src/dict"
)

var testServer *server

func TestMain(m *testing.M) {
	dbPath := fmt.Sprintf(path.Join("%s", "scoremybars-server-test.db"), os.TempDir())

	err := os.Truncate(dbPath, 0)
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("could not truncate database file %s: %v", dbPath, err)
	}

	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", dbPath, err)
	}
	defer sqlDB.Close()

	if err := db.BootstrapDB(sqlDB); err != nil {
		log.Fatalf("could not bootstrap database %s: %v", dbPath, err)
	}

	testServer = &server{
		analyzer: bars.NewAnalyzer(dict.Embedded()),
		scorer:   nil, // rule-based scoring
		db:       sqlDB,
	}

	m.Run()

	os.Remove(dbPath)
}

func TestHandleAnalyze(t *testing.T) {
	body := `{"lyrics": "[Verse]\nfine today\nokay\ngay", "song_title": "Test", "artist_name": "MC Test"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testServer.handleAnalyze()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `"success":true`)
	assert.Contains(t, out, `"rhyme_scheme":"AAA"`)
	assert.Contains(t, out, `"total_bars":3`)
	assert.Contains(t, out, `"title":"Test"`)
}

func TestHandleAnalyzeRejectsBadInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"lyrics": ""}`))
	rec := httptest.NewRecorder()
	testServer.handleAnalyze()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("not json"))
	rec = httptest.NewRecorder()
	testServer.handleAnalyze()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec = httptest.NewRecorder()
	testServer.handleAnalyze()(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleSample(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sample", nil)
	rec := httptest.NewRecorder()

	testServer.handleSample()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "[Verse 1]")
}

func TestHandleHistory(t *testing.T) {
	// Analyze first so there is at least one record.
	body := `{"lyrics": "cat\nhat", "song_title": "History"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	testServer.handleAnalyze()(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	testServer.handleHistory()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[`)
	assert.Contains(t, rec.Body.String(), "History")
}

func TestHandleHistoryLimitValidation(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=0", nil)
	rec := httptest.NewRecorder()
	testServer.handleHistory()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/history?limit=abc", nil)
	rec = httptest.NewRecorder()
	testServer.handleHistory()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeDuplicateLyricsStoredOnce(t *testing.T) {
	body := `{"lyrics": "unique golden bars right here"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
		rec := httptest.NewRecorder()
		testServer.handleAnalyze()(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	records, err := db.AnalysisDAO.Recent(context.Background(), testServer.db, 100)
	assert.NoError(t, err)

	count := 0
	for _, r := range records {
		if r.Lyrics == "unique golden bars right here" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
