package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jonbodner/proteus"
)

// Record is one stored analysis result. Hash fingerprints the lyrics so
// resubmissions of the same text do not pile up in the history.
type Record struct {
	ID           int     `prof:"id"`
	Hash         []byte  `prof:"hash"`
	Title        string  `prof:"title"`
	Artist       string  `prof:"artist"`
	Lyrics       string  `prof:"lyrics"`
	RhymeScheme  string  `prof:"rhyme_scheme"`
	RhymeDensity float64 `prof:"rhyme_density"`
	Cleverness   float64 `prof:"cleverness"`
	RhymeScore   float64 `prof:"rhyme_score"`
	Wordplay     float64 `prof:"wordplay"`
	RadioScore   float64 `prof:"radio_score"`
	Popularity   float64 `prof:"popularity"`
	TotalBars    int     `prof:"total_bars"`
	CreatedAt    string  `prof:"created_at"`
}

var AnalysisDAO AnalysisDAOImpl

type AnalysisDAOImpl struct {
	Insert     func(ctx context.Context, e proteus.ContextExecutor, r Record) (int64, error)    `proq:"q:insert" prop:"r"`
	Recent     func(ctx context.Context, e proteus.ContextQuerier, limit int) ([]Record, error) `proq:"q:recent" prop:"limit"`
	FindByHash func(ctx context.Context, e proteus.ContextQuerier, hash []byte) (Record, error) `proq:"q:findByHash" prop:"hash"`
	// FindByID is only intended for testing
	FindByID func(ctx context.Context, e proteus.ContextQuerier, id int) (Record, error) `proq:"q:findByID" prop:"id"`
}

func init() {
	m := proteus.MapMapper{
		"insert": `INSERT INTO analysis (hash, title, artist, lyrics, rhyme_scheme, rhyme_density, cleverness, rhyme_score, wordplay, radio_score, popularity, total_bars)
				   VALUES (:r.Hash:, :r.Title:, :r.Artist:, :r.Lyrics:, :r.RhymeScheme:, :r.RhymeDensity:, :r.Cleverness:, :r.RhymeScore:, :r.Wordplay:, :r.RadioScore:, :r.Popularity:, :r.TotalBars:)
				   ON CONFLICT(hash) DO NOTHING`,
		"recent":     `SELECT * FROM analysis ORDER BY id DESC LIMIT :limit:`,
		"findByHash": `SELECT * FROM analysis WHERE hash = :hash:`,
		"findByID":   `SELECT * FROM analysis WHERE id = :id:`,
	}
	err := proteus.ShouldBuild(context.Background(), &AnalysisDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// SaveAnalysis stores a record unless the same lyrics were stored before.
// Duplicate submissions are logged and dropped, not treated as errors.
func SaveAnalysis(ctx context.Context, e proteus.ContextWrapper, r Record) error {
	count, err := AnalysisDAO.Insert(ctx, e, r)
	if err != nil {
		log.Println("could not store analysis in database,", err)
		return fmt.Errorf("error while storing analysis: %w", err)
	}
	if count == 0 {
		log.Printf("analysis for %x already stored; skipping duplicate", r.Hash)
	}
	return nil
}
