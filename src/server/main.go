// Command server exposes the ScoreMyBars engine as a JSON REST API and,
// when a token is configured, as a Discord bot.
//
// Endpoints:
//
//	POST /api/analyze   body: {"lyrics":"...", "song_title":"...", "artist_name":"..."}
//	GET  /api/sample
//	GET  /api/history
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/cors"
	"github.com/spf13/viper"

	"github.com/njayco/scoremybars/src/bars"
	"github.com/njayco/scoremybars/src/bars/db"
	"github.com/njayco/scoremybars/src/bot"
	"github.com/njayco/scoremybars/src/dict"
	"github.com/njayco/scoremybars/src/score"
)

// maxLyricsBytes bounds the request body; a song is never this long.
const maxLyricsBytes = 1 << 20

type config struct {
	Addr     string
	DBPath   string
	DictPath string

	AnthropicAPIKey string
	LLMModel        string

	Bot bot.Config
}

func main() {
	conf := readConfig()

	d := loadDictionary(conf.DictPath)
	analyzer := bars.NewAnalyzer(d)
	scorer := score.NewScorer(conf.AnthropicAPIKey, conf.LLMModel)
	if !scorer.Enabled() {
		log.Println("no Anthropic API key configured, scoring is rule-based only")
	}

	sqlDB, err := sql.Open("sqlite3", conf.DBPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", conf.DBPath, err)
	}
	defer sqlDB.Close()
	if err := db.BootstrapDB(sqlDB); err != nil {
		log.Fatalf("could not bootstrap database %s: %v", conf.DBPath, err)
	}

	srv := &server{
		analyzer: analyzer,
		scorer:   scorer,
		db:       sqlDB,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", srv.handleAnalyze())
	mux.HandleFunc("/api/sample", srv.handleSample())
	mux.HandleFunc("/api/history", srv.handleHistory())

	go func() {
		log.Printf("listening on %s", conf.Addr)
		if err := http.ListenAndServe(conf.Addr, cors.Default().Handler(mux)); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	var b bot.Bot
	if conf.Bot.Token != "" {
		b = bot.New(conf.Bot, analyzer, scorer)
		if err := b.Open(); err != nil {
			log.Fatalf("fail error opening bot: %v", err)
		}
		log.Println("Bot is now running.")
	}

	log.Println("Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

	if conf.Bot.Token != "" {
		// Cleanly close down the Discord session.
		if err := b.Close(); err != nil {
			log.Println("error closing session,", err)
		}
	}
}

func readConfig() config {
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("dbPath", "./scoremybarsDB.sqlite3")
	viper.SetDefault("dictPath", "")
	viper.SetDefault("llmModel", score.DefaultModel)
	viper.SetDefault("botPrefix", "!bars")
	viper.SetDefault("reactToBars", true)
	viper.SetDefault("positiveReacts", []string{"🔥", "💯", "🎤"})
	viper.SetDefault("negativeReacts", []string{"🧊", "😴"})
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("SCORE_MY_BARS")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/scoremybars")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}
	return config{
		Addr:            viper.GetString("addr"),
		DBPath:          viper.GetString("dbPath"),
		DictPath:        viper.GetString("dictPath"),
		AnthropicAPIKey: viper.GetString("anthropicApiKey"),
		LLMModel:        viper.GetString("llmModel"),
		Bot: bot.Config{
			Token:          viper.GetString("botToken"),
			Prefix:         viper.GetString("botPrefix"),
			ReactToBars:    viper.GetBool("reactToBars"),
			PositiveReacts: viper.GetStringSlice("positiveReacts"),
			NegativeReacts: viper.GetStringSlice("negativeReacts"),
			Debug:          viper.GetBool("debug"),
		},
	}
}

// loadDictionary prefers an external cmudict file when one is configured
// and falls back to the embedded subset.
func loadDictionary(path string) *dict.Dictionary {
	if path == "" {
		return dict.Embedded()
	}
	d, err := dict.Load(path)
	if err != nil {
		log.Printf("could not load dictionary %s, falling back to embedded subset: %v", path, err)
		return dict.Embedded()
	}
	log.Printf("loaded %d dictionary entries from %s", d.Len(), path)
	return d
}

// ---- JSON response types ------------------------------------------------

type analyzeRequest struct {
	Lyrics     string `json:"lyrics"`
	SongTitle  string `json:"song_title"`
	ArtistName string `json:"artist_name"`
}

type sectionJSON struct {
	Type          string        `json:"type"`
	Text          string        `json:"text"`
	BarCount      int           `json:"bar_count"`
	LineCount     int           `json:"line_count"`
	WordCount     int           `json:"word_count"`
	Scores        score.Scores  `json:"scores"`
	RhymeAnalysis bars.Analysis `json:"rhyme_analysis"`
}

type songMetadataJSON struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type analyzeResponse struct {
	Success              bool             `json:"success"`
	SongMetadata         songMetadataJSON `json:"song_metadata"`
	Sections             []sectionJSON    `json:"sections"`
	OverallScores        score.Scores     `json:"overall_scores"`
	PopularityPrediction score.Popularity `json:"popularity_prediction"`
	Suggestions          []string         `json:"suggestions"`
	Structure            bars.Structure   `json:"structure"`
	TotalBars            int              `json:"total_bars"`
}

type sampleResponse struct {
	Lyrics string `json:"lyrics"`
}

type historyResponse struct {
	Results []db.Record `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

type server struct {
	analyzer *bars.Analyzer
	scorer   *score.Scorer
	db       *sql.DB
}

func (srv *server) handleAnalyze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req analyzeRequest
		body := http.MaxBytesReader(w, r.Body, maxLyricsBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'lyrics' field")
			return
		}
		if req.Lyrics == "" {
			writeError(w, http.StatusBadRequest, "no lyrics provided")
			return
		}

		resp := srv.analyze(r.Context(), req)
		srv.saveHistory(r.Context(), req, resp)
		writeJSON(w, http.StatusOK, resp)
	}
}

func (srv *server) analyze(ctx context.Context, req analyzeRequest) analyzeResponse {
	sections := bars.ParseSections(req.Lyrics)

	out := make([]sectionJSON, 0, len(sections))
	sectionScores := make([]score.Scores, 0, len(sections))
	for _, section := range sections {
		analysis := srv.analyzer.AnalyzeRhymes(section.Text)
		scores := srv.scorer.ScoreSection(ctx, section, analysis)
		sectionScores = append(sectionScores, scores)
		out = append(out, sectionJSON{
			Type:          section.Type,
			Text:          section.Text,
			BarCount:      section.BarCount,
			LineCount:     section.LineCount,
			WordCount:     section.WordCount,
			Scores:        scores,
			RhymeAnalysis: analysis,
		})
	}

	overall := score.Average(sectionScores)
	structure := bars.AnalyzeStructure(sections)
	return analyzeResponse{
		Success:              true,
		SongMetadata:         songMetadataJSON{Title: req.SongTitle, Artist: req.ArtistName},
		Sections:             out,
		OverallScores:        overall,
		PopularityPrediction: score.PredictPopularity(overall),
		Suggestions:          score.Suggestions(overall),
		Structure:            structure,
		TotalBars:            structure.TotalBars,
	}
}

// saveHistory records the analysis. Storage problems are logged, never
// surfaced to the caller; the analysis itself already succeeded.
func (srv *server) saveHistory(ctx context.Context, req analyzeRequest, resp analyzeResponse) {
	hash := bars.DuplicateHash(req.Lyrics)

	scheme := ""
	density := 0.0
	if len(resp.Sections) > 0 {
		scheme = resp.Sections[0].RhymeAnalysis.RhymeScheme
		for _, s := range resp.Sections {
			density += s.RhymeAnalysis.RhymeDensity
		}
		density /= float64(len(resp.Sections))
	}

	err := db.SaveAnalysis(ctx, srv.db, db.Record{
		Hash:         hash[:],
		Title:        req.SongTitle,
		Artist:       req.ArtistName,
		Lyrics:       req.Lyrics,
		RhymeScheme:  scheme,
		RhymeDensity: density,
		Cleverness:   resp.OverallScores.Cleverness,
		RhymeScore:   resp.OverallScores.RhymeDensity,
		Wordplay:     resp.OverallScores.Wordplay,
		RadioScore:   resp.OverallScores.RadioScore,
		Popularity:   resp.PopularityPrediction.Score,
		TotalBars:    resp.TotalBars,
	})
	if err != nil {
		log.Println("could not save analysis history,", err)
	}
}

func (srv *server) handleSample() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, sampleResponse{Lyrics: bars.SampleLyrics})
	}
}

func (srv *server) handleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 100 {
				writeError(w, http.StatusBadRequest, "'limit' must be an integer between 1 and 100")
				return
			}
			limit = n
		}
		records, err := db.AnalysisDAO.Recent(r.Context(), srv.db, limit)
		if err != nil {
			log.Println("could not load history,", err)
			writeError(w, http.StatusInternalServerError, "could not load history")
			return
		}
		if records == nil {
			records = []db.Record{}
		}
		writeJSON(w, http.StatusOK, historyResponse{Results: records})
	}
}
