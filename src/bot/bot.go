// Package bot wires the rhyme engine into Discord: any message starting
// with the command prefix gets its lyrics analyzed, scored, and answered
// with a scorecard reply.
package bot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/njayco/scoremybars/src/bars"
	"github.com/njayco/scoremybars/src/score"
)

type Config struct {
	Token          string
	Prefix         string
	ReactToBars    bool
	PositiveReacts []string
	NegativeReacts []string

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tPrefix: %s\n\tReactToBars: %t\n", c.Prefix, c.ReactToBars)
}

type Bot struct {
	session *discordgo.Session

	config   Config
	analyzer *bars.Analyzer
	scorer   *score.Scorer
}

func New(config Config, analyzer *bars.Analyzer, scorer *score.Scorer) Bot {
	if config.Prefix == "" {
		config.Prefix = "!bars"
	}
	log.Printf("Bars Bot Config:\n%v", config)
	return Bot{
		config:   config,
		analyzer: analyzer,
		scorer:   scorer,
	}
}

func (b *Bot) Open() error {
	var err error
	b.session, err = discordgo.New("Bot " + b.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if b.config.Debug {
		b.session.LogLevel = discordgo.LogDebug
	}

	b.session.AddHandler(b.ReceiveNewMessage)

	b.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	if b.config.ReactToBars {
		b.session.Identify.Intents |= discordgo.IntentsGuildMessageReactions | discordgo.IntentsDirectMessageReactions
	}

	err = b.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic on content, %s, panicking on: %v\n%v", strings.ReplaceAll(m.Content, "\n", "\\n"), r, debug.Stack())
			panic(r)
		}
	}()
	if m.Author.Bot { // prevent SkyNet; don't talk to bots
		return
	}
	command, ok := parseCommand(m.Content, b.config.Prefix)
	if !ok {
		return
	}
	switch command.Operation {
	case OpHelp:
		_, err := s.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf(Help, b.config.Prefix), m.Reference())
		if err != nil {
			log.Println("could not reply with help,", err)
		}
	case OpSample:
		b.HandleLyrics(s, m, bars.SampleLyrics)
	case OpScore:
		log.Printf("received lyrics: %s\n", strings.ReplaceAll(command.Lyrics, "\n", "\\n"))
		b.HandleLyrics(s, m, command.Lyrics)
	}
}

func (b *Bot) HandleLyrics(s *discordgo.Session, m *discordgo.MessageCreate, lyrics string) {
	ctx := context.Background()

	sections := bars.ParseSections(lyrics)
	var sectionScores []score.Scores
	var analyses []bars.Analysis
	for _, section := range sections {
		analysis := b.analyzer.AnalyzeRhymes(section.Text)
		analyses = append(analyses, analysis)
		sectionScores = append(sectionScores, b.scorer.ScoreSection(ctx, section, analysis))
	}
	overall := score.Average(sectionScores)
	popularity := score.PredictPopularity(overall)

	reply := b.formatScorecard(sections, analyses, overall, popularity)
	_, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference())
	if err != nil {
		log.Println("could not reply with scorecard,", err)
	}

	if b.config.ReactToBars {
		if popularity.Score >= 60 {
			b.react(s, m, randomString(b.config.PositiveReacts))
		} else {
			b.react(s, m, randomString(b.config.NegativeReacts))
		}
	}
}

func (b *Bot) formatScorecard(sections []bars.Section, analyses []bars.Analysis, overall score.Scores, popularity score.Popularity) string {
	structure := bars.AnalyzeStructure(sections)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Scorecard** (%d bars, %d sections)\n", structure.TotalBars, structure.TotalSections))
	for i, analysis := range analyses {
		if analysis.RhymeScheme == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: scheme `%s`, rhyme density %.0f%%\n", sections[i].Type, analysis.RhymeScheme, analysis.RhymeDensity*100))
	}
	sb.WriteString(fmt.Sprintf("cleverness %.0f | rhymes %.0f | wordplay %.0f | radio %.0f\n",
		overall.Cleverness, overall.RhymeDensity, overall.Wordplay, overall.RadioScore))
	sb.WriteString(fmt.Sprintf("popularity: %.1f (%s) - %s", popularity.Score, popularity.Level, popularity.Description))

	for _, suggestion := range score.Suggestions(overall) {
		sb.WriteString("\n> " + suggestion)
	}
	return sb.String()
}

func (b *Bot) react(s *discordgo.Session, m *discordgo.MessageCreate, reaction string) {
	if reaction == "" {
		return
	}
	err := s.MessageReactionAdd(m.ChannelID, m.Message.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
		return
	}
}

func randomString(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	return strs[rand.Intn(len(strs))]
}
