package bot

import "strings"

type Operation uint8

const (
	OpScore Operation = iota
	OpHelp
	OpSample
)

type Command struct {
	Operation Operation
	Lyrics    string
}

// parseCommand interprets a message starting with the bot prefix. Bare
// keywords select the help and sample commands; anything else is treated
// as lyrics to score. Messages without the prefix are ignored.
func parseCommand(content, prefix string) (Command, bool) {
	if !strings.HasPrefix(content, prefix) {
		return Command{}, false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(content, prefix))
	switch strings.ToLower(rest) {
	case "", "help":
		return Command{Operation: OpHelp}, true
	case "sample":
		return Command{Operation: OpSample}, true
	}
	return Command{Operation: OpScore, Lyrics: rest}, true
}

var Help = `Paste your lyrics after the command and I'll score them:
  ~~~%[1]s [lyrics]~~~ - analyze rhyme scheme, density, and scores
  ~~~%[1]s sample~~~ - score a built-in demo song
  ~~~%[1]s help~~~ - show this message

Mark sections with bracket headers like ~~~[Verse 1]~~~ and ~~~[Chorus]~~~ for a per-section breakdown.`

func init() {
	Help = strings.ReplaceAll(Help, "~~~", "`")
}
