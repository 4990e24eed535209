package bars

import (
	"math"
	"regexp"
	"strings"
)

// Section is one labeled chunk of a song, e.g. a verse or a chorus.
type Section struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	BarCount  int    `json:"bar_count"`
	LineCount int    `json:"line_count"`
	WordCount int    `json:"word_count"`
}

// Structure summarizes the song's overall shape across sections.
type Structure struct {
	TotalSections         int            `json:"total_sections"`
	SectionTypes          map[string]int `json:"section_types"`
	TotalBars             int            `json:"total_bars"`
	AverageBarsPerSection float64        `json:"average_bars_per_section"`
	StructurePattern      []string       `json:"structure_pattern"`
}

// sectionPatterns maps a header line to its section type. Order matters:
// pre_chorus and post_chorus must win before the bare chorus pattern gets
// a chance at headers like "[Pre-Chorus]".
var sectionPatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"pre_chorus", regexp.MustCompile(`\[pre.?chorus\]`)},
	{"post_chorus", regexp.MustCompile(`\[post.?chorus\]`)},
	{"intro", regexp.MustCompile(`\[intro\]`)},
	{"verse", regexp.MustCompile(`\[verse\s*\d*\]`)},
	{"chorus", regexp.MustCompile(`\[chorus\]|\[hook\]`)},
	{"bridge", regexp.MustCompile(`\[bridge\]`)},
	{"outro", regexp.MustCompile(`\[outro\]`)},
}

// identifySection returns the section type a header line announces, or ""
// when the line is ordinary lyric content.
func identifySection(line string) string {
	lower := strings.ToLower(line)
	for _, p := range sectionPatterns {
		if p.re.MatchString(lower) {
			return p.kind
		}
	}
	return ""
}

// ParseSections splits raw lyrics into typed sections on bracket headers.
// Content before any header is treated as a verse, and lyrics with no
// headers at all come back as a single verse.
func ParseSections(lyrics string) []Section {
	var sections []Section
	var current string
	var body []string

	flush := func() {
		if current != "" && len(body) > 0 {
			sections = append(sections, newSection(current, body))
		}
		body = nil
	}

	rawLines := strings.Split(strings.TrimSpace(lyrics), "\n")
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if kind := identifySection(line); kind != "" {
			flush()
			current = kind
			continue
		}
		if current == "" {
			current = "verse"
		}
		body = append(body, line)
	}
	flush()

	if len(sections) == 0 {
		sections = append(sections, newSection("verse", rawLines))
	}
	return sections
}

func newSection(kind string, lines []string) Section {
	text := strings.Join(lines, "\n")
	return Section{
		Type:      kind,
		Text:      text,
		BarCount:  countBars(lines),
		LineCount: len(lines),
		WordCount: len(strings.Fields(text)),
	}
}

// countBars treats every non-empty, non-header line as one bar.
func countBars(lines []string) int {
	bars := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || identifySection(line) != "" {
			continue
		}
		bars++
	}
	return bars
}

// AnalyzeStructure tallies section types, bar totals, and the section
// pattern ("verse chorus verse ...") across the parsed song.
func AnalyzeStructure(sections []Section) Structure {
	structure := Structure{
		SectionTypes:     map[string]int{},
		StructurePattern: []string{},
		TotalSections:    len(sections),
	}
	for _, s := range sections {
		structure.SectionTypes[s.Type]++
		structure.TotalBars += s.BarCount
		structure.StructurePattern = append(structure.StructurePattern, s.Type)
	}
	if len(sections) > 0 {
		avg := float64(structure.TotalBars) / float64(len(sections))
		structure.AverageBarsPerSection = roundTo(avg, 1)
	}
	return structure
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
