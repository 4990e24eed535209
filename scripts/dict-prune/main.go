// Command dict-prune filters a full cmudict file down to the entries for a
// given word list, producing the compact pronunciation subset embedded in
// the dictionary package. Variant pronunciations like WORD(2) are kept when
// their base word is selected.
//
// Usage:
//
//	dict-prune <cmudict-file> <wordlist-file> > subset.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: dict-prune <cmudict-file> <wordlist-file>")
		os.Exit(1)
	}
	keep, err := readWordList(os.Args[2])
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
	if err := prune(os.Args[1], keep); err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func readWordList(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	keep := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word != "" {
			keep[word] = struct{}{}
		}
	}
	return keep, scanner.Err()
}

func prune(path string, keep map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	kept := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		word, ok := parseWord(line)
		if !ok {
			continue
		}
		if _, ok := keep[word]; !ok {
			continue
		}
		fmt.Println(line)
		kept++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "kept %d entries for %d words\n", kept, len(keep))
	return nil
}

func parseWord(line string) (string, bool) {
	if strings.HasPrefix(line, ";;;") { // comment
		return "", false
	}
	tokens := strings.SplitN(line, "  ", 2)
	if len(tokens) != 2 {
		return "", false
	}
	word := tokens[0]
	if strings.HasSuffix(word, ")") { // remove extra pronounciation count
		word = word[:len(word)-3]
	}
	return word, true
}
