package bars

import "fmt"

// buildGroups folds end-rhyme pairs into groups of words that share a
// rhyming tail. Each word joins the first existing group whose
// representative (the group's first word) it rhymes with; otherwise it
// opens a new group filed under its own rhyme key. Rhyming is not
// transitive, so two groups can carry the same key; later ones get a
// "#2", "#3" suffix to keep keys unique.
func (a *Analyzer) buildGroups(pairs []EndRhymePair) []RhymeGroup {
	groups := []RhymeGroup{}
	keyCount := map[string]int{}
	place := func(word string) {
		for i := range groups {
			for _, member := range groups[i].Words {
				if member == word {
					return
				}
			}
		}
		for i := range groups {
			if a.Rhymes(word, groups[i].Words[0]) {
				groups[i].Words = append(groups[i].Words, word)
				return
			}
		}
		key := a.rhymeKey(word)
		keyCount[key]++
		if n := keyCount[key]; n > 1 {
			key = fmt.Sprintf("%s#%d", key, n)
		}
		groups = append(groups, RhymeGroup{RhymeKey: key, Words: []string{word}})
	}
	for _, pair := range pairs {
		place(pair.Word1)
		place(pair.Word2)
	}
	return groups
}
