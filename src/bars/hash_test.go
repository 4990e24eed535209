package bars_test

import (
	"github.com/njayco/scoremybars/src/bars"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_DuplicateHash(t *testing.T) {
	equal := [][]string{
		{"spit the hottest bars", "spit the hottest bars"},
		{"spit the hottest bars", "SPIT THE HOTTEST BARS"},
		{"spit the hottest bars", "spit the hottest bar's"},
		{"Spit the hottest bars,", "\"spit the Hottest bars\""},
	}
	notEqual := [][]string{
		{"spit the hottest bars", "spit the hottest barss"},
		{"spit the hottest bars", "spit the hottest  bars"},
		{"spit the hottest bars", "spit the\nhottest bars"},
	}

	for _, tt := range equal {
		assert.Equal(t, bars.DuplicateHash(tt[0]), bars.DuplicateHash(tt[1]), "hash('%s') != hash('%s')", tt[0], tt[1])
	}
	for _, tt := range notEqual {
		assert.NotEqual(t, bars.DuplicateHash(tt[0]), bars.DuplicateHash(tt[1]), "hash('%s') == hash('%s')", tt[0], tt[1])
	}
}
