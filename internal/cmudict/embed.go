package cmudict

import (
	_ "embed"
	"strings"
)

//go:embed starter.dict
var starterDict string

// LoadEmbedded returns the built-in starter dictionary, so the tool works
// without any external data files.
func LoadEmbedded() *Dictionary {
	d, err := Load(strings.NewReader(starterDict))
	if err != nil {
		// The starter dictionary ships inside the binary and always parses.
		panic(err)
	}
	return d
}
