package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary maps lowercased words to their candidate pronunciations.
type Dictionary struct {
	entries map[string][]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]string)}
}

// Load parses a CMUdict-format stream. Lines starting with ";;;" or "#" are
// comments; alternate pronunciations use the WORD(1) marker and are appended
// in file order. Unparseable lines are skipped.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		word := normalizeHeadword(fields[0])
		if word == "" {
			continue
		}

		d.entries[word] = append(d.entries[word], strings.Join(fields[1:], " "))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile loads a dictionary from path. A ".db" suffix selects the
// compiled SQLite format written by Compile; anything else is parsed as
// CMUdict text.
func LoadFile(path string) (*Dictionary, error) {
	if strings.HasSuffix(strings.ToLower(path), ".db") {
		return LoadCompiled(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}

	return d, nil
}

// Pronunciations returns all candidate pronunciations for word, or nil when
// the word is unknown. Lookup is case-insensitive.
func (d *Dictionary) Pronunciations(word string) []string {
	return d.entries[strings.ToLower(word)]
}

// First returns the first candidate pronunciation for word.
func (d *Dictionary) First(word string) (string, bool) {
	prons := d.Pronunciations(word)
	if len(prons) == 0 {
		return "", false
	}
	return prons[0], true
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// normalizeHeadword lowercases a headword and drops the alternate marker
// from entries like WORD(2), so all candidates share one key.
func normalizeHeadword(raw string) string {
	if i := strings.IndexByte(raw, '('); i > 0 && strings.HasSuffix(raw, ")") {
		raw = raw[:i]
	}
	return strings.ToLower(raw)
}
