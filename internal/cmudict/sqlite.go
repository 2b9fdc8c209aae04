package cmudict

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS pronunciations (
	word   TEXT    NOT NULL,
	seq    INTEGER NOT NULL,
	phones TEXT    NOT NULL,
	PRIMARY KEY (word, seq)
);
`

// Compile writes the dictionary to a SQLite file so large dictionaries can
// be reloaded without re-parsing the text format.
func (d *Dictionary) Compile(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO pronunciations (word, seq, phones) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	words := make([]string, 0, len(d.entries))
	for word := range d.entries {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		for seq, phones := range d.entries[word] {
			if _, err := stmt.Exec(word, seq, phones); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert %q: %w", word, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// LoadCompiled reads a dictionary previously written by Compile.
func LoadCompiled(path string) (*Dictionary, error) {
	// sql.Open would silently create an empty database for a bad path.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT word, phones FROM pronunciations ORDER BY word, seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", path, err)
	}
	defer rows.Close()

	d := New()
	for rows.Next() {
		var word, phones string
		if err := rows.Scan(&word, &phones); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		d.entries[word] = append(d.entries[word], phones)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return d, nil
}
