// Package cmudict loads CMU Pronouncing Dictionary data and answers
// word-to-pronunciation queries. Pronunciations are space-delimited ARPAbet
// phone strings, in source order; a word may carry several candidates.
// Dictionaries load from CMUdict-format text files, from a compiled SQLite
// file, or from the small built-in starter set.
package cmudict
