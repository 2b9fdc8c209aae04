// Package arpabet translates ARPAbet phone symbols into their International
// Phonetic Alphabet equivalents. The symbol table covers the standard
// CMUdict phone set; vowel stress digits are stripped before lookup and
// symbols outside the table pass through lowercased rather than failing.
package arpabet
