// Package converter turns English phrases into IPA transcription strings.
// A pluggable primary provider (the in-process goruut phonemizer, or an
// OpenAI/Gemini model) is tried first; when it is missing or fails, each
// word is looked up in a CMU pronunciation dictionary and its ARPAbet
// phones are translated symbol by symbol. Unknown words keep their
// original spelling, so fallback output can mix IPA and orthography.
package converter
