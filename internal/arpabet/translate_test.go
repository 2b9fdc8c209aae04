package arpabet

import (
	"strings"
	"testing"
)

func TestToIPA_Consonants(t *testing.T) {
	tests := []struct {
		symbol   string
		expected string
	}{
		{"P", "p"},
		{"B", "b"},
		{"G", "ɡ"},
		{"CH", "t͡ʃ"},
		{"JH", "d͡ʒ"},
		{"TH", "θ"},
		{"DH", "ð"},
		{"SH", "ʃ"},
		{"ZH", "ʒ"},
		{"HH", "h"},
		{"NG", "ŋ"},
		{"R", "ɹ"},
		{"Y", "j"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			if got := ToIPA(tt.symbol); got != tt.expected {
				t.Errorf("ToIPA(%q) = %q, want %q", tt.symbol, got, tt.expected)
			}
		})
	}
}

func TestToIPA_StressDigitsStripped(t *testing.T) {
	// Every stressed variant must translate exactly like the digit-free form.
	vowels := []string{
		"AA", "AE", "AH", "AO", "AW", "AY",
		"EH", "ER", "EY", "IH", "IY",
		"OW", "OY", "UH", "UW",
	}

	for _, vowel := range vowels {
		base := ToIPA(vowel)
		for _, digit := range []string{"0", "1", "2"} {
			stressed := vowel + digit
			if got := ToIPA(stressed); got != base {
				t.Errorf("ToIPA(%q) = %q, want %q (same as %q)", stressed, got, base, vowel)
			}
		}
	}
}

func TestToIPA_UnknownSymbolPassthrough(t *testing.T) {
	tests := []struct {
		symbol   string
		expected string
	}{
		{"AX", "ax"},    // schwa is not part of the CMUdict set
		{"DX", "dx"},    // flap
		{"Q", "q"},      // glottal stop
		{"AX0", "ax"},   // digit stripped before passthrough
		{"FOO1", "foo"}, // arbitrary unknown vowel-like symbol
	}

	for _, tt := range tests {
		if got := ToIPA(tt.symbol); got != tt.expected {
			t.Errorf("ToIPA(%q) = %q, want %q", tt.symbol, got, tt.expected)
		}
	}
}

func TestToIPA_CaseSensitiveLookup(t *testing.T) {
	// Lowercase input never matches the uppercase table and passes through.
	if got := ToIPA("ae1"); got != "ae" {
		t.Errorf("ToIPA(\"ae1\") = %q, want \"ae\"", got)
	}
}

func TestPhonesToIPA(t *testing.T) {
	tests := []struct {
		name     string
		phones   []string
		expected string
	}{
		{"cat", []string{"K", "AE1", "T"}, "k æ t"},
		{"secret", []string{"S", "IY1", "K", "R", "AH0", "T"}, "s i k ɹ ʌ t"},
		{"single phone", []string{"NG"}, "ŋ"},
		{"empty", nil, ""},
		{"unknown mixed in", []string{"K", "AX0", "T"}, "k ax t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhonesToIPA(tt.phones); got != tt.expected {
				t.Errorf("PhonesToIPA(%v) = %q, want %q", tt.phones, got, tt.expected)
			}
		})
	}
}

func TestSymbols_TableInvariants(t *testing.T) {
	symbols := Symbols()

	if len(symbols) != 39 {
		t.Errorf("Expected 39 ARPAbet symbols, got %d", len(symbols))
	}

	for _, s := range symbols {
		if s != strings.ToUpper(s) {
			t.Errorf("Table key %q is not uppercase", s)
		}
		if strings.ContainsAny(s, "0123456789") {
			t.Errorf("Table key %q contains a stress digit", s)
		}
	}
}
