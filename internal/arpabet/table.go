package arpabet

// toIPA maps each base ARPAbet symbol (stress digit stripped) to its IPA
// rendering. Keys are uppercase and digit-free.
var toIPA = map[string]string{
	// Consonants
	"P": "p", "B": "b", "T": "t", "D": "d", "K": "k", "G": "ɡ",
	"CH": "t͡ʃ", "JH": "d͡ʒ",
	"F": "f", "V": "v", "TH": "θ", "DH": "ð",
	"S": "s", "Z": "z", "SH": "ʃ", "ZH": "ʒ",
	"HH": "h", "M": "m", "N": "n", "NG": "ŋ",
	"L": "l", "R": "ɹ", "Y": "j", "W": "w",

	// Vowels
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ", "AY": "aɪ",
	"EH": "ɛ", "ER": "ɝ", "EY": "eɪ",
	"IH": "ɪ", "IY": "i",
	"OW": "oʊ", "OY": "ɔɪ",
	"UH": "ʊ", "UW": "u",
}

// Symbols returns all base symbols covered by the table.
func Symbols() []string {
	symbols := make([]string, 0, len(toIPA))
	for s := range toIPA {
		symbols = append(symbols, s)
	}
	return symbols
}
