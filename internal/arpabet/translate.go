package arpabet

import "strings"

// ToIPA converts one ARPAbet symbol to its IPA rendering. Stress digits are
// stripped first (AE1 looks up AE). Symbols outside the table come back
// lowercased instead of raising an error.
func ToIPA(symbol string) string {
	base := stripDigits(symbol)
	if ipa, ok := toIPA[base]; ok {
		return ipa
	}
	return strings.ToLower(base)
}

// PhonesToIPA converts a sequence of ARPAbet symbols and joins the IPA
// renderings with single spaces.
func PhonesToIPA(phones []string) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = ToIPA(p)
	}
	return strings.Join(parts, " ")
}

func stripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
