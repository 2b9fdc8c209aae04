package converter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/text2ipa/internal/arpabet"
	"codeberg.org/snonux/text2ipa/internal/cmudict"
)

// Converter produces one IPA string per phrase, preferring the primary
// provider and degrading to word-by-word dictionary lookup.
type Converter struct {
	primary Provider            // nil means fallback only
	dict    *cmudict.Dictionary // nil means no fallback available
	debug   bool
}

// New creates a converter. Either collaborator may be nil; a converter with
// neither fails on the first non-empty phrase.
func New(primary Provider, dict *cmudict.Dictionary, debug bool) *Converter {
	return &Converter{
		primary: primary,
		dict:    dict,
		debug:   debug,
	}
}

// ToIPA converts one phrase. Empty and whitespace-only phrases convert to
// the empty string without error. When the primary provider yields a
// non-empty result, that result wins verbatim (trimmed) and sep is ignored:
// the separator only applies on the fallback path.
func (c *Converter) ToIPA(ctx context.Context, phrase, sep string) (string, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return "", nil
	}

	if c.primary != nil {
		result, err := c.primary.Convert(ctx, phrase)
		if err == nil && strings.TrimSpace(result) != "" {
			return strings.TrimSpace(result), nil
		}
		if err != nil {
			c.debugf("%s failed: %v", c.primary.Name(), err)
		} else {
			c.debugf("%s returned an empty result", c.primary.Name())
		}
	}

	result, err := c.wordsToIPA(strings.Fields(phrase))
	if err != nil {
		return "", err
	}

	// Re-delimit with the caller's separator. Phones within a word are also
	// space-separated, so a non-space separator lands between phones too.
	// Known ambiguity inherited from the original tool; kept verbatim.
	return strings.Join(strings.Fields(result), sep), nil
}

// wordsToIPA renders each word through the pronunciation dictionary,
// taking the first candidate pronunciation. Unknown words pass through
// with their original spelling.
func (c *Converter) wordsToIPA(words []string) (string, error) {
	if c.dict == nil {
		return "", fmt.Errorf("pronunciation dictionary not available and no primary converter succeeded")
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		prons := c.dict.Pronunciations(w)
		c.debugf("%s -> %v", w, prons)
		if len(prons) == 0 {
			out = append(out, w)
			continue
		}
		out = append(out, arpabet.PhonesToIPA(strings.Fields(prons[0])))
	}

	return strings.Join(out, " "), nil
}

func (c *Converter) debugf(format string, args ...interface{}) {
	if c.debug {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}
