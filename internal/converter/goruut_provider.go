package converter

import (
	"context"
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// GoruutProvider phonemizes text in-process with the goruut engine. It is
// the default primary converter: no network, no API key.
type GoruutProvider struct {
	phonemizer *lib.Phonemizer
}

// NewGoruutProvider creates a new goruut-backed converter.
func NewGoruutProvider() *GoruutProvider {
	return &GoruutProvider{
		phonemizer: lib.NewPhonemizer(nil),
	}
}

// Convert phonemizes text as English and joins the per-word IPA renderings
// with single spaces.
func (p *GoruutProvider) Convert(ctx context.Context, text string) (string, error) {
	resp := p.phonemizer.Sentence(requests.PhonemizeSentence{
		Language: "English",
		Sentence: text,
	})

	var b strings.Builder
	for i, word := range resp.Words {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(word.Phonetic)
	}

	return b.String(), nil
}

// Name returns the provider name.
func (p *GoruutProvider) Name() string {
	return "goruut"
}

// IsAvailable always succeeds: the engine runs in-process.
func (p *GoruutProvider) IsAvailable() error {
	return nil
}
