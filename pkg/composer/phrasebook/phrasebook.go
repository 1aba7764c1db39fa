// Package phrasebook fills love quote and flirt line templates from fixed word banks.
package phrasebook

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Rand is the random source used for word and template selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

type Overrides struct {
	Adjective string
	Noun      string
	Verb      string
}

type Phrasebook struct {
	rng Rand
	mu  sync.Mutex
}

// New returns a Phrasebook drawing from rng. A nil rng uses the process-wide source.
func New(rng Rand) *Phrasebook {
	if rng == nil {
		rng = globalRand{}
	}
	return &Phrasebook{rng: rng}
}

// Generate fills a randomly chosen template of the given content type.
// Empty overrides fall back to a random word from the matching bank.
// Any content type other than LoveQuote draws from the flirt lines.
func (p *Phrasebook) Generate(contentType ContentType, overrides Overrides) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	values := map[Category]string{
		Adjective: p.pickOr(Adjective, overrides.Adjective),
		Noun:      p.pickOr(Noun, overrides.Noun),
		Verb:      p.pickOr(Verb, overrides.Verb),
		BodyPart:  p.pick(BodyPart),
		Material:  p.pick(Material),
		Emotion:   p.pick(Emotion),
	}

	templates := templatesFor(contentType)
	template := templates[p.rng.IntN(len(templates))]

	return fill(template, values)
}

func (p *Phrasebook) pickOr(category Category, override string) string {
	if override != "" {
		return override
	}
	return p.pick(category)
}

func (p *Phrasebook) pick(category Category) string {
	bank := wordBanks[category]
	return bank.words[p.rng.IntN(len(bank.words))]
}

func fill(template string, values map[Category]string) string {
	oldnew := make([]string, 0, 2*len(categories))
	for _, category := range categories {
		oldnew = append(oldnew, category.Placeholder(), values[category])
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}

// Banks returns the word banks in category order.
func (p *Phrasebook) Banks() []WordBank {
	banks := make([]WordBank, 0, len(categories))
	for _, category := range categories {
		banks = append(banks, wordBanks[category])
	}
	return banks
}

func (p *Phrasebook) Bank(category Category) (WordBank, bool) {
	bank, ok := wordBanks[category]
	return bank, ok
}

// Templates returns a copy of the templates for the content type.
func (p *Phrasebook) Templates(contentType ContentType) []string {
	templates := templatesFor(contentType)
	out := make([]string, len(templates))
	copy(out, templates)
	return out
}

func (p *Phrasebook) ContentTypes() []ContentType {
	out := make([]ContentType, len(contentTypes))
	copy(out, contentTypes)
	return out
}
