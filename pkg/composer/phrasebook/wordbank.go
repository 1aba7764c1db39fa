package phrasebook

type Category string

const (
	Adjective Category = "adjective"
	Noun      Category = "noun"
	Verb      Category = "verb"
	BodyPart  Category = "body_part"
	Material  Category = "material"
	Emotion   Category = "emotion"
)

var categories = []Category{Adjective, Noun, Verb, BodyPart, Material, Emotion}

// Categories returns every category in placeholder order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Placeholder is the token a template uses to reference the category.
func (c Category) Placeholder() string {
	return "{" + string(c) + "}"
}

type WordBank struct {
	category Category
	words    []string
}

func newWordBank(category Category, words ...string) WordBank {
	return WordBank{category: category, words: words}
}

func (b WordBank) Category() Category {
	return b.category
}

// Words returns a copy of the bank contents.
func (b WordBank) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

var wordBanks = map[Category]WordBank{
	Adjective: newWordBank(Adjective, "gorgeous", "magnificent", "beautiful", "stunning", "amazing", "enchanting"),
	Noun:      newWordBank(Noun, "star", "diamond", "rose", "poem", "melody", "dream"),
	Verb:      newWordBank(Verb, "fall", "swoon", "smile", "blush", "gaze", "melt"),
	BodyPart:  newWordBank(BodyPart, "heart", "pulse", "knees", "mind"),
	Material:  newWordBank(Material, "gold", "silver", "diamond", "magic"),
	Emotion:   newWordBank(Emotion, "butterflies", "warm", "electric", "tender"),
}
