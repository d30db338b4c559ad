package domain

// FormPlaceholder marks a legitimately absent verb form in the dataset.
// It is passed through derivation unchanged and produces no example.
const FormPlaceholder = "-"

// DefaultPreverbKey indexes examples, gloss analyses, and translations for
// verbs without multiple preverbs.
const DefaultPreverbKey = "default"

// Verb is one verb record as loaded from the dataset. It is processed
// read-only; derived data lives in ProcessedVerb.
type Verb struct {
	ID           string                `json:"id"`
	Georgian     string                `json:"georgian"`
	SemanticKey  string                `json:"semantic_key"`
	Category     string                `json:"category"`
	Conjugations map[Tense]Conjugation `json:"conjugations"`

	PreverbConfig PreverbConfig `json:"preverb_config"`
	PreverbRules  PreverbRules  `json:"preverb_rules"`

	// EnglishTranslations maps preverb (or DefaultPreverbKey) to per-tense
	// base translations.
	EnglishTranslations map[string]map[Tense]string `json:"english_translations"`

	Syntax       Syntax          `json:"syntax"`
	Prepositions map[Role]string `json:"prepositions"`
}

// Conjugation holds the authored forms and raw gloss for one tense.
type Conjugation struct {
	Forms    map[Person]string `json:"forms"`
	RawGloss string            `json:"raw_gloss"`
}

// PreverbConfig declares which preverbs a verb has and which one the
// authored forms are keyed to.
type PreverbConfig struct {
	HasMultiplePreverbs bool     `json:"has_multiple_preverbs"`
	DefaultPreverb      string   `json:"default_preverb"`
	AvailablePreverbs   []string `json:"available_preverbs"`
}

// PreverbRules holds stem-replacement texts and tense-specific fallbacks.
type PreverbRules struct {
	// Replacements maps a preverb to the text substituted for the default
	// preverb prefix. A preverb without an entry uses its own text.
	Replacements map[string]string `json:"replacements"`

	// TenseSpecificFallbacks maps preverb P to tenses where P reuses
	// another preverb's forms and translation.
	TenseSpecificFallbacks map[string]map[Tense]string `json:"tense_specific_fallbacks"`
}

// Syntax declares the noun/adjective keys backing each argument role.
type Syntax struct {
	Arguments map[Role]map[Person]ArgumentRef `json:"arguments"`
}

// ArgumentRef names the lexicon keys for one role/person slot.
// Adjective may be the sentinel "none" (case-insensitive) meaning no
// adjective.
type ArgumentRef struct {
	Noun      string `json:"noun"`
	Adjective string `json:"adjective"`
}

// PreverbKeys returns the keys under which derived data is stored for this
// verb: the available preverbs, or just DefaultPreverbKey.
func (v *Verb) PreverbKeys() []string {
	if !v.PreverbConfig.HasMultiplePreverbs || len(v.PreverbConfig.AvailablePreverbs) == 0 {
		return []string{DefaultPreverbKey}
	}
	return v.PreverbConfig.AvailablePreverbs
}

// Translation returns the English base translation for a preverb and tense,
// falling back to the default translation table.
func (v *Verb) Translation(preverb string, tense Tense) (string, bool) {
	if t, ok := v.EnglishTranslations[preverb][tense]; ok && t != "" {
		return t, true
	}
	if t, ok := v.EnglishTranslations[DefaultPreverbKey][tense]; ok && t != "" {
		return t, true
	}
	return "", false
}
