package domain

// GlossAnalysis is the per-(preverb, tense) structured gloss record exposed
// to the rendering layer.
type GlossAnalysis struct {
	RawGloss         string `json:"raw_gloss"`
	EffectivePreverb string `json:"effective_preverb,omitempty"`
	ParsedGloss
}

// FallbackNotice records that preverb Preverb reuses Fallback's forms for
// Tense. TranslationCopied is set when the fallback source also supplied
// the English translation.
type FallbackNotice struct {
	Preverb           string `json:"preverb"`
	Fallback          string `json:"fallback"`
	Tense             Tense  `json:"tense"`
	TranslationCopied bool   `json:"translation_copied"`
}

// GeneratedData holds everything derived from a verb during processing.
type GeneratedData struct {
	// Examples and GlossAnalysis are keyed by preverb or DefaultPreverbKey.
	Examples      map[string]map[Tense][]Example      `json:"examples"`
	GlossAnalysis map[string]map[Tense]GlossAnalysis  `json:"gloss_analysis"`
	PreverbForms  map[string]map[Tense]map[Person]string `json:"preverb_forms"`

	// Translations is the post-fallback English translation table. Where a
	// fallback rule exists it is byte-identical to the fallback source.
	Translations map[string]map[Tense]string `json:"translations"`

	Fallbacks []FallbackNotice `json:"fallbacks,omitempty"`
}

// ProcessedVerb is the per-verb artifact consumed by rendering. It is built
// once per run and immutable after construction.
type ProcessedVerb struct {
	Base      Verb          `json:"base_data"`
	Generated GeneratedData `json:"generated_data"`
}
