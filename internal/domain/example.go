package domain

// CaseMark records the case and resolved Georgian text of one role, for
// downstream highlighting.
type CaseMark struct {
	Case Case   `json:"case"`
	Text string `json:"text"`
}

// Example is one generated example sentence for a (verb, tense, person,
// preverb) combination.
type Example struct {
	Person   Person `json:"person"`
	Georgian string `json:"georgian"`

	// EnglishHTML wraps each role's text in a span carrying data-role and
	// data-case attributes; English is the same sentence without markup.
	EnglishHTML string `json:"html"`
	English     string `json:"english"`

	CaseMarks map[Role]CaseMark `json:"case_marking"`
}
