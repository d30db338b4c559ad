package domain

// Case is a Georgian grammatical case. Values are the lowercase keys used
// by the lexicon documents; Tag returns the raw-gloss spelling.
type Case string

const (
	CaseNom  Case = "nom"
	CaseErg  Case = "erg"
	CaseDat  Case = "dat"
	CaseGen  Case = "gen"
	CaseInst Case = "inst"
	CaseAdv  Case = "adv"
)

func (c Case) String() string { return string(c) }

// IsValid returns true if the case is a known value.
func (c Case) IsValid() bool {
	switch c {
	case CaseNom, CaseErg, CaseDat, CaseGen, CaseInst, CaseAdv:
		return true
	}
	return false
}

// Tag returns the raw-gloss spelling of the case ("Nom", "Erg", ...).
func (c Case) Tag() string {
	switch c {
	case CaseNom:
		return "Nom"
	case CaseErg:
		return "Erg"
	case CaseDat:
		return "Dat"
	case CaseGen:
		return "Gen"
	case CaseInst:
		return "Inst"
	case CaseAdv:
		return "Adv"
	}
	return ""
}

// ParseCaseTag maps a raw-gloss case spelling to a Case.
func ParseCaseTag(s string) (Case, bool) {
	switch s {
	case "Nom":
		return CaseNom, true
	case "Erg":
		return CaseErg, true
	case "Dat":
		return CaseDat, true
	case "Gen":
		return CaseGen, true
	case "Inst":
		return CaseInst, true
	case "Adv":
		return CaseAdv, true
	}
	return "", false
}

// Role is a syntactic argument role.
type Role string

const (
	RoleSubject        Role = "subject"
	RoleDirectObject   Role = "direct_object"
	RoleIndirectObject Role = "indirect_object"
)

func (r Role) String() string { return string(r) }

// IsValid returns true if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSubject, RoleDirectObject, RoleIndirectObject:
		return true
	}
	return false
}

// Tag returns the raw-gloss spelling of the role ("S", "DO", "IO").
func (r Role) Tag() string {
	switch r {
	case RoleSubject:
		return "S"
	case RoleDirectObject:
		return "DO"
	case RoleIndirectObject:
		return "IO"
	}
	return ""
}

// ParseRoleTag maps a raw-gloss role spelling to a Role.
func ParseRoleTag(s string) (Role, bool) {
	switch s {
	case "S":
		return RoleSubject, true
	case "DO":
		return RoleDirectObject, true
	case "IO":
		return RoleIndirectObject, true
	}
	return "", false
}

// AllRoles returns the roles in canonical S, DO, IO order.
func AllRoles() []Role {
	return []Role{RoleSubject, RoleDirectObject, RoleIndirectObject}
}

// Voice is a Georgian verb voice.
type Voice string

const (
	VoiceActive       Voice = "active"
	VoicePassive      Voice = "passive"
	VoiceMedial       Voice = "medial"
	VoiceMedioActive  Voice = "medio-active"
	VoiceMedioPassive Voice = "medio-passive"
	VoiceStative      Voice = "stative"
)

func (v Voice) String() string { return string(v) }

// IsValid returns true if the voice is a known value.
func (v Voice) IsValid() bool {
	switch v {
	case VoiceActive, VoicePassive, VoiceMedial, VoiceMedioActive, VoiceMedioPassive, VoiceStative:
		return true
	}
	return false
}

// Tag returns the raw-gloss spelling of the voice.
func (v Voice) Tag() string {
	switch v {
	case VoiceActive:
		return "Act"
	case VoicePassive:
		return "Pass"
	case VoiceMedial:
		return "Med"
	case VoiceMedioActive:
		return "MedAct"
	case VoiceMedioPassive:
		return "MedPass"
	case VoiceStative:
		return "Stat"
	}
	return ""
}

// ParseVoiceTag maps a raw-gloss voice spelling to a Voice.
func ParseVoiceTag(s string) (Voice, bool) {
	switch s {
	case "Act":
		return VoiceActive, true
	case "Pass":
		return VoicePassive, true
	case "Med":
		return VoiceMedial, true
	case "MedAct":
		return VoiceMedioActive, true
	case "MedPass":
		return VoiceMedioPassive, true
	case "Stat":
		return VoiceStative, true
	}
	return "", false
}

// Tense is a Georgian screve (tense/mood paradigm).
type Tense string

const (
	TensePresent    Tense = "present"
	TenseImperfect  Tense = "imperfect"
	TenseFuture     Tense = "future"
	TenseAorist     Tense = "aorist"
	TenseOptative   Tense = "optative"
	TenseImperative Tense = "imperative"
)

func (t Tense) String() string { return string(t) }

// IsValid returns true if the tense is a known value.
func (t Tense) IsValid() bool {
	switch t {
	case TensePresent, TenseImperfect, TenseFuture, TenseAorist, TenseOptative, TenseImperative:
		return true
	}
	return false
}

// Tag returns the raw-gloss spelling of the tense.
func (t Tense) Tag() string {
	switch t {
	case TensePresent:
		return "Pres"
	case TenseImperfect:
		return "Impf"
	case TenseFuture:
		return "Fut"
	case TenseAorist:
		return "Aor"
	case TenseOptative:
		return "Opt"
	case TenseImperative:
		return "Impv"
	}
	return ""
}

// ParseTenseTag maps a raw-gloss tense spelling to a Tense.
func ParseTenseTag(s string) (Tense, bool) {
	switch s {
	case "Pres":
		return TensePresent, true
	case "Impf":
		return TenseImperfect, true
	case "Fut":
		return TenseFuture, true
	case "Aor":
		return TenseAorist, true
	case "Opt":
		return TenseOptative, true
	case "Impv":
		return TenseImperative, true
	}
	return "", false
}

// AllTenses returns the tenses in pedagogical order.
func AllTenses() []Tense {
	return []Tense{TensePresent, TenseImperfect, TenseFuture, TenseAorist, TenseOptative, TenseImperative}
}

// Persons returns the grammatical persons required by this tense.
// The imperative exists only in the 2nd person.
func (t Tense) Persons() []Person {
	if t == TenseImperative {
		return []Person{Person2Sg, Person2Pl}
	}
	return AllPersons()
}

// Person is a grammatical person/number combination.
type Person string

const (
	Person1Sg Person = "1sg"
	Person2Sg Person = "2sg"
	Person3Sg Person = "3sg"
	Person1Pl Person = "1pl"
	Person2Pl Person = "2pl"
	Person3Pl Person = "3pl"
)

func (p Person) String() string { return string(p) }

// IsValid returns true if the person is a known value.
func (p Person) IsValid() bool {
	switch p {
	case Person1Sg, Person2Sg, Person3Sg, Person1Pl, Person2Pl, Person3Pl:
		return true
	}
	return false
}

// IsThird returns true for the 3rd person forms (3sg, 3pl).
func (p Person) IsThird() bool {
	return p == Person3Sg || p == Person3Pl
}

// AllPersons returns the six persons in conjugation-table order.
func AllPersons() []Person {
	return []Person{Person1Sg, Person2Sg, Person3Sg, Person1Pl, Person2Pl, Person3Pl}
}

// Number is the grammatical number used for lexicon lookups.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) String() string { return string(n) }

// NumberFor returns the lexicon number for a role in a sentence of the
// given person. Subjects agree with the verb, so a 3pl sentence takes a
// plural subject; every other role/person combination stays singular.
func NumberFor(role Role, person Person) Number {
	if role == RoleSubject && person == Person3Pl {
		return NumberPlural
	}
	return NumberSingular
}

// ArgumentPattern is the bracketed tag declaring which roles a verb takes.
type ArgumentPattern string

const (
	PatternS     ArgumentPattern = "<S>"
	PatternSDO   ArgumentPattern = "<S-DO>"
	PatternSIO   ArgumentPattern = "<S-IO>"
	PatternSDOIO ArgumentPattern = "<S-DO-IO>"
)

func (p ArgumentPattern) String() string { return string(p) }

// IsValid returns true if the pattern is a known value.
func (p ArgumentPattern) IsValid() bool {
	switch p {
	case PatternS, PatternSDO, PatternSIO, PatternSDOIO:
		return true
	}
	return false
}

// Roles returns the roles declared by the pattern in S, DO, IO order.
func (p ArgumentPattern) Roles() []Role {
	switch p {
	case PatternS:
		return []Role{RoleSubject}
	case PatternSDO:
		return []Role{RoleSubject, RoleDirectObject}
	case PatternSIO:
		return []Role{RoleSubject, RoleIndirectObject}
	case PatternSDOIO:
		return []Role{RoleSubject, RoleDirectObject, RoleIndirectObject}
	}
	return nil
}

// Includes returns true if the pattern declares the given role.
func (p ArgumentPattern) Includes(role Role) bool {
	for _, r := range p.Roles() {
		if r == role {
			return true
		}
	}
	return false
}
