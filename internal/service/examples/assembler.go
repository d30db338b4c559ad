// Package examples assembles example sentences from parsed glosses,
// derived verb forms, and lexicon lookups. Georgian parts are ordered
// subject–object(s)–verb; English parts are assembled separately in SVO
// order from the same resolved role data.
package examples

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// Assembler builds one Example per (verb, tense, person, preverb). It is
// stateless: every call works from already-resolved inputs.
type Assembler struct {
	log *slog.Logger
	lex *lexicon.Resolver
}

// New creates an Assembler.
func New(log *slog.Logger, lex *lexicon.Resolver) *Assembler {
	return &Assembler{log: log, lex: lex}
}

// BuildInput carries everything one example needs. Form is the derived
// (post-fallback) Georgian verb form; Translation is the English base
// translation effective for the preverb.
type BuildInput struct {
	Verb        *domain.Verb
	Gloss       *domain.ParsedGloss
	Tense       domain.Tense
	Person      domain.Person
	Preverb     string
	Form        string
	Translation string
}

// phrase is one resolved sentence part in both renderings.
type phrase struct {
	georgian string
	english  string
	html     string
}

// Build assembles one example sentence. Missing noun/adjective/case
// configuration fails with full context (verb id, role, person) rather
// than being masked with placeholder text.
func (a *Assembler) Build(ctx context.Context, in BuildInput) (domain.Example, error) {
	if in.Form == "" || in.Form == domain.FormPlaceholder {
		return domain.Example{}, fmt.Errorf("verb %q: no %s form for %s: %w",
			in.Verb.ID, in.Tense, in.Person, domain.ErrValidation)
	}

	caseMarks := make(map[domain.Role]domain.CaseMark)
	var subject, directObject, indirectObject *phrase

	for _, role := range domain.AllRoles() {
		slot, ok := in.Gloss.Arguments[role]
		if !ok {
			continue
		}

		var p *phrase
		var err error
		if role == domain.RoleSubject && !in.Person.IsThird() {
			// Georgian omits the pronoun; English carries exactly one.
			// The case mark keeps the slot's case with empty text, so
			// every gloss argument still yields a marking record.
			p = &phrase{
				english: pronouns[in.Person],
				html:    roleSpan(role, slot.Case, pronouns[in.Person]),
			}
			caseMarks[role] = domain.CaseMark{Case: slot.Case}
		} else {
			p, err = a.resolveRole(ctx, in, role, slot)
			if err != nil {
				return domain.Example{}, err
			}
			caseMarks[role] = domain.CaseMark{Case: slot.Case, Text: p.georgian}
		}

		switch role {
		case domain.RoleSubject:
			subject = p
		case domain.RoleDirectObject:
			directObject = p
		case domain.RoleIndirectObject:
			indirectObject = p
		}
	}

	verb := a.verbPhrase(in)

	georgian := joinParts(
		partGeorgian(subject), partGeorgian(directObject), partGeorgian(indirectObject), verb.georgian)
	english := joinParts(
		partEnglish(subject), verb.english, partEnglish(directObject), partEnglish(indirectObject))
	englishHTML := joinParts(
		partHTML(subject), verb.html, partHTML(directObject), partHTML(indirectObject))

	a.log.DebugContext(ctx, "example assembled",
		slog.String("verb_id", in.Verb.ID),
		slog.String("tense", string(in.Tense)),
		slog.String("person", string(in.Person)),
		slog.String("preverb", in.Preverb),
	)

	return domain.Example{
		Person:      in.Person,
		Georgian:    georgian,
		English:     english,
		EnglishHTML: englishHTML,
		CaseMarks:   caseMarks,
	}, nil
}

// resolveRole looks up the noun and adjective configured for a role/person
// and renders both sides.
func (a *Assembler) resolveRole(ctx context.Context, in BuildInput, role domain.Role, slot domain.ArgumentSlot) (*phrase, error) {
	ref, ok := in.Verb.Syntax.Arguments[role][in.Person]
	if !ok || ref.Noun == "" {
		return nil, &domain.ArgumentResolutionError{
			VerbID: in.Verb.ID,
			Role:   role,
			Person: in.Person,
			Reason: "no noun key configured",
			Hint:   fmt.Sprintf("add syntax.arguments.%s.%s.noun to the verb record", role, in.Person),
		}
	}

	number := domain.NumberFor(role, in.Person)

	noun, err := a.lex.CaseForm(ctx, ref.Noun, slot.Case, number)
	if err != nil {
		return nil, fmt.Errorf("verb %q: %s/%s noun %q in %s: check the %s lexicon document: %w",
			in.Verb.ID, role, in.Person, ref.Noun, slot.Case, role, err)
	}
	adjective, err := a.lex.AdjectiveForm(ctx, ref.Adjective, slot.Case)
	if err != nil {
		return nil, fmt.Errorf("verb %q: %s/%s adjective %q in %s: check the adjectives document: %w",
			in.Verb.ID, role, in.Person, ref.Adjective, slot.Case, err)
	}

	englishNoun, err := a.lex.English(ctx, ref.Noun, number)
	if err != nil {
		return nil, fmt.Errorf("verb %q: %s/%s noun %q: missing english text: %w",
			in.Verb.ID, role, in.Person, ref.Noun, err)
	}
	englishAdjective, err := a.lex.EnglishAdjective(ctx, ref.Adjective)
	if err != nil {
		return nil, fmt.Errorf("verb %q: %s/%s adjective %q: missing english text: %w",
			in.Verb.ID, role, in.Person, ref.Adjective, err)
	}

	georgian := joinParts(adjective, noun)
	english := joinParts(englishAdjective, englishNoun)
	if slot.Case == domain.CaseNom && in.Person.IsThird() {
		english = "the " + english
	}
	if prep := in.Verb.Prepositions[role]; prep != "" {
		english = prep + " " + english
	}

	return &phrase{
		georgian: georgian,
		english:  english,
		html:     roleSpan(role, slot.Case, english),
	}, nil
}

// verbPhrase renders the verb itself. The optative takes the Georgian
// modal particle and "should" on the English side; other tenses apply
// subject-verb agreement.
func (a *Assembler) verbPhrase(in BuildInput) phrase {
	georgian := in.Form
	english := in.Translation

	if in.Tense == domain.TenseOptative {
		georgian = OptativeParticle + " " + georgian
		english = ensureShould(english)
	} else {
		english = applyAgreement(english, in.Tense, in.Person)
	}

	return phrase{georgian: georgian, english: english, html: english}
}

func partGeorgian(p *phrase) string {
	if p == nil {
		return ""
	}
	return p.georgian
}

func partEnglish(p *phrase) string {
	if p == nil {
		return ""
	}
	return p.english
}

func partHTML(p *phrase) string {
	if p == nil {
		return ""
	}
	return p.html
}

// joinParts joins non-empty parts with single spaces.
func joinParts(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
