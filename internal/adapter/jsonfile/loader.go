// Package jsonfile loads the authored dataset from a directory of JSON
// documents: the verbs document plus the four lexicon documents.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/lexicon"
)

// Dataset document file names inside the data directory.
const (
	VerbsFile           = "verbs.json"
	SubjectsFile        = "subjects.json"
	DirectObjectsFile   = "direct_objects.json"
	IndirectObjectsFile = "indirect_objects.json"
	AdjectivesFile      = "adjectives.json"
)

// Dataset is the fully loaded input: verbs keyed by id plus the lexicon
// lookup tables.
type Dataset struct {
	Verbs   map[string]*domain.Verb
	Lexicon *lexicon.Tables
}

// Loader reads dataset documents from a directory.
type Loader struct {
	dir string
	log *slog.Logger
}

// NewLoader creates a Loader over the given data directory.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	return &Loader{
		dir: dir,
		log: logger.With("adapter", "jsonfile"),
	}
}

// verbsDoc mirrors the on-disk verbs document.
type verbsDoc struct {
	Verbs map[string]*domain.Verb `json:"verbs"`
}

// LoadDataset reads and decodes all five documents. Every document must
// exist; a dataset without lexicon tables cannot generate examples.
func (l *Loader) LoadDataset(ctx context.Context) (*Dataset, error) {
	var doc verbsDoc
	if err := l.readDoc(VerbsFile, &doc); err != nil {
		return nil, err
	}
	if len(doc.Verbs) == 0 {
		return nil, fmt.Errorf("jsonfile: %s: no verbs: %w", VerbsFile, domain.ErrValidation)
	}
	for id, verb := range doc.Verbs {
		if verb == nil {
			return nil, fmt.Errorf("jsonfile: %s: verb %q: null record: %w", VerbsFile, id, domain.ErrValidation)
		}
		// The map key is authoritative; the record may omit its own id.
		if verb.ID == "" {
			verb.ID = id
		} else if verb.ID != id {
			return nil, fmt.Errorf("jsonfile: %s: verb %q declares id %q: %w", VerbsFile, id, verb.ID, domain.ErrValidation)
		}
	}

	tables := make([]map[string]lexicon.Entry, 4)
	for i, name := range []string{SubjectsFile, DirectObjectsFile, IndirectObjectsFile, AdjectivesFile} {
		if err := l.readDoc(name, &tables[i]); err != nil {
			return nil, err
		}
	}

	l.log.InfoContext(ctx, "dataset loaded",
		slog.String("dir", l.dir),
		slog.Int("verbs", len(doc.Verbs)),
		slog.Int("subjects", len(tables[0])),
		slog.Int("direct_objects", len(tables[1])),
		slog.Int("indirect_objects", len(tables[2])),
		slog.Int("adjectives", len(tables[3])),
	)

	return &Dataset{
		Verbs:   doc.Verbs,
		Lexicon: lexicon.NewTables(tables[0], tables[1], tables[2], tables[3]),
	}, nil
}

// LoadLexiconDocs reads only the four lexicon documents, keyed by table
// name. The lexicon seeder uses this to push the documents into Postgres.
func (l *Loader) LoadLexiconDocs(ctx context.Context) (map[string]map[string]lexicon.Entry, error) {
	files := map[string]string{
		lexicon.TableSubjects:        SubjectsFile,
		lexicon.TableDirectObjects:   DirectObjectsFile,
		lexicon.TableIndirectObjects: IndirectObjectsFile,
		lexicon.TableAdjectives:      AdjectivesFile,
	}

	docs := make(map[string]map[string]lexicon.Entry, len(files))
	total := 0
	for tableName, file := range files {
		var entries map[string]lexicon.Entry
		if err := l.readDoc(file, &entries); err != nil {
			return nil, err
		}
		docs[tableName] = entries
		total += len(entries)
	}

	l.log.InfoContext(ctx, "lexicon documents loaded",
		slog.String("dir", l.dir),
		slog.Int("entries", total),
	)

	return docs, nil
}

func (l *Loader) readDoc(name string, out any) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jsonfile: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("jsonfile: decode %s: %w", name, err)
	}
	return nil
}
