package lexicon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

func TestEnglishText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want EnglishText
	}{
		{"bare string", `"apple"`, EnglishText{Singular: "apple"}},
		{"object", `{"singular":"man","plural":"men"}`, EnglishText{Singular: "man", Plural: "men"}},
		{"object singular only", `{"singular":"water"}`, EnglishText{Singular: "water"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got EnglishText
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var e EnglishText
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
}

func TestEntry_Form(t *testing.T) {
	t.Parallel()

	e := Entry{
		Cases:  CaseSet{Nom: "კაცი", Erg: "კაცმა"},
		Plural: CaseSet{Nom: "კაცები"},
	}

	form, ok := e.Form(domain.CaseNom, domain.NumberSingular)
	require.True(t, ok)
	assert.Equal(t, "კაცი", form)

	form, ok = e.Form(domain.CaseNom, domain.NumberPlural)
	require.True(t, ok)
	assert.Equal(t, "კაცები", form)

	_, ok = e.Form(domain.CaseDat, domain.NumberSingular)
	assert.False(t, ok)

	// Plural forms never fall back to singular: a missing plural is a
	// data gap the caller has to see.
	_, ok = e.Form(domain.CaseErg, domain.NumberPlural)
	assert.False(t, ok)
}
