package conjugador

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tab := conjugate(t, "ir")

	got := tab.Analyze("fomos")
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.Equal(t, PreteriteIndicative, a.Tense)
		assert.Equal(t, FirstPlural, a.Person)
		assert.Equal(t, "fomos", a.Form)
	}
	assert.Len(t, got, VariantCount)
	assert.Equal(t, BrazilianPostReform, got[0].Variant)
	assert.Equal(t, "preterite-indicative, first plural (bp)", got[0].Description())
}

func TestAnalyzeAmbiguous(t *testing.T) {
	tab := conjugate(t, "falar")
	var tenses []Tense
	for _, a := range tab.Analyze("falar") {
		if a.Variant == BrazilianPostReform {
			tenses = append(tenses, a.Tense)
		}
	}
	// Future subjunctive and personal infinitive share "falar" in two
	// persons each, the impersonal infinitive in its single form.
	assert.Equal(t, []Tense{
		FutureSubjunctive, FutureSubjunctive,
		PersonalInfinitive, PersonalInfinitive,
		ImpersonalInfinitive,
	}, tenses)
}

func TestAnalyzeNormalizesInput(t *testing.T) {
	tab := conjugate(t, "pôr")
	got := tab.Analyze(" Pôs ")
	require.Len(t, got, VariantCount)
	assert.Equal(t, PreteriteIndicative, got[0].Tense)
	assert.Equal(t, ThirdSingular, got[0].Person)
}

func TestAnalyzeSingleForm(t *testing.T) {
	tab := conjugate(t, "comer")
	got := tab.Analyze("comido")
	require.Len(t, got, VariantCount)
	assert.Equal(t, "past-participle (ep)", got[2].Description())
}

func TestAnalyzeCompound(t *testing.T) {
	tab := conjugate(t, "comer")
	got := tab.Analyze("hei comido")
	require.NotEmpty(t, got)
	assert.Equal(t, CompoundPresentIndicative, got[0].Tense)
	assert.Equal(t, FirstSingular, got[0].Person)
}

func TestAnalyzeMiss(t *testing.T) {
	tab := conjugate(t, "falar")
	assert.Empty(t, tab.Analyze("comemos"))
	assert.Empty(t, tab.Analyze("  "))
}

func TestPersonString(t *testing.T) {
	assert.Equal(t, "third plural", ThirdPlural.String())
	assert.Equal(t, "unknown", Person(6).String())
}
