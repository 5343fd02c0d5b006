package conjugador

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsPronouns(t *testing.T) {
	verb := MustVerb("falar")
	tests := []struct {
		name     string
		pronouns []string
		ok       bool
	}{
		{"none", nil, true},
		{"direct", []string{"o"}, true},
		{"indirect", []string{"lhe"}, true},
		{"reflexive", []string{"se"}, true},
		{"indirect then direct", []string{"lhe", "o"}, true},
		{"direct then indirect", []string{"o", "lhe"}, false},
		{"two direct", []string{"o", "a"}, false},
		{"reflexive pair", []string{"se", "o"}, false},
		{"unknown", []string{"ele"}, false},
		{"three", []string{"me", "te", "o"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOptions(verb, BrazilianPostReform, RegularMood, tt.pronouns...)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, len(tt.pronouns), len(o.Pronouns))
				return
			}
			assert.Nil(t, o)
			assert.True(t, errors.Is(err, ErrInvalidRequest), "%v", err)
		})
	}
}

func TestNewOptionsInvalid(t *testing.T) {
	verb := MustVerb("falar")
	_, err := NewOptions(nil, BrazilianPostReform, RegularMood)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	_, err = NewOptions(verb, Variant(4), RegularMood)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	_, err = NewOptions(verb, BrazilianPostReform, Mood(3))
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestNewOptionsCopiesPronouns(t *testing.T) {
	pronouns := []string{"lhe", "o"}
	o, err := NewOptions(MustVerb("falar"), BrazilianPostReform, RegularMood, pronouns...)
	require.NoError(t, err)
	pronouns[0] = "me"
	assert.Equal(t, []string{"lhe", "o"}, o.Pronouns)
}

func TestParseOptions(t *testing.T) {
	o, err := ParseOptions("falar", "ep", "progressive", "te")
	require.NoError(t, err)
	assert.Equal(t, "falar", o.Verb.Infinitive())
	assert.Equal(t, EuropeanPostReform, o.Variant)
	assert.Equal(t, ProgressiveMood, o.Mood)
	assert.Equal(t, []string{"te"}, o.Pronouns)

	_, err = ParseOptions("casa", "bp", "regular")
	assert.True(t, errors.Is(err, ErrInvalidInfinitive))
	_, err = ParseOptions("falar", "br", "regular")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	_, err = ParseOptions("falar", "bp", "active")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func conjugateOptions(t *testing.T, inf, variant, mood string, pronouns ...string) VariantTable {
	t.Helper()
	o, err := ParseOptions(inf, variant, mood, pronouns...)
	require.NoError(t, err)
	vt, err := ConjugateOptions(o, testAux(t))
	require.NoError(t, err)
	return vt
}

func TestConjugateOptionsRegular(t *testing.T) {
	bp := conjugateOptions(t, "falar", "bp", "regular", "o")
	assert.Equal(t, Cell{"o falo"}, bp.Rows[PresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"falá-lo-ei"}, bp.Rows[FutureIndicative][FirstSingular])
	assert.Equal(t, Cell{"tenho o falado", "hei o falado"}, bp.Rows[CompoundPresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"falá-lo"}, bp.Rows[ImpersonalInfinitive][0])
	assert.Equal(t, Cell{"falado"}, bp.Rows[PastParticiple][0])
	assert.Equal(t, Cell{"fala-o"}, bp.Rows[ImperativeAffirmative][SecondSingular])

	ep := conjugateOptions(t, "falar", "ep", "regular", "o")
	assert.Equal(t, Cell{"falo-o"}, ep.Rows[PresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"falamo-lo"}, ep.Rows[PresentIndicative][FirstPlural])
	assert.Equal(t, Cell{"falam-no"}, ep.Rows[PresentIndicative][ThirdPlural])
	assert.Equal(t, Cell{"tenho-o falado", "hei-o falado"}, ep.Rows[CompoundPresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"o fale"}, ep.Rows[PresentSubjunctive][FirstSingular])
}

func TestConjugateOptionsContracted(t *testing.T) {
	vt := conjugateOptions(t, "dizer", "ep", "regular", "lhe", "o")
	assert.Equal(t, Cell{"digo-lho"}, vt.Rows[PresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"dir-lho-ei"}, vt.Rows[FutureIndicative][FirstSingular])

	vt = conjugateOptions(t, "dizer", "ep", "regular", "nos", "o")
	assert.Equal(t, Cell{"dizemo-no-lo"}, vt.Rows[PresentIndicative][FirstPlural])
}

func TestConjugateOptionsReflexive(t *testing.T) {
	vt := conjugateOptions(t, "lavar", "ep", "regular", "se")
	assert.Equal(t, row("lavo-me", "lavas-te", "lava-se", "lavamo-nos", "lavais-vos", "lavam-se"),
		vt.Rows[PresentIndicative])
	assert.Equal(t, Cell{"lavar-se"}, vt.Rows[ImpersonalInfinitive][0])

	bp := conjugateOptions(t, "lavar", "bp", "regular", "se")
	assert.Equal(t, Cell{"me lavo"}, bp.Rows[PresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"nos lavamos"}, bp.Rows[PresentIndicative][FirstPlural])
}

func TestConjugateOptionsProgressive(t *testing.T) {
	bp := conjugateOptions(t, "falar", "bp", "progressive", "te")
	assert.Equal(t, Cell{"estou te falando"}, bp.Rows[PresentIndicative][FirstSingular])
	assert.Equal(t, Cell{"te esteja falando"}, bp.Rows[PresentSubjunctive][FirstSingular])

	ep := conjugateOptions(t, "falar", "ep", "progressive", "o")
	assert.Equal(t, Cell{"estou a falá-lo"}, ep.Rows[PresentIndicative][FirstSingular])
}

func TestConjugateOptionsPassive(t *testing.T) {
	vt := conjugateOptions(t, "falar", "bp", "passive", "lhe")
	assert.Equal(t, Cell{"lhe é falado"}, vt.Rows[PresentIndicative][ThirdSingular])

	aux := testAux(t)
	for _, pronouns := range [][]string{{"o"}, {"se"}, {"lhe", "o"}} {
		o, err := ParseOptions("falar", "bp", "passive", pronouns...)
		require.NoError(t, err)
		_, err = ConjugateOptions(o, aux)
		assert.True(t, errors.Is(err, ErrUnsupportedPronoun), "%v", pronouns)
		assert.NotEmpty(t, errors.FlattenHints(err))
	}
}

func TestConjugateOptionsErrors(t *testing.T) {
	_, err := ConjugateOptions(nil, testAux(t))
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	o, err := ParseOptions("falar", "bp", "regular")
	require.NoError(t, err)
	_, err = ConjugateOptions(o, nil)
	assert.True(t, errors.Is(err, ErrAuxiliariesNotBuilt))
}

func TestContract(t *testing.T) {
	assert.Equal(t, "lho", Contract("lhe", "o"))
	assert.Equal(t, "lhas", Contract("lhes", "as"))
	assert.Equal(t, "no-la", Contract("nos", "a"))
	assert.Equal(t, "vo-los", Contract("vos", "os"))
	assert.Equal(t, "me-me", Contract("me", "me"))
}
