package conjugador

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds a row with one form per cell; "" stands for an absent cell.
func row(forms ...string) Row {
	out := make(Row, len(forms))
	for i, f := range forms {
		if f != "" {
			out[i] = Cell{f}
		}
	}
	return out
}

func testAux(t *testing.T) *Auxiliaries {
	t.Helper()
	aux, err := DefaultAuxiliaries()
	require.NoError(t, err)
	return aux
}

func conjugate(t *testing.T, inf string) *Table {
	t.Helper()
	tab, err := Conjugate(MustVerb(inf), testAux(t))
	require.NoError(t, err)
	return tab
}

func TestConjugateRegularAr(t *testing.T) {
	tab := conjugate(t, "falar")
	bp := BrazilianPostReform

	tests := []struct {
		tense Tense
		want  Row
	}{
		{PresentIndicative, row("falo", "falas", "fala", "falamos", "falais", "falam")},
		{ImperfectIndicative, row("falava", "falavas", "falava", "falávamos", "faláveis", "falavam")},
		{PreteriteIndicative, row("falei", "falaste", "falou", "falamos", "falastes", "falaram")},
		{PluperfectIndicative, row("falara", "falaras", "falara", "faláramos", "faláreis", "falaram")},
		{FutureIndicative, row("falarei", "falarás", "falará", "falaremos", "falareis", "falarão")},
		{Conditional, row("falaria", "falarias", "falaria", "falaríamos", "falaríeis", "falariam")},
		{PresentSubjunctive, row("fale", "fales", "fale", "falemos", "faleis", "falem")},
		{ImperfectSubjunctive, row("falasse", "falasses", "falasse", "falássemos", "falásseis", "falassem")},
		{FutureSubjunctive, row("falar", "falares", "falar", "falarmos", "falardes", "falarem")},
		{PersonalInfinitive, row("falar", "falares", "falar", "falarmos", "falardes", "falarem")},
		{ImpersonalInfinitive, row("falar")},
		{ImperativeAffirmative, row("", "fala", "fale", "falemos", "falai", "falem")},
		{ImperativeNegative, row("", "fales", "fale", "falemos", "faleis", "falem")},
		{Gerund, row("falando")},
		{PastParticiple, row("falado")},
	}
	for _, tt := range tests {
		t.Run(tt.tense.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tab.Row(tt.tense, bp))
		})
	}
}

func TestEuropeanPreteriteFirstPlural(t *testing.T) {
	tab := conjugate(t, "falar")
	assert.Equal(t, Cell{"falámos", "falamos"}, tab.Cell(PreteriteIndicative, EuropeanPostReform, FirstPlural))
	assert.Equal(t, Cell{"falámos"}, tab.Cell(PreteriteIndicative, EuropeanPreReform, FirstPlural))
	assert.Equal(t, Cell{"falamos"}, tab.Cell(PreteriteIndicative, BrazilianPreReform, FirstPlural))
	// The pluperfect stem is unaffected.
	assert.Equal(t, Cell{"falara"}, tab.Cell(PluperfectIndicative, EuropeanPreReform, FirstSingular))
}

func TestConjugateParticiple(t *testing.T) {
	tests := []struct {
		verb string
		want Cell
	}{
		{"comer", Cell{"comido"}},
		{"partir", Cell{"partido"}},
		{"fazer", Cell{"feito"}},
		{"dizer", Cell{"dito"}},
		{"pôr", Cell{"posto"}},
		{"compor", Cell{"composto"}},
		{"ver", Cell{"visto"}},
		{"abrir", Cell{"aberto"}},
		{"escrever", Cell{"escrito"}},
		{"cair", Cell{"caído"}},
		{"ganhar", Cell{"ganhado", "ganho"}},
		{"pagar", Cell{"pagado", "pago"}},
	}
	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			tab := ConjugateSimple(MustVerb(tt.verb))
			for _, v := range Variants {
				assert.Equal(t, tt.want, tab.Cell(PastParticiple, v, FirstSingular), v.String())
			}
		})
	}
}

func TestConjugateIrregular(t *testing.T) {
	tests := []struct {
		verb  string
		tense Tense
		want  Row
	}{
		{"ser", PresentIndicative, row("sou", "és", "é", "somos", "sois", "são")},
		{"ser", PreteriteIndicative, row("fui", "foste", "foi", "fomos", "fostes", "foram")},
		{"ser", ImperfectIndicative, row("era", "eras", "era", "éramos", "éreis", "eram")},
		{"ser", PresentSubjunctive, row("seja", "sejas", "seja", "sejamos", "sejais", "sejam")},
		{"ser", ImperfectSubjunctive, row("fosse", "fosses", "fosse", "fôssemos", "fôsseis", "fossem")},
		{"ser", ImperativeAffirmative, row("", "sê", "seja", "sejamos", "sede", "sejam")},
		{"estar", PresentIndicative, row("estou", "estás", "está", "estamos", "estais", "estão")},
		{"estar", PreteriteIndicative, row("estive", "estiveste", "esteve", "estivemos", "estivestes", "estiveram")},
		{"ter", PresentIndicative, row("tenho", "tens", "tem", "temos", "tendes", "têm")},
		{"ter", PreteriteIndicative, row("tive", "tiveste", "teve", "tivemos", "tivestes", "tiveram")},
		{"ter", ImperfectIndicative, row("tinha", "tinhas", "tinha", "tínhamos", "tínheis", "tinham")},
		{"conter", PresentIndicative, row("contenho", "conténs", "contém", "contemos", "contendes", "contêm")},
		{"dar", PreteriteIndicative, row("dei", "deste", "deu", "demos", "destes", "deram")},
		{"dar", ImperfectSubjunctive, row("desse", "desses", "desse", "déssemos", "désseis", "dessem")},
		{"fazer", PresentIndicative, row("faço", "fazes", "faz", "fazemos", "fazeis", "fazem")},
		{"fazer", PreteriteIndicative, row("fiz", "fizeste", "fez", "fizemos", "fizestes", "fizeram")},
		{"fazer", FutureIndicative, row("farei", "farás", "fará", "faremos", "fareis", "farão")},
		{"dizer", PresentIndicative, row("digo", "dizes", "diz", "dizemos", "dizeis", "dizem")},
		{"dizer", PreteriteIndicative, row("disse", "disseste", "disse", "dissemos", "dissestes", "disseram")},
		{"dizer", Conditional, row("diria", "dirias", "diria", "diríamos", "diríeis", "diriam")},
		{"pôr", PresentIndicative, row("ponho", "pões", "põe", "pomos", "pondes", "põem")},
		{"pôr", ImperfectIndicative, row("punha", "punhas", "punha", "púnhamos", "púnheis", "punham")},
		{"pôr", PreteriteIndicative, row("pus", "puseste", "pôs", "pusemos", "pusestes", "puseram")},
		{"pôr", PersonalInfinitive, row("pôr", "pores", "pôr", "pormos", "pordes", "porem")},
		{"pôr", FutureIndicative, row("porei", "porás", "porá", "poremos", "poreis", "porão")},
		{"pôr", Gerund, row("pondo")},
		{"haver", PresentIndicative, row("hei", "hás", "há", "", "", "hão")},
		{"poder", PresentIndicative, row("posso", "podes", "pode", "podemos", "podeis", "podem")},
		{"ver", PresentIndicative, row("vejo", "vês", "vê", "vemos", "vedes", "veem")},
		{"ver", PreteriteIndicative, row("vi", "viste", "viu", "vimos", "vistes", "viram")},
		{"ficar", PreteriteIndicative, row("fiquei", "ficaste", "ficou", "ficamos", "ficastes", "ficaram")},
		{"ficar", PresentSubjunctive, row("fique", "fiques", "fique", "fiquemos", "fiqueis", "fiquem")},
		{"chegar", PreteriteIndicative, row("cheguei", "chegaste", "chegou", "chegamos", "chegastes", "chegaram")},
		{"cair", PresentIndicative, row("caio", "cais", "cai", "caímos", "caís", "caem")},
	}
	for _, tt := range tests {
		t.Run(tt.verb+"/"+tt.tense.String(), func(t *testing.T) {
			tab := conjugate(t, tt.verb)
			got := tab.Row(tt.tense, BrazilianPostReform)
			if tt.verb == "haver" {
				// hemos/havemos and heis/haveis vary freely.
				got = append(Row(nil), got...)
				got[FirstPlural], got[SecondPlural] = nil, nil
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConjugateHaverPlural(t *testing.T) {
	tab := conjugate(t, "haver")
	assert.Equal(t, Cell{"havemos", "hemos"}, tab.Cell(PresentIndicative, BrazilianPostReform, FirstPlural))
	assert.Equal(t, Cell{"haveis", "heis"}, tab.Cell(PresentIndicative, BrazilianPostReform, SecondPlural))
}

func TestConjugateDar(t *testing.T) {
	tab := conjugate(t, "dar")
	for _, v := range Variants {
		assert.Equal(t, Cell{"dou"}, tab.Cell(PresentIndicative, v, FirstSingular), v.String())
		assert.Equal(t, Cell{"dei"}, tab.Cell(PreteriteIndicative, v, FirstSingular), v.String())
	}
	assert.Equal(t, Cell{"deem"}, tab.Cell(PresentSubjunctive, BrazilianPostReform, ThirdPlural))
	assert.Equal(t, Cell{"dêem"}, tab.Cell(PresentSubjunctive, BrazilianPreReform, ThirdPlural))
	assert.Equal(t, Cell{"dê"}, tab.Cell(PresentSubjunctive, EuropeanPostReform, FirstSingular))
}

func TestConjugateEar(t *testing.T) {
	tab := conjugate(t, "passear")
	for _, v := range Variants {
		assert.Equal(t, row("passeio", "passeias", "passeia", "passeamos", "passeais", "passeiam"),
			tab.Row(PresentIndicative, v), v.String())
		assert.Equal(t, row("passeie", "passeies", "passeie", "passeemos", "passeeis", "passeiem"),
			tab.Row(PresentSubjunctive, v), v.String())
		assert.Equal(t, row("", "passeia", "passeie", "passeemos", "passeai", "passeiem"),
			tab.Row(ImperativeAffirmative, v), v.String())
	}
}

func TestConjugateWeatherVerb(t *testing.T) {
	tab := conjugate(t, "trovejar")
	for tense := PresentIndicative; tense < TenseCount; tense++ {
		if tense.SingleForm() {
			continue
		}
		for _, v := range Variants {
			r := tab.Row(tense, v)
			require.Len(t, r, PersonCount)
			for p, cell := range r {
				switch {
				case tense == ImperativeAffirmative || tense == ImperativeNegative:
					assert.True(t, cell.Absent(), "%s %s %d", tense, v, p)
				case Person(p) == ThirdSingular:
					assert.False(t, cell.Absent(), "%s %s %d", tense, v, p)
				default:
					assert.True(t, cell.Absent(), "%s %s %d", tense, v, p)
				}
			}
		}
	}
	assert.Equal(t, Cell{"troveja"}, tab.Cell(PresentIndicative, BrazilianPostReform, ThirdSingular))
	assert.Equal(t, Cell{"trovejara"}, tab.Cell(PluperfectIndicative, BrazilianPostReform, ThirdSingular))
	assert.Equal(t, Cell{"tem trovejado", "há trovejado"},
		tab.Cell(CompoundPresentIndicative, BrazilianPostReform, ThirdSingular))
}

func TestConjugateThirdPersonOnly(t *testing.T) {
	tab := conjugate(t, "doer")
	r := tab.Row(PresentIndicative, BrazilianPostReform)
	assert.True(t, r[FirstSingular].Absent())
	assert.True(t, r[FirstPlural].Absent())
	assert.False(t, r[ThirdSingular].Absent())
	assert.False(t, r[ThirdPlural].Absent())
}

func TestConjugateNoFirstSingular(t *testing.T) {
	tab := conjugate(t, "abolir")
	assert.True(t, tab.Cell(PresentIndicative, BrazilianPostReform, FirstSingular).Absent())
	assert.Equal(t, Cell{"aboles"}, tab.Cell(PresentIndicative, BrazilianPostReform, SecondSingular))
	for p := range PersonCount {
		assert.True(t, tab.Cell(PresentSubjunctive, BrazilianPostReform, Person(p)).Absent())
	}
}

func TestConjugateCompound(t *testing.T) {
	tab := conjugate(t, "falar")
	bp := BrazilianPostReform
	assert.Equal(t, Cell{"tenho falado", "hei falado"}, tab.Cell(CompoundPresentIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"tinha falado", "havia falado"}, tab.Cell(CompoundImperfectIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"terei falado", "haverei falado"}, tab.Cell(CompoundFutureIndicative, bp, FirstSingular))
	assert.Equal(t, Row{Cell{"ter falado", "haver falado"}}, tab.Row(CompoundImpersonalInfinitive, bp))
	// Single-form rows answer any person.
	assert.Equal(t, Cell{"ter falado", "haver falado"}, tab.Cell(CompoundImpersonalInfinitive, bp, ThirdPlural))
}

func TestConjugateNeedsAuxiliaries(t *testing.T) {
	_, err := Conjugate(MustVerb("falar"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuxiliariesNotBuilt))

	_, err = ConjugateVariant(MustVerb("falar"), BrazilianPostReform, nil)
	assert.True(t, errors.Is(err, ErrAuxiliariesNotBuilt))

	c := newConjugator(MustVerb("falar"), nil)
	assert.True(t, errors.Is(c.fill(CompoundPresentIndicative), ErrAuxiliariesNotBuilt))

	_, err = Conjugate(nil, testAux(t))
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestConjugateSimple(t *testing.T) {
	tab := ConjugateSimple(MustVerb("comer"))
	assert.True(t, tab.Has(PastParticiple))
	assert.True(t, tab.Has(PresentIndicative))
	assert.False(t, tab.Has(CompoundPresentIndicative))
	assert.Nil(t, tab.Row(CompoundPresentIndicative, BrazilianPostReform))

	full := conjugate(t, "comer")
	for tense := PresentIndicative; tense <= PastParticiple; tense++ {
		for _, v := range Variants {
			assert.Equal(t, full.Row(tense, v), tab.Row(tense, v), "%s %s", tense, v)
		}
	}
}

func TestForVariantMatchesConjugateVariant(t *testing.T) {
	aux := testAux(t)
	for _, inf := range []string{"falar", "dar", "pôr", "trovejar", "haver", "batizar"} {
		verb := MustVerb(inf)
		full, err := Conjugate(verb, aux)
		require.NoError(t, err)
		for _, v := range Variants {
			direct, err := ConjugateVariant(verb, v, aux)
			require.NoError(t, err)
			assert.Equal(t, full.ForVariant(v), direct, "%s %s", inf, v)
		}
	}
}

func TestForVariantIsACopy(t *testing.T) {
	tab := conjugate(t, "falar")
	vt := tab.ForVariant(BrazilianPostReform)
	vt.Rows[PresentIndicative][FirstSingular][0] = "x"
	assert.Equal(t, Cell{"falo"}, tab.Cell(PresentIndicative, BrazilianPostReform, FirstSingular))
}

func TestInspect(t *testing.T) {
	in, err := Inspect(MustVerb("dizer"))
	require.NoError(t, err)
	assert.Equal(t, "dizer", in.Infinitive)
	assert.Equal(t, "er", in.Ending)
	assert.Equal(t, Pattern("-dizer"), in.Patterns[PresentFamily])
	assert.Equal(t, Pattern("-dizer"), in.Patterns[FutureFamily])
	assert.Equal(t, Pattern("-er"), in.Patterns[ImperfectFamily])
	for _, v := range Variants {
		assert.Equal(t, "dizer", in.Spellings[v])
	}
}

func TestConjugador(t *testing.T) {
	conj, err := New()
	require.NoError(t, err)
	require.NotNil(t, conj.Auxiliaries())

	_, err = conj.Verb("casa")
	assert.True(t, errors.Is(err, ErrInvalidInfinitive))

	verb, err := conj.Verb("falar")
	require.NoError(t, err)
	tab, err := conj.Conjugate(verb)
	require.NoError(t, err)
	assert.Equal(t, Cell{"falo"}, tab.Cell(PresentIndicative, BrazilianPostReform, FirstSingular))

	opts, err := NewOptions(verb, EuropeanPostReform, RegularMood)
	require.NoError(t, err)
	vt, err := conj.ConjugateOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, EuropeanPostReform, vt.Variant)
	assert.Equal(t, Cell{"falámos", "falamos"}, vt.Rows[PreteriteIndicative][FirstPlural])
}
