package conjugador

var personalInfinitiveEnds = endings{"", "es", "", "mos", "des", "em"}

func (c *conjugator) personalInfinitive(v Variant) Row {
	if c.verb.infinitive == "ensimesmar" {
		return mask(ensimesmarRow(personalInfinitiveEnds.withVowel("ar")), c.verb.thirdPersonMask())
	}
	inf := c.verb.InfinitiveFor(v)
	out := make(Row, PersonCount)
	for i, end := range personalInfinitiveEnds {
		stem := inf
		// pôr loses its circumflex once an ending follows.
		if end != "" && inf == "pôr" {
			stem = "por"
		}
		out[i] = cellOf(stem + end)
	}
	return mask(out, c.verb.thirdPersonMask())
}

func (c *conjugator) impersonalInfinitive(v Variant) Row {
	return Row{cellOf(c.verb.InfinitiveFor(v))}
}

func (c *conjugator) gerund(v Variant) Row {
	inf := c.verb.InfinitiveFor(v)
	if inf == "pôr" {
		return Row{cellOf("pondo")}
	}
	return Row{cellOf(dropLast(inf, 1) + "ndo")}
}

// imperativeAffirmative takes tu and vós from the present indicative and
// the other persons from the present subjunctive.
func (c *conjugator) imperativeAffirmative(v Variant) Row {
	out := make(Row, PersonCount)
	if c.verb.noImperative() {
		return out
	}
	indicative := c.table.rows[PresentIndicative][v]
	subjunctive := c.table.rows[PresentSubjunctive][v]

	out[SecondSingular] = indicative.cell(ThirdSingular).clone()
	out[ThirdSingular] = subjunctive.cell(ThirdSingular).clone()
	out[FirstPlural] = subjunctive.cell(FirstPlural).clone()
	out[SecondPlural] = mapCell(indicative.cell(SecondPlural), func(s string) string {
		return dropLast(s, 1)
	})
	out[ThirdPlural] = subjunctive.cell(ThirdPlural).clone()

	inf := c.verb.infinitive
	switch {
	case inf == "ser":
		out[SecondSingular], out[SecondPlural] = cellOf("sê"), cellOf("sede")
	case inf == "sobresser":
		out[SecondSingular], out[SecondPlural] = cellOf("sobressê"), cellOf("sobressede")
	case hasAnySuffix(inf, "conduzir", "traduzir", "trazer"):
		// conduz or conduze, traz or traze
		var forms []string
		for _, s := range out[SecondSingular] {
			forms = append(forms, s, s+"e")
		}
		out[SecondSingular] = cellOf(forms...)
	}
	return out
}

// imperativeNegative repeats the present subjunctive for every person but
// the first singular.
func (c *conjugator) imperativeNegative(v Variant) Row {
	out := make(Row, PersonCount)
	if c.verb.noImperative() {
		return out
	}
	subjunctive := c.table.rows[PresentSubjunctive][v]
	for p := SecondSingular; p <= ThirdPlural; p++ {
		out[p] = subjunctive.cell(p).clone()
	}
	return out
}

// "o" short participles (ganho, pago).
var shortInO = setOf(
	"anexar", "despertar", "dispersar", "expressar", "expulsar", "fartar",
	"findar", "ganhar", "gastar", "isentar", "juntar", "libertar", "limpar",
	"manifestar", "murchar", "ocultar", "pagar", "pegar", "salvar", "secar",
	"segurar", "soltar", "sujeitar", "vagar",
)

// pastParticiple returns the participle; where a verb has a short
// participle besides the regular one, the regular form comes first.
func (c *conjugator) pastParticiple(v Variant) Row {
	stem := c.verb.StemFor(v)
	regular := stem + "ido"
	if c.verb.ending == "ar" {
		regular = stem + "ado"
	}
	both := func(short string) Row { return Row{cellOf(regular, short)} }
	only := func(form string) Row { return Row{cellOf(form)} }

	switch pat := classify(c.verb, ParticipleFamily); {
	case pat == "-aer", pat == "-air", pat == "-oer", pat == "-oir", pat == "-uer", pat == "-uir":
		return only(stem + "ído")
	case pat == "-abrir", pat == "-cobrir":
		return only(dropLast(stem, 1) + "erto")
	case pat == "absolver", pat == "benzer", pat == "envolver", pat == "enxugar",
		pat == "frigir", pat == "morrer":
		return both(dropLast(stem, 1) + "to")
	case pat == "aceitar":
		if v.Brazilian() {
			return both(stem + "o")
		}
		return both(stem + "e")
	case pat == "acender", pat == "distender", pat == "prender", pat == "suspender":
		return both(dropLast(stem, 2) + "so")
	case pat == "-argir", pat == "-ergir":
		return both(dropLast(stem, 1) + "so")
	case pat == "assentar":
		return both(stem + "e")
	case pat == "entregar":
		return both(stem + "ue")
	case pat == "distinguir", pat == "extinguir", pat == "romper":
		return both(dropLast(stem, 2) + "to")
	case pat == "-dizer":
		return only(dropLast(stem, 1) + "to")
	case pat == "eleger":
		return both(dropLast(stem, 1) + "ito")
	case pat == "encher":
		return both("cheio")
	case pat == "exprimir", pat == "-imprimir":
		return both(dropLast(stem, 2) + "esso")
	case shortInO[string(pat)]:
		return both(stem + "o")
	case pat == "-fazer":
		return only(dropLast(stem, 2) + "eito")
	case pat == "matar":
		return both(dropLast(stem, 2) + "orto")
	case pat == "malquerer":
		return both(dropLast(stem, 2) + "isto")
	case pat == "-screver":
		return only(dropLast(stem, 2) + "ito")
	case pat == "-por":
		return only(stem + "osto")
	case pat == "ver", pat == "-ver":
		return only(stem + "isto")
	case pat == "vir", pat == "-vir":
		return only(stem + "indo")
	}
	return only(regular)
}
