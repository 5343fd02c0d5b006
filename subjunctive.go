package conjugador

import "strings"

var (
	presentSubjunctiveAr = endings{"e", "es", "e", "emos", "eis", "em"}
	presentSubjunctiveEr = endings{"a", "as", "a", "amos", "ais", "am"}
)

// arrhizotonicPersons are the persons of the present subjunctive stressed
// on the ending.
var arrhizotonicPersons = []Person{FirstPlural, SecondPlural}

func (c *conjugator) presentSubjunctive(v Variant) Row {
	row := c.presentSubjunctiveCells(v)
	return mask(row, c.verb.thirdPersonMask())
}

// presentSubjunctiveCells derives the present subjunctive from the first
// singular of the present indicative of the same variant.
func (c *conjugator) presentSubjunctiveCells(v Variant) Row {
	verb := c.verb
	pat := classify(verb, PresentSubjunctiveFamily)
	if pat == "ensimesmar" {
		return ensimesmarRow(presentSubjunctiveAr)
	}

	ends := c.byEnding(presentSubjunctiveAr, presentSubjunctiveEr, presentSubjunctiveEr)
	first := c.table.rows[PresentIndicative][v].cell(FirstSingular)

	var p *paradigm
	switch {
	case first.Absent():
		if verb.flags.ArrhizotonicOnly || verb.flags.NoFirstSingular ||
			pat == "-quir" || pat == "-qüir" || pat == "-delinquir" {
			return make(Row, PersonCount)
		}
		p = newParadigm(dropLast(verb.InfinitiveFor(v), 2), ends)
	case len(first) > 1:
		p = newParadigm(dropLast(first[0], 1), ends).set(slotAlt, dropLast(first[1], 1))
		p.use(FreeVariation(slotBase, slotAlt), rhizotonic...)
	default:
		p = newParadigm(dropLast(first[0], 1), ends)
	}

	stem := p.stems[slotBase]
	inf := verb.InfinitiveFor(v)
	if v == BrazilianPreReform && (strings.HasSuffix(inf, "guar") || strings.HasSuffix(inf, "quar")) {
		stem = replaceFromEnd(stem, 1, "ü")
		p.set(slotBase, stem)
	}
	at := func(n int, with string) string { return replaceFromEnd(stem, n, with) }

	switch pat {
	case "abaiucar", "embaucar":
		stem = at(1, "qu")
		p.set(slotBase, stem).
			set(slotAlt, replaceFromEnd(stem, 3, "u")).
			use(Single(slotAlt), arrhizotonicPersons...)
	case "afiuzar", "apaular", "aunar", "aviusar", "aziumar", "-baular", "-ciumar",
		"desembaular", "embaular", "enviusar", "faular", "reunir", "saudar", "-viuvar":
		p.set(slotAlt, at(2, "u")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-aguar":
		third := at(1, "ü")
		p.set(slotAlt, at(1, "ú")).set(slotThird, third).
			set(slotFourth, replaceFromEnd(third, 3, "a")).
			use(Single(slotBase).with(BrazilianPreReform, slotFourth), arrhizotonicPersons...)
	case "-aizar", "-eizar", "-oizar", "-uizar", "ajesuitar", "ateizar", "-oibir",
		"puitar", "ruidar", "-ruinar":
		p.set(slotAlt, at(2, "i")).use(Single(slotAlt), arrhizotonicPersons...)
	case "ansiar", "arremediar", "desarremediar", "desremediar", "incendiar",
		"intermediar", "mediar", "odiar", "promediar":
		p.set(slotAlt, at(2, "")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-balaustrar":
		p.set(slotAlt, at(4, "u")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-car":
		p.set(slotBase, at(1, "qu"))
	case "-çar":
		p.set(slotBase, at(1, "c"))
	case "dar", "-dar":
		root := dropLast(stem, 1)
		p.ends = endings{"", "s", "", "mos", "is", "em"}
		p.set(slotBase, root+"e").set(slotAlt, root+"ê").
			use(Single(slotAlt), FirstSingular, SecondSingular, ThirdSingular).
			use(FreeVariation(slotBase, slotAlt), FirstPlural).
			use(Single(slotBase), SecondPlural).
			use(ReformSplit(slotBase, slotAlt), ThirdPlural)
	case "desmilinguir":
		p.set(slotBase, at(4, "i"))
	case "-ear":
		// passeie, passeemos
		if strings.HasSuffix(stem, "ei") {
			p.set(slotAlt, at(1, "")).use(Single(slotAlt), arrhizotonicPersons...)
		}
	case "-eguar":
		third := at(3, "e")
		p.set(slotThird, third).set(slotFourth, replaceFromEnd(third, 1, "ú")).
			use(Combination{
				{slotBase, slotAlt}, {slotFourth}, {slotBase}, {slotBase},
			}, rhizotonic...).
			use(Single(slotBase).with(BrazilianPreReform, slotThird), arrhizotonicPersons...)
	case "-equar":
		p.set(slotThird, at(3, "é")).use(Combination{
			{slotBase, slotAlt}, {slotBase, slotAlt}, {slotBase}, {slotThird},
		}, rhizotonic...)
	case "esmiuçar":
		stem = at(1, "c")
		p.set(slotBase, stem).
			set(slotAlt, replaceFromEnd(stem, 2, "u")).
			use(Single(slotAlt), arrhizotonicPersons...)
	case "estar", "-estar", "ser", "sobresser":
		p.ends = presentSubjunctiveEr
		p.set(slotBase, dropLast(stem, 1)+"ej")
	case "explodir", "-ouvir", "-parir":
		p.use(FreeVariation(slotBase, slotAlt), arrhizotonicPersons...)
	case "faiscar":
		alt := at(1, "qu")
		p.set(slotAlt, alt).
			set(slotBase, replaceFromEnd(alt, 4, "i")).
			use(Single(slotAlt), rhizotonic...)
	case "-gar":
		p.set(slotBase, stem+"u")
	case "-gauchar":
		p.set(slotAlt, at(3, "u")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-guar", "-quar":
		p.set(slotAlt, at(1, "ú")).set(slotThird, at(1, "ü")).
			use(Single(slotBase).with(BrazilianPreReform, slotThird).with(EuropeanPreReform, slotAlt), rhizotonic...).
			use(Single(slotBase).with(BrazilianPreReform, slotThird), arrhizotonicPersons...)
	case "haver":
		p.set(slotBase, "haj")
	case "-iguar":
		p.set(slotAlt, at(3, "í")).set(slotThird, at(1, "ú")).set(slotFourth, at(1, "ü")).
			use(Combination{
				{slotBase, slotAlt}, {slotThird}, {slotBase, slotAlt}, {slotThird},
			}, rhizotonic...).
			use(Single(slotBase).with(BrazilianPreReform, slotFourth), arrhizotonicPersons...)
	case "-inguar", "-inquar", "-iquar":
		if v == BrazilianPreReform && p.isSet[slotAlt] {
			p.set(slotAlt, replaceFromEnd(p.stems[slotAlt], 1, "ü"))
		}
	case "ir", "sobreir":
		p.ends = endings{"á", "ás", "á", "amos", "ades", "ão"}
		p.set(slotBase, dropLast(stem, 1))
	case "-mobiliar":
		p.set(slotAlt, at(3, "i")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-oar", "-oer":
		p.set(slotBase, at(1, "o"))
	case "-oiar":
		p.set(slotAlt, at(2, "o")).use(Single(slotAlt), arrhizotonicPersons...)
	case "-por":
		p.ends = presentSubjunctiveEr
	case "-querer":
		p.set(slotBase, dropLast(stem, 1)+"ir")
	case "-saber":
		p.set(slotBase, dropLast(stem, 1)+"aib")
	}
	return p.row(v)
}

var (
	imperfectSubjunctiveAr = endings{"asse", "asses", "asse", "ássemos", "ásseis", "assem"}
	imperfectSubjunctiveEr = endings{"esse", "esses", "esse", "êssemos", "êsseis", "essem"}
	imperfectSubjunctiveIr = endings{"isse", "isses", "isse", "íssemos", "ísseis", "issem"}
)

func (c *conjugator) imperfectSubjunctive(v Variant) Row {
	ends := c.byEnding(imperfectSubjunctiveAr, imperfectSubjunctiveEr, imperfectSubjunctiveIr)
	switch pat := classify(c.verb, PastSubjunctiveFamily); {
	case pat == "ensimesmar":
		return mask(ensimesmarRow(imperfectSubjunctiveAr), c.verb.thirdPersonMask())
	case pat == "-air", pat == "-uir":
		ends = endings{"ísse", "ísses", "ísse", "íssemos", "ísseis", "íssem"}
	case strongPast(pat):
		ends = endings{"esse", "esses", "esse", "éssemos", "ésseis", "essem"}
	case foiPast(pat):
		ends = endings{"osse", "osses", "osse", "ôssemos", "ôsseis", "ossem"}
	case pat == "ver", pat == "-ver":
		ends = imperfectSubjunctiveIr
	}
	return mask(c.fromPastStems(v, ends), c.verb.thirdPersonMask())
}

var (
	futureSubjunctiveAr = endings{"ar", "ares", "ar", "armos", "ardes", "arem"}
	futureSubjunctiveEr = endings{"er", "eres", "er", "ermos", "erdes", "erem"}
	futureSubjunctiveIr = endings{"ir", "ires", "ir", "irmos", "irdes", "irem"}
)

func (c *conjugator) futureSubjunctive(v Variant) Row {
	ends := c.byEnding(futureSubjunctiveAr, futureSubjunctiveEr, futureSubjunctiveIr)
	switch pat := classify(c.verb, PastSubjunctiveFamily); {
	case pat == "ensimesmar":
		return mask(ensimesmarRow(futureSubjunctiveAr), c.verb.thirdPersonMask())
	case pat == "-air", pat == "-uir":
		ends = endings{"ir", "íres", "ir", "irmos", "irdes", "írem"}
	case strongPast(pat):
		ends = futureSubjunctiveEr
	case foiPast(pat):
		ends = endings{"or", "ores", "or", "ormos", "ordes", "orem"}
	case pat == "ver", pat == "-ver":
		ends = futureSubjunctiveIr
	}
	return mask(c.fromPastStems(v, ends), c.verb.thirdPersonMask())
}
