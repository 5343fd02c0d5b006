package conjugador

import "strings"

var (
	imperfectAr = endings{"ava", "avas", "ava", "ávamos", "áveis", "avam"}
	imperfectEr = endings{"ia", "ias", "ia", "íamos", "íeis", "iam"}
)

func (c *conjugator) imperfectIndicative(v Variant) Row {
	stem := c.verb.StemFor(v)
	ends := c.byEnding(imperfectAr, imperfectEr, imperfectEr)

	switch classify(c.verb, ImperfectFamily) {
	case "-aer", "-air", "-oer", "-oir", "-uer", "-uir":
		ends = endings{"ía", "ías", "ía", "íamos", "íeis", "íam"}
	case "ensimesmar":
		return mask(ensimesmarRow(imperfectAr), c.verb.thirdPersonMask())
	case "-por":
		ends = endings{"unha", "unhas", "unha", "únhamos", "únheis", "unham"}
	case "ser":
		stem, ends = "", endings{"era", "eras", "era", "éramos", "éreis", "eram"}
	case "sobresser":
		stem, ends = "sobre", endings{"era", "eras", "era", "éramos", "éreis", "eram"}
	case "ter", "-ter", "vir", "-vir":
		ends = endings{"inha", "inhas", "inha", "ínhamos", "ínheis", "inham"}
	}
	return mask(newParadigm(stem, ends).row(v), c.verb.thirdPersonMask())
}

var (
	preteriteAr = endings{"ei", "aste", "ou", "amos", "astes", "aram"}
	preteriteEr = endings{"i", "este", "eu", "emos", "estes", "eram"}
	preteriteIr = endings{"i", "iste", "iu", "imos", "istes", "iram"}

	// strongPreterite are the endings of preterites stressed on the stem
	// (coube, disse, esteve).
	strongPreterite = endings{"e", "este", "e", "emos", "estes", "eram"}

	firstPreterite = endings{"fui", "foste", "foi", "fomos", "fostes", "foram"}
)

// preteriteIndicative returns the masked row and records the unmasked one,
// from which the pluperfect and the past subjunctives take their stems.
func (c *conjugator) preteriteIndicative(v Variant) Row {
	row := c.preteriteCells(v)
	if v == EuropeanPreReform || v == EuropeanPostReform {
		row[FirstPlural] = europeanFirstPlural(row[FirstPlural], v == EuropeanPostReform)
	}
	c.preterite[v] = row.clone()
	return mask(row, c.verb.thirdPersonMask())
}

// europeanFirstPlural accents the -amos of the first plural preterite
// ("falámos"), which European spelling distinguishes from the present.
// Post-reform spelling accepts the unaccented form as well.
func europeanFirstPlural(c Cell, keepPlain bool) Cell {
	var out []string
	for _, form := range c {
		if !strings.HasSuffix(form, "amos") {
			out = append(out, form)
			continue
		}
		out = append(out, replaceFromEnd(form, 4, "á"))
		if keepPlain {
			out = append(out, form)
		}
	}
	return cellOf(out...)
}

func (c *conjugator) preteriteCells(v Variant) Row {
	stem := c.verb.StemFor(v)
	p := newParadigm(stem, c.byEnding(preteriteAr, preteriteEr, preteriteIr))
	at := func(n int, with string) string { return replaceFromEnd(stem, n, with) }

	switch classify(c.verb, PreteriteFamily) {
	case "-aer", "-oer":
		p.ends = endings{"í", "este", "eu", "emos", "estes", "eram"}
	case "-air", "-uir":
		p.ends = endings{"í", "íste", "iu", "ímos", "ístes", "íram"}
	case "-aber":
		p.ends = strongPreterite
		p.set(slotBase, dropLast(stem, 2)+"oub")
	case "-car":
		p.set(slotAlt, at(1, "qu")).use(Single(slotAlt), FirstSingular)
	case "-çar":
		p.set(slotAlt, at(1, "c")).use(Single(slotAlt), FirstSingular)
	case "-gar":
		p.set(slotAlt, stem+"u").use(Single(slotAlt), FirstSingular)
	case "dar", "-dar":
		p.ends = endings{"ei", "este", "eu", "emos", "estes", "eram"}
	case "-dizer":
		p.ends = strongPreterite
		p.set(slotBase, at(1, "ss"))
	case "ensimesmar":
		return ensimesmarRow(preteriteAr)
	case "estar", "-estar":
		p.ends = endings{"ive", "iveste", "eve", "ivemos", "ivestes", "iveram"}
	case "-fazer":
		p.ends = endings{"iz", "izeste", "ez", "izemos", "izestes", "izeram"}
		p.set(slotBase, dropLast(stem, 2))
	case "-guar", "-quar":
		p.set(slotAlt, at(1, "ü")).
			use(Single(slotBase).with(BrazilianPreReform, slotAlt), FirstSingular)
	case "haver", "reaver":
		p.ends = strongPreterite
		p.set(slotBase, dropLast(stem, 2)+"ouv")
	case "ir", "sobreir":
		p.ends = firstPreterite
	case "poder":
		p.ends = endings{"ude", "udeste", "ôde", "udemos", "udestes", "uderam"}
		p.set(slotBase, dropLast(stem, 2))
	case "-por":
		p.ends = endings{"us", "useste", "ôs", "usemos", "usestes", "useram"}
	case "-prazer":
		strong := dropLast(stem, 2) + "ouv"
		for i := range PersonCount {
			p.fix(Person(i), strong+strongPreterite[i], stem+preteriteEr[i])
		}
	case "-querer":
		p.ends = endings{"", "este", "", "emos", "estes", "eram"}
		p.set(slotBase, dropLast(stem, 2)+"is")
	case "ser":
		p.ends = firstPreterite
		p.set(slotBase, "")
	case "sobresser":
		p.ends = firstPreterite
		p.set(slotBase, dropLast(stem, 2))
	case "ter", "-ter":
		p.ends = endings{"ive", "iveste", "eve", "ivemos", "ivestes", "iveram"}
	case "-trazer":
		p.ends = strongPreterite
		p.set(slotBase, dropLast(stem, 2)+"oux")
	case "ver", "-ver":
		p.ends = preteriteIr
	case "vir", "-vir":
		p.ends = endings{"im", "ieste", "eio", "iemos", "iestes", "ieram"}
	}
	return p.row(v)
}

// pastStems returns the stems shared by the pluperfect and the past
// subjunctives: each alternative of the unmasked third plural preterite
// without its final "ram" and the vowel before it.
func (c *conjugator) pastStems(v Variant) []string {
	third := c.preterite[v].cell(ThirdPlural)
	out := make([]string, len(third))
	for i, form := range third {
		out[i] = dropLast(form, 4)
	}
	return out
}

// fromPastStems attaches ends to every past stem of variant v.
func (c *conjugator) fromPastStems(v Variant, ends endings) Row {
	stems := c.pastStems(v)
	out := make(Row, PersonCount)
	for i, end := range ends {
		forms := make([]string, len(stems))
		for j, s := range stems {
			forms[j] = s + end
		}
		out[i] = cellOf(forms...)
	}
	return out
}

// strongPast reports whether a past-family class takes the open "é"
// endings of strong preterites (houvéssemos, disséramos).
func strongPast(p Pattern) bool {
	switch p {
	case "-aber", "-caber", "dar", "-dar", "-dizer", "estar", "-estar", "-fazer",
		"haver", "poder", "-por", "-prazer", "-querer", "reaver", "-saber", "ter",
		"-ter", "-trazer", "vir", "-vir":
		return true
	}
	return false
}

// foiPast reports whether a class shares the fo- preterite of ir and ser.
func foiPast(p Pattern) bool {
	switch p {
	case "ir", "ser", "sobreir", "sobresser":
		return true
	}
	return false
}

var (
	pluperfectAr = endings{"ara", "aras", "ara", "áramos", "áreis", "aram"}
	pluperfectEr = endings{"era", "eras", "era", "êramos", "êreis", "eram"}
	pluperfectIr = endings{"ira", "iras", "ira", "íramos", "íreis", "iram"}
)

func (c *conjugator) pluperfectIndicative(v Variant) Row {
	ends := c.byEnding(pluperfectAr, pluperfectEr, pluperfectIr)
	switch pat := classify(c.verb, PreteriteFamily); {
	case pat == "ensimesmar":
		return mask(ensimesmarRow(pluperfectAr), c.verb.thirdPersonMask())
	case strongPast(pat):
		ends = endings{"era", "eras", "era", "éramos", "éreis", "eram"}
	case pat == "-air", pat == "-uir":
		ends = endings{"íra", "íras", "íra", "íramos", "íreis", "íram"}
	case foiPast(pat):
		ends = endings{"ora", "oras", "ora", "ôramos", "ôreis", "oram"}
	case pat == "ver", pat == "-ver":
		ends = pluperfectIr
	}
	return mask(c.fromPastStems(v, ends), c.verb.thirdPersonMask())
}
