package conjugador

// Regular endings of the present indicative.
var (
	presentAr = endings{"o", "as", "a", "amos", "ais", "am"}
	presentEr = endings{"o", "es", "e", "emos", "eis", "em"}
	presentIr = endings{"o", "es", "e", "imos", "is", "em"}
)

// rhizotonic lists the persons stressed on the stem in the present.
var rhizotonic = []Person{FirstSingular, SecondSingular, ThirdSingular, ThirdPlural}

// stemStressed lists the rhizotonic persons other than the first singular.
var stemStressed = []Person{SecondSingular, ThirdSingular, ThirdPlural}

// pronounInfix holds the object pronoun that ensimesmar can take inside
// its stem for each person ("enmimmesmo"); "" means no infixed form.
var pronounInfix = [PersonCount]string{"mim", "ti", "", "nos", "vos", ""}

// ensimesmarRow builds the forms of ensimesmar for a tense whose regular
// endings, infinitive vowel included, are ends.
func ensimesmarRow(ends endings) Row {
	out := make(Row, PersonCount)
	for i, end := range ends {
		forms := []string{"ensimesm" + end}
		if pronounInfix[i] != "" {
			forms = append(forms, "en"+pronounInfix[i]+"mesm"+end)
		}
		out[i] = cellOf(forms...)
	}
	return out
}

// withVowel prefixes every ending with vowel.
func (e endings) withVowel(vowel string) endings {
	for i := range e {
		e[i] = vowel + e[i]
	}
	return e
}

// byEnding picks the ending set matching the verb's conjugation. Verbs in
// -por have no regular set; their class always supplies one.
func (c *conjugator) byEnding(ar, er, ir endings) endings {
	switch c.verb.ending {
	case "ar":
		return ar
	case "er":
		return er
	case "ir":
		return ir
	}
	return endings{}
}

func (c *conjugator) presentIndicative(v Variant) Row {
	return mask(c.presentCells(v), c.presentMask())
}

// presentMask returns the persons the defective flags remove from the
// present indicative.
func (c *conjugator) presentMask() [PersonCount]bool {
	f := c.verb.flags
	switch {
	case f.NoFirstSingular:
		return personsOf(FirstSingular)
	case f.ArrhizotonicOnly:
		return personsOf(rhizotonic...)
	}
	return c.verb.thirdPersonMask()
}

func (c *conjugator) presentCells(v Variant) Row {
	stem := c.verb.StemFor(v)
	p := newParadigm(stem, c.byEnding(presentAr, presentEr, presentIr))
	at := func(n int, with string) string { return replaceFromEnd(stem, n, with) }

	switch pat := classify(c.verb, PresentFamily); pat {
	case "abaiucar":
		p.set(slotAlt, at(2, "ú")).
			use(Single(slotAlt).with(BrazilianPostReform, slotBase), rhizotonic...)
	case "-acudir", "consumir", "subir", "sumir", "-ulir":
		p.set(slotAlt, at(2, "o")).use(Single(slotAlt), stemStressed...)
	case "-aer":
		p.ends = endings{"io", "is", "i", "emos", "eis", "em"}
	case "afiuzar", "apaular", "aunar", "aviusar", "aziumar", "-baular", "-ciumar",
		"desembaular", "embaular", "embaucar", "enviusar", "esmiuçar", "faular",
		"reunir", "saudar", "-viuvar":
		p.set(slotAlt, at(2, "ú")).use(Single(slotAlt), rhizotonic...)
	case "agenciar", "apresenciar", "cadenciar", "comerciar", "desnegociar",
		"despremiar", "diligenciar", "licenciar", "-negociar", "obsequiar",
		"premiar", "presenciar":
		p.set(slotAlt, at(1, "ei")).use(FreeVariation(slotBase, slotAlt), rhizotonic...)
	case "-agir", "-eger", "-ger", "-gir":
		p.set(slotAlt, at(1, "j")).use(Single(slotAlt), FirstSingular)
	case "-aguar":
		p.set(slotAlt, at(3, "á")).use(Combination{
			{slotBase, slotAlt}, {slotAlt}, {slotBase, slotAlt}, {slotBase},
		}, rhizotonic...)
	case "-air":
		p.ends = endings{"io", "is", "i", "ímos", "ís", "em"}
	case "-aizar", "-eizar", "-oizar", "-uizar", "ajesuitar", "-oibir", "puitar",
		"ruidar", "-ruinar":
		p.set(slotAlt, at(2, "í")).use(Single(slotAlt), rhizotonic...)
	case "-anquir":
		p.set(slotAlt, dropLast(stem, 2)+"c").use(Single(slotAlt), FirstSingular)
	case "ansiar", "arremediar", "desarremediar", "desremediar", "incendiar",
		"intermediar", "mediar", "odiar", "promediar":
		p.set(slotAlt, at(1, "ei")).use(Single(slotAlt), rhizotonic...)
	case "aprazer", "desaprazer", "prazer", "reaprazer", "-prazer", "-jazer":
		p.ends = endings{"o", "es", "", "emos", "eis", "em"}
	case "-arguir":
		p.ends = endings{"o", "is", "i", "imos", "is", "em"}
		p.set(slotAlt, at(1, "ü")).set(slotThird, at(1, "ú")).set(slotFourth, at(1, "u"))
		p.use(Single(slotFourth), FirstSingular).
			use(Single(slotBase).with(EuropeanPreReform, slotThird), stemStressed...).
			use(Single(slotBase).with(BrazilianPreReform, slotAlt), FirstPlural, SecondPlural)
	case "aspergir", "convergir", "divergir":
		p.set(slotAlt, dropLast(stem, 3)+"irj").use(Single(slotAlt), FirstSingular)
	case "ateizar":
		p.set(slotAlt, at(2, "í")).use(DialectSplit(slotAlt, slotBase), rhizotonic...)
	case "-balaustrar":
		p.set(slotAlt, at(4, "ú")).use(Single(slotAlt), rhizotonic...)
	case "-caber":
		p.set(slotAlt, at(2, "ai")).use(Single(slotAlt), FirstSingular)
	case "-cer", "-cir", "-medir", "-pedir":
		p.set(slotAlt, at(1, "ç")).use(Single(slotAlt), FirstSingular)
	case "cerzir":
		p.set(slotAlt, at(3, "i")).use(FreeVariation(slotBase, slotAlt), stemStressed...)
	case "-cobrir", "-dormir", "tossir":
		p.set(slotAlt, at(3, "u")).use(Single(slotAlt), FirstSingular)
	case "-construir", "destruir":
		p.ends = endings{"o", "is", "i", "ímos", "ís", "em"}
		p.set(slotAlt, at(1, "ó")).use(FreeVariation(slotBase, slotAlt), stemStressed...)
	case "crer", "descrer", "ler", "-ler", "rer":
		p.ends = endings{"io", "s", "", "mos", "des", "em"}
		monosyllabic(p, stem)
	case "-cuspir", "-guspir":
		p.set(slotAlt, at(3, "o")).use(Single(slotAlt), stemStressed...)
	case "dar", "-dar", "estar", "-estar":
		p.ends = endings{"ou", "ás", "á", "amos", "ais", "ão"}
	case "-delinquir":
		return delinquirPresent(dropLast(stem, 4), v)
	case "denegrir":
		p.set(slotAlt, at(3, "i")).use(Single(slotAlt), rhizotonic...)
	case "desmilinguir":
		return desmilinguirPresent(v)
	case "-dizer", "-trazer":
		p.ends = endings{"o", "es", "", "emos", "eis", "em"}
		p.set(slotAlt, at(1, "g")).use(Single(slotAlt), FirstSingular)
	case "-fazer":
		p.ends = endings{"o", "es", "", "emos", "eis", "em"}
		p.set(slotAlt, at(1, "ç")).use(Single(slotAlt), FirstSingular)
	case "-ear":
		p.set(slotAlt, stem+"i").use(Single(slotAlt), rhizotonic...)
	case "-ectir", "-enhir", "-entir", "-ernir", "-ertir", "-ervir", "-erzir",
		"-espir", "-estir":
		p.set(slotAlt, at(3, "i")).use(Single(slotAlt), FirstSingular)
	case "-edir", "-elir", "-emir", "-enir", "-erir", "-etir":
		p.set(slotAlt, at(2, "i")).use(Single(slotAlt), FirstSingular)
	case "-eguar":
		p.set(slotAlt, at(3, "é")).
			use(Single(slotBase).with(BrazilianPostReform, slotBase, slotAlt), rhizotonic...)
	case "-eguir":
		p.set(slotAlt, dropLast(stem, 3)+"ig").use(Single(slotAlt), FirstSingular)
	case "-egüir":
		p.set(slotAlt, replaceFromEnd(at(1, "u"), 3, "i")).use(Single(slotAlt), FirstSingular)
	case "-embair":
		p.ends = endings{"io", "es", "e", "ímos", "ís", "em"}
	case "-engolir":
		p.set(slotAlt, at(2, "u")).use(Single(slotAlt), FirstSingular)
	case "ensimesmar":
		return ensimesmarRow(presentAr)
	case "-entupir":
		p.set(slotAlt, at(2, "o")).use(FreeVariation(slotBase, slotAlt), stemStressed...)
	case "-equar", "-iguar", "-iquar":
		vowel := "é"
		if pat != "-equar" {
			vowel = "í"
		}
		p.set(slotAlt, at(3, vowel)).use(Combination{
			{slotBase, slotAlt}, {slotBase, slotAlt}, {slotBase}, {slotBase},
		}, rhizotonic...)
	case "-ergir":
		p.set(slotAlt, dropLast(stem, 3)+"irj").set(slotThird, at(1, "j")).
			use(FreeVariation(slotAlt, slotThird), FirstSingular)
	case "-erguer":
		p.set(slotAlt, at(1, "")).use(Single(slotAlt), FirstSingular)
	case "explodir":
		p.set(slotAlt, at(2, "u")).use(FreeVariation(slotBase, slotAlt), FirstSingular)
	case "faiscar":
		p.set(slotAlt, at(3, "í")).use(Single(slotAlt), rhizotonic...)
	case "frigir", "fugir":
		vowel := "e"
		if c.verb.infinitive == "fugir" {
			vowel = "o"
		}
		p.set(slotAlt, at(1, "j")).set(slotThird, at(2, vowel)).
			use(Single(slotAlt), FirstSingular).
			use(Single(slotThird), stemStressed...)
	case "-gauchar":
		p.set(slotAlt, at(3, "ú")).use(Single(slotAlt), rhizotonic...)
	case "-gredir":
		p.set(slotAlt, at(2, "i")).use(Single(slotAlt), rhizotonic...)
	case "-güer", "-güir":
		p.set(slotAlt, at(1, "u")).use(Single(slotAlt), FirstSingular)
	case "-guir", "-inguir":
		p.set(slotAlt, dropLast(stem, 1)).use(Single(slotAlt), FirstSingular)
	case "haver":
		p.ends = endings{"ei", "ás", "á", "emos", "eis", "ão"}
		p.set(slotAlt, dropLast(stem, 2)).
			use(Single(slotAlt), rhizotonic...).
			use(FreeVariation(slotBase, slotAlt), FirstPlural, SecondPlural)
	case "-inguar", "-inquar":
		p.set(slotAlt, at(4, "í")).use(FreeVariation(slotBase, slotAlt), rhizotonic...)
	case "ir", "sobreir":
		p.ends = endings{"vou", "vás", "vá", "vamos", "ides", "vão"}
	case "-mobiliar":
		p.set(slotAlt, at(3, "í")).use(Single(slotAlt), rhizotonic...)
	case "-oar":
		p.set(slotAlt, at(1, "ô")).
			use(Single(slotBase).with(BrazilianPreReform, slotAlt), FirstSingular)
	case "-oer":
		p.ends = endings{"o", "is", "i", "emos", "eis", "em"}
		p.set(slotAlt, at(1, "ô")).set(slotThird, at(1, "ó")).
			use(Single(slotBase).with(BrazilianPreReform, slotAlt), FirstSingular).
			use(Single(slotThird), SecondSingular, ThirdSingular)
	case "-oiar":
		p.set(slotAlt, at(2, "ó")).use(ReformSplit(slotBase, slotAlt), rhizotonic...)
	case "-ouvir":
		alt := at(1, "ç")
		p.set(slotAlt, alt).set(slotThird, replaceFromEnd(alt, 2, "i")).
			use(FreeVariation(slotAlt, slotThird), FirstSingular)
	case "parar":
		p.set(slotAlt, at(2, "á")).use(ReformSplit(slotBase, slotAlt), ThirdSingular)
	case "-parir":
		p.set(slotThird, at(1, "ir")).use(FreeVariation(slotThird, slotBase), FirstSingular)
	case "-perder":
		p.set(slotAlt, at(1, "c")).use(Single(slotAlt), FirstSingular)
	case "-poder":
		p.set(slotAlt, at(1, "ss")).use(Single(slotAlt), FirstSingular)
	case "-polir":
		p.set(slotAlt, at(2, "u")).use(Single(slotAlt), rhizotonic...)
	case "pôr", "-por":
		p.ends = endings{"onho", "ões", "õe", "omos", "ondes", "õem"}
	case "-querer":
		p.ends = presentEr
		p.fix(ThirdSingular, stem, stem+"e")
	case "requerer":
		p.ends = presentEr
		p.set(slotThird, at(2, "ei")).use(Single(slotThird), FirstSingular)
		p.fix(ThirdSingular, stem, stem+"e")
	case "-quir", "-qüir", "retorquir":
		p.drop(FirstSingular)
	case "retorqüir":
		p.set(slotAlt, at(4, "ó")).drop(FirstSingular).use(Single(slotAlt), stemStressed...)
	case "rir", "-sorrir":
		p.ends = endings{"io", "is", "i", "imos", "ides", "iem"}
	case "-saber":
		p.ends = endings{"ei", "es", "e", "emos", "eis", "em"}
		p.set(slotAlt, dropLast(stem, 2)).use(Single(slotAlt), FirstSingular)
	case "ser", "sobresser":
		p.ends = endings{"ou", "és", "é", "omos", "ois", "ão"}
		n := 1
		if c.verb.infinitive == "sobresser" {
			n = 2
		}
		p.set(slotAlt, dropLast(stem, n)).use(Single(slotAlt), SecondSingular, ThirdSingular)
	case "sortir":
		p.set(slotAlt, at(3, "u")).use(Single(slotAlt), rhizotonic...)
	case "ter":
		p.ends = endings{"enho", "ens", "em", "emos", "endes", "êm"}
	case "-ter":
		p.ends = endings{"enho", "éns", "ém", "emos", "endes", "êm"}
	case "-uir":
		p.ends = endings{"o", "is", "i", "ímos", "ís", "em"}
	case "-uzir":
		p.ends = endings{"o", "es", "", "imos", "is", "em"}
	case "-valer":
		p.set(slotAlt, stem+"h").use(Single(slotAlt), FirstSingular)
	case "ver", "-ver":
		p.ends = endings{"jo", "s", "", "mos", "des", "em"}
		monosyllabic(p, stem)
	case "vir":
		p.ends = endings{"enho", "ens", "em", "imos", "indes", "êm"}
	case "-vir":
		p.ends = endings{"enho", "éns", "ém", "imos", "indes", "êm"}
	}
	return p.row(v)
}

// monosyllabic sets up crer, ler and ver, whose stems take a plain or a
// circumflexed e and lost the circumflex of the third plural in the reform.
func monosyllabic(p *paradigm, stem string) {
	p.set(slotAlt, stem+"e").set(slotThird, stem+"ê").
		use(Single(slotAlt), FirstSingular, FirstPlural, SecondPlural).
		use(Single(slotThird), SecondSingular, ThirdSingular).
		use(ReformSplit(slotAlt, slotThird), ThirdPlural)
}

// delinquirPresent spells the present of delinquir and its derivatives,
// whose stress and diaeresis vary in every variant. prefix is the stem
// without its final "inqu".
func delinquirPresent(prefix string, v Variant) Row {
	forms := func(ends ...string) Cell {
		out := make([]string, len(ends))
		for i, e := range ends {
			out[i] = prefix + e
		}
		return cellOf(out...)
	}
	switch v {
	case BrazilianPreReform:
		return Row{nil, forms("ínqües"), forms("ínqüe"), forms("inqüimos"), forms("inqüis"), forms("ínqüem")}
	case EuropeanPreReform:
		return Row{
			forms("inquo", "ínquo"), forms("inqüis", "ínques"), forms("inqüi", "ínque"),
			forms("inquimos"), forms("inquis"), forms("inqüem", "ínquem"),
		}
	}
	return Row{
		forms("inquo", "ínquo"), forms("inquis", "ínques"), forms("inqui", "ínque"),
		forms("inquimos"), forms("inquis"), forms("inquem", "ínquem"),
	}
}

func desmilinguirPresent(v Variant) Row {
	var ends endings
	switch v {
	case BrazilianPostReform:
		ends = endings{"ínguo", "íngues", "íngue", "ínguimos", "ínguis", "ínguem"}
	case BrazilianPreReform:
		ends = endings{"ínguo", "íngües", "íngüe", "íngüimos", "íngüis", "íngüem"}
	default:
		ends = endings{"inguo", "ingúis", "ingúi", "inguimos", "inguis", "ingúem"}
	}
	out := make(Row, PersonCount)
	for i, e := range ends {
		out[i] = cellOf("desmil" + e)
	}
	return out
}
