package conjugador

import "strings"

// placement is where a clitic pronoun goes relative to a verb form.
type placement int

const (
	// keep leaves the form without pronoun.
	keep placement = iota
	// proclisis puts the pronoun before the form: "te falo".
	proclisis
	// mesoclisis puts the pronoun inside the first word: "falar-te-ei".
	mesoclisis
	// enclisis hyphenates the pronoun after the first word: "falo-te".
	enclisis
	// interposition puts the pronoun after the first word, unhyphenated:
	// "tenho te falado". Single words take enclisis.
	interposition
	// beforeLast puts the pronoun before the last word: "estou te falando".
	beforeLast
	// afterLast hyphenates the pronoun after the last word: "estou a falar-te".
	afterLast
)

// regularPlacement picks the placement in the plain and passive
// conjugations.
func regularPlacement(t Tense, v Variant, pronoun string) placement {
	switch {
	case t == PastParticiple:
		return keep
	case t.SingleForm():
		if v.Brazilian() {
			return interposition
		}
		return enclisis
	case t == ImperativeAffirmative:
		return enclisis
	case t.Compound() && t.Subjunctive():
		return proclisis
	case t.auxiliaryTense() == FutureIndicative || t.auxiliaryTense() == Conditional:
		return mesoclisis
	case v.Brazilian() || t.Subjunctive() || t == ImperativeNegative:
		if !t.Compound() {
			return proclisis
		}
		if thirdPersonDirect[pronoun] {
			return interposition
		}
		return enclisis
	}
	return enclisis
}

// progressivePlacement picks the placement in the progressive, where the
// pronoun goes with the main verb.
func progressivePlacement(t Tense, v Variant) placement {
	switch {
	case t.Subjunctive() || t == ImperativeNegative:
		return proclisis
	case v.Brazilian():
		return beforeLast
	}
	return afterLast
}

// clitic attaches pronouns to forms of one verb.
type clitic struct {
	verb *Verb
}

// attach places pronoun in form as pl says. t and p locate form in the
// table; mesoclisis depends on them.
func (c clitic) attach(pl placement, form, pronoun string, t Tense, p Person) string {
	first, rest, _ := strings.Cut(form, " ")
	if rest != "" {
		rest = " " + rest
	}
	switch pl {
	case proclisis:
		return pronoun + " " + form
	case mesoclisis:
		return c.mesoclitic(first, pronoun, t, p) + rest
	case enclisis:
		return c.enclitic(first, pronoun) + rest
	case interposition:
		if rest == "" {
			return c.enclitic(first, pronoun)
		}
		return first + " " + pronoun + rest
	case beforeLast:
		i := strings.LastIndex(form, " ")
		if i < 0 {
			return c.enclitic(form, pronoun)
		}
		return form[:i] + " " + pronoun + form[i:]
	case afterLast:
		i := strings.LastIndex(form, " ")
		return form[:i+1] + c.enclitic(form[i+1:], pronoun)
	}
	return form
}

// Number of characters of the future and conditional endings that follow
// the pronoun, per person: falar-te-ei, falar-te-íamos.
var (
	futureSplit      = [PersonCount]int{2, 2, 1, 4, 3, 2}
	conditionalSplit = [PersonCount]int{2, 3, 2, 5, 4, 3}
)

// mesoclitic inserts pronoun between the infinitive and the ending of a
// future or conditional form. Before o, a, os and as the infinitive drops
// its r and the pronoun takes an l: falá-lo-ei.
func (c clitic) mesoclitic(form, pronoun string, t Tense, p Person) string {
	split := futureSplit[p]
	if t.auxiliaryTense() == Conditional {
		split = conditionalSplit[p]
	}
	r := []rune(form)
	if len(r) < split+2 {
		return c.enclitic(form, pronoun)
	}
	start := string(r[:len(r)-split-2])
	middle := string(r[len(r)-split-2 : len(r)-split])
	end := string(r[len(r)-split:])
	if thirdPersonDirect[pronoun] {
		middle = c.stressedVowel(middle)
		pronoun = "l" + pronoun
	}
	return start + middle + "-" + pronoun + "-" + end
}

// stressedVowel returns the accented vowel that replaces an infinitive
// ending (ar, er, ir, or) once its r is dropped.
func (c clitic) stressedVowel(ending string) string {
	switch ending {
	case "ar":
		return "á"
	case "er":
		return "ê"
	case "ir":
		if c.accentedI() {
			return "í"
		}
		return "i"
	}
	return "ô"
}

// accentedI reports whether the verb's i takes an acute accent when the r
// of the infinitive is dropped (atraí-lo, construí-lo).
func (c clitic) accentedI() bool {
	inf := c.verb.infinitive
	if hasAnySuffix(inf, "guir", "güir", "quir", "qüir") {
		return false
	}
	return hasAnySuffix(inf, "air", "uir")
}

// enclitic hyphenates pronoun after form, adjusting the ending of form
// where the pronoun requires it.
func (c clitic) enclitic(form, pronoun string) string {
	switch pronoun {
	case "nos", "no-lo", "no-la", "no-los", "no-las":
		// falamo-nos
		if runeLen(form) > 3 && strings.HasSuffix(form, "mos") {
			return dropLast(form, 1) + "-" + pronoun
		}
	case "o", "a", "os", "as":
		if form, ok := c.linkThirdPerson(form, pronoun); ok {
			return form
		}
	}
	return form + "-" + pronoun
}

// linkThirdPerson applies the lo and no forms of o, a, os and as.
func (c clitic) linkThirdPerson(form, pronoun string) (string, bool) {
	if runeLen(form) < 2 {
		return "", false
	}
	switch lastN(form, 2) {
	case "ar", "ás", "az":
		return dropLast(form, 2) + "á-l" + pronoun, true
	case "er", "ês", "ez":
		return dropLast(form, 2) + "ê-l" + pronoun, true
	case "as", "es", "és", "is", "ís", "os":
		return dropLast(form, 1) + "-l" + pronoun, true
	case "ir":
		if c.accentedI() {
			return dropLast(form, 2) + "í-l" + pronoun, true
		}
		return dropLast(form, 2) + "i-l" + pronoun, true
	case "or", "ôr", "ôs":
		return dropLast(form, 2) + "ô-l" + pronoun, true
	case "ão", "õe":
		return form + "-n" + pronoun, true
	case "ns":
		return dropLast(form, 2) + "m-l" + pronoun, true
	}
	switch lastN(form, 1) {
	case "m", "n":
		return form + "-n" + pronoun, true
	case "r", "s", "z":
		// fi-lo, pu-lo, condu-lo
		return dropLast(form, 1) + "-l" + pronoun, true
	}
	return "", false
}

// withPronouns returns a copy of tab with pronouns attached to every form.
// placementOf picks the placement of each tense and variant; single-form
// tenses take the third singular pronoun.
func withPronouns(tab *Table, pronouns [PersonCount]string,
	placementOf func(Tense, Variant, string) placement,
) *Table {
	c := clitic{verb: tab.Verb}
	out := &Table{Verb: tab.Verb}
	for t := range tab.rows {
		tense := Tense(t)
		for v := range tab.rows[t] {
			row := tab.rows[t][v]
			if row == nil {
				continue
			}
			dst := make(Row, len(row))
			for p, cell := range row {
				pronoun := pronouns[p]
				if tense.SingleForm() {
					pronoun = pronouns[ThirdSingular]
				}
				pl := placementOf(tense, Variant(v), pronoun)
				dst[p] = mapCell(cell, func(form string) string {
					return c.attach(pl, form, pronoun, tense, Person(p))
				})
			}
			out.rows[t][v] = dst
		}
	}
	return out
}
