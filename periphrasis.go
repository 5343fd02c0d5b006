package conjugador

import "github.com/cockroachdb/errors"

// Progressive conjugates the continuous periphrasis: estar followed by the
// gerund in Brazilian Portuguese ("estou falando") and by "a" and the
// infinitive in European Portuguese ("estou a falar").
func Progressive(verb *Verb, aux *Auxiliaries) (*Table, error) {
	if aux == nil {
		return nil, errors.Wrapf(ErrAuxiliariesNotBuilt, "progressive of %q", verb)
	}
	c := newConjugator(verb, aux)
	var tails [VariantCount]string
	for _, v := range Variants {
		if v.Brazilian() {
			tails[v] = " " + c.gerund(v).cell(0).First()
		} else {
			tails[v] = " a " + verb.InfinitiveFor(v)
		}
	}
	tab := periphrasis(verb, aux.estar, func(t Tense, v Variant, _ Person) (string, bool) {
		// estando falando is not a form
		return tails[v], t != Gerund
	})
	return tab, nil
}

// Passive conjugates ser followed by the participle, which agrees in
// number with the subject ("é falado", "são falados").
func Passive(verb *Verb, aux *Auxiliaries) (*Table, error) {
	if aux == nil {
		return nil, errors.Wrapf(ErrAuxiliariesNotBuilt, "passive of %q", verb)
	}
	c := newConjugator(verb, aux)
	var participles [VariantCount]string
	for _, v := range Variants {
		participles[v] = " " + c.participle(v)
	}
	tab := periphrasis(verb, aux.ser, func(t Tense, v Variant, p Person) (string, bool) {
		if !t.SingleForm() && p.Plural() {
			return participles[v] + "s", true
		}
		return participles[v], true
	})
	return tab, nil
}

// periphrasis appends tail to every form of head. A tense for which tail
// reports false comes out as one absent cell.
func periphrasis(verb *Verb, head *Table, tail func(Tense, Variant, Person) (string, bool)) *Table {
	tab := &Table{Verb: verb}
	for t := PresentIndicative; t < TenseCount; t++ {
		for _, v := range Variants {
			row := head.Row(t, v)
			out := make(Row, len(row))
			if (t == ImperativeAffirmative || t == ImperativeNegative) && verb.noImperative() {
				tab.rows[t][v] = out
				continue
			}
			for p, cell := range row {
				if t == ImperativeAffirmative && Person(p) == FirstSingular {
					continue
				}
				suffix, ok := tail(t, v, Person(p))
				if !ok {
					out = Row{nil}
					break
				}
				out[p] = mapCell(cell, func(s string) string { return s + suffix })
			}
			if !t.SingleForm() {
				out = mask(out, verb.thirdPersonMask())
			}
			tab.rows[t][v] = out
		}
	}
	return tab
}
