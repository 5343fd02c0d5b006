package conjugador

import "github.com/cockroachdb/errors"

// conjugator fills the table of one verb tense by tense. Later tenses read
// rows already computed, so tenses are always filled in declaration order.
type conjugator struct {
	verb  *Verb
	aux   *Auxiliaries
	table *Table

	// preterite keeps the third-person-unmasked preterite of each variant.
	preterite [VariantCount]Row
}

func newConjugator(v *Verb, aux *Auxiliaries) *conjugator {
	return &conjugator{verb: v, aux: aux, table: &Table{Verb: v}}
}

// fill computes every tense up to and including last for the given
// variants (all of them when none is given). Compound tenses need
// auxiliaries.
func (c *conjugator) fill(last Tense, variants ...Variant) error {
	if len(variants) == 0 {
		variants = Variants[:]
	}
	if last.Compound() && c.aux == nil {
		return errors.Wrapf(ErrAuxiliariesNotBuilt, "conjugating %q up to %s", c.verb, last)
	}
	c.fillSimple(min(last, PastParticiple), variants...)
	for t := CompoundPresentIndicative; t <= last; t++ {
		for _, v := range variants {
			c.table.rows[t][v] = c.tense(t, v)
		}
	}
	return nil
}

// fillSimple computes the simple tenses up to last, which must not be
// compound.
func (c *conjugator) fillSimple(last Tense, variants ...Variant) {
	if len(variants) == 0 {
		variants = Variants[:]
	}
	for t := PresentIndicative; t <= last; t++ {
		for _, v := range variants {
			c.table.rows[t][v] = c.tense(t, v)
		}
	}
}

// tense computes one row.
func (c *conjugator) tense(t Tense, v Variant) Row {
	switch t {
	case PresentIndicative:
		return c.presentIndicative(v)
	case ImperfectIndicative:
		return c.imperfectIndicative(v)
	case PreteriteIndicative:
		return c.preteriteIndicative(v)
	case PluperfectIndicative:
		return c.pluperfectIndicative(v)
	case FutureIndicative:
		return c.futureIndicative(v)
	case Conditional:
		return c.conditional(v)
	case PresentSubjunctive:
		return c.presentSubjunctive(v)
	case ImperfectSubjunctive:
		return c.imperfectSubjunctive(v)
	case FutureSubjunctive:
		return c.futureSubjunctive(v)
	case PersonalInfinitive:
		return c.personalInfinitive(v)
	case ImpersonalInfinitive:
		return c.impersonalInfinitive(v)
	case ImperativeAffirmative:
		return c.imperativeAffirmative(v)
	case ImperativeNegative:
		return c.imperativeNegative(v)
	case Gerund:
		return c.gerund(v)
	case PastParticiple:
		return c.pastParticiple(v)
	}
	return c.compound(t, v)
}

// participle returns the preferred participle of variant v, computing the
// row when the table does not hold it yet.
func (c *conjugator) participle(v Variant) string {
	row := c.table.rows[PastParticiple][v]
	if row == nil {
		row = c.pastParticiple(v)
	}
	return row.cell(0).First()
}

// compound builds a compound tense from ter and haver followed by the
// participle. ter forms come first.
func (c *conjugator) compound(t Tense, v Variant) Row {
	pp := c.participle(v)
	at := t.auxiliaryTense()
	join := func(aux Cell) []string {
		out := make([]string, len(aux))
		for i, form := range aux {
			out[i] = form + " " + pp
		}
		return out
	}

	if t.SingleForm() {
		forms := append(join(c.aux.ter.Cell(at, v, 0)), join(c.aux.haver.Cell(at, v, 0))...)
		return Row{cellOf(forms...)}
	}
	out := make(Row, PersonCount)
	for p := range out {
		ter := c.aux.ter.Cell(at, v, Person(p))
		haver := c.aux.haver.Cell(at, v, Person(p))
		out[p] = cellOf(append(join(ter), join(haver)...)...)
	}
	return mask(out, c.verb.thirdPersonMask())
}
