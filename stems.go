package conjugador

import "unicode/utf8"

// runeLen returns the number of characters in s.
func runeLen(s string) int { return utf8.RuneCountInString(s) }

// dropLast removes the last n characters of s.
func dropLast(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}

// lastN returns the last n characters of s.
func lastN(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[len(r)-n:])
}

// replaceFromEnd replaces the nth character counted from the end of s
// (n = 1 is the last one) with with. with may be empty or longer than one
// character.
func replaceFromEnd(s string, n int, with string) string {
	r := []rune(s)
	i := len(r) - n
	if i < 0 || n < 1 {
		return s
	}
	return string(r[:i]) + with + string(r[i+1:])
}

// slot names one of the stems a paradigm can draw from.
type slot int

const (
	slotBase slot = iota
	slotAlt
	slotThird
	slotFourth

	slotCount
)

// Combination states, for each variant, which stem slots fill a person's
// cell. One slot gives a single form, two slots give free variation, and
// no slot leaves the cell absent.
type Combination [VariantCount][]slot

// Absent is the combination of a defective person.
var Absent Combination

// Single uses the same slot in every variant.
func Single(s slot) Combination {
	return Combination{{s}, {s}, {s}, {s}}
}

// FreeVariation offers both slots, in order, in every variant.
func FreeVariation(a, b slot) Combination {
	return Combination{{a, b}, {a, b}, {a, b}, {a, b}}
}

// ReformSplit uses post in post-reform spelling and pre before the reform,
// identically in both dialects.
func ReformSplit(post, pre slot) Combination {
	return Combination{{post}, {pre}, {post}, {pre}}
}

// DialectSplit uses br in Brazilian variants and eu in European ones.
func DialectSplit(br, eu slot) Combination {
	return Combination{{br}, {br}, {eu}, {eu}}
}

// with returns a copy of c where variant v draws from slots instead.
func (c Combination) with(v Variant, slots ...slot) Combination {
	c[v] = slots
	return c
}

// endings lists the six personal endings of a tense.
type endings [PersonCount]string

// paradigm collects the stems, endings and per-person combinations of one
// tense for one verb. Every variant is computed from the same paradigm;
// row picks the variant's column.
type paradigm struct {
	stems [slotCount]string
	isSet [slotCount]bool
	ends  endings
	plan  [PersonCount]Combination

	// preset cells bypass the stem and ending composition.
	preset    [PersonCount][VariantCount]Cell
	hasPreset [PersonCount]bool
}

func newParadigm(stem string, ends endings) *paradigm {
	p := &paradigm{ends: ends}
	p.set(slotBase, stem)
	for i := range p.plan {
		p.plan[i] = Single(slotBase)
	}
	return p
}

func (p *paradigm) set(s slot, stem string) *paradigm {
	p.stems[s] = stem
	p.isSet[s] = true
	return p
}

// use assigns c to every listed person.
func (p *paradigm) use(c Combination, persons ...Person) *paradigm {
	for _, i := range persons {
		p.plan[i] = c
	}
	return p
}

// drop marks persons as defective.
func (p *paradigm) drop(persons ...Person) *paradigm {
	return p.use(Absent, persons...)
}

// fix gives person i the same literal forms in every variant.
func (p *paradigm) fix(i Person, forms ...string) *paradigm {
	for v := range p.preset[i] {
		p.preset[i][v] = cellOf(forms...)
	}
	p.hasPreset[i] = true
	return p
}

func (p *paradigm) compose(i Person, v Variant) Cell {
	slots := p.plan[i][v]
	if len(slots) == 0 {
		return nil
	}
	forms := make([]string, 0, len(slots))
	for _, s := range slots {
		if p.isSet[s] {
			forms = append(forms, p.stems[s]+p.ends[i])
		}
	}
	if len(forms) == 0 {
		forms = append(forms, p.stems[slotBase]+p.ends[i])
	}
	return cellOf(forms...)
}

// row renders the six cells of variant v.
func (p *paradigm) row(v Variant) Row {
	out := make(Row, PersonCount)
	for i := range out {
		if p.hasPreset[i] {
			out[i] = cellOf(p.preset[i][v]...)
			continue
		}
		out[i] = p.compose(Person(i), v)
	}
	return out
}

// mask clears the persons marked true.
func mask(r Row, persons [PersonCount]bool) Row {
	for i, off := range persons {
		if off && i < len(r) {
			r[i] = nil
		}
	}
	return r
}

// personsOf builds a person mask from a list.
func personsOf(ps ...Person) (m [PersonCount]bool) {
	for _, p := range ps {
		m[p] = true
	}
	return m
}
