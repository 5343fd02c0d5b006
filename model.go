package conjugador

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Separator joins the alternatives of a cell when it is rendered as text.
const Separator = "/"

// Variant is one of the four spelling norms: Brazilian or European
// Portuguese, each after or before the 1990 orthographic agreement.
type Variant int

const (
	BrazilianPostReform Variant = iota
	BrazilianPreReform
	EuropeanPostReform
	EuropeanPreReform

	VariantCount = 4
)

var variantNames = [VariantCount]string{"bp", "bp-pre", "ep", "ep-pre"}

// Variants lists every variant in table order.
var Variants = [VariantCount]Variant{
	BrazilianPostReform, BrazilianPreReform, EuropeanPostReform, EuropeanPreReform,
}

func (v Variant) String() string {
	if v < 0 || v >= VariantCount {
		return "unknown"
	}
	return variantNames[v]
}

// Brazilian reports whether v belongs to the Brazilian norm.
func (v Variant) Brazilian() bool {
	return v == BrazilianPostReform || v == BrazilianPreReform
}

// PreReform reports whether v follows the spelling in use before the
// agreement.
func (v Variant) PreReform() bool {
	return v == BrazilianPreReform || v == EuropeanPreReform
}

// ParseVariant accepts the short names "bp", "bp-pre", "ep" and "ep-pre".
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range variantNames {
		if key == name {
			return Variant(i), nil
		}
	}
	return 0, errors.WithHint(
		errors.Wrapf(ErrInvalidRequest, "unknown variant %q", s),
		"use one of bp, bp-pre, ep, ep-pre",
	)
}

// Person is a grammatical subject, 0 (eu) through 5 (eles).
type Person int

const (
	FirstSingular Person = iota
	SecondSingular
	ThirdSingular
	FirstPlural
	SecondPlural
	ThirdPlural

	PersonCount = 6
)

// Plural reports whether p is a plural person.
func (p Person) Plural() bool { return p >= FirstPlural }

// Tense enumerates the conjugation categories. The order matters: a tense
// only ever depends on tenses with a lower value.
type Tense int

const (
	PresentIndicative Tense = iota
	ImperfectIndicative
	PreteriteIndicative
	PluperfectIndicative
	FutureIndicative
	Conditional
	PresentSubjunctive
	ImperfectSubjunctive
	FutureSubjunctive
	PersonalInfinitive
	ImpersonalInfinitive
	ImperativeAffirmative
	ImperativeNegative
	Gerund
	PastParticiple
	CompoundPresentIndicative
	CompoundImperfectIndicative
	CompoundPluperfectIndicative
	CompoundFutureIndicative
	CompoundConditional
	CompoundPresentSubjunctive
	CompoundImperfectSubjunctive
	CompoundFutureSubjunctive
	CompoundPersonalInfinitive
	CompoundImpersonalInfinitive

	TenseCount = 25
)

var tenseNames = [TenseCount]string{
	"present-indicative",
	"imperfect-indicative",
	"preterite-indicative",
	"pluperfect-indicative",
	"future-indicative",
	"conditional",
	"present-subjunctive",
	"imperfect-subjunctive",
	"future-subjunctive",
	"personal-infinitive",
	"impersonal-infinitive",
	"imperative-affirmative",
	"imperative-negative",
	"gerund",
	"past-participle",
	"compound-present-indicative",
	"compound-imperfect-indicative",
	"compound-pluperfect-indicative",
	"compound-future-indicative",
	"compound-conditional",
	"compound-present-subjunctive",
	"compound-imperfect-subjunctive",
	"compound-future-subjunctive",
	"compound-personal-infinitive",
	"compound-impersonal-infinitive",
}

func (t Tense) String() string {
	if t < 0 || t >= TenseCount {
		return "unknown"
	}
	return tenseNames[t]
}

// ParseTense accepts the kebab-case names returned by Tense.String.
func ParseTense(s string) (Tense, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range tenseNames {
		if key == name {
			return Tense(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidRequest, "unknown tense %q", s)
}

// Compound reports whether t is built from an auxiliary and a participle.
func (t Tense) Compound() bool { return t >= CompoundPresentIndicative }

// SingleForm reports whether t has one invariant form instead of six
// personal ones.
func (t Tense) SingleForm() bool {
	switch t {
	case ImpersonalInfinitive, Gerund, PastParticiple, CompoundImpersonalInfinitive:
		return true
	}
	return false
}

// Subjunctive reports whether t is a simple or compound subjunctive.
func (t Tense) Subjunctive() bool {
	switch t {
	case PresentSubjunctive, ImperfectSubjunctive, FutureSubjunctive,
		CompoundPresentSubjunctive, CompoundImperfectSubjunctive, CompoundFutureSubjunctive:
		return true
	}
	return false
}

// auxiliaryTense returns the simple tense of the auxiliary that heads the
// compound tense t.
func (t Tense) auxiliaryTense() Tense {
	switch t {
	case CompoundPresentIndicative:
		return PresentIndicative
	case CompoundImperfectIndicative:
		return ImperfectIndicative
	case CompoundPluperfectIndicative:
		return PluperfectIndicative
	case CompoundFutureIndicative:
		return FutureIndicative
	case CompoundConditional:
		return Conditional
	case CompoundPresentSubjunctive:
		return PresentSubjunctive
	case CompoundImperfectSubjunctive:
		return ImperfectSubjunctive
	case CompoundFutureSubjunctive:
		return FutureSubjunctive
	case CompoundPersonalInfinitive:
		return PersonalInfinitive
	case CompoundImpersonalInfinitive:
		return ImpersonalInfinitive
	}
	return t
}

// Mood selects the voice of a conjugation request.
type Mood int

const (
	RegularMood Mood = iota
	PassiveMood
	ProgressiveMood
)

var moodNames = [...]string{"regular", "passive", "progressive"}

func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodNames) {
		return "unknown"
	}
	return moodNames[m]
}

// ParseMood accepts "regular", "passive" or "progressive".
func ParseMood(s string) (Mood, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range moodNames {
		if key == name {
			return Mood(i), nil
		}
	}
	return 0, errors.WithHint(
		errors.Wrapf(ErrInvalidRequest, "unsupported mood %q", s),
		"use one of regular, passive, progressive",
	)
}

// Cell holds the acceptable written forms for one slot of a table, in
// preference order. A nil Cell is a defective slot with no valid form.
type Cell []string

// Absent reports whether the slot has no valid form.
func (c Cell) Absent() bool { return len(c) == 0 }

// First returns the preferred form, or "" for an absent cell.
func (c Cell) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// String joins the alternatives with Separator.
func (c Cell) String() string { return strings.Join(c, Separator) }

// Forms renders the row as one string per cell, with alternatives joined by
// Separator and nil for absent cells.
func (r Row) Forms() []*string {
	out := make([]*string, len(r))
	for i, c := range r {
		if !c.Absent() {
			s := c.String()
			out[i] = &s
		}
	}
	return out
}

func (c Cell) clone() Cell {
	if c == nil {
		return nil
	}
	return append(Cell(nil), c...)
}

// cellOf builds a cell from forms, dropping duplicates.
func cellOf(forms ...string) Cell {
	return Cell(unique(forms))
}

// mapCell applies f to every alternative of c. Absent cells stay absent.
func mapCell(c Cell, f func(string) string) Cell {
	if c == nil {
		return nil
	}
	out := make([]string, len(c))
	for i, form := range c {
		out[i] = f(form)
	}
	return cellOf(out...)
}

// Row is the list of cells of one tense in one variant: six cells for
// personal tenses, one for single-form tenses.
type Row []Cell

func (r Row) clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	for i, c := range r {
		out[i] = c.clone()
	}
	return out
}

// cell returns r[p], or nil when p is out of range (single-form rows).
func (r Row) cell(p Person) Cell {
	if int(p) < 0 || int(p) >= len(r) {
		return nil
	}
	return r[p]
}

// Table holds every computed row of a verb, indexed by tense then variant.
// Rows of tenses that were not computed are nil.
type Table struct {
	Verb *Verb
	rows [TenseCount][VariantCount]Row
}

// Row returns the row of tense t in variant v.
func (t *Table) Row(tense Tense, v Variant) Row {
	return t.rows[tense][v]
}

// Cell returns one slot of the table. Single-form tenses answer any
// person with their only cell.
func (t *Table) Cell(tense Tense, v Variant, p Person) Cell {
	row := t.rows[tense][v]
	if len(row) == 1 {
		return row[0]
	}
	return row.cell(p)
}

// Has reports whether tense has been computed.
func (t *Table) Has(tense Tense) bool {
	return t.rows[tense][BrazilianPostReform] != nil
}

// ForVariant projects the table onto a single variant.
func (t *Table) ForVariant(v Variant) VariantTable {
	out := VariantTable{Verb: t.Verb, Variant: v}
	for tense := range out.Rows {
		out.Rows[tense] = t.rows[tense][v].clone()
	}
	return out
}

// VariantTable is the projection of a Table onto one variant.
type VariantTable struct {
	Verb    *Verb
	Variant Variant
	Rows    [TenseCount]Row
}

// unique returns a copy of forms with duplicates and empty strings removed,
// preserving order.
func unique(forms []string) []string {
	if len(forms) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
