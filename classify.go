package conjugador

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Pattern names an irregularity class within a tense family. Classes that
// cover every verb ending in some suffix are written "-suffix" ("-dizer",
// "-ar"); classes that cover one verb are the verb itself ("haver").
type Pattern string

// Regular is the single regular class of the future family.
const Regular Pattern = "regular"

// Family groups the tenses that share one classification.
type Family int

const (
	PresentFamily            Family = iota // present indicative
	ImperfectFamily                        // imperfect indicative
	PreteriteFamily                        // preterite and pluperfect indicative
	FutureFamily                           // future indicative and conditional
	PresentSubjunctiveFamily               // present subjunctive
	PastSubjunctiveFamily                  // imperfect and future subjunctive
	ParticipleFamily                       // past participle

	familyCount
)

var familyNames = [familyCount]string{
	"present", "imperfect", "preterite", "future",
	"present-subjunctive", "past-subjunctive", "participle",
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return "unknown"
	}
	return familyNames[f]
}

// FamilyOf returns the family that classifies simple tense t.
func FamilyOf(t Tense) (Family, bool) {
	switch t {
	case PresentIndicative:
		return PresentFamily, true
	case ImperfectIndicative:
		return ImperfectFamily, true
	case PreteriteIndicative, PluperfectIndicative:
		return PreteriteFamily, true
	case FutureIndicative, Conditional:
		return FutureFamily, true
	case PresentSubjunctive:
		return PresentSubjunctiveFamily, true
	case ImperfectSubjunctive, FutureSubjunctive:
		return PastSubjunctiveFamily, true
	case PastParticiple:
		return ParticipleFamily, true
	}
	return 0, false
}

type matchKind int

const (
	// matchRoot matches verbs derived from the root named by value.
	matchRoot matchKind = iota
	// matchExact matches the infinitive value only.
	matchExact
	// matchSuffix matches every infinitive ending in value.
	matchSuffix
)

// rule is one (kind, value, pattern) entry of a family's table.
type rule struct {
	kind    matchKind
	value   string
	pattern Pattern
}

// matcher is the compiled form of a family's rules.
type matcher struct {
	roots    map[string]Pattern
	exact    map[string]Pattern
	suffixes []rule
}

func compile(rules []rule) *matcher {
	m := &matcher{
		roots: make(map[string]Pattern),
		exact: make(map[string]Pattern),
	}
	for _, r := range rules {
		switch r.kind {
		case matchRoot:
			m.roots[r.value] = r.pattern
		case matchExact:
			if _, dup := m.exact[r.value]; !dup {
				m.exact[r.value] = r.pattern
			}
		case matchSuffix:
			m.suffixes = append(m.suffixes, r)
		}
	}
	// Longest suffix first; equal lengths keep table order.
	slices.SortStableFunc(m.suffixes, func(a, b rule) int {
		return runeLen(b.value) - runeLen(a.value)
	})
	return m
}

func (m *matcher) match(v *Verb) (Pattern, bool) {
	if p, ok := m.roots[v.flags.Root]; ok && v.flags.Root != "" {
		return p, true
	}
	if p, ok := m.exact[v.infinitive]; ok {
		return p, true
	}
	for _, r := range m.suffixes {
		if strings.HasSuffix(v.infinitive, r.value) {
			return r.pattern, true
		}
	}
	return "", false
}

var matchers = func() (ms [familyCount]*matcher) {
	for f, rules := range familyRules {
		ms[f] = compile(rules)
	}
	return ms
}()

// Classify returns the irregularity class of v within family f.
// Every valid verb falls into some class; an error means the rule tables
// are missing a fallback.
func Classify(v *Verb, f Family) (Pattern, error) {
	if f < 0 || f >= familyCount {
		return "", errors.AssertionFailedf("unknown tense family %d", f)
	}
	p, ok := matchers[f].match(v)
	if !ok {
		return "", errors.AssertionFailedf("no %s class for %q", f, v.infinitive)
	}
	return p, nil
}

// classify is Classify for callers holding a validated verb. The
// fallback rules guarantee a match, so a miss yields the regular class of
// the ending.
func classify(v *Verb, f Family) Pattern {
	p, err := Classify(v, f)
	if err != nil {
		return Pattern("-" + v.ending)
	}
	return p
}
