package conjugador

import "github.com/cockroachdb/errors"

// Flags are the irregularity markers of a verb, fixed by membership in
// closed word lists.
type Flags struct {
	// Root is the irregular verb this one is derived from and conjugates
	// like ("dar", "estar", "ler", "ter", "ver" or "vir"), or "".
	Root string
	// ThirdSingularOnly marks weather verbs (trovejar).
	ThirdSingularOnly bool
	// ThirdPersonOnly marks verbs used in the third persons only (doer).
	ThirdPersonOnly bool
	// ArrhizotonicOnly marks verbs that keep only the forms stressed on
	// the ending (falir).
	ArrhizotonicOnly bool
	// NoFirstSingular marks verbs lacking "eu" in the present (abolir).
	NoFirstSingular bool
}

// Verb is a validated infinitive with its four spellings and stems.
// A Verb is immutable; build one with NewVerb.
type Verb struct {
	infinitive  string
	ending      string
	infinitives [VariantCount]string
	stems       [VariantCount]string
	flags       Flags
}

// NewVerb sanitizes raw and returns the corresponding Verb. raw is
// expected to be lowercase. It fails with ErrInvalidInfinitive when the
// sanitized string is not an infinitive.
func NewVerb(raw string) (*Verb, error) {
	inf := Sanitize(raw)
	if !hasValidEnding(inf) {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidInfinitive, "%q", raw),
			"an infinitive ends in -ar, -er, -ir or -por",
		)
	}

	v := &Verb{
		infinitive: inf,
		ending:     lastN(inf, 2),
		flags: Flags{
			Root:              derivatives[inf],
			ThirdSingularOnly: thirdSingularOnly[inf],
			ThirdPersonOnly:   thirdPersonOnly[inf],
			ArrhizotonicOnly:  arrhizotonicOnly[inf],
			NoFirstSingular:   noFirstSingular[inf],
		},
	}
	for _, variant := range Variants {
		v.infinitives[variant] = spellingFor(inf, variant)
		v.stems[variant] = dropLast(v.infinitives[variant], 2)
	}
	return v, nil
}

// MustVerb is like NewVerb but panics on an invalid infinitive. It is meant
// for fixed verbs known at compile time.
func MustVerb(raw string) *Verb {
	v, err := NewVerb(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// spellingFor returns inf as spelled in variant v. Infinitives missing from
// the variant's table are spelled the same everywhere.
func spellingFor(inf string, v Variant) string {
	if s, ok := spellings[v][inf]; ok {
		return s
	}
	return inf
}

// Infinitive returns the sanitized infinitive as given.
func (v *Verb) Infinitive() string { return v.infinitive }

// Ending returns the last two letters of the infinitive: "ar", "er",
// "ir", "or" or, for pôr alone, "ôr".
func (v *Verb) Ending() string { return v.ending }

// InfinitiveFor returns the infinitive spelled for variant x.
func (v *Verb) InfinitiveFor(x Variant) string { return v.infinitives[x] }

// StemFor returns the infinitive of variant x minus its last two letters.
func (v *Verb) StemFor(x Variant) string { return v.stems[x] }

// Flags returns the irregularity markers.
func (v *Verb) Flags() Flags { return v.flags }

// like reports whether the verb is root itself or derived from it.
func (v *Verb) like(root string) bool {
	return v.infinitive == root || v.flags.Root == root
}

func (v *Verb) String() string { return v.infinitive }

// noImperative reports whether the verb has no imperative at all.
func (v *Verb) noImperative() bool {
	return v.flags.ThirdSingularOnly || v.flags.ThirdPersonOnly
}

// thirdPersonMask returns the persons cleared in every personal tense by
// the third-person defective flags.
func (v *Verb) thirdPersonMask() [PersonCount]bool {
	switch {
	case v.flags.ThirdSingularOnly:
		return personsOf(FirstSingular, SecondSingular, FirstPlural, SecondPlural, ThirdPlural)
	case v.flags.ThirdPersonOnly:
		return personsOf(FirstSingular, SecondSingular, FirstPlural, SecondPlural)
	}
	return [PersonCount]bool{}
}
