package conjugador

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Options is a validated conjugation request.
type Options struct {
	Verb     *Verb
	Variant  Variant
	Mood     Mood
	Pronouns []string
}

// NewOptions validates a request. Pronouns are either the reflexive "se"
// alone, one object pronoun, or an indirect pronoun followed by a direct
// one.
func NewOptions(verb *Verb, variant Variant, mood Mood, pronouns ...string) (*Options, error) {
	if verb == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "no verb")
	}
	if variant < 0 || variant >= VariantCount {
		return nil, errors.Wrapf(ErrInvalidRequest, "unknown variant %d", variant)
	}
	if mood < RegularMood || mood > ProgressiveMood {
		return nil, errors.Wrapf(ErrInvalidRequest, "unknown mood %d", mood)
	}
	if err := validatePronouns(pronouns); err != nil {
		return nil, err
	}
	return &Options{
		Verb:     verb,
		Variant:  variant,
		Mood:     mood,
		Pronouns: slices.Clone(pronouns),
	}, nil
}

// ParseOptions builds Options from the textual forms used by the command
// line and the HTTP API.
func ParseOptions(infinitive, variant, mood string, pronouns ...string) (*Options, error) {
	verb, err := NewVerb(infinitive)
	if err != nil {
		return nil, err
	}
	v, err := ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	m, err := ParseMood(mood)
	if err != nil {
		return nil, err
	}
	return NewOptions(verb, v, m, pronouns...)
}

// ConjugateOptions conjugates the verb of o in its mood and variant and
// attaches its pronouns.
func ConjugateOptions(o *Options, aux *Auxiliaries) (VariantTable, error) {
	if o == nil {
		return VariantTable{}, errors.Wrap(ErrInvalidRequest, "no options")
	}
	var (
		tab *Table
		err error
	)
	switch o.Mood {
	case PassiveMood:
		if len(o.Pronouns) > 1 || (len(o.Pronouns) == 1 && !IsIndirect(o.Pronouns[0])) {
			return VariantTable{}, errors.WithHint(
				errors.Wrapf(ErrUnsupportedPronoun, "%v with the passive", o.Pronouns),
				"the passive takes a single indirect pronoun: me, te, lhe, nos, vos or lhes",
			)
		}
		tab, err = Passive(o.Verb, aux)
	case ProgressiveMood:
		tab, err = Progressive(o.Verb, aux)
	default:
		tab, err = Conjugate(o.Verb, aux)
	}
	if err != nil {
		return VariantTable{}, err
	}

	if pronouns, ok := clitics(o.Pronouns); ok {
		if o.Mood == ProgressiveMood {
			tab = withPronouns(tab, pronouns, func(t Tense, v Variant, _ string) placement {
				return progressivePlacement(t, v)
			})
		} else {
			tab = withPronouns(tab, pronouns, regularPlacement)
		}
	}
	return tab.ForVariant(o.Variant), nil
}
