package conjugador

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Reflexive is the pronoun that requests the reflexive conjugation. It is
// replaced by the pronoun agreeing with each person.
const Reflexive = "se"

var (
	directPronouns   = setOf("me", "te", "o", "a", "nos", "vos", "os", "as")
	indirectPronouns = setOf("me", "te", "lhe", "nos", "vos", "lhes")

	// thirdPersonDirect take an "l" or "n" after some verb endings
	// (fazê-lo, dão-no).
	thirdPersonDirect = setOf("o", "a", "os", "as")

	reflexiveByPerson = [PersonCount]string{"me", "te", "se", "nos", "vos", "se"}
)

// contractions merges an indirect pronoun with a following direct one.
var contractions = map[string]map[string]string{
	"o":  {"me": "mo", "te": "to", "lhe": "lho", "lhes": "lho", "nos": "no-lo", "vos": "vo-lo"},
	"a":  {"me": "ma", "te": "ta", "lhe": "lha", "lhes": "lha", "nos": "no-la", "vos": "vo-la"},
	"os": {"me": "mos", "te": "tos", "lhe": "lhos", "lhes": "lhos", "nos": "no-los", "vos": "vo-los"},
	"as": {"me": "mas", "te": "tas", "lhe": "lhas", "lhes": "lhas", "nos": "no-las", "vos": "vo-las"},
}

// Contract joins an indirect and a direct object pronoun ("lhe" and "o"
// give "lho"). Pairs without a contracted form are hyphenated.
func Contract(indirect, direct string) string {
	if c, ok := contractions[direct][indirect]; ok {
		return c
	}
	return indirect + "-" + direct
}

// IsDirect reports whether p is a direct object pronoun.
func IsDirect(p string) bool { return directPronouns[p] }

// IsIndirect reports whether p is an indirect object pronoun.
func IsIndirect(p string) bool { return indirectPronouns[p] }

// validatePronouns checks a request's pronoun list: at most one indirect
// pronoun followed by at most one direct pronoun, or the reflexive alone.
func validatePronouns(pronouns []string) error {
	switch len(pronouns) {
	case 0:
		return nil
	case 1:
		p := pronouns[0]
		if IsDirect(p) || IsIndirect(p) || p == Reflexive {
			return nil
		}
		return errors.WithHint(
			errors.Wrapf(ErrInvalidRequest, "unknown pronoun %q", p),
			"use me, te, o, a, lhe, nos, vos, os, as, lhes or se",
		)
	case 2:
		if IsIndirect(pronouns[0]) && IsDirect(pronouns[1]) {
			return nil
		}
		return errors.WithHint(
			errors.Wrapf(ErrInvalidRequest, "pronouns %s", strings.Join(pronouns, ", ")),
			"two pronouns must be an indirect one followed by a direct one",
		)
	}
	return errors.Wrapf(ErrInvalidRequest, "%d pronouns given, at most two allowed", len(pronouns))
}

// clitics resolves a validated pronoun list into the clitic attached to
// each person. ok is false when there is no pronoun.
func clitics(pronouns []string) (out [PersonCount]string, ok bool) {
	switch len(pronouns) {
	case 0:
		return out, false
	case 1:
		if pronouns[0] == Reflexive {
			return reflexiveByPerson, true
		}
		for i := range out {
			out[i] = pronouns[0]
		}
	default:
		c := Contract(pronouns[0], pronouns[1])
		for i := range out {
			out[i] = c
		}
	}
	return out, true
}
