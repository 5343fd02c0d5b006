package conjugador

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInfinitive is returned when a candidate string is not a
	// Portuguese infinitive.
	ErrInvalidInfinitive = errors.New("invalid infinitive")

	// ErrInvalidRequest is returned for an unsupported mood, variant, tense
	// or pronoun combination.
	ErrInvalidRequest = errors.New("invalid conjugation request")

	// ErrUnsupportedPronoun is returned when a pronoun cannot be attached in
	// the requested mood, such as a direct object with the passive voice.
	ErrUnsupportedPronoun = errors.New("pronoun not supported in this mood")

	// ErrAuxiliariesNotBuilt is returned when compound or periphrastic forms
	// are requested without auxiliary tables.
	ErrAuxiliariesNotBuilt = errors.New("auxiliary tables not built")
)
