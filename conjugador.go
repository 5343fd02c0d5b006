// Package conjugador conjugates Portuguese verbs in Brazilian and European
// Portuguese, each spelled before and after the 1990 orthographic reform.
// Irregular verbs are recognised through rule tables, compound tenses and
// the progressive and passive periphrases are built from the auxiliaries
// ter, haver, estar and ser, and clitic pronouns can be attached in the
// position each variant prefers.
package conjugador

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Conjugate computes every tense of verb in every variant.
func Conjugate(verb *Verb, aux *Auxiliaries) (*Table, error) {
	if verb == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "no verb")
	}
	if aux == nil {
		return nil, errors.Wrapf(ErrAuxiliariesNotBuilt, "conjugating %q", verb)
	}
	c := newConjugator(verb, aux)
	if err := c.fill(CompoundImpersonalInfinitive); err != nil {
		return nil, err
	}
	return c.table, nil
}

// ConjugateSimple computes the simple tenses, up to the past participle,
// which need no auxiliary.
func ConjugateSimple(verb *Verb) *Table {
	c := newConjugator(verb, nil)
	c.fillSimple(PastParticiple)
	return c.table
}

// ConjugateVariant computes every tense of verb in variant v only.
func ConjugateVariant(verb *Verb, v Variant, aux *Auxiliaries) (VariantTable, error) {
	if aux == nil {
		return VariantTable{}, errors.Wrapf(ErrAuxiliariesNotBuilt, "conjugating %q", verb)
	}
	c := newConjugator(verb, aux)
	if err := c.fill(CompoundImpersonalInfinitive, v); err != nil {
		return VariantTable{}, err
	}
	return c.table.ForVariant(v), nil
}

// Inspection describes how a verb is classified.
type Inspection struct {
	Infinitive string
	Ending     string
	Flags      Flags
	// Spellings lists the infinitive in each variant.
	Spellings [VariantCount]string
	// Patterns maps each tense family to the irregularity class of the verb.
	Patterns [familyCount]Pattern
}

// Inspect classifies verb in every tense family.
func Inspect(verb *Verb) (Inspection, error) {
	in := Inspection{
		Infinitive: verb.infinitive,
		Ending:     verb.ending,
		Flags:      verb.flags,
		Spellings:  verb.infinitives,
	}
	for f := range in.Patterns {
		p, err := Classify(verb, Family(f))
		if err != nil {
			return Inspection{}, err
		}
		in.Patterns[f] = p
	}
	return in, nil
}

// Conjugador bundles built auxiliaries with a logger. It is safe for
// concurrent use.
type Conjugador struct {
	aux *Auxiliaries
	log *zap.Logger
}

// New builds the auxiliaries and returns a ready-to-use Conjugador.
func New(opts ...Option) (*Conjugador, error) {
	cfg := auxConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	aux, err := BuildAuxiliaries(opts...)
	if err != nil {
		return nil, err
	}
	return &Conjugador{aux: aux, log: cfg.logger}, nil
}

// Auxiliaries returns the auxiliary tables.
func (c *Conjugador) Auxiliaries() *Auxiliaries { return c.aux }

// Verb validates an infinitive.
func (c *Conjugador) Verb(raw string) (*Verb, error) {
	v, err := NewVerb(raw)
	if err != nil {
		c.log.Debug("rejected infinitive", zap.String("raw", raw), zap.Error(err))
		return nil, err
	}
	return v, nil
}

// Conjugate computes every tense of verb in every variant.
func (c *Conjugador) Conjugate(verb *Verb) (*Table, error) {
	return Conjugate(verb, c.aux)
}

// Analyze conjugates verb and locates form in the result.
func (c *Conjugador) Analyze(verb *Verb, form string) ([]Analysis, error) {
	tab, err := c.Conjugate(verb)
	if err != nil {
		return nil, err
	}
	as := tab.Analyze(form)
	c.log.Debug("analyzed",
		zap.Stringer("verb", verb),
		zap.String("form", form),
		zap.Int("matches", len(as)),
	)
	return as, nil
}

// ConjugateOptions answers a validated request.
func (c *Conjugador) ConjugateOptions(o *Options) (VariantTable, error) {
	vt, err := ConjugateOptions(o, c.aux)
	if err != nil {
		return VariantTable{}, err
	}
	c.log.Debug("conjugated",
		zap.Stringer("verb", o.Verb),
		zap.Stringer("variant", o.Variant),
		zap.Stringer("mood", o.Mood),
		zap.Strings("pronouns", o.Pronouns),
	)
	return vt, nil
}
