package conjugador

import (
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Auxiliary names one of the four auxiliary verbs.
type Auxiliary int

const (
	Ter Auxiliary = iota
	Haver
	Estar
	Ser
)

var auxiliaryNames = [...]string{"ter", "haver", "estar", "ser"}

func (a Auxiliary) String() string {
	if a < 0 || int(a) >= len(auxiliaryNames) {
		return "unknown"
	}
	return auxiliaryNames[a]
}

// Auxiliaries holds the conjugation tables of ter, haver, estar and ser.
// Compound tenses take ter and haver, the progressive takes estar and the
// passive takes ser. An Auxiliaries value never changes once built and is
// safe for concurrent use.
type Auxiliaries struct {
	ter, haver, estar, ser *Table
}

// Option configures BuildAuxiliaries and New.
type Option func(*auxConfig)

type auxConfig struct {
	logger *zap.Logger
}

// WithLogger logs the construction steps on l.
func WithLogger(l *zap.Logger) Option {
	return func(c *auxConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// BuildAuxiliaries conjugates the four auxiliaries. ter and haver are
// conjugated up to the past participle first; estar and ser, whose compound
// tenses need them, are then conjugated in full.
func BuildAuxiliaries(opts ...Option) (*Auxiliaries, error) {
	cfg := auxConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.Named("auxiliaries")

	simple := func(inf string) (*Table, error) {
		c := newConjugator(MustVerb(inf), nil)
		if err := c.fill(PastParticiple); err != nil {
			return nil, errors.Wrapf(err, "conjugating auxiliary %s", inf)
		}
		log.Debug("simple tenses ready", zap.String("verb", inf))
		return c.table, nil
	}

	ter, err := simple("ter")
	if err != nil {
		return nil, err
	}
	haver, err := simple("haver")
	if err != nil {
		return nil, err
	}
	base := &Auxiliaries{ter: ter, haver: haver}

	full := func(inf string) (*Table, error) {
		c := newConjugator(MustVerb(inf), base)
		if err := c.fill(CompoundImpersonalInfinitive); err != nil {
			return nil, errors.Wrapf(err, "conjugating auxiliary %s", inf)
		}
		log.Debug("all tenses ready", zap.String("verb", inf))
		return c.table, nil
	}

	estar, err := full("estar")
	if err != nil {
		return nil, err
	}
	ser, err := full("ser")
	if err != nil {
		return nil, err
	}
	log.Info("auxiliary tables built")
	return &Auxiliaries{ter: ter, haver: haver, estar: estar, ser: ser}, nil
}

var (
	defaultOnce sync.Once
	defaultAux  *Auxiliaries
	defaultErr  error
)

// DefaultAuxiliaries builds the auxiliaries on first use and returns the
// same value afterwards.
func DefaultAuxiliaries() (*Auxiliaries, error) {
	defaultOnce.Do(func() {
		defaultAux, defaultErr = BuildAuxiliaries()
	})
	return defaultAux, defaultErr
}

func (a *Auxiliaries) table(which Auxiliary) *Table {
	switch which {
	case Ter:
		return a.ter
	case Haver:
		return a.haver
	case Estar:
		return a.estar
	case Ser:
		return a.ser
	}
	return nil
}

// Cell returns a form of an auxiliary. ter and haver only hold their
// simple tenses.
func (a *Auxiliaries) Cell(which Auxiliary, t Tense, v Variant, p Person) Cell {
	tab := a.table(which)
	if tab == nil {
		return nil
	}
	return tab.Cell(t, v, p).clone()
}

// Table returns a copy of the table of an auxiliary.
func (a *Auxiliaries) Table(which Auxiliary) *Table {
	tab := a.table(which)
	if tab == nil {
		return nil
	}
	out := &Table{Verb: tab.Verb}
	for t := range tab.rows {
		for v := range tab.rows[t] {
			out.rows[t][v] = tab.rows[t][v].clone()
		}
	}
	return out
}
