package conjugador

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Analysis locates one occurrence of a form in a conjugation table.
type Analysis struct {
	Tense   Tense
	Variant Variant
	// Person is meaningful for personal tenses only.
	Person Person
	// Form is the alternative that matched, as spelled in the table.
	Form string
}

// Description renders the analysis as "tense, person (variant)", or
// "tense (variant)" for invariant tenses.
func (a Analysis) Description() string {
	if a.Tense.SingleForm() {
		return fmt.Sprintf("%s (%s)", a.Tense, a.Variant)
	}
	return fmt.Sprintf("%s, %s (%s)", a.Tense, a.Person, a.Variant)
}

var personNames = [PersonCount]string{
	"first singular", "second singular", "third singular",
	"first plural", "second plural", "third plural",
}

func (p Person) String() string {
	if p < 0 || p >= PersonCount {
		return "unknown"
	}
	return personNames[p]
}

// Analyze returns every cell of t holding form, in tense, variant and
// person order. form is compared after NFC composition and lowercasing.
func (t *Table) Analyze(form string) []Analysis {
	want := strings.ToLower(norm.NFC.String(strings.TrimSpace(form)))
	if want == "" {
		return nil
	}
	var out []Analysis
	for tense := range t.rows {
		for v := range t.rows[tense] {
			for p, cell := range t.rows[tense][v] {
				for _, alt := range cell {
					if alt == want {
						out = append(out, Analysis{
							Tense:   Tense(tense),
							Variant: Variant(v),
							Person:  Person(p),
							Form:    alt,
						})
					}
				}
			}
		}
	}
	return out
}
