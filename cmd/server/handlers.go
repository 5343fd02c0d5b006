package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	conjugador "github.com/cours-de-latin/conjugador"
)

// ---- JSON response types ------------------------------------------------

type flagsJSON struct {
	Root              string `json:"root,omitempty"`
	ThirdSingularOnly bool   `json:"third_singular_only"`
	ThirdPersonOnly   bool   `json:"third_person_only"`
	ArrhizotonicOnly  bool   `json:"arrhizotonic_only"`
	NoFirstSingular   bool   `json:"no_first_singular"`
}

type verbResponse struct {
	Infinitive string            `json:"infinitive"`
	Ending     string            `json:"ending"`
	Flags      flagsJSON         `json:"flags"`
	Spellings  map[string]string `json:"spellings"`
	Patterns   map[string]string `json:"patterns"`
}

type conjugationResponse struct {
	Infinitive string   `json:"infinitive"`
	Variant    string   `json:"variant"`
	Mood       string   `json:"mood"`
	Pronouns   []string `json:"pronouns,omitempty"`

	// Tenses maps each tense name to one form per person, or a single form
	// for invariant tenses. Absent forms are null.
	Tenses map[string][]*string `json:"tenses"`
}

type analysisJSON struct {
	Tense       string `json:"tense"`
	Variant     string `json:"variant"`
	Person      *int   `json:"person,omitempty"`
	Form        string `json:"form"`
	Description string `json:"description"`
}

type analyzeResponse struct {
	Infinitive string         `json:"infinitive"`
	Form       string         `json:"form"`
	Analyses   []analysisJSON `json:"analyses"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func toVerbResponse(in conjugador.Inspection) verbResponse {
	out := verbResponse{
		Infinitive: in.Infinitive,
		Ending:     in.Ending,
		Flags: flagsJSON{
			Root:              in.Flags.Root,
			ThirdSingularOnly: in.Flags.ThirdSingularOnly,
			ThirdPersonOnly:   in.Flags.ThirdPersonOnly,
			ArrhizotonicOnly:  in.Flags.ArrhizotonicOnly,
			NoFirstSingular:   in.Flags.NoFirstSingular,
		},
		Spellings: make(map[string]string, len(in.Spellings)),
		Patterns:  make(map[string]string, len(in.Patterns)),
	}
	for _, v := range conjugador.Variants {
		out.Spellings[v.String()] = in.Spellings[v]
	}
	for f, p := range in.Patterns {
		out.Patterns[conjugador.Family(f).String()] = string(p)
	}
	return out
}

func toConjugationResponse(o *conjugador.Options, vt conjugador.VariantTable) conjugationResponse {
	out := conjugationResponse{
		Infinitive: o.Verb.Infinitive(),
		Variant:    o.Variant.String(),
		Mood:       o.Mood.String(),
		Pronouns:   o.Pronouns,
		Tenses:     make(map[string][]*string, len(vt.Rows)),
	}
	for t, row := range vt.Rows {
		out.Tenses[conjugador.Tense(t).String()] = row.Forms()
	}
	return out
}

func toAnalyzeResponse(verb *conjugador.Verb, form string, as []conjugador.Analysis) analyzeResponse {
	out := analyzeResponse{
		Infinitive: verb.Infinitive(),
		Form:       form,
		Analyses:   make([]analysisJSON, 0, len(as)),
	}
	for _, a := range as {
		j := analysisJSON{
			Tense:       a.Tense.String(),
			Variant:     a.Variant.String(),
			Form:        a.Form,
			Description: a.Description(),
		}
		if !a.Tense.SingleForm() {
			p := int(a.Person)
			j.Person = &p
		}
		out.Analyses = append(out.Analyses, j)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode error", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps a library error to a status code.
func writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, conjugador.ErrInvalidInfinitive),
		errors.Is(err, conjugador.ErrInvalidRequest),
		errors.Is(err, conjugador.ErrUnsupportedPronoun):
		status = http.StatusBadRequest
	case errors.Is(err, conjugador.ErrAuxiliariesNotBuilt):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Hint:  errors.FlattenHints(err),
	})
}

// ---- handlers -----------------------------------------------------------

// defaults are the request values used when a query leaves them out.
type defaults struct {
	variant string
	mood    string
}

func handleVerb(conj *conjugador.Conjugador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		raw := strings.ToLower(r.URL.Query().Get("infinitive"))
		if raw == "" {
			writeError(w, http.StatusBadRequest, "missing 'infinitive' query parameter")
			return
		}
		verb, err := conj.Verb(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		in, err := conjugador.Inspect(verb)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVerbResponse(in))
	}
}

func handleConjugate(conj *conjugador.Conjugador, def defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		raw := strings.ToLower(q.Get("infinitive"))
		if raw == "" {
			writeError(w, http.StatusBadRequest, "missing 'infinitive' query parameter")
			return
		}
		variant := q.Get("variant")
		if variant == "" {
			variant = def.variant
		}
		mood := q.Get("mood")
		if mood == "" {
			mood = def.mood
		}

		opts, err := conjugador.ParseOptions(raw, variant, mood, q["pronoun"]...)
		if err != nil {
			writeFailure(w, err)
			return
		}
		vt, err := conj.ConjugateOptions(opts)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toConjugationResponse(opts, vt))
	}
}

func handleAnalyze(conj *conjugador.Conjugador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		raw := strings.ToLower(q.Get("infinitive"))
		form := q.Get("form")
		if raw == "" || form == "" {
			writeError(w, http.StatusBadRequest, "'infinitive' and 'form' query parameters are required")
			return
		}
		verb, err := conj.Verb(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		as, err := conj.Analyze(verb, form)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnalyzeResponse(verb, form, as))
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request.
func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// newMux wires the API routes.
func newMux(conj *conjugador.Conjugador, def defaults) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/verb", handleVerb(conj))
	mux.HandleFunc("/api/conjugate", handleConjugate(conj, def))
	mux.HandleFunc("/api/analyze", handleAnalyze(conj))
	mux.HandleFunc("/api/health", handleHealth())
	return mux
}
