package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	conjugador "github.com/cours-de-latin/conjugador"
)

var (
	testConjOnce sync.Once
	testConj     *conjugador.Conjugador
	testConjErr  error
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	testConjOnce.Do(func() {
		testConj, testConjErr = conjugador.New()
	})
	require.NoError(t, testConjErr)
	return newMux(testConj, defaults{variant: "bp", mood: "regular"})
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	var resp healthResponse
	assert.Equal(t, http.StatusOK, get(t, newTestMux(t), "/api/health", &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestVerb(t *testing.T) {
	mux := newTestMux(t)

	var resp verbResponse
	require.Equal(t, http.StatusOK, get(t, mux, "/api/verb?infinitive=Conter", &resp))
	assert.Equal(t, "conter", resp.Infinitive)
	assert.Equal(t, "er", resp.Ending)
	assert.Equal(t, "ter", resp.Flags.Root)
	assert.Equal(t, "conter", resp.Spellings["ep-pre"])
	assert.Equal(t, "-ter", resp.Patterns["present"])
}

func TestVerbErrors(t *testing.T) {
	mux := newTestMux(t)

	var resp errorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, mux, "/api/verb", &resp))
	assert.Contains(t, resp.Error, "infinitive")

	resp = errorResponse{}
	assert.Equal(t, http.StatusBadRequest, get(t, mux, "/api/verb?infinitive=casa", &resp))
	assert.Contains(t, resp.Error, "invalid infinitive")
	assert.NotEmpty(t, resp.Hint)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/verb?infinitive=falar", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// forms reads one tense of a conjugation response, with "" for null.
func forms(t *testing.T, resp conjugationResponse, tense conjugador.Tense) []string {
	t.Helper()
	cells, ok := resp.Tenses[tense.String()]
	require.True(t, ok, tense.String())
	out := make([]string, len(cells))
	for i, c := range cells {
		if c != nil {
			out[i] = *c
		}
	}
	return out
}

func TestConjugate(t *testing.T) {
	mux := newTestMux(t)

	var resp conjugationResponse
	require.Equal(t, http.StatusOK, get(t, mux, "/api/conjugate?infinitive=falar", &resp))
	assert.Equal(t, "falar", resp.Infinitive)
	assert.Equal(t, "bp", resp.Variant)
	assert.Equal(t, "regular", resp.Mood)
	require.Len(t, resp.Tenses, int(conjugador.TenseCount))

	assert.Equal(t, []string{"falo", "falas", "fala", "falamos", "falais", "falam"},
		forms(t, resp, conjugador.PresentIndicative))
	assert.Nil(t, resp.Tenses["imperative-affirmative"][0])
	assert.Equal(t, []string{"falando"}, forms(t, resp, conjugador.Gerund))
	assert.Equal(t, []string{"tenho falado/hei falado"},
		forms(t, resp, conjugador.CompoundPresentIndicative)[:1])
}

func TestConjugateRawShape(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conjugate?infinitive=trovejar", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Tenses map[string][]any `json:"tenses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, []any{nil, nil, "troveja", nil, nil, nil}, raw.Tenses["present-indicative"])
	assert.Equal(t, []any{"trovejando"}, raw.Tenses["gerund"])
}

func TestConjugateWithOptions(t *testing.T) {
	mux := newTestMux(t)

	var resp conjugationResponse
	target := "/api/conjugate?infinitive=dizer&variant=ep&pronoun=lhe&pronoun=o"
	require.Equal(t, http.StatusOK, get(t, mux, target, &resp))
	assert.Equal(t, "ep", resp.Variant)
	assert.Equal(t, []string{"lhe", "o"}, resp.Pronouns)
	assert.Equal(t, "digo-lho", forms(t, resp, conjugador.PresentIndicative)[0])

	resp = conjugationResponse{}
	require.Equal(t, http.StatusOK, get(t, mux, "/api/conjugate?infinitive=falar&mood=progressive&variant=ep", &resp))
	assert.Equal(t, "progressive", resp.Mood)
	assert.Equal(t, "estou a falar", forms(t, resp, conjugador.PresentIndicative)[0])
}

func TestConjugateErrors(t *testing.T) {
	mux := newTestMux(t)
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing infinitive", "/api/conjugate", http.StatusBadRequest},
		{"invalid infinitive", "/api/conjugate?infinitive=casa", http.StatusBadRequest},
		{"unknown variant", "/api/conjugate?infinitive=falar&variant=br", http.StatusBadRequest},
		{"unknown mood", "/api/conjugate?infinitive=falar&mood=active", http.StatusBadRequest},
		{"bad pronoun pair", "/api/conjugate?infinitive=falar&pronoun=o&pronoun=lhe", http.StatusBadRequest},
		{"passive direct object", "/api/conjugate?infinitive=falar&mood=passive&pronoun=o", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			assert.Equal(t, tt.status, get(t, mux, tt.target, &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestAnalyze(t *testing.T) {
	mux := newTestMux(t)

	var resp analyzeResponse
	require.Equal(t, http.StatusOK, get(t, mux, "/api/analyze?infinitive=ir&form=fomos", &resp))
	assert.Equal(t, "ir", resp.Infinitive)
	require.Len(t, resp.Analyses, 4)
	a := resp.Analyses[0]
	assert.Equal(t, "preterite-indicative", a.Tense)
	assert.Equal(t, "bp", a.Variant)
	require.NotNil(t, a.Person)
	assert.Equal(t, 3, *a.Person)

	resp = analyzeResponse{}
	require.Equal(t, http.StatusOK, get(t, mux, "/api/analyze?infinitive=comer&form=comido", &resp))
	require.NotEmpty(t, resp.Analyses)
	assert.Nil(t, resp.Analyses[0].Person)

	resp = analyzeResponse{}
	require.Equal(t, http.StatusOK, get(t, mux, "/api/analyze?infinitive=comer&form=falo", &resp))
	assert.Empty(t, resp.Analyses)

	var errResp errorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, mux, "/api/analyze?infinitive=comer", &errResp))
}

func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := logRequests(zap.New(core), newTestMux(t))

	get(t, h, "/api/health", nil)
	get(t, h, "/api/nowhere", nil)

	entries := logs.FilterMessage("request").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, "/api/nowhere", entries[1].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}
