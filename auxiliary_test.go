package conjugador

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildAuxiliaries(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	aux, err := BuildAuxiliaries(WithLogger(zap.New(core)))
	require.NoError(t, err)

	bp := BrazilianPostReform
	assert.Equal(t, Cell{"tenho"}, aux.Cell(Ter, PresentIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"hei"}, aux.Cell(Haver, PresentIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"estou"}, aux.Cell(Estar, PresentIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"sou"}, aux.Cell(Ser, PresentIndicative, bp, FirstSingular))

	// ter and haver stop at the participle; estar and ser are complete.
	assert.False(t, aux.Table(Ter).Has(CompoundPresentIndicative))
	assert.False(t, aux.Table(Haver).Has(CompoundPresentIndicative))
	assert.Equal(t, Cell{"tenho estado", "hei estado"},
		aux.Cell(Estar, CompoundPresentIndicative, bp, FirstSingular))
	assert.Equal(t, Cell{"tenho sido", "hei sido"},
		aux.Cell(Ser, CompoundPresentIndicative, bp, FirstSingular))

	assert.Equal(t, 4, logs.FilterMessage("simple tenses ready").Len()+logs.FilterMessage("all tenses ready").Len())
	assert.Equal(t, 1, logs.FilterMessage("auxiliary tables built").Len())
}

func TestAuxiliariesReturnCopies(t *testing.T) {
	aux := testAux(t)
	c := aux.Cell(Ser, PresentIndicative, BrazilianPostReform, ThirdSingular)
	require.Equal(t, Cell{"é"}, c)
	c[0] = "x"
	tab := aux.Table(Ser)
	tab.rows[PresentIndicative][BrazilianPostReform][ThirdSingular][0] = "y"

	assert.Equal(t, Cell{"é"}, aux.Cell(Ser, PresentIndicative, BrazilianPostReform, ThirdSingular))
	assert.Nil(t, aux.Table(Auxiliary(7)))
	assert.Nil(t, aux.Cell(Auxiliary(7), PresentIndicative, BrazilianPostReform, FirstSingular))
}

func TestDefaultAuxiliariesIsShared(t *testing.T) {
	a, err := DefaultAuxiliaries()
	require.NoError(t, err)
	b, err := DefaultAuxiliaries()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestAuxiliaryString(t *testing.T) {
	assert.Equal(t, "haver", Haver.String())
	assert.Equal(t, "unknown", Auxiliary(-1).String())
}
