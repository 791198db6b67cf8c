package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
}

type pointAccessor struct{}

func (pointAccessor) GetValues(target any, typeCode int, out []float64) int {
	p := target.(*point)
	out[0], out[1] = p.X, p.Y
	return 2
}

func (pointAccessor) SetValues(target any, typeCode int, values []float64) {
	p := target.(*point)
	p.X, p.Y = values[0], values[1]
}

type selfAccessingGauge struct {
	value float64
}

func (g *selfAccessingGauge) GetValues(target any, typeCode int, out []float64) int {
	out[0] = g.value
	return 1
}

func (g *selfAccessingGauge) SetValues(target any, typeCode int, values []float64) {
	g.value = values[0]
}

func TestRegistry_ExactTypeMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(&point{}, pointAccessor{})

	p := &point{}
	acc, ok := r.Lookup(p)
	require.True(t, ok)

	buf := make([]float64, 2)
	p.X, p.Y = 1, 2
	n := acc.GetValues(p, 0, buf)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2}, buf)

	acc.SetValues(p, 0, []float64{5, 6})
	assert.Equal(t, 5.0, p.X)
	assert.Equal(t, 6.0, p.Y)
}

func TestRegistry_LookupMissUnregisteredType(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup(&point{})
	assert.False(t, ok)
}

func TestRegistry_RegistrationIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register(&point{}, pointAccessor{})
	r.Register(&point{}, pointAccessor{})
	acc, ok := r.Lookup(&point{})
	require.True(t, ok)
	assert.Equal(t, pointAccessor{}, acc)
}

func TestRegistry_SelfAccessorFallback(t *testing.T) {
	r := NewRegistry()
	g := &selfAccessingGauge{value: 3}
	acc, ok := r.Lookup(g)
	require.True(t, ok)

	buf := make([]float64, 1)
	n := acc.GetValues(g, 0, buf)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3.0, buf[0])
}

func TestRegistry_UnregisterRemovesMapping(t *testing.T) {
	r := NewRegistry()
	r.Register(&point{}, pointAccessor{})
	r.Unregister(&point{})
	_, ok := r.Lookup(&point{})
	assert.False(t, ok)
}
