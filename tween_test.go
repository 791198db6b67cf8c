package tween

import (
	"testing"

	"github.com/joeycumines/go-tween/accessor"
	"github.com/joeycumines/go-tween/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
}

type pointAccessor struct{}

const axisXY = 1

func (pointAccessor) GetValues(target any, _ int, out []float64) int {
	p := target.(*point)
	out[0], out[1] = p.X, p.Y
	return 2
}

func (pointAccessor) SetValues(target any, _ int, values []float64) {
	p := target.(*point)
	p.X, p.Y = values[0], values[1]
}

func newPointRegistry() *accessor.Registry {
	reg := accessor.NewRegistry()
	reg.Register(&point{}, pointAccessor{})
	return reg
}

func TestTween_ToWritesInterpolatedThenExactEndpoint(t *testing.T) {
	p := &point{X: 0, Y: 0}
	tw := To(p, axisXY, 1).Ease(ease.Linear).Target(10, 20).Registry(newPointRegistry())
	tw.Build()

	tw.Base().Advance(0.5)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)

	tw.Base().Advance(0.5)
	assert.True(t, tw.IsFinished())
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)
}

func TestTween_FromSwapsStartAndTarget(t *testing.T) {
	p := &point{X: 5, Y: 5}
	tw := From(p, axisXY, 1).Ease(ease.Linear).Target(0, 0).Registry(newPointRegistry())
	tw.Build()

	tw.Base().Advance(0) // enters step 0, samples start = (5,5), swaps with target (0,0)
	assert.InDelta(t, 0, p.X, 1e-9)

	tw.Base().Advance(1)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
}

func TestTween_TargetRelativeAddsToSampledStart(t *testing.T) {
	p := &point{X: 3, Y: 0}
	tw := To(p, axisXY, 0.5).Ease(ease.Linear).TargetRelative(10, 0).Registry(newPointRegistry())
	tw.Build()

	tw.Base().Advance(0.5)
	assert.True(t, tw.IsFinished())
	assert.InDelta(t, 13, p.X, 1e-9)
}

func TestTween_BuildFailsWithoutAccessor(t *testing.T) {
	tw := To(&point{}, axisXY, 1)
	err := tw.build()
	require.Error(t, err)
	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, ErrNoAccessor, typed.Kind)
}

func TestTween_AccessorNotReadBeforeStep0(t *testing.T) {
	reads := 0
	reg := accessor.NewRegistry()
	reg.Register(&point{}, accessor.Funcs{
		Get: func(target any, typeCode int, out []float64) int {
			reads++
			return pointAccessor{}.GetValues(target, typeCode, out)
		},
		Set: pointAccessor{}.SetValues,
	})

	p := &point{}
	tw := To(p, axisXY, 1).Delay(1).Target(1, 1).Registry(reg)
	tw.Build()

	tw.Base().Advance(0.5)
	assert.Zero(t, reads, "getValues must not be called before step 0 is entered")

	tw.Base().Advance(0.6)
	assert.Equal(t, 1, reads)
}

func TestTween_RepeatYoyoRestoresStartingValue(t *testing.T) {
	p := &point{X: 0, Y: 0}
	tw := To(p, axisXY, 1).Ease(ease.Linear).Target(10, 0).RepeatYoyo(1, 0).Registry(newPointRegistry())
	tw.Build()

	tw.Base().Advance(2) // full forward pass, then full reversed pass
	assert.True(t, tw.IsFinished())
	assert.InDelta(t, 0, p.X, 1e-9)
}

func TestTween_MissingEquationIsSilentNoOp(t *testing.T) {
	p := &point{X: 1, Y: 2}
	tw := To(p, axisXY, 1).Target(10, 10).Registry(newPointRegistry())
	tw.Ease(nil)
	tw.Build()

	tw.Base().Advance(0.5)
	assert.Equal(t, 1.0, p.X)
	assert.Equal(t, 2.0, p.Y)
	assert.False(t, tw.IsKilled())
}

func TestTween_CombinedAttrsOverflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*Error)
		require.True(t, ok)
		assert.Equal(t, ErrCombinedAttrsOverflow, err.Kind)
	}()
	To(&point{}, axisXY, 1).Target(1, 2, 3, 4) // limit defaults to 3
}

func TestTween_MutateAfterStartPanics(t *testing.T) {
	p := &point{}
	tw := To(p, axisXY, 1).Target(1, 1).Registry(newPointRegistry())
	tw.Build()
	tw.Base().Advance(0.1)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*Error)
		require.True(t, ok)
		assert.Equal(t, ErrMutateAfterStart, err.Kind)
	}()
	tw.Delay(1)
}
