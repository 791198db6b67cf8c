package ease

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allEquations() map[string]Equation {
	return map[string]Equation{
		"Linear":        Linear,
		"QuadIn":        QuadIn,
		"QuadOut":       QuadOut,
		"QuadInOut":     QuadInOut,
		"CubicIn":       CubicIn,
		"CubicOut":      CubicOut,
		"CubicInOut":    CubicInOut,
		"QuartIn":       QuartIn,
		"QuartOut":      QuartOut,
		"QuartInOut":    QuartInOut,
		"QuintIn":       QuintIn,
		"QuintOut":      QuintOut,
		"QuintInOut":    QuintInOut,
		"SineIn":        SineIn,
		"SineOut":       SineOut,
		"SineInOut":     SineInOut,
		"ExpoIn":        ExpoIn,
		"ExpoOut":       ExpoOut,
		"ExpoInOut":     ExpoInOut,
		"CircIn":        CircIn,
		"CircOut":       CircOut,
		"CircInOut":     CircInOut,
		"BackIn":        BackIn,
		"BackOut":       BackOut,
		"BackInOut":     BackInOut,
		"BounceIn":      BounceIn,
		"BounceOut":     BounceOut,
		"BounceInOut":   BounceInOut,
		"ElasticIn":     ElasticIn,
		"ElasticOut":    ElasticOut,
		"ElasticInOut":  ElasticInOut,
	}
}

func TestEquations_BoundaryConditions(t *testing.T) {
	for name, eq := range allEquations() {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, eq(0), 1e-9, "f(0) must be 0")
			assert.InDelta(t, 1, eq(1), 1e-9, "f(1) must be 1")
		})
	}
}

func TestEquations_MonotoneFamiliesStayBounded(t *testing.T) {
	// the non-overshoot families never leave [0,1] for t in [0,1]
	bounded := map[string]Equation{
		"Linear":     Linear,
		"QuadIn":     QuadIn,
		"QuadOut":    QuadOut,
		"QuadInOut":  QuadInOut,
		"CubicIn":    CubicIn,
		"CubicOut":   CubicOut,
		"CubicInOut": CubicInOut,
		"SineIn":     SineIn,
		"SineOut":    SineOut,
		"SineInOut":  SineInOut,
	}
	for name, eq := range bounded {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				tt := float64(i) / 20
				v := eq(tt)
				assert.GreaterOrEqual(t, v, -1e-9, "%s(%v)=%v below 0", name, tt, v)
				assert.LessOrEqual(t, v, 1+1e-9, "%s(%v)=%v above 1", name, tt, v)
			}
		})
	}
}
