package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_UpdateAdvancesAndReapsFinished(t *testing.T) {
	reg := newPointRegistry()
	p := &point{}
	m := NewManager()
	tw := To(p, axisXY, 0.1).Target(5, 5).Registry(reg)
	tw.Start(m)

	assert.Equal(t, 1, m.Size())
	m.Update(0.05)
	assert.Equal(t, 1, m.Size())

	m.Update(0.05)
	assert.Equal(t, 0, m.Size(), "finished root must be reaped after the pass")
	assert.InDelta(t, 5, p.X, 1e-9)
}

func TestManager_PauseStopsAllUpdates(t *testing.T) {
	reg := newPointRegistry()
	p := &point{}
	m := NewManager()
	To(p, axisXY, 1).Target(10, 0).Registry(reg).Start(m)

	m.Pause()
	m.Update(0.5)
	assert.InDelta(t, 0, p.X, 1e-9)

	m.Resume()
	m.Update(0.5)
	assert.InDelta(t, 5, p.X, 1e-9)
}

func TestManager_KillTargetMatchesAnyTypeCodeWhenNoneSupplied(t *testing.T) {
	reg := newPointRegistry()
	p := &point{}
	m := NewManager()
	tw := To(p, axisXY, 1).Target(1, 1).Registry(reg)
	tw.Start(m)

	found := m.KillTarget(p)
	assert.True(t, found)
	assert.True(t, tw.IsKilled())
}

func TestManager_KillTargetRespectsExplicitTypeCodes(t *testing.T) {
	reg := newPointRegistry()
	p := &point{}
	m := NewManager()
	tw := To(p, axisXY, 1).Target(1, 1).Registry(reg)
	tw.Start(m)

	found := m.KillTarget(p, axisXY+1)
	assert.False(t, found)
	assert.False(t, tw.IsKilled())
}

func TestManager_ContainsTargetSearchesNestedTimelines(t *testing.T) {
	reg := newPointRegistry()
	p := &point{}
	m := NewManager()
	tl := Sequence().BeginSequence().
		Push(To(p, axisXY, 0.1).Target(1, 1).Registry(reg)).
		End()
	tl.Start(m)

	assert.True(t, m.ContainsTarget(p))
	assert.False(t, m.ContainsTarget(&point{}))
}

func TestManager_RunningCountsReflectLiveNodes(t *testing.T) {
	reg := newPointRegistry()
	m := NewManager()
	To(&point{}, axisXY, 0.1).Target(1, 1).Registry(reg).Start(m)
	Sequence().Push(To(&point{}, axisXY, 0.1).Target(1, 1).Registry(reg)).Start(m)

	assert.Equal(t, 2, m.RunningTweensCount())
	assert.Equal(t, 1, m.RunningTimelinesCount())

	m.KillAll()
	m.Update(0)
	assert.Equal(t, 0, m.Size())
}
