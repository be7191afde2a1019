package system

import (
	"testing"

	"go-cannon-siege/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetSystem_ScoreAddedOnce(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	ts := NewTargetSystem(state, dispatcher)
	ss := NewScoreSystem(state, dispatcher)

	// Центр square5, ядро стоит на месте
	placeInFlight(state, 6, 0.25, 0, 0)
	for i := 0; i < 5; i++ {
		state.GameTime += 0.05
		ts.Update()
		ss.Update()
	}

	assert.Equal(t, 20, state.Score.Total)
	assert.Equal(t, 1, rec.count(event.TargetDestroyed))
	assert.Equal(t, 1, rec.count(event.ScoreUpdated))
	assert.Len(t, state.LiveTargets(), len(state.Targets)-1)
}

func TestTargetSystem_DeflectFromSide(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	ts := NewTargetSystem(state, dispatcher)

	// Левая грань square2
	placeInFlight(state, 6.95, -5, 4, 1)
	ts.Update()

	p := state.Projectile
	require.Equal(t, 1, rec.count(event.TargetDestroyed))
	assert.Equal(t, "square2", rec.events[0].Data.(event.TargetData).TargetID)
	assert.Equal(t, 10, state.Score.Total)
	assert.InDelta(t, -3.0, p.Launch.X, 1e-12)
	assert.InDelta(t, 1.0, p.Launch.Y, 1e-12)
	assert.InDelta(t, 6.65, p.X, 1e-12)
	assert.InDelta(t, -5.0, p.Y, 1e-12)
}

func TestTargetSystem_DeflectBothFromTop(t *testing.T) {
	state, dispatcher, _ := newTestState(t)
	ts := NewTargetSystem(state, dispatcher)

	// Верхняя грань square5: гасятся обе составляющие
	placeInFlight(state, 6, 0.55, 2, -3)
	ts.Update()

	p := state.Projectile
	assert.Equal(t, 20, state.Score.Total)
	assert.InDelta(t, 2.25, p.Launch.Y, 1e-12)
	assert.InDelta(t, -1.5, p.Launch.X, 1e-12)
	assert.InDelta(t, 0.85, p.Y, 1e-12)
	assert.InDelta(t, 6.0, p.X, 1e-12)
}

func TestTargetSystem_IgnoredWhileIdle(t *testing.T) {
	state, dispatcher, _ := newTestState(t)
	ts := NewTargetSystem(state, dispatcher)

	state.Projectile.X, state.Projectile.Y = 6, 0.25
	ts.Update()

	assert.Zero(t, state.Score.Total)
	assert.Len(t, state.LiveTargets(), len(state.Targets))
}

func TestTargetSystem_Spin(t *testing.T) {
	state, dispatcher, _ := newTestState(t)
	ts := NewTargetSystem(state, dispatcher)

	ts.Spin()
	ts.Spin()

	for _, target := range state.Targets {
		if target.ID == "square5" {
			assert.InDelta(t, 6.0, target.Rotation, 1e-12)
		} else {
			assert.Zero(t, target.Rotation, target.ID)
		}
	}
}

func TestScoreSystem_VictoryOnce(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	ss := NewScoreSystem(state, dispatcher)

	state.Score.Total = 85
	ss.Update()
	assert.False(t, state.Score.Won)

	state.Score.Total = 91
	ss.Update()
	state.Score.Total = 92
	for i := 0; i < 10; i++ {
		ss.Update()
	}

	assert.True(t, state.Score.Won)
	assert.Equal(t, 1, rec.count(event.Victory))
	assert.Equal(t, 3, rec.count(event.ScoreUpdated))
}

func TestScoreSystem_ThresholdIsStrict(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	ss := NewScoreSystem(state, dispatcher)

	state.Score.Total = 90
	ss.Update()

	assert.False(t, state.Score.Won)
	assert.Zero(t, rec.count(event.Victory))
}

func TestBarrierSystem_Reflect(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	bs := NewBarrierSystem(state, dispatcher)

	// Верхний барьер, ось (-1, 3); ядро на уровне оси справа от неё
	placeInFlight(state, -0.5, 3, 3, 0)
	bs.Update()

	p := state.Projectile
	require.Equal(t, 1, rec.count(event.BarrierHit))
	assert.Equal(t, 0, rec.events[0].Data.(event.ContactData).Barrier)
	assert.InDelta(t, -0.8, p.X, 1e-12)
	assert.InDelta(t, -3.0, p.Launch.X, 1e-12)
	assert.InDelta(t, 0.5, p.Launch.Y, 1e-12)
}

func TestBarrierSystem_LowerBandPushesDown(t *testing.T) {
	state, dispatcher, _ := newTestState(t)
	bs := NewBarrierSystem(state, dispatcher)

	// Вертикальный барьер: ядро под осью нижнего барьера
	state.Barriers[1].Angle = 88
	placeInFlight(state, -1, -3.5, 2, 1)
	bs.Update()

	p := state.Projectile
	assert.InDelta(t, -1.3, p.X, 1e-12)
	assert.InDelta(t, 0.5, p.Launch.Y, 1e-12)
	assert.InDelta(t, -2.0, p.Launch.X, 1e-12)
}

func TestBarrierSystem_MissOutsidePivotRadius(t *testing.T) {
	state, dispatcher, rec := newTestState(t)
	bs := NewBarrierSystem(state, dispatcher)

	// На прямой барьера, но дальше 1.5 от оси
	placeInFlight(state, 1.0, 3, 3, 0)
	bs.Update()

	assert.Zero(t, rec.count(event.BarrierHit))
	assert.InDelta(t, 1.0, state.Projectile.X, 1e-12)
}

func TestBarrierSystem_Spin(t *testing.T) {
	state, dispatcher, _ := newTestState(t)
	bs := NewBarrierSystem(state, dispatcher)

	bs.Update()

	assert.InDelta(t, 358.0, state.Barriers[0].Angle, 1e-12)
	assert.InDelta(t, 2.0, state.Barriers[1].Angle, 1e-12)
}
