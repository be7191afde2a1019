package app

import (
	"bytes"
	"strings"
	"testing"

	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

const frame = 1.0 / 60

type drawCall struct {
	name     string
	x, y     float64
	rotation float64
}

// fakeCanvas запоминает всё, что игра попросила нарисовать
type fakeCanvas struct {
	zoom  float64
	calls []drawCall
}

func (c *fakeCanvas) BeginFrame(zoom float64) {
	c.zoom = zoom
	c.calls = c.calls[:0]
}

func (c *fakeCanvas) DrawShape(name string, x, y, rotation float64) {
	c.calls = append(c.calls, drawCall{name, x, y, rotation})
}

func (c *fakeCanvas) names() []string {
	out := make([]string, len(c.calls))
	for i, call := range c.calls {
		out[i] = call.name
	}
	return out
}

func newTestGame() *Game {
	return NewGame(config.DefaultTuning(), config.NewDifficulty(1, 1), defs.DefaultTargets())
}

func TestNewGame_PanicsWithoutTargets(t *testing.T) {
	assert.Panics(t, func() {
		NewGame(config.DefaultTuning(), config.NewDifficulty(1, 1), nil)
	})
}

func TestGame_DrawOrder(t *testing.T) {
	g := newTestGame()
	c := &fakeCanvas{}

	g.Draw(c)

	assert.Equal(t, 1.0, c.zoom)
	assert.Equal(t, []string{
		defs.ShapeGround, defs.ShapeCeiling, defs.ShapeWallLeft, defs.ShapeWallRight,
		"triangle", "square1", "square2", "square3", "square4", "square5",
		"rectangle1", "rectangle2", "rectangle3",
		defs.ShapeBarrier, defs.ShapeBarrier,
		defs.ShapeCannon, defs.ShapeProjectile,
	}, c.names())

	g.State.Targets[5].Destroyed = true
	g.Draw(c)
	assert.NotContains(t, c.names(), "square5")
	assert.Len(t, c.calls, 16)
}

func TestGame_AimAndFire(t *testing.T) {
	g := newTestGame()

	g.StartAim(1)
	for i := 0; i < 10; i++ {
		g.Update(frame)
	}
	g.StopAim()
	g.Update(frame)
	assert.Equal(t, 10.0, g.State.Cannon.Angle)

	g.PressFire()
	for i := 0; i < 30; i++ {
		g.Update(frame)
	}
	assert.InDelta(t, 0.5, g.Status().Charge, 1e-9)

	g.ReleaseFire()
	st := g.Status()
	assert.True(t, st.InFlight)
	assert.Zero(t, st.Charge)

	// Во время полёта прицел не двигается
	g.StartAim(-1)
	g.Update(frame)
	assert.Equal(t, 10.0, g.State.Cannon.Angle)

	g.ResetShot()
	assert.False(t, g.Status().InFlight)
}

func TestGame_Zoom(t *testing.T) {
	g := newTestGame()
	cam := g.State.Camera

	g.ZoomWheel(1)
	assert.Equal(t, 1.0, cam.Zoom, "already at the widest view")
	g.ZoomKey(1)
	assert.Equal(t, 1.0, cam.Zoom)

	g.ZoomWheel(-1)
	assert.InDelta(t, 0.99, cam.Zoom, 1e-9)
	g.ZoomWheel(1)
	assert.InDelta(t, 1.0, cam.Zoom, 1e-9)
	assert.LessOrEqual(t, cam.Zoom, config.ZoomMax)

	for i := 0; i < 500; i++ {
		g.ZoomKey(-1)
		g.ZoomWheel(-1)
	}
	assert.Equal(t, config.ZoomMin, cam.Zoom)

	g.ZoomKey(1)
	assert.InDelta(t, config.ZoomMin+config.ZoomKeyStep, cam.Zoom, 1e-12)
}

func TestGame_WinMessageOnce(t *testing.T) {
	g := newTestGame()
	var out bytes.Buffer
	g.AttachListeners(&out, zap.NewNop())

	g.State.Score.Total = 88
	g.Update(frame)
	g.State.Score.Total = 91
	for i := 0; i < 20; i++ {
		g.Update(frame)
	}

	assert.Equal(t, "Score-update:88\nScore-update:91\n\n"+config.WinBanner+"\n", out.String())
	assert.Equal(t, 1, strings.Count(out.String(), config.WinBanner))
	assert.True(t, g.Status().Won)
}

func TestGame_EventLogger(t *testing.T) {
	g := newTestGame()
	core, logs := observer.New(zap.DebugLevel)
	g.AttachListeners(&bytes.Buffer{}, zap.New(core))

	g.PressFire()
	g.Update(1)
	g.ReleaseFire()

	entries := logs.FilterMessage("ShotFired").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["shot"])
	assert.InDelta(t, 2.0, fields["ux"], 1e-9)
}

func TestGame_FlightStaysAboveFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		air := rapid.IntRange(1, 3).Draw(rt, "air")
		gravity := rapid.IntRange(1, 2).Draw(rt, "gravity")
		g := NewGame(config.DefaultTuning(), config.NewDifficulty(float64(gravity), float64(air)), defs.DefaultTargets())

		angle := rapid.IntRange(-45, 75).Draw(rt, "angle")
		g.State.Cannon.Angle = float64(angle)
		g.PressFire()
		g.Update(rapid.Float64Range(0.1, 4).Draw(rt, "charge"))
		g.ReleaseFire()
		startX := g.State.Projectile.X

		lastScore := 0
		frames := rapid.IntRange(1, 600).Draw(rt, "frames")
		for i := 0; i < frames; i++ {
			g.Update(frame)
			st := g.Status()
			if y := g.State.Projectile.Y; y <= g.State.Tuning.FloorY {
				rt.Fatalf("frame %d: projectile at y=%v is below the floor", i, y)
			}
			if st.Score < lastScore || st.Score > defs.TotalScore(defs.DefaultTargets()) {
				rt.Fatalf("frame %d: score went from %d to %d", i, lastScore, st.Score)
			}
			lastScore = st.Score
			if i == 0 && g.State.Projectile.X <= startX {
				rt.Fatalf("shot did not move: x=%v, muzzle x=%v", g.State.Projectile.X, startX)
			}
		}
	})
}

func TestGame_ShotReachesBuilding(t *testing.T) {
	g := newTestGame()
	var out bytes.Buffer
	g.AttachListeners(&out, zap.NewNop())

	g.State.Cannon.Angle = -10
	g.PressFire()
	g.Update(2.5)
	g.ReleaseFire()
	require.True(t, g.Status().InFlight)
	startX := g.State.Projectile.X

	for i := 0; i < 1200 && g.Status().Score == 0; i++ {
		g.Update(frame)
	}

	assert.Greater(t, g.State.Projectile.X, startX)
	assert.Greater(t, g.Status().Score, 0)
	assert.Less(t, g.Status().Live, len(g.State.Targets))
	assert.Contains(t, out.String(), "Score-update:")
}
