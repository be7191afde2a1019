// internal/app/listeners.go
package app

import (
	"fmt"
	"io"

	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/event"

	"go.uber.org/zap"
)

// ScoreFeed печатает обновления счёта и баннер победы
type ScoreFeed struct {
	out io.Writer
}

func NewScoreFeed(out io.Writer) *ScoreFeed {
	return &ScoreFeed{out: out}
}

// OnEvent реализует интерфейс event.Listener.
func (f *ScoreFeed) OnEvent(e event.Event) {
	data, ok := e.Data.(event.ScoreData)
	if !ok {
		return
	}
	switch e.Type {
	case event.ScoreUpdated:
		fmt.Fprintf(f.out, "Score-update:%d\n", data.Total)
	case event.Victory:
		fmt.Fprintf(f.out, "\n%s\n", config.WinBanner)
	}
}

// EventLogger пишет игровые события в zap
type EventLogger struct {
	logger *zap.Logger
}

func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ShotData:
		l.logger.Info(string(e.Type),
			zap.String("shot", data.ShotID),
			zap.Float64("angle", data.Angle),
			zap.Float64("charge", data.Charge),
			zap.Float64("ux", data.UX),
			zap.Float64("uy", data.UY),
		)
	case event.ContactData:
		l.logger.Debug(string(e.Type),
			zap.String("shot", data.ShotID),
			zap.Int("barrier", data.Barrier),
			zap.Float64("x", data.X),
			zap.Float64("y", data.Y),
		)
	case event.TargetData:
		l.logger.Info(string(e.Type),
			zap.String("shot", data.ShotID),
			zap.String("target", data.TargetID),
			zap.Int("score", data.Score),
		)
	case event.ScoreData:
		l.logger.Info(string(e.Type), zap.Int("total", data.Total))
	default:
		l.logger.Debug(string(e.Type))
	}
}

// AllEvents — все типы событий игры
var AllEvents = []event.EventType{
	event.ShotFired,
	event.ShotReset,
	event.GroundBounce,
	event.BarrierHit,
	event.TargetDestroyed,
	event.ScoreUpdated,
	event.Victory,
}

// AttachListeners подписывает ленту счёта и логгер на события игры
func (g *Game) AttachListeners(out io.Writer, logger *zap.Logger) {
	g.EventDispatcher.SubscribeAll(NewScoreFeed(out), event.ScoreUpdated, event.Victory)
	if logger != nil {
		g.EventDispatcher.SubscribeAll(NewEventLogger(logger), AllEvents...)
	}
}
