// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-cannon-siege/internal/app"
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/logging"
	"go-cannon-siege/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger, err := logging.New(config.GetEnv(config.EnvLogLevel, ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if addr := config.GetEnv(config.EnvPprof, ""); addr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	opts, err := app.LoadOptions(os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}

	game := app.NewGame(opts.Tuning, opts.Difficulty, opts.Targets)
	game.AttachListeners(os.Stdout, logger)

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, game))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cannon Siege")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Error("game stopped", zap.Error(fmt.Errorf("%w: %v", app.ErrPlatformInit, err)))
		logger.Sync()
		os.Exit(1)
	}
}
