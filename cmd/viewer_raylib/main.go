package main

import (
	"fmt"
	"os"

	"go-cannon-siege/internal/app"
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/logging"
	"go-cannon-siege/internal/utils"
	"go-cannon-siege/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

func main() {
	logger, err := logging.New(config.GetEnv(config.EnvLogLevel, ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts, err := app.LoadOptions(os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	game := app.NewGame(opts.Tuning, opts.Difficulty, opts.Targets)
	game.AttachListeners(os.Stdout, logger)

	// --- Инициализация ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Raylib Cannon Siege | Up/Down - Aim, Space - Fire, R - Reset")
	if !rl.IsWindowReady() {
		logger.Error("window", zap.Error(app.ErrPlatformInit))
		os.Exit(1)
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)

	canvas := newRaylibCanvas(render.DefaultShapes(), render.View{
		Left:   config.WorldLeft,
		Right:  config.WorldRight,
		Bottom: config.WorldBottom,
		Top:    config.WorldTop,
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		Zoom:   game.State.Camera.Zoom,
	})
	background := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255)
	textColor := rl.NewColor(config.TextDarkColor.R, config.TextDarkColor.G, config.TextDarkColor.B, 255)
	paused := false
	var zoomOut utils.HoldLatch

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		toggled := rl.IsKeyPressed(rl.KeyF9) || rl.IsKeyPressed(rl.KeyEscape) || (paused && rl.IsKeyPressed(rl.KeyP))
		if toggled {
			paused = !paused
			game.StopAim()
			zoomOut.Arm(rl.IsKeyDown(rl.KeyP))
		}

		if !paused && !toggled {
			handleInput(game, &zoomOut)
			deltaTime := float64(rl.GetFrameTime())
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			game.Update(deltaTime)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(background)
		canvas.dimmed = paused
		game.Draw(canvas)

		st := game.Status()
		rl.DrawText(fmt.Sprintf("Score: %d", st.Score), 10, 10, 20, textColor)
		rl.DrawText(fmt.Sprintf("Angle: %.0f  Zoom: %.3f", st.Angle, st.Zoom), 10, 34, 16, textColor)
		if st.Charge > 0 {
			rl.DrawText(fmt.Sprintf("Charge: %.2fs", st.Charge), 10, 54, 16, textColor)
		}
		if st.Won {
			rl.DrawText(config.WinBanner, config.ScreenWidth/2-60, 40, 30, rl.DarkGreen)
		}
		if paused {
			rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 128))
			textWidth := rl.MeasureText("PAUSED", 40)
			rl.DrawText("PAUSED", (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2-20, 40, rl.White)
		}
		rl.EndDrawing()
	}
}

// handleInput — та же раскладка, что и у ebiten-фронтенда
func handleInput(game *app.Game, zoomOut *utils.HoldLatch) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		game.StartAim(1)
	case rl.IsKeyPressed(rl.KeyDown):
		game.StartAim(-1)
	}
	if rl.IsKeyReleased(rl.KeyUp) || rl.IsKeyReleased(rl.KeyDown) {
		game.StopAim()
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		game.PressFire()
	}
	if rl.IsKeyReleased(rl.KeySpace) || rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		game.ReleaseFire()
	}
	if rl.IsKeyPressed(rl.KeyR) || rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		game.ResetShot()
	}

	if rl.IsKeyDown(rl.KeyO) {
		game.ZoomKey(1)
	}
	if zoomOut.Pass(rl.IsKeyDown(rl.KeyP)) {
		game.ZoomKey(-1)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		game.ZoomWheel(float64(wheel))
	}
}
