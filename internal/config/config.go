package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Видимая область мира при zoom = 1 (ortho-проекция)
	WorldLeft   = -12.0
	WorldRight  = 12.0
	WorldBottom = -8.0
	WorldTop    = 8.0

	// Масштабирование
	ZoomMax        = 1.0
	ZoomMin        = 0.005
	ZoomWheelStep  = 0.01
	ZoomKeyStep    = 0.005
	ZoomWheelLimit = 0.990 // колесо вверх работает только пока zoom <= этого значения
	ZoomKeyLimit   = 0.995

	// Декоративное вращение (градусы за кадр)
	Square5Spin    = 3.0
	ProjectileSpin = 100.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	HUDLineHeight    = 16

	WinBanner = "YOU WON!!"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{40, 40, 40, 255}
	ChargeIdleColor = color.RGBA{70, 130, 180, 220}
	ChargeHotColor  = color.RGBA{220, 60, 60, 220}
	FlightColor     = color.RGBA{194, 178, 128, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	StrokeWidth     = 1.0
)
