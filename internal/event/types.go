// internal/event/types.go
package event

const (
	ShotFired       EventType = "ShotFired"       // Выстрел
	ShotReset       EventType = "ShotReset"       // Ядро возвращено в дуло
	GroundBounce    EventType = "GroundBounce"    // Отскок от земли
	BarrierHit      EventType = "BarrierHit"      // Отражение от барьера
	TargetDestroyed EventType = "TargetDestroyed" // Цель разрушена
	ScoreUpdated    EventType = "ScoreUpdated"    // Счёт вырос
	Victory         EventType = "Victory"         // Порог победы пройден
)

// ShotData сопровождает ShotFired
type ShotData struct {
	ShotID string
	Angle  float64
	Charge float64
	UX, UY float64
}

// ContactData сопровождает GroundBounce и BarrierHit
type ContactData struct {
	ShotID  string
	X, Y    float64
	Barrier int // индекс барьера, -1 для земли
}

// TargetData сопровождает TargetDestroyed
type TargetData struct {
	ShotID   string
	TargetID string
	Score    int
}

// ScoreData сопровождает ScoreUpdated и Victory
type ScoreData struct {
	Total int
}
