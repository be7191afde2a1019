// internal/component/projectile.go
package component

// Projectile — ядро пушки. Launch хранит скорость в момент выстрела (или
// последнего пересчёта), Velocity хранит скорость на текущий момент.
type Projectile struct {
	Position
	Velocity Velocity
	Launch   Velocity
	Drag     float64 // ax
	Gravity  float64 // ay

	InFlight   bool
	Elapsed    float64 // масштабированное время от LaunchTime
	LaunchTime float64 // игровое время начала отсчёта
	ShotID     string

	Rotation float64 // только для отрисовки
}

// DeriveVelocity пересчитывает Velocity из Launch и ускорения за Elapsed.
func (p *Projectile) DeriveVelocity() {
	p.Velocity.X = p.Launch.X + p.Drag*p.Elapsed
	p.Velocity.Y = p.Launch.Y + p.Gravity*p.Elapsed
}

// Rebaseline фиксирует текущую скорость и переносит начало отсчёта на now.
// Elapsed не обнуляется: следующий шаг пересчитает его от нового начала.
func (p *Projectile) Rebaseline(now float64) {
	p.DeriveVelocity()
	p.LaunchTime = now
}
