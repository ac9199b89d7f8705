package domain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mover - внешний провайдер передвижения (навигация/патфайндинг вне ядра).
// Ядру от него нужны только назначение цели и опрос прибытия; "arrived"
// именно ОПРАШИВАЕТСЯ раз в тик, а не приходит колбэком.
type Mover interface {
	SetDestination(dest mgl64.Vec3, stoppingDistance float64)
	HasArrived(pos mgl64.Vec3) bool
	NearestReachable(pos mgl64.Vec3) mgl64.Vec3
	ResetPath()

	// Advance продвигает позицию к цели на speed*dt. Вызывается движком
	// один раз за тик.
	Advance(pos mgl64.Vec3, speed, dt float64) mgl64.Vec3
}

// LinearMover - провайдер по умолчанию: прямая без препятствий.
type LinearMover struct {
	dest     mgl64.Vec3
	stopping float64
	active   bool
}

func NewLinearMover() *LinearMover {
	return &LinearMover{}
}

func (m *LinearMover) SetDestination(dest mgl64.Vec3, stoppingDistance float64) {
	m.dest = dest
	m.stopping = stoppingDistance
	m.active = true
}

func (m *LinearMover) HasArrived(pos mgl64.Vec3) bool {
	if !m.active {
		return true
	}
	return pos.Sub(m.dest).Len() <= m.stopping+arriveEpsilon
}

func (m *LinearMover) NearestReachable(pos mgl64.Vec3) mgl64.Vec3 {
	// Прямолинейный мир: достижимо всё.
	return pos
}

func (m *LinearMover) ResetPath() {
	m.active = false
}

func (m *LinearMover) Advance(pos mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	if !m.active {
		return pos
	}

	to := m.dest.Sub(pos)
	dist := to.Len()
	want := dist - m.stopping
	if want <= 0 {
		m.active = false
		return pos
	}

	step := speed * dt
	if step >= want {
		m.active = false
		step = want
	}
	return pos.Add(to.Normalize().Mul(step))
}

const arriveEpsilon = 0.01
