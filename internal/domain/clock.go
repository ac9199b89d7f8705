package domain

import "time"

// Clock - источник серверного времени в секундах. Абсолютные значения
// стабильны только в пределах процесса: при рестарте отсчет начинается заново,
// поэтому в сохранения таймеры уходят как ОСТАВШИЕСЯ длительности.
type Clock interface {
	Now() float64
}

// GameClock - монотонные часы процесса.
type GameClock struct {
	start time.Time
}

func NewGameClock() *GameClock {
	return &GameClock{start: time.Now()}
}

func (c *GameClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock - управляемые часы для тестов.
type ManualClock struct {
	T float64
}

func (c *ManualClock) Now() float64 { return c.T }

// Advance сдвигает время вперед.
func (c *ManualClock) Advance(d float64) { c.T += d }
