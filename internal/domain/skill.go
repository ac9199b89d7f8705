package domain

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
)

// Skill - динамический экземпляр навыка у конкретной сущности.
// Статика (урон, кулдаун, дальность по уровням) живет в шаблоне.
//
// Дедлайны - абсолютное серверное время. В память - абсолютные, в
// сохранения - только остатки: серверные часы нестабильны между рестартами.
type Skill struct {
	Name     string
	Template *catalog.SkillTemplate

	Learned bool
	Level   int

	CastTimeEnd float64
	CooldownEnd float64
	BuffTimeEnd float64
}

// NewSkill создает неизученный экземпляр 1-го уровня по шаблону.
func NewSkill(t *catalog.SkillTemplate) Skill {
	return Skill{
		Name:     t.Name,
		Template: t,
		Level:    1,
	}
}

// Data возвращает параметры навыка для ТЕКУЩЕГО уровня прокачки.
func (s *Skill) Data() catalog.SkillLevelData {
	return s.Template.Level(s.Level)
}

func remaining(deadline, now float64) float64 {
	if d := deadline - now; d > 0 {
		return d
	}
	return 0
}

func (s *Skill) CastTimeRemaining(now float64) float64 {
	return remaining(s.CastTimeEnd, now)
}

func (s *Skill) CooldownRemaining(now float64) float64 {
	return remaining(s.CooldownEnd, now)
}

func (s *Skill) BuffTimeRemaining(now float64) float64 {
	return remaining(s.BuffTimeEnd, now)
}

// IsReady - закончился ли кулдаун.
func (s *Skill) IsReady(now float64) bool {
	return s.CooldownRemaining(now) == 0
}

// CastFinished - дошел ли текущий каст до конца.
func (s *Skill) CastFinished(now float64) bool {
	return s.CastTimeRemaining(now) == 0
}

// BuffActive - действует ли еще бафф этого навыка.
func (s *Skill) BuffActive(now float64) bool {
	return s.Learned && s.BuffTimeRemaining(now) > 0
}

// CanUpgrade - можно ли поднять уровень (требования проверяет вызывающий).
func (s *Skill) CanUpgrade() bool {
	return s.Learned && s.Level < s.Template.MaxLevel()
}
