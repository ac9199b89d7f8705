package systems

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

// Конечный автомат сущностей. Каждое состояние - функция, которая в
// фиксированном порядке приоритета проверяет ВСЕ события и возвращает
// следующее состояние. Состояние меняется только через это возвращаемое
// значение; никакой код не пишет в Entity.State напрямую.

// UpdateEntity прогоняет один тик FSM сущности. NPC и снаряды в автомате
// не участвуют: первые всегда IDLE, вторых ведет движок.
func UpdateEntity(ctx *domain.TickContext, b domain.Behaviour) {
	switch v := b.(type) {
	case *domain.Player:
		UpdatePlayer(ctx, v)
	case *domain.Monster:
		UpdateMonster(ctx, v)
	}
}

// die - общая механика перехода в DEAD, одинаковая для всех вариантов:
// каст отменяется, баффы гаснут, цель сбрасывается, оба дедлайна смерти
// считаются сразу. Затем вариант получает свой OnDeath.
func die(ctx *domain.TickContext, b domain.Behaviour) enums.EntityState {
	e := b.E()
	e.CurrentSkill = -1
	StopBuffs(b, ctx.Now)
	e.Target = nil
	if e.Mover != nil {
		e.Mover.ResetPath()
	}
	e.DeathTimeEnd = ctx.Now + e.DeathTime
	e.RespawnTimeEnd = e.DeathTimeEnd + e.RespawnTime
	b.OnDeath(ctx)
	return enums.StateDead
}

// targetGone - цель исчезла из мира (разлогин, деспавн).
func targetGone(ctx *domain.TickContext, e *domain.Entity) bool {
	return e.Target != nil && ctx.World.Get(e.Target.E().ID) == nil
}
