package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// UpdateMonster прогоняет один тик FSM монстра.
func UpdateMonster(ctx *domain.TickContext, m *domain.Monster) {
	var next enums.EntityState

	switch m.State {
	case enums.StateIdle:
		next = monsterIdle(ctx, m)
	case enums.StateMoving:
		next = monsterMoving(ctx, m)
	case enums.StateCasting:
		next = monsterCasting(ctx, m)
	case enums.StateDead:
		next = monsterDead(ctx, m)
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "fsm",
			"entity":    m.Name,
			"state":     m.State.String(),
		}).Error("Monster in invalid state")
		next = enums.StateIdle
	}

	m.State = next
}

func monsterIdle(ctx *domain.TickContext, m *domain.Monster) enums.EntityState {
	if m.Health == 0 {
		return die(ctx, m)
	}
	if targetGone(ctx, &m.Entity) || (m.Target != nil && !domain.IsAlive(m.Target)) {
		m.Target = nil
		return enums.StateIdle
	}
	if m.Target != nil && tooFarToFollow(m) {
		// Поводок: бросаем погоню и возвращаемся к якорю.
		m.Target = nil
		m.Mover.SetDestination(m.Anchor, 0)
		return enums.StateMoving
	}
	if m.Target != nil {
		if idx := readyMonsterSkill(ctx, m); idx != -1 {
			s := &m.Skills[idx]
			if CastCheckTarget(m, s) {
				if CastCheckDistance(m, s) {
					m.CurrentSkill = idx
					StartCast(s, ctx.Now)
					return enums.StateCasting
				}
				m.Mover.SetDestination(m.Target.E().Pos, s.Data().CastRange*domain.CastRangeStopFactor)
				return enums.StateMoving
			}
		}
		// Все навыки на откате: стоим и ждем.
		return enums.StateIdle
	}
	if victim := scanAggro(ctx, m); victim != nil {
		m.OnAggro(victim)
		return enums.StateIdle
	}
	if m.WanderRoll(ctx.Now, ctx.Rng) {
		m.Mover.SetDestination(wanderPoint(ctx, m), 0)
		return enums.StateMoving
	}
	return enums.StateIdle
}

func monsterMoving(ctx *domain.TickContext, m *domain.Monster) enums.EntityState {
	if m.Health == 0 {
		m.Mover.ResetPath()
		return die(ctx, m)
	}
	if targetGone(ctx, &m.Entity) || (m.Target != nil && !domain.IsAlive(m.Target)) {
		m.Target = nil
		m.Mover.ResetPath()
		return enums.StateIdle
	}
	if m.Target != nil && tooFarToFollow(m) {
		m.Target = nil
		m.Mover.SetDestination(m.Anchor, 0)
		return enums.StateMoving
	}
	if m.Target != nil {
		// Преследование: как только цель в дальности каста, останавливаемся,
		// IDLE следующего тика начнет атаку.
		if idx := readyMonsterSkill(ctx, m); idx != -1 {
			s := &m.Skills[idx]
			if CastCheckDistance(m, s) {
				m.Mover.ResetPath()
				return enums.StateIdle
			}
			m.Mover.SetDestination(m.Target.E().Pos, s.Data().CastRange*domain.CastRangeStopFactor)
			return enums.StateMoving
		}
		return enums.StateMoving
	}
	if victim := scanAggro(ctx, m); victim != nil {
		m.OnAggro(victim)
		m.Mover.ResetPath()
		return enums.StateIdle
	}
	if m.Mover.HasArrived(m.Pos) {
		return enums.StateIdle
	}
	return enums.StateMoving
}

func monsterCasting(ctx *domain.TickContext, m *domain.Monster) enums.EntityState {
	if m.Health == 0 {
		return die(ctx, m)
	}
	if m.CurrentSkill < 0 || m.CurrentSkill >= len(m.Skills) {
		return enums.StateIdle
	}

	s := &m.Skills[m.CurrentSkill]
	if s.Template.Category == enums.SkillCategoryAttack {
		if targetGone(ctx, &m.Entity) || m.Target == nil || !domain.IsAlive(m.Target) {
			m.CurrentSkill = -1
			m.Target = nil
			return enums.StateIdle
		}
	}

	if s.CastFinished(ctx.Now) {
		FinishCast(ctx, m, s)
		m.CurrentSkill = -1
		return enums.StateIdle
	}
	return enums.StateCasting
}

func monsterDead(ctx *domain.TickContext, m *domain.Monster) enums.EntityState {
	if ctx.Now >= m.RespawnTimeEnd {
		m.Pos = m.Anchor
		m.Mover.ResetPath()
		m.Health = m.HealthMax()
		m.Mana = m.ManaMax()
		m.LootGold = 0
		m.LootItems = m.LootItems[:0]
		m.Hidden = false
		return enums.StateIdle
	}
	if ctx.Now >= m.DeathTimeEnd && !m.Hidden {
		// Труп истек: прячем вместе с несобранным лутом.
		m.Hidden = true
		m.LootGold = 0
		m.LootItems = m.LootItems[:0]
	}
	return enums.StateDead
}

// tooFarToFollow - цель утащила монстра дальше поводка от якоря.
func tooFarToFollow(m *domain.Monster) bool {
	return m.Target.E().Pos.Sub(m.Anchor).Len() > m.Spec.FollowDistance
}

// readyMonsterSkill - первый выученный навык, готовый к касту.
func readyMonsterSkill(ctx *domain.TickContext, m *domain.Monster) int {
	for i := range m.Skills {
		if CastCheckSelf(m, &m.Skills[i], true, ctx.Now) {
			return i
		}
	}
	return -1
}

// scanAggro ищет ближайшую живую атакуемую цель в радиусе аггро.
func scanAggro(ctx *domain.TickContext, m *domain.Monster) domain.Behaviour {
	var best domain.Behaviour
	bestDist := math.Inf(1)
	for _, b := range ctx.World.InRadius(m.Pos, m.Spec.AggroRadius) {
		if b == domain.Behaviour(m) || !domain.IsAlive(b) || !m.CanAttack(b) {
			continue
		}
		if d := domain.SurfaceDistance(&m.Entity, b.E()); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

// wanderPoint - случайная точка прогулки в круге MoveDistance вокруг якоря.
func wanderPoint(ctx *domain.TickContext, m *domain.Monster) mgl64.Vec3 {
	angle := ctx.Rng.Float64() * 2 * math.Pi
	r := ctx.Rng.Float64() * m.Spec.MoveDistance
	dest := m.Anchor.Add(mgl64.Vec3{r * math.Cos(angle), 0, r * math.Sin(angle)})
	return m.Mover.NearestReachable(dest)
}
