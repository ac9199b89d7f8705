package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// UpdatePlayer прогоняет один тик FSM игрока. Невычитанные командные
// события в конце тика сбрасываются: команды живут ровно один тик.
func UpdatePlayer(ctx *domain.TickContext, p *domain.Player) {
	var next enums.EntityState

	switch p.State {
	case enums.StateIdle:
		next = playerIdle(ctx, p)
	case enums.StateMoving:
		next = playerMoving(ctx, p)
	case enums.StateCasting:
		next = playerCasting(ctx, p)
	case enums.StateTrading:
		next = playerTrading(ctx, p)
	case enums.StateDead:
		next = playerDead(ctx, p)
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "fsm",
			"entity":    p.Name,
			"state":     p.State.String(),
		}).Error("Player in invalid state")
		next = enums.StateIdle
	}

	p.State = next
	p.Cmd.Clear()
}

func playerIdle(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	if p.Health == 0 {
		return diePlayer(ctx, p)
	}
	if p.Cmd.Take(domain.CmdCancelAction) {
		p.PendingSkill = -1
		return enums.StateIdle
	}
	if other := tradeStarted(ctx, p); other != nil {
		p.Target = other
		return enums.StateTrading
	}
	if p.Cmd.Take(domain.CmdNavigateTo) {
		p.PendingSkill = -1
		p.Mover.SetDestination(p.NavigateDest, p.NavigateStopping)
		return enums.StateMoving
	}
	if p.PendingSkill != -1 {
		s := &p.Skills[p.PendingSkill]
		if CastCheckSelf(p, s, true, ctx.Now) && CastCheckTarget(p, s) {
			if CastCheckDistance(p, s) {
				p.CurrentSkill = p.PendingSkill
				p.PendingSkill = -1
				StartCast(s, ctx.Now)
				return enums.StateCasting
			}
			// Цель вне дальности: бежим к ней, запрос остается висеть.
			p.Mover.SetDestination(p.Target.E().Pos, s.Data().CastRange*domain.CastRangeStopFactor)
			return enums.StateMoving
		}
		p.PendingSkill = -1
		return enums.StateIdle
	}
	return enums.StateIdle
}

func playerMoving(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	if p.Health == 0 {
		return diePlayer(ctx, p)
	}
	if p.Cmd.Take(domain.CmdCancelAction) {
		p.Mover.ResetPath()
		p.PendingSkill = -1
		return enums.StateIdle
	}
	if other := tradeStarted(ctx, p); other != nil {
		p.Mover.ResetPath()
		p.Target = other
		return enums.StateTrading
	}
	if p.Cmd.Take(domain.CmdNavigateTo) {
		p.PendingSkill = -1
		p.Mover.SetDestination(p.NavigateDest, p.NavigateStopping)
		return enums.StateMoving
	}
	if p.PendingSkill != -1 {
		s := &p.Skills[p.PendingSkill]
		if CastCheckSelf(p, s, true, ctx.Now) && CastCheckTarget(p, s) && CastCheckDistance(p, s) {
			p.Mover.ResetPath()
			p.CurrentSkill = p.PendingSkill
			p.PendingSkill = -1
			StartCast(s, ctx.Now)
			return enums.StateCasting
		}
	}
	if p.Mover.HasArrived(p.Pos) {
		return enums.StateIdle
	}
	return enums.StateMoving
}

func playerCasting(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	if p.Health == 0 {
		return diePlayer(ctx, p)
	}
	if p.Cmd.Take(domain.CmdCancelAction) {
		p.CurrentSkill = -1
		p.PendingSkill = -1
		return enums.StateIdle
	}
	if p.CurrentSkill < 0 || p.CurrentSkill >= len(p.Skills) {
		return enums.StateIdle
	}

	s := &p.Skills[p.CurrentSkill]

	// Атакующий каст обрывается, если цель умерла или исчезла.
	if s.Template.Category == enums.SkillCategoryAttack {
		if targetGone(ctx, &p.Entity) || p.Target == nil || !domain.IsAlive(p.Target) {
			p.CurrentSkill = -1
			p.Target = nil
			return enums.StateIdle
		}
	}

	if s.CastFinished(ctx.Now) {
		idx := p.CurrentSkill
		applied := FinishCast(ctx, p, s)
		p.CurrentSkill = -1

		// Навык, запрошенный во время каста, подхватывается следом.
		if p.NextSkill != -1 {
			p.PendingSkill = p.NextSkill
			p.NextSkill = -1
			if p.NextTarget != nil {
				p.Target = p.NextTarget
				p.NextTarget = nil
			}
		} else if applied && s.Template.FollowupDefaultAttack {
			// Автоатака: навык перезапрашивает сам себя.
			p.PendingSkill = idx
		}
		return enums.StateIdle
	}
	return enums.StateCasting
}

func playerTrading(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	if p.Health == 0 {
		TradeCancel(p)
		return diePlayer(ctx, p)
	}
	if p.Cmd.Take(domain.CmdTradeDone) {
		p.Target = nil
		return enums.StateIdle
	}
	if p.Cmd.Take(domain.CmdTradeCancel) {
		p.Target = nil
		return enums.StateIdle
	}

	// Партнер исчез, умер или вышел из трейда: сворачиваемся.
	other, ok := p.Target.(*domain.Player)
	if !ok || targetGone(ctx, &p.Entity) || !domain.IsAlive(other) ||
		other.State != enums.StateTrading || other.Target != domain.Behaviour(p) {
		TradeCancel(p)
		p.Target = nil
		return enums.StateIdle
	}
	return enums.StateTrading
}

func playerDead(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	if p.Cmd.Take(domain.CmdRespawn) || ctx.Now >= p.RespawnTimeEnd {
		p.Pos = p.Anchor
		p.Mover.ResetPath()
		domain.SetHealth(p, int(float64(p.HealthMax())*domain.PlayerRespawnHealth))
		domain.SetMana(p, int(float64(p.ManaMax())*domain.PlayerRespawnHealth))
		p.LastRecovery = ctx.Now
		return enums.StateIdle
	}
	return enums.StateDead
}

func diePlayer(ctx *domain.TickContext, p *domain.Player) enums.EntityState {
	p.PendingSkill = -1
	p.NextSkill = -1
	p.NextTarget = nil
	return die(ctx, p)
}

// tradeStarted - есть ли ВЗАИМНЫЕ трейд-приглашения с живым игроком.
func tradeStarted(ctx *domain.TickContext, p *domain.Player) *domain.Player {
	if p.TradeRequestFrom == "" {
		return nil
	}
	other := ctx.World.PlayerByName(p.TradeRequestFrom)
	if other != nil && other.TradeRequestFrom == p.Name && domain.IsAlive(other) {
		return other
	}
	return nil
}
