package domain

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// Projectile - самонаводящийся снаряд. Несет кастера, цель, урон и радиус
// AoE; урон применяется движком в момент прибытия. Цель - слабая ссылка:
// если она исчезла, снаряд просто гаснет.
type Projectile struct {
	Entity

	Caster       Behaviour
	DamageAmount int
	AoERadius    float64

	// Resolved выставляется после применения урона; движок убирает снаряд
	// из мира в конце тика.
	Resolved bool
}

func NewProjectile(id string, caster Behaviour, target Behaviour, damage int, aoe, speed float64, clock Clock) *Projectile {
	p := &Projectile{
		Entity: Entity{
			ID:           id,
			Name:         "projectile",
			Kind:         enums.EntityKindProjectile,
			State:        enums.StateMoving,
			Clock:        clock,
			Pos:          caster.E().Pos,
			Radius:       0.1,
			Speed:        speed,
			Target:       target,
			CurrentSkill: -1,
			Invincible:   true,
		},
		Caster:       caster,
		DamageAmount: damage,
		AoERadius:    aoe,
	}
	p.Health = 1
	return p
}

func (p *Projectile) E() *Entity { return &p.Entity }

func (p *Projectile) HealthMax() int       { return 1 }
func (p *Projectile) ManaMax() int         { return 0 }
func (p *Projectile) Damage() int          { return p.DamageAmount }
func (p *Projectile) Defense() int         { return 0 }
func (p *Projectile) BlockChance() float64 { return 0 }
func (p *Projectile) CritChance() float64  { return 0 }

func (p *Projectile) CanAttack(other Behaviour) bool { return false }
func (p *Projectile) HasCastWeapon() bool            { return false }
func (p *Projectile) OnAggro(attacker Behaviour)     {}
func (p *Projectile) OnDeath(ctx *TickContext)       {}

// Advance ведет снаряд к цели. Возвращает true при попадании.
func (p *Projectile) Advance(dt float64) bool {
	if p.Target == nil {
		p.Resolved = true
		return false
	}

	to := p.Target.E().Pos.Sub(p.Pos)
	dist := to.Len()
	step := p.Speed * dt
	if step >= dist {
		p.Pos = p.Target.E().Pos
		return true
	}
	p.Pos = p.Pos.Add(to.Normalize().Mul(step))
	return false
}
