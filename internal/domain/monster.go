package domain

import (
	"math/rand"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// MonsterSpec - параметры спавна монстра. Держим их прямо на экземпляре:
// монстры штампуются билдером мира, а не каталогом шаблонов.
type MonsterSpec struct {
	Name        string
	Level       int
	HealthMax   int
	ManaMax     int
	Damage      int
	Defense     int
	BlockChance float64
	CritChance  float64

	Speed float64

	ExpReward      int64
	SkillExpReward int64

	// Блуждание: шанс сорваться с места за секунду и радиус прогулки.
	MoveProbability float64
	MoveDistance    float64

	// FollowDistance - радиус преследования ОТ ЯКОРЯ. Должен быть больше
	// дальности любого навыка, иначе дальнобойные цели безнаказанны.
	FollowDistance float64

	// AggroRadius - с какого расстояния монстр замечает цель сам.
	AggroRadius float64

	DeathTime   float64
	RespawnTime float64

	LootGoldMin int64
	LootGoldMax int64
	DropChances []ItemDropChance

	Skills []string // имена шаблонов навыков, все выучены
}

// Monster - серверный вариант сущности под управлением ИИ.
type Monster struct {
	Entity
	Spec MonsterSpec

	// AggroHysteresis: новая цель должна быть НАСТОЛЬКО ближе текущей,
	// чтобы монстр переключился (0.8 = на 20% ближе). Конфигурация, не
	// константа: это игровой баланс.
	AggroHysteresis float64

	// Лут, сброшенный при смерти. Живет до возрождения.
	LootGold  int64
	LootItems []Item

	// Метка времени последней проверки блуждания.
	lastWanderRoll float64
}

func NewMonster(id string, spec MonsterSpec, clock Clock, hysteresis float64) *Monster {
	m := &Monster{
		Entity: Entity{
			ID:           id,
			Name:         spec.Name,
			Kind:         enums.EntityKindMonster,
			State:        enums.StateIdle,
			Level:        spec.Level,
			Clock:        clock,
			Radius:       0.5,
			Speed:        spec.Speed,
			CurrentSkill: -1,
			Mover:        NewLinearMover(),
			DeathTime:    spec.DeathTime,
			RespawnTime:  spec.RespawnTime,
		},
		Spec:            spec,
		AggroHysteresis: hysteresis,
	}
	m.Health = spec.HealthMax
	m.Mana = spec.ManaMax
	return m
}

func (m *Monster) E() *Entity { return &m.Entity }

func (m *Monster) HealthMax() int { return m.Spec.HealthMax }
func (m *Monster) ManaMax() int   { return m.Spec.ManaMax }

func (m *Monster) Damage() int {
	return m.Spec.Damage + BuffBonus(&m.Entity, func(d catalog.SkillLevelData) int { return d.BuffsDamage })
}

func (m *Monster) Defense() int {
	return m.Spec.Defense + BuffBonus(&m.Entity, func(d catalog.SkillLevelData) int { return d.BuffsDefense })
}

func (m *Monster) BlockChance() float64 { return m.Spec.BlockChance }
func (m *Monster) CritChance() float64  { return m.Spec.CritChance }

// CanAttack: монстры атакуют только игроков.
func (m *Monster) CanAttack(other Behaviour) bool {
	return other.E().Kind == enums.EntityKindPlayer
}

// HasCastWeapon: монстрам оружие не требуется.
func (m *Monster) HasCastWeapon() bool { return true }

// OnAggro переключает цель с гистерезисом: кандидат должен быть заметно
// ближе текущей цели, иначе монстр мечется между двумя игроками.
func (m *Monster) OnAggro(attacker Behaviour) {
	if attacker == nil || !m.CanAttack(attacker) || !IsAlive(attacker) {
		return
	}

	if m.Target == nil || !IsAlive(m.Target) {
		m.Target = attacker
		return
	}
	if m.Target == attacker {
		return
	}

	oldDist := SurfaceDistance(&m.Entity, m.Target.E())
	newDist := SurfaceDistance(&m.Entity, attacker.E())
	if newDist < oldDist*m.AggroHysteresis {
		m.Target = attacker
	}
}

// OnDeath: лут бросается РОВНО ОДИН РАЗ, в момент смерти.
func (m *Monster) OnDeath(ctx *TickContext) {
	m.LootGold = 0
	m.LootItems = m.LootItems[:0]

	if m.Spec.LootGoldMax > m.Spec.LootGoldMin {
		m.LootGold = m.Spec.LootGoldMin + ctx.Rng.Int63n(m.Spec.LootGoldMax-m.Spec.LootGoldMin+1)
	} else {
		m.LootGold = m.Spec.LootGoldMin
	}

	for _, drop := range m.Spec.DropChances {
		if ctx.Rng.Float64() < drop.Chance {
			if t, ok := ctx.Catalog.Item(drop.ItemName); ok {
				m.LootItems = append(m.LootItems, NewItem(t, 1))
			}
		}
	}
}

// HasLoot - осталось ли что-то на трупе.
func (m *Monster) HasLoot() bool {
	return m.LootGold > 0 || len(m.LootItems) > 0
}

// WanderRoll - решает раз в секунду, не пора ли прогуляться.
func (m *Monster) WanderRoll(now float64, rng *rand.Rand) bool {
	if now-m.lastWanderRoll < 1.0 {
		return false
	}
	m.lastWanderRoll = now
	return rng.Float64() < m.Spec.MoveProbability
}
