package domain

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// Npc - мирная сущность: торговля, выдача квестов, телепорт.
// В FSM не участвует (всегда IDLE) и не умирает.
type Npc struct {
	Entity

	// SaleItems - имена шаблонов предметов, которыми торгует.
	SaleItems []string

	// QuestNames - квесты, которые можно взять/сдать у этого NPC.
	QuestNames []string

	// Телепорт (опционально).
	TeleportActive bool
	TeleportTo     mgl64.Vec3
}

func NewNpc(id, name string, clock Clock) *Npc {
	n := &Npc{
		Entity: Entity{
			ID:           id,
			Name:         name,
			Kind:         enums.EntityKindNpc,
			State:        enums.StateIdle,
			Level:        1,
			Clock:        clock,
			Radius:       0.5,
			CurrentSkill: -1,
			Invincible:   true,
		},
	}
	n.Health = n.HealthMax()
	n.Mana = n.ManaMax()
	return n
}

func (n *Npc) E() *Entity { return &n.Entity }

func (n *Npc) HealthMax() int       { return 1 }
func (n *Npc) ManaMax() int         { return 1 }
func (n *Npc) Damage() int          { return 0 }
func (n *Npc) Defense() int         { return 0 }
func (n *Npc) BlockChance() float64 { return 0 }
func (n *Npc) CritChance() float64  { return 0 }

func (n *Npc) CanAttack(other Behaviour) bool { return false }
func (n *Npc) HasCastWeapon() bool            { return false }
func (n *Npc) OnAggro(attacker Behaviour)     {}
func (n *Npc) OnDeath(ctx *TickContext)       {}

// Sells - торгует ли NPC этим предметом.
func (n *Npc) Sells(itemName string) bool {
	for _, s := range n.SaleItems {
		if s == itemName {
			return true
		}
	}
	return false
}

// OffersQuest - выдает ли NPC этот квест.
func (n *Npc) OffersQuest(questName string) bool {
	for _, q := range n.QuestNames {
		if q == questName {
			return true
		}
	}
	return false
}
