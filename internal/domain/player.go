package domain

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// PlayerEquipSlots - фиксированная раскладка слотов экипировки игрока.
// Индекс в Equipment соответствует индексу здесь.
var PlayerEquipSlots = []enums.EquipSlotKind{
	enums.EquipSlotWeapon,
	enums.EquipSlotShield,
	enums.EquipSlotHead,
	enums.EquipSlotChest,
	enums.EquipSlotLegs,
}

// TradeOffer - предложение одной стороны в активном трейде.
// Эфемерно: в сохранения не попадает.
type TradeOffer struct {
	Gold int64
	// Индексы слотов инвентаря, -1 = пусто.
	ItemSlots [TradeOfferSlots]int
	Locked    bool
	Accepted  bool
}

// Reset очищает предложение (выход из трейда любым путем).
func (t *TradeOffer) Reset() {
	t.Gold = 0
	t.Locked = false
	t.Accepted = false
	for i := range t.ItemSlots {
		t.ItemSlots[i] = -1
	}
}

// OffersSlot - предложен ли уже слот инвентаря idx.
func (t *TradeOffer) OffersSlot(idx int) bool {
	for _, s := range t.ItemSlots {
		if s == idx {
			return true
		}
	}
	return false
}

// Player - подконтрольный клиенту вариант сущности.
type Player struct {
	Entity

	Account   string
	ClassName string

	// Атрибуты: по одному очку за уровень, каждое очко +1% к своему максимуму.
	Strength     int
	Intelligence int

	Experience      int64
	SkillExperience int64
	Gold            int64
	Coins           int64

	Inventory []Item
	Equipment []Item // параллелен PlayerEquipSlots

	Quests []Quest

	// --- КОМАНДНЫЕ СОБЫТИЯ (потребляются FSM раз в тик) ---
	Cmd              CommandSet
	NavigateDest     mgl64.Vec3
	NavigateStopping float64

	// --- КАСТ ---
	// PendingSkill - запрошенный навык (-1 = нет). NextSkill/NextTarget -
	// навык и цель, запрошенные ВО ВРЕМЯ текущего каста; подхватываются
	// после его завершения.
	PendingSkill int
	NextSkill    int
	NextTarget   Behaviour

	// --- ТРЕЙД ---
	// TradeRequestFrom - имя игрока, приславшего приглашение. Старт трейда
	// требует ВЗАИМНЫХ приглашений.
	TradeRequestFrom string
	Trade            TradeOffer

	// LastRecovery - время последнего начисления регена (полные секунды).
	LastRecovery float64
}

// NewPlayer создает игрока с полным списком навыков из каталога.
func NewPlayer(id, name, account, class string, clock Clock, cat *catalog.Catalog) *Player {
	p := &Player{
		Entity: Entity{
			ID:           id,
			Name:         name,
			Kind:         enums.EntityKindPlayer,
			State:        enums.StateIdle,
			Level:        1,
			Clock:        clock,
			Radius:       0.5,
			Speed:        5,
			CurrentSkill: -1,
			Mover:        NewLinearMover(),
			DeathTime:    PlayerDeathTime,
			RespawnTime:  PlayerRespawnTime,
		},
		Account:      account,
		ClassName:    class,
		Inventory:    make([]Item, InventorySize),
		Equipment:    make([]Item, len(PlayerEquipSlots)),
		Cmd:          NewCommandSet(),
		PendingSkill: -1,
		NextSkill:    -1,
	}
	p.Trade.Reset()

	for _, t := range cat.Skills() {
		p.Skills = append(p.Skills, NewSkill(t))
	}

	p.Health = p.HealthMax()
	p.Mana = p.ManaMax()
	return p
}

func (p *Player) E() *Entity { return &p.Entity }

// --- ПРОИЗВОДНЫЕ СТАТЫ ---
// Схема: (база по уровню + экипировка + баффы) и процентный бонус атрибута
// для здоровья/маны.

func (p *Player) equipBonus(f func(*catalog.ItemTemplate) int) int {
	total := 0
	for i := range p.Equipment {
		if p.Equipment[i].Valid {
			total += f(p.Equipment[i].Template)
		}
	}
	return total
}

func (p *Player) equipBonusF(f func(*catalog.ItemTemplate) float64) float64 {
	total := 0.0
	for i := range p.Equipment {
		if p.Equipment[i].Valid {
			total += f(p.Equipment[i].Template)
		}
	}
	return total
}

func (p *Player) HealthMax() int {
	base := PlayerBaseHealthMax + PlayerHealthPerLevel*(p.Level-1)
	base += p.equipBonus(func(t *catalog.ItemTemplate) int { return t.EquipHealthMax })
	base += BuffBonus(&p.Entity, func(d catalog.SkillLevelData) int { return d.BuffsHealthMax })
	return int(float64(base) * (1 + float64(p.Strength)*0.01))
}

func (p *Player) ManaMax() int {
	base := PlayerBaseManaMax + PlayerManaPerLevel*(p.Level-1)
	base += p.equipBonus(func(t *catalog.ItemTemplate) int { return t.EquipManaMax })
	base += BuffBonus(&p.Entity, func(d catalog.SkillLevelData) int { return d.BuffsManaMax })
	return int(float64(base) * (1 + float64(p.Intelligence)*0.01))
}

func (p *Player) Damage() int {
	base := PlayerBaseDamage + PlayerDamagePerLevel*(p.Level-1)
	base += p.equipBonus(func(t *catalog.ItemTemplate) int { return t.EquipDamage })
	base += BuffBonus(&p.Entity, func(d catalog.SkillLevelData) int { return d.BuffsDamage })
	return base
}

func (p *Player) Defense() int {
	base := PlayerBaseDefense
	base += p.equipBonus(func(t *catalog.ItemTemplate) int { return t.EquipDefense })
	base += BuffBonus(&p.Entity, func(d catalog.SkillLevelData) int { return d.BuffsDefense })
	return base
}

func (p *Player) BlockChance() float64 {
	return PlayerBlockChance +
		p.equipBonusF(func(t *catalog.ItemTemplate) float64 { return t.EquipBlockChance }) +
		BuffBonusF(&p.Entity, func(d catalog.SkillLevelData) float64 { return d.BuffsBlockChance })
}

func (p *Player) CritChance() float64 {
	return PlayerCritChance +
		p.equipBonusF(func(t *catalog.ItemTemplate) float64 { return t.EquipCritChance }) +
		BuffBonusF(&p.Entity, func(d catalog.SkillLevelData) float64 { return d.BuffsCritChance })
}

// CanAttack: игроки воюют с монстрами и другими игроками (PvP).
func (p *Player) CanAttack(other Behaviour) bool {
	if other.E().ID == p.ID {
		return false
	}
	k := other.E().Kind
	return k == enums.EntityKindMonster || k == enums.EntityKindPlayer
}

// HasCastWeapon - в слоте оружия лежит валидный предмет оружейной категории.
func (p *Player) HasCastWeapon() bool {
	for i, kind := range PlayerEquipSlots {
		if kind != enums.EquipSlotWeapon {
			continue
		}
		it := &p.Equipment[i]
		return it.Valid && it.Template.Category.IsWeapon()
	}
	return false
}

func (p *Player) OnAggro(attacker Behaviour) {
	// Игрок сам выбирает цели. Автоответа нет.
}

// OnDeath: теряем часть опыта. Общая механика смерти (сброс каста, баффов,
// цели, дедлайны) выполняется FSM до вызова.
func (p *Player) OnDeath(ctx *TickContext) {
	penalty := int64(float64(ExperienceMax(p.Level)) * PlayerDeathExpPenalty)
	p.Experience -= penalty
	if p.Experience < 0 {
		p.Experience = 0
	}
	ctx.World.EmitInfo(p.ID, "Вы погибли и потеряли часть опыта.")
}

// --- ОПЫТ И УРОВНИ ---

// ExperienceMax - опыт, необходимый для перехода с уровня level на следующий.
func ExperienceMax(level int) int64 {
	return int64(level) * int64(level) * 100
}

// AddExperience начисляет опыт и прокручивает уровни.
// Очки атрибутов появляются сами: по одному за уровень (AttributesSpendable).
func (p *Player) AddExperience(amount int64) {
	if amount <= 0 {
		return
	}
	p.Experience += amount
	for p.Level < PlayerMaxLevel && p.Experience >= ExperienceMax(p.Level) {
		p.Experience -= ExperienceMax(p.Level)
		p.Level++
		// Новый максимум - доливаем ресурсы до полных.
		SetHealth(p, p.HealthMax())
		SetMana(p, p.ManaMax())
	}
}

// AttributesSpendable - сколько очков атрибутов еще не потрачено.
func (p *Player) AttributesSpendable() int {
	return p.Level - p.Strength - p.Intelligence
}

// --- PVP-СТАТУСЫ ---
// Нарушитель/Убийца реализованы как служебные бафф-экземпляры со своим
// временем жизни.

func (p *Player) statusActive(cat enums.SkillCategory) bool {
	now := p.Clock.Now()
	for i := range p.Skills {
		s := &p.Skills[i]
		if s.Template.Category == cat && s.BuffTimeRemaining(now) > 0 {
			return true
		}
	}
	return false
}

func (p *Player) IsOffender() bool {
	return p.statusActive(enums.SkillCategoryStatusOffender)
}

func (p *Player) IsMurderer() bool {
	return p.statusActive(enums.SkillCategoryStatusMurderer)
}

func (p *Player) raiseStatus(cat enums.SkillCategory) {
	now := p.Clock.Now()
	for i := range p.Skills {
		s := &p.Skills[i]
		if s.Template.Category == cat {
			s.BuffTimeEnd = now + s.Data().BuffTime
			return
		}
	}
}

// MakeOffender помечает игрока за неспровоцированное нападение.
func (p *Player) MakeOffender() {
	if !p.IsMurderer() {
		p.raiseStatus(enums.SkillCategoryStatusOffender)
	}
}

// MakeMurderer помечает игрока за убийство невиновного.
func (p *Player) MakeMurderer() {
	p.raiseStatus(enums.SkillCategoryStatusMurderer)
}

// IsInnocent - цель без статусов; нападение на нее делает нас нарушителем.
func (p *Player) IsInnocent() bool {
	return !p.IsOffender() && !p.IsMurderer()
}

// --- ВОССТАНОВЛЕНИЕ ---

// Recover начисляет реген за каждую ПОЛНУЮ секунду с прошлого начисления.
// Мертвым не положено.
func (p *Player) Recover(now float64) {
	if p.Health == 0 {
		p.LastRecovery = now
		return
	}
	for now-p.LastRecovery >= 1.0 {
		p.LastRecovery += 1.0
		AddHealth(p, PlayerHealthRecovery)
		AddMana(p, PlayerManaRecovery)
	}
}

// InTradeWith - активен ли трейд с целью (оба в состоянии TRADING друг на друга).
func (p *Player) InTradeWith() *Player {
	if p.State != enums.StateTrading {
		return nil
	}
	other, ok := p.Target.(*Player)
	if !ok {
		return nil
	}
	if other.State == enums.StateTrading && other.Target == Behaviour(p) {
		return other
	}
	return nil
}
