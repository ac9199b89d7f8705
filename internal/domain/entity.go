package domain

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// TickContext - всё, что нужно логике одного тика симуляции.
// Передается явно, никаких глобальных часов и глобального rand.
type TickContext struct {
	World   *World
	Catalog *catalog.Catalog
	Now     float64 // серверное время, секунды
	DT      float64 // длительность тика, секунды
	Rng     *rand.Rand
}

// Behaviour - контракт варианта сущности (Player/Monster/Npc/Projectile).
// FSM-драйвер и боевая система работают только через этот интерфейс.
// Производные статы ВЫЧИСЛЯЮТСЯ, а не хранятся: база + экипировка + баффы.
type Behaviour interface {
	// E дает доступ к общим полям сущности.
	E() *Entity

	HealthMax() int
	ManaMax() int
	Damage() int
	Defense() int
	BlockChance() float64
	CritChance() float64

	// CanAttack решает, может ли эта сущность атаковать other.
	CanAttack(other Behaviour) bool

	// HasCastWeapon - есть ли у сущности оружие для каста боевых навыков.
	// Монстры считаются вооруженными всегда.
	HasCastWeapon() bool

	// OnAggro вызывается БЕЗУСЛОВНО для каждой задетой атакой сущности,
	// даже при блоке и неуязвимости: дальнобойный атакующий не должен
	// оставаться вне ответного таргетинга.
	OnAggro(attacker Behaviour)

	// OnDeath вызывается FSM ровно один раз при переходе в DEAD.
	OnDeath(ctx *TickContext)
}

// Entity - общие поля всех вариантов сущностей.
// State меняется ТОЛЬКО через возврат из per-state update функций FSM.
type Entity struct {
	ID   string
	Name string
	Kind enums.EntityKind

	// Clock нужен производным статам: бонусы баффов живы, пока их
	// BuffTimeEnd в будущем.
	Clock Clock

	State enums.EntityState

	Level  int
	Health int
	Mana   int

	// Invincible: урон не проходит (но аггро переключается).
	Invincible bool

	Pos    mgl64.Vec3
	Radius float64 // радиус ограничивающей сферы
	Speed  float64 // м/с

	// Anchor - точка возрождения/возврата.
	Anchor mgl64.Vec3

	// Target - слабая ссылка: не владеем, цель может умереть или исчезнуть,
	// перед использованием всегда перепроверяется.
	Target Behaviour

	Skills       []Skill
	CurrentSkill int // индекс в Skills, -1 = ничего не кастуем

	Mover Mover

	// Длительности смерти/возрождения варианта.
	DeathTime   float64
	RespawnTime float64

	// Дедлайны смерти. Оба считаются ЖАДНО в момент смерти, чтобы
	// зависший цикл обновления не откладывал возрождение.
	DeathTimeEnd   float64
	RespawnTimeEnd float64

	// Hidden: труп истек (DeathTimeEnd позади) и не попадает в снапшоты
	// до возрождения.
	Hidden bool
}

// SkillIndex возвращает индекс навыка по имени, -1 если нет.
func (e *Entity) SkillIndex(name string) int {
	for i := range e.Skills {
		if e.Skills[i].Name == name {
			return i
		}
	}
	return -1
}

// CurrentCastRange - дальность текущего навыка (0, если каст не выбран).
func (e *Entity) CurrentCastRange() float64 {
	if e.CurrentSkill < 0 || e.CurrentSkill >= len(e.Skills) {
		return 0
	}
	return e.Skills[e.CurrentSkill].Data().CastRange
}

// TopOfBounds - точка над головой сущности (спавн попапов урона).
func (e *Entity) TopOfBounds() mgl64.Vec3 {
	return e.Pos.Add(mgl64.Vec3{0, e.Radius, 0})
}

// --- ЗАЖИМ РЕСУРСОВ ---
// Инвариант: 0 <= Health <= HealthMax, 0 <= Mana <= ManaMax. Всегда.
// Максимумы зависят от варианта, поэтому сеттеры принимают Behaviour.

func SetHealth(b Behaviour, value int) {
	max := b.HealthMax()
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	b.E().Health = value
}

func AddHealth(b Behaviour, delta int) {
	SetHealth(b, b.E().Health+delta)
}

func SetMana(b Behaviour, value int) {
	max := b.ManaMax()
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	b.E().Mana = value
}

func AddMana(b Behaviour, delta int) {
	SetMana(b, b.E().Mana+delta)
}

// IsAlive - жива ли сущность (здоровье выше нуля).
func IsAlive(b Behaviour) bool {
	return b.E().Health > 0
}

// SurfaceDistance - расстояние между ближайшими точками ограничивающих сфер.
// Не бывает отрицательным (пересекающиеся сферы = 0).
func SurfaceDistance(a, b *Entity) float64 {
	d := a.Pos.Sub(b.Pos).Len() - a.Radius - b.Radius
	if d < 0 {
		return 0
	}
	return d
}

// BuffBonus суммирует бонус f(data) по всем активным баффам сущности.
func BuffBonus(e *Entity, f func(catalog.SkillLevelData) int) int {
	total := 0
	now := e.Clock.Now()
	for i := range e.Skills {
		s := &e.Skills[i]
		if s.Template.Category.IsBuffLike() && s.BuffActive(now) {
			total += f(s.Data())
		}
	}
	return total
}

// BuffBonusF - то же для дробных бонусов (шансы блока/крита).
func BuffBonusF(e *Entity, f func(catalog.SkillLevelData) float64) float64 {
	total := 0.0
	now := e.Clock.Now()
	for i := range e.Skills {
		s := &e.Skills[i]
		if s.Template.Category.IsBuffLike() && s.BuffActive(now) {
			total += f(s.Data())
		}
	}
	return total
}
