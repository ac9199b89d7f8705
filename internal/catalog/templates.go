package catalog

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// --- ШАБЛОНЫ ---
// Шаблон - неизменяемое статическое описание. Динамические экземпляры
// (Skill, Item, Quest у сущностей) ссылаются на шаблон по имени.

// SkillLevelData - параметры навыка для ОДНОГО уровня прокачки.
type SkillLevelData struct {
	Damage    int     `json:"damage"`
	CastTime  float64 `json:"castTime"`  // секунды
	Cooldown  float64 `json:"cooldown"`  // секунды
	CastRange float64 `json:"castRange"` // метры
	AoERadius float64 `json:"aoeRadius"` // метры, 0 = только основная цель
	ManaCosts int     `json:"manaCosts"`

	// Heal
	HealsHealth int `json:"healsHealth"`
	HealsMana   int `json:"healsMana"`

	// Buff
	BuffTime         float64 `json:"buffTime"` // секунды
	BuffsHealthMax   int     `json:"buffsHealthMax"`
	BuffsManaMax     int     `json:"buffsManaMax"`
	BuffsDamage      int     `json:"buffsDamage"`
	BuffsDefense     int     `json:"buffsDefense"`
	BuffsBlockChance float64 `json:"buffsBlockChance"`
	BuffsCritChance  float64 `json:"buffsCritChance"`

	// Требования для изучения/прокачки до этого уровня
	RequiredLevel           int   `json:"requiredLevel"`
	RequiredSkillExperience int64 `json:"requiredSkillExperience"`
}

type SkillTemplate struct {
	Name     string              `json:"name"`
	Category enums.SkillCategory `json:"category"`

	// Projectile: атака спавнит самонаводящийся снаряд вместо мгновенного урона.
	Projectile      bool    `json:"projectile"`
	ProjectileSpeed float64 `json:"projectileSpeed"`

	// FollowupDefaultAttack: после каста автоматически продолжать автоатакой.
	FollowupDefaultAttack bool `json:"followupDefaultAttack"`

	// Levels[0] = уровень 1.
	Levels []SkillLevelData `json:"levels"`
}

// MaxLevel возвращает максимальный уровень прокачки навыка.
func (t *SkillTemplate) MaxLevel() int { return len(t.Levels) }

// Level возвращает данные уровня lvl (1-based), с зажимом в допустимый диапазон.
func (t *SkillTemplate) Level(lvl int) SkillLevelData {
	if lvl < 1 {
		lvl = 1
	}
	if lvl > len(t.Levels) {
		lvl = len(t.Levels)
	}
	return t.Levels[lvl-1]
}

type ItemTemplate struct {
	Name     string             `json:"name"`
	Category enums.ItemCategory `json:"category"`
	MaxStack int                `json:"maxStack"`

	BuyPrice      int64 `json:"buyPrice"`
	SellPrice     int64 `json:"sellPrice"`
	ItemMallPrice int64 `json:"itemMallPrice"` // цена в коинах, 0 = не продается за коины
	MinLevel      int   `json:"minLevel"`

	Sellable    bool `json:"sellable"`
	Tradable    bool `json:"tradable"`
	Destroyable bool `json:"destroyable"`

	// Эффекты использования (зелья, еда)
	UsageHealth     int   `json:"usageHealth"`
	UsageMana       int   `json:"usageMana"`
	UsageExperience int64 `json:"usageExperience"`

	// Бонусы экипировки
	EquipDamage      int     `json:"equipDamage"`
	EquipDefense     int     `json:"equipDefense"`
	EquipHealthMax   int     `json:"equipHealthMax"`
	EquipManaMax     int     `json:"equipManaMax"`
	EquipBlockChance float64 `json:"equipBlockChance"`
	EquipCritChance  float64 `json:"equipCritChance"`
}

type QuestTemplate struct {
	Name          string `json:"name"`
	RequiredLevel int    `json:"requiredLevel"`
	Predecessor   string `json:"predecessor"` // имя квеста, который должен быть завершен раньше

	RewardGold       int64  `json:"rewardGold"`
	RewardExperience int64  `json:"rewardExperience"`
	RewardItem       string `json:"rewardItem"`

	KillTarget string `json:"killTarget"` // имя монстра
	KillAmount int    `json:"killAmount"`

	GatherItem   string `json:"gatherItem"` // имя предмета
	GatherAmount int    `json:"gatherAmount"`
}

type RecipeTemplate struct {
	Name string `json:"name"`
	// До 6 ингредиентов, порядок не важен.
	Ingredients []string `json:"ingredients"`
	Result      string   `json:"result"`
}

// RecipeMaxIngredients - размер сетки крафта.
const RecipeMaxIngredients = 6
