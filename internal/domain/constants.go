package domain

// Размеры массивов слотов
const (
	InventorySize    = 30
	TradeOfferSlots  = 6
	ActiveQuestLimit = 10
)

// Базовые статы игрока по уровню. Атрибуты добавляют проценты сверху.
const (
	PlayerBaseHealthMax  = 100
	PlayerHealthPerLevel = 10
	PlayerBaseManaMax    = 50
	PlayerManaPerLevel   = 5
	PlayerBaseDamage     = 1
	PlayerDamagePerLevel = 1
	PlayerBaseDefense    = 1
	PlayerBlockChance    = 0.01
	PlayerCritChance     = 0.01
	PlayerMaxLevel       = 60
)

// Восстановление ресурсов: столько в СЕКУНДУ, пока жив.
const (
	PlayerHealthRecovery = 4
	PlayerManaRecovery   = 4
)

// Смерть игрока
const (
	PlayerDeathTime       = 30.0 // секунд лежим
	PlayerRespawnTime     = 10.0 // секунд до принудительного возрождения
	PlayerDeathExpPenalty = 0.05 // доля ExperienceMax, теряемая при смерти
	PlayerRespawnHealth   = 0.5  // доля максимума здоровья после возрождения
)

// Дистанция взаимодействия с NPC, лутом и торговлей.
const InteractionRange = 4.0

// Доля дальности каста, на которой останавливаемся при преследовании.
// Меньше единицы, чтобы не танцевать на самой границе дальности.
const CastRangeStopFactor = 0.8
