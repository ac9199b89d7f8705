package enums

import "strings"

// SkillCategory определяет, как навык выбирает цель и что делает при срабатывании.
type SkillCategory uint8

const (
	SkillCategoryUnknown SkillCategory = iota
	SkillCategoryAttack
	SkillCategoryHeal
	SkillCategoryBuff
	// Статусные "баффы" PvP-системы. Не кастуются игроком напрямую,
	// навешиваются движком при нападении на невиновного / убийстве.
	SkillCategoryStatusOffender
	SkillCategoryStatusMurderer
)

var skillCategoryToString = map[SkillCategory]string{
	SkillCategoryAttack:         "ATTACK",
	SkillCategoryHeal:           "HEAL",
	SkillCategoryBuff:           "BUFF",
	SkillCategoryStatusOffender: "STATUS_OFFENDER",
	SkillCategoryStatusMurderer: "STATUS_MURDERER",
}

var skillCategoryStringToType = map[string]SkillCategory{
	"ATTACK":          SkillCategoryAttack,
	"HEAL":            SkillCategoryHeal,
	"BUFF":            SkillCategoryBuff,
	"STATUS_OFFENDER": SkillCategoryStatusOffender,
	"STATUS_MURDERER": SkillCategoryStatusMurderer,
}

// IsStatus сообщает, является ли категория служебным статусом, а не боевым навыком.
func (c SkillCategory) IsStatus() bool {
	return c == SkillCategoryStatusOffender || c == SkillCategoryStatusMurderer
}

// IsBuffLike - всё, что живет по таймеру BuffTimeEnd.
func (c SkillCategory) IsBuffLike() bool {
	return c == SkillCategoryBuff || c.IsStatus()
}

func (c SkillCategory) String() string {
	if val, ok := skillCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseSkillCategory(s string) SkillCategory {
	upper := strings.ToUpper(s)
	if val, ok := skillCategoryStringToType[upper]; ok {
		return val
	}
	return SkillCategoryUnknown
}
