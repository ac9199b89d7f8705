package enums

import "strings"

type ItemCategory uint8

const (
	ItemCategoryUnknown ItemCategory = iota
	ItemCategoryWeaponSword
	ItemCategoryWeaponBow
	ItemCategoryShield
	ItemCategoryArmorHead
	ItemCategoryArmorChest
	ItemCategoryArmorLegs
	ItemCategoryPotion
	ItemCategoryFood
	ItemCategoryMaterial
	ItemCategoryMisc
)

// EquipSlotKind - тип слота экипировки. Совместимость предмета со слотом
// задается явным отношением подкатегорий, а не префиксами строк.
type EquipSlotKind uint8

const (
	EquipSlotUnknown EquipSlotKind = iota
	EquipSlotWeapon
	EquipSlotShield
	EquipSlotHead
	EquipSlotChest
	EquipSlotLegs
)

// Отношение "категория предмета -> слот, в который она встает".
var categoryToSlot = map[ItemCategory]EquipSlotKind{
	ItemCategoryWeaponSword: EquipSlotWeapon,
	ItemCategoryWeaponBow:   EquipSlotWeapon,
	ItemCategoryShield:      EquipSlotShield,
	ItemCategoryArmorHead:   EquipSlotHead,
	ItemCategoryArmorChest:  EquipSlotChest,
	ItemCategoryArmorLegs:   EquipSlotLegs,
}

// FitsSlot проверяет, подходит ли категория предмета к слоту экипировки.
func (c ItemCategory) FitsSlot(slot EquipSlotKind) bool {
	return categoryToSlot[c] == slot
}

// IsWeapon сообщает, считается ли предмет оружием (нужно для CastCheckSelf).
func (c ItemCategory) IsWeapon() bool {
	return categoryToSlot[c] == EquipSlotWeapon
}

// IsEquipable - можно ли вообще надеть предмет этой категории.
func (c ItemCategory) IsEquipable() bool {
	_, ok := categoryToSlot[c]
	return ok
}

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryWeaponSword: "WEAPON_SWORD",
	ItemCategoryWeaponBow:   "WEAPON_BOW",
	ItemCategoryShield:      "SHIELD",
	ItemCategoryArmorHead:   "ARMOR_HEAD",
	ItemCategoryArmorChest:  "ARMOR_CHEST",
	ItemCategoryArmorLegs:   "ARMOR_LEGS",
	ItemCategoryPotion:      "POTION",
	ItemCategoryFood:        "FOOD",
	ItemCategoryMaterial:    "MATERIAL",
	ItemCategoryMisc:        "MISC",
}

var itemCategoryStringToType = func() map[string]ItemCategory {
	m := make(map[string]ItemCategory, len(itemCategoryToString))
	for k, v := range itemCategoryToString {
		m[v] = k
	}
	return m
}()

func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemCategory(s string) ItemCategory {
	upper := strings.ToUpper(s)
	if val, ok := itemCategoryStringToType[upper]; ok {
		return val
	}
	return ItemCategoryUnknown
}

var equipSlotToString = map[EquipSlotKind]string{
	EquipSlotWeapon: "WEAPON",
	EquipSlotShield: "SHIELD",
	EquipSlotHead:   "HEAD",
	EquipSlotChest:  "CHEST",
	EquipSlotLegs:   "LEGS",
}

func (k EquipSlotKind) String() string {
	if val, ok := equipSlotToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
